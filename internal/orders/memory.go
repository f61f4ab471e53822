package orders

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/myezz/restaurant-api/pkg/db/models"
	"github.com/myezz/restaurant-api/pkg/pagination"
)

// MemoryRepository keeps orders in process memory. It backs the fixture mode
// used when no database is reachable.
type MemoryRepository struct {
	mu     sync.RWMutex
	orders []models.Order
	now    func() time.Time
}

// NewMemoryRepository seeds the store with copies of the given orders.
func NewMemoryRepository(seed []models.Order) *MemoryRepository {
	repo := &MemoryRepository{now: time.Now}
	for _, order := range seed {
		repo.orders = append(repo.orders, cloneOrder(order))
	}
	return repo
}

func (r *MemoryRepository) Create(_ context.Context, order *models.Order) error {
	if order == nil {
		return fmt.Errorf("order is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.orders {
		if existing.RestaurantID == order.RestaurantID && existing.OrderCode == order.OrderCode {
			return fmt.Errorf("duplicate key value violates unique constraint %q", "ux_orders_restaurant_code")
		}
	}
	now := r.now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now
	r.orders = append(r.orders, cloneOrder(*order))
	return nil
}

func (r *MemoryRepository) FindByID(_ context.Context, restaurantID, orderID uuid.UUID) (*models.Order, error) {
	return r.find(func(o models.Order) bool {
		return o.RestaurantID == restaurantID && o.ID == orderID
	})
}

func (r *MemoryRepository) FindByCode(_ context.Context, restaurantID uuid.UUID, code string) (*models.Order, error) {
	return r.find(func(o models.Order) bool {
		return o.RestaurantID == restaurantID && o.OrderCode == code
	})
}

func (r *MemoryRepository) find(match func(models.Order) bool) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if match(order) {
			out := cloneOrder(order)
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryRepository) List(_ context.Context, restaurantID uuid.UUID, filters ListFilters, cursor *pagination.Cursor, limit int) ([]models.Order, error) {
	r.mu.RLock()
	rows := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if order.RestaurantID != restaurantID {
			continue
		}
		if filters.Status != nil && order.Status != *filters.Status {
			continue
		}
		rows = append(rows, cloneOrder(order))
	}
	r.mu.RUnlock()

	slices.SortFunc(rows, func(a, b models.Order) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID.String(), a.ID.String())
	})

	if cursor != nil {
		rows = slices.DeleteFunc(rows, func(o models.Order) bool {
			if o.CreatedAt.Before(cursor.CreatedAt) {
				return false
			}
			return !(o.CreatedAt.Equal(cursor.CreatedAt) && o.ID.String() < cursor.ID.String())
		})
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *MemoryRepository) ListOrdersInWindow(_ context.Context, restaurantID uuid.UUID, start, end time.Time) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := []models.Order{}
	for _, order := range r.orders {
		if order.RestaurantID != restaurantID {
			continue
		}
		if order.CreatedAt.Before(start) || order.CreatedAt.After(end) {
			continue
		}
		rows = append(rows, cloneOrder(order))
	}
	slices.SortStableFunc(rows, func(a, b models.Order) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return rows, nil
}

func (r *MemoryRepository) Update(_ context.Context, order *models.Order) error {
	if order == nil {
		return fmt.Errorf("order is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == order.ID && r.orders[i].RestaurantID == order.RestaurantID {
			order.UpdatedAt = r.now()
			r.orders[i] = cloneOrder(*order)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *MemoryRepository) Delete(_ context.Context, restaurantID, orderID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.orders)
	r.orders = slices.DeleteFunc(r.orders, func(o models.Order) bool {
		return o.RestaurantID == restaurantID && o.ID == orderID
	})
	if len(r.orders) == before {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Len reports how many orders are held, across all restaurants.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}

func cloneOrder(o models.Order) models.Order {
	out := o
	out.Items = slices.Clone(o.Items)
	for i, item := range out.Items {
		if item.Price != nil {
			price := *item.Price
			out.Items[i].Price = &price
		}
	}
	if o.PrepTime != nil {
		v := *o.PrepTime
		out.PrepTime = &v
	}
	if o.AcceptedAt != nil {
		v := *o.AcceptedAt
		out.AcceptedAt = &v
	}
	if o.RejectionReason != nil {
		v := *o.RejectionReason
		out.RejectionReason = &v
	}
	return out
}
