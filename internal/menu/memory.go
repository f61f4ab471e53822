package menu

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/myezz/restaurant-api/pkg/db/models"
)

// MemoryRepository keeps menu items in process memory for fixture mode.
type MemoryRepository struct {
	mu    sync.RWMutex
	items []models.MenuItem
	now   func() time.Time
}

// NewMemoryRepository seeds the store with the given items.
func NewMemoryRepository(seed []models.MenuItem) *MemoryRepository {
	return &MemoryRepository{items: slices.Clone(seed), now: time.Now}
}

func (r *MemoryRepository) List(_ context.Context, restaurantID uuid.UUID, filters ListFilters) ([]models.MenuItem, error) {
	category := strings.TrimSpace(filters.Category)
	if strings.EqualFold(category, "all") {
		category = ""
	}

	r.mu.RLock()
	out := []models.MenuItem{}
	for _, item := range r.items {
		if item.RestaurantID != restaurantID {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		if filters.Stock == StockInStock && !item.InStock {
			continue
		}
		if filters.Stock == StockOutOfStock && item.InStock {
			continue
		}
		out = append(out, item)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b models.MenuItem) int {
		if c := cmp.Compare(a.Category, b.Category); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out, nil
}

func (r *MemoryRepository) FindByID(_ context.Context, restaurantID, itemID uuid.UUID) (*models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.RestaurantID == restaurantID && item.ID == itemID {
			out := item
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryRepository) Create(_ context.Context, item *models.MenuItem) error {
	if item == nil {
		return fmt.Errorf("menu item is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	r.items = append(r.items, *item)
	return nil
}

func (r *MemoryRepository) Update(_ context.Context, item *models.MenuItem) error {
	if item == nil {
		return fmt.Errorf("menu item is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == item.ID && r.items[i].RestaurantID == item.RestaurantID {
			item.UpdatedAt = r.now()
			r.items[i] = *item
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *MemoryRepository) Delete(_ context.Context, restaurantID, itemID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.items)
	r.items = slices.DeleteFunc(r.items, func(item models.MenuItem) bool {
		return item.RestaurantID == restaurantID && item.ID == itemID
	})
	if len(r.items) == before {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MemoryRepository) Categories(_ context.Context, restaurantID uuid.UUID) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := map[string]struct{}{}
	out := []string{}
	for _, item := range r.items {
		if item.RestaurantID != restaurantID {
			continue
		}
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		out = append(out, item.Category)
	}
	return out, nil
}
