package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/myezz/restaurant-api/pkg/db/models"
	"github.com/myezz/restaurant-api/pkg/pagination"
)

// Repository defines persistence operations for a restaurant's orders. Both
// the Postgres-backed and the in-memory fixture implementations return
// gorm.ErrRecordNotFound for missing rows.
type Repository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, restaurantID, orderID uuid.UUID) (*models.Order, error)
	FindByCode(ctx context.Context, restaurantID uuid.UUID, code string) (*models.Order, error)
	List(ctx context.Context, restaurantID uuid.UUID, filters ListFilters, cursor *pagination.Cursor, limit int) ([]models.Order, error)
	ListOrdersInWindow(ctx context.Context, restaurantID uuid.UUID, start, end time.Time) ([]models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, restaurantID, orderID uuid.UUID) error
}
