package menu

import (
	"context"

	"github.com/google/uuid"

	"github.com/myezz/restaurant-api/pkg/db/models"
)

// Repository persists a restaurant's menu. Missing rows surface as
// gorm.ErrRecordNotFound from every implementation.
type Repository interface {
	List(ctx context.Context, restaurantID uuid.UUID, filters ListFilters) ([]models.MenuItem, error)
	FindByID(ctx context.Context, restaurantID, itemID uuid.UUID) (*models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) error
	Update(ctx context.Context, item *models.MenuItem) error
	Delete(ctx context.Context, restaurantID, itemID uuid.UUID) error
	Categories(ctx context.Context, restaurantID uuid.UUID) ([]string, error)
}
