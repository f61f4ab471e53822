package restaurants

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/myezz/restaurant-api/pkg/db/models"
)

// Repository persists restaurant profiles. Missing rows surface as
// gorm.ErrRecordNotFound.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Restaurant, error)
	Update(ctx context.Context, restaurant *models.Restaurant) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to restaurant operations.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *repository) Update(ctx context.Context, restaurant *models.Restaurant) error {
	if restaurant == nil {
		return fmt.Errorf("restaurant is required")
	}
	return r.db.WithContext(ctx).Save(restaurant).Error
}
