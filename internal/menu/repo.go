package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/myezz/restaurant-api/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to menu operations.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, restaurantID uuid.UUID, filters ListFilters) ([]models.MenuItem, error) {
	query := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	if category := strings.TrimSpace(filters.Category); category != "" && !strings.EqualFold(category, "all") {
		query = query.Where("category = ?", category)
	}
	switch filters.Stock {
	case StockInStock:
		query = query.Where("in_stock = ?", true)
	case StockOutOfStock:
		query = query.Where("in_stock = ?", false)
	}

	var items []models.MenuItem
	if err := query.Order("category ASC").Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) FindByID(ctx context.Context, restaurantID, itemID uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND id = ?", restaurantID, itemID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) Create(ctx context.Context, item *models.MenuItem) error {
	if item == nil {
		return fmt.Errorf("menu item is required")
	}
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) Update(ctx context.Context, item *models.MenuItem) error {
	if item == nil {
		return fmt.Errorf("menu item is required")
	}
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *repository) Delete(ctx context.Context, restaurantID, itemID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND id = ?", restaurantID, itemID).
		Delete(&models.MenuItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Categories(ctx context.Context, restaurantID uuid.UUID) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("restaurant_id = ?", restaurantID).
		Distinct("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
