package menu

import (
	"time"

	"github.com/google/uuid"

	"github.com/myezz/restaurant-api/pkg/db/models"
	"github.com/myezz/restaurant-api/pkg/types"
)

// Category names shown as tabs in the menu editor, in display order.
const (
	CategoryStarters  = "Starters"
	CategoryMains     = "Mains"
	CategoryBreads    = "Breads"
	CategoryBeverages = "Beverages"
	CategoryDesserts  = "Desserts"
)

var categoryOrder = []string{CategoryStarters, CategoryMains, CategoryBreads, CategoryBeverages, CategoryDesserts}

// StockFilter narrows a menu listing by availability.
type StockFilter string

const (
	StockAll        StockFilter = "all"
	StockInStock    StockFilter = "inStock"
	StockOutOfStock StockFilter = "outOfStock"
)

// ParseStockFilter accepts the editor's tab names; empty means all.
func ParseStockFilter(value string) (StockFilter, bool) {
	switch StockFilter(value) {
	case "", StockAll:
		return StockAll, true
	case StockInStock, StockOutOfStock:
		return StockFilter(value), true
	}
	return "", false
}

// ListFilters narrows a menu listing. An empty category or "All" matches everything.
type ListFilters struct {
	Category string
	Stock    StockFilter
}

// MenuItemDTO is the wire shape of a menu item.
type MenuItemDTO struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	IsVeg        bool      `json:"isVeg"`
	InStock      bool      `json:"inStock"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateItemInput holds a new menu item. InStock defaults to true.
type CreateItemInput struct {
	Name     string
	Category string
	Price    float64
	IsVeg    bool
	InStock  *bool
}

// UpdateItemInput carries a partial update; nil fields are left unchanged.
type UpdateItemInput struct {
	Name     *string
	Category *string
	Price    *float64
	IsVeg    *bool
	InStock  *bool
}

// FromModel maps a persisted menu item into its DTO.
func FromModel(m *models.MenuItem) *MenuItemDTO {
	if m == nil {
		return nil
	}
	return &MenuItemDTO{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Category:     m.Category,
		Price:        types.MoneyFloat(m.Price),
		IsVeg:        m.IsVeg,
		InStock:      m.InStock,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
