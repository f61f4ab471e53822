package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItem is a dish a restaurant lists on its menu.
type MenuItem struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"column:restaurant_id;type:uuid;not null;index"`
	Name         string          `gorm:"column:name;not null"`
	Category     string          `gorm:"column:category;not null"`
	Price        decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	IsVeg        bool            `gorm:"column:is_veg;not null"`
	InStock      bool            `gorm:"column:in_stock;not null"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (MenuItem) TableName() string { return "menu_items" }

// All lists every model managed by migrations, in dependency order.
func All() []any {
	return []any{&Restaurant{}, &Order{}, &MenuItem{}}
}
