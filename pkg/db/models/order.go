package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/myezz/restaurant-api/pkg/enums"
	"github.com/myezz/restaurant-api/pkg/types"
)

// Order is a customer order received by a restaurant.
type Order struct {
	ID               uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	RestaurantID     uuid.UUID         `gorm:"column:restaurant_id;type:uuid;not null;index:idx_orders_restaurant_created,priority:1"`
	OrderCode        string            `gorm:"column:order_code;not null"`
	CustomerName     string            `gorm:"column:customer_name;not null;default:''"`
	Items            types.OrderItems  `gorm:"column:items;type:jsonb;serializer:json"`
	Total            decimal.Decimal   `gorm:"column:total;type:numeric(12,2);not null;default:0"`
	Status           enums.OrderStatus `gorm:"column:status;type:text;not null;default:'new'"`
	PrepTime         *int              `gorm:"column:prep_time"`
	AcceptedAt       *time.Time        `gorm:"column:accepted_at"`
	VerificationCode string            `gorm:"column:verification_code;not null;default:''"`
	RejectionReason  *string           `gorm:"column:rejection_reason"`
	CreatedAt        time.Time         `gorm:"column:created_at;autoCreateTime;index:idx_orders_restaurant_created,priority:2"`
	UpdatedAt        time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

func (Order) TableName() string { return "orders" }
