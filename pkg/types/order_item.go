package types

import "strings"

// OrderItem is one line of an order as stored in the items JSON column.
type OrderItem struct {
	Name     string   `json:"name" validate:"required"`
	Quantity int      `json:"quantity" validate:"gte=0"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}

// OrderItems is the JSON column payload.
type OrderItems []OrderItem

// EffectiveQuantity treats a missing or non-positive quantity as one unit.
func (i OrderItem) EffectiveQuantity() int {
	if i.Quantity <= 0 {
		return 1
	}
	return i.Quantity
}

// UnitPrice returns the price or zero when absent.
func (i OrderItem) UnitPrice() float64 {
	if i.Price == nil {
		return 0
	}
	return *i.Price
}

// DisplayName trims surrounding whitespace. Order intake stores this form.
func (i OrderItem) DisplayName() string {
	return strings.TrimSpace(i.Name)
}
