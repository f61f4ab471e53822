package reports

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/myezz/restaurant-api/pkg/db/models"
	"github.com/myezz/restaurant-api/pkg/enums"
	"github.com/myezz/restaurant-api/pkg/types"
)

var ist = time.FixedZone("IST", 5*3600+1800)

// fixedNow is Saturday 15 March 2025, 14:30 IST.
var fixedNow = time.Date(2025, 3, 15, 14, 30, 0, 0, ist)

func at(day, hour, minute int) time.Time {
	return time.Date(2025, 3, day, hour, minute, 0, 0, ist)
}

func order(createdAt time.Time, total string) models.Order {
	return models.Order{
		ID:        uuid.New(),
		OrderCode: "ORD",
		Total:     decimal.RequireFromString(total),
		Status:    enums.OrderStatusCompleted,
		CreatedAt: createdAt.UTC(),
	}
}

func withCustomer(o models.Order, name string) models.Order {
	o.CustomerName = name
	return o
}

func withStatus(o models.Order, status enums.OrderStatus) models.Order {
	o.Status = status
	return o
}

func withItems(o models.Order, items ...types.OrderItem) models.Order {
	o.Items = items
	return o
}

func item(name string, qty int, price float64) types.OrderItem {
	return types.OrderItem{Name: name, Quantity: qty, Price: &price}
}
