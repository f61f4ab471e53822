package reports

import (
	"github.com/shopspring/decimal"

	"github.com/myezz/restaurant-api/pkg/db/models"
	"github.com/myezz/restaurant-api/pkg/types"
)

// Summary carries the headline figures of a period. GMV counts every order
// regardless of status.
type Summary struct {
	GMV               float64 `json:"gmv"`
	TotalOrders       int     `json:"totalOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// Summarize adds up order totals in decimal and rounds for output.
func Summarize(orders []models.Order) Summary {
	gmv := decimal.Zero
	for _, order := range orders {
		gmv = gmv.Add(order.Total)
	}

	aov := decimal.Zero
	if len(orders) > 0 {
		aov = gmv.Div(decimal.NewFromInt(int64(len(orders))))
	}

	return Summary{
		GMV:               types.MoneyFloat(gmv),
		TotalOrders:       len(orders),
		AverageOrderValue: types.MoneyFloat(aov),
	}
}
