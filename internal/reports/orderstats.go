package reports

import (
	"github.com/shopspring/decimal"

	"github.com/myezz/restaurant-api/pkg/db/models"
	"github.com/myezz/restaurant-api/pkg/enums"
)

// OrderStats summarises the kitchen outcome of orders in a window.
type OrderStats struct {
	Received       int            `json:"received"`
	Accepted       int            `json:"accepted"`
	Rejected       int            `json:"rejected"`
	Cancelled      int            `json:"cancelled"`
	Completed      int            `json:"completed"`
	Pending        int            `json:"pending"`
	AvgPrepTime    float64        `json:"avgPrepTime"`
	CompletionRate float64        `json:"completionRate"`
	ByStatus       map[string]int `json:"byStatus"`
}

// SummarizeOrders counts statuses. Completed includes delivered orders and
// accepted includes every order the kitchen took on.
func SummarizeOrders(orders []models.Order) OrderStats {
	stats := OrderStats{ByStatus: map[string]int{}}
	prepTotal, prepCount := 0, 0

	for _, order := range orders {
		stats.Received++
		stats.ByStatus[order.Status.String()]++

		switch {
		case order.Status == enums.OrderStatusRejected:
			stats.Rejected++
		case order.Status == enums.OrderStatusCancelled:
			stats.Cancelled++
		case order.Status == enums.OrderStatusNew:
			stats.Pending++
		}
		if order.Status.IsAccepted() || order.AcceptedAt != nil {
			stats.Accepted++
		}
		if order.Status.IsFulfilled() {
			stats.Completed++
		}
		if order.PrepTime != nil && *order.PrepTime > 0 {
			prepTotal += *order.PrepTime
			prepCount++
		}
	}

	if prepCount > 0 {
		stats.AvgPrepTime = decimal.NewFromInt(int64(prepTotal)).
			Div(decimal.NewFromInt(int64(prepCount))).
			Round(1).
			InexactFloat64()
	}
	stats.CompletionRate = percentOf(stats.Completed, stats.Received).Round(1).InexactFloat64()
	return stats
}
