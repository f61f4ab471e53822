package reports

import (
	"github.com/shopspring/decimal"

	"github.com/myezz/restaurant-api/pkg/db/models"
)

// CustomerStats describes how often customers come back.
type CustomerStats struct {
	TotalOrders          int     `json:"totalOrders"`
	UniqueCustomers      int     `json:"uniqueCustomers"`
	NewCustomers         int     `json:"newCustomers"`
	ReturningCustomers   int     `json:"returningCustomers"`
	RepeatRate           int     `json:"repeatRate"`
	AvgOrdersPerCustomer float64 `json:"avgOrdersPerCustomer"`
}

// Customers groups orders by exact customer name, case and whitespace
// included. A customer is returning when they placed more than one order
// inside the window.
func Customers(orders []models.Order) CustomerStats {
	counts := map[string]int{}
	total := 0
	for _, order := range orders {
		if order.CustomerName == "" {
			continue
		}
		counts[order.CustomerName]++
		total++
	}

	stats := CustomerStats{TotalOrders: total, UniqueCustomers: len(counts)}
	if stats.UniqueCustomers == 0 {
		return stats
	}

	for _, n := range counts {
		if n > 1 {
			stats.ReturningCustomers++
		}
	}
	stats.NewCustomers = stats.UniqueCustomers - stats.ReturningCustomers
	stats.RepeatRate = int(percentOf(stats.ReturningCustomers, stats.UniqueCustomers).Round(0).IntPart())
	stats.AvgOrdersPerCustomer = decimal.NewFromInt(int64(total)).
		Div(decimal.NewFromInt(int64(stats.UniqueCustomers))).
		Round(1).
		InexactFloat64()
	return stats
}
