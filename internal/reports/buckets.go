package reports

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/myezz/restaurant-api/pkg/db/models"
	"github.com/myezz/restaurant-api/pkg/types"
)

// Bucket is one point of a sales trend.
type Bucket struct {
	Label      string  `json:"label"`
	Sales      float64 `json:"sales"`
	OrderCount int     `json:"orderCount"`
}

const dailyLabelLayout = "Jan 2"

type accumulator struct {
	sales  decimal.Decimal
	orders int
}

func (a *accumulator) add(order models.Order) {
	a.sales = a.sales.Add(order.Total)
	a.orders++
}

// BuildBuckets returns a dense, chronologically ascending trend covering the
// whole window. Empty slots are zero-filled and orders outside the window are
// dropped.
func BuildBuckets(orders []models.Order, window Window, granularity Granularity) []Bucket {
	if granularity == GranularityHourly {
		hours := hourlyAccumulators(orders, window)
		out := make([]Bucket, len(hours))
		for hour, acc := range hours {
			out[hour] = Bucket{
				Label:      hourLabel(hour),
				Sales:      types.MoneyFloat(acc.sales),
				OrderCount: acc.orders,
			}
		}
		return out
	}
	return dailyBuckets(orders, window)
}

func hourlyAccumulators(orders []models.Order, window Window) [24]accumulator {
	var hours [24]accumulator
	loc := window.Location()
	for _, order := range orders {
		if !window.Contains(order.CreatedAt) {
			continue
		}
		hours[order.CreatedAt.In(loc).Hour()].add(order)
	}
	return hours
}

func dailyBuckets(orders []models.Order, window Window) []Bucket {
	loc := window.Location()
	index := map[string]int{}
	days := []time.Time{}
	for d := startOfDay(window.Start); !d.After(window.End); d = d.AddDate(0, 0, 1) {
		index[dayKey(d)] = len(days)
		days = append(days, d)
	}

	accs := make([]accumulator, len(days))
	for _, order := range orders {
		if !window.Contains(order.CreatedAt) {
			continue
		}
		if i, ok := index[dayKey(order.CreatedAt.In(loc))]; ok {
			accs[i].add(order)
		}
	}

	out := make([]Bucket, len(days))
	for i, day := range days {
		out[i] = Bucket{
			Label:      day.Format(dailyLabelLayout),
			Sales:      types.MoneyFloat(accs[i].sales),
			OrderCount: accs[i].orders,
		}
	}
	return out
}

func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

func hourLabel(hour int) string {
	return fmt.Sprintf("%d:00", hour)
}
