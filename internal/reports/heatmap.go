package reports

import (
	"github.com/myezz/restaurant-api/pkg/db/models"
	"github.com/myezz/restaurant-api/pkg/types"
)

// HourStat is one cell of the busy-hour heatmap.
type HourStat struct {
	Hour   int     `json:"hour"`
	Label  string  `json:"label"`
	Orders int     `json:"orders"`
	Sales  float64 `json:"sales"`
}

// Heatmap folds a window onto the 24 hours of the day.
type Heatmap struct {
	Hours    []HourStat `json:"hours"`
	PeakHour int        `json:"peakHour"`
}

// BuildHeatmap returns 24 entries ordered by hour. PeakHour is the first hour
// with the most orders, or -1 when the window is empty.
func BuildHeatmap(orders []models.Order, window Window) Heatmap {
	accs := hourlyAccumulators(orders, window)
	out := Heatmap{Hours: make([]HourStat, len(accs)), PeakHour: -1}
	best := 0
	for hour, acc := range accs {
		out.Hours[hour] = HourStat{
			Hour:   hour,
			Label:  hourLabel(hour),
			Orders: acc.orders,
			Sales:  types.MoneyFloat(acc.sales),
		}
		if acc.orders > best {
			best = acc.orders
			out.PeakHour = hour
		}
	}
	return out
}
