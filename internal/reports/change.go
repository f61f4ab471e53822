package reports

// PercentChange compares current against previous. A zero baseline reports 0
// when current is also zero (or negative) and 100 when current grew.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return round1((current - previous) / previous * 100)
}

// Change holds period-over-period percentages for the headline figures.
type Change struct {
	GMV               float64 `json:"gmv"`
	TotalOrders       float64 `json:"totalOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// Compare builds the change between two summaries.
func Compare(current, previous Summary) Change {
	return Change{
		GMV:               PercentChange(current.GMV, previous.GMV),
		TotalOrders:       PercentChange(float64(current.TotalOrders), float64(previous.TotalOrders)),
		AverageOrderValue: PercentChange(current.AverageOrderValue, previous.AverageOrderValue),
	}
}
