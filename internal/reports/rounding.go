package reports

import "github.com/shopspring/decimal"

func round1(value float64) float64 {
	return decimal.NewFromFloat(value).Round(1).InexactFloat64()
}

func percentOf(part, whole int) decimal.Decimal {
	if whole == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(int64(whole)))
}
