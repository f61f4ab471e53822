package types

import "github.com/shopspring/decimal"

// MoneyFloat rounds a decimal amount to two places and returns it as a JSON-friendly float.
func MoneyFloat(amount decimal.Decimal) float64 {
	return amount.Round(2).InexactFloat64()
}

// MoneyFromFloat converts a request float into a two-place decimal amount.
func MoneyFromFloat(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Round(2)
}
