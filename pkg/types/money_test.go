package types

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyFloatRoundsToCents(t *testing.T) {
	amount := decimal.RequireFromString("249.994")
	if got := MoneyFloat(amount); got != 249.99 {
		t.Fatalf("expected 249.99, got %v", got)
	}
	if got := MoneyFloat(decimal.RequireFromString("157.505")); got != 157.51 {
		t.Fatalf("expected half-up rounding to 157.51, got %v", got)
	}
}

func TestMoneyFromFloat(t *testing.T) {
	got := MoneyFromFloat(185.0)
	if !got.Equal(decimal.NewFromInt(185)) {
		t.Fatalf("expected 185, got %s", got)
	}
	if got := MoneyFromFloat(0.1 + 0.2); got.String() != "0.3" {
		t.Fatalf("expected float noise rounded away, got %s", got)
	}
}
