package reports

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/myezz/restaurant-api/pkg/db/models"
	"github.com/myezz/restaurant-api/pkg/types"
)

// RankLimit caps each side of the item ranking.
const RankLimit = 5

// ItemStat aggregates one menu item across orders.
type ItemStat struct {
	Name    string  `json:"name"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// ItemRanking lists best sellers descending and slow movers ascending.
type ItemRanking struct {
	TopItems   []ItemStat `json:"topItems"`
	LeastItems []ItemStat `json:"leastItems"`
}

type itemTotals struct {
	name     string
	quantity int
	revenue  decimal.Decimal
}

// RankItems flattens line items by exact name, the same way Customers groups
// customer names. Missing quantities count as one and missing prices as zero.
// Ties keep first-seen order.
func RankItems(orders []models.Order) ItemRanking {
	index := map[string]int{}
	totals := []itemTotals{}
	for _, order := range orders {
		for _, item := range order.Items {
			name := item.Name
			if name == "" {
				continue
			}
			i, ok := index[name]
			if !ok {
				i = len(totals)
				index[name] = i
				totals = append(totals, itemTotals{name: name})
			}
			qty := item.EffectiveQuantity()
			totals[i].quantity += qty
			totals[i].revenue = totals[i].revenue.Add(types.MoneyFromFloat(item.UnitPrice()).Mul(decimal.NewFromInt(int64(qty))))
		}
	}

	slices.SortStableFunc(totals, func(a, b itemTotals) int {
		return b.quantity - a.quantity
	})

	stats := make([]ItemStat, len(totals))
	for i, t := range totals {
		stats[i] = ItemStat{Name: t.name, Orders: t.quantity, Revenue: types.MoneyFloat(t.revenue)}
	}

	n := min(RankLimit, len(stats))
	top := slices.Clone(stats[:n])
	least := slices.Clone(stats[len(stats)-n:])
	slices.Reverse(least)

	return ItemRanking{TopItems: top, LeastItems: least}
}
