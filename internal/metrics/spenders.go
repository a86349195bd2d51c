package metrics

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/trifold-dev/trifold/internal/model"
)

// SpenderGroup is one (folder, label) expense group with its summed amount.
type SpenderGroup struct {
	Key   string
	Total decimal.Decimal
}

// TopSpenders groups expenses by (folder, label), sums each group and
// returns the n largest, descending. Ties keep first-encountered order.
// Missing folders and labels get display placeholders before grouping.
func TopSpenders(expenses []model.LineItem, n int) []SpenderGroup {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, e := range expenses {
		folder := string(e.Folder)
		if folder == "" {
			folder = "—"
		}
		label := e.Label
		if label == "" {
			label = "unnamed"
		}
		key := fmt.Sprintf("%s • %s", folder, label)

		if _, ok := totals[key]; !ok {
			order = append(order, key)
		}
		totals[key] = totals[key].Add(e.Amount)
	}

	groups := make([]SpenderGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, SpenderGroup{Key: key, Total: totals[key]})
	}
	slices.SortStableFunc(groups, func(a, b SpenderGroup) int {
		return b.Total.Cmp(a.Total)
	})

	if n >= 0 && len(groups) > n {
		groups = groups[:n]
	}
	return groups
}

// FundTargets are emergency-fund goals expressed in months of fixed
// expenses.
type FundTargets struct {
	FixedMonthly decimal.Decimal
	OneMonth     decimal.Decimal
	ThreeMonths  decimal.Decimal
	SixMonths    decimal.Decimal
}

// EmergencyFund sums fixed-type expenses and scales the sum to the 1, 3
// and 6 month targets.
func EmergencyFund(expenses []model.LineItem) FundTargets {
	var fixed decimal.Decimal
	for _, e := range expenses {
		if e.Type == model.TypeFixed {
			fixed = fixed.Add(e.Amount)
		}
	}
	return FundTargets{
		FixedMonthly: fixed,
		OneMonth:     fixed,
		ThreeMonths:  fixed.Mul(decimal.NewFromInt(3)),
		SixMonths:    fixed.Mul(decimal.NewFromInt(6)),
	}
}
