// Package debt orders the repayment plan by the avalanche method.
package debt

import (
	"slices"

	"github.com/trifold-dev/trifold/internal/model"
)

// Prioritize returns the debts sorted by interest rate, highest first.
// The sort is stable: equal rates keep their insertion order. The first
// entry is the one to direct all discretionary extra payment at while the
// rest receive only their contractual minimum; no payoff schedule is
// computed.
func Prioritize(debts []model.Debt) []model.Debt {
	ordered := slices.Clone(debts)
	slices.SortStableFunc(ordered, func(a, b model.Debt) int {
		return b.Rate.Cmp(a.Rate)
	})
	return ordered
}
