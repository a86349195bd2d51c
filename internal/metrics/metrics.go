// Package metrics computes derived budget figures from a month ledger and
// the folder percentages. Everything here is pure: no state, no I/O.
package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/trifold-dev/trifold/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Report bundles the derived metrics for one month.
type Report struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	Net          decimal.Decimal

	// ByFolder sums expense amounts per known folder. Expenses with a
	// missing or unknown folder count toward ExpenseTotal but no bucket.
	ByFolder map[model.Folder]decimal.Decimal

	// TargetByFolder is the folder percentage applied to total income.
	TargetByFolder map[model.Folder]decimal.Decimal

	// Coverage is actual folder spend as a percentage of income. With
	// zero income the denominator is 1, so the figure degrades instead
	// of dividing by zero.
	Coverage map[model.Folder]decimal.Decimal

	// DesiredIncome is the income needed so the most demanding folder's
	// spend still fits its target percentage; DesiredDelta is how far
	// current income falls short of it, floored at zero.
	DesiredIncome decimal.Decimal
	DesiredDelta  decimal.Decimal
}

// Compute derives the full report for a ledger snapshot.
func Compute(ledger model.MonthLedger, folders model.FolderConfig) Report {
	r := Report{
		ByFolder:       make(map[model.Folder]decimal.Decimal, len(model.AllFolders)),
		TargetByFolder: make(map[model.Folder]decimal.Decimal, len(model.AllFolders)),
		Coverage:       make(map[model.Folder]decimal.Decimal, len(model.AllFolders)),
	}

	for _, it := range ledger.Incomes {
		r.IncomeTotal = r.IncomeTotal.Add(it.Amount)
	}
	for _, f := range model.AllFolders {
		r.ByFolder[f] = decimal.Zero
	}
	for _, it := range ledger.Expenses {
		r.ExpenseTotal = r.ExpenseTotal.Add(it.Amount)
		if it.Folder.Known() {
			r.ByFolder[it.Folder] = r.ByFolder[it.Folder].Add(it.Amount)
		}
	}
	r.Net = r.IncomeTotal.Sub(r.ExpenseTotal)

	denom := r.IncomeTotal
	if denom.IsZero() {
		denom = decimal.NewFromInt(1)
	}

	for _, f := range model.AllFolders {
		pct := folders.Percent(f)
		r.TargetByFolder[f] = r.IncomeTotal.Mul(pct).Div(hundred)
		r.Coverage[f] = r.ByFolder[f].Div(denom).Mul(hundred)

		// Required income for this folder's current spend to fit its
		// target percentage. Only folders with a positive percentage
		// and positive spend bind the constraint.
		if pct.IsPositive() {
			required := r.ByFolder[f].Mul(hundred).Div(pct)
			if required.IsPositive() && required.GreaterThan(r.DesiredIncome) {
				r.DesiredIncome = required
			}
		}
	}

	if delta := r.DesiredIncome.Sub(r.IncomeTotal); delta.IsPositive() {
		r.DesiredDelta = delta
	}

	return r
}

// AutoSaving is the recommended monthly transfer to savings: the savings
// percentage applied to total income.
func AutoSaving(folders model.FolderConfig, incomeTotal decimal.Decimal) decimal.Decimal {
	return incomeTotal.Mul(folders.Savings).Div(hundred)
}
