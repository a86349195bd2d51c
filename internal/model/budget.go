package model

import (
	"github.com/shopspring/decimal"
)

// Folder is one of the three 50/30/20 budget categories.
type Folder string

const (
	FolderNeeds   Folder = "needs"
	FolderWants   Folder = "wants"
	FolderSavings Folder = "savings"
)

// AllFolders lists the known folders in display order.
var AllFolders = []Folder{FolderNeeds, FolderWants, FolderSavings}

// Known reports whether f is one of the three budget folders. Items may
// carry any folder value; unknown ones are simply left out of folder
// bucket aggregation.
func (f Folder) Known() bool {
	return f == FolderNeeds || f == FolderWants || f == FolderSavings
}

// ExpenseType classifies how predictable an expense is.
type ExpenseType string

const (
	TypeFixed      ExpenseType = "fixed"
	TypeVariable   ExpenseType = "variable"
	TypeUnexpected ExpenseType = "unexpected"
)

// ItemKind selects one of the two line-item sequences in a ledger.
type ItemKind string

const (
	KindIncomes  ItemKind = "incomes"
	KindExpenses ItemKind = "expenses"
)

// LineItem is a single income or expense row. Type and Folder only carry
// meaning on expense items.
type LineItem struct {
	ID     string          `json:"id"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Type   ExpenseType     `json:"type,omitempty"`
	Folder Folder          `json:"folder,omitempty"`
}

// MonthLedger holds one month's incomes and expenses in insertion order.
type MonthLedger struct {
	Incomes  []LineItem `json:"incomes"`
	Expenses []LineItem `json:"expenses"`
}

// Items returns the sequence for the given kind.
func (l MonthLedger) Items(kind ItemKind) []LineItem {
	if kind == KindIncomes {
		return l.Incomes
	}
	return l.Expenses
}

// FolderConfig holds the target percentage of income for each folder.
// The percentages are not required to sum to 100.
type FolderConfig struct {
	Needs   decimal.Decimal `json:"needs"`
	Wants   decimal.Decimal `json:"wants"`
	Savings decimal.Decimal `json:"savings"`
}

// Percent returns the configured percentage for a folder, zero for
// unknown folders.
func (c FolderConfig) Percent(f Folder) decimal.Decimal {
	switch f {
	case FolderNeeds:
		return c.Needs
	case FolderWants:
		return c.Wants
	case FolderSavings:
		return c.Savings
	}
	return decimal.Zero
}

// Sum returns needs + wants + savings.
func (c FolderConfig) Sum() decimal.Decimal {
	return c.Needs.Add(c.Wants).Add(c.Savings)
}

// Debt is one entry in the repayment plan.
type Debt struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Principal decimal.Decimal `json:"principal"`
	Rate      decimal.Decimal `json:"rate"`
}
