package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BudgetState is the root object persisted as a whole. Month is both the
// persisted value and the UI-selected month cursor.
type BudgetState struct {
	Month    string                 `json:"month"`
	Months   map[string]MonthLedger `json:"months"`
	Folders  FolderConfig           `json:"folders"`
	DebtPlan []Debt                 `json:"debtPlan"`
}

// Ledger returns the ledger for the current month, or an empty one if the
// entry has not been created yet.
func (s BudgetState) Ledger() MonthLedger {
	return s.Months[s.Month]
}

const monthKeyFormat = "2006-01"

// CurrentMonthKey returns the present calendar month as "YYYY-MM".
func CurrentMonthKey() string {
	return time.Now().Format(monthKeyFormat)
}

// ValidMonthKey reports whether s is a well-formed "YYYY-MM" month key.
func ValidMonthKey(s string) bool {
	_, err := time.Parse(monthKeyFormat, s)
	return err == nil
}

// DefaultFolders returns the classic 50/30/20 split.
func DefaultFolders() FolderConfig {
	return FolderConfig{
		Needs:   decimal.NewFromInt(50),
		Wants:   decimal.NewFromInt(30),
		Savings: decimal.NewFromInt(20),
	}
}

// DefaultState returns a fresh state for the present calendar month with an
// empty ledger, the default folder split and no debts.
func DefaultState() BudgetState {
	month := CurrentMonthKey()
	return BudgetState{
		Month:    month,
		Months:   map[string]MonthLedger{month: {}},
		Folders:  DefaultFolders(),
		DebtPlan: nil,
	}
}

// CoerceAmount parses a numeric input the permissive way: any value that
// does not parse as a number (including the empty string) becomes zero.
func CoerceAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
