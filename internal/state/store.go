// Package state owns the persisted budget state: the versioned JSON codec
// and the Store that mutates one BudgetState and writes it through on
// every change.
package state

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/trifold-dev/trifold/internal/id"
	"github.com/trifold-dev/trifold/internal/model"
)

// Confirm gates destructive operations. It receives a short description
// of the action and reports whether the caller approved it. The store
// trusts the gate and mutates unconditionally once it returns true.
type Confirm func(action string) bool

// LedgerPatch is a partial month ledger; nil sequences are left untouched
// on merge.
type LedgerPatch struct {
	Incomes  []model.LineItem
	Expenses []model.LineItem
}

// Store owns the in-memory budget state. Every mutation saves the full
// state through the codec immediately; there is no batching. The store
// assumes a single active caller and does no locking.
type Store struct {
	codec *Codec
	ids   id.Generator
	log   zerolog.Logger
	state model.BudgetState
}

// NewStore loads the persisted state (or defaults) and wraps it in a Store.
func NewStore(codec *Codec, ids id.Generator, log zerolog.Logger) *Store {
	return &Store{codec: codec, ids: ids, log: log, state: codec.Load()}
}

// State returns the current budget state.
func (s *Store) State() model.BudgetState {
	return s.state
}

// Month returns the selected month key.
func (s *Store) Month() string {
	return s.state.Month
}

// CurrentLedger returns the selected month's ledger.
func (s *Store) CurrentLedger() model.MonthLedger {
	return s.state.Ledger()
}

// SetMonth selects a month, lazily creating an empty ledger for it.
// Idempotent.
func (s *Store) SetMonth(key string) error {
	if _, ok := s.state.Months[key]; !ok {
		s.state.Months[key] = model.MonthLedger{}
	}
	s.state.Month = key
	return s.persist("set month")
}

// UpdateCurrentMonth merges a patch into the selected month's ledger,
// creating the entry if absent.
func (s *Store) UpdateCurrentMonth(patch LedgerPatch) error {
	cur := s.state.Months[s.state.Month]
	if patch.Incomes != nil {
		cur.Incomes = patch.Incomes
	}
	if patch.Expenses != nil {
		cur.Expenses = patch.Expenses
	}
	s.state.Months[s.state.Month] = cur
	return s.persist("update month")
}

// ResetCurrentMonth replaces the selected month's ledger with an empty
// one. Returns false without mutating if the confirmation is declined.
func (s *Store) ResetCurrentMonth(confirm Confirm) (bool, error) {
	if !confirm(fmt.Sprintf("clear all incomes and expenses for %s", s.state.Month)) {
		return false, nil
	}
	s.state.Months[s.state.Month] = model.MonthLedger{}
	return true, s.persist("reset month")
}

// DeleteCurrentMonth removes the selected month entirely and repoints the
// cursor to the greatest remaining month key, or the present calendar
// month if none remain. Returns false without mutating if the
// confirmation is declined.
func (s *Store) DeleteCurrentMonth(confirm Confirm) (bool, error) {
	if !confirm(fmt.Sprintf("delete month %s entirely", s.state.Month)) {
		return false, nil
	}

	delete(s.state.Months, s.state.Month)

	remaining := make([]string, 0, len(s.state.Months))
	for key := range s.state.Months {
		remaining = append(remaining, key)
	}
	sort.Strings(remaining)

	next := model.CurrentMonthKey()
	if len(remaining) > 0 {
		next = remaining[len(remaining)-1]
	}
	if _, ok := s.state.Months[next]; !ok {
		s.state.Months[next] = model.MonthLedger{}
	}
	s.state.Month = next
	return true, s.persist("delete month")
}

// SetFolders replaces the folder percentages. No validation: the
// percentages are not required to sum to 100.
func (s *Store) SetFolders(cfg model.FolderConfig) error {
	s.state.Folders = cfg
	return s.persist("set folders")
}

// SetDebtPlan replaces the debt plan.
func (s *Store) SetDebtPlan(debts []model.Debt) error {
	s.state.DebtPlan = debts
	return s.persist("set debt plan")
}

// ImportMerge applies a parsed snapshot: scalar fields overwrite only
// when present, months merge key-by-key with incoming keys replacing
// stored ledgers wholesale.
func (s *Store) ImportMerge(snap Snapshot) error {
	if snap.Month != "" {
		s.state.Month = snap.Month
	}
	if snap.Folders != nil {
		s.state.Folders = *snap.Folders
	}
	if snap.DebtPlan != nil {
		s.state.DebtPlan = snap.DebtPlan
	}
	for key, ledger := range snap.Months {
		s.state.Months[key] = ledger
	}
	if _, ok := s.state.Months[s.state.Month]; !ok {
		s.state.Months[s.state.Month] = model.MonthLedger{}
	}
	return s.persist("import merge")
}

func (s *Store) persist(action string) error {
	if err := s.codec.Save(s.state); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	s.log.Debug().Str("action", action).Str("month", s.state.Month).Msg("state saved")
	return nil
}
