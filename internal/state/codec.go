package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trifold-dev/trifold/internal/model"
)

// Storage slot file names. The legacy slot is read once for migration and
// never written, so downgrading keeps the old data intact.
const (
	CurrentFile = "budget.v2.json"
	LegacyFile  = "budget.v1.json"
)

// ErrMalformedSnapshot reports an import file that is not valid JSON.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// Codec (de)serializes the whole budget state to versioned JSON slots in
// a data directory.
type Codec struct {
	dir string
}

// NewCodec creates a Codec rooted at a data directory.
func NewCodec(dir string) *Codec {
	return &Codec{dir: dir}
}

// legacyState is the flat single-month v1 record.
type legacyState struct {
	Month    string              `json:"month"`
	Folders  *model.FolderConfig `json:"folders"`
	DebtPlan []model.Debt        `json:"debtPlan"`
	Incomes  []model.LineItem    `json:"incomes"`
	Expenses []model.LineItem    `json:"expenses"`
}

// Load reads the current-schema record, falling back to a one-time
// migration of the legacy record, falling back to the default state.
// Load never fails: unreadable or malformed records degrade silently
// to defaults. The result always has a ledger entry for the current month.
func (c *Codec) Load() model.BudgetState {
	if data, err := os.ReadFile(filepath.Join(c.dir, CurrentFile)); err == nil {
		st := model.DefaultState()
		st.Months = nil
		if err := json.Unmarshal(data, &st); err != nil {
			return model.DefaultState()
		}
		return normalize(st)
	}

	if data, err := os.ReadFile(filepath.Join(c.dir, LegacyFile)); err == nil {
		var v1 legacyState
		if err := json.Unmarshal(data, &v1); err == nil {
			return normalize(migrate(v1))
		}
	}

	return model.DefaultState()
}

// migrate lifts a flat v1 record into the multi-month shape: the v1 month
// (or today's) becomes the sole months key holding the v1 arrays.
func migrate(v1 legacyState) model.BudgetState {
	st := model.DefaultState()
	if v1.Month != "" {
		st.Month = v1.Month
	}
	if v1.Folders != nil {
		st.Folders = *v1.Folders
	}
	st.DebtPlan = v1.DebtPlan
	st.Months = map[string]model.MonthLedger{
		st.Month: {Incomes: v1.Incomes, Expenses: v1.Expenses},
	}
	return st
}

// normalize upholds the invariant that months always holds an entry for
// the selected month.
func normalize(st model.BudgetState) model.BudgetState {
	if st.Months == nil {
		st.Months = make(map[string]model.MonthLedger)
	}
	if _, ok := st.Months[st.Month]; !ok {
		st.Months[st.Month] = model.MonthLedger{}
	}
	return st
}

// Save writes the full state to the current-schema slot.
func (c *Codec) Save(st model.BudgetState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(c.dir, CurrentFile), data, 0o644); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}

// ExportSnapshot serializes the state for download, pretty-printed, with a
// filename derived from the active month.
func ExportSnapshot(st model.BudgetState) ([]byte, string, error) {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("marshaling snapshot: %w", err)
	}
	return data, fmt.Sprintf("finance-%s.json", st.Month), nil
}

// Snapshot is a partial budget state parsed from an import file. Nil
// fields (and an empty Month) were absent from the file and must leave
// the store's value untouched on merge.
type Snapshot struct {
	Month    string                       `json:"month"`
	Folders  *model.FolderConfig          `json:"folders"`
	DebtPlan []model.Debt                 `json:"debtPlan"`
	Months   map[string]model.MonthLedger `json:"months"`
}

// ImportSnapshot parses an import file. Malformed input yields
// ErrMalformedSnapshot and no other effect.
func ImportSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrMalformedSnapshot, err)
	}
	return snap, nil
}
