package state

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trifold-dev/trifold/internal/id"
	"github.com/trifold-dev/trifold/internal/model"
)

func confirmYes(string) bool { return true }
func confirmNo(string) bool  { return false }

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(NewCodec(t.TempDir()), &id.Sequence{}, zerolog.Nop())
}

func TestSetMonthCreatesEmptyLedger(t *testing.T) {
	store := newTestStore(t)
	before := store.Month()

	require.NoError(t, store.SetMonth("2099-01"))

	assert.Equal(t, "2099-01", store.Month())
	assert.Empty(t, store.CurrentLedger().Incomes)
	assert.Empty(t, store.CurrentLedger().Expenses)
	assert.Contains(t, store.State().Months, before, "other months must be untouched")
}

func TestSetMonthIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetMonth("2024-06"))
	_, err := store.AddItem(model.KindIncomes, "salary", "1000", "", "")
	require.NoError(t, err)

	require.NoError(t, store.SetMonth("2024-06"))

	assert.Len(t, store.CurrentLedger().Incomes, 1, "reselecting must not clear the ledger")
}

func TestUpdateCurrentMonthMergesPatch(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetMonth("2024-06"))

	incomes := []model.LineItem{{ID: "i1", Label: "salary", Amount: model.CoerceAmount("900")}}
	require.NoError(t, store.UpdateCurrentMonth(LedgerPatch{Incomes: incomes}))

	expenses := []model.LineItem{{ID: "e1", Label: "rent", Amount: model.CoerceAmount("400")}}
	require.NoError(t, store.UpdateCurrentMonth(LedgerPatch{Expenses: expenses}))

	ledger := store.CurrentLedger()
	assert.Len(t, ledger.Incomes, 1, "patching expenses must keep incomes")
	assert.Len(t, ledger.Expenses, 1)
}

func TestResetCurrentMonth(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddItem(model.KindExpenses, "rent", "700", model.TypeFixed, model.FolderNeeds)
	require.NoError(t, err)

	done, err := store.ResetCurrentMonth(confirmYes)
	require.NoError(t, err)

	assert.True(t, done)
	assert.Empty(t, store.CurrentLedger().Expenses)
}

func TestResetCurrentMonthDeclined(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddItem(model.KindExpenses, "rent", "700", model.TypeFixed, model.FolderNeeds)
	require.NoError(t, err)

	done, err := store.ResetCurrentMonth(confirmNo)
	require.NoError(t, err)

	assert.False(t, done)
	assert.Len(t, store.CurrentLedger().Expenses, 1)
}

func TestDeleteCurrentMonthRepointsToGreatestRemaining(t *testing.T) {
	dir := t.TempDir()
	writeSlot(t, dir, CurrentFile, `{
		"month": "2023-02",
		"months": {
			"2023-01": {"incomes": [{"id": "i1", "label": "salary", "amount": 1000}], "expenses": []},
			"2023-02": {"incomes": [], "expenses": []}
		}
	}`)
	store := NewStore(NewCodec(dir), &id.Sequence{}, zerolog.Nop())

	done, err := store.DeleteCurrentMonth(confirmYes)
	require.NoError(t, err)
	require.True(t, done)

	assert.Equal(t, "2023-01", store.Month())
	assert.NotContains(t, store.State().Months, "2023-02")
	assert.Len(t, store.CurrentLedger().Incomes, 1, "surviving ledger must be intact")
}

func TestDeleteLastMonthFallsBackToCalendarMonth(t *testing.T) {
	store := NewStore(NewCodec(t.TempDir()), &id.Sequence{}, zerolog.Nop())
	require.NoError(t, store.SetMonth("1999-01"))

	// First delete repoints to the default month seeded at load time,
	// the second leaves months empty and must fall back to the present
	// calendar month.
	for i := 0; i < 2; i++ {
		done, err := store.DeleteCurrentMonth(confirmYes)
		require.NoError(t, err)
		require.True(t, done)
	}

	assert.Equal(t, model.CurrentMonthKey(), store.Month())
	assert.Contains(t, store.State().Months, store.Month())
}

func TestDeleteCurrentMonthDeclined(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetMonth("2023-02"))

	done, err := store.DeleteCurrentMonth(confirmNo)
	require.NoError(t, err)

	assert.False(t, done)
	assert.Equal(t, "2023-02", store.Month())
	assert.Contains(t, store.State().Months, "2023-02")
}

func TestSetFoldersAcceptsAnyPercentages(t *testing.T) {
	store := newTestStore(t)

	cfg := model.FolderConfig{
		Needs:   model.CoerceAmount("70"),
		Wants:   model.CoerceAmount("50"),
		Savings: model.CoerceAmount("10"),
	}
	require.NoError(t, store.SetFolders(cfg))

	assert.Equal(t, "130", store.State().Folders.Sum().String())
}

func TestImportMergeMonthsKeyByKey(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetMonth("2023-02"))
	_, err := store.AddItem(model.KindIncomes, "salary", "1000", "", "")
	require.NoError(t, err)

	snap, err := ImportSnapshot([]byte(`{"months":{"2023-03":{"incomes":[{"id":"x","label":"bonus","amount":50}],"expenses":[]}}}`))
	require.NoError(t, err)
	require.NoError(t, store.ImportMerge(snap))

	st := store.State()
	assert.Contains(t, st.Months, "2023-02")
	assert.Contains(t, st.Months, "2023-03")
	assert.Len(t, st.Months["2023-02"].Incomes, 1, "existing month must be untouched")
	assert.Len(t, st.Months["2023-03"].Incomes, 1)
	assert.Equal(t, "2023-02", st.Month, "absent month field must not move the cursor")
	assert.Equal(t, "50", st.Folders.Needs.String(), "absent folders must be untouched")
}

func TestImportMergeReplacesPresentFields(t *testing.T) {
	store := newTestStore(t)

	snap, err := ImportSnapshot([]byte(`{
		"month": "2023-07",
		"folders": {"needs": 60, "wants": 20, "savings": 20},
		"debtPlan": [{"id": "d1", "name": "loan", "principal": 100, "rate": 4}],
		"months": {"2023-07": {"incomes": [], "expenses": []}}
	}`))
	require.NoError(t, err)
	require.NoError(t, store.ImportMerge(snap))

	st := store.State()
	assert.Equal(t, "2023-07", st.Month)
	assert.Equal(t, "60", st.Folders.Needs.String())
	require.Len(t, st.DebtPlan, 1)
	assert.Equal(t, "loan", st.DebtPlan[0].Name)
}

func TestImportMergeReplacesMonthWholesale(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetMonth("2023-02"))
	_, err := store.AddItem(model.KindExpenses, "rent", "700", model.TypeFixed, model.FolderNeeds)
	require.NoError(t, err)

	snap, err := ImportSnapshot([]byte(`{"months":{"2023-02":{"incomes":[],"expenses":[]}}}`))
	require.NoError(t, err)
	require.NoError(t, store.ImportMerge(snap))

	assert.Empty(t, store.State().Months["2023-02"].Expenses)
}

func TestEveryMutationPersists(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(NewCodec(dir), &id.Sequence{}, zerolog.Nop())

	_, err := store.AddItem(model.KindExpenses, "rent", "700", model.TypeFixed, model.FolderNeeds)
	require.NoError(t, err)

	reloaded := NewCodec(dir).Load()
	require.Contains(t, reloaded.Months, store.Month())
	require.Len(t, reloaded.Months[store.Month()].Expenses, 1)
	assert.Equal(t, "rent", reloaded.Months[store.Month()].Expenses[0].Label)
}
