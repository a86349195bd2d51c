package state

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trifold-dev/trifold/internal/model"
)

func TestAddItemGeneratesIDs(t *testing.T) {
	store := newTestStore(t)

	first, err := store.AddItem(model.KindIncomes, "salary", "1500", "", "")
	require.NoError(t, err)
	second, err := store.AddItem(model.KindExpenses, "rent", "700", model.TypeFixed, model.FolderNeeds)
	require.NoError(t, err)

	assert.Equal(t, "id-1", first.ID)
	assert.Equal(t, "id-2", second.ID)

	ledger := store.CurrentLedger()
	require.Len(t, ledger.Incomes, 1)
	require.Len(t, ledger.Expenses, 1)
	assert.Equal(t, "1500", ledger.Incomes[0].Amount.String())
	assert.Equal(t, model.FolderNeeds, ledger.Expenses[0].Folder)
}

func TestAddItemCoercesAmount(t *testing.T) {
	store := newTestStore(t)

	item, err := store.AddItem(model.KindExpenses, "mystery", "not a number", "", "")
	require.NoError(t, err)

	assert.Equal(t, "0", item.Amount.String())
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	store := newTestStore(t)
	for _, label := range []string{"first", "second", "third"} {
		_, err := store.AddItem(model.KindExpenses, label, "10", "", "")
		require.NoError(t, err)
	}

	expenses := store.CurrentLedger().Expenses
	require.Len(t, expenses, 3)
	assert.Equal(t, "first", expenses[0].Label)
	assert.Equal(t, "second", expenses[1].Label)
	assert.Equal(t, "third", expenses[2].Label)
}

func TestUpdateItem(t *testing.T) {
	store := newTestStore(t)
	item, err := store.AddItem(model.KindExpenses, "rent", "700", model.TypeFixed, model.FolderNeeds)
	require.NoError(t, err)

	require.NoError(t, store.UpdateItem(model.KindExpenses, item.ID, "amount", "750"))
	require.NoError(t, store.UpdateItem(model.KindExpenses, item.ID, "label", "rent + utilities"))
	require.NoError(t, store.UpdateItem(model.KindExpenses, item.ID, "folder", "wants"))

	got := store.CurrentLedger().Expenses[0]
	assert.Equal(t, "750", got.Amount.String())
	assert.Equal(t, "rent + utilities", got.Label)
	assert.Equal(t, model.FolderWants, got.Folder)
}

func TestUpdateItemCoercesBadAmountToZero(t *testing.T) {
	store := newTestStore(t)
	item, err := store.AddItem(model.KindExpenses, "rent", "700", "", "")
	require.NoError(t, err)

	require.NoError(t, store.UpdateItem(model.KindExpenses, item.ID, "amount", ""))

	assert.Equal(t, "0", store.CurrentLedger().Expenses[0].Amount.String())
}

func TestUpdateItemUnknownIDIsNoOp(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddItem(model.KindExpenses, "rent", "700", "", "")
	require.NoError(t, err)

	require.NoError(t, store.UpdateItem(model.KindExpenses, "missing", "amount", "1"))

	assert.Equal(t, "700", store.CurrentLedger().Expenses[0].Amount.String())
}

func TestUpdateItemUnknownField(t *testing.T) {
	store := newTestStore(t)
	item, err := store.AddItem(model.KindExpenses, "rent", "700", "", "")
	require.NoError(t, err)

	err = store.UpdateItem(model.KindExpenses, item.ID, "color", "red")
	assert.Error(t, err)
}

func TestRemoveItem(t *testing.T) {
	store := newTestStore(t)
	item, err := store.AddItem(model.KindIncomes, "salary", "1000", "", "")
	require.NoError(t, err)
	_, err = store.AddItem(model.KindIncomes, "bonus", "100", "", "")
	require.NoError(t, err)

	require.NoError(t, store.RemoveItem(model.KindIncomes, item.ID))

	incomes := store.CurrentLedger().Incomes
	require.Len(t, incomes, 1)
	assert.Equal(t, "bonus", incomes[0].Label)

	// Unknown ID is a silent no-op.
	require.NoError(t, store.RemoveItem(model.KindIncomes, "missing"))
	assert.Len(t, store.CurrentLedger().Incomes, 1)
}

func TestDebtPlanCRUD(t *testing.T) {
	store := newTestStore(t)

	first, err := store.AddDebt("credit card", "2500", "21.9")
	require.NoError(t, err)
	_, err = store.AddDebt("car loan", "oops", "5")
	require.NoError(t, err)

	plan := store.State().DebtPlan
	require.Len(t, plan, 2)
	assert.Equal(t, "21.9", plan[0].Rate.String())
	assert.Equal(t, "0", plan[1].Principal.String(), "bad principal coerces to zero")

	require.NoError(t, store.UpdateDebt(first.ID, "rate", "19.9"))
	assert.Equal(t, "19.9", store.State().DebtPlan[0].Rate.String())

	require.NoError(t, store.RemoveDebt(first.ID))
	plan = store.State().DebtPlan
	require.Len(t, plan, 1)
	assert.Equal(t, "car loan", plan[0].Name)
}

func TestWriteLedgerCSV(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddItem(model.KindIncomes, "salary", "1500", "", "")
	require.NoError(t, err)
	_, err = store.AddItem(model.KindExpenses, "rent", "700", model.TypeFixed, model.FolderNeeds)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteLedgerCSV(&buf, store.CurrentLedger()))

	want := "kind,id,label,amount,type,folder\n" +
		"incomes,id-1,salary,1500.00,,\n" +
		"expenses,id-2,rent,700.00,fixed,needs\n"
	assert.Equal(t, want, buf.String())
}
