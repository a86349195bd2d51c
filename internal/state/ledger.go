package state

import (
	"fmt"

	"github.com/trifold-dev/trifold/internal/model"
)

// Item and debt CRUD, scoped to the selected month (items) or the global
// debt plan (debts). Numeric inputs are coerced: anything that does not
// parse becomes zero. Unknown IDs are silent no-ops.

// AddItem appends a line item with a freshly generated ID. Type and
// folder only carry meaning for expenses but are stored as given.
func (s *Store) AddItem(kind model.ItemKind, label, amount string, typ model.ExpenseType, folder model.Folder) (model.LineItem, error) {
	item := model.LineItem{
		ID:     s.ids.NewID(),
		Label:  label,
		Amount: model.CoerceAmount(amount),
		Type:   typ,
		Folder: folder,
	}

	items := append(s.CurrentLedger().Items(kind), item)
	return item, s.patchItems(kind, items)
}

// UpdateItem replaces one field of the item with the given ID. Field is
// one of label, amount, type, folder.
func (s *Store) UpdateItem(kind model.ItemKind, itemID, field, value string) error {
	items := s.CurrentLedger().Items(kind)
	for i, it := range items {
		if it.ID != itemID {
			continue
		}
		switch field {
		case "label":
			it.Label = value
		case "amount":
			it.Amount = model.CoerceAmount(value)
		case "type":
			it.Type = model.ExpenseType(value)
		case "folder":
			it.Folder = model.Folder(value)
		default:
			return fmt.Errorf("unknown item field %q", field)
		}
		items[i] = it
		break
	}
	return s.patchItems(kind, items)
}

// RemoveItem filters out the item with the given ID.
func (s *Store) RemoveItem(kind model.ItemKind, itemID string) error {
	items := s.CurrentLedger().Items(kind)
	kept := make([]model.LineItem, 0, len(items))
	for _, it := range items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	return s.patchItems(kind, kept)
}

func (s *Store) patchItems(kind model.ItemKind, items []model.LineItem) error {
	patch := LedgerPatch{}
	if kind == model.KindIncomes {
		patch.Incomes = items
	} else {
		patch.Expenses = items
	}
	return s.UpdateCurrentMonth(patch)
}

// AddDebt appends a debt to the plan with a freshly generated ID.
func (s *Store) AddDebt(name, principal, rate string) (model.Debt, error) {
	debt := model.Debt{
		ID:        s.ids.NewID(),
		Name:      name,
		Principal: model.CoerceAmount(principal),
		Rate:      model.CoerceAmount(rate),
	}
	return debt, s.SetDebtPlan(append(s.state.DebtPlan, debt))
}

// UpdateDebt replaces one field of the debt with the given ID. Field is
// one of name, principal, rate.
func (s *Store) UpdateDebt(debtID, field, value string) error {
	debts := s.state.DebtPlan
	for i, d := range debts {
		if d.ID != debtID {
			continue
		}
		switch field {
		case "name":
			d.Name = value
		case "principal":
			d.Principal = model.CoerceAmount(value)
		case "rate":
			d.Rate = model.CoerceAmount(value)
		default:
			return fmt.Errorf("unknown debt field %q", field)
		}
		debts[i] = d
		break
	}
	return s.SetDebtPlan(debts)
}

// RemoveDebt filters out the debt with the given ID.
func (s *Store) RemoveDebt(debtID string) error {
	kept := make([]model.Debt, 0, len(s.state.DebtPlan))
	for _, d := range s.state.DebtPlan {
		if d.ID != debtID {
			kept = append(kept, d)
		}
	}
	return s.SetDebtPlan(kept)
}
