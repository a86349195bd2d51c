package commands

import (
	"fmt"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/trifold-dev/trifold/internal/model"
)

// itemCommandSpec parameterizes the income and expense command trees,
// which differ only in the target sequence and the expense-only fields.
type itemCommandSpec struct {
	use     string
	kind    model.ItemKind
	expense bool
}

var (
	itemKindIncome  = itemCommandSpec{use: "income", kind: model.KindIncomes}
	itemKindExpense = itemCommandSpec{use: "expense", kind: model.KindExpenses, expense: true}
)

func newItemCommand(spec itemCommandSpec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   spec.use,
		Short: fmt.Sprintf("Manage the selected month's %ss", spec.use),
	}
	cmd.AddCommand(
		newItemAddCommand(spec),
		newItemEditCommand(spec),
		newItemRemoveCommand(spec),
		newItemListCommand(spec),
	)
	return cmd
}

var (
	expenseTypes   = []string{string(model.TypeFixed), string(model.TypeVariable), string(model.TypeUnexpected)}
	expenseFolders = []string{string(model.FolderNeeds), string(model.FolderWants), string(model.FolderSavings)}
)

func newItemAddCommand(spec itemCommandSpec) *cobra.Command {
	var typ, folder string

	cmd := &cobra.Command{
		Use:   "add <label> <amount>",
		Short: fmt.Sprintf("Add an %s to the selected month", spec.use),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if typ != "" && !slices.Contains(expenseTypes, typ) {
				return fmt.Errorf("invalid type %q, want one of %v", typ, expenseTypes)
			}
			if folder != "" && !slices.Contains(expenseFolders, folder) {
				return fmt.Errorf("invalid folder %q, want one of %v", folder, expenseFolders)
			}

			store, _, err := openStore(cmd)
			if err != nil {
				return err
			}

			item, err := store.AddItem(spec.kind, args[0], args[1], model.ExpenseType(typ), model.Folder(folder))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s (%s)\n", spec.use, item.Label, item.ID)
			return nil
		},
	}

	if spec.expense {
		cmd.Flags().StringVar(&typ, "type", "", "expense type: fixed, variable or unexpected")
		cmd.Flags().StringVar(&folder, "folder", "", "budget folder: needs, wants or savings")
	}
	return cmd
}

func newItemEditCommand(spec itemCommandSpec) *cobra.Command {
	fields := "label or amount"
	if spec.expense {
		fields = "label, amount, type or folder"
	}

	return &cobra.Command{
		Use:   "edit <id> <field> <value>",
		Short: fmt.Sprintf("Replace one field (%s) of an %s", fields, spec.use),
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !spec.expense && (args[1] == "type" || args[1] == "folder") {
				return fmt.Errorf("field %q only applies to expenses", args[1])
			}

			store, _, err := openStore(cmd)
			if err != nil {
				return err
			}
			return store.UpdateItem(spec.kind, args[0], args[1], args[2])
		},
	}
}

func newItemRemoveCommand(spec itemCommandSpec) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: fmt.Sprintf("Remove an %s from the selected month", spec.use),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore(cmd)
			if err != nil {
				return err
			}
			return store.RemoveItem(spec.kind, args[0])
		},
	}
}

func newItemListCommand(spec itemCommandSpec) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List the selected month's %ss", spec.use),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := openStore(cmd)
			if err != nil {
				return err
			}

			items := store.CurrentLedger().Items(spec.kind)
			currency := cfg.Display.Currency

			t := newTable(cmd.OutOrStdout())
			var total decimal.Decimal
			if spec.expense {
				t.AppendHeader(table.Row{"ID", "Label", "Amount", "Type", "Folder"})
				t.SetColumnConfigs(rightAligned(3))
				for _, it := range items {
					t.AppendRow(table.Row{it.ID, it.Label, money(it.Amount, currency), it.Type, it.Folder})
					total = total.Add(it.Amount)
				}
				t.AppendFooter(table.Row{"", "Total", money(total, currency), "", ""})
			} else {
				t.AppendHeader(table.Row{"ID", "Label", "Amount"})
				t.SetColumnConfigs(rightAligned(3))
				for _, it := range items {
					t.AppendRow(table.Row{it.ID, it.Label, money(it.Amount, currency)})
					total = total.Add(it.Amount)
				}
				t.AppendFooter(table.Row{"", "Total", money(total, currency)})
			}
			t.Render()
			return nil
		},
	}
}
