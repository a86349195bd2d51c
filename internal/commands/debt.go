package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/trifold-dev/trifold/internal/debt"
)

func newDebtCommand() *cobra.Command {
	debtCmd := &cobra.Command{
		Use:   "debt",
		Short: "Manage the debt repayment plan",
	}
	debtCmd.AddCommand(
		newDebtAddCommand(),
		newDebtEditCommand(),
		newDebtRemoveCommand(),
		newDebtPlanCommand(),
	)
	return debtCmd
}

func newDebtAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <principal> <rate>",
		Short: "Add a debt to the plan",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore(cmd)
			if err != nil {
				return err
			}

			d, err := store.AddDebt(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added debt %s (%s)\n", d.Name, d.ID)
			return nil
		},
	}
}

func newDebtEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <field> <value>",
		Short: "Replace one field (name, principal or rate) of a debt",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore(cmd)
			if err != nil {
				return err
			}
			return store.UpdateDebt(args[0], args[1], args[2])
		},
	}
}

func newDebtRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a debt from the plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore(cmd)
			if err != nil {
				return err
			}
			return store.RemoveDebt(args[0])
		},
	}
}

func newDebtPlanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show the repayment order (highest interest rate first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := openStore(cmd)
			if err != nil {
				return err
			}

			ordered := debt.Prioritize(store.State().DebtPlan)
			if len(ordered) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No debts in the plan.")
				return nil
			}

			currency := cfg.Display.Currency
			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"#", "ID", "Name", "Principal", "Rate"})
			t.SetColumnConfigs(rightAligned(4, 5))
			for i, d := range ordered {
				t.AppendRow(table.Row{i + 1, d.ID, d.Name, money(d.Principal, currency), percent(d.Rate)})
			}
			t.Render()

			fmt.Fprintf(cmd.OutOrStdout(),
				"Put every spare amount toward #1 (%s); pay the minimum on the rest.\n",
				ordered[0].Name)
			return nil
		},
	}
}
