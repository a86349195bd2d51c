package commands

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/trifold-dev/trifold/internal/model"
)

func newMonthCommand() *cobra.Command {
	monthCmd := &cobra.Command{
		Use:   "month",
		Short: "Select and manage month ledgers",
	}
	monthCmd.AddCommand(
		newMonthSetCommand(),
		newMonthListCommand(),
		newMonthResetCommand(),
		newMonthDeleteCommand(),
	)
	return monthCmd
}

func newMonthSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <YYYY-MM>",
		Short: "Select a month, creating its ledger if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !model.ValidMonthKey(key) {
				return fmt.Errorf("invalid month key %q, want YYYY-MM", key)
			}

			store, _, err := openStore(cmd)
			if err != nil {
				return err
			}
			if err := store.SetMonth(key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Selected month %s\n", key)
			return nil
		},
	}
}

func newMonthListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all month ledgers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore(cmd)
			if err != nil {
				return err
			}

			st := store.State()
			keys := make([]string, 0, len(st.Months))
			for key := range st.Months {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Month", "Incomes", "Expenses", ""})
			t.SetColumnConfigs(rightAligned(2, 3))
			for _, key := range keys {
				marker := ""
				if key == st.Month {
					marker = "current"
				}
				ledger := st.Months[key]
				t.AppendRow(table.Row{key, len(ledger.Incomes), len(ledger.Expenses), marker})
			}
			t.Render()
			return nil
		},
	}
}

func newMonthResetCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the selected month's incomes and expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := openStore(cmd)
			if err != nil {
				return err
			}

			done, err := store.ResetCurrentMonth(newConfirm(cmd, yes || cfg.Prompts.AssumeYes))
			if err != nil {
				return err
			}
			if !done {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared month %s\n", store.Month())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newMonthDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the selected month entirely",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := openStore(cmd)
			if err != nil {
				return err
			}

			deleted := store.Month()
			done, err := store.DeleteCurrentMonth(newConfirm(cmd, yes || cfg.Prompts.AssumeYes))
			if err != nil {
				return err
			}
			if !done {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted month %s, now on %s\n", deleted, store.Month())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
