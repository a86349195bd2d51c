package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trifold-dev/trifold/internal/state"
)

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Merge a JSON snapshot into the budget",
		Long: "Merge a JSON snapshot into the budget. Any subset of the " +
			"top-level fields (month, folders, debtPlan, months) is accepted; " +
			"month ledgers present in the snapshot replace stored ones, all " +
			"other months are kept.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading snapshot: %w", err)
			}

			snap, err := state.ImportSnapshot(data)
			if err != nil {
				if errors.Is(err, state.ErrMalformedSnapshot) {
					return fmt.Errorf("%s is not a valid snapshot file, nothing imported", args[0])
				}
				return err
			}

			store, _, err := openStore(cmd)
			if err != nil {
				return err
			}
			if err := store.ImportMerge(snap); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s, now on month %s\n", args[0], store.Month())
			return nil
		},
	}
}
