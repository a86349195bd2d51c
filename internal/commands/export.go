package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trifold-dev/trifold/internal/state"
)

func newExportCommand() *cobra.Command {
	var output string
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the budget as a JSON snapshot or the month as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore(cmd)
			if err != nil {
				return err
			}

			if asCSV {
				return runExportCSV(cmd, store, output)
			}
			return runExportJSON(cmd, store, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: derived from the month)")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "export the selected month's line items as CSV")
	return cmd
}

func runExportJSON(cmd *cobra.Command, store *state.Store, output string) error {
	data, name, err := state.ExportSnapshot(store.State())
	if err != nil {
		return err
	}
	if output != "" {
		name = output
	}

	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", name)
	return nil
}

func runExportCSV(cmd *cobra.Command, store *state.Store, output string) error {
	if output == "" {
		output = fmt.Sprintf("finance-%s.csv", store.Month())
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer f.Close()

	if err := state.WriteLedgerCSV(f, store.CurrentLedger()); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", output)
	return nil
}
