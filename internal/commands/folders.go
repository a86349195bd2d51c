package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trifold-dev/trifold/internal/model"
)

func newFoldersCommand() *cobra.Command {
	foldersCmd := &cobra.Command{
		Use:   "folders",
		Short: "Manage the needs/wants/savings percentages",
	}
	foldersCmd.AddCommand(newFoldersSetCommand())
	return foldersCmd
}

func newFoldersSetCommand() *cobra.Command {
	var needs, wants, savings string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace the folder percentages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore(cmd)
			if err != nil {
				return err
			}

			cfg := model.FolderConfig{
				Needs:   model.CoerceAmount(needs),
				Wants:   model.CoerceAmount(wants),
				Savings: model.CoerceAmount(savings),
			}
			if err := store.SetFolders(cfg); err != nil {
				return err
			}

			// Informational only: sums other than 100 are accepted and
			// simply stop partitioning income cleanly.
			sum := cfg.Sum()
			fmt.Fprintf(cmd.OutOrStdout(), "Folders set to %s/%s/%s (sum %s%%)\n",
				cfg.Needs, cfg.Wants, cfg.Savings, sum)
			if !sum.Equal(model.CoerceAmount("100")) {
				fmt.Fprintln(cmd.OutOrStdout(), "Note: percentages do not sum to 100.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&needs, "needs", "50", "needs percentage")
	cmd.Flags().StringVar(&wants, "wants", "30", "wants percentage")
	cmd.Flags().StringVar(&savings, "savings", "20", "savings percentage")
	return cmd
}
