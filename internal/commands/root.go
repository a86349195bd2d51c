package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/trifold-dev/trifold/internal/buildinfo"
	"github.com/trifold-dev/trifold/internal/config"
	"github.com/trifold-dev/trifold/internal/id"
	"github.com/trifold-dev/trifold/internal/state"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "trifold",
		Short:   "50/30/20 monthly budget tracker",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("dir", "", "trifold directory (default: the per-user config dir)")

	rootCmd.AddCommand(
		newInitCommand(),
		newMonthCommand(),
		newItemCommand(itemKindIncome),
		newItemCommand(itemKindExpense),
		newFoldersCommand(),
		newDebtCommand(),
		newSummaryCommand(),
		newExportCommand(),
		newImportCommand(),
	)

	return rootCmd
}

// resolveDir returns the trifold directory from the --dir flag or the
// per-user default.
func resolveDir(cmd *cobra.Command) (string, error) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return "", err
	}
	if dir != "" {
		return dir, nil
	}
	return config.DefaultDir()
}

// openStore loads the config and wraps the persisted state in a Store.
func openStore(cmd *cobra.Command) (*state.Store, *config.Config, error) {
	dir, err := resolveDir(cmd)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.LoadOrDefault(dir)
	if err != nil {
		return nil, nil, err
	}
	store := state.NewStore(state.NewCodec(cfg.Data.Dir), id.Random{}, log.Logger)
	return store, cfg, nil
}

// newConfirm builds the confirmation capability for destructive commands:
// an interactive y/N prompt, short-circuited by --yes or the assume_yes
// config setting.
func newConfirm(cmd *cobra.Command, assumeYes bool) state.Confirm {
	return func(action string) bool {
		if assumeYes {
			return true
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Really %s? [y/N]: ", action)
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}
