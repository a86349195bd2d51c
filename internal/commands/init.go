package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/trifold-dev/trifold/internal/config"
)

func newInitCommand() *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize the trifold directory and configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir string
			var err error
			if len(args) > 0 {
				dir, err = filepath.Abs(args[0])
			} else {
				dir, err = resolveDir(cmd)
			}
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(cmd, dir, currency)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "лв", "currency label used in output")

	return cmd
}

func runInit(cmd *cobra.Command, dir, currency string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}

	cfg := config.Default(dir)
	cfg.Display.Currency = currency
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized trifold in %s\n", dir)
	return nil
}
