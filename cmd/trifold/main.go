package main

import (
	"os"

	"github.com/trifold-dev/trifold/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
