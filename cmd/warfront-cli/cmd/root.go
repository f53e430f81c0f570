package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "warfront-cli",
	Short: "Warfront combat tooling",
	Long: `Warfront CLI resolves battles offline against the same engine the
combat server runs.

Available commands:
  resolve    Resolve one battle from a YAML scenario file
  catalog    Print the unit capability table

Use "warfront-cli [command] --help" for more information about a specific command.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
