// Package cli provides the command-line interface for queryc.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/queryc/internal/cli/commands"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "queryc",
		Short: "queryc - SQL dialect lowering inspector",
		Long: `queryc lowers typed operation trees into dialect-specific SQL expressions.

The CLI exposes the lowering tables for inspection: which operations a
dialect supports, which it refuses, and what SQL a sample operation tree
lowers to.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewOpsCommand())
	rootCmd.AddCommand(commands.NewExplainCommand())
	rootCmd.AddCommand(commands.NewDialectsCommand())

	return rootCmd
}
