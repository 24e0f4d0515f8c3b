package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/queryc/pkg/lower"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List registered dialects",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range lower.List() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
