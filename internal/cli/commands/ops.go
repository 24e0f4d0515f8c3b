package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/queryc/pkg/lower"
)

// NewOpsCommand creates the ops command, which lists every operation kind a
// dialect knows about and whether it is supported or refused.
func NewOpsCommand() *cobra.Command {
	var (
		dialectFlag string
		formatFlag  string
		deniedOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "ops",
		Short: "List the operations a dialect supports",
		Long: `List every operation kind in a dialect's lowering table.

Supported kinds lower to SQL; denied kinds are on the dialect's denylist
and fail with an unsupported-operation error.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, reg, err := resolveRegistry(dialectFlag)
			if err != nil {
				return err
			}
			return renderOps(cmd.OutOrStdout(), name, reg, formatFlag, deniedOnly)
		},
	}

	cmd.Flags().StringVarP(&dialectFlag, "dialect", "d", "", "dialect to inspect (default from queryc.yaml)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "table", "output format: table or csv")
	cmd.Flags().BoolVar(&deniedOnly, "denied", false, "show only denied operations")

	return cmd
}

func renderOps(w io.Writer, dialect string, reg *lower.Registry, format string, deniedOnly bool) error {
	kinds := reg.Kinds()

	if format == "csv" {
		_, _ = fmt.Fprintln(w, "operation,status")
		for _, kind := range kinds {
			status := "supported"
			if reg.Denied(kind) {
				status = "denied"
			} else if deniedOnly {
				continue
			}
			_, _ = fmt.Fprintf(w, "%s,%s\n", kind, status)
		}
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Operation", "Status"})

	supported, denied := 0, 0
	for _, kind := range kinds {
		if reg.Denied(kind) {
			denied++
			t.AppendRow(table.Row{kind, "denied"})
			continue
		}
		supported++
		if !deniedOnly {
			t.AppendRow(table.Row{kind, "supported"})
		}
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "%s: %d supported, %d denied\n", dialect, supported, denied)
	return nil
}
