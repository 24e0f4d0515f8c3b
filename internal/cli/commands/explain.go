package commands

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/queryc/pkg/datatypes"
	"github.com/leapstack-labs/queryc/pkg/lower"
	"github.com/leapstack-labs/queryc/pkg/ops"
	"github.com/leapstack-labs/queryc/pkg/render"
)

// samples are small named operation trees that exercise the corners of a
// lowering table: boolean aggregation, contextual negation, corrected
// string length, temporal truncation, digests.
func samples() map[string]ops.Node {
	flag := &ops.Column{Name: "active", DataType: datatypes.Boolean}
	name := &ops.Column{Name: "name", DataType: datatypes.String}
	created := &ops.Column{Name: "created_at", DataType: datatypes.Timestamp()}

	return map[string]ops.Node{
		"sum-of-boolean": &ops.Reduction{
			Op: ops.KindSum, Arg: flag, DataType: datatypes.Int64,
		},
		"filtered-count": &ops.Reduction{
			Op: ops.KindCount, Arg: name, Where: flag, DataType: datatypes.Int64,
		},
		"negation": &ops.Unary{
			Op: ops.KindNot, Arg: flag, DataType: datatypes.Boolean,
		},
		"string-length": &ops.Unary{
			Op: ops.KindStringLength, Arg: name, DataType: datatypes.Int32,
		},
		"capitalize": &ops.Unary{
			Op: ops.KindCapitalize, Arg: name, DataType: datatypes.String,
		},
		"truncate-to-month": &ops.Truncate{
			Op: ops.KindTimestampTruncate, Arg: created, Unit: datatypes.UnitMonth,
		},
		"weekly-bucket": &ops.Bucket{
			Arg: created,
			Interval: &ops.Literal{
				Value:    int64(1),
				DataType: datatypes.Interval(datatypes.UnitWeek),
			},
		},
		"sha256-hex": &ops.Digest{
			Op: ops.KindHexDigest, How: "sha256", Arg: name,
		},
		"decimal-literal": &ops.Literal{
			Value:    decimal.RequireFromString("1.2300"),
			DataType: datatypes.Decimal(12, 4),
		},
	}
}

// NewExplainCommand creates the explain command, which lowers built-in
// sample operation trees and prints the resulting SQL.
func NewExplainCommand() *cobra.Command {
	var dialectFlag string

	cmd := &cobra.Command{
		Use:   "explain [sample]",
		Short: "Lower sample operation trees and print the SQL",
		Long: `Lower built-in sample operation trees through a dialect's table and
print the rendered SQL, or the lowering error for refused operations.

With no argument, every sample is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, reg, err := resolveRegistry(dialectFlag)
			if err != nil {
				return err
			}

			all := samples()
			picked := make([]string, 0, len(all))
			if len(args) == 1 {
				if _, ok := all[args[0]]; !ok {
					return fmt.Errorf("unknown sample %q", args[0])
				}
				picked = append(picked, args[0])
			} else {
				for sample := range all {
					picked = append(picked, sample)
				}
				sort.Strings(picked)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Sample", "SQL"})

			for _, sample := range picked {
				t.AppendRow(table.Row{sample, explainOne(reg, all[sample])})
			}

			t.Render()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "dialect: %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dialectFlag, "dialect", "d", "", "dialect to lower with (default from queryc.yaml)")

	return cmd
}

func explainOne(reg *lower.Registry, node ops.Node) string {
	expr, err := lower.Lower(reg, node)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	sql, err := render.Expr(expr)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return sql
}
