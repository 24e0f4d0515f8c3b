package lower_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/queryc/pkg/datatypes"
	"github.com/leapstack-labs/queryc/pkg/lower"
	"github.com/leapstack-labs/queryc/pkg/ops"
	"github.com/leapstack-labs/queryc/pkg/sqlast"
)

func intCol(name string) *ops.Column {
	return &ops.Column{Name: name, DataType: datatypes.Int64}
}

func boolCol(name string) *ops.Column {
	return &ops.Column{Name: name, DataType: datatypes.Boolean}
}

func TestLowerColumnAndLiteral(t *testing.T) {
	reg := lower.NewBuilder().MustBuild()

	expr, err := lower.Lower(reg, &ops.Column{Name: "amount", Table: "orders", DataType: datatypes.Int64})
	require.NoError(t, err)
	assert.Equal(t, &sqlast.ColumnRef{Table: "orders", Column: "amount"}, expr)

	expr, err = lower.Lower(reg, &ops.Literal{Value: int64(42), DataType: datatypes.Int64})
	require.NoError(t, err)
	assert.Equal(t, &sqlast.Literal{Value: int64(42)}, expr)
}

func TestLowerBinaryOperator(t *testing.T) {
	reg := lower.NewBuilder().MustBuild()

	node := &ops.Binary{
		Op:       ops.KindAdd,
		Left:     intCol("a"),
		Right:    &ops.Literal{Value: int64(1), DataType: datatypes.Int64},
		DataType: datatypes.Int64,
	}
	expr, err := lower.Lower(reg, node)
	require.NoError(t, err)
	assert.Equal(t, &sqlast.BinaryExpr{
		Left:  &sqlast.ColumnRef{Column: "a"},
		Op:    "+",
		Right: &sqlast.Literal{Value: int64(1)},
	}, expr)
}

func TestLowerReductionWithFilter(t *testing.T) {
	reg := lower.NewBuilder().MustBuild()

	node := &ops.Reduction{
		Op:       ops.KindSum,
		Arg:      intCol("amount"),
		Where:    boolCol("active"),
		DataType: datatypes.Int64,
	}
	expr, err := lower.Lower(reg, node)
	require.NoError(t, err)

	// The filter becomes CASE WHEN active THEN amount ELSE NULL END.
	call, ok := expr.(*sqlast.FuncCall)
	require.True(t, ok)
	assert.Equal(t, "sum", call.Name)
	require.Len(t, call.Args, 1)

	masked, ok := call.Args[0].(*sqlast.CaseExpr)
	require.True(t, ok)
	require.Len(t, masked.Whens, 1)
	assert.Equal(t, &sqlast.ColumnRef{Column: "active"}, masked.Whens[0].Condition)
	assert.Equal(t, &sqlast.ColumnRef{Column: "amount"}, masked.Whens[0].Result)
	assert.Equal(t, sqlast.Null(), masked.Else)
}

func TestLowerVarianceHow(t *testing.T) {
	reg := lower.NewBuilder().MustBuild()

	for how, name := range map[string]string{"sample": "var_samp", "pop": "var_pop"} {
		node := &ops.Reduction{
			Op:       ops.KindVariance,
			Arg:      intCol("x"),
			How:      how,
			DataType: datatypes.Float64,
		}
		expr, err := lower.Lower(reg, node)
		require.NoError(t, err)
		assert.Equal(t, sqlast.Call(name, &sqlast.ColumnRef{Column: "x"}), expr)
	}

	_, err := lower.Lower(reg, &ops.Reduction{
		Op:       ops.KindVariance,
		Arg:      intCol("x"),
		How:      "bootstrap",
		DataType: datatypes.Float64,
	})
	require.ErrorIs(t, err, lower.ErrUnsupportedArgument)
}

func TestLowerDigestRejectsUnknownAlgorithm(t *testing.T) {
	reg := lower.NewBuilder().MustBuild()

	node := &ops.Digest{
		Op:  ops.KindHexDigest,
		How: "crc32",
		Arg: &ops.Column{Name: "payload", DataType: datatypes.String},
	}
	_, err := lower.Lower(reg, node)
	require.ErrorIs(t, err, lower.ErrUnknownAlgorithm)
}

func TestDepthGuard(t *testing.T) {
	reg := lower.NewBuilder().MustBuild()

	var node ops.Node = boolCol("flag")
	for i := 0; i < 10; i++ {
		node = &ops.Unary{Op: ops.KindNot, Arg: node, DataType: datatypes.Boolean}
	}

	_, err := lower.Lower(reg, node, lower.WithMaxDepth(5))
	require.ErrorIs(t, err, lower.ErrDepthExceeded)

	_, err = lower.Lower(reg, node)
	require.NoError(t, err)
}

func TestPredicateContextPropagates(t *testing.T) {
	var sawPredicate bool
	probe := func(tr *lower.Translator, _ ops.Node) (sqlast.Expr, error) {
		sawPredicate = tr.InPredicate()
		return sqlast.Null(), nil
	}
	reg := lower.NewBuilder().Override(ops.KindNot, probe).MustBuild()

	node := &ops.Unary{Op: ops.KindNot, Arg: boolCol("flag"), DataType: datatypes.Boolean}

	_, err := lower.Lower(reg, node)
	require.NoError(t, err)
	assert.False(t, sawPredicate)

	_, err = lower.LowerPredicate(reg, node)
	require.NoError(t, err)
	assert.True(t, sawPredicate)
}

func TestTruncateRejectsUnknownUnit(t *testing.T) {
	reg := lower.NewBuilder().MustBuild()

	node := &ops.Truncate{
		Op:   ops.KindTimestampTruncate,
		Arg:  &ops.Column{Name: "ts", DataType: datatypes.Timestamp()},
		Unit: datatypes.IntervalUnit("fortnight"),
	}
	_, err := lower.Lower(reg, node)
	require.ErrorIs(t, err, lower.ErrUnsupportedOperation)
}
