package mssql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/queryc/pkg/datatypes"
	"github.com/leapstack-labs/queryc/pkg/dialects/mssql"
	"github.com/leapstack-labs/queryc/pkg/lower"
	"github.com/leapstack-labs/queryc/pkg/ops"
	"github.com/leapstack-labs/queryc/pkg/sqlast"
)

func TestExtractCastsToSmallint(t *testing.T) {
	cases := map[ops.Kind]string{
		ops.KindExtractYear:        "year",
		ops.KindExtractMonth:       "month",
		ops.KindExtractDay:         "day",
		ops.KindExtractDayOfYear:   "dayofyear",
		ops.KindExtractHour:        "hour",
		ops.KindExtractMinute:      "minute",
		ops.KindExtractSecond:      "second",
		ops.KindExtractMillisecond: "millisecond",
		ops.KindExtractWeekOfYear:  "iso_week",
	}
	for kind, part := range cases {
		t.Run(part, func(t *testing.T) {
			expr := lowerExpr(t, &ops.Unary{
				Op:       kind,
				Arg:      tsCol("ts"),
				DataType: datatypes.Int32,
			})
			assert.Equal(t, &sqlast.CastExpr{
				Expr: sqlast.Call("datepart",
					&sqlast.Verbatim{SQL: part},
					&sqlast.ColumnRef{Column: "ts"},
				),
				TypeName: "SMALLINT",
			}, expr)
		})
	}
}

func TestExtractMicrosecondSkipsCast(t *testing.T) {
	// Microsecond values overflow SMALLINT.
	expr := lowerExpr(t, &ops.Unary{
		Op:       ops.KindExtractMicrosecond,
		Arg:      tsCol("ts"),
		DataType: datatypes.Int32,
	})
	assert.Equal(t, sqlast.Call("datepart",
		&sqlast.Verbatim{SQL: "microsecond"},
		&sqlast.ColumnRef{Column: "ts"},
	), expr)
}

func TestDayOfWeekIndexIsZeroBased(t *testing.T) {
	expr := lowerExpr(t, &ops.Unary{
		Op:       ops.KindDayOfWeekIndex,
		Arg:      tsCol("ts"),
		DataType: datatypes.Int16,
	})
	assert.Equal(t, &sqlast.BinaryExpr{
		Left: sqlast.Call("datepart",
			&sqlast.Verbatim{SQL: "weekday"},
			&sqlast.ColumnRef{Column: "ts"},
		),
		Op:    "-",
		Right: &sqlast.Literal{Value: int64(1)},
	}, expr)
}

func TestExtractEpochSeconds(t *testing.T) {
	expr := lowerExpr(t, &ops.Unary{
		Op:       ops.KindExtractEpochSeconds,
		Arg:      tsCol("ts"),
		DataType: datatypes.Int64,
	})
	assert.Equal(t, &sqlast.CastExpr{
		Expr: sqlast.Call("datediff",
			&sqlast.Verbatim{SQL: "s"},
			&sqlast.Literal{Value: "1970-01-01 00:00:00"},
			&sqlast.ColumnRef{Column: "ts"},
		),
		TypeName: "BIGINT",
	}, expr)
}

func TestTimestampFromUNIX(t *testing.T) {
	epoch := intCol("epoch")
	origin := &sqlast.Literal{Value: "1970-01-01 00:00:00"}

	expr := lowerExpr(t, &ops.TimestampFromUNIX{Arg: epoch, Unit: datatypes.UnitSecond})
	assert.Equal(t, sqlast.Call("dateadd",
		&sqlast.Verbatim{SQL: "s"},
		&sqlast.ColumnRef{Column: "epoch"},
		origin,
	), expr)

	expr = lowerExpr(t, &ops.TimestampFromUNIX{Arg: epoch, Unit: datatypes.UnitMillisecond})
	assert.Equal(t, sqlast.Call("dateadd",
		&sqlast.Verbatim{SQL: "s"},
		&sqlast.BinaryExpr{
			Left:  &sqlast.ColumnRef{Column: "epoch"},
			Op:    "/",
			Right: &sqlast.Literal{Value: int64(1000)},
		},
		origin,
	), expr)

	_, err := lower.Lower(mssql.Registry, &ops.TimestampFromUNIX{Arg: epoch, Unit: datatypes.UnitMicrosecond})
	require.ErrorIs(t, err, lower.ErrUnsupportedOperation)
}

func TestDateFromYMD(t *testing.T) {
	expr := lowerExpr(t, &ops.Variadic{
		Op:       ops.KindDateFromYMD,
		Args:     []ops.Node{intCol("y"), intCol("m"), intCol("d")},
		DataType: datatypes.Date,
	})
	assert.Equal(t, sqlast.Call("datefromparts",
		&sqlast.ColumnRef{Column: "y"},
		&sqlast.ColumnRef{Column: "m"},
		&sqlast.ColumnRef{Column: "d"},
	), expr)
}

func TestTimestampFromYMDHMSAppendsZeroMillis(t *testing.T) {
	args := []ops.Node{
		intCol("y"), intCol("mo"), intCol("d"),
		intCol("h"), intCol("mi"), intCol("s"),
	}
	expr := lowerExpr(t, &ops.Variadic{
		Op:       ops.KindTimestampFromYMDHMS,
		Args:     args,
		DataType: datatypes.Timestamp(),
	})
	assert.Equal(t, sqlast.Call("datetimefromparts",
		&sqlast.ColumnRef{Column: "y"},
		&sqlast.ColumnRef{Column: "mo"},
		&sqlast.ColumnRef{Column: "d"},
		&sqlast.ColumnRef{Column: "h"},
		&sqlast.ColumnRef{Column: "mi"},
		&sqlast.ColumnRef{Column: "s"},
		&sqlast.Literal{Value: int64(0)},
	), expr)
}

func TestTimeFromHMS(t *testing.T) {
	expr := lowerExpr(t, &ops.Variadic{
		Op:       ops.KindTimeFromHMS,
		Args:     []ops.Node{intCol("h"), intCol("m"), intCol("s")},
		DataType: datatypes.Time,
	})
	assert.Equal(t, sqlast.Call("timefromparts",
		&sqlast.ColumnRef{Column: "h"},
		&sqlast.ColumnRef{Column: "m"},
		&sqlast.ColumnRef{Column: "s"},
		&sqlast.Literal{Value: int64(0)},
		&sqlast.Verbatim{SQL: "0"},
	), expr)
}

func TestTruncateUnits(t *testing.T) {
	cases := map[datatypes.IntervalUnit]string{
		datatypes.UnitMillisecond: "millisecond",
		datatypes.UnitSecond:      "second",
		datatypes.UnitMinute:      "minute",
		datatypes.UnitHour:        "hour",
		datatypes.UnitDay:         "day",
		datatypes.UnitWeek:        "week",
		datatypes.UnitMonth:       "month",
		datatypes.UnitQuarter:     "quarter",
		datatypes.UnitYear:        "year",
	}
	for unit, keyword := range cases {
		t.Run(keyword, func(t *testing.T) {
			expr := lowerExpr(t, &ops.Truncate{
				Op:   ops.KindTimestampTruncate,
				Arg:  tsCol("ts"),
				Unit: unit,
			})
			assert.Equal(t, sqlast.Call("datetrunc",
				&sqlast.Verbatim{SQL: keyword},
				&sqlast.ColumnRef{Column: "ts"},
			), expr)
		})
	}
}

func TestTruncateRejectsMicroseconds(t *testing.T) {
	_, err := lower.Lower(mssql.Registry, &ops.Truncate{
		Op:   ops.KindTimestampTruncate,
		Arg:  tsCol("ts"),
		Unit: datatypes.UnitMicrosecond,
	})
	require.ErrorIs(t, err, lower.ErrUnsupportedOperation)
}

func TestDateTruncateSharesRule(t *testing.T) {
	expr := lowerExpr(t, &ops.Truncate{
		Op:   ops.KindDateTruncate,
		Arg:  &ops.Column{Name: "d", DataType: datatypes.Date},
		Unit: datatypes.UnitMonth,
	})
	assert.Equal(t, sqlast.Call("datetrunc",
		&sqlast.Verbatim{SQL: "month"},
		&sqlast.ColumnRef{Column: "d"},
	), expr)
}

func TestBucket(t *testing.T) {
	expr := lowerExpr(t, &ops.Bucket{
		Arg: tsCol("ts"),
		Interval: &ops.Literal{
			Value:    int64(7),
			DataType: datatypes.Interval(datatypes.UnitDay),
		},
	})
	assert.Equal(t, sqlast.Call("DATE_BUCKET",
		&sqlast.Verbatim{SQL: "day"},
		&sqlast.Verbatim{SQL: "7"},
		&sqlast.ColumnRef{Column: "ts"},
		&sqlast.Verbatim{SQL: "CAST('1970-01-01' AS DATETIME2)"},
	), expr)
}

func TestBucketRequiresLiteralInterval(t *testing.T) {
	_, err := lower.Lower(mssql.Registry, &ops.Bucket{
		Arg:      tsCol("ts"),
		Interval: &ops.Column{Name: "width", DataType: datatypes.Interval(datatypes.UnitDay)},
	})
	require.ErrorIs(t, err, lower.ErrUnsupportedArgument)
}

func TestBucketRejectsOffset(t *testing.T) {
	_, err := lower.Lower(mssql.Registry, &ops.Bucket{
		Arg: tsCol("ts"),
		Interval: &ops.Literal{
			Value:    int64(1),
			DataType: datatypes.Interval(datatypes.UnitDay),
		},
		Offset: &ops.Literal{
			Value:    int64(1),
			DataType: datatypes.Interval(datatypes.UnitHour),
		},
	})
	require.ErrorIs(t, err, lower.ErrUnsupportedOperation)
}

func TestBucketRejectsMicrosecondUnit(t *testing.T) {
	_, err := lower.Lower(mssql.Registry, &ops.Bucket{
		Arg: tsCol("ts"),
		Interval: &ops.Literal{
			Value:    int64(1),
			DataType: datatypes.Interval(datatypes.UnitMicrosecond),
		},
	})
	require.ErrorIs(t, err, lower.ErrUnsupportedOperation)
}

func TestDeltaSwapsOperandsAndUppercasesPart(t *testing.T) {
	expr := lowerExpr(t, &ops.Delta{
		Op:    ops.KindTimestampDelta,
		Part:  datatypes.UnitDay,
		Left:  tsCol("a"),
		Right: tsCol("b"),
	})

	// datediff counts from its second argument to its third, so the
	// operands swap to express left - right.
	assert.Equal(t, sqlast.Call("datediff",
		&sqlast.Verbatim{SQL: "DAY"},
		&sqlast.ColumnRef{Column: "b"},
		&sqlast.ColumnRef{Column: "a"},
	), expr)
}

func TestTimestampNow(t *testing.T) {
	expr := lowerExpr(t, &ops.Variadic{
		Op:       ops.KindTimestampNow,
		DataType: datatypes.Timestamp(),
	})
	assert.Equal(t, &sqlast.FuncCall{Name: "GETDATE", Args: []sqlast.Expr{}}, expr)
}
