package mssql_test

import (
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/queryc/pkg/datatypes"
	"github.com/leapstack-labs/queryc/pkg/dialects/mssql"
	"github.com/leapstack-labs/queryc/pkg/lower"
	"github.com/leapstack-labs/queryc/pkg/ops"
	"github.com/leapstack-labs/queryc/pkg/sqlast"
)

func intArg(v int) *sqlast.Literal {
	return &sqlast.Literal{Value: int64(v)}
}

func TestNullLiteral(t *testing.T) {
	expr := lowerExpr(t, &ops.Literal{Value: nil, DataType: datatypes.String})
	assert.Equal(t, sqlast.Null(), expr)
}

func TestScalarLiteralsPassThrough(t *testing.T) {
	for name, value := range map[string]any{
		"bool":   true,
		"int":    int64(7),
		"float":  3.5,
		"string": "hello",
	} {
		t.Run(name, func(t *testing.T) {
			expr := lowerExpr(t, &ops.Literal{Value: value, DataType: datatypes.String})
			assert.Equal(t, &sqlast.Literal{Value: value}, expr)
		})
	}
}

func TestDateLiteral(t *testing.T) {
	expr := lowerExpr(t, &ops.Literal{
		Value:    civil.Date{Year: 2024, Month: time.March, Day: 5},
		DataType: datatypes.Date,
	})
	assert.Equal(t, sqlast.Call("datefromparts", intArg(2024), intArg(3), intArg(5)), expr)
}

func TestNaiveTimestampLiteral(t *testing.T) {
	value := civil.DateTime{
		Date: civil.Date{Year: 2024, Month: time.March, Day: 5},
		Time: civil.Time{Hour: 10, Minute: 20, Second: 30, Nanosecond: 123456000},
	}
	expr := lowerExpr(t, &ops.Literal{Value: value, DataType: datatypes.Timestamp()})
	assert.Equal(t, sqlast.Call("datetime2fromparts",
		intArg(2024), intArg(3), intArg(5),
		intArg(10), intArg(20), intArg(30),
		intArg(123456),
		intArg(6),
	), expr)
}

func TestZonedTimestampLiteral(t *testing.T) {
	zone := time.FixedZone("+05:30", 5*3600+30*60)
	value := time.Date(2024, time.March, 5, 10, 20, 30, 123456000, zone)
	expr := lowerExpr(t, &ops.Literal{
		Value:    value,
		DataType: datatypes.TimestampTZ("+05:30"),
	})
	assert.Equal(t, sqlast.Call("datetimeoffsetfromparts",
		intArg(2024), intArg(3), intArg(5),
		intArg(10), intArg(20), intArg(30),
		intArg(123456),
		intArg(5), intArg(30),
		intArg(6),
	), expr)
}

func TestNegativeOffsetTimestampLiteral(t *testing.T) {
	zone := time.FixedZone("-05:30", -(5*3600 + 30*60))
	value := time.Date(2024, time.March, 5, 10, 20, 30, 0, zone)
	expr := lowerExpr(t, &ops.Literal{
		Value:    value,
		DataType: datatypes.TimestampTZ("-05:30"),
	})

	// The sign travels on the hour component; minutes stay positive.
	assert.Equal(t, sqlast.Call("datetimeoffsetfromparts",
		intArg(2024), intArg(3), intArg(5),
		intArg(10), intArg(20), intArg(30),
		intArg(0),
		intArg(-5), intArg(30),
		intArg(6),
	), expr)
}

func TestZonedTimestampRequiresOffset(t *testing.T) {
	naive := civil.DateTime{
		Date: civil.Date{Year: 2024, Month: time.March, Day: 5},
		Time: civil.Time{Hour: 10},
	}
	_, err := lower.Lower(mssql.Registry, &ops.Literal{
		Value:    naive,
		DataType: datatypes.TimestampTZ("UTC"),
	})
	require.ErrorIs(t, err, lower.ErrMissingTimezoneInfo)
}

func TestTimeLiteral(t *testing.T) {
	expr := lowerExpr(t, &ops.Literal{
		Value:    civil.Time{Hour: 10, Minute: 20, Second: 30, Nanosecond: 500000},
		DataType: datatypes.Time,
	})

	// The final precision argument is spliced verbatim; TIMEFROMPARTS
	// rejects it as a bound parameter.
	assert.Equal(t, sqlast.Call("timefromparts",
		intArg(10), intArg(20), intArg(30), intArg(500),
		&sqlast.Verbatim{SQL: "0"},
	), expr)
}

func TestUUIDLiteral(t *testing.T) {
	id := uuid.MustParse("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11")
	expr := lowerExpr(t, &ops.Literal{Value: id, DataType: datatypes.UUID})
	assert.Equal(t, &sqlast.CastExpr{
		Expr:     &sqlast.Literal{Value: "a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11"},
		TypeName: "UNIQUEIDENTIFIER",
	}, expr)
}

func TestBinaryLiteral(t *testing.T) {
	expr := lowerExpr(t, &ops.Literal{
		Value:    []byte{0xde, 0xad},
		DataType: datatypes.Binary,
	})
	assert.Equal(t, &sqlast.CastExpr{
		Expr:     &sqlast.Literal{Value: []byte{0xde, 0xad}},
		TypeName: "VARBINARY(max)",
	}, expr)
}

func TestDecimalLiteralNormalizes(t *testing.T) {
	cases := map[string]string{
		"1.2300":  "1.23",
		"10.000":  "10",
		"0.5000":  "0.5",
		"42":      "42",
		"-3.1400": "-3.14",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			expr := lowerExpr(t, &ops.Literal{
				Value:    decimal.RequireFromString(in),
				DataType: datatypes.Decimal(12, 4),
			})
			lit, ok := expr.(*sqlast.Literal)
			require.True(t, ok)
			d, ok := lit.Value.(decimal.Decimal)
			require.True(t, ok)
			assert.Equal(t, want, d.String())
		})
	}
}

func TestArrayLiteral(t *testing.T) {
	expr := lowerExpr(t, &ops.Literal{
		Value:    []any{int64(1), int64(2), int64(3)},
		DataType: datatypes.Array(datatypes.Int64),
	})
	assert.Equal(t, &sqlast.ArrayExpr{Elems: []sqlast.Expr{
		&sqlast.Literal{Value: int64(1)},
		&sqlast.Literal{Value: int64(2)},
		&sqlast.Literal{Value: int64(3)},
	}}, expr)
}

func TestCastTypeNames(t *testing.T) {
	cases := map[string]struct {
		to   datatypes.DataType
		want string
	}{
		"bool":      {datatypes.Boolean, "BIT"},
		"int16":     {datatypes.Int16, "SMALLINT"},
		"int64":     {datatypes.Int64, "BIGINT"},
		"float":     {datatypes.Float64, "FLOAT"},
		"string":    {datatypes.String, "VARCHAR(max)"},
		"decimal":   {datatypes.Decimal(18, 4), "DECIMAL(18, 4)"},
		"timestamp": {datatypes.Timestamp(), "DATETIME2"},
		"zoned":     {datatypes.TimestampTZ("UTC"), "DATETIMEOFFSET"},
		"uuid":      {datatypes.UUID, "UNIQUEIDENTIFIER"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			expr := lowerExpr(t, &ops.Cast{Arg: strCol("x"), To: tc.to})
			cast, ok := expr.(*sqlast.CastExpr)
			require.True(t, ok)
			assert.Equal(t, tc.want, cast.TypeName)
		})
	}
}

func TestCastRejectsInterval(t *testing.T) {
	_, err := lower.Lower(mssql.Registry, &ops.Cast{
		Arg: strCol("x"),
		To:  datatypes.Interval(datatypes.UnitDay),
	})
	require.ErrorIs(t, err, lower.ErrUnsupportedArgument)
}
