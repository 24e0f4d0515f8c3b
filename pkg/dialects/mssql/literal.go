package mssql

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/leapstack-labs/queryc/pkg/datatypes"
	"github.com/leapstack-labs/queryc/pkg/lower"
	"github.com/leapstack-labs/queryc/pkg/ops"
	"github.com/leapstack-labs/queryc/pkg/sqlast"
)

// timestampPrecision is the fractional-seconds precision passed to the
// DATETIME2FROMPARTS and DATETIMEOFFSETFROMPARTS constructors.
const timestampPrecision = 6

// lowerLiteral encodes a typed literal as a T-SQL construction expression.
// Temporal and uuid values have no literal syntax in T-SQL and are built
// with constructor calls and casts instead.
func lowerLiteral(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	lit, ok := node.(*ops.Literal)
	if !ok {
		return nil, lower.ShapeError(node, "literal")
	}
	dtype := lit.DataType
	value := lit.Value

	if value == nil {
		return sqlast.Null(), nil
	}

	switch {
	case dtype.IsArray():
		elems, ok := value.([]any)
		if !ok {
			return nil, lower.ShapeError(node, "array value")
		}
		arr := &sqlast.ArrayExpr{Elems: make([]sqlast.Expr, len(elems))}
		for i, elem := range elems {
			arr.Elems[i] = &sqlast.Literal{Value: elem}
		}
		return arr, nil

	case dtype.IsDecimal():
		d, ok := value.(decimal.Decimal)
		if !ok {
			return nil, lower.ShapeError(node, "decimal value")
		}
		return &sqlast.Literal{Value: normalizeDecimal(d)}, nil

	case dtype.IsDate():
		d, ok := value.(civil.Date)
		if !ok {
			return nil, lower.ShapeError(node, "date value")
		}
		return sqlast.Call("datefromparts",
			intLit(d.Year), intLit(int(d.Month)), intLit(d.Day)), nil

	case dtype.IsTimestamp():
		return lowerTimestampLiteral(dtype, value)

	case dtype.IsTime():
		tv, ok := value.(civil.Time)
		if !ok {
			return nil, lower.ShapeError(node, "time value")
		}
		return sqlast.Call("timefromparts",
			intLit(tv.Hour), intLit(tv.Minute), intLit(tv.Second),
			intLit(tv.Nanosecond/1000), &sqlast.Verbatim{SQL: "0"}), nil

	case dtype.IsUUID():
		id, ok := value.(uuid.UUID)
		if !ok {
			return nil, lower.ShapeError(node, "uuid value")
		}
		return &sqlast.CastExpr{
			Expr:     &sqlast.Literal{Value: id.String()},
			TypeName: "UNIQUEIDENTIFIER",
		}, nil

	case dtype.IsBinary():
		return &sqlast.CastExpr{
			Expr:     &sqlast.Literal{Value: value},
			TypeName: "VARBINARY(max)",
		}, nil
	}

	return &sqlast.Literal{Value: value}, nil
}

// lowerTimestampLiteral builds DATETIME2FROMPARTS for naive timestamps and
// DATETIMEOFFSETFROMPARTS for zoned ones. A timezone-typed literal must
// carry a time.Time; civil.DateTime has no offset to encode.
func lowerTimestampLiteral(dtype datatypes.DataType, value any) (sqlast.Expr, error) {
	if dtype.Timezone != "" {
		ts, ok := value.(time.Time)
		if !ok {
			return nil, fmt.Errorf("%w: timestamp(%q) literal holds %T", lower.ErrMissingTimezoneInfo, dtype.Timezone, value)
		}
		_, offset := ts.Zone()
		hourOffset := offset / 3600
		minuteOffset := abs(offset%3600) / 60
		return sqlast.Call("datetimeoffsetfromparts",
			intLit(ts.Year()), intLit(int(ts.Month())), intLit(ts.Day()),
			intLit(ts.Hour()), intLit(ts.Minute()), intLit(ts.Second()),
			intLit(ts.Nanosecond()/1000),
			intLit(hourOffset), intLit(minuteOffset),
			intLit(timestampPrecision)), nil
	}

	switch ts := value.(type) {
	case civil.DateTime:
		return sqlast.Call("datetime2fromparts",
			intLit(ts.Date.Year), intLit(int(ts.Date.Month)), intLit(ts.Date.Day),
			intLit(ts.Time.Hour), intLit(ts.Time.Minute), intLit(ts.Time.Second),
			intLit(ts.Time.Nanosecond/1000),
			intLit(timestampPrecision)), nil
	case time.Time:
		return sqlast.Call("datetime2fromparts",
			intLit(ts.Year()), intLit(int(ts.Month())), intLit(ts.Day()),
			intLit(ts.Hour()), intLit(ts.Minute()), intLit(ts.Second()),
			intLit(ts.Nanosecond()/1000),
			intLit(timestampPrecision)), nil
	default:
		return nil, fmt.Errorf("%w: timestamp literal holds %T", lower.ErrUnsupportedArgument, value)
	}
}

// normalizeDecimal canonicalizes a decimal to its minimal-scale form:
// trailing zeros after the decimal point are dropped, and the point itself
// when the fractional part empties out. 1.2300 and 1.23 lower identically.
func normalizeDecimal(d decimal.Decimal) decimal.Decimal {
	s := d.String()
	if !strings.Contains(s, ".") {
		return d
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	n, err := decimal.NewFromString(s)
	if err != nil {
		return d
	}
	return n
}

func intLit(v int) *sqlast.Literal {
	return &sqlast.Literal{Value: int64(v)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
