package mssql

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/queryc/pkg/datatypes"
	"github.com/leapstack-labs/queryc/pkg/lower"
	"github.com/leapstack-labs/queryc/pkg/ops"
	"github.com/leapstack-labs/queryc/pkg/sqlast"
)

// intervalKeywords maps interval units to the DATEPART keywords accepted by
// datetrunc, DATE_BUCKET and datediff. Microseconds are absent: DATETIME2's
// tick is too coarse for a microsecond boundary, so those units fail.
var intervalKeywords = map[datatypes.IntervalUnit]string{
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

func intervalKeyword(unit datatypes.IntervalUnit) (string, error) {
	kw, ok := intervalKeywords[unit]
	if !ok {
		return "", fmt.Errorf("%w: truncation unit %q", lower.ErrUnsupportedOperation, unit)
	}
	return kw, nil
}

// lowerTruncate emits datetrunc(<unit>, arg). The unit is a bare DATEPART
// keyword, not a quoted string.
func lowerTruncate(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	trunc, ok := node.(*ops.Truncate)
	if !ok {
		return nil, lower.ShapeError(node, "truncate")
	}
	kw, err := intervalKeyword(trunc.Unit)
	if err != nil {
		return nil, err
	}
	arg, err := t.Translate(trunc.Arg)
	if err != nil {
		return nil, err
	}
	return sqlast.Call("datetrunc", &sqlast.Verbatim{SQL: kw}, arg), nil
}

// lowerBucket emits DATE_BUCKET(<unit>, <width>, arg, <epoch origin>). Only
// literal interval widths are supported, and only the zero origin: T-SQL
// takes the bucket width as a bare integer and the origin as a date
// expression, neither of which can be parameterized here.
func lowerBucket(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	bucket, ok := node.(*ops.Bucket)
	if !ok {
		return nil, lower.ShapeError(node, "bucket")
	}
	interval, ok := bucket.Interval.(*ops.Literal)
	if !ok {
		return nil, fmt.Errorf("%w: timestamp bucket width must be a literal interval", lower.ErrUnsupportedArgument)
	}
	kw, err := intervalKeyword(interval.DataType.Unit)
	if err != nil {
		return nil, err
	}
	if bucket.Offset != nil {
		return nil, fmt.Errorf("%w: timestamp bucket offset", lower.ErrUnsupportedOperation)
	}
	width, ok := interval.Value.(int64)
	if !ok {
		return nil, fmt.Errorf("%w: interval width holds %T", lower.ErrUnsupportedArgument, interval.Value)
	}
	arg, err := t.Translate(bucket.Arg)
	if err != nil {
		return nil, err
	}
	return sqlast.Call("DATE_BUCKET",
		&sqlast.Verbatim{SQL: kw},
		&sqlast.Verbatim{SQL: fmt.Sprintf("%d", width)},
		arg,
		&sqlast.Verbatim{SQL: "CAST('1970-01-01' AS DATETIME2)"},
	), nil
}

// extract builds a rule lowering a field-extraction to
// cast(datepart(<part>, arg) as SMALLINT). The SMALLINT cast keeps the
// result integral; datepart alone yields INT but the fields all fit.
func extract(part string) lower.Rule {
	return func(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
		un, ok := node.(*ops.Unary)
		if !ok {
			return nil, lower.ShapeError(node, "unary")
		}
		arg, err := t.Translate(un.Arg)
		if err != nil {
			return nil, err
		}
		return &sqlast.CastExpr{
			Expr:     sqlast.Call("datepart", &sqlast.Verbatim{SQL: part}, arg),
			TypeName: "SMALLINT",
		}, nil
	}
}

// Microseconds exceed SMALLINT range, so the cast is skipped.
func lowerExtractMicrosecond(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	un, ok := node.(*ops.Unary)
	if !ok {
		return nil, lower.ShapeError(node, "unary")
	}
	arg, err := t.Translate(un.Arg)
	if err != nil {
		return nil, err
	}
	return sqlast.Call("datepart", &sqlast.Verbatim{SQL: "microsecond"}, arg), nil
}

// lowerDayOfWeekIndex shifts T-SQL's one-based weekday to the zero-based
// Monday-first index: datepart(weekday, arg) - 1.
func lowerDayOfWeekIndex(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	un, ok := node.(*ops.Unary)
	if !ok {
		return nil, lower.ShapeError(node, "unary")
	}
	arg, err := t.Translate(un.Arg)
	if err != nil {
		return nil, err
	}
	return &sqlast.BinaryExpr{
		Left:  sqlast.Call("datepart", &sqlast.Verbatim{SQL: "weekday"}, arg),
		Op:    "-",
		Right: &sqlast.Literal{Value: int64(1)},
	}, nil
}

// lowerExtractEpochSeconds counts whole seconds since the Unix epoch:
// cast(datediff(s, '1970-01-01 00:00:00', arg) as BIGINT).
func lowerExtractEpochSeconds(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	un, ok := node.(*ops.Unary)
	if !ok {
		return nil, lower.ShapeError(node, "unary")
	}
	arg, err := t.Translate(un.Arg)
	if err != nil {
		return nil, err
	}
	diff := sqlast.Call("datediff",
		&sqlast.Verbatim{SQL: "s"},
		&sqlast.Literal{Value: "1970-01-01 00:00:00"},
		arg,
	)
	return &sqlast.CastExpr{Expr: diff, TypeName: "BIGINT"}, nil
}

// lowerTimestampFromUNIX converts an epoch count to a timestamp with
// dateadd from the epoch origin. Seconds add directly; milliseconds first
// divide down to seconds. Finer units are not representable.
func lowerTimestampFromUNIX(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	from, ok := node.(*ops.TimestampFromUNIX)
	if !ok {
		return nil, lower.ShapeError(node, "timestamp from unix")
	}
	arg, err := t.Translate(from.Arg)
	if err != nil {
		return nil, err
	}
	origin := &sqlast.Literal{Value: "1970-01-01 00:00:00"}
	switch from.Unit {
	case datatypes.UnitSecond:
		return sqlast.Call("dateadd", &sqlast.Verbatim{SQL: "s"}, arg, origin), nil
	case datatypes.UnitMillisecond:
		seconds := &sqlast.BinaryExpr{
			Left:  arg,
			Op:    "/",
			Right: &sqlast.Literal{Value: int64(1000)},
		}
		return sqlast.Call("dateadd", &sqlast.Verbatim{SQL: "s"}, seconds, origin), nil
	}
	return nil, fmt.Errorf("%w: epoch unit %q", lower.ErrUnsupportedOperation, from.Unit)
}

// lowerTimestampFromYMDHMS builds datetimefromparts with zero milliseconds.
func lowerTimestampFromYMDHMS(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	va, ok := node.(*ops.Variadic)
	if !ok || len(va.Args) != 6 {
		return nil, lower.ShapeError(node, "six components")
	}
	args, err := lower.TranslateVariadic(t, va)
	if err != nil {
		return nil, err
	}
	args = append(args, &sqlast.Literal{Value: int64(0)})
	return sqlast.Call("datetimefromparts", args...), nil
}

// lowerTimeFromHMS builds timefromparts with zero fractional seconds. The
// final precision argument must be a bare 0, not a parameter.
func lowerTimeFromHMS(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	va, ok := node.(*ops.Variadic)
	if !ok || len(va.Args) != 3 {
		return nil, lower.ShapeError(node, "three components")
	}
	args, err := lower.TranslateVariadic(t, va)
	if err != nil {
		return nil, err
	}
	args = append(args, &sqlast.Literal{Value: int64(0)}, &sqlast.Verbatim{SQL: "0"})
	return sqlast.Call("timefromparts", args...), nil
}

// lowerDelta counts unit boundaries between two temporal values:
// datediff(<PART>, right, left). The part keyword is uppercased and the
// operands swap so the delta is left minus right.
func lowerDelta(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	delta, ok := node.(*ops.Delta)
	if !ok {
		return nil, lower.ShapeError(node, "delta")
	}
	part := strings.ToUpper(delta.Part.Name())
	left, err := t.Translate(delta.Left)
	if err != nil {
		return nil, err
	}
	right, err := t.Translate(delta.Right)
	if err != nil {
		return nil, err
	}
	return sqlast.Call("datediff", &sqlast.Verbatim{SQL: part}, right, left), nil
}
