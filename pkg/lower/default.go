package lower

import (
	"fmt"

	"github.com/leapstack-labs/queryc/pkg/datatypes"
	"github.com/leapstack-labs/queryc/pkg/ops"
	"github.com/leapstack-labs/queryc/pkg/sqlast"
)

// DefaultTable returns a fresh copy of the default lowering table: the
// operation-kind → rule mapping valid across SQL dialects. Dialect overlays
// start from this copy and override or deny entries; they never mutate the
// table in place.
func DefaultTable() map[ops.Kind]Rule {
	table := make(map[ops.Kind]Rule, len(defaultTable))
	for kind, rule := range defaultTable {
		table[kind] = rule
	}
	return table
}

// ---------- Shape helpers ----------
//
// Exported so dialect overlays can express simple renames
// (e.g. Override(KindCeil, lower.Unary("ceiling"))) without restating the
// child translation.

// Unary lowers a one-argument node to name(arg).
func Unary(name string) Rule {
	return func(t *Translator, node ops.Node) (sqlast.Expr, error) {
		u, ok := node.(*ops.Unary)
		if !ok {
			return nil, ShapeError(node, "unary")
		}
		arg, err := t.Translate(u.Arg)
		if err != nil {
			return nil, err
		}
		return sqlast.Call(name, arg), nil
	}
}

// Binary lowers a two-argument node to name(left, right).
func Binary(name string) Rule {
	return func(t *Translator, node ops.Node) (sqlast.Expr, error) {
		b, ok := node.(*ops.Binary)
		if !ok {
			return nil, ShapeError(node, "binary")
		}
		left, err := t.Translate(b.Left)
		if err != nil {
			return nil, err
		}
		right, err := t.Translate(b.Right)
		if err != nil {
			return nil, err
		}
		return sqlast.Call(name, left, right), nil
	}
}

// Variadic lowers an argument-list node to name(args...).
func Variadic(name string) Rule {
	return func(t *Translator, node ops.Node) (sqlast.Expr, error) {
		args, err := TranslateVariadic(t, node)
		if err != nil {
			return nil, err
		}
		return sqlast.Call(name, args...), nil
	}
}

// Operator lowers a two-argument node to an infix expression.
func Operator(symbol string) Rule {
	return func(t *Translator, node ops.Node) (sqlast.Expr, error) {
		b, ok := node.(*ops.Binary)
		if !ok {
			return nil, ShapeError(node, "binary")
		}
		left, err := t.Translate(b.Left)
		if err != nil {
			return nil, err
		}
		right, err := t.Translate(b.Right)
		if err != nil {
			return nil, err
		}
		return &sqlast.BinaryExpr{Left: left, Op: symbol, Right: right}, nil
	}
}

// TranslateVariadic translates the argument list of a Variadic node.
func TranslateVariadic(t *Translator, node ops.Node) ([]sqlast.Expr, error) {
	v, ok := node.(*ops.Variadic)
	if !ok {
		return nil, ShapeError(node, "variadic")
	}
	args := make([]sqlast.Expr, len(v.Args))
	for i, child := range v.Args {
		arg, err := t.Translate(child)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	return args, nil
}


// ---------- Generic rules ----------

func defaultLiteral(_ *Translator, node ops.Node) (sqlast.Expr, error) {
	lit, ok := node.(*ops.Literal)
	if !ok {
		return nil, ShapeError(node, "literal")
	}
	return &sqlast.Literal{Value: lit.Value}, nil
}

func defaultColumn(_ *Translator, node ops.Node) (sqlast.Expr, error) {
	col, ok := node.(*ops.Column)
	if !ok {
		return nil, ShapeError(node, "column")
	}
	return &sqlast.ColumnRef{Table: col.Table, Column: col.Name}, nil
}

func defaultCast(t *Translator, node ops.Node) (sqlast.Expr, error) {
	c, ok := node.(*ops.Cast)
	if !ok {
		return nil, ShapeError(node, "cast")
	}
	arg, err := t.Translate(c.Arg)
	if err != nil {
		return nil, err
	}
	return &sqlast.CastExpr{Expr: arg, TypeName: defaultTypeName(c.To)}, nil
}

// defaultTypeName maps a type descriptor to a portable SQL type name.
func defaultTypeName(dt datatypes.DataType) string {
	switch dt.Kind {
	case datatypes.KindBoolean:
		return "BOOLEAN"
	case datatypes.KindInt8:
		return "TINYINT"
	case datatypes.KindInt16:
		return "SMALLINT"
	case datatypes.KindInt32:
		return "INTEGER"
	case datatypes.KindInt64:
		return "BIGINT"
	case datatypes.KindFloat32:
		return "REAL"
	case datatypes.KindFloat64:
		return "DOUBLE PRECISION"
	case datatypes.KindDecimal:
		if dt.Precision != 0 {
			return fmt.Sprintf("DECIMAL(%d,%d)", dt.Precision, dt.Scale)
		}
		return "DECIMAL"
	case datatypes.KindString:
		return "VARCHAR"
	case datatypes.KindBinary:
		return "VARBINARY"
	case datatypes.KindDate:
		return "DATE"
	case datatypes.KindTime:
		return "TIME"
	case datatypes.KindTimestamp:
		if dt.Timezone != "" {
			return "TIMESTAMP WITH TIME ZONE"
		}
		return "TIMESTAMP"
	case datatypes.KindUUID:
		return "UUID"
	default:
		return "VARCHAR"
	}
}

func defaultNot(t *Translator, node ops.Node) (sqlast.Expr, error) {
	u, ok := node.(*ops.Unary)
	if !ok {
		return nil, ShapeError(node, "unary")
	}
	arg, err := t.Translate(u.Arg)
	if err != nil {
		return nil, err
	}
	return &sqlast.UnaryExpr{Op: "NOT", Expr: arg}, nil
}

func defaultNegate(t *Translator, node ops.Node) (sqlast.Expr, error) {
	u, ok := node.(*ops.Unary)
	if !ok {
		return nil, ShapeError(node, "unary")
	}
	arg, err := t.Translate(u.Arg)
	if err != nil {
		return nil, err
	}
	return &sqlast.UnaryExpr{Op: "-", Expr: arg}, nil
}

func defaultIfElse(t *Translator, node ops.Node) (sqlast.Expr, error) {
	ie, ok := node.(*ops.IfElse)
	if !ok {
		return nil, ShapeError(node, "if_else")
	}
	cond, err := t.Translate(ie.Cond)
	if err != nil {
		return nil, err
	}
	truev, err := t.Translate(ie.True)
	if err != nil {
		return nil, err
	}
	var elsev sqlast.Expr
	if ie.False != nil {
		elsev, err = t.Translate(ie.False)
		if err != nil {
			return nil, err
		}
	}
	return &sqlast.CaseExpr{
		Whens: []sqlast.WhenClause{{Condition: cond, Result: truev}},
		Else:  elsev,
	}, nil
}

func defaultIsNull(t *Translator, node ops.Node) (sqlast.Expr, error) {
	u, ok := node.(*ops.Unary)
	if !ok {
		return nil, ShapeError(node, "unary")
	}
	arg, err := t.Translate(u.Arg)
	if err != nil {
		return nil, err
	}
	return &sqlast.IsNullExpr{Expr: arg}, nil
}

// defaultReduction lowers an aggregate to name(arg), emulating a filter
// predicate with CASE WHEN pred THEN arg END for dialects without FILTER.
func defaultReduction(name string) Rule {
	return func(t *Translator, node ops.Node) (sqlast.Expr, error) {
		red, ok := node.(*ops.Reduction)
		if !ok {
			return nil, ShapeError(node, "reduction")
		}
		arg := red.Arg
		if red.Where != nil {
			arg = &ops.IfElse{
				Cond:     red.Where,
				True:     arg,
				False:    &ops.Literal{Value: nil, DataType: arg.Type().WithNullable(true)},
				DataType: arg.Type().WithNullable(true),
			}
		}
		expr, err := t.Translate(arg)
		if err != nil {
			return nil, err
		}
		return sqlast.Call(name, expr), nil
	}
}

// VarianceReduction selects the sampled or population variant of a variance
// style aggregate by the node's How field. Dialects reuse it with their own
// base names and suffixes.
func VarianceReduction(base string, suffixes map[string]string) Rule {
	return func(t *Translator, node ops.Node) (sqlast.Expr, error) {
		red, ok := node.(*ops.Reduction)
		if !ok {
			return nil, ShapeError(node, "reduction")
		}
		suffix, ok := suffixes[red.How]
		if !ok {
			return nil, fmt.Errorf("%w: %s sampling mode %q", ErrUnsupportedArgument, red.Op, red.How)
		}
		return defaultReduction(base + suffix)(t, node)
	}
}

func defaultExtract(part string) Rule {
	return func(t *Translator, node ops.Node) (sqlast.Expr, error) {
		u, ok := node.(*ops.Unary)
		if !ok {
			return nil, ShapeError(node, "unary")
		}
		arg, err := t.Translate(u.Arg)
		if err != nil {
			return nil, err
		}
		return sqlast.Call("extract", &sqlast.Verbatim{SQL: part}, arg), nil
	}
}

func defaultTruncate(t *Translator, node ops.Node) (sqlast.Expr, error) {
	tr, ok := node.(*ops.Truncate)
	if !ok {
		return nil, ShapeError(node, "truncate")
	}
	if !tr.Unit.Valid() {
		return nil, Unsupportedf("truncate unit %q", tr.Unit)
	}
	arg, err := t.Translate(tr.Arg)
	if err != nil {
		return nil, err
	}
	return sqlast.Call("date_trunc", &sqlast.Literal{Value: tr.Unit.Name()}, arg), nil
}

func defaultBucket(t *Translator, node ops.Node) (sqlast.Expr, error) {
	b, ok := node.(*ops.Bucket)
	if !ok {
		return nil, ShapeError(node, "bucket")
	}
	interval, err := t.Translate(b.Interval)
	if err != nil {
		return nil, err
	}
	arg, err := t.Translate(b.Arg)
	if err != nil {
		return nil, err
	}
	args := []sqlast.Expr{interval, arg}
	if b.Offset != nil {
		offset, err := t.Translate(b.Offset)
		if err != nil {
			return nil, err
		}
		args = append(args, offset)
	}
	return sqlast.Call("time_bucket", args...), nil
}

func defaultDelta(t *Translator, node ops.Node) (sqlast.Expr, error) {
	d, ok := node.(*ops.Delta)
	if !ok {
		return nil, ShapeError(node, "delta")
	}
	left, err := t.Translate(d.Left)
	if err != nil {
		return nil, err
	}
	right, err := t.Translate(d.Right)
	if err != nil {
		return nil, err
	}
	// date_diff(part, start, end) == end - start in part units.
	return sqlast.Call("date_diff", &sqlast.Literal{Value: d.Part.Name()}, right, left), nil
}

func defaultTimestampFromUNIX(t *Translator, node ops.Node) (sqlast.Expr, error) {
	u, ok := node.(*ops.TimestampFromUNIX)
	if !ok {
		return nil, ShapeError(node, "timestamp_from_unix")
	}
	arg, err := t.Translate(u.Arg)
	if err != nil {
		return nil, err
	}
	switch u.Unit {
	case datatypes.UnitSecond:
		return sqlast.Call("to_timestamp", arg), nil
	case datatypes.UnitMillisecond:
		return sqlast.Call("to_timestamp", &sqlast.BinaryExpr{
			Left: arg, Op: "/", Right: &sqlast.Literal{Value: int64(1000)},
		}), nil
	default:
		return nil, Unsupportedf("%q unit for timestamp_from_unix", u.Unit)
	}
}

func defaultStringFind(t *Translator, node ops.Node) (sqlast.Expr, error) {
	f, ok := node.(*ops.StringFind)
	if !ok {
		return nil, ShapeError(node, "string_find")
	}
	arg, err := t.Translate(f.Arg)
	if err != nil {
		return nil, err
	}
	substr, err := t.Translate(f.Substr)
	if err != nil {
		return nil, err
	}
	args := []sqlast.Expr{arg, substr}
	if f.Start != nil {
		start, err := t.Translate(f.Start)
		if err != nil {
			return nil, err
		}
		args = append(args, start)
	}
	return &sqlast.BinaryExpr{
		Left:  sqlast.Call("strpos", args...),
		Op:    "-",
		Right: &sqlast.Literal{Value: int64(1)},
	}, nil
}

func defaultRound(t *Translator, node ops.Node) (sqlast.Expr, error) {
	r, ok := node.(*ops.Round)
	if !ok {
		return nil, ShapeError(node, "round")
	}
	arg, err := t.Translate(r.Arg)
	if err != nil {
		return nil, err
	}
	digits := sqlast.Expr(&sqlast.Literal{Value: int64(0)})
	if r.Digits != nil {
		digits, err = t.Translate(r.Digits)
		if err != nil {
			return nil, err
		}
	}
	return sqlast.Call("round", arg, digits), nil
}

func defaultDigest(t *Translator, node ops.Node) (sqlast.Expr, error) {
	d, ok := node.(*ops.Digest)
	if !ok {
		return nil, ShapeError(node, "digest")
	}
	switch d.How {
	case "md5", "sha1", "sha256", "sha512":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, d.How)
	}
	arg, err := t.Translate(d.Arg)
	if err != nil {
		return nil, err
	}
	return sqlast.Call(d.How, arg), nil
}

func defaultNthValue(t *Translator, node ops.Node) (sqlast.Expr, error) {
	n, ok := node.(*ops.NthValue)
	if !ok {
		return nil, ShapeError(node, "nth_value")
	}
	arg, err := t.Translate(n.Arg)
	if err != nil {
		return nil, err
	}
	nth, err := t.Translate(n.Nth)
	if err != nil {
		return nil, err
	}
	return sqlast.Call("nth_value", arg, nth), nil
}

// ---------- The table ----------

var defaultTable = map[ops.Kind]Rule{
	// values and references
	ops.KindLiteral: defaultLiteral,
	ops.KindColumn:  defaultColumn,
	ops.KindCast:    defaultCast,

	// logical
	ops.KindNot:      defaultNot,
	ops.KindAnd:      Operator("AND"),
	ops.KindOr:       Operator("OR"),
	ops.KindIfElse:   defaultIfElse,
	ops.KindIsNull:   defaultIsNull,
	ops.KindCoalesce: Variadic("coalesce"),

	// comparison
	ops.KindEquals:       Operator("="),
	ops.KindNotEquals:    Operator("<>"),
	ops.KindLess:         Operator("<"),
	ops.KindLessEqual:    Operator("<="),
	ops.KindGreater:      Operator(">"),
	ops.KindGreaterEqual: Operator(">="),

	// arithmetic
	ops.KindAdd:         Operator("+"),
	ops.KindSubtract:    Operator("-"),
	ops.KindMultiply:    Operator("*"),
	ops.KindDivide:      Operator("/"),
	ops.KindFloorDivide: Binary("floor_div"),
	ops.KindModulus:     Operator("%"),
	ops.KindNegate:      defaultNegate,
	ops.KindPower:       Binary("power"),

	// math
	ops.KindAbs:          Unary("abs"),
	ops.KindCeil:         Unary("ceil"),
	ops.KindFloor:        Unary("floor"),
	ops.KindSign:         Unary("sign"),
	ops.KindSqrt:         Unary("sqrt"),
	ops.KindExp:          Unary("exp"),
	ops.KindLn:           Unary("ln"),
	ops.KindLog:          Binary("log"),
	ops.KindLog2:         Unary("log2"),
	ops.KindLog10:        Unary("log10"),
	ops.KindSin:          Unary("sin"),
	ops.KindCos:          Unary("cos"),
	ops.KindTan:          Unary("tan"),
	ops.KindAsin:         Unary("asin"),
	ops.KindAcos:         Unary("acos"),
	ops.KindAtan:         Unary("atan"),
	ops.KindAtan2:        Binary("atan2"),
	ops.KindRound:        defaultRound,
	ops.KindRandomScalar: Variadic("random"),

	// string
	ops.KindLowercase:     Unary("lower"),
	ops.KindUppercase:     Unary("upper"),
	ops.KindCapitalize:    Unary("initcap"),
	ops.KindReverse:       Unary("reverse"),
	ops.KindStrip:         Unary("trim"),
	ops.KindLStrip:        Unary("ltrim"),
	ops.KindRStrip:        Unary("rtrim"),
	ops.KindRepeat:        Binary("repeat"),
	ops.KindSubstring:     Variadic("substr"),
	ops.KindStringConcat:  Variadic("concat"),
	ops.KindStringReplace: Variadic("replace"),
	ops.KindStringFind:    defaultStringFind,
	ops.KindStringLength:  Unary("length"),
	ops.KindLPad:          Variadic("lpad"),
	ops.KindRPad:          Variadic("rpad"),

	// temporal
	ops.KindTimestampNow:        Variadic("now"),
	ops.KindExtractYear:         defaultExtract("year"),
	ops.KindExtractMonth:        defaultExtract("month"),
	ops.KindExtractDay:          defaultExtract("day"),
	ops.KindExtractDayOfYear:    defaultExtract("doy"),
	ops.KindExtractHour:         defaultExtract("hour"),
	ops.KindExtractMinute:       defaultExtract("minute"),
	ops.KindExtractSecond:       defaultExtract("second"),
	ops.KindExtractMillisecond:  defaultExtract("millisecond"),
	ops.KindExtractMicrosecond:  defaultExtract("microsecond"),
	ops.KindExtractWeekOfYear:   defaultExtract("week"),
	ops.KindExtractEpochSeconds: defaultExtract("epoch"),
	ops.KindDayOfWeekIndex:      defaultExtract("dow"),
	ops.KindTimestampFromUNIX:   defaultTimestampFromUNIX,
	ops.KindDateFromYMD:         Variadic("make_date"),
	ops.KindTimestampFromYMDHMS: Variadic("make_timestamp"),
	ops.KindTimeFromHMS:         Variadic("make_time"),
	ops.KindDateTruncate:        defaultTruncate,
	ops.KindTimestampTruncate:   defaultTruncate,
	ops.KindTimestampBucket:     defaultBucket,
	ops.KindDateDelta:           defaultDelta,
	ops.KindTimeDelta:           defaultDelta,
	ops.KindTimestampDelta:      defaultDelta,

	// reductions
	ops.KindCount:       defaultReduction("count"),
	ops.KindSum:         defaultReduction("sum"),
	ops.KindMean:        defaultReduction("avg"),
	ops.KindMin:         defaultReduction("min"),
	ops.KindMax:         defaultReduction("max"),
	ops.KindStandardDev: VarianceReduction("stddev_", map[string]string{"sample": "samp", "pop": "pop"}),
	ops.KindVariance:    VarianceReduction("var_", map[string]string{"sample": "samp", "pop": "pop"}),
	ops.KindBitAnd:      defaultReduction("bit_and"),
	ops.KindBitOr:       defaultReduction("bit_or"),
	ops.KindBitXor:      defaultReduction("bit_xor"),
	ops.KindGroupConcat: defaultReduction("group_concat"),

	// window
	ops.KindNthValue: defaultNthValue,

	// hashing
	ops.KindHash:      Unary("hash"),
	ops.KindHashBytes: defaultDigest,
	ops.KindHexDigest: defaultDigest,
}
