package mssql

import (
	"github.com/leapstack-labs/queryc/pkg/lower"
	"github.com/leapstack-labs/queryc/pkg/ops"
	"github.com/leapstack-labs/queryc/pkg/sqlast"
)

// correctedLength computes len('A' + expr + 'Z') - 2. T-SQL's LEN ignores
// trailing spaces, so the value is padded on both ends before measuring.
func correctedLength(expr sqlast.Expr) sqlast.Expr {
	padded := &sqlast.BinaryExpr{
		Left: &sqlast.BinaryExpr{
			Left:  &sqlast.Literal{Value: "A"},
			Op:    "+",
			Right: expr,
		},
		Op:    "+",
		Right: &sqlast.Literal{Value: "Z"},
	}
	return &sqlast.BinaryExpr{
		Left:  sqlast.Call("len", padded),
		Op:    "-",
		Right: &sqlast.Literal{Value: int64(2)},
	}
}

func lowerStringLength(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	un, ok := node.(*ops.Unary)
	if !ok {
		return nil, lower.ShapeError(node, "unary")
	}
	arg, err := t.Translate(un.Arg)
	if err != nil {
		return nil, err
	}
	return correctedLength(arg), nil
}

// lowerStringFind emits charindex(substr, arg[, start]) - 1, converting the
// one-based T-SQL position to a zero-based index.
func lowerStringFind(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	find, ok := node.(*ops.StringFind)
	if !ok {
		return nil, lower.ShapeError(node, "string find")
	}
	arg, err := t.Translate(find.Arg)
	if err != nil {
		return nil, err
	}
	substr, err := t.Translate(find.Substr)
	if err != nil {
		return nil, err
	}
	args := []sqlast.Expr{substr, arg}
	if find.Start != nil {
		start, err := t.Translate(find.Start)
		if err != nil {
			return nil, err
		}
		args = append(args, start)
	}
	return &sqlast.BinaryExpr{
		Left:  sqlast.Call("charindex", args...),
		Op:    "-",
		Right: &sqlast.Literal{Value: int64(1)},
	}, nil
}

// lowerCapitalize uppercases the first character and lowercases the rest:
// concat(upper(substring(x, 1, 1)), lower(substring(x, 2, len(x) - 1))).
func lowerCapitalize(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	un, ok := node.(*ops.Unary)
	if !ok {
		return nil, lower.ShapeError(node, "unary")
	}
	arg, err := t.Translate(un.Arg)
	if err != nil {
		return nil, err
	}
	one := &sqlast.Literal{Value: int64(1)}
	two := &sqlast.Literal{Value: int64(2)}
	rest := &sqlast.BinaryExpr{
		Left:  correctedLength(arg),
		Op:    "-",
		Right: one,
	}
	return sqlast.Call("concat",
		sqlast.Call("upper", sqlast.Call("substring", arg, one, one)),
		sqlast.Call("lower", sqlast.Call("substring", arg, two, rest)),
	), nil
}
