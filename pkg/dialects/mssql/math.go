package mssql

import (
	"github.com/leapstack-labs/queryc/pkg/lower"
	"github.com/leapstack-labs/queryc/pkg/ops"
	"github.com/leapstack-labs/queryc/pkg/sqlast"
)

// lowerFloorDivide emits floor(left / right); T-SQL has no integer
// division operator distinct from /.
func lowerFloorDivide(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	bin, ok := node.(*ops.Binary)
	if !ok {
		return nil, lower.ShapeError(node, "binary")
	}
	left, err := t.Translate(bin.Left)
	if err != nil {
		return nil, err
	}
	right, err := t.Translate(bin.Right)
	if err != nil {
		return nil, err
	}
	return sqlast.Call("floor", &sqlast.BinaryExpr{Left: left, Op: "/", Right: right}), nil
}

// lowerRound always passes a digit count; T-SQL's round has no one-argument
// form.
func lowerRound(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	round, ok := node.(*ops.Round)
	if !ok {
		return nil, lower.ShapeError(node, "round")
	}
	arg, err := t.Translate(round.Arg)
	if err != nil {
		return nil, err
	}
	digits := sqlast.Expr(&sqlast.Literal{Value: int64(0)})
	if round.Digits != nil {
		digits, err = t.Translate(round.Digits)
		if err != nil {
			return nil, err
		}
	}
	return sqlast.Call("round", arg, digits), nil
}

// logWithBase builds a rule emitting log(arg, base) for the fixed-base
// logarithm kinds.
func logWithBase(base int64) lower.Rule {
	return func(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
		un, ok := node.(*ops.Unary)
		if !ok {
			return nil, lower.ShapeError(node, "unary")
		}
		arg, err := t.Translate(un.Arg)
		if err != nil {
			return nil, err
		}
		return sqlast.Call("log", arg, &sqlast.Literal{Value: base}), nil
	}
}
