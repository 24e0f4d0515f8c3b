package mssql

import (
	"github.com/leapstack-labs/queryc/pkg/datatypes"
	"github.com/leapstack-labs/queryc/pkg/lower"
	"github.com/leapstack-labs/queryc/pkg/ops"
	"github.com/leapstack-labs/queryc/pkg/sqlast"
)

// reduction lowers an aggregate with T-SQL's boolean workarounds: boolean
// arguments are coerced to a numeric type before aggregation, and a filter
// predicate becomes IIF masking (pred ? value : NULL) since T-SQL has no
// FILTER clause.
func reduction(name string) lower.Rule {
	return reductionAs(name, datatypes.Int32)
}

// reductionAs is reduction with an explicit numeric coercion target; mean
// widens to a floating type instead of the integer default.
func reductionAs(name string, castTo datatypes.DataType) lower.Rule {
	return func(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
		red, ok := node.(*ops.Reduction)
		if !ok {
			return nil, lower.ShapeError(node, "reduction")
		}

		arg := red.Arg
		if arg.Type().IsBoolean() {
			if col, isColumn := arg.(*ops.Column); isColumn {
				// A bare column keeps its nullability through the cast.
				arg = &ops.Cast{Arg: col, To: castTo.WithNullable(col.Type().Nullable)}
			} else {
				arg = &ops.IfElse{
					Cond:     arg,
					True:     &ops.Literal{Value: int64(1), DataType: castTo},
					False:    &ops.Literal{Value: int64(0), DataType: castTo},
					DataType: castTo,
				}
			}
		}

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

// lowerNot is contextual boolean negation. In predicate position T-SQL
// accepts native NOT; in selection position a boolean expression is not a
// valid column value, so the operand is compared against its false encoding
// inside a CASE.
func lowerNot(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	u, ok := node.(*ops.Unary)
	if !ok {
		return nil, lower.ShapeError(node, "unary")
	}
	arg, err := t.Translate(u.Arg)
	if err != nil {
		return nil, err
	}
	if t.InPredicate() {
		return &sqlast.UnaryExpr{Op: "NOT", Expr: arg}, nil
	}
	return &sqlast.CaseExpr{
		Whens: []sqlast.WhenClause{{
			Condition: &sqlast.BinaryExpr{Left: arg, Op: "=", Right: &sqlast.Literal{Value: int64(0)}},
			Result:    &sqlast.Literal{Value: true},
		}},
		Else: &sqlast.Literal{Value: false},
	}, nil
}

// lowerIfElse emits IIF(cond, t, f).
func lowerIfElse(t *lower.Translator, node ops.Node) (sqlast.Expr, error) {
	ie, ok := node.(*ops.IfElse)
	if !ok {
		return nil, lower.ShapeError(node, "if_else")
	}
	cond, err := t.Translate(ie.Cond)
	if err != nil {
		return nil, err
	}
	truev, err := t.Translate(ie.True)
	if err != nil {
		return nil, err
	}
	elsev := sqlast.Expr(sqlast.Null())
	if ie.False != nil {
		elsev, err = t.Translate(ie.False)
		if err != nil {
			return nil, err
		}
	}
	return sqlast.Call("iif", cond, truev, elsev), nil
}
