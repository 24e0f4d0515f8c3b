// Package render serializes abstract SQL expressions to T-SQL text.
//
// The output is for debugging and snapshot tests: literals are inlined
// rather than bound, which is never acceptable for executable SQL. The
// production path hands sqlast nodes to the statement assembler instead.
package render

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/leapstack-labs/queryc/pkg/sqlast"
)

// Expr renders a single expression tree as T-SQL text.
func Expr(expr sqlast.Expr) (string, error) {
	var b strings.Builder
	if err := write(&b, expr); err != nil {
		return "", err
	}
	return b.String(), nil
}

func write(b *strings.Builder, expr sqlast.Expr) error {
	switch e := expr.(type) {
	case *sqlast.ColumnRef:
		if e.Table != "" {
			b.WriteString(quoteIdent(e.Table))
			b.WriteByte('.')
		}
		b.WriteString(quoteIdent(e.Column))
		return nil

	case *sqlast.Literal:
		return writeLiteral(b, e.Value)

	case *sqlast.Verbatim:
		b.WriteString(e.SQL)
		return nil

	case *sqlast.FuncCall:
		b.WriteString(e.Name)
		b.WriteByte('(')
		for i, arg := range e.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := write(b, arg); err != nil {
				return err
			}
		}
		b.WriteByte(')')
		return nil

	case *sqlast.CastExpr:
		b.WriteString("CAST(")
		if err := write(b, e.Expr); err != nil {
			return err
		}
		b.WriteString(" AS ")
		b.WriteString(e.TypeName)
		b.WriteByte(')')
		return nil

	case *sqlast.BinaryExpr:
		b.WriteByte('(')
		if err := write(b, e.Left); err != nil {
			return err
		}
		b.WriteByte(' ')
		b.WriteString(e.Op)
		b.WriteByte(' ')
		if err := write(b, e.Right); err != nil {
			return err
		}
		b.WriteByte(')')
		return nil

	case *sqlast.UnaryExpr:
		b.WriteString(e.Op)
		b.WriteString(" (")
		if err := write(b, e.Expr); err != nil {
			return err
		}
		b.WriteByte(')')
		return nil

	case *sqlast.CaseExpr:
		b.WriteString("CASE")
		for _, when := range e.Whens {
			b.WriteString(" WHEN ")
			if err := write(b, when.Condition); err != nil {
				return err
			}
			b.WriteString(" THEN ")
			if err := write(b, when.Result); err != nil {
				return err
			}
		}
		if e.Else != nil {
			b.WriteString(" ELSE ")
			if err := write(b, e.Else); err != nil {
				return err
			}
		}
		b.WriteString(" END")
		return nil

	case *sqlast.IsNullExpr:
		b.WriteByte('(')
		if err := write(b, e.Expr); err != nil {
			return err
		}
		if e.Not {
			b.WriteString(" IS NOT NULL)")
		} else {
			b.WriteString(" IS NULL)")
		}
		return nil

	case *sqlast.ArrayExpr:
		b.WriteByte('(')
		for i, elem := range e.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := write(b, elem); err != nil {
				return err
			}
		}
		b.WriteByte(')')
		return nil
	}
	return fmt.Errorf("render: unhandled expression %T", expr)
}

func writeLiteral(b *strings.Builder, value any) error {
	switch v := value.(type) {
	case nil:
		b.WriteString("NULL")
	case bool:
		// T-SQL has no boolean literal; BIT values are 1 and 0.
		if v {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	case int64:
		b.WriteString(strconv.FormatInt(v, 10))
	case float64:
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	case decimal.Decimal:
		b.WriteString(v.String())
	case string:
		b.WriteByte('\'')
		b.WriteString(strings.ReplaceAll(v, "'", "''"))
		b.WriteByte('\'')
	case []byte:
		b.WriteString("0x")
		b.WriteString(hex.EncodeToString(v))
	default:
		return fmt.Errorf("render: unhandled literal %T", value)
	}
	return nil
}

// quoteIdent bracket-quotes an identifier, doubling any closing bracket.
func quoteIdent(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}
