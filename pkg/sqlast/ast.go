// Package sqlast defines the abstract SQL expression nodes produced by the
// lowering layer.
//
// These nodes are the hand-off format to the downstream assembler: function
// calls, casts, conditional expressions, and literals — never raw SQL text.
// Identifier quoting, parameter binding, and final serialization are the
// assembler's job (pkg/render supplies a debug renderer).
package sqlast

// Expr is the marker interface for SQL expression nodes.
type Expr interface {
	exprNode() // Marker method to distinguish expressions
}

// ColumnRef references a column, optionally table-qualified.
type ColumnRef struct {
	Table  string // optional table/alias qualifier
	Column string
}

func (*ColumnRef) exprNode() {}

// Literal is a bindable constant value. The assembler decides whether to
// inline or bind it. A nil Value is the SQL NULL literal.
type Literal struct {
	Value any
}

func (*Literal) exprNode() {}

// Null returns the NULL literal.
func Null() *Literal { return &Literal{} }

// Verbatim is raw SQL text spliced into the output exactly as written. It is
// used for arguments the dialect refuses to accept as bound parameters, such
// as date-part keywords and type names inside CONVERT.
type Verbatim struct {
	SQL string
}

func (*Verbatim) exprNode() {}

// FuncCall is a function invocation.
type FuncCall struct {
	Name string
	Args []Expr
}

func (*FuncCall) exprNode() {}

// Call is shorthand for constructing a FuncCall.
func Call(name string, args ...Expr) *FuncCall {
	return &FuncCall{Name: name, Args: args}
}

// CastExpr converts an expression to the named dialect type.
type CastExpr struct {
	Expr     Expr
	TypeName string
}

func (*CastExpr) exprNode() {}

// BinaryExpr applies an infix operator.
type BinaryExpr struct {
	Left  Expr
	Op    string // "=", "+", "AND", ...
	Right Expr
}

func (*BinaryExpr) exprNode() {}

// UnaryExpr applies a prefix operator.
type UnaryExpr struct {
	Op   string // "NOT", "-"
	Expr Expr
}

func (*UnaryExpr) exprNode() {}

// CaseExpr is a searched CASE expression.
type CaseExpr struct {
	Whens []WhenClause
	Else  Expr
}

func (*CaseExpr) exprNode() {}

// WhenClause is one WHEN/THEN arm of a CaseExpr.
type WhenClause struct {
	Condition Expr
	Result    Expr
}

// IsNullExpr is an IS [NOT] NULL test.
type IsNullExpr struct {
	Expr Expr
	Not  bool
}

func (*IsNullExpr) exprNode() {}

// ArrayExpr is an element-wise literal sequence for array values.
type ArrayExpr struct {
	Elems []Expr
}

func (*ArrayExpr) exprNode() {}
