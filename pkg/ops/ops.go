// Package ops defines the backend-agnostic operation tree consumed by the
// lowering layer.
//
// Nodes are grouped by operand shape rather than one struct per kind: a
// single Unary struct serves every one-argument operation, with the Op field
// carrying the kind tag. Nodes are immutable once constructed and owned by
// the compiler's expression tree; the lowering layer only reads them.
//
// Literal values are plain Go values tagged by the node's DataType:
//
//	boolean          bool
//	integers         int64
//	floats           float64
//	decimal          decimal.Decimal (github.com/shopspring/decimal)
//	string           string
//	binary           []byte
//	date             civil.Date
//	time             civil.Time
//	timestamp        civil.DateTime (naive) or time.Time (with timezone)
//	interval         int64 (the width, in the type's unit)
//	uuid             uuid.UUID
//	array            []any of the element encodings above
//	null (any type)  nil
package ops

import "github.com/leapstack-labs/queryc/pkg/datatypes"

// Node is the interface implemented by every operation node.
type Node interface {
	// Kind returns the operation tag used for registry lookup.
	Kind() Kind
	// Type returns the node's inferred data type.
	Type() datatypes.DataType

	opNode() // Marker method to keep the variant set closed.
}

// Literal is a typed constant value. Value follows the encoding table in the
// package comment; nil encodes NULL of any type.
type Literal struct {
	Value    any
	DataType datatypes.DataType
}

func (l *Literal) Kind() Kind { return KindLiteral }
func (l *Literal) Type() datatypes.DataType { return l.DataType }
func (*Literal) opNode() {}

// Column is a direct reference to a table column.
type Column struct {
	Name     string
	Table    string // optional qualifier
	DataType datatypes.DataType
}

func (c *Column) Kind() Kind { return KindColumn }
func (c *Column) Type() datatypes.DataType { return c.DataType }
func (*Column) opNode() {}

// Cast converts its argument to another type.
type Cast struct {
	Arg Node
	To  datatypes.DataType
}

func (c *Cast) Kind() Kind { return KindCast }
func (c *Cast) Type() datatypes.DataType { return c.To }
func (*Cast) opNode() {}

// Unary is any single-argument operation (not, negate, abs, lowercase,
// string_length, the extract_* family, ...).
type Unary struct {
	Op       Kind
	Arg      Node
	DataType datatypes.DataType
}

func (u *Unary) Kind() Kind { return u.Op }
func (u *Unary) Type() datatypes.DataType { return u.DataType }
func (*Unary) opNode() {}

// Binary is any two-argument operation (arithmetic, comparisons, and/or,
// power, atan2, repeat, ...).
type Binary struct {
	Op       Kind
	Left     Node
	Right    Node
	DataType datatypes.DataType
}

func (b *Binary) Kind() Kind { return b.Op }
func (b *Binary) Type() datatypes.DataType { return b.DataType }
func (*Binary) opNode() {}

// Variadic is any operation over an argument list (coalesce, string_concat,
// substring, string_replace, date_from_ymd, lpad, timestamp_now with no
// arguments, ...).
type Variadic struct {
	Op       Kind
	Args     []Node
	DataType datatypes.DataType
}

func (v *Variadic) Kind() Kind { return v.Op }
func (v *Variadic) Type() datatypes.DataType { return v.DataType }
func (*Variadic) opNode() {}

// IfElse is the three-valued conditional. False may carry a null literal to
// express "else NULL".
type IfElse struct {
	Cond     Node
	True     Node
	False    Node
	DataType datatypes.DataType
}

func (i *IfElse) Kind() Kind { return KindIfElse }
func (i *IfElse) Type() datatypes.DataType { return i.DataType }
func (*IfElse) opNode() {}

// Reduction is an aggregate over Arg, optionally filtered by the Where
// predicate. How selects the sampling mode for standard_dev and variance
// ("sample" or "pop") and is empty for other reductions.
type Reduction struct {
	Op       Kind
	Arg      Node
	Where    Node // optional filter predicate
	How      string
	DataType datatypes.DataType
}

func (r *Reduction) Kind() Kind { return r.Op }
func (r *Reduction) Type() datatypes.DataType { return r.DataType }
func (*Reduction) opNode() {}

// StringFind locates Substr within Arg, optionally from Start. The result is
// zero-based; -1 means not found.
type StringFind struct {
	Arg    Node
	Substr Node
	Start  Node // optional
}

func (s *StringFind) Kind() Kind { return KindStringFind }
func (s *StringFind) Type() datatypes.DataType { return datatypes.Int64 }
func (*StringFind) opNode() {}

// Round rounds Arg to Digits decimal places; nil Digits means zero places.
type Round struct {
	Arg      Node
	Digits   Node // optional
	DataType datatypes.DataType
}

func (r *Round) Kind() Kind { return KindRound }
func (r *Round) Type() datatypes.DataType { return r.DataType }
func (*Round) opNode() {}

// Truncate floors a date or timestamp to the given unit. Op is
// KindDateTruncate or KindTimestampTruncate.
type Truncate struct {
	Op   Kind
	Arg  Node
	Unit datatypes.IntervalUnit
}

func (t *Truncate) Kind() Kind { return t.Op }
func (t *Truncate) Type() datatypes.DataType { return t.Arg.Type() }
func (*Truncate) opNode() {}

// Bucket groups a temporal value into fixed-width windows. Interval must be
// an interval-typed node; Offset shifts the window origin and is optional.
type Bucket struct {
	Arg      Node
	Interval Node
	Offset   Node // optional
}

func (b *Bucket) Kind() Kind { return KindTimestampBucket }
func (b *Bucket) Type() datatypes.DataType { return b.Arg.Type() }
func (*Bucket) opNode() {}

// Delta is the difference Left − Right expressed in Part units. Op is one of
// KindDateDelta, KindTimeDelta, KindTimestampDelta.
type Delta struct {
	Op    Kind
	Part  datatypes.IntervalUnit
	Left  Node
	Right Node
}

func (d *Delta) Kind() Kind { return d.Op }
func (d *Delta) Type() datatypes.DataType { return datatypes.Int64 }
func (*Delta) opNode() {}

// TimestampFromUNIX converts an epoch count in Unit (seconds or
// milliseconds) to a timestamp.
type TimestampFromUNIX struct {
	Arg  Node
	Unit datatypes.IntervalUnit
}

func (t *TimestampFromUNIX) Kind() Kind { return KindTimestampFromUNIX }
func (t *TimestampFromUNIX) Type() datatypes.DataType { return datatypes.Timestamp() }
func (*TimestampFromUNIX) opNode() {}

// Digest hashes Arg with the algorithm named by How ("md5", "sha1",
// "sha256", "sha512"). Op is KindHashBytes for the binary digest or
// KindHexDigest for the lowercase hexadecimal rendering.
type Digest struct {
	Op  Kind
	How string
	Arg Node
}

func (d *Digest) Kind() Kind { return d.Op }

// Type returns binary for hash_bytes and string for hex_digest.
func (d *Digest) Type() datatypes.DataType {
	if d.Op == KindHexDigest {
		return datatypes.String
	}
	return datatypes.Binary
}
func (*Digest) opNode() {}

// NthValue is the window function selecting the Nth value of Arg. It exists
// so dialects without a correct translation can reject it deterministically.
type NthValue struct {
	Arg Node
	Nth Node
}

func (n *NthValue) Kind() Kind { return KindNthValue }
func (n *NthValue) Type() datatypes.DataType { return n.Arg.Type() }
func (*NthValue) opNode() {}
