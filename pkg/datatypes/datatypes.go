// Package datatypes defines the type descriptors attached to every operation
// node and literal in the expression tree.
//
// A DataType is a small value type: a kind tag, a nullability flag, and the
// kind-specific parameters (timezone for timestamps, unit for intervals,
// element type for arrays, precision/scale for decimals). Descriptors are
// produced by the upstream type-inference stage; this package only models
// them.
package datatypes

import "fmt"

// Kind identifies the scalar or parametric type family.
type Kind int

// Kind constants for the supported type families.
const (
	KindUnknown Kind = iota
	KindBoolean
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindDecimal
	KindString
	KindBinary
	KindDate
	KindTime
	KindTimestamp
	KindInterval
	KindArray
	KindUUID
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindDecimal:
		return "decimal"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindTimestamp:
		return "timestamp"
	case KindInterval:
		return "interval"
	case KindArray:
		return "array"
	case KindUUID:
		return "uuid"
	default:
		return "unknown"
	}
}

// DataType describes the type of an operation node or literal value.
type DataType struct {
	Kind     Kind
	Nullable bool

	// Timezone is the IANA zone or fixed offset of a timestamp type.
	// Empty means a naive (zoneless) timestamp.
	Timezone string

	// Unit is the granularity of an interval type.
	Unit IntervalUnit

	// Precision and Scale parameterize decimal types (0 means unspecified).
	Precision int
	Scale     int

	// Elem is the element type of an array type.
	Elem *DataType
}

// Common descriptors. All are nullable; use WithNullable to tighten.
var (
	Boolean = DataType{Kind: KindBoolean, Nullable: true}
	Int8    = DataType{Kind: KindInt8, Nullable: true}
	Int16   = DataType{Kind: KindInt16, Nullable: true}
	Int32   = DataType{Kind: KindInt32, Nullable: true}
	Int64   = DataType{Kind: KindInt64, Nullable: true}
	Float32 = DataType{Kind: KindFloat32, Nullable: true}
	Float64 = DataType{Kind: KindFloat64, Nullable: true}
	String  = DataType{Kind: KindString, Nullable: true}
	Binary  = DataType{Kind: KindBinary, Nullable: true}
	Date    = DataType{Kind: KindDate, Nullable: true}
	Time    = DataType{Kind: KindTime, Nullable: true}
	UUID    = DataType{Kind: KindUUID, Nullable: true}
)

// Timestamp returns a naive timestamp descriptor.
func Timestamp() DataType {
	return DataType{Kind: KindTimestamp, Nullable: true}
}

// TimestampTZ returns a timestamp descriptor carrying a timezone.
func TimestampTZ(tz string) DataType {
	return DataType{Kind: KindTimestamp, Nullable: true, Timezone: tz}
}

// Decimal returns a decimal descriptor with the given precision and scale.
func Decimal(precision, scale int) DataType {
	return DataType{Kind: KindDecimal, Nullable: true, Precision: precision, Scale: scale}
}

// Interval returns an interval descriptor with the given unit.
func Interval(unit IntervalUnit) DataType {
	return DataType{Kind: KindInterval, Nullable: true, Unit: unit}
}

// Array returns an array descriptor over the given element type.
func Array(elem DataType) DataType {
	return DataType{Kind: KindArray, Nullable: true, Elem: &elem}
}

// WithNullable returns a copy of the descriptor with nullability set.
func (t DataType) WithNullable(nullable bool) DataType {
	t.Nullable = nullable
	return t
}

// IsBoolean reports whether the type is boolean.
func (t DataType) IsBoolean() bool { return t.Kind == KindBoolean }

// IsDecimal reports whether the type is decimal.
func (t DataType) IsDecimal() bool { return t.Kind == KindDecimal }

// IsString reports whether the type is string.
func (t DataType) IsString() bool { return t.Kind == KindString }

// IsBinary reports whether the type is binary.
func (t DataType) IsBinary() bool { return t.Kind == KindBinary }

// IsDate reports whether the type is date.
func (t DataType) IsDate() bool { return t.Kind == KindDate }

// IsTime reports whether the type is time-of-day.
func (t DataType) IsTime() bool { return t.Kind == KindTime }

// IsTimestamp reports whether the type is a timestamp (naive or zoned).
func (t DataType) IsTimestamp() bool { return t.Kind == KindTimestamp }

// IsInterval reports whether the type is an interval.
func (t DataType) IsInterval() bool { return t.Kind == KindInterval }

// IsArray reports whether the type is an array.
func (t DataType) IsArray() bool { return t.Kind == KindArray }

// IsUUID reports whether the type is a uuid.
func (t DataType) IsUUID() bool { return t.Kind == KindUUID }

// String returns a short human-readable form, e.g. "timestamp('UTC')" or
// "array<int64>".
func (t DataType) String() string {
	s := t.Kind.String()
	switch t.Kind {
	case KindTimestamp:
		if t.Timezone != "" {
			s = fmt.Sprintf("timestamp(%q)", t.Timezone)
		}
	case KindInterval:
		s = fmt.Sprintf("interval(%s)", t.Unit)
	case KindDecimal:
		if t.Precision != 0 {
			s = fmt.Sprintf("decimal(%d,%d)", t.Precision, t.Scale)
		}
	case KindArray:
		if t.Elem != nil {
			s = fmt.Sprintf("array<%s>", t.Elem)
		}
	}
	if !t.Nullable {
		s += " not null"
	}
	return s
}
