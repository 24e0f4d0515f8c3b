package ops

// Kind tags which computation an operation node represents. The set is
// closed: the default lowering table enumerates every kind, and dialect
// overlays may only override or deny kinds that exist here.
type Kind string

// Value and reference kinds.
const (
	KindLiteral Kind = "literal"
	KindColumn  Kind = "column"
	KindCast    Kind = "cast"
)

// Logical kinds.
const (
	KindNot      Kind = "not"
	KindAnd      Kind = "and"
	KindOr       Kind = "or"
	KindIfElse   Kind = "if_else"
	KindIsNull   Kind = "is_null"
	KindCoalesce Kind = "coalesce"
)

// Comparison kinds.
const (
	KindEquals       Kind = "equals"
	KindNotEquals    Kind = "not_equals"
	KindLess         Kind = "less"
	KindLessEqual    Kind = "less_equal"
	KindGreater      Kind = "greater"
	KindGreaterEqual Kind = "greater_equal"
)

// Arithmetic and math kinds.
const (
	KindAdd          Kind = "add"
	KindSubtract     Kind = "subtract"
	KindMultiply     Kind = "multiply"
	KindDivide       Kind = "divide"
	KindFloorDivide  Kind = "floor_divide"
	KindModulus      Kind = "modulus"
	KindNegate       Kind = "negate"
	KindPower        Kind = "power"
	KindAbs          Kind = "abs"
	KindCeil         Kind = "ceil"
	KindFloor        Kind = "floor"
	KindSign         Kind = "sign"
	KindSqrt         Kind = "sqrt"
	KindExp          Kind = "exp"
	KindLn           Kind = "ln"
	KindLog          Kind = "log"
	KindLog2         Kind = "log2"
	KindLog10        Kind = "log10"
	KindSin          Kind = "sin"
	KindCos          Kind = "cos"
	KindTan          Kind = "tan"
	KindAsin         Kind = "asin"
	KindAcos         Kind = "acos"
	KindAtan         Kind = "atan"
	KindAtan2        Kind = "atan2"
	KindRound        Kind = "round"
	KindRandomScalar Kind = "random"
)

// String kinds.
const (
	KindLowercase     Kind = "lowercase"
	KindUppercase     Kind = "uppercase"
	KindCapitalize    Kind = "capitalize"
	KindReverse       Kind = "reverse"
	KindStrip         Kind = "strip"
	KindLStrip        Kind = "lstrip"
	KindRStrip        Kind = "rstrip"
	KindRepeat        Kind = "repeat"
	KindSubstring     Kind = "substring"
	KindStringConcat  Kind = "string_concat"
	KindStringReplace Kind = "string_replace"
	KindStringFind    Kind = "string_find"
	KindStringLength  Kind = "string_length"
	KindLPad          Kind = "lpad"
	KindRPad          Kind = "rpad"
)

// Temporal kinds.
const (
	KindTimestampNow        Kind = "timestamp_now"
	KindExtractYear         Kind = "extract_year"
	KindExtractMonth        Kind = "extract_month"
	KindExtractDay          Kind = "extract_day"
	KindExtractDayOfYear    Kind = "extract_day_of_year"
	KindExtractHour         Kind = "extract_hour"
	KindExtractMinute       Kind = "extract_minute"
	KindExtractSecond       Kind = "extract_second"
	KindExtractMillisecond  Kind = "extract_millisecond"
	KindExtractMicrosecond  Kind = "extract_microsecond"
	KindExtractWeekOfYear   Kind = "extract_week_of_year"
	KindExtractEpochSeconds Kind = "extract_epoch_seconds"
	KindDayOfWeekIndex      Kind = "day_of_week_index"
	KindTimestampFromUNIX   Kind = "timestamp_from_unix"
	KindDateFromYMD         Kind = "date_from_ymd"
	KindTimestampFromYMDHMS Kind = "timestamp_from_ymdhms"
	KindTimeFromHMS         Kind = "time_from_hms"
	KindDateTruncate        Kind = "date_truncate"
	KindTimestampTruncate   Kind = "timestamp_truncate"
	KindTimestampBucket     Kind = "timestamp_bucket"
	KindDateDelta           Kind = "date_delta"
	KindTimeDelta           Kind = "time_delta"
	KindTimestampDelta      Kind = "timestamp_delta"
)

// Reduction kinds.
const (
	KindCount       Kind = "count"
	KindSum         Kind = "sum"
	KindMean        Kind = "mean"
	KindMin         Kind = "min"
	KindMax         Kind = "max"
	KindStandardDev Kind = "standard_dev"
	KindVariance    Kind = "variance"
	KindBitAnd      Kind = "bit_and"
	KindBitOr       Kind = "bit_or"
	KindBitXor      Kind = "bit_xor"
	KindGroupConcat Kind = "group_concat"
)

// Window and hashing kinds.
const (
	KindNthValue  Kind = "nth_value"
	KindHash      Kind = "hash"
	KindHashBytes Kind = "hash_bytes"
	KindHexDigest Kind = "hex_digest"
)

// String returns the kind tag.
func (k Kind) String() string { return string(k) }
