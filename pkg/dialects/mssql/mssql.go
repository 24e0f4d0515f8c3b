// Package mssql provides the Microsoft SQL Server lowering overlay.
//
// The overlay starts from the default lowering table and corrects for
// T-SQL's idiosyncrasies: no first-class boolean outside predicates, a LEN
// function that ignores trailing spaces, literal constructors instead of
// typed literals, renamed hash algorithms, and date-part keywords that must
// be spliced verbatim rather than bound. Operation kinds with no correct
// T-SQL translation are removed outright so lookups fail instead of
// producing approximate SQL.
package mssql

import (
	"github.com/leapstack-labs/queryc/pkg/datatypes"
	"github.com/leapstack-labs/queryc/pkg/lower"
	"github.com/leapstack-labs/queryc/pkg/ops"
)

// Name is the dialect name in the lowering registry.
const Name = "mssql"

func init() {
	lower.Register(Name, Registry)
}

// invalidOperations have no correct T-SQL translation. They are removed from
// the resolved registry entirely; lowering them fails with
// ErrUnsupportedOperation.
var invalidOperations = []ops.Kind{
	ops.KindLPad,
	ops.KindRPad,
	ops.KindBitAnd,
	ops.KindBitOr,
	ops.KindBitXor,
	ops.KindGroupConcat,
	ops.KindNthValue,
}

// Registry is the resolved MSSQL lowering table: default table + overrides
// below − invalidOperations. Built once at init and immutable thereafter.
var Registry = lower.NewBuilder().
	Override(ops.KindNot, lowerNot).
	// aggregate methods
	Override(ops.KindCount, reduction("count")).
	Override(ops.KindMax, reduction("max")).
	Override(ops.KindMin, reduction("min")).
	Override(ops.KindSum, reduction("sum")).
	Override(ops.KindMean, reductionAs("avg", datatypes.Float64)).
	Override(ops.KindStandardDev, lower.VarianceReduction("stdev", map[string]string{"sample": "", "pop": "p"})).
	Override(ops.KindVariance, lower.VarianceReduction("var", map[string]string{"sample": "", "pop": "p"})).
	Override(ops.KindIfElse, lowerIfElse).
	// string methods
	Override(ops.KindCapitalize, lowerCapitalize).
	Override(ops.KindRepeat, lower.Binary("replicate")).
	Override(ops.KindSubstring, lower.Variadic("substring")).
	Override(ops.KindStringFind, lowerStringFind).
	Override(ops.KindStringLength, lowerStringLength).
	// math
	Override(ops.KindCeil, lower.Unary("ceiling")).
	Override(ops.KindAtan2, lower.Binary("atn2")).
	Override(ops.KindFloorDivide, lowerFloorDivide).
	Override(ops.KindRound, lowerRound).
	Override(ops.KindRandomScalar, lower.Variadic("RAND")).
	Override(ops.KindLn, lower.Unary("log")).
	Override(ops.KindLog, lower.Binary("log")).
	Override(ops.KindLog2, logWithBase(2)).
	Override(ops.KindLog10, logWithBase(10)).
	// timestamp methods
	Override(ops.KindTimestampNow, lower.Variadic("GETDATE")).
	Override(ops.KindExtractYear, extract("year")).
	Override(ops.KindExtractMonth, extract("month")).
	Override(ops.KindExtractDay, extract("day")).
	Override(ops.KindExtractDayOfYear, extract("dayofyear")).
	Override(ops.KindExtractHour, extract("hour")).
	Override(ops.KindExtractMinute, extract("minute")).
	Override(ops.KindExtractSecond, extract("second")).
	Override(ops.KindExtractMillisecond, extract("millisecond")).
	Override(ops.KindExtractWeekOfYear, extract("iso_week")).
	Override(ops.KindExtractMicrosecond, lowerExtractMicrosecond).
	Override(ops.KindDayOfWeekIndex, lowerDayOfWeekIndex).
	Override(ops.KindExtractEpochSeconds, lowerExtractEpochSeconds).
	Override(ops.KindTimestampFromUNIX, lowerTimestampFromUNIX).
	Override(ops.KindDateFromYMD, lower.Variadic("datefromparts")).
	Override(ops.KindTimestampFromYMDHMS, lowerTimestampFromYMDHMS).
	Override(ops.KindTimeFromHMS, lowerTimeFromHMS).
	Override(ops.KindDateTruncate, lowerTruncate).
	Override(ops.KindTimestampTruncate, lowerTruncate).
	Override(ops.KindTimestampBucket, lowerBucket).
	Override(ops.KindDateDelta, lowerDelta).
	Override(ops.KindTimeDelta, lowerDelta).
	Override(ops.KindTimestampDelta, lowerDelta).
	// hashing
	Override(ops.KindHash, lower.Unary("checksum")).
	Override(ops.KindHashBytes, lowerHashBytes).
	Override(ops.KindHexDigest, lowerHexDigest).
	// values
	Override(ops.KindLiteral, lowerLiteral).
	Override(ops.KindCast, lowerCast).
	Remove(invalidOperations...).
	MustBuild()
