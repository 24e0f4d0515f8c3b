package datatypes

// IntervalUnit is the closed enumeration of temporal granularities. The
// values are the short codes used throughout the compiler; dialect packages
// map them to their own keywords.
type IntervalUnit string

// Interval unit constants, finest first.
const (
	UnitMicrosecond IntervalUnit = "us"
	UnitMillisecond IntervalUnit = "ms"
	UnitSecond      IntervalUnit = "s"
	UnitMinute      IntervalUnit = "m"
	UnitHour        IntervalUnit = "h"
	UnitDay         IntervalUnit = "D"
	UnitWeek        IntervalUnit = "W"
	UnitMonth       IntervalUnit = "M"
	UnitQuarter     IntervalUnit = "Q"
	UnitYear        IntervalUnit = "Y"
)

// Units lists every interval unit, finest first.
var Units = []IntervalUnit{
	UnitMicrosecond,
	UnitMillisecond,
	UnitSecond,
	UnitMinute,
	UnitHour,
	UnitDay,
	UnitWeek,
	UnitMonth,
	UnitQuarter,
	UnitYear,
}

var unitNames = map[IntervalUnit]string{
	UnitMicrosecond: "microsecond",
	UnitMillisecond: "millisecond",
	UnitSecond:      "second",
	UnitMinute:      "minute",
	UnitHour:        "hour",
	UnitDay:         "day",
	UnitWeek:        "week",
	UnitMonth:       "month",
	UnitQuarter:     "quarter",
	UnitYear:        "year",
}

// Valid reports whether u is one of the enumerated units.
func (u IntervalUnit) Valid() bool {
	_, ok := unitNames[u]
	return ok
}

// Name returns the full lowercase unit name ("day", "quarter"), or the raw
// code when the unit is unknown.
func (u IntervalUnit) Name() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return string(u)
}

// String returns the short code.
func (u IntervalUnit) String() string { return string(u) }
