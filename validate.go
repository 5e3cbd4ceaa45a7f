package chrono

// Mode selects how packers, parsers, and formatters respond to a
// component that fails its range or format check. A Mode is fixed at
// construction; use WithMode to obtain a sibling instance bound to a
// different mode.
type Mode int

const (
	// ModeUnchecked skips validation entirely. Inputs and outputs pass
	// through unchanged. Use only when the caller guarantees correctness,
	// e.g. hot paths re-reading values it packed itself.
	ModeUnchecked Mode = iota

	// ModeSentinel replaces an invalid input or output with a documented
	// sentinel value. The caller must check for it. No error is returned.
	ModeSentinel

	// ModeStrict reports an invalid input or output as an error carrying
	// the offending component value or raw text.
	ModeStrict

	modeCount
)

// String returns the mode name used in struct tags and signal fields.
func (m Mode) String() string {
	switch m {
	case ModeUnchecked:
		return "unchecked"
	case ModeSentinel:
		return "sentinel"
	case ModeStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// Valid returns true if m is a known mode.
func (m Mode) Valid() bool {
	return m >= ModeUnchecked && m < modeCount
}

// Component bounds. Years are capped at four decimal digits even though
// the binary date field is wider; see PackedDate.
const (
	MinYear = 1
	MaxYear = 9999
)

// monthDays holds the day-of-month upper bound per month in a non-leap
// year. Index 0 is unused.
var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a leap year under proleptic
// Gregorian rules.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month, accounting
// for leap years. Month must be in [1, 12].
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

// ValidYear reports whether year is in [1, 9999].
func ValidYear(year int) bool {
	return MinYear <= year && year <= MaxYear
}

// ValidMonth reports whether month is in [1, 12].
func ValidMonth(month int) bool {
	return 1 <= month && month <= 12
}

// ValidDay reports whether day is legal for the given year and month.
// The result is meaningless unless year and month are themselves valid.
func ValidDay(year, month, day int) bool {
	return 1 <= day && day <= DaysInMonth(year, month)
}

// ValidDate reports whether the triplet forms a legal calendar date.
// Year and month are checked before day, since the day bound depends on
// them.
func ValidDate(year, month, day int) bool {
	return ValidYear(year) && ValidMonth(month) && ValidDay(year, month, day)
}

// ValidHour reports whether hour is in [0, 23].
func ValidHour(hour int) bool {
	return 0 <= hour && hour <= 23
}

// ValidMinute reports whether minute is in [0, 59].
func ValidMinute(minute int) bool {
	return 0 <= minute && minute <= 59
}

// ValidSecond reports whether second is in [0, 59].
func ValidSecond(second int) bool {
	return 0 <= second && second <= 59
}

// ValidMilli reports whether ms is in [0, 999].
func ValidMilli(ms int) bool {
	return 0 <= ms && ms <= 999
}

// ValidMicro reports whether us is in [0, 999999].
func ValidMicro(us int) bool {
	return 0 <= us && us <= 999_999
}

// ValidNano reports whether ns is in [0, 999999999].
func ValidNano(ns int) bool {
	return 0 <= ns && ns <= 999_999_999
}

// ValidTime reports whether the triplet forms a legal time of day at
// second precision.
func ValidTime(hour, minute, second int) bool {
	return ValidHour(hour) && ValidMinute(minute) && ValidSecond(second)
}

// checkDate returns the first out-of-range component of a date, or ""
// when the triplet is valid. Year and month are checked before day.
func checkDate(year, month, day int) (string, int64) {
	if !ValidYear(year) {
		return "year", int64(year)
	}
	if !ValidMonth(month) {
		return "month", int64(month)
	}
	if !ValidDay(year, month, day) {
		return "day", int64(day)
	}
	return "", 0
}

// checkTime returns the first out-of-range component of a time of day,
// or "" when the triplet is valid.
func checkTime(hour, minute, second int) (string, int64) {
	if !ValidHour(hour) {
		return "hour", int64(hour)
	}
	if !ValidMinute(minute) {
		return "minute", int64(minute)
	}
	if !ValidSecond(second) {
		return "second", int64(second)
	}
	return "", 0
}

// component resolves one extracted component value according to the
// mode: pass through, integer sentinel, or RangeError.
func component(mode Mode, source, name string, value int, valid func(int) bool) (int, error) {
	if mode != ModeUnchecked && !valid(value) {
		if mode == ModeStrict {
			emitReject(source, name, int64(value))
			return InvalidComponent, newRangeError(name, int64(value))
		}
		return InvalidComponent, nil
	}
	return value, nil
}
