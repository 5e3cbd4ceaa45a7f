package chrono

// Epoch conversion between calendar components and a linear count of
// days, seconds, milliseconds, or nanoseconds since 1970-01-01 UTC.
// Values before the epoch are negative. The algorithm works on a
// March-anchored year so the leap day falls at the end of the cycle,
// and is exact over the whole proleptic Gregorian calendar.

const (
	// daysPerCycle is the length of one full 400-year Gregorian cycle.
	daysPerCycle = 146097

	// epochOffsetDays is the distance from the March-anchored day zero
	// (0000-03-01) to 1970-01-01: five full cycles back to 0000-01-01
	// minus the 30 years (with 7 leap days) from 1970 to 2000, less the
	// 60 days from January to March of year zero.
	epochOffsetDays = daysPerCycle*5 - (30*365 + 7) - 60

	SecondsPerDay = 86_400
	MillisPerDay  = SecondsPerDay * 1_000
	NanosPerDay   = SecondsPerDay * 1_000_000_000

	secondsPerHour   = 3_600
	secondsPerMinute = 60
)

// floorDiv returns the quotient of a/b rounded toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns a - floorDiv(a, b)*b; the result has the sign of b.
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// DaysFromDate converts a calendar date to days since 1970-01-01.
// The conversion is closed-form arithmetic with no loop and never
// fails; out-of-range components produce an arithmetically consistent
// but semantically meaningless count. Range enforcement belongs to the
// validation mode of the calling packer.
func DaysFromDate(year, month, day int) int64 {
	y := int64(year)
	var m int64
	if month <= 2 {
		// January and February belong to the previous March-anchored year.
		y--
		m = int64(month) + 9
	} else {
		m = int64(month) - 3
	}

	era := floorDiv(y, 400)
	yoe := y - era*400                    // [0, 399]
	doy := (153*m+2)/5 + int64(day) - 1   // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]

	return era*daysPerCycle + doe - epochOffsetDays
}

// DateFromDays converts days since 1970-01-01 back to a calendar date.
// The closed-form year estimate can be off by one near cycle
// boundaries, so a decrement-and-recompute correction step follows it;
// that step is required for correctness, not an optimization.
func DateFromDays(days int64) (year, month, day int) {
	zeroDay := days + epochOffsetDays // days since 0000-03-01

	// Shift negative input by whole 400-year cycles so the closed-form
	// divisions below operate on a non-negative day count.
	var shift int64
	if zeroDay < 0 {
		cycles := (zeroDay+1)/daysPerCycle - 1
		shift = cycles * 400
		zeroDay -= cycles * daysPerCycle
	}

	yearEst := (400*zeroDay + 591) / daysPerCycle
	doyEst := zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	if doyEst < 0 {
		yearEst--
		doyEst = zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	}
	yearEst += shift

	marchMonth := (5*doyEst + 2) / 153 // [0, 11], 0 = March
	day = int(doyEst - (153*marchMonth+2)/5 + 1)
	if marchMonth < 10 {
		month = int(marchMonth) + 3
	} else {
		month = int(marchMonth) - 9
		yearEst++
	}
	year = int(yearEst)
	return year, month, day
}

// SecondsFromDateTime converts calendar and time-of-day components to
// seconds since the epoch.
func SecondsFromDateTime(year, month, day, hour, minute, second int) int64 {
	return DaysFromDate(year, month, day)*SecondsPerDay +
		int64(hour)*secondsPerHour +
		int64(minute)*secondsPerMinute +
		int64(second)
}

// DateTimeFromSeconds converts seconds since the epoch back to calendar
// and time-of-day components. Floor division keeps pre-epoch values on
// the correct day.
func DateTimeFromSeconds(seconds int64) (year, month, day, hour, minute, second int) {
	year, month, day = DateFromDays(floorDiv(seconds, SecondsPerDay))
	hour, minute, second = timeOfDay(floorMod(seconds, SecondsPerDay))
	return
}

// MillisFromDateTime converts calendar and time-of-day components to
// milliseconds since the epoch.
func MillisFromDateTime(year, month, day, hour, minute, second, milli int) int64 {
	return SecondsFromDateTime(year, month, day, hour, minute, second)*1_000 +
		int64(milli)
}

// DateTimeFromMillis converts milliseconds since the epoch back to
// calendar and time-of-day components.
func DateTimeFromMillis(millis int64) (year, month, day, hour, minute, second, milli int) {
	year, month, day = DateFromDays(floorDiv(millis, MillisPerDay))
	intraday := floorMod(millis, MillisPerDay)
	hour, minute, second = timeOfDay(intraday / 1_000)
	milli = int(intraday % 1_000)
	return
}

// NanosFromDateTime converts calendar and time-of-day components to
// nanoseconds since the epoch.
func NanosFromDateTime(year, month, day, hour, minute, second, nano int) int64 {
	return SecondsFromDateTime(year, month, day, hour, minute, second)*1_000_000_000 +
		int64(nano)
}

// DateTimeFromNanos converts nanoseconds since the epoch back to
// calendar and time-of-day components.
func DateTimeFromNanos(nanos int64) (year, month, day, hour, minute, second, nano int) {
	year, month, day = DateFromDays(floorDiv(nanos, NanosPerDay))
	intraday := floorMod(nanos, NanosPerDay)
	hour, minute, second = timeOfDay(intraday / 1_000_000_000)
	nano = int(intraday % 1_000_000_000)
	return
}

// timeOfDay decomposes a non-negative intraday second count into hour,
// minute, and second, in that order.
func timeOfDay(secondOfDay int64) (hour, minute, second int) {
	hour = int(secondOfDay / secondsPerHour)
	rem := secondOfDay % secondsPerHour
	minute = int(rem / secondsPerMinute)
	second = int(rem % secondsPerMinute)
	return
}
