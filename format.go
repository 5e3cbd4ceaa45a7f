package chrono

import "reflect"

// DateFormatter renders dates as fixed-width text into any
// offset-addressable target. Layout, separator, and validation mode
// are fixed at construction. Formatting writes exactly Layout().Length
// bytes starting at the caller's offset and touches nothing else.
//
// Separated layouts require a real separator byte: a formatter has to
// put something in the separator columns.
type DateFormatter[T any] struct {
	layout DateLayout
	sep    byte
	mode   Mode
	write  WriteChar[T]
}

// NewDateFormatter returns a DateFormatter over an arbitrary target
// type. Formatters over byte slices should use NewDateBytesFormatter,
// which caches instances.
func NewDateFormatter[T any](id DateLayoutID, sep byte, mode Mode, write WriteChar[T]) (*DateFormatter[T], error) {
	if err := checkDateFormatConfig(id, sep, mode); err != nil {
		return nil, err
	}
	emitFormatterCreated("date", id.String(), sep, mode)
	return &DateFormatter[T]{layout: id.Layout(), sep: sep, mode: mode, write: write}, nil
}

// NewDateBytesFormatter returns the cached byte-slice DateFormatter
// for the given layout, separator, and mode.
func NewDateBytesFormatter(id DateLayoutID, sep byte, mode Mode) (*DateFormatter[[]byte], error) {
	if err := checkDateFormatConfig(id, sep, mode); err != nil {
		return nil, err
	}
	key := registryKey{kind: "date-formatter", mode: mode, layout: int(id), sep: sep, typ: reflect.TypeFor[[]byte]()}
	return cached(key, func() (*DateFormatter[[]byte], error) {
		return NewDateFormatter[[]byte](id, sep, mode, WriteBytes)
	})
}

func checkDateFormatConfig(id DateLayoutID, sep byte, mode Mode) error {
	if !id.Valid() {
		return newConfigError("date layout", id.String())
	}
	if !mode.Valid() {
		return newConfigError("mode", mode.String())
	}
	if id.Layout().Separated() {
		if !validSeparator(sep) {
			return newConfigError("separator", separatorLabel(sep))
		}
	} else if sep != NoSeparator {
		return newConfigError("separator", separatorLabel(sep))
	}
	return nil
}

// Layout returns the formatter's layout geometry.
func (f *DateFormatter[T]) Layout() DateLayout { return f.layout }

// Separator returns the separator byte, or NoSeparator.
func (f *DateFormatter[T]) Separator() byte { return f.sep }

// Mode returns the formatter's validation mode.
func (f *DateFormatter[T]) Mode() Mode { return f.mode }

// writeDigits renders v as n zero-padded digits at offset pos.
func writeDigits[T any](write WriteChar[T], dst T, pos, n, v int) {
	for i := n - 1; i >= 0; i-- {
		write(dst, pos+i, byte('0'+v%10))
		v /= 10
	}
}

// Format writes the date at offset at in dst and returns the number of
// bytes written, always Layout().Length on success. Out-of-range
// components yield InvalidComponent without touching dst.
func (f *DateFormatter[T]) Format(dst T, at, year, month, day int) (int, error) {
	if f.mode != ModeUnchecked {
		if name, value := checkDate(year, month, day); name != "" {
			if f.mode == ModeStrict {
				emitReject("date-formatter", name, value)
				return InvalidComponent, newRangeError(name, value)
			}
			return InvalidComponent, nil
		}
	}
	writeDigits(f.write, dst, at+f.layout.yearPos, 4, year)
	writeDigits(f.write, dst, at+f.layout.monthPos, 2, month)
	writeDigits(f.write, dst, at+f.layout.dayPos, 2, day)
	for _, pos := range f.layout.sepPos {
		f.write(dst, at+pos, f.sep)
	}
	return f.layout.Length, nil
}

// FormatEpochDays writes the date lying the given number of days after
// 1970-01-01.
func (f *DateFormatter[T]) FormatEpochDays(dst T, at int, days int64) (int, error) {
	year, month, day := DateFromDays(days)
	return f.Format(dst, at, year, month, day)
}

// TimeFormatter renders times of day as fixed-width text, in the same
// manner as DateFormatter. The fraction is taken in nanoseconds and
// truncated to the layout's digit count.
type TimeFormatter[T any] struct {
	layout TimeLayout
	sep    byte
	mode   Mode
	write  WriteChar[T]
}

// NewTimeFormatter returns a TimeFormatter over an arbitrary target
// type.
func NewTimeFormatter[T any](id TimeLayoutID, sep byte, mode Mode, write WriteChar[T]) (*TimeFormatter[T], error) {
	if err := checkTimeFormatConfig(id, sep, mode); err != nil {
		return nil, err
	}
	emitFormatterCreated("time", id.String(), sep, mode)
	return &TimeFormatter[T]{layout: id.Layout(), sep: sep, mode: mode, write: write}, nil
}

// NewTimeBytesFormatter returns the cached byte-slice TimeFormatter
// for the given layout, separator, and mode.
func NewTimeBytesFormatter(id TimeLayoutID, sep byte, mode Mode) (*TimeFormatter[[]byte], error) {
	if err := checkTimeFormatConfig(id, sep, mode); err != nil {
		return nil, err
	}
	key := registryKey{kind: "time-formatter", mode: mode, layout: int(id), sep: sep, typ: reflect.TypeFor[[]byte]()}
	return cached(key, func() (*TimeFormatter[[]byte], error) {
		return NewTimeFormatter[[]byte](id, sep, mode, WriteBytes)
	})
}

func checkTimeFormatConfig(id TimeLayoutID, sep byte, mode Mode) error {
	if !id.Valid() {
		return newConfigError("time layout", id.String())
	}
	if !mode.Valid() {
		return newConfigError("mode", mode.String())
	}
	if id.Layout().Separated() {
		if !validSeparator(sep) {
			return newConfigError("separator", separatorLabel(sep))
		}
	} else if sep != NoSeparator {
		return newConfigError("separator", separatorLabel(sep))
	}
	return nil
}

// Layout returns the formatter's layout geometry.
func (f *TimeFormatter[T]) Layout() TimeLayout { return f.layout }

// Separator returns the separator byte, or NoSeparator.
func (f *TimeFormatter[T]) Separator() byte { return f.sep }

// Mode returns the formatter's validation mode.
func (f *TimeFormatter[T]) Mode() Mode { return f.mode }

// Format writes the time at offset at in dst and returns the number of
// bytes written, always Layout().Length on success. nano is the full
// nanosecond fraction; layouts with fewer digits truncate it.
func (f *TimeFormatter[T]) Format(dst T, at, hour, minute, second, nano int) (int, error) {
	if f.mode != ModeUnchecked {
		name, value := checkTime(hour, minute, second)
		if name == "" && !ValidNano(nano) {
			name, value = "nanosecond", int64(nano)
		}
		if name != "" {
			if f.mode == ModeStrict {
				emitReject("time-formatter", name, value)
				return InvalidComponent, newRangeError(name, value)
			}
			return InvalidComponent, nil
		}
	}
	writeDigits(f.write, dst, at+f.layout.hourPos, 2, hour)
	writeDigits(f.write, dst, at+f.layout.minutePos, 2, minute)
	writeDigits(f.write, dst, at+f.layout.secondPos, 2, second)
	if f.layout.Fractional() {
		writeDigits(f.write, dst, at+f.layout.fracPos, f.layout.fracDigits, nano/fracScale(f.layout.fracDigits))
	}
	for _, pos := range f.layout.sepPos {
		f.write(dst, at+pos, f.sep)
	}
	if f.layout.fracSepPos >= 0 {
		f.write(dst, at+f.layout.fracSepPos, '.')
	}
	return f.layout.Length, nil
}

// FormatSecondOfDay writes the time lying the given number of seconds
// after midnight.
func (f *TimeFormatter[T]) FormatSecondOfDay(dst T, at int, seconds int64) (int, error) {
	if f.mode != ModeUnchecked && (seconds < 0 || seconds >= SecondsPerDay) {
		if f.mode == ModeStrict {
			emitReject("time-formatter", "second-of-day", seconds)
			return InvalidComponent, newRangeError("second-of-day", seconds)
		}
		return InvalidComponent, nil
	}
	hour, minute, second := timeOfDay(floorMod(seconds, SecondsPerDay))
	return f.Format(dst, at, hour, minute, second, 0)
}

// FormatMilliOfDay writes the time lying the given number of
// milliseconds after midnight.
func (f *TimeFormatter[T]) FormatMilliOfDay(dst T, at int, millis int64) (int, error) {
	if f.mode != ModeUnchecked && (millis < 0 || millis >= MillisPerDay) {
		if f.mode == ModeStrict {
			emitReject("time-formatter", "milli-of-day", millis)
			return InvalidComponent, newRangeError("milli-of-day", millis)
		}
		return InvalidComponent, nil
	}
	intraday := floorMod(millis, MillisPerDay)
	hour, minute, second := timeOfDay(intraday / 1_000)
	return f.Format(dst, at, hour, minute, second, int(intraday%1_000)*1_000_000)
}

// FormatNanoOfDay writes the time lying the given number of
// nanoseconds after midnight.
func (f *TimeFormatter[T]) FormatNanoOfDay(dst T, at int, nanos int64) (int, error) {
	if f.mode != ModeUnchecked && (nanos < 0 || nanos >= NanosPerDay) {
		if f.mode == ModeStrict {
			emitReject("time-formatter", "nano-of-day", nanos)
			return InvalidComponent, newRangeError("nano-of-day", nanos)
		}
		return InvalidComponent, nil
	}
	intraday := floorMod(nanos, NanosPerDay)
	hour, minute, second := timeOfDay(intraday / 1_000_000_000)
	return f.Format(dst, at, hour, minute, second, int(intraday%1_000_000_000))
}

// FormatDateString renders a date to a fresh string using a pooled
// scratch buffer.
func FormatDateString(id DateLayoutID, sep byte, year, month, day int) (string, error) {
	f, err := NewDateBytesFormatter(id, sep, ModeStrict)
	if err != nil {
		return "", err
	}
	buf := scratch()
	defer release(buf)
	n, err := f.Format(*buf, 0, year, month, day)
	if err != nil {
		return "", err
	}
	return string((*buf)[:n]), nil
}

// FormatTimeString renders a time to a fresh string using a pooled
// scratch buffer. nano is the full nanosecond fraction.
func FormatTimeString(id TimeLayoutID, sep byte, hour, minute, second, nano int) (string, error) {
	f, err := NewTimeBytesFormatter(id, sep, ModeStrict)
	if err != nil {
		return "", err
	}
	buf := scratch()
	defer release(buf)
	n, err := f.Format(*buf, 0, hour, minute, second, nano)
	if err != nil {
		return "", err
	}
	return string((*buf)[:n]), nil
}
