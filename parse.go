package chrono

import (
	"errors"
	"reflect"
)

// DateParser parses fixed-width date text from any offset-addressable
// source. Layout, separator, and validation mode are fixed at
// construction; every offset the parser touches is a compile-time
// constant of its layout, so parsing is branch-light and allocation
// free.
//
// For separated layouts a NoSeparator byte disables separator
// enforcement: the separator columns are skipped without inspection.
type DateParser[S any] struct {
	layout DateLayout
	sep    byte
	mode   Mode
	read   ReadChar[S]
}

// NewDateParser returns a DateParser over an arbitrary source type.
// Parsers over strings and byte slices should use NewDateStringParser
// and NewDateBytesParser, which cache instances.
func NewDateParser[S any](id DateLayoutID, sep byte, mode Mode, read ReadChar[S]) (*DateParser[S], error) {
	if err := checkDateConfig(id, sep, mode); err != nil {
		return nil, err
	}
	emitParserCreated("date", id.String(), sep, mode)
	return &DateParser[S]{layout: id.Layout(), sep: sep, mode: mode, read: read}, nil
}

// NewDateStringParser returns the cached string-source DateParser for
// the given layout, separator, and mode.
func NewDateStringParser(id DateLayoutID, sep byte, mode Mode) (*DateParser[string], error) {
	if err := checkDateConfig(id, sep, mode); err != nil {
		return nil, err
	}
	key := registryKey{kind: "date-parser", mode: mode, layout: int(id), sep: sep, typ: reflect.TypeFor[string]()}
	return cached(key, func() (*DateParser[string], error) {
		return NewDateParser[string](id, sep, mode, ReadString)
	})
}

// NewDateBytesParser returns the cached byte-slice DateParser for the
// given layout, separator, and mode.
func NewDateBytesParser(id DateLayoutID, sep byte, mode Mode) (*DateParser[[]byte], error) {
	if err := checkDateConfig(id, sep, mode); err != nil {
		return nil, err
	}
	key := registryKey{kind: "date-parser", mode: mode, layout: int(id), sep: sep, typ: reflect.TypeFor[[]byte]()}
	return cached(key, func() (*DateParser[[]byte], error) {
		return NewDateParser[[]byte](id, sep, mode, ReadBytes)
	})
}

func checkDateConfig(id DateLayoutID, sep byte, mode Mode) error {
	if !id.Valid() {
		return newConfigError("date layout", id.String())
	}
	if !mode.Valid() {
		return newConfigError("mode", mode.String())
	}
	if sep != NoSeparator {
		if !id.Layout().Separated() {
			return newConfigError("separator", separatorLabel(sep))
		}
		if !validSeparator(sep) {
			return newConfigError("separator", separatorLabel(sep))
		}
	}
	return nil
}

// Layout returns the parser's layout geometry.
func (p *DateParser[S]) Layout() DateLayout { return p.layout }

// Separator returns the enforced separator, or NoSeparator.
func (p *DateParser[S]) Separator() byte { return p.sep }

// Mode returns the parser's validation mode.
func (p *DateParser[S]) Mode() Mode { return p.mode }

func (p *DateParser[S]) digits(src S, pos, n int) (int, bool) {
	v := 0
	for i := 0; i < n; i++ {
		c := p.read(src, pos+i)
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}

func (p *DateParser[S]) rawDigits(src S, pos, n int) int {
	v := 0
	for i := 0; i < n; i++ {
		v = v*10 + int(p.read(src, pos+i)-'0')
	}
	return v
}

// snippet copies the layout-width window of src for error reporting.
func (p *DateParser[S]) snippet(src S) string {
	b := make([]byte, p.layout.Length)
	for i := range b {
		b[i] = p.read(src, i)
	}
	return string(b)
}

func (p *DateParser[S]) fail(field string, src S) (int, error) {
	if p.mode == ModeStrict {
		input := p.snippet(src)
		emitRejectText("date-parser", field, input)
		return InvalidComponent, newFormatError(field, input)
	}
	return InvalidComponent, nil
}

func (p *DateParser[S]) checkSeparators(src S) error {
	if p.sep == NoSeparator {
		return nil
	}
	for _, pos := range p.layout.sepPos {
		if got := p.read(src, pos); got != p.sep {
			if p.mode == ModeStrict {
				input := p.snippet(src)
				emitRejectText("date-parser", "separator", input)
				return newSeparatorError(p.sep, got, input)
			}
			return errSentinel
		}
	}
	return nil
}

// errSentinel marks a non-strict rejection internally; it never
// escapes a parser method.
var errSentinel = errors.New("sentinel")

// ParseYear parses the year field. A year of 0000 is out of range.
func (p *DateParser[S]) ParseYear(src S) (int, error) {
	if p.mode == ModeUnchecked {
		return p.rawDigits(src, p.layout.yearPos, 4), nil
	}
	year, ok := p.digits(src, p.layout.yearPos, 4)
	if !ok || !ValidYear(year) {
		return p.fail("year", src)
	}
	return year, nil
}

// ParseMonth parses the month field.
func (p *DateParser[S]) ParseMonth(src S) (int, error) {
	if p.mode == ModeUnchecked {
		return p.rawDigits(src, p.layout.monthPos, 2), nil
	}
	month, ok := p.digits(src, p.layout.monthPos, 2)
	if !ok || !ValidMonth(month) {
		return p.fail("month", src)
	}
	return month, nil
}

// ParseDay parses the day field. The upper bound depends on the year
// and month fields, so both are consulted.
func (p *DateParser[S]) ParseDay(src S) (int, error) {
	if p.mode == ModeUnchecked {
		return p.rawDigits(src, p.layout.dayPos, 2), nil
	}
	year, yok := p.digits(src, p.layout.yearPos, 4)
	month, mok := p.digits(src, p.layout.monthPos, 2)
	day, dok := p.digits(src, p.layout.dayPos, 2)
	if !yok || !mok || !dok || !ValidDate(year, month, day) {
		return p.fail("day", src)
	}
	return day, nil
}

// Parse parses the full date. src must hold at least Layout().Length
// bytes at offset 0; parse at other offsets by shifting the reader.
func (p *DateParser[S]) Parse(src S) (year, month, day int, err error) {
	if p.mode == ModeUnchecked {
		return p.rawDigits(src, p.layout.yearPos, 4),
			p.rawDigits(src, p.layout.monthPos, 2),
			p.rawDigits(src, p.layout.dayPos, 2),
			nil
	}
	if serr := p.checkSeparators(src); serr != nil {
		if serr == errSentinel {
			serr = nil
		}
		return InvalidComponent, InvalidComponent, InvalidComponent, serr
	}
	y, yok := p.digits(src, p.layout.yearPos, 4)
	if !yok || !ValidYear(y) {
		_, err = p.fail("year", src)
		return InvalidComponent, InvalidComponent, InvalidComponent, err
	}
	m, mok := p.digits(src, p.layout.monthPos, 2)
	if !mok || !ValidMonth(m) {
		_, err = p.fail("month", src)
		return InvalidComponent, InvalidComponent, InvalidComponent, err
	}
	d, dok := p.digits(src, p.layout.dayPos, 2)
	if !dok || !ValidDate(y, m, d) {
		_, err = p.fail("day", src)
		return InvalidComponent, InvalidComponent, InvalidComponent, err
	}
	return y, m, d, nil
}

// IsValid reports whether src parses cleanly under the layout. The
// parser's mode is not consulted.
func (p *DateParser[S]) IsValid(src S) bool {
	if p.sep != NoSeparator {
		for _, pos := range p.layout.sepPos {
			if p.read(src, pos) != p.sep {
				return false
			}
		}
	}
	y, yok := p.digits(src, p.layout.yearPos, 4)
	m, mok := p.digits(src, p.layout.monthPos, 2)
	d, dok := p.digits(src, p.layout.dayPos, 2)
	return yok && mok && dok && ValidDate(y, m, d) && ValidYear(y)
}

// ParsePacked parses the date and packs it with the given packer. An
// invalid date yields the packer's invalid sentinel, subject to the
// parser's mode first and the packer's mode second.
func (p *DateParser[S]) ParsePacked(src S, packer *DatePacker) (PackedDate, error) {
	year, month, day, err := p.Parse(src)
	if err != nil {
		return packer.Invalid(), err
	}
	if year == InvalidComponent {
		return packer.Invalid(), nil
	}
	return packer.Pack(year, month, day)
}

// ParseEpochDays parses the date and returns it as days since
// 1970-01-01. An invalid date yields InvalidEpoch.
func (p *DateParser[S]) ParseEpochDays(src S) (int64, error) {
	year, month, day, err := p.Parse(src)
	if err != nil {
		return InvalidEpoch, err
	}
	if year == InvalidComponent {
		return InvalidEpoch, nil
	}
	return DaysFromDate(year, month, day), nil
}

// TimeParser parses fixed-width time text from any offset-addressable
// source, in the same manner as DateParser. The fraction point of
// pointed layouts is always enforced; only the field separator obeys
// NoSeparator.
type TimeParser[S any] struct {
	layout TimeLayout
	sep    byte
	mode   Mode
	read   ReadChar[S]
}

// NewTimeParser returns a TimeParser over an arbitrary source type.
func NewTimeParser[S any](id TimeLayoutID, sep byte, mode Mode, read ReadChar[S]) (*TimeParser[S], error) {
	if err := checkTimeConfig(id, sep, mode); err != nil {
		return nil, err
	}
	emitParserCreated("time", id.String(), sep, mode)
	return &TimeParser[S]{layout: id.Layout(), sep: sep, mode: mode, read: read}, nil
}

// NewTimeStringParser returns the cached string-source TimeParser for
// the given layout, separator, and mode.
func NewTimeStringParser(id TimeLayoutID, sep byte, mode Mode) (*TimeParser[string], error) {
	if err := checkTimeConfig(id, sep, mode); err != nil {
		return nil, err
	}
	key := registryKey{kind: "time-parser", mode: mode, layout: int(id), sep: sep, typ: reflect.TypeFor[string]()}
	return cached(key, func() (*TimeParser[string], error) {
		return NewTimeParser[string](id, sep, mode, ReadString)
	})
}

// NewTimeBytesParser returns the cached byte-slice TimeParser for the
// given layout, separator, and mode.
func NewTimeBytesParser(id TimeLayoutID, sep byte, mode Mode) (*TimeParser[[]byte], error) {
	if err := checkTimeConfig(id, sep, mode); err != nil {
		return nil, err
	}
	key := registryKey{kind: "time-parser", mode: mode, layout: int(id), sep: sep, typ: reflect.TypeFor[[]byte]()}
	return cached(key, func() (*TimeParser[[]byte], error) {
		return NewTimeParser[[]byte](id, sep, mode, ReadBytes)
	})
}

func checkTimeConfig(id TimeLayoutID, sep byte, mode Mode) error {
	if !id.Valid() {
		return newConfigError("time layout", id.String())
	}
	if !mode.Valid() {
		return newConfigError("mode", mode.String())
	}
	if sep != NoSeparator {
		if !id.Layout().Separated() {
			return newConfigError("separator", separatorLabel(sep))
		}
		if !validSeparator(sep) {
			return newConfigError("separator", separatorLabel(sep))
		}
	}
	return nil
}

// Layout returns the parser's layout geometry.
func (p *TimeParser[S]) Layout() TimeLayout { return p.layout }

// Separator returns the enforced separator, or NoSeparator.
func (p *TimeParser[S]) Separator() byte { return p.sep }

// Mode returns the parser's validation mode.
func (p *TimeParser[S]) Mode() Mode { return p.mode }

func (p *TimeParser[S]) digits(src S, pos, n int) (int, bool) {
	v := 0
	for i := 0; i < n; i++ {
		c := p.read(src, pos+i)
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}

func (p *TimeParser[S]) rawDigits(src S, pos, n int) int {
	v := 0
	for i := 0; i < n; i++ {
		v = v*10 + int(p.read(src, pos+i)-'0')
	}
	return v
}

func (p *TimeParser[S]) snippet(src S) string {
	b := make([]byte, p.layout.Length)
	for i := range b {
		b[i] = p.read(src, i)
	}
	return string(b)
}

func (p *TimeParser[S]) fail(field string, src S) (int, error) {
	if p.mode == ModeStrict {
		input := p.snippet(src)
		emitRejectText("time-parser", field, input)
		return InvalidComponent, newFormatError(field, input)
	}
	return InvalidComponent, nil
}

func (p *TimeParser[S]) checkSeparators(src S) error {
	if p.sep != NoSeparator {
		for _, pos := range p.layout.sepPos {
			if got := p.read(src, pos); got != p.sep {
				if p.mode == ModeStrict {
					input := p.snippet(src)
					emitRejectText("time-parser", "separator", input)
					return newSeparatorError(p.sep, got, input)
				}
				return errSentinel
			}
		}
	}
	if p.layout.fracSepPos >= 0 {
		if got := p.read(src, p.layout.fracSepPos); got != '.' {
			if p.mode == ModeStrict {
				input := p.snippet(src)
				emitRejectText("time-parser", "separator", input)
				return newSeparatorError('.', got, input)
			}
			return errSentinel
		}
	}
	return nil
}

// ParseHour parses the hour field.
func (p *TimeParser[S]) ParseHour(src S) (int, error) {
	if p.mode == ModeUnchecked {
		return p.rawDigits(src, p.layout.hourPos, 2), nil
	}
	hour, ok := p.digits(src, p.layout.hourPos, 2)
	if !ok || !ValidHour(hour) {
		return p.fail("hour", src)
	}
	return hour, nil
}

// ParseMinute parses the minute field.
func (p *TimeParser[S]) ParseMinute(src S) (int, error) {
	if p.mode == ModeUnchecked {
		return p.rawDigits(src, p.layout.minutePos, 2), nil
	}
	minute, ok := p.digits(src, p.layout.minutePos, 2)
	if !ok || !ValidMinute(minute) {
		return p.fail("minute", src)
	}
	return minute, nil
}

// ParseSecond parses the second field.
func (p *TimeParser[S]) ParseSecond(src S) (int, error) {
	if p.mode == ModeUnchecked {
		return p.rawDigits(src, p.layout.secondPos, 2), nil
	}
	second, ok := p.digits(src, p.layout.secondPos, 2)
	if !ok || !ValidSecond(second) {
		return p.fail("second", src)
	}
	return second, nil
}

// ParseFraction parses the sub-second field at the layout's native
// precision. Layouts without a fraction yield 0.
func (p *TimeParser[S]) ParseFraction(src S) (int, error) {
	if !p.layout.Fractional() {
		return 0, nil
	}
	if p.mode == ModeUnchecked {
		return p.rawDigits(src, p.layout.fracPos, p.layout.fracDigits), nil
	}
	frac, ok := p.digits(src, p.layout.fracPos, p.layout.fracDigits)
	if !ok {
		return p.fail("fraction", src)
	}
	return frac, nil
}

// ParseTime parses the hour, minute, and second fields, ignoring any
// fraction.
func (p *TimeParser[S]) ParseTime(src S) (hour, minute, second int, err error) {
	if p.mode == ModeUnchecked {
		return p.rawDigits(src, p.layout.hourPos, 2),
			p.rawDigits(src, p.layout.minutePos, 2),
			p.rawDigits(src, p.layout.secondPos, 2),
			nil
	}
	if serr := p.checkSeparators(src); serr != nil {
		if serr == errSentinel {
			serr = nil
		}
		return InvalidComponent, InvalidComponent, InvalidComponent, serr
	}
	h, hok := p.digits(src, p.layout.hourPos, 2)
	if !hok || !ValidHour(h) {
		_, err = p.fail("hour", src)
		return InvalidComponent, InvalidComponent, InvalidComponent, err
	}
	m, mok := p.digits(src, p.layout.minutePos, 2)
	if !mok || !ValidMinute(m) {
		_, err = p.fail("minute", src)
		return InvalidComponent, InvalidComponent, InvalidComponent, err
	}
	s, sok := p.digits(src, p.layout.secondPos, 2)
	if !sok || !ValidSecond(s) {
		_, err = p.fail("second", src)
		return InvalidComponent, InvalidComponent, InvalidComponent, err
	}
	return h, m, s, nil
}

// ParseMilliTime parses the time with the fraction scaled to
// milliseconds.
func (p *TimeParser[S]) ParseMilliTime(src S) (hour, minute, second, milli int, err error) {
	nano := 0
	hour, minute, second, nano, err = p.ParseNanoTime(src)
	if hour == InvalidComponent {
		return hour, minute, second, InvalidComponent, err
	}
	return hour, minute, second, nano / 1_000_000, err
}

// ParseNanoTime parses the time with the fraction scaled to
// nanoseconds.
func (p *TimeParser[S]) ParseNanoTime(src S) (hour, minute, second, nano int, err error) {
	hour, minute, second, err = p.ParseTime(src)
	if err != nil || hour == InvalidComponent {
		return hour, minute, second, InvalidComponent, err
	}
	frac, ferr := p.ParseFraction(src)
	if ferr != nil || frac == InvalidComponent {
		return InvalidComponent, InvalidComponent, InvalidComponent, InvalidComponent, ferr
	}
	return hour, minute, second, frac * fracScale(p.layout.fracDigits), nil
}

// fracScale is the factor taking a fraction at the given digit count to
// nanoseconds.
func fracScale(digits int) int {
	switch digits {
	case 3:
		return 1_000_000
	case 6:
		return 1_000
	case 9:
		return 1
	}
	return 1_000_000_000
}

// IsValid reports whether src parses cleanly under the layout. The
// parser's mode is not consulted.
func (p *TimeParser[S]) IsValid(src S) bool {
	if p.sep != NoSeparator {
		for _, pos := range p.layout.sepPos {
			if p.read(src, pos) != p.sep {
				return false
			}
		}
	}
	if p.layout.fracSepPos >= 0 && p.read(src, p.layout.fracSepPos) != '.' {
		return false
	}
	h, hok := p.digits(src, p.layout.hourPos, 2)
	m, mok := p.digits(src, p.layout.minutePos, 2)
	s, sok := p.digits(src, p.layout.secondPos, 2)
	if !hok || !mok || !sok || !ValidTime(h, m, s) {
		return false
	}
	if p.layout.Fractional() {
		if _, fok := p.digits(src, p.layout.fracPos, p.layout.fracDigits); !fok {
			return false
		}
	}
	return true
}

// ParsePacked parses the time at second precision and packs it with
// the given packer.
func (p *TimeParser[S]) ParsePacked(src S, packer *TimePacker) (PackedTime, error) {
	hour, minute, second, err := p.ParseTime(src)
	if err != nil {
		return packer.Invalid(), err
	}
	if hour == InvalidComponent {
		return packer.Invalid(), nil
	}
	return packer.Pack(hour, minute, second)
}

// ParsePackedMilli parses the time with the fraction scaled to
// milliseconds and packs it with the given packer.
func (p *TimeParser[S]) ParsePackedMilli(src S, packer *MilliTimePacker) (PackedMilliTime, error) {
	hour, minute, second, milli, err := p.ParseMilliTime(src)
	if err != nil {
		return packer.Invalid(), err
	}
	if hour == InvalidComponent {
		return packer.Invalid(), nil
	}
	return packer.Pack(hour, minute, second, milli)
}

// ParsePackedNano parses the time with the fraction scaled to
// nanoseconds and packs it with the given packer.
func (p *TimeParser[S]) ParsePackedNano(src S, packer *NanoTimePacker) (PackedNanoTime, error) {
	hour, minute, second, nano, err := p.ParseNanoTime(src)
	if err != nil {
		return packer.Invalid(), err
	}
	if hour == InvalidComponent {
		return packer.Invalid(), nil
	}
	return packer.Pack(hour, minute, second, nano)
}

// ParseSecondOfDay parses the time and returns it as seconds since
// midnight. An invalid time yields InvalidEpoch.
func (p *TimeParser[S]) ParseSecondOfDay(src S) (int64, error) {
	hour, minute, second, err := p.ParseTime(src)
	if err != nil {
		return InvalidEpoch, err
	}
	if hour == InvalidComponent {
		return InvalidEpoch, nil
	}
	return int64(hour)*secondsPerHour + int64(minute)*secondsPerMinute + int64(second), nil
}

// ParseMilliOfDay parses the time and returns it as milliseconds since
// midnight.
func (p *TimeParser[S]) ParseMilliOfDay(src S) (int64, error) {
	nanos, err := p.ParseNanoOfDay(src)
	if err != nil || nanos == InvalidEpoch {
		return nanos, err
	}
	return nanos / 1_000_000, nil
}

// ParseNanoOfDay parses the time and returns it as nanoseconds since
// midnight.
func (p *TimeParser[S]) ParseNanoOfDay(src S) (int64, error) {
	hour, minute, second, nano, err := p.ParseNanoTime(src)
	if err != nil {
		return InvalidEpoch, err
	}
	if hour == InvalidComponent {
		return InvalidEpoch, nil
	}
	secs := int64(hour)*secondsPerHour + int64(minute)*secondsPerMinute + int64(second)
	return secs*1_000_000_000 + int64(nano), nil
}
