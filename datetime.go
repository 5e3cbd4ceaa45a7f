package chrono

import "time"

// DateTimePacker packs a calendar date plus a millisecond-precision
// time of day into 64-bit PackedDateTime values under one encoding and
// one validation mode, both fixed at construction. Date fields occupy
// the high-order bits or digits, so a later date always outranks an
// earlier one regardless of the time of day.
type DateTimePacker struct {
	enc  Encoding
	mode Mode
}

// NewDateTimePacker returns the cached DateTimePacker for the given
// encoding and mode.
func NewDateTimePacker(enc Encoding, mode Mode) (*DateTimePacker, error) {
	if !enc.Valid() {
		return nil, newConfigError("encoding", string(enc))
	}
	if !mode.Valid() {
		return nil, newConfigError("mode", mode.String())
	}
	return cached(registryKey{kind: "datetime-packer", enc: enc, mode: mode}, func() (*DateTimePacker, error) {
		emitPackerCreated("datetime", enc, mode)
		return &DateTimePacker{enc: enc, mode: mode}, nil
	})
}

// Encoding returns the packer's encoding.
func (p *DateTimePacker) Encoding() Encoding { return p.enc }

// Mode returns the packer's validation mode.
func (p *DateTimePacker) Mode() Mode { return p.mode }

// WithMode returns the cached sibling packer bound to the given mode,
// keeping the encoding.
func (p *DateTimePacker) WithMode(mode Mode) (*DateTimePacker, error) {
	return NewDateTimePacker(p.enc, mode)
}

// checkDateTime returns the first out-of-range component, or "".
func checkDateTime(year, month, day, hour, minute, second, milli int) (string, int64) {
	if name, value := checkDate(year, month, day); name != "" {
		return name, value
	}
	if name, value := checkTime(hour, minute, second); name != "" {
		return name, value
	}
	if !ValidMilli(milli) {
		return "millisecond", int64(milli)
	}
	return "", 0
}

// Pack packs a full date-time tuple.
func (p *DateTimePacker) Pack(year, month, day, hour, minute, second, milli int) (PackedDateTime, error) {
	if p.mode != ModeUnchecked {
		if name, value := checkDateTime(year, month, day, hour, minute, second, milli); name != "" {
			if p.mode == ModeStrict {
				emitReject("datetime-packer", name, value)
				return p.Invalid(), newRangeError(name, value)
			}
			return p.Invalid(), nil
		}
	}
	return p.packRaw(year, month, day, hour, minute, second, milli), nil
}

func (p *DateTimePacker) packRaw(year, month, day, hour, minute, second, milli int) PackedDateTime {
	if p.enc == Decimal {
		return PackedDateTime(year)*10_000_000_000_000 +
			PackedDateTime(month)*100_000_000_000 +
			PackedDateTime(day)*1_000_000_000 +
			PackedDateTime(hour)*10_000_000 +
			PackedDateTime(minute)*100_000 +
			PackedDateTime(second)*1_000 +
			PackedDateTime(milli)
	}
	date := PackedDateTime(year)<<dateYearShift |
		PackedDateTime(month)<<dateMonthShift |
		PackedDateTime(day)
	tod := PackedDateTime(hour)<<milliHourShift |
		PackedDateTime(minute)<<milliMinuteShift |
		PackedDateTime(second)<<milliSecondShift |
		PackedDateTime(milli)
	return date<<dateTimeDateShift | tod
}

// Year extracts the year component, applying the validation mode.
func (p *DateTimePacker) Year(v PackedDateTime) (int, error) {
	return component(p.mode, "datetime-packer", "year", p.yearRaw(v), ValidYear)
}

// Month extracts the month component, applying the validation mode.
func (p *DateTimePacker) Month(v PackedDateTime) (int, error) {
	return component(p.mode, "datetime-packer", "month", p.monthRaw(v), ValidMonth)
}

// Day extracts the day component. The bound depends on year and month,
// so both are extracted first.
func (p *DateTimePacker) Day(v PackedDateTime) (int, error) {
	day := p.dayRaw(v)
	if p.mode != ModeUnchecked && !ValidDate(p.yearRaw(v), p.monthRaw(v), day) {
		if p.mode == ModeStrict {
			emitReject("datetime-packer", "day", int64(day))
			return InvalidComponent, newRangeError("day", int64(day))
		}
		return InvalidComponent, nil
	}
	return day, nil
}

// Hour extracts the hour component, applying the validation mode.
func (p *DateTimePacker) Hour(v PackedDateTime) (int, error) {
	return component(p.mode, "datetime-packer", "hour", p.hourRaw(v), ValidHour)
}

// Minute extracts the minute component, applying the validation mode.
func (p *DateTimePacker) Minute(v PackedDateTime) (int, error) {
	return component(p.mode, "datetime-packer", "minute", p.minuteRaw(v), ValidMinute)
}

// Second extracts the second component, applying the validation mode.
func (p *DateTimePacker) Second(v PackedDateTime) (int, error) {
	return component(p.mode, "datetime-packer", "second", p.secondRaw(v), ValidSecond)
}

// Milli extracts the millisecond component, applying the validation
// mode.
func (p *DateTimePacker) Milli(v PackedDateTime) (int, error) {
	return component(p.mode, "datetime-packer", "millisecond", p.milliRaw(v), ValidMilli)
}

// Unpack extracts all seven components, applying the validation mode to
// the full tuple.
func (p *DateTimePacker) Unpack(v PackedDateTime) (year, month, day, hour, minute, second, milli int, err error) {
	year, month, day = p.yearRaw(v), p.monthRaw(v), p.dayRaw(v)
	hour, minute, second, milli = p.hourRaw(v), p.minuteRaw(v), p.secondRaw(v), p.milliRaw(v)
	if p.mode != ModeUnchecked {
		if name, value := checkDateTime(year, month, day, hour, minute, second, milli); name != "" {
			year, month, day = InvalidComponent, InvalidComponent, InvalidComponent
			hour, minute, second, milli = InvalidComponent, InvalidComponent, InvalidComponent, InvalidComponent
			if p.mode == ModeStrict {
				emitReject("datetime-packer", name, value)
				err = newRangeError(name, value)
			}
		}
	}
	return
}

func (p *DateTimePacker) yearRaw(v PackedDateTime) int {
	if p.enc == Decimal {
		return int(v / 10_000_000_000_000)
	}
	return int(v >> (dateTimeDateShift + dateYearShift))
}

func (p *DateTimePacker) monthRaw(v PackedDateTime) int {
	if p.enc == Decimal {
		return int(v / 100_000_000_000 % 100)
	}
	return int(v >> (dateTimeDateShift + dateMonthShift) & (1<<dateMonthBits - 1))
}

func (p *DateTimePacker) dayRaw(v PackedDateTime) int {
	if p.enc == Decimal {
		return int(v / 1_000_000_000 % 100)
	}
	return int(v >> dateTimeDateShift & (1<<dateDayBits - 1))
}

func (p *DateTimePacker) hourRaw(v PackedDateTime) int {
	if p.enc == Decimal {
		return int(v / 10_000_000 % 100)
	}
	return int(v >> milliHourShift & (1<<5 - 1))
}

func (p *DateTimePacker) minuteRaw(v PackedDateTime) int {
	if p.enc == Decimal {
		return int(v / 100_000 % 100)
	}
	return int(v >> milliMinuteShift & (1<<timeMinuteBits - 1))
}

func (p *DateTimePacker) secondRaw(v PackedDateTime) int {
	if p.enc == Decimal {
		return int(v / 1_000 % 100)
	}
	return int(v >> milliSecondShift & (1<<timeSecondBits - 1))
}

func (p *DateTimePacker) milliRaw(v PackedDateTime) int {
	if p.enc == Decimal {
		return int(v % 1_000)
	}
	return int(v & (1<<milliFracBits - 1))
}

// PackNull returns the packer's null sentinel.
func (p *DateTimePacker) PackNull() PackedDateTime {
	if p.enc == Decimal {
		return NullDecimalStamp
	}
	return NullBinaryStamp
}

// IsNull reports whether v is the null sentinel.
func (p *DateTimePacker) IsNull(v PackedDateTime) bool {
	return v == p.PackNull()
}

// Invalid returns the sentinel produced under ModeSentinel.
func (p *DateTimePacker) Invalid() PackedDateTime {
	if p.enc == Decimal {
		return InvalidDecimalStamp
	}
	return InvalidBinaryStamp
}

// IsInvalid reports whether v is the invalid sentinel.
func (p *DateTimePacker) IsInvalid(v PackedDateTime) bool {
	return v == p.Invalid()
}

// PackEpochMillis packs the date-time lying the given number of
// milliseconds after 1970-01-01T00:00:00.000 (before it, when
// negative).
func (p *DateTimePacker) PackEpochMillis(millis int64) (PackedDateTime, error) {
	year, month, day, hour, minute, second, milli := DateTimeFromMillis(millis)
	return p.Pack(year, month, day, hour, minute, second, milli)
}

// UnpackEpochMillis returns the packed date-time as milliseconds since
// the epoch. Under ModeSentinel an invalid packed value yields
// InvalidEpoch.
func (p *DateTimePacker) UnpackEpochMillis(v PackedDateTime) (int64, error) {
	year, month, day, hour, minute, second, milli, err := p.Unpack(v)
	if err != nil {
		return InvalidEpoch, err
	}
	if year == InvalidComponent {
		return InvalidEpoch, nil
	}
	return MillisFromDateTime(year, month, day, hour, minute, second, milli), nil
}

// PackEpochSeconds packs the date-time lying the given number of
// seconds after the epoch, with a zero millisecond field.
func (p *DateTimePacker) PackEpochSeconds(seconds int64) (PackedDateTime, error) {
	year, month, day, hour, minute, second := DateTimeFromSeconds(seconds)
	return p.Pack(year, month, day, hour, minute, second, 0)
}

// UnpackEpochSeconds returns the packed date-time as seconds since the
// epoch, truncating milliseconds.
func (p *DateTimePacker) UnpackEpochSeconds(v PackedDateTime) (int64, error) {
	millis, err := p.UnpackEpochMillis(v)
	if err != nil || millis == InvalidEpoch {
		return millis, err
	}
	return floorDiv(millis, 1_000), nil
}

// PackTime packs t in UTC, truncating the sub-millisecond part.
func (p *DateTimePacker) PackTime(t time.Time) (PackedDateTime, error) {
	t = t.UTC()
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return p.Pack(year, int(month), day, hour, minute, second, t.Nanosecond()/1_000_000)
}

// Time returns the packed date-time as a time.Time in UTC.
func (p *DateTimePacker) Time(v PackedDateTime) (time.Time, error) {
	year, month, day, hour, minute, second, milli, err := p.Unpack(v)
	if err != nil {
		return time.Time{}, err
	}
	if year == InvalidComponent {
		return time.Time{}, nil
	}
	return time.Date(year, time.Month(month), day, hour, minute, second, milli*1_000_000, time.UTC), nil
}
