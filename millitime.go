package chrono

import "time"

// MilliTimePacker packs millisecond-precision times of day into
// PackedMilliTime values under one encoding and one validation mode,
// both fixed at construction.
type MilliTimePacker struct {
	enc  Encoding
	mode Mode
}

// NewMilliTimePacker returns the cached MilliTimePacker for the given
// encoding and mode.
func NewMilliTimePacker(enc Encoding, mode Mode) (*MilliTimePacker, error) {
	if !enc.Valid() {
		return nil, newConfigError("encoding", string(enc))
	}
	if !mode.Valid() {
		return nil, newConfigError("mode", mode.String())
	}
	return cached(registryKey{kind: "millitime-packer", enc: enc, mode: mode}, func() (*MilliTimePacker, error) {
		emitPackerCreated("millitime", enc, mode)
		return &MilliTimePacker{enc: enc, mode: mode}, nil
	})
}

// Encoding returns the packer's encoding.
func (p *MilliTimePacker) Encoding() Encoding { return p.enc }

// Mode returns the packer's validation mode.
func (p *MilliTimePacker) Mode() Mode { return p.mode }

// WithMode returns the cached sibling packer bound to the given mode,
// keeping the encoding.
func (p *MilliTimePacker) WithMode(mode Mode) (*MilliTimePacker, error) {
	return NewMilliTimePacker(p.enc, mode)
}

// Pack packs a time of day with milliseconds.
func (p *MilliTimePacker) Pack(hour, minute, second, milli int) (PackedMilliTime, error) {
	if p.mode != ModeUnchecked {
		name, value := checkTime(hour, minute, second)
		if name == "" && !ValidMilli(milli) {
			name, value = "millisecond", int64(milli)
		}
		if name != "" {
			if p.mode == ModeStrict {
				emitReject("millitime-packer", name, value)
				return p.Invalid(), newRangeError(name, value)
			}
			return p.Invalid(), nil
		}
	}
	return p.packRaw(hour, minute, second, milli), nil
}

func (p *MilliTimePacker) packRaw(hour, minute, second, milli int) PackedMilliTime {
	if p.enc == Decimal {
		return PackedMilliTime(hour*10_000_000 + minute*100_000 + second*1_000 + milli)
	}
	return PackedMilliTime(hour)<<milliHourShift |
		PackedMilliTime(minute)<<milliMinuteShift |
		PackedMilliTime(second)<<milliSecondShift |
		PackedMilliTime(milli)
}

// Hour extracts the hour component, applying the validation mode.
func (p *MilliTimePacker) Hour(v PackedMilliTime) (int, error) {
	return component(p.mode, "millitime-packer", "hour", p.hourRaw(v), ValidHour)
}

// Minute extracts the minute component, applying the validation mode.
func (p *MilliTimePacker) Minute(v PackedMilliTime) (int, error) {
	return component(p.mode, "millitime-packer", "minute", p.minuteRaw(v), ValidMinute)
}

// Second extracts the second component, applying the validation mode.
func (p *MilliTimePacker) Second(v PackedMilliTime) (int, error) {
	return component(p.mode, "millitime-packer", "second", p.secondRaw(v), ValidSecond)
}

// Milli extracts the millisecond component, applying the validation
// mode.
func (p *MilliTimePacker) Milli(v PackedMilliTime) (int, error) {
	return component(p.mode, "millitime-packer", "millisecond", p.milliRaw(v), ValidMilli)
}

// Unpack extracts all four components, applying the validation mode to
// the full tuple.
func (p *MilliTimePacker) Unpack(v PackedMilliTime) (hour, minute, second, milli int, err error) {
	hour, minute, second, milli = p.hourRaw(v), p.minuteRaw(v), p.secondRaw(v), p.milliRaw(v)
	if p.mode != ModeUnchecked {
		name, value := checkTime(hour, minute, second)
		if name == "" && !ValidMilli(milli) {
			name, value = "millisecond", int64(milli)
		}
		if name != "" {
			hour, minute, second, milli = InvalidComponent, InvalidComponent, InvalidComponent, InvalidComponent
			if p.mode == ModeStrict {
				emitReject("millitime-packer", name, value)
				err = newRangeError(name, value)
			}
		}
	}
	return
}

func (p *MilliTimePacker) hourRaw(v PackedMilliTime) int {
	if p.enc == Decimal {
		return int(v / 10_000_000)
	}
	return int(v >> milliHourShift)
}

func (p *MilliTimePacker) minuteRaw(v PackedMilliTime) int {
	if p.enc == Decimal {
		return int(v / 100_000 % 100)
	}
	return int(v >> milliMinuteShift & (1<<timeMinuteBits - 1))
}

func (p *MilliTimePacker) secondRaw(v PackedMilliTime) int {
	if p.enc == Decimal {
		return int(v / 1_000 % 100)
	}
	return int(v >> milliSecondShift & (1<<timeSecondBits - 1))
}

func (p *MilliTimePacker) milliRaw(v PackedMilliTime) int {
	if p.enc == Decimal {
		return int(v % 1_000)
	}
	return int(v & (1<<milliFracBits - 1))
}

// PackNull returns the packer's null sentinel.
func (p *MilliTimePacker) PackNull() PackedMilliTime {
	if p.enc == Decimal {
		return NullDecimalMilli
	}
	return NullBinaryMilli
}

// IsNull reports whether v is the null sentinel.
func (p *MilliTimePacker) IsNull(v PackedMilliTime) bool {
	return v == p.PackNull()
}

// Invalid returns the sentinel produced under ModeSentinel.
func (p *MilliTimePacker) Invalid() PackedMilliTime {
	if p.enc == Decimal {
		return InvalidDecimalMilli
	}
	return InvalidBinaryMilli
}

// IsInvalid reports whether v is the invalid sentinel.
func (p *MilliTimePacker) IsInvalid(v PackedMilliTime) bool {
	return v == p.Invalid()
}

// PackEpochMillis packs the intraday portion of a millis-since-epoch
// count.
func (p *MilliTimePacker) PackEpochMillis(millis int64) (PackedMilliTime, error) {
	intraday := floorMod(millis, MillisPerDay)
	hour, minute, second := timeOfDay(intraday / 1_000)
	return p.Pack(hour, minute, second, int(intraday%1_000))
}

// UnpackMilliOfDay returns the packed time as milliseconds since
// midnight. Under ModeSentinel an invalid packed value yields
// InvalidEpoch.
func (p *MilliTimePacker) UnpackMilliOfDay(v PackedMilliTime) (int64, error) {
	hour, minute, second, milli, err := p.Unpack(v)
	if err != nil {
		return InvalidEpoch, err
	}
	if hour == InvalidComponent {
		return InvalidEpoch, nil
	}
	secs := int64(hour)*secondsPerHour + int64(minute)*secondsPerMinute + int64(second)
	return secs*1_000 + int64(milli), nil
}

// PackTime packs the time of day of t in UTC, truncating the
// sub-millisecond part.
func (p *MilliTimePacker) PackTime(t time.Time) (PackedMilliTime, error) {
	t = t.UTC()
	hour, minute, second := t.Clock()
	return p.Pack(hour, minute, second, t.Nanosecond()/1_000_000)
}
