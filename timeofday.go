package chrono

import "time"

// TimePacker packs second-precision times of day into PackedTime values
// under one encoding and one validation mode, both fixed at
// construction. Packers are immutable and safe for concurrent use.
type TimePacker struct {
	enc  Encoding
	mode Mode
}

// NewTimePacker returns the cached TimePacker for the given encoding
// and mode.
func NewTimePacker(enc Encoding, mode Mode) (*TimePacker, error) {
	if !enc.Valid() {
		return nil, newConfigError("encoding", string(enc))
	}
	if !mode.Valid() {
		return nil, newConfigError("mode", mode.String())
	}
	return cached(registryKey{kind: "time-packer", enc: enc, mode: mode}, func() (*TimePacker, error) {
		emitPackerCreated("time", enc, mode)
		return &TimePacker{enc: enc, mode: mode}, nil
	})
}

// Encoding returns the packer's encoding.
func (p *TimePacker) Encoding() Encoding { return p.enc }

// Mode returns the packer's validation mode.
func (p *TimePacker) Mode() Mode { return p.mode }

// WithMode returns the cached sibling packer bound to the given mode,
// keeping the encoding.
func (p *TimePacker) WithMode(mode Mode) (*TimePacker, error) {
	return NewTimePacker(p.enc, mode)
}

// Pack packs a time of day. Under ModeSentinel an invalid time packs to
// Invalid(); under ModeStrict it is reported as a RangeError naming the
// first offending component.
func (p *TimePacker) Pack(hour, minute, second int) (PackedTime, error) {
	if p.mode != ModeUnchecked {
		if name, value := checkTime(hour, minute, second); name != "" {
			if p.mode == ModeStrict {
				emitReject("time-packer", name, value)
				return p.Invalid(), newRangeError(name, value)
			}
			return p.Invalid(), nil
		}
	}
	return p.packRaw(hour, minute, second), nil
}

func (p *TimePacker) packRaw(hour, minute, second int) PackedTime {
	if p.enc == Decimal {
		return PackedTime(hour*10_000 + minute*100 + second)
	}
	return PackedTime(hour)<<timeHourShift |
		PackedTime(minute)<<timeMinuteShift |
		PackedTime(second)
}

// Hour extracts the hour component, applying the validation mode to the
// extracted value.
func (p *TimePacker) Hour(v PackedTime) (int, error) {
	return component(p.mode, "time-packer", "hour", p.hourRaw(v), ValidHour)
}

// Minute extracts the minute component, applying the validation mode to
// the extracted value.
func (p *TimePacker) Minute(v PackedTime) (int, error) {
	return component(p.mode, "time-packer", "minute", p.minuteRaw(v), ValidMinute)
}

// Second extracts the second component, applying the validation mode to
// the extracted value.
func (p *TimePacker) Second(v PackedTime) (int, error) {
	return component(p.mode, "time-packer", "second", p.secondRaw(v), ValidSecond)
}

// Unpack extracts all three components, applying the validation mode to
// the full triplet.
func (p *TimePacker) Unpack(v PackedTime) (hour, minute, second int, err error) {
	hour, minute, second = p.hourRaw(v), p.minuteRaw(v), p.secondRaw(v)
	if p.mode != ModeUnchecked {
		if name, value := checkTime(hour, minute, second); name != "" {
			hour, minute, second = InvalidComponent, InvalidComponent, InvalidComponent
			if p.mode == ModeStrict {
				emitReject("time-packer", name, value)
				err = newRangeError(name, value)
			}
		}
	}
	return
}

func (p *TimePacker) hourRaw(v PackedTime) int {
	if p.enc == Decimal {
		return int(v / 10_000)
	}
	return int(v >> timeHourShift)
}

func (p *TimePacker) minuteRaw(v PackedTime) int {
	if p.enc == Decimal {
		return int(v / 100 % 100)
	}
	return int(v >> timeMinuteShift & (1<<timeMinuteBits - 1))
}

func (p *TimePacker) secondRaw(v PackedTime) int {
	if p.enc == Decimal {
		return int(v % 100)
	}
	return int(v & (1<<timeSecondBits - 1))
}

// PackNull returns the packer's null sentinel.
func (p *TimePacker) PackNull() PackedTime {
	if p.enc == Decimal {
		return NullDecimalTime
	}
	return NullBinaryTime
}

// IsNull reports whether v is the null sentinel.
func (p *TimePacker) IsNull(v PackedTime) bool {
	return v == p.PackNull()
}

// Invalid returns the sentinel produced under ModeSentinel.
func (p *TimePacker) Invalid() PackedTime {
	if p.enc == Decimal {
		return InvalidDecimalTime
	}
	return InvalidBinaryTime
}

// IsInvalid reports whether v is the invalid sentinel.
func (p *TimePacker) IsInvalid(v PackedTime) bool {
	return v == p.Invalid()
}

// PackEpochSeconds packs the intraday portion of a seconds-since-epoch
// count. Floor arithmetic keeps pre-epoch values on the correct side of
// midnight.
func (p *TimePacker) PackEpochSeconds(seconds int64) (PackedTime, error) {
	hour, minute, second := timeOfDay(floorMod(seconds, SecondsPerDay))
	return p.Pack(hour, minute, second)
}

// UnpackSecondOfDay returns the packed time as seconds since midnight.
// Under ModeSentinel an invalid packed value yields InvalidEpoch.
func (p *TimePacker) UnpackSecondOfDay(v PackedTime) (int64, error) {
	hour, minute, second, err := p.Unpack(v)
	if err != nil {
		return InvalidEpoch, err
	}
	if hour == InvalidComponent {
		return InvalidEpoch, nil
	}
	return int64(hour)*secondsPerHour + int64(minute)*secondsPerMinute + int64(second), nil
}

// PackTime packs the time of day of t in UTC.
func (p *TimePacker) PackTime(t time.Time) (PackedTime, error) {
	return p.Pack(t.UTC().Clock())
}
