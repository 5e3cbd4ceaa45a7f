package chrono

import "time"

// NanoTimePacker packs nanosecond-precision times of day into 64-bit
// PackedNanoTime values under one encoding and one validation mode,
// both fixed at construction.
type NanoTimePacker struct {
	enc  Encoding
	mode Mode
}

// NewNanoTimePacker returns the cached NanoTimePacker for the given
// encoding and mode.
func NewNanoTimePacker(enc Encoding, mode Mode) (*NanoTimePacker, error) {
	if !enc.Valid() {
		return nil, newConfigError("encoding", string(enc))
	}
	if !mode.Valid() {
		return nil, newConfigError("mode", mode.String())
	}
	return cached(registryKey{kind: "nanotime-packer", enc: enc, mode: mode}, func() (*NanoTimePacker, error) {
		emitPackerCreated("nanotime", enc, mode)
		return &NanoTimePacker{enc: enc, mode: mode}, nil
	})
}

// Encoding returns the packer's encoding.
func (p *NanoTimePacker) Encoding() Encoding { return p.enc }

// Mode returns the packer's validation mode.
func (p *NanoTimePacker) Mode() Mode { return p.mode }

// WithMode returns the cached sibling packer bound to the given mode,
// keeping the encoding.
func (p *NanoTimePacker) WithMode(mode Mode) (*NanoTimePacker, error) {
	return NewNanoTimePacker(p.enc, mode)
}

// Pack packs a time of day with nanoseconds.
func (p *NanoTimePacker) Pack(hour, minute, second, nano int) (PackedNanoTime, error) {
	if p.mode != ModeUnchecked {
		name, value := checkTime(hour, minute, second)
		if name == "" && !ValidNano(nano) {
			name, value = "nanosecond", int64(nano)
		}
		if name != "" {
			if p.mode == ModeStrict {
				emitReject("nanotime-packer", name, value)
				return p.Invalid(), newRangeError(name, value)
			}
			return p.Invalid(), nil
		}
	}
	return p.packRaw(hour, minute, second, nano), nil
}

func (p *NanoTimePacker) packRaw(hour, minute, second, nano int) PackedNanoTime {
	if p.enc == Decimal {
		return PackedNanoTime(hour)*10_000_000_000_000 +
			PackedNanoTime(minute)*100_000_000_000 +
			PackedNanoTime(second)*1_000_000_000 +
			PackedNanoTime(nano)
	}
	return PackedNanoTime(hour)<<nanoHourShift |
		PackedNanoTime(minute)<<nanoMinuteShift |
		PackedNanoTime(second)<<nanoSecondShift |
		PackedNanoTime(nano)
}

// Hour extracts the hour component, applying the validation mode.
func (p *NanoTimePacker) Hour(v PackedNanoTime) (int, error) {
	return component(p.mode, "nanotime-packer", "hour", p.hourRaw(v), ValidHour)
}

// Minute extracts the minute component, applying the validation mode.
func (p *NanoTimePacker) Minute(v PackedNanoTime) (int, error) {
	return component(p.mode, "nanotime-packer", "minute", p.minuteRaw(v), ValidMinute)
}

// Second extracts the second component, applying the validation mode.
func (p *NanoTimePacker) Second(v PackedNanoTime) (int, error) {
	return component(p.mode, "nanotime-packer", "second", p.secondRaw(v), ValidSecond)
}

// Nano extracts the nanosecond component, applying the validation mode.
func (p *NanoTimePacker) Nano(v PackedNanoTime) (int, error) {
	return component(p.mode, "nanotime-packer", "nanosecond", p.nanoRaw(v), ValidNano)
}

// Unpack extracts all four components, applying the validation mode to
// the full tuple.
func (p *NanoTimePacker) Unpack(v PackedNanoTime) (hour, minute, second, nano int, err error) {
	hour, minute, second, nano = p.hourRaw(v), p.minuteRaw(v), p.secondRaw(v), p.nanoRaw(v)
	if p.mode != ModeUnchecked {
		name, value := checkTime(hour, minute, second)
		if name == "" && !ValidNano(nano) {
			name, value = "nanosecond", int64(nano)
		}
		if name != "" {
			hour, minute, second, nano = InvalidComponent, InvalidComponent, InvalidComponent, InvalidComponent
			if p.mode == ModeStrict {
				emitReject("nanotime-packer", name, value)
				err = newRangeError(name, value)
			}
		}
	}
	return
}

func (p *NanoTimePacker) hourRaw(v PackedNanoTime) int {
	if p.enc == Decimal {
		return int(v / 10_000_000_000_000)
	}
	return int(v >> nanoHourShift)
}

func (p *NanoTimePacker) minuteRaw(v PackedNanoTime) int {
	if p.enc == Decimal {
		return int(v / 100_000_000_000 % 100)
	}
	return int(v >> nanoMinuteShift & (1<<timeMinuteBits - 1))
}

func (p *NanoTimePacker) secondRaw(v PackedNanoTime) int {
	if p.enc == Decimal {
		return int(v / 1_000_000_000 % 100)
	}
	return int(v >> nanoSecondShift & (1<<timeSecondBits - 1))
}

func (p *NanoTimePacker) nanoRaw(v PackedNanoTime) int {
	if p.enc == Decimal {
		return int(v % 1_000_000_000)
	}
	return int(v & (1<<nanoFracBits - 1))
}

// PackNull returns the packer's null sentinel.
func (p *NanoTimePacker) PackNull() PackedNanoTime {
	if p.enc == Decimal {
		return NullDecimalNano
	}
	return NullBinaryNano
}

// IsNull reports whether v is the null sentinel.
func (p *NanoTimePacker) IsNull(v PackedNanoTime) bool {
	return v == p.PackNull()
}

// Invalid returns the sentinel produced under ModeSentinel.
func (p *NanoTimePacker) Invalid() PackedNanoTime {
	if p.enc == Decimal {
		return InvalidDecimalNano
	}
	return InvalidBinaryNano
}

// IsInvalid reports whether v is the invalid sentinel.
func (p *NanoTimePacker) IsInvalid(v PackedNanoTime) bool {
	return v == p.Invalid()
}

// PackEpochNanos packs the intraday portion of a nanos-since-epoch
// count.
func (p *NanoTimePacker) PackEpochNanos(nanos int64) (PackedNanoTime, error) {
	intraday := floorMod(nanos, NanosPerDay)
	hour, minute, second := timeOfDay(intraday / 1_000_000_000)
	return p.Pack(hour, minute, second, int(intraday%1_000_000_000))
}

// UnpackNanoOfDay returns the packed time as nanoseconds since
// midnight. Under ModeSentinel an invalid packed value yields
// InvalidEpoch.
func (p *NanoTimePacker) UnpackNanoOfDay(v PackedNanoTime) (int64, error) {
	hour, minute, second, nano, err := p.Unpack(v)
	if err != nil {
		return InvalidEpoch, err
	}
	if hour == InvalidComponent {
		return InvalidEpoch, nil
	}
	secs := int64(hour)*secondsPerHour + int64(minute)*secondsPerMinute + int64(second)
	return secs*1_000_000_000 + int64(nano), nil
}

// PackTime packs the time of day of t in UTC.
func (p *NanoTimePacker) PackTime(t time.Time) (PackedNanoTime, error) {
	t = t.UTC()
	hour, minute, second := t.Clock()
	return p.Pack(hour, minute, second, t.Nanosecond())
}
