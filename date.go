package chrono

import "time"

// DatePacker packs calendar dates into PackedDate values under one
// encoding and one validation mode, both fixed at construction.
// Packers are immutable and safe for concurrent use.
type DatePacker struct {
	enc  Encoding
	mode Mode
}

// NewDatePacker returns the cached DatePacker for the given encoding
// and mode.
func NewDatePacker(enc Encoding, mode Mode) (*DatePacker, error) {
	if !enc.Valid() {
		return nil, newConfigError("encoding", string(enc))
	}
	if !mode.Valid() {
		return nil, newConfigError("mode", mode.String())
	}
	return cached(registryKey{kind: "date-packer", enc: enc, mode: mode}, func() (*DatePacker, error) {
		emitPackerCreated("date", enc, mode)
		return &DatePacker{enc: enc, mode: mode}, nil
	})
}

// Encoding returns the packer's encoding.
func (p *DatePacker) Encoding() Encoding { return p.enc }

// Mode returns the packer's validation mode.
func (p *DatePacker) Mode() Mode { return p.mode }

// WithMode returns the cached sibling packer bound to the given mode,
// keeping the encoding.
func (p *DatePacker) WithMode(mode Mode) (*DatePacker, error) {
	return NewDatePacker(p.enc, mode)
}

// Pack packs a calendar date. Under ModeSentinel an invalid date packs
// to Invalid(); under ModeStrict it is reported as a RangeError naming
// the first offending component.
func (p *DatePacker) Pack(year, month, day int) (PackedDate, error) {
	if p.mode != ModeUnchecked {
		if component, value := checkDate(year, month, day); component != "" {
			if p.mode == ModeStrict {
				emitReject("date-packer", component, value)
				return p.Invalid(), newRangeError(component, value)
			}
			return p.Invalid(), nil
		}
	}
	return p.packRaw(year, month, day), nil
}

func (p *DatePacker) packRaw(year, month, day int) PackedDate {
	if p.enc == Decimal {
		return PackedDate(year*10_000 + month*100 + day)
	}
	return PackedDate(year)<<dateYearShift |
		PackedDate(month)<<dateMonthShift |
		PackedDate(day)
}

// Year extracts the year component, applying the validation mode to the
// extracted value.
func (p *DatePacker) Year(v PackedDate) (int, error) {
	return component(p.mode, "date-packer", "year", p.yearRaw(v), ValidYear)
}

// Month extracts the month component, applying the validation mode to
// the extracted value.
func (p *DatePacker) Month(v PackedDate) (int, error) {
	return component(p.mode, "date-packer", "month", p.monthRaw(v), ValidMonth)
}

// Day extracts the day component. The day bound depends on year and
// month, so both are extracted first; a day is only valid inside a
// valid year/month pair.
func (p *DatePacker) Day(v PackedDate) (int, error) {
	day := p.dayRaw(v)
	if p.mode != ModeUnchecked && !ValidDate(p.yearRaw(v), p.monthRaw(v), day) {
		if p.mode == ModeStrict {
			emitReject("date-packer", "day", int64(day))
			return InvalidComponent, newRangeError("day", int64(day))
		}
		return InvalidComponent, nil
	}
	return day, nil
}

// Unpack extracts all three components, applying the validation mode to
// the full triplet.
func (p *DatePacker) Unpack(v PackedDate) (year, month, day int, err error) {
	year, month, day = p.yearRaw(v), p.monthRaw(v), p.dayRaw(v)
	if p.mode != ModeUnchecked {
		if component, value := checkDate(year, month, day); component != "" {
			year, month, day = InvalidComponent, InvalidComponent, InvalidComponent
			if p.mode == ModeStrict {
				emitReject("date-packer", component, value)
				err = newRangeError(component, value)
			}
		}
	}
	return
}

func (p *DatePacker) yearRaw(v PackedDate) int {
	if p.enc == Decimal {
		return int(v / 10_000)
	}
	return int(v >> dateYearShift)
}

func (p *DatePacker) monthRaw(v PackedDate) int {
	if p.enc == Decimal {
		return int(v / 100 % 100)
	}
	return int(v >> dateMonthShift & (1<<dateMonthBits - 1))
}

func (p *DatePacker) dayRaw(v PackedDate) int {
	if p.enc == Decimal {
		return int(v % 100)
	}
	return int(v & (1<<dateDayBits - 1))
}

// PackNull returns the packer's null sentinel.
func (p *DatePacker) PackNull() PackedDate {
	if p.enc == Decimal {
		return NullDecimalDate
	}
	return NullBinaryDate
}

// IsNull reports whether v is the null sentinel.
func (p *DatePacker) IsNull(v PackedDate) bool {
	return v == p.PackNull()
}

// Invalid returns the sentinel produced under ModeSentinel. It is
// distinct from the null sentinel and from every valid packed date.
func (p *DatePacker) Invalid() PackedDate {
	if p.enc == Decimal {
		return InvalidDecimalDate
	}
	return InvalidBinaryDate
}

// IsInvalid reports whether v is the invalid sentinel.
func (p *DatePacker) IsInvalid(v PackedDate) bool {
	return v == p.Invalid()
}

// PackEpochDays packs the date that lies the given number of days after
// 1970-01-01 (before it, when negative). Out-of-range years surface
// through the validation mode.
func (p *DatePacker) PackEpochDays(days int64) (PackedDate, error) {
	year, month, day := DateFromDays(days)
	return p.Pack(year, month, day)
}

// UnpackEpochDays returns the packed date as days since 1970-01-01.
// Under ModeSentinel an invalid packed value yields InvalidEpoch.
func (p *DatePacker) UnpackEpochDays(v PackedDate) (int64, error) {
	year, month, day, err := p.Unpack(v)
	if err != nil {
		return InvalidEpoch, err
	}
	if year == InvalidComponent {
		return InvalidEpoch, nil
	}
	return DaysFromDate(year, month, day), nil
}

// PackTime packs the calendar date of t in UTC.
func (p *DatePacker) PackTime(t time.Time) (PackedDate, error) {
	year, month, day := t.UTC().Date()
	return p.Pack(year, int(month), day)
}

// Time returns the packed date as a time.Time at midnight UTC.
func (p *DatePacker) Time(v PackedDate) (time.Time, error) {
	year, month, day, err := p.Unpack(v)
	if err != nil {
		return time.Time{}, err
	}
	if year == InvalidComponent {
		return time.Time{}, nil
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}
