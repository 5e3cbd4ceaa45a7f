package chrono

// Packed value types. Each holds every component of a calendar value in
// one fixed-width unsigned integer, under one of two encodings:
//
//   - Binary: components occupy disjoint bit fields (shift + mask).
//   - Decimal: components are zero-padded base-10 digit groups, directly
//     readable when printed.
//
// Both encodings are order-preserving: the unsigned integer ordering of
// packed values matches the chronological ordering of the values they
// represent, because date fields occupy the high-order bits or digits
// and sub-second fields the low-order ones.

// Encoding selects how components are laid out inside a packed integer.
type Encoding string

const (
	// Binary packs components into disjoint fixed bit fields.
	Binary Encoding = "binary"

	// Decimal packs components as base-10 positional digit groups.
	Decimal Encoding = "decimal"
)

// Valid returns true if e is a known encoding.
func (e Encoding) Valid() bool {
	return e == Binary || e == Decimal
}

// PackedDate holds a calendar date. Binary layout, low bit first:
// day 5 bits, month 4 bits, year 14 bits (23 bits total). The year
// field is wider than the validated [1, 9999] range on purpose; the
// headroom to 16383 is layout slack, not usable range. Decimal layout
// is YYYYMMDD.
type PackedDate uint32

// PackedTime holds a time of day at second precision. Binary layout:
// second 6 bits, minute 6 bits, hour 5 bits. Decimal layout is HHMMSS.
type PackedTime uint32

// PackedMilliTime holds a time of day at millisecond precision. Binary
// layout: millisecond 10 bits, second 6, minute 6, hour 5. Decimal
// layout is HHMMSSmmm.
type PackedMilliTime uint32

// PackedNanoTime holds a time of day at nanosecond precision. Binary
// layout: nanosecond 30 bits, second 6, minute 6, hour 5. Decimal
// layout is HHMMSSnnnnnnnnn.
type PackedNanoTime uint64

// PackedDateTime holds a calendar date and a millisecond-precision time
// of day. Binary layout places the 23 date bits above the 27 time bits.
// Decimal layout is YYYYMMDDHHMMSSmmm.
type PackedDateTime uint64

// Binary field geometry.
const (
	dateDayBits    = 5
	dateMonthBits  = 4
	dateMonthShift = dateDayBits
	dateYearShift  = dateDayBits + dateMonthBits
	dateBits       = dateYearShift + 14

	timeSecondBits  = 6
	timeMinuteBits  = 6
	timeMinuteShift = timeSecondBits
	timeHourShift   = timeSecondBits + timeMinuteBits

	milliFracBits    = 10
	milliSecondShift = milliFracBits
	milliMinuteShift = milliFracBits + timeSecondBits
	milliHourShift   = milliFracBits + timeSecondBits + timeMinuteBits
	milliBits        = milliHourShift + 5

	nanoFracBits    = 30
	nanoSecondShift = nanoFracBits
	nanoMinuteShift = nanoFracBits + timeSecondBits
	nanoHourShift   = nanoFracBits + timeSecondBits + timeMinuteBits

	dateTimeDateShift = milliBits
)

// Null sentinels. The binary date null is zero by convention; every
// other packer reserves the maximum representable value, which no valid
// component combination can produce and which sorts after all real
// values.
const (
	NullBinaryDate     PackedDate     = 0
	NullDecimalDate    PackedDate     = 99_999_999
	NullBinaryTime     PackedTime     = ^PackedTime(0)
	NullDecimalTime    PackedTime     = 999_999
	NullBinaryMilli    PackedMilliTime = ^PackedMilliTime(0)
	NullDecimalMilli   PackedMilliTime = 999_999_999
	NullBinaryNano     PackedNanoTime  = ^PackedNanoTime(0)
	NullDecimalNano    PackedNanoTime  = 999_999_999_999_999
	NullBinaryStamp    PackedDateTime  = ^PackedDateTime(0)
	NullDecimalStamp   PackedDateTime  = 99_999_999_999_999_999
)

// Invalid sentinels returned under ModeSentinel. Each sits immediately
// below the corresponding null (or at the type maximum for the binary
// date, whose null is zero), is distinct from it, and never collides
// with a legitimate packed value.
const (
	InvalidBinaryDate   PackedDate     = ^PackedDate(0)
	InvalidDecimalDate  PackedDate     = NullDecimalDate - 1
	InvalidBinaryTime   PackedTime     = NullBinaryTime - 1
	InvalidDecimalTime  PackedTime     = NullDecimalTime - 1
	InvalidBinaryMilli  PackedMilliTime = NullBinaryMilli - 1
	InvalidDecimalMilli PackedMilliTime = NullDecimalMilli - 1
	InvalidBinaryNano   PackedNanoTime  = NullBinaryNano - 1
	InvalidDecimalNano  PackedNanoTime  = NullDecimalNano - 1
	InvalidBinaryStamp  PackedDateTime  = NullBinaryStamp - 1
	InvalidDecimalStamp PackedDateTime  = NullDecimalStamp - 1
)

// Integer sentinels returned under ModeSentinel for non-packed return
// types: component accessors return InvalidComponent, epoch accessors
// return InvalidEpoch, and separator inspection returns NoSeparator.
const (
	InvalidComponent = -1
	InvalidEpoch     = int64(-1) << 63
	NoSeparator      = byte(0)
)
