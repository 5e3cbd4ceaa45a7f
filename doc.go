// Package chrono packs proleptic Gregorian dates and times of day
// into order-preserving integers and fixed-width ASCII text.
//
// Five packers cover the precision ladder: Date, Time, MilliTime,
// NanoTime, and DateTime. Each offers a Binary encoding, bit fields
// sized to their components, and a Decimal encoding whose digits read
// back as the components themselves. Both encodings compare the same
// way the values they encode compare, and both reserve sentinels for
// null and invalid outside the valid range: null sits at an extreme of
// the representation (zero for the binary date, the maximum elsewhere)
// with the invalid sentinel adjacent to it, so neither ever collides
// with a real value or with the other.
//
// Conversion to and from epoch counts (days, seconds, milliseconds,
// or nanoseconds since 1970-01-01T00:00:00 UTC) uses closed-form
// calendar arithmetic valid across the whole supported year range,
// 1 through 9999, including dates before the epoch.
//
// Every packer, parser, and formatter is bound to a validation mode at
// construction. ModeUnchecked trusts its input completely and never
// branches on validity. ModeSentinel maps bad input to the invalid
// sentinel (or InvalidComponent, or InvalidEpoch) without error.
// ModeStrict returns a typed error and emits a rejection signal.
package chrono
