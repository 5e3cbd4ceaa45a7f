package chrono_test

import (
	"errors"
	"testing"
	"time"

	"github.com/zoobzio/chrono"
)

var encodings = []chrono.Encoding{chrono.Binary, chrono.Decimal}

func TestNewDatePacker_InvalidConfig(t *testing.T) {
	if _, err := chrono.NewDatePacker("base64", chrono.ModeStrict); !errors.Is(err, chrono.ErrConfig) {
		t.Errorf("bad encoding error = %v, want ErrConfig", err)
	}
	if _, err := chrono.NewDatePacker(chrono.Binary, chrono.Mode(99)); !errors.Is(err, chrono.ErrConfig) {
		t.Errorf("bad mode error = %v, want ErrConfig", err)
	}
}

func TestDatePacker_DecimalDigits(t *testing.T) {
	p, err := chrono.NewDatePacker(chrono.Decimal, chrono.ModeStrict)
	if err != nil {
		t.Fatalf("NewDatePacker() error: %v", err)
	}

	v, err := p.Pack(2017, 1, 21)
	if err != nil {
		t.Fatalf("Pack() error: %v", err)
	}
	if v != 20_170_121 {
		t.Errorf("Pack(2017, 1, 21) = %d, want 20170121", v)
	}
}

func TestDatePacker_RoundTrip(t *testing.T) {
	dates := [][3]int{
		{1970, 1, 1},
		{1969, 12, 31},
		{2017, 3, 28},
		{2000, 2, 29},
		{2016, 2, 29},
		{1, 1, 1},
		{9999, 12, 31},
	}

	for _, enc := range encodings {
		p, err := chrono.NewDatePacker(enc, chrono.ModeStrict)
		if err != nil {
			t.Fatalf("NewDatePacker(%s) error: %v", enc, err)
		}

		for _, d := range dates {
			v, err := p.Pack(d[0], d[1], d[2])
			if err != nil {
				t.Fatalf("%s Pack(%v) error: %v", enc, d, err)
			}

			year, month, day, err := p.Unpack(v)
			if err != nil {
				t.Fatalf("%s Unpack(%v) error: %v", enc, v, err)
			}
			if year != d[0] || month != d[1] || day != d[2] {
				t.Errorf("%s round trip of %v gave %d-%02d-%02d", enc, d, year, month, day)
			}

			if y, _ := p.Year(v); y != d[0] {
				t.Errorf("%s Year(%v) = %d, want %d", enc, v, y, d[0])
			}
			if m, _ := p.Month(v); m != d[1] {
				t.Errorf("%s Month(%v) = %d, want %d", enc, v, m, d[1])
			}
			if dd, _ := p.Day(v); dd != d[2] {
				t.Errorf("%s Day(%v) = %d, want %d", enc, v, dd, d[2])
			}
		}
	}
}

func TestDatePacker_OrderPreserving(t *testing.T) {
	// Chronologically increasing dates must pack to increasing integers.
	dates := [][3]int{
		{1969, 12, 31},
		{1970, 1, 1},
		{1970, 1, 2},
		{1970, 2, 1},
		{1999, 12, 31},
		{2000, 1, 1},
		{2017, 1, 21},
		{2017, 1, 22},
		{2017, 2, 1},
		{9999, 12, 31},
	}

	for _, enc := range encodings {
		p, _ := chrono.NewDatePacker(enc, chrono.ModeStrict)

		var prev chrono.PackedDate
		for i, d := range dates {
			v, err := p.Pack(d[0], d[1], d[2])
			if err != nil {
				t.Fatalf("%s Pack(%v) error: %v", enc, d, err)
			}
			if i > 0 && v <= prev {
				t.Errorf("%s ordering broken at %v: %d <= %d", enc, d, v, prev)
			}
			prev = v
		}
	}
}

func TestDatePacker_NullAndInvalid(t *testing.T) {
	for _, enc := range encodings {
		p, _ := chrono.NewDatePacker(enc, chrono.ModeSentinel)

		null := p.PackNull()
		invalid := p.Invalid()
		if null == invalid {
			t.Errorf("%s null and invalid sentinels collide at %d", enc, null)
		}
		if !p.IsNull(null) || p.IsNull(invalid) {
			t.Errorf("%s IsNull misclassifies sentinels", enc)
		}
		if !p.IsInvalid(invalid) || p.IsInvalid(null) {
			t.Errorf("%s IsInvalid misclassifies sentinels", enc)
		}

		// Sentinels must not collide with any packable value.
		v, _ := p.Pack(9999, 12, 31)
		if v == null || v == invalid {
			t.Errorf("%s sentinel collides with a real date", enc)
		}
	}
}

func TestDatePacker_SentinelMode(t *testing.T) {
	p, _ := chrono.NewDatePacker(chrono.Binary, chrono.ModeSentinel)

	v, err := p.Pack(2017, 13, 1)
	if err != nil {
		t.Fatalf("sentinel mode should not error, got %v", err)
	}
	if !p.IsInvalid(v) {
		t.Errorf("Pack(2017, 13, 1) = %d, want the invalid sentinel", v)
	}

	year, month, day, err := p.Unpack(v)
	if err != nil {
		t.Fatalf("sentinel Unpack should not error, got %v", err)
	}
	if year != chrono.InvalidComponent || month != chrono.InvalidComponent || day != chrono.InvalidComponent {
		t.Errorf("Unpack(invalid) = (%d, %d, %d), want InvalidComponent each", year, month, day)
	}
}

func TestDatePacker_StrictMode(t *testing.T) {
	p, _ := chrono.NewDatePacker(chrono.Binary, chrono.ModeStrict)

	_, err := p.Pack(2017, 13, 1)
	if !errors.Is(err, chrono.ErrRange) {
		t.Fatalf("Pack(2017, 13, 1) error = %v, want ErrRange", err)
	}

	var re *chrono.RangeError
	if !errors.As(err, &re) {
		t.Fatal("errors.As should find RangeError")
	}
	if re.Component != "month" || re.Value != 13 {
		t.Errorf("RangeError = %+v, want the month component", re)
	}

	// Feb 29 in a non-leap year fails on the day, not the month.
	_, err = p.Pack(2017, 2, 29)
	if !errors.As(err, &re) || re.Component != "day" {
		t.Errorf("Pack(2017, 2, 29) error = %v, want a day RangeError", err)
	}
}

func TestDatePacker_UncheckedMode(t *testing.T) {
	p, _ := chrono.NewDatePacker(chrono.Binary, chrono.ModeUnchecked)

	// Unchecked passes garbage through without branching on validity.
	v, err := p.Pack(2017, 13, 1)
	if err != nil {
		t.Fatalf("unchecked Pack error: %v", err)
	}
	year, month, day, err := p.Unpack(v)
	if err != nil {
		t.Fatalf("unchecked Unpack error: %v", err)
	}
	if year != 2017 || month != 13 || day != 1 {
		t.Errorf("unchecked round trip gave (%d, %d, %d), want (2017, 13, 1)", year, month, day)
	}
}

func TestDatePacker_Epoch(t *testing.T) {
	for _, enc := range encodings {
		p, _ := chrono.NewDatePacker(enc, chrono.ModeStrict)

		v, err := p.PackEpochDays(0)
		if err != nil {
			t.Fatalf("PackEpochDays(0) error: %v", err)
		}
		year, month, day, _ := p.Unpack(v)
		if year != 1970 || month != 1 || day != 1 {
			t.Errorf("%s PackEpochDays(0) = %d-%02d-%02d, want 1970-01-01", enc, year, month, day)
		}

		v, _ = p.Pack(2017, 3, 28)
		days, err := p.UnpackEpochDays(v)
		if err != nil {
			t.Fatalf("UnpackEpochDays error: %v", err)
		}
		if days != 17253 {
			t.Errorf("%s UnpackEpochDays(2017-03-28) = %d, want 17253", enc, days)
		}
	}
}

func TestDatePacker_EpochInvalidSentinel(t *testing.T) {
	p, _ := chrono.NewDatePacker(chrono.Binary, chrono.ModeSentinel)

	days, err := p.UnpackEpochDays(p.Invalid())
	if err != nil {
		t.Fatalf("sentinel UnpackEpochDays should not error, got %v", err)
	}
	if days != chrono.InvalidEpoch {
		t.Errorf("UnpackEpochDays(invalid) = %d, want InvalidEpoch", days)
	}
}

func TestDatePacker_Time(t *testing.T) {
	p, _ := chrono.NewDatePacker(chrono.Decimal, chrono.ModeStrict)

	in := time.Date(2017, time.March, 28, 15, 4, 5, 0, time.UTC)
	v, err := p.PackTime(in)
	if err != nil {
		t.Fatalf("PackTime error: %v", err)
	}

	out, err := p.Time(v)
	if err != nil {
		t.Fatalf("Time error: %v", err)
	}
	want := time.Date(2017, time.March, 28, 0, 0, 0, 0, time.UTC)
	if !out.Equal(want) {
		t.Errorf("Time(PackTime(%v)) = %v, want %v", in, out, want)
	}
}

func TestDatePacker_WithMode(t *testing.T) {
	p, _ := chrono.NewDatePacker(chrono.Binary, chrono.ModeStrict)

	q, err := p.WithMode(chrono.ModeSentinel)
	if err != nil {
		t.Fatalf("WithMode error: %v", err)
	}
	if q.Mode() != chrono.ModeSentinel || q.Encoding() != chrono.Binary {
		t.Errorf("WithMode gave encoding %s mode %s", q.Encoding(), q.Mode())
	}
}
