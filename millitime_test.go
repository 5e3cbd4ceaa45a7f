package chrono_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/chrono"
)

func TestMilliTimePacker_DecimalDigits(t *testing.T) {
	p, _ := chrono.NewMilliTimePacker(chrono.Decimal, chrono.ModeStrict)

	v, err := p.Pack(12, 34, 56, 789)
	if err != nil {
		t.Fatalf("Pack() error: %v", err)
	}
	if v != 123_456_789 {
		t.Errorf("Pack(12, 34, 56, 789) = %d, want 123456789", v)
	}
}

func TestMilliTimePacker_RoundTrip(t *testing.T) {
	times := [][4]int{
		{0, 0, 0, 0},
		{23, 59, 59, 999},
		{12, 0, 0, 500},
		{1, 2, 3, 4},
	}

	for _, enc := range encodings {
		p, _ := chrono.NewMilliTimePacker(enc, chrono.ModeStrict)

		for _, v4 := range times {
			v, err := p.Pack(v4[0], v4[1], v4[2], v4[3])
			if err != nil {
				t.Fatalf("%s Pack(%v) error: %v", enc, v4, err)
			}
			hour, minute, second, milli, err := p.Unpack(v)
			if err != nil {
				t.Fatalf("%s Unpack error: %v", enc, err)
			}
			if hour != v4[0] || minute != v4[1] || second != v4[2] || milli != v4[3] {
				t.Errorf("%s round trip of %v gave %02d:%02d:%02d.%03d",
					enc, v4, hour, minute, second, milli)
			}
		}
	}
}

func TestMilliTimePacker_OrderPreserving(t *testing.T) {
	times := [][4]int{
		{0, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{23, 59, 59, 999},
	}

	for _, enc := range encodings {
		p, _ := chrono.NewMilliTimePacker(enc, chrono.ModeStrict)

		var prev chrono.PackedMilliTime
		for i, v4 := range times {
			v, _ := p.Pack(v4[0], v4[1], v4[2], v4[3])
			if i > 0 && v <= prev {
				t.Errorf("%s ordering broken at %v: %d <= %d", enc, v4, v, prev)
			}
			prev = v
		}
	}
}

func TestMilliTimePacker_Sentinels(t *testing.T) {
	for _, enc := range encodings {
		p, _ := chrono.NewMilliTimePacker(enc, chrono.ModeSentinel)

		if p.PackNull() == p.Invalid() {
			t.Errorf("%s null and invalid sentinels collide", enc)
		}

		v, err := p.Pack(12, 0, 0, 1000)
		if err != nil {
			t.Fatalf("sentinel Pack error: %v", err)
		}
		if !p.IsInvalid(v) {
			t.Errorf("%s Pack with milli=1000 should give the invalid sentinel", enc)
		}

		v, _ = p.Pack(23, 59, 59, 999)
		if p.IsNull(v) || p.IsInvalid(v) {
			t.Errorf("%s 23:59:59.999 collides with a sentinel", enc)
		}
	}
}

func TestMilliTimePacker_StrictMode(t *testing.T) {
	p, _ := chrono.NewMilliTimePacker(chrono.Binary, chrono.ModeStrict)

	_, err := p.Pack(12, 0, 0, -1)
	if !errors.Is(err, chrono.ErrRange) {
		t.Fatalf("Pack error = %v, want ErrRange", err)
	}

	var re *chrono.RangeError
	if !errors.As(err, &re) || re.Component != "millisecond" {
		t.Errorf("error = %v, want a millisecond RangeError", err)
	}
}

func TestMilliTimePacker_EpochMillis(t *testing.T) {
	p, _ := chrono.NewMilliTimePacker(chrono.Binary, chrono.ModeStrict)

	millis := int64(17253)*86_400_000 + (12*3_600+34*60+56)*1_000 + 789
	v, err := p.PackEpochMillis(millis)
	if err != nil {
		t.Fatalf("PackEpochMillis error: %v", err)
	}

	mod, err := p.UnpackMilliOfDay(v)
	if err != nil {
		t.Fatalf("UnpackMilliOfDay error: %v", err)
	}
	want := int64(12*3_600+34*60+56)*1_000 + 789
	if mod != want {
		t.Errorf("UnpackMilliOfDay = %d, want %d", mod, want)
	}

	// Pre-epoch counts wrap to the previous day's final millisecond.
	v, _ = p.PackEpochMillis(-1)
	mod, _ = p.UnpackMilliOfDay(v)
	if mod != 86_400_000-1 {
		t.Errorf("PackEpochMillis(-1) intraday = %d, want %d", mod, 86_400_000-1)
	}
}
