package chrono_test

import (
	"errors"
	"testing"
	"time"

	"github.com/zoobzio/chrono"
)

func TestNanoTimePacker_DecimalDigits(t *testing.T) {
	p, _ := chrono.NewNanoTimePacker(chrono.Decimal, chrono.ModeStrict)

	v, err := p.Pack(12, 34, 56, 789_012_345)
	if err != nil {
		t.Fatalf("Pack() error: %v", err)
	}
	if v != 123_456_789_012_345 {
		t.Errorf("Pack(12, 34, 56, 789012345) = %d, want 123456789012345", v)
	}
}

func TestNanoTimePacker_RoundTrip(t *testing.T) {
	times := [][4]int{
		{0, 0, 0, 0},
		{23, 59, 59, 999_999_999},
		{12, 0, 0, 500_000_000},
		{1, 2, 3, 4},
	}

	for _, enc := range encodings {
		p, _ := chrono.NewNanoTimePacker(enc, chrono.ModeStrict)

		for _, v4 := range times {
			v, err := p.Pack(v4[0], v4[1], v4[2], v4[3])
			if err != nil {
				t.Fatalf("%s Pack(%v) error: %v", enc, v4, err)
			}
			hour, minute, second, nano, err := p.Unpack(v)
			if err != nil {
				t.Fatalf("%s Unpack error: %v", enc, err)
			}
			if hour != v4[0] || minute != v4[1] || second != v4[2] || nano != v4[3] {
				t.Errorf("%s round trip of %v gave %02d:%02d:%02d.%09d",
					enc, v4, hour, minute, second, nano)
			}
		}
	}
}

func TestNanoTimePacker_OrderPreserving(t *testing.T) {
	times := [][4]int{
		{0, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 999_999_999},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{23, 59, 59, 999_999_999},
	}

	for _, enc := range encodings {
		p, _ := chrono.NewNanoTimePacker(enc, chrono.ModeStrict)

		var prev chrono.PackedNanoTime
		for i, v4 := range times {
			v, _ := p.Pack(v4[0], v4[1], v4[2], v4[3])
			if i > 0 && v <= prev {
				t.Errorf("%s ordering broken at %v: %d <= %d", enc, v4, v, prev)
			}
			prev = v
		}
	}
}

func TestNanoTimePacker_Sentinels(t *testing.T) {
	for _, enc := range encodings {
		p, _ := chrono.NewNanoTimePacker(enc, chrono.ModeSentinel)

		if p.PackNull() == p.Invalid() {
			t.Errorf("%s null and invalid sentinels collide", enc)
		}

		v, err := p.Pack(12, 0, 0, 1_000_000_000)
		if err != nil {
			t.Fatalf("sentinel Pack error: %v", err)
		}
		if !p.IsInvalid(v) {
			t.Errorf("%s Pack with nano=1e9 should give the invalid sentinel", enc)
		}

		v, _ = p.Pack(23, 59, 59, 999_999_999)
		if p.IsNull(v) || p.IsInvalid(v) {
			t.Errorf("%s 23:59:59.999999999 collides with a sentinel", enc)
		}
	}
}

func TestNanoTimePacker_StrictMode(t *testing.T) {
	p, _ := chrono.NewNanoTimePacker(chrono.Binary, chrono.ModeStrict)

	_, err := p.Pack(12, 0, 0, 1_000_000_000)
	if !errors.Is(err, chrono.ErrRange) {
		t.Fatalf("Pack error = %v, want ErrRange", err)
	}

	var re *chrono.RangeError
	if !errors.As(err, &re) || re.Component != "nanosecond" {
		t.Errorf("error = %v, want a nanosecond RangeError", err)
	}
}

func TestNanoTimePacker_EpochNanos(t *testing.T) {
	p, _ := chrono.NewNanoTimePacker(chrono.Binary, chrono.ModeStrict)

	nanos := int64(17253)*86_400_000_000_000 + int64(12*3_600+34*60+56)*1_000_000_000 + 789
	v, err := p.PackEpochNanos(nanos)
	if err != nil {
		t.Fatalf("PackEpochNanos error: %v", err)
	}

	nod, err := p.UnpackNanoOfDay(v)
	if err != nil {
		t.Fatalf("UnpackNanoOfDay error: %v", err)
	}
	want := int64(12*3_600+34*60+56)*1_000_000_000 + 789
	if nod != want {
		t.Errorf("UnpackNanoOfDay = %d, want %d", nod, want)
	}
}

func TestNanoTimePacker_PackTime(t *testing.T) {
	p, _ := chrono.NewNanoTimePacker(chrono.Binary, chrono.ModeStrict)

	v, err := p.PackTime(time.Date(2017, time.March, 28, 9, 8, 7, 123_456_789, time.UTC))
	if err != nil {
		t.Fatalf("PackTime error: %v", err)
	}
	hour, minute, second, nano, _ := p.Unpack(v)
	if hour != 9 || minute != 8 || second != 7 || nano != 123_456_789 {
		t.Errorf("PackTime round trip = %02d:%02d:%02d.%09d", hour, minute, second, nano)
	}
}
