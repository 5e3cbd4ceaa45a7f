package chrono_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/chrono"
)

func TestDateParser_Basic(t *testing.T) {
	p, err := chrono.NewDateStringParser(chrono.DateYMD, chrono.NoSeparator, chrono.ModeStrict)
	if err != nil {
		t.Fatalf("NewDateStringParser error: %v", err)
	}

	year, month, day, err := p.Parse("20170121")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if year != 2017 || month != 1 || day != 21 {
		t.Errorf("Parse(20170121) = %d-%02d-%02d", year, month, day)
	}
}

func TestDateParser_AllLayouts(t *testing.T) {
	tests := []struct {
		id    chrono.DateLayoutID
		sep   byte
		input string
	}{
		{chrono.DateYMD, chrono.NoSeparator, "20170328"},
		{chrono.DateYMDSep, '-', "2017-03-28"},
		{chrono.DateYMDSep, '/', "2017/03/28"},
		{chrono.DateMDY, chrono.NoSeparator, "03282017"},
		{chrono.DateMDYSep, '-', "03-28-2017"},
		{chrono.DateDMY, chrono.NoSeparator, "28032017"},
		{chrono.DateDMYSep, '.', "28.03.2017"},
	}

	for _, tt := range tests {
		p, err := chrono.NewDateStringParser(tt.id, tt.sep, chrono.ModeStrict)
		if err != nil {
			t.Fatalf("parser (%v, %q) error: %v", tt.id, tt.sep, err)
		}
		year, month, day, err := p.Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.input, err)
		}
		if year != 2017 || month != 3 || day != 28 {
			t.Errorf("Parse(%q) = %d-%02d-%02d, want 2017-03-28", tt.input, year, month, day)
		}
	}
}

func TestDateParser_FieldAccessors(t *testing.T) {
	p, _ := chrono.NewDateStringParser(chrono.DateYMDSep, '-', chrono.ModeStrict)

	if y, err := p.ParseYear("2017-03-28"); err != nil || y != 2017 {
		t.Errorf("ParseYear = %d, %v", y, err)
	}
	if m, err := p.ParseMonth("2017-03-28"); err != nil || m != 3 {
		t.Errorf("ParseMonth = %d, %v", m, err)
	}
	if d, err := p.ParseDay("2017-03-28"); err != nil || d != 28 {
		t.Errorf("ParseDay = %d, %v", d, err)
	}
}

func TestDateParser_StrictRejects(t *testing.T) {
	p, _ := chrono.NewDateStringParser(chrono.DateYMDSep, '-', chrono.ModeStrict)

	// Month out of range carries the raw text in the error.
	_, _, _, err := p.Parse("2017-13-01")
	if !errors.Is(err, chrono.ErrFormat) {
		t.Fatalf("Parse(2017-13-01) error = %v, want ErrFormat", err)
	}
	var fe *chrono.FormatError
	if !errors.As(err, &fe) {
		t.Fatal("errors.As should find FormatError")
	}
	if fe.Input != "2017-13-01" {
		t.Errorf("FormatError.Input = %q, want the raw text", fe.Input)
	}

	// Non-digit in a field.
	_, _, _, err = p.Parse("2O17-01-21")
	if !errors.Is(err, chrono.ErrFormat) {
		t.Errorf("non-digit error = %v, want ErrFormat", err)
	}

	// Feb 29 in a non-leap year fails on the day field.
	_, _, _, err = p.Parse("2017-02-29")
	if !errors.As(err, &fe) || fe.Field != "day" {
		t.Errorf("Parse(2017-02-29) error = %v, want a day FormatError", err)
	}

	// Year 0000 is out of range.
	_, _, _, err = p.Parse("0000-01-01")
	if !errors.Is(err, chrono.ErrFormat) {
		t.Errorf("Parse(0000-01-01) error = %v, want ErrFormat", err)
	}
}

func TestDateParser_SeparatorMismatch(t *testing.T) {
	p, _ := chrono.NewDateStringParser(chrono.DateYMDSep, '-', chrono.ModeStrict)

	_, _, _, err := p.Parse("2017/01/21")
	if !errors.Is(err, chrono.ErrSeparator) {
		t.Fatalf("Parse(2017/01/21) error = %v, want ErrSeparator", err)
	}

	var se *chrono.SeparatorError
	if !errors.As(err, &se) {
		t.Fatal("errors.As should find SeparatorError")
	}
	if se.Want != '-' || se.Got != '/' {
		t.Errorf("SeparatorError = %+v", se)
	}
}

func TestDateParser_NoSeparatorEnforcement(t *testing.T) {
	// NoSeparator on a separated layout skips the separator columns.
	p, err := chrono.NewDateStringParser(chrono.DateYMDSep, chrono.NoSeparator, chrono.ModeStrict)
	if err != nil {
		t.Fatalf("NewDateStringParser error: %v", err)
	}

	year, month, day, err := p.Parse("2017x03x28")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if year != 2017 || month != 3 || day != 28 {
		t.Errorf("Parse(2017x03x28) = %d-%02d-%02d", year, month, day)
	}
}

func TestDateParser_SentinelMode(t *testing.T) {
	p, _ := chrono.NewDateStringParser(chrono.DateYMDSep, '-', chrono.ModeSentinel)

	year, month, day, err := p.Parse("2017-13-01")
	if err != nil {
		t.Fatalf("sentinel Parse should not error, got %v", err)
	}
	if year != chrono.InvalidComponent || month != chrono.InvalidComponent || day != chrono.InvalidComponent {
		t.Errorf("sentinel Parse = (%d, %d, %d), want InvalidComponent each", year, month, day)
	}

	// Separator mismatch is silent too.
	year, _, _, err = p.Parse("2017/01/21")
	if err != nil || year != chrono.InvalidComponent {
		t.Errorf("sentinel separator mismatch = (%d, %v)", year, err)
	}
}

func TestDateParser_UncheckedMode(t *testing.T) {
	p, _ := chrono.NewDateStringParser(chrono.DateYMD, chrono.NoSeparator, chrono.ModeUnchecked)

	// Raw digit arithmetic, no range check.
	year, month, day, err := p.Parse("20171301")
	if err != nil {
		t.Fatalf("unchecked Parse error: %v", err)
	}
	if year != 2017 || month != 13 || day != 1 {
		t.Errorf("unchecked Parse = (%d, %d, %d), want (2017, 13, 1)", year, month, day)
	}
}

func TestDateParser_EpochDays(t *testing.T) {
	p, _ := chrono.NewDateStringParser(chrono.DateYMD, chrono.NoSeparator, chrono.ModeStrict)

	tests := []struct {
		input string
		want  int64
	}{
		{"19700101", 0},
		{"19691231", -1},
		{"20170328", 17253},
	}

	for _, tt := range tests {
		days, err := p.ParseEpochDays(tt.input)
		if err != nil {
			t.Fatalf("ParseEpochDays(%q) error: %v", tt.input, err)
		}
		if days != tt.want {
			t.Errorf("ParseEpochDays(%q) = %d, want %d", tt.input, days, tt.want)
		}
	}
}

func TestDateParser_IsValid(t *testing.T) {
	p, _ := chrono.NewDateStringParser(chrono.DateYMDSep, '-', chrono.ModeUnchecked)

	if !p.IsValid("2017-03-28") {
		t.Error("IsValid(2017-03-28) = false")
	}
	if p.IsValid("2017-13-01") || p.IsValid("2017/03/28") || p.IsValid("2O17-03-28") {
		t.Error("IsValid should reject malformed input regardless of mode")
	}
}

func TestDateParser_Bytes(t *testing.T) {
	p, err := chrono.NewDateBytesParser(chrono.DateYMD, chrono.NoSeparator, chrono.ModeStrict)
	if err != nil {
		t.Fatalf("NewDateBytesParser error: %v", err)
	}

	year, month, day, err := p.Parse([]byte("20170121"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if year != 2017 || month != 1 || day != 21 {
		t.Errorf("Parse = %d-%02d-%02d", year, month, day)
	}
}

func TestDateParser_ConfigErrors(t *testing.T) {
	// Separator on an unseparated layout.
	if _, err := chrono.NewDateStringParser(chrono.DateYMD, '-', chrono.ModeStrict); !errors.Is(err, chrono.ErrConfig) {
		t.Errorf("separator on unseparated layout error = %v, want ErrConfig", err)
	}
	// Digit separator.
	if _, err := chrono.NewDateStringParser(chrono.DateYMDSep, '5', chrono.ModeStrict); !errors.Is(err, chrono.ErrConfig) {
		t.Errorf("digit separator error = %v, want ErrConfig", err)
	}
	// Non-ASCII separator.
	if _, err := chrono.NewDateStringParser(chrono.DateYMDSep, 0xC3, chrono.ModeStrict); !errors.Is(err, chrono.ErrConfig) {
		t.Errorf("non-ASCII separator error = %v, want ErrConfig", err)
	}
	// Unknown layout.
	if _, err := chrono.NewDateStringParser(chrono.DateLayoutID(99), chrono.NoSeparator, chrono.ModeStrict); !errors.Is(err, chrono.ErrConfig) {
		t.Errorf("unknown layout error = %v, want ErrConfig", err)
	}
}

func TestTimeParser_Basic(t *testing.T) {
	p, _ := chrono.NewTimeStringParser(chrono.TimeHMS, chrono.NoSeparator, chrono.ModeStrict)

	hour, minute, second, err := p.ParseTime("123456")
	if err != nil {
		t.Fatalf("ParseTime error: %v", err)
	}
	if hour != 12 || minute != 34 || second != 56 {
		t.Errorf("ParseTime(123456) = %02d:%02d:%02d", hour, minute, second)
	}
}

func TestTimeParser_FractionScaling(t *testing.T) {
	tests := []struct {
		id       chrono.TimeLayoutID
		sep      byte
		input    string
		wantNano int
	}{
		{chrono.TimeMilli, chrono.NoSeparator, "123456789", 789_000_000},
		{chrono.TimeMilliSep, ':', "12:34:56.789", 789_000_000},
		{chrono.TimeMilliPoint, chrono.NoSeparator, "123456.789", 789_000_000},
		{chrono.TimeMicro, chrono.NoSeparator, "123456789012", 789_012_000},
		{chrono.TimeMicroSep, ':', "12:34:56.789012", 789_012_000},
		{chrono.TimeNano, chrono.NoSeparator, "123456789012345", 789_012_345},
		{chrono.TimeNanoSep, ':', "12:34:56.789012345", 789_012_345},
		{chrono.TimeNanoSepBare, ':', "12:34:56789012345", 789_012_345},
		{chrono.TimeNanoPoint, chrono.NoSeparator, "123456.789012345", 789_012_345},
	}

	for _, tt := range tests {
		p, err := chrono.NewTimeStringParser(tt.id, tt.sep, chrono.ModeStrict)
		if err != nil {
			t.Fatalf("parser (%v, %q) error: %v", tt.id, tt.sep, err)
		}
		hour, minute, second, nano, err := p.ParseNanoTime(tt.input)
		if err != nil {
			t.Fatalf("ParseNanoTime(%q) error: %v", tt.input, err)
		}
		if hour != 12 || minute != 34 || second != 56 || nano != tt.wantNano {
			t.Errorf("ParseNanoTime(%q) = %02d:%02d:%02d.%09d, want fraction %d",
				tt.input, hour, minute, second, nano, tt.wantNano)
		}
	}
}

func TestTimeParser_MilliTime(t *testing.T) {
	p, _ := chrono.NewTimeStringParser(chrono.TimeMilliSep, ':', chrono.ModeStrict)

	hour, minute, second, milli, err := p.ParseMilliTime("12:34:56.789")
	if err != nil {
		t.Fatalf("ParseMilliTime error: %v", err)
	}
	if hour != 12 || minute != 34 || second != 56 || milli != 789 {
		t.Errorf("ParseMilliTime = %02d:%02d:%02d.%03d", hour, minute, second, milli)
	}
}

func TestTimeParser_StrictRejects(t *testing.T) {
	p, _ := chrono.NewTimeStringParser(chrono.TimeHMS, chrono.NoSeparator, chrono.ModeStrict)

	_, _, _, err := p.ParseTime("250000")
	if !errors.Is(err, chrono.ErrFormat) {
		t.Errorf("ParseTime(250000) error = %v, want ErrFormat", err)
	}

	var fe *chrono.FormatError
	if !errors.As(err, &fe) || fe.Field != "hour" {
		t.Errorf("error = %v, want an hour FormatError", err)
	}
}

func TestTimeParser_FractionPoint(t *testing.T) {
	p, _ := chrono.NewTimeStringParser(chrono.TimeMilliSep, ':', chrono.ModeStrict)

	// The fraction point is fixed; a comma there is a separator error.
	_, _, _, _, err := p.ParseNanoTime("12:34:56,789")
	if !errors.Is(err, chrono.ErrSeparator) {
		t.Errorf("comma fraction point error = %v, want ErrSeparator", err)
	}
}

func TestTimeParser_SentinelMode(t *testing.T) {
	p, _ := chrono.NewTimeStringParser(chrono.TimeHMS, chrono.NoSeparator, chrono.ModeSentinel)

	hour, minute, second, err := p.ParseTime("256161")
	if err != nil {
		t.Fatalf("sentinel ParseTime should not error, got %v", err)
	}
	if hour != chrono.InvalidComponent || minute != chrono.InvalidComponent || second != chrono.InvalidComponent {
		t.Errorf("sentinel ParseTime = (%d, %d, %d)", hour, minute, second)
	}
}

func TestTimeParser_OfDay(t *testing.T) {
	p, _ := chrono.NewTimeStringParser(chrono.TimeHMS, chrono.NoSeparator, chrono.ModeStrict)

	sod, err := p.ParseSecondOfDay("235959")
	if err != nil || sod != 86_399 {
		t.Errorf("ParseSecondOfDay(235959) = %d, %v, want 86399", sod, err)
	}

	q, _ := chrono.NewTimeStringParser(chrono.TimeMilliSep, ':', chrono.ModeStrict)
	mod, err := q.ParseMilliOfDay("12:34:56.789")
	if err != nil {
		t.Fatalf("ParseMilliOfDay error: %v", err)
	}
	want := int64(12*3_600+34*60+56)*1_000 + 789
	if mod != want {
		t.Errorf("ParseMilliOfDay = %d, want %d", mod, want)
	}

	nod, err := q.ParseNanoOfDay("12:34:56.789")
	if err != nil {
		t.Fatalf("ParseNanoOfDay error: %v", err)
	}
	if nod != want*1_000_000 {
		t.Errorf("ParseNanoOfDay = %d, want %d", nod, want*1_000_000)
	}
}

func TestTimeParser_IsValid(t *testing.T) {
	p, _ := chrono.NewTimeStringParser(chrono.TimeMilliSep, ':', chrono.ModeUnchecked)

	if !p.IsValid("12:34:56.789") {
		t.Error("IsValid(12:34:56.789) = false")
	}
	if p.IsValid("25:00:00.000") || p.IsValid("12-34-56.789") || p.IsValid("12:34:56x789") {
		t.Error("IsValid should reject malformed input")
	}
}

func TestDateParser_ParsePacked(t *testing.T) {
	p, _ := chrono.NewDateStringParser(chrono.DateYMD, chrono.NoSeparator, chrono.ModeStrict)

	for _, enc := range encodings {
		packer, _ := chrono.NewDatePacker(enc, chrono.ModeStrict)

		parsed, err := p.ParsePacked("20170121", packer)
		if err != nil {
			t.Fatalf("%s ParsePacked error: %v", enc, err)
		}
		direct, _ := packer.Pack(2017, 1, 21)
		if parsed != direct {
			t.Errorf("%s ParsePacked(20170121) = %d, Pack(2017,1,21) = %d", enc, parsed, direct)
		}
	}
}

func TestDateParser_ParsePackedSentinel(t *testing.T) {
	p, _ := chrono.NewDateStringParser(chrono.DateYMD, chrono.NoSeparator, chrono.ModeSentinel)
	packer, _ := chrono.NewDatePacker(chrono.Binary, chrono.ModeSentinel)

	v, err := p.ParsePacked("20171301", packer)
	if err != nil {
		t.Fatalf("sentinel ParsePacked should not error, got %v", err)
	}
	if !packer.IsInvalid(v) {
		t.Errorf("ParsePacked(20171301) = %d, want the invalid sentinel", v)
	}
}

func TestTimeParser_ParsePacked(t *testing.T) {
	p, _ := chrono.NewTimeStringParser(chrono.TimeNanoSep, ':', chrono.ModeStrict)

	tp, _ := chrono.NewTimePacker(chrono.Decimal, chrono.ModeStrict)
	v, err := p.ParsePacked("12:34:56.789012345", tp)
	if err != nil {
		t.Fatalf("ParsePacked error: %v", err)
	}
	want, _ := tp.Pack(12, 34, 56)
	if v != want {
		t.Errorf("ParsePacked = %d, want %d", v, want)
	}

	mp, _ := chrono.NewMilliTimePacker(chrono.Decimal, chrono.ModeStrict)
	mv, err := p.ParsePackedMilli("12:34:56.789012345", mp)
	if err != nil {
		t.Fatalf("ParsePackedMilli error: %v", err)
	}
	mwant, _ := mp.Pack(12, 34, 56, 789)
	if mv != mwant {
		t.Errorf("ParsePackedMilli = %d, want %d", mv, mwant)
	}

	np, _ := chrono.NewNanoTimePacker(chrono.Binary, chrono.ModeStrict)
	nv, err := p.ParsePackedNano("12:34:56.789012345", np)
	if err != nil {
		t.Fatalf("ParsePackedNano error: %v", err)
	}
	nwant, _ := np.Pack(12, 34, 56, 789_012_345)
	if nv != nwant {
		t.Errorf("ParsePackedNano = %d, want %d", nv, nwant)
	}
}
