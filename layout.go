package chrono

import "strings"

// DateLayoutID selects one of the fixed-width date text layouts.
type DateLayoutID int

const (
	// DateYMD is YYYYMMDD.
	DateYMD DateLayoutID = iota
	// DateYMDSep is YYYY-MM-DD with a configurable separator.
	DateYMDSep
	// DateMDY is MMDDYYYY.
	DateMDY
	// DateMDYSep is MM-DD-YYYY with a configurable separator.
	DateMDYSep
	// DateDMY is DDMMYYYY.
	DateDMY
	// DateDMYSep is DD-MM-YYYY with a configurable separator.
	DateDMYSep

	dateLayoutCount
)

// TimeLayoutID selects one of the fixed-width time text layouts.
type TimeLayoutID int

const (
	// TimeHMS is HHMMSS.
	TimeHMS TimeLayoutID = iota
	// TimeHMSSep is HH-MM-SS with a configurable separator.
	TimeHMSSep
	// TimeMilli is HHMMSSmmm.
	TimeMilli
	// TimeMilliSep is HH-MM-SS.mmm with a configurable separator.
	TimeMilliSep
	// TimeMilliSepBare is HH-MM-SSmmm, separated fields but no point
	// before the fraction.
	TimeMilliSepBare
	// TimeMilliPoint is HHMMSS.mmm.
	TimeMilliPoint
	// TimeMicro is HHMMSSuuuuuu.
	TimeMicro
	// TimeMicroSep is HH-MM-SS.uuuuuu with a configurable separator.
	TimeMicroSep
	// TimeMicroSepBare is HH-MM-SSuuuuuu.
	TimeMicroSepBare
	// TimeNano is HHMMSSnnnnnnnnn.
	TimeNano
	// TimeNanoSep is HH-MM-SS.nnnnnnnnn with a configurable separator.
	TimeNanoSep
	// TimeNanoSepBare is HH-MM-SSnnnnnnnnn.
	TimeNanoSepBare
	// TimeNanoPoint is HHMMSS.nnnnnnnnn.
	TimeNanoPoint

	timeLayoutCount
)

// DateLayout describes the character geometry of one date text layout.
// All layouts are fixed-width: every field starts at a constant offset.
type DateLayout struct {
	ID      DateLayoutID
	Pattern string
	Length  int

	yearPos  int
	monthPos int
	dayPos   int
	sepPos   []int
}

// Separated reports whether the layout carries separator characters.
func (l DateLayout) Separated() bool { return len(l.sepPos) > 0 }

// TimeLayout describes the character geometry of one time text layout.
// The fraction separator, when present, is always a point; only the
// field separator is configurable.
type TimeLayout struct {
	ID      TimeLayoutID
	Pattern string
	Length  int

	hourPos    int
	minutePos  int
	secondPos  int
	fracPos    int
	fracDigits int
	sepPos     []int
	fracSepPos int
}

// Separated reports whether the layout carries field separators.
func (l TimeLayout) Separated() bool { return len(l.sepPos) > 0 }

// Fractional reports whether the layout carries a sub-second field.
func (l TimeLayout) Fractional() bool { return l.fracDigits > 0 }

// FracDigits returns the width of the sub-second field, 0 when absent.
func (l TimeLayout) FracDigits() int { return l.fracDigits }

var dateLayouts = [dateLayoutCount]DateLayout{
	DateYMD:    {ID: DateYMD, Pattern: "YYYYMMDD", Length: 8, yearPos: 0, monthPos: 4, dayPos: 6},
	DateYMDSep: {ID: DateYMDSep, Pattern: "YYYY-MM-DD", Length: 10, yearPos: 0, monthPos: 5, dayPos: 8, sepPos: []int{4, 7}},
	DateMDY:    {ID: DateMDY, Pattern: "MMDDYYYY", Length: 8, monthPos: 0, dayPos: 2, yearPos: 4},
	DateMDYSep: {ID: DateMDYSep, Pattern: "MM-DD-YYYY", Length: 10, monthPos: 0, dayPos: 3, yearPos: 6, sepPos: []int{2, 5}},
	DateDMY:    {ID: DateDMY, Pattern: "DDMMYYYY", Length: 8, dayPos: 0, monthPos: 2, yearPos: 4},
	DateDMYSep: {ID: DateDMYSep, Pattern: "DD-MM-YYYY", Length: 10, dayPos: 0, monthPos: 3, yearPos: 6, sepPos: []int{2, 5}},
}

var timeLayouts = [timeLayoutCount]TimeLayout{
	TimeHMS:          {ID: TimeHMS, Pattern: "HHMMSS", Length: 6, hourPos: 0, minutePos: 2, secondPos: 4, fracSepPos: -1},
	TimeHMSSep:       {ID: TimeHMSSep, Pattern: "HH-MM-SS", Length: 8, hourPos: 0, minutePos: 3, secondPos: 6, sepPos: []int{2, 5}, fracSepPos: -1},
	TimeMilli:        {ID: TimeMilli, Pattern: "HHMMSSFFF", Length: 9, hourPos: 0, minutePos: 2, secondPos: 4, fracPos: 6, fracDigits: 3, fracSepPos: -1},
	TimeMilliSep:     {ID: TimeMilliSep, Pattern: "HH-MM-SS.FFF", Length: 12, hourPos: 0, minutePos: 3, secondPos: 6, fracPos: 9, fracDigits: 3, sepPos: []int{2, 5}, fracSepPos: 8},
	TimeMilliSepBare: {ID: TimeMilliSepBare, Pattern: "HH-MM-SSFFF", Length: 11, hourPos: 0, minutePos: 3, secondPos: 6, fracPos: 8, fracDigits: 3, sepPos: []int{2, 5}, fracSepPos: -1},
	TimeMilliPoint:   {ID: TimeMilliPoint, Pattern: "HHMMSS.FFF", Length: 10, hourPos: 0, minutePos: 2, secondPos: 4, fracPos: 7, fracDigits: 3, fracSepPos: 6},
	TimeMicro:        {ID: TimeMicro, Pattern: "HHMMSSFFFFFF", Length: 12, hourPos: 0, minutePos: 2, secondPos: 4, fracPos: 6, fracDigits: 6, fracSepPos: -1},
	TimeMicroSep:     {ID: TimeMicroSep, Pattern: "HH-MM-SS.FFFFFF", Length: 15, hourPos: 0, minutePos: 3, secondPos: 6, fracPos: 9, fracDigits: 6, sepPos: []int{2, 5}, fracSepPos: 8},
	TimeMicroSepBare: {ID: TimeMicroSepBare, Pattern: "HH-MM-SSFFFFFF", Length: 14, hourPos: 0, minutePos: 3, secondPos: 6, fracPos: 8, fracDigits: 6, sepPos: []int{2, 5}, fracSepPos: -1},
	TimeNano:         {ID: TimeNano, Pattern: "HHMMSSFFFFFFFFF", Length: 15, hourPos: 0, minutePos: 2, secondPos: 4, fracPos: 6, fracDigits: 9, fracSepPos: -1},
	TimeNanoSep:      {ID: TimeNanoSep, Pattern: "HH-MM-SS.FFFFFFFFF", Length: 18, hourPos: 0, minutePos: 3, secondPos: 6, fracPos: 9, fracDigits: 9, sepPos: []int{2, 5}, fracSepPos: 8},
	TimeNanoSepBare:  {ID: TimeNanoSepBare, Pattern: "HH-MM-SSFFFFFFFFF", Length: 17, hourPos: 0, minutePos: 3, secondPos: 6, fracPos: 8, fracDigits: 9, sepPos: []int{2, 5}, fracSepPos: -1},
	TimeNanoPoint:    {ID: TimeNanoPoint, Pattern: "HHMMSS.FFFFFFFFF", Length: 16, hourPos: 0, minutePos: 2, secondPos: 4, fracPos: 7, fracDigits: 9, fracSepPos: 6},
}

// Valid reports whether the layout ID names a known date layout.
func (id DateLayoutID) Valid() bool { return id >= 0 && id < dateLayoutCount }

// Layout returns the geometry of the layout.
func (id DateLayoutID) Layout() DateLayout { return dateLayouts[id] }

// String returns the layout's pattern.
func (id DateLayoutID) String() string {
	if !id.Valid() {
		return "unknown"
	}
	return dateLayouts[id].Pattern
}

// Valid reports whether the layout ID names a known time layout.
func (id TimeLayoutID) Valid() bool { return id >= 0 && id < timeLayoutCount }

// Layout returns the geometry of the layout.
func (id TimeLayoutID) Layout() TimeLayout { return timeLayouts[id] }

// String returns the layout's pattern.
func (id TimeLayoutID) String() string {
	if !id.Valid() {
		return "unknown"
	}
	return timeLayouts[id].Pattern
}

// validSeparator reports whether sep can serve as a field separator:
// seven-bit, non-digit, and not the NUL that means "no separator".
func validSeparator(sep byte) bool {
	return sep > 0 && sep < 128 && (sep < '0' || sep > '9')
}

// DateLayoutOf resolves a concrete pattern such as "YYYY/MM/DD" or
// "DDMMYYYY" to its layout ID and separator byte. Unseparated patterns
// yield NoSeparator.
func DateLayoutOf(pattern string) (DateLayoutID, byte, error) {
	for id := DateLayoutID(0); id < dateLayoutCount; id++ {
		l := dateLayouts[id]
		if len(pattern) != l.Length {
			continue
		}
		if !l.Separated() {
			if pattern == l.Pattern {
				return id, NoSeparator, nil
			}
			continue
		}
		sep := pattern[l.sepPos[0]]
		if !validSeparator(sep) {
			continue
		}
		if pattern == strings.ReplaceAll(l.Pattern, "-", string(rune(sep))) {
			return id, sep, nil
		}
	}
	return 0, NoSeparator, newConfigError("date layout", pattern)
}

// TimeLayoutOf resolves a concrete pattern such as "HH:MM:SS.FFF" to
// its layout ID and separator byte. The fraction point is part of the
// pattern, not a separator.
func TimeLayoutOf(pattern string) (TimeLayoutID, byte, error) {
	for id := TimeLayoutID(0); id < timeLayoutCount; id++ {
		l := timeLayouts[id]
		if len(pattern) != l.Length {
			continue
		}
		if !l.Separated() {
			if pattern == l.Pattern {
				return id, NoSeparator, nil
			}
			continue
		}
		sep := pattern[l.sepPos[0]]
		if !validSeparator(sep) || sep == '.' && l.fracSepPos >= 0 {
			continue
		}
		if pattern == strings.ReplaceAll(l.Pattern, "-", string(rune(sep))) {
			return id, sep, nil
		}
	}
	return 0, NoSeparator, newConfigError("time layout", pattern)
}
