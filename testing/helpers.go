// Package testing provides test utilities for chrono.
package testing

// Event is a test type with temporal field tags.
type Event struct {
	ID    string `json:"id"`
	Day   string `json:"day" chrono.date:"YYYY-MM-DD"`
	Stamp string `json:"stamp" chrono.time:"HH:MM:SS.FFF"`
}

// Clone implements Cloner[Event].
func (e Event) Clone() Event { return e }

// PlainEvent is a test type with no temporal tags.
type PlainEvent struct {
	ID   string `json:"id"`
	Note string `json:"note"`
}

// Clone implements Cloner[PlainEvent].
func (e PlainEvent) Clone() PlainEvent { return e }

// Dates returns calendar dates exercising epoch and leap boundaries.
// Each entry is {year, month, day}.
func Dates() [][3]int {
	return [][3]int{
		{1970, 1, 1},
		{1969, 12, 31},
		{2017, 3, 28},
		{2000, 2, 29},
		{1900, 2, 28},
		{2016, 2, 29},
		{2017, 2, 28},
		{1, 1, 1},
		{9999, 12, 31},
		{1600, 3, 1},
		{2100, 2, 28},
	}
}

// Times returns times of day with nanosecond fractions. Each entry is
// {hour, minute, second, nano}.
func Times() [][4]int {
	return [][4]int{
		{0, 0, 0, 0},
		{23, 59, 59, 999_999_999},
		{12, 0, 0, 500_000_000},
		{1, 2, 3, 4},
		{6, 30, 15, 123_000_000},
	}
}
