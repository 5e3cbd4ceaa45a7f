package chrono

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrRange indicates a date or time component outside its legal bound.
	ErrRange = errors.New("component out of range")

	// ErrFormat indicates a non-digit character in a numeric field.
	ErrFormat = errors.New("malformed text")

	// ErrSeparator indicates a mismatched or illegal separator byte.
	ErrSeparator = errors.New("bad separator")

	// ErrConfig indicates an invalid encoding, mode, layout, or separator
	// passed at construction time. Configuration errors are reported
	// regardless of the active validation mode.
	ErrConfig = errors.New("invalid configuration")
)

// RangeError reports a component whose value falls outside its legal bound.
type RangeError struct {
	Component string // "year", "month", "day", "hour", ...
	Value     int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range", e.Component, e.Value)
}

func (e *RangeError) Unwrap() error {
	return ErrRange
}

// FormatError reports malformed text encountered while parsing.
// Input carries the offending substring exactly as read.
type FormatError struct {
	Field string // field or separator that failed
	Input string // raw text that was rejected
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s in %q", e.Field, e.Input)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// SeparatorError reports a separator slot holding the wrong byte.
type SeparatorError struct {
	Want  byte
	Got   byte
	Input string // raw text that was rejected
}

func (e *SeparatorError) Error() string {
	return fmt.Sprintf("separator %q, want %q in %q", e.Got, e.Want, e.Input)
}

func (e *SeparatorError) Unwrap() error {
	return ErrSeparator
}

// ConfigError reports an invalid construction parameter.
type ConfigError struct {
	Param string // parameter name ("encoding", "mode", "layout", "separator")
	Value string // offending value
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Param, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfig
}

// newRangeError creates a RangeError for an out-of-bound component.
func newRangeError(component string, value int64) error {
	return &RangeError{Component: component, Value: value}
}

// newFormatError creates a FormatError carrying the rejected text.
func newFormatError(field, input string) error {
	return &FormatError{Field: field, Input: input}
}

// newSeparatorError creates a SeparatorError carrying the rejected text.
func newSeparatorError(want, got byte, input string) error {
	return &SeparatorError{Want: want, Got: got, Input: input}
}

// newConfigError creates a ConfigError for a bad construction parameter.
func newConfigError(param, value string) error {
	return &ConfigError{Param: param, Value: value}
}
