package calendar

import "fmt"

// FormatError reports malformed input (date or time syntax). Callers can
// recover by fixing the input.
type FormatError struct {
	Field string
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed %s: %q", e.Field, e.Value)
}

// RangeError reports a value outside the configured bounds.
type RangeError struct {
	Field    string
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d outside [%d,%d]", e.Field, e.Value, e.Min, e.Max)
}

// ConversionError reports a failed lunar-to-solar conversion. The day-30
// retry in the converter is the only automatic recovery; anything else
// propagates.
type ConversionError struct {
	Reason string
	Err    error
}

func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lunar conversion failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("lunar conversion failed: %s", e.Reason)
}

func (e *ConversionError) Unwrap() error { return e.Err }
