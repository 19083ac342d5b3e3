/*
errors.go - Centralized error types for the timesheet engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Callers match on the sentinels with errors.Is() and unwrap the structured
  types with errors.As() for detail.

ERROR CATEGORIES:
  1. Time format errors - A punch that is not a valid "HH:MM" value
  2. Configuration errors - A rule set with a non-positive divisor

An incomplete day (some but not all punches entered) is NOT an error: it is
a recognized state that classifies as a partial shortfall. A malformed day
is marked failed in the report and the rest of the month still computes.
*/
package timesheet

import (
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidTimeFormat is returned when a punch does not match HH:MM
	// with hour 0-23 and minute 0-59.
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrInvalidConfig is returned when a rule set carries a non-positive
	// divisor or multiplier. Fatal to the calculation pass: the engine
	// never emits NaN or Infinity in a report.
	ErrInvalidConfig = errors.New("invalid rule configuration")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidTimeError identifies the punch that failed to parse.
type InvalidTimeError struct {
	Value string
	Slot  PunchSlot
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("invalid time %q at punch %s", e.Value, e.Slot)
}

func (e *InvalidTimeError) Unwrap() error { return ErrInvalidTimeFormat }

// ConfigError identifies the rule field that makes a calculation impossible.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rule config %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// DayError records a day that could not be aggregated. The month-level
// report carries these alongside the summary instead of aborting.
type DayError struct {
	Index int
	Date  time.Time
	Err   error
}

func (e *DayError) Error() string {
	return fmt.Sprintf("day %s: %v", e.Date.Format("2006-01-02"), e.Err)
}

func (e *DayError) Unwrap() error { return e.Err }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input
// rather than an engine defect.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidTimeFormat) || errors.Is(err, ErrInvalidConfig)
}
