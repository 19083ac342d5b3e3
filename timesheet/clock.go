package timesheet

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// CLOCK - Time of day at minute resolution
// =============================================================================

// Clock is a time of day in 24-hour form, minute resolution.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a strict "HH:MM" value. The hour may be one or two
// digits (0-23), the minute exactly two digits (00-59). Anything else fails
// with an InvalidTimeError.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Clock{}, &InvalidTimeError{Value: s}
	}
	if len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return Clock{}, &InvalidTimeError{Value: s}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return Clock{}, &InvalidTimeError{Value: s}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return Clock{}, &InvalidTimeError{Value: s}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, &InvalidTimeError{Value: s}
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// MinuteOfDay returns minutes elapsed since midnight.
func (c Clock) MinuteOfDay() int { return c.Hour*60 + c.Minute }

func (c Clock) Before(other Clock) bool { return c.MinuteOfDay() < other.MinuteOfDay() }

func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

// Duration returns the elapsed hours from start to end, rounded to two
// decimal places. An end chronologically before its start is read as an
// interval crossing midnight: 24 hours are added to the end before
// subtracting. This tolerates overnight shifts; it also silently absorbs a
// same-day typo that puts the out-time before the in-time.
func Duration(start, end Clock) Amount {
	minutes := end.MinuteOfDay() - start.MinuteOfDay()
	if minutes < 0 {
		minutes += 24 * 60
	}
	return HoursFromMinutes(minutes)
}
