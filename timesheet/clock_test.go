package timesheet_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/timesheet-engine/timesheet"
)

func TestParseClock_ValidValues(t *testing.T) {
	cases := []struct {
		in     string
		hour   int
		minute int
	}{
		{"08:00", 8, 0},
		{"8:00", 8, 0},
		{"00:00", 0, 0},
		{"23:59", 23, 59},
		{"13:30", 13, 30},
	}

	for _, tc := range cases {
		c, err := timesheet.ParseClock(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.hour, c.Hour, "input %q", tc.in)
		assert.Equal(t, tc.minute, c.Minute, "input %q", tc.in)
	}
}

func TestParseClock_InvalidValues(t *testing.T) {
	cases := []string{
		"", "8", "8:0", "08:60", "24:00", "25:10", "-1:30", "ab:cd",
		"08:00:00", "8h30", "08.30", "110:00",
	}

	for _, in := range cases {
		_, err := timesheet.ParseClock(in)
		require.Error(t, err, "input %q", in)
		assert.True(t, errors.Is(err, timesheet.ErrInvalidTimeFormat), "input %q", in)
	}
}

func mustClock(t *testing.T, s string) timesheet.Clock {
	t.Helper()
	c, err := timesheet.ParseClock(s)
	require.NoError(t, err)
	return c
}

func TestDuration_SameDay(t *testing.T) {
	cases := []struct {
		start, end string
		hours      float64
	}{
		{"08:00", "12:00", 4},
		{"08:00", "08:00", 0},
		{"08:00", "08:50", 0.83}, // 50 minutes, rounded half-up
		{"08:00", "08:25", 0.42},
		{"13:30", "18:00", 4.5},
		{"00:00", "23:59", 23.98},
	}

	for _, tc := range cases {
		got := timesheet.Duration(mustClock(t, tc.start), mustClock(t, tc.end))
		assert.True(t, got.Value.Equal(timesheet.Hours(tc.hours).Value),
			"%s-%s: want %v got %v", tc.start, tc.end, tc.hours, got.Value)
		assert.False(t, got.IsNegative())
	}
}

func TestDuration_OvernightWrap(t *testing.T) {
	// An end before its start reads as crossing midnight.
	got := timesheet.Duration(mustClock(t, "22:00"), mustClock(t, "06:00"))
	assert.True(t, got.Value.Equal(timesheet.Hours(8).Value), "got %v", got.Value)

	// The wrap also swallows a same-day typo: 09:00 -> 08:30 is 23.5h.
	got = timesheet.Duration(mustClock(t, "09:00"), mustClock(t, "08:30"))
	assert.True(t, got.Value.Equal(timesheet.Hours(23.5).Value), "got %v", got.Value)
}

func TestDuration_MinuteConversionRoundTrip(t *testing.T) {
	// For same-day intervals the result is exactly the minute difference
	// over 60, rounded to two decimals.
	start := mustClock(t, "06:15")
	for _, end := range []string{"06:16", "07:00", "09:41", "18:00", "23:59"} {
		e := mustClock(t, end)
		minutes := e.MinuteOfDay() - start.MinuteOfDay()
		want := timesheet.HoursFromMinutes(minutes)
		got := timesheet.Duration(start, e)
		assert.True(t, got.Value.Equal(want.Value), "end %s", end)
	}
}
