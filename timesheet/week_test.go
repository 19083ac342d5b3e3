package timesheet_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/timesheet-engine/timesheet"
)

func TestSplitWeeks_MonthStartingOnSunday(t *testing.T) {
	// June 2025 starts on a Sunday and has 30 days:
	// full weeks Jun 1-7, 8-14, 15-21, 22-28, then a partial Jun 29-30.
	days := timesheet.BuildMonth(2025, time.June)
	buckets := timesheet.SplitWeeks(days)

	require.Len(t, buckets, 5)
	assert.Len(t, buckets[0].Days, 7)
	assert.Len(t, buckets[3].Days, 7)
	assert.Len(t, buckets[4].Days, 2) // trailing partial week is valid
	assert.Len(t, buckets[0].BusinessDays, 5)
	assert.Len(t, buckets[4].BusinessDays, 1) // Sun 29, Mon 30
}

func TestSplitWeeks_MonthStartingMidWeek(t *testing.T) {
	// July 2025 starts on a Tuesday: the first bucket opens at the first
	// record and closes at Saturday July 5.
	days := timesheet.BuildMonth(2025, time.July)
	buckets := timesheet.SplitWeeks(days)

	require.Len(t, buckets, 5)
	assert.Len(t, buckets[0].Days, 5)         // Jul 1 (Tue) .. Jul 5 (Sat)
	assert.Len(t, buckets[0].BusinessDays, 4) // Tue-Fri
	assert.Equal(t, 0, buckets[0].Days[0])
	assert.Equal(t, time.Saturday, days[buckets[0].Days[len(buckets[0].Days)-1]].Weekday)
}

func TestSplitWeeks_EveryDayInExactlyOneBucket(t *testing.T) {
	for _, month := range []time.Month{time.January, time.February, time.June, time.December} {
		days := timesheet.BuildMonth(2025, month)
		buckets := timesheet.SplitWeeks(days)

		seen := make(map[int]int)
		last := -1
		for _, b := range buckets {
			for _, i := range b.Days {
				seen[i]++
				require.Equal(t, last+1, i, "buckets must be contiguous in %s", month)
				last = i
			}
		}
		require.Len(t, seen, len(days), "%s", month)
		for i, n := range seen {
			assert.Equal(t, 1, n, "day %d in %s", i, month)
		}
	}
}

func TestBuildMonth_CalendarShape(t *testing.T) {
	days := timesheet.BuildMonth(2025, time.June)
	require.Len(t, days, 30)
	assert.Equal(t, time.Sunday, days[0].Weekday)
	assert.Equal(t, 21, timesheet.BusinessDayCount(days))

	// Leap February.
	assert.Len(t, timesheet.BuildMonth(2024, time.February), 29)
	assert.Len(t, timesheet.BuildMonth(2025, time.February), 28)
}
