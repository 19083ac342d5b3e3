package timesheet

import "time"

// =============================================================================
// WEEK BUCKETS - Sunday-start grouping of the day sequence
// =============================================================================

// WeekBucket is a contiguous run of day indices belonging to one week.
// A bucket opens at a Sunday (or at the first record when the data does not
// start on Sunday) and closes at a Saturday (or at the last record). Every
// day belongs to exactly one bucket; a trailing partial week is valid.
type WeekBucket struct {
	// Days holds indices into the original day sequence, in order.
	Days []int

	// BusinessDays holds the subset of Days falling on Mon-Fri.
	BusinessDays []int
}

// SplitWeeks folds the ordered day sequence into week buckets.
func SplitWeeks(days []DayRecord) []WeekBucket {
	var buckets []WeekBucket
	var current *WeekBucket

	for i, day := range days {
		if current == nil || day.Weekday == time.Sunday {
			buckets = append(buckets, WeekBucket{})
			current = &buckets[len(buckets)-1]
		}
		current.Days = append(current.Days, i)
		if day.IsBusinessDay() {
			current.BusinessDays = append(current.BusinessDays, i)
		}
		if day.Weekday == time.Saturday {
			current = nil
		}
	}
	return buckets
}
