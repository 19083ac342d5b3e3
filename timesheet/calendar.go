package timesheet

import "time"

// =============================================================================
// CALENDAR - Month generation for the day sequence
// =============================================================================

// DaysInMonth returns the number of calendar days in the month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildMonth generates the ordered, empty day sequence for a month. This is
// the calendar the caller fills with punches before calculating.
func BuildMonth(year int, month time.Month) []DayRecord {
	n := DaysInMonth(year, month)
	days := make([]DayRecord, n)
	for d := 1; d <= n; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		days[d-1] = DayRecord{Date: date, Weekday: date.Weekday()}
	}
	return days
}

// BusinessDayCount returns how many of the given days fall on Mon-Fri. It
// feeds the expected-hours denominator of the pro-rated pay policy.
func BusinessDayCount(days []DayRecord) int {
	count := 0
	for _, d := range days {
		if d.IsBusinessDay() {
			count++
		}
	}
	return count
}
