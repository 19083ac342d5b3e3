/*
report.go - Monthly report assembly

PURPOSE:
  The external-facing aggregate: one pass that aggregates days, splits
  weeks, classifies hours, prices the result, and returns the full
  breakdown as a read-only snapshot. Rendering and export layers consume
  the report; they never reach into the engine.

GUARANTEES:
  - Total recomputation: every call starts from the raw day records.
    Nothing accumulates across calls, so redundant invocations (the
    caller may recompute on every edit) are safe and idempotent.
  - Locality of failure: a day whose punches do not parse is marked
    failed, listed in Errors, and excluded from every bucket; the rest
    of the month still computes.
*/
package timesheet

// =============================================================================
// MONTHLY REPORT - Read-only calculation snapshot
// =============================================================================

// DayBreakdown pairs one day record with its derived values.
type DayBreakdown struct {
	Record DayRecord
	Worked Amount
	Class  HourClassification
}

// MonthlyReport is the complete outcome of one calculation pass.
type MonthlyReport struct {
	Days    []DayBreakdown
	Weeks   []WeekSummary
	Summary PayrollSummary

	// Errors lists days that failed aggregation. A non-empty list does
	// not invalidate the rest of the report.
	Errors []*DayError
}

// =============================================================================
// CALCULATOR - One full pass over the month
// =============================================================================

// Calculator runs full monthly passes under one rule set.
type Calculator struct {
	Rules RuleSet
}

// Calculate computes the full monthly report for an ordered day sequence
// and a monthly salary. The pass is pure: identical inputs always yield an
// identical report.
func (c Calculator) Calculate(days []DayRecord, salary Amount) (*MonthlyReport, error) {
	if err := c.Rules.Validate(); err != nil {
		return nil, err
	}

	worked := make([]Amount, len(days))
	failed := make([]bool, len(days))
	var dayErrs []*DayError

	for i, day := range days {
		hours, err := WorkedHours(day)
		if err != nil {
			failed[i] = true
			worked[i] = ZeroHours()
			dayErrs = append(dayErrs, &DayError{Index: i, Date: day.Date, Err: err})
			continue
		}
		worked[i] = hours
	}

	classes, weeks := ClassifyMonth(days, worked, failed, c.Rules)
	totals := SumClassifications(worked, classes)

	summary, err := ComputeSummary(salary, totals, BusinessDayCount(days), c.Rules)
	if err != nil {
		return nil, err
	}

	breakdown := make([]DayBreakdown, len(days))
	for i := range days {
		breakdown[i] = DayBreakdown{Record: days[i], Worked: worked[i], Class: classes[i]}
	}

	return &MonthlyReport{
		Days:    breakdown,
		Weeks:   weeks,
		Summary: summary,
		Errors:  dayErrs,
	}, nil
}
