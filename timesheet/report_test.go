package timesheet_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/timesheet-engine/timesheet"
)

func TestCalculate_FullStandardMonth(t *testing.T) {
	// GIVEN: June 2025 (21 business days) fully worked at 8h/day
	// WHEN: The report is computed under the default rules
	// THEN: 168h worked, no overtime, no absence, net pay = salary

	days := timesheet.BuildMonth(2025, time.June)
	for i, d := range days {
		if d.IsBusinessDay() {
			days[i].Punches = eightHours
		}
	}

	calc := timesheet.Calculator{Rules: timesheet.DefaultRules()}
	report, err := calc.Calculate(days, timesheet.Currency(2500))
	require.NoError(t, err)

	assertHours(t, report.Summary.TotalWorked, 168, "worked")
	assertHours(t, report.Summary.TotalAbsence, 0, "absence")
	assertHours(t, report.Summary.TotalBanked, 0, "banked")
	assertHours(t, report.Summary.ExpectedHours, 168, "expected")
	assertMoney(t, report.Summary.NetPay, 2500, "net pay")
	assert.Empty(t, report.Errors)
	assert.Len(t, report.Days, 30)
	assert.Len(t, report.Weeks, 5)
}

func TestCalculate_Idempotent(t *testing.T) {
	// Two passes over identical input yield an identical summary. The
	// caller recomputes on every edit; nothing may accumulate across calls.
	days := timesheet.BuildMonth(2025, time.June)
	days[1].Punches = nineHours
	days[2].Punches = nineHours
	days[6].Punches = morningOnly // Saturday

	calc := timesheet.Calculator{Rules: timesheet.DefaultRules()}
	first, err := calc.Calculate(days, timesheet.Currency(2500))
	require.NoError(t, err)
	second, err := calc.Calculate(days, timesheet.Currency(2500))
	require.NoError(t, err)

	require.Equal(t, first.Summary, second.Summary)
	require.Equal(t, first.Days, second.Days)
	require.Equal(t, first.Weeks, second.Weeks)
}

func TestCalculate_MalformedDayDoesNotAbortMonth(t *testing.T) {
	// GIVEN: One day with an unparseable punch among valid days
	// WHEN: The report is computed
	// THEN: That day is marked failed and listed; the month still computes

	days := timesheet.BuildMonth(2025, time.June)
	days[1].Punches = eightHours
	days[2].Punches = [4]string{"08:00", "banana", "13:00", "17:00"}
	days[3].Punches = eightHours

	calc := timesheet.Calculator{Rules: timesheet.DefaultRules()}
	report, err := calc.Calculate(days, timesheet.Currency(2500))
	require.NoError(t, err)

	require.Len(t, report.Errors, 1)
	assert.Equal(t, 2, report.Errors[0].Index)
	assert.True(t, errors.Is(report.Errors[0], timesheet.ErrInvalidTimeFormat))

	assert.True(t, report.Days[2].Class.Failed)
	assert.True(t, report.Days[2].Worked.IsZero())
	// A failed day contributes to no bucket, absence included.
	assert.True(t, report.Days[2].Class.Absence.IsZero())

	// The neighbors still computed normally.
	assertHours(t, report.Days[1].Worked, 8, "day 2 worked")
	assertHours(t, report.Days[3].Worked, 8, "day 4 worked")
}

func TestCalculate_InvalidRulesRejected(t *testing.T) {
	bad := timesheet.DefaultRules()
	bad.WeeklyCap = timesheet.Hours(-1)

	calc := timesheet.Calculator{Rules: bad}
	_, err := calc.Calculate(timesheet.BuildMonth(2025, time.June), timesheet.Currency(2500))
	require.Error(t, err)
	assert.True(t, errors.Is(err, timesheet.ErrInvalidConfig))
}

func TestCalculate_EmptyMonth_AllAbsence(t *testing.T) {
	// An untouched calendar: every business day is a full-day absence.
	days := timesheet.BuildMonth(2025, time.June)

	calc := timesheet.Calculator{Rules: timesheet.DefaultRules()}
	report, err := calc.Calculate(days, timesheet.Currency(2500))
	require.NoError(t, err)

	assertHours(t, report.Summary.TotalWorked, 0, "worked")
	assertHours(t, report.Summary.TotalAbsence, 168, "absence")
	for _, d := range report.Days {
		if d.Record.IsBusinessDay() {
			assert.True(t, d.Class.FullDayAbsence)
		}
	}
}
