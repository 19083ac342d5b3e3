/*
payroll.go - Currency reconciliation of classified hours

PURPOSE:
  Converts the month's classified hour totals into money: the hourly rate,
  overtime pay at the configured multipliers, the absence deduction, and
  net pay under the selected pay policy.

PRICING:
  hourlyRate       = salary / standardMonthlyHours (0 when salary is 0)
  overtimePay      = weeklyPaid x rate x 1.5  +  weekend x rate x 2.0
  absenceDeduction = absence x rate

  Hours still sitting in the daily bank carry multiplier 1.0: they are
  compensated time, not an extra pay line.

NET PAY POLICIES:
  flat:      net = max(0, salary - absenceDeduction + overtimePay)
  pro-rated: expected = businessDaysInMonth x dailyStandard
             net = salary x min(1, worked/expected) + overtimePay

  The pro-ration fraction is capped at 1 so a long month never pays more
  than the contracted salary before overtime.

All money in the summary is rounded to two decimals; the hourly rate is
reported at four. Intermediate arithmetic stays unrounded so repeated
passes over the same input reproduce the summary bit for bit.
*/
package timesheet

import "github.com/shopspring/decimal"

// =============================================================================
// HOUR TOTALS - Month-level classified hours
// =============================================================================

// HourTotals is the month-level sum of per-day classifications.
type HourTotals struct {
	Worked     Amount
	Banked     Amount
	WeeklyPaid Amount
	Weekend    Amount
	Absence    Amount
}

// SumClassifications folds per-day results into month totals. Failed days
// contribute nothing.
func SumClassifications(worked []Amount, classes []HourClassification) HourTotals {
	totals := HourTotals{
		Worked:     ZeroHours(),
		Banked:     ZeroHours(),
		WeeklyPaid: ZeroHours(),
		Weekend:    ZeroHours(),
		Absence:    ZeroHours(),
	}
	for i, class := range classes {
		if class.Failed {
			continue
		}
		totals.Worked = totals.Worked.Add(worked[i])
		totals.Banked = totals.Banked.Add(class.DailyBank)
		totals.WeeklyPaid = totals.WeeklyPaid.Add(class.WeeklyPaid)
		totals.Weekend = totals.Weekend.Add(class.Weekend)
		totals.Absence = totals.Absence.Add(class.Absence)
	}
	return totals
}

// =============================================================================
// PAYROLL SUMMARY - Month-level reconciliation
// =============================================================================

// PayrollSummary is the month-level salary reconciliation.
type PayrollSummary struct {
	Salary     Amount
	HourlyRate Amount

	TotalWorked     Amount
	TotalBanked     Amount
	TotalWeeklyPaid Amount
	TotalWeekend    Amount
	TotalAbsence    Amount

	// ExpectedHours is businessDaysInMonth x dailyStandard, the pro-rated
	// policy's denominator. Reported under both policies.
	ExpectedHours Amount

	OvertimePay      Amount
	AbsenceDeduction Amount
	NetPay           Amount

	PayPolicy PayPolicy
}

// ComputeSummary prices the classified hour totals. businessDaysInMonth is
// the count of Mon-Fri days in the calculated sequence.
func ComputeSummary(salary Amount, totals HourTotals, businessDaysInMonth int, rules RuleSet) (PayrollSummary, error) {
	if err := rules.Validate(); err != nil {
		return PayrollSummary{}, err
	}

	rate := ZeroCurrency()
	if salary.IsPositive() {
		rate = Amount{Value: salary.Value.Div(rules.StandardMonthlyHours.Value), Unit: UnitCurrency}
	}

	overtimePay := Amount{
		Unit: UnitCurrency,
		Value: totals.WeeklyPaid.Value.Mul(rate.Value).Mul(rules.WeeklyPaidMultiplier).
			Add(totals.Weekend.Value.Mul(rate.Value).Mul(rules.WeekendMultiplier)),
	}
	deduction := Amount{Value: totals.Absence.Value.Mul(rate.Value), Unit: UnitCurrency}

	expected := Amount{
		Value: rules.DailyStandard.Value.Mul(decimal.NewFromInt(int64(businessDaysInMonth))),
		Unit:  UnitHours,
	}

	var net Amount
	switch rules.PayPolicy {
	case PayProrated:
		if !expected.IsPositive() {
			return PayrollSummary{}, &ConfigError{Field: "expected_hours", Reason: "month has no business days"}
		}
		fraction := totals.Worked.Value.Div(expected.Value)
		if fraction.GreaterThan(decimal.NewFromInt(1)) {
			fraction = decimal.NewFromInt(1)
		}
		net = Amount{Value: salary.Value.Mul(fraction).Add(overtimePay.Value), Unit: UnitCurrency}
	default: // PayFlat
		net = salary.Sub(deduction).Add(overtimePay)
		if net.IsNegative() {
			net = ZeroCurrency()
		}
	}

	return PayrollSummary{
		Salary:           salary.Round(2),
		HourlyRate:       rate.Round(4),
		TotalWorked:      totals.Worked,
		TotalBanked:      totals.Banked,
		TotalWeeklyPaid:  totals.WeeklyPaid,
		TotalWeekend:     totals.Weekend,
		TotalAbsence:     totals.Absence,
		ExpectedHours:    expected,
		OvertimePay:      overtimePay.Round(2),
		AbsenceDeduction: deduction.Round(2),
		NetPay:           net.Round(2),
		PayPolicy:        rules.PayPolicy,
	}, nil
}
