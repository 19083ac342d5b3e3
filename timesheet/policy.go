/*
policy.go - Rule set and the overtime classification fold

PURPOSE:
  Defines the rules that govern how a month of worked hours is split into
  pay categories, and the single ordered pass that applies them. This is
  the core of the engine.

THE FOLD:
  The pass threads an explicit week accumulator through the day sequence
  instead of mutating shared running totals. Per business day:

    worked > standard   -> excess provisionally banked (unpaid)
    0 <= worked < standard -> shortfall recorded as absence; a business day
                           with no punches at all is a full-day absence
    worked == standard  -> nothing to classify

  Weekend hours are all premium time, independent of the weekly cap in the
  canonical rule set.

WEEK CLOSE (the tie-break):
  When the week total crosses the legal cap, hours already banked on
  earlier days of that week are retroactively promoted to paid weekly
  overtime, up to the excess. The promoted amount is split equally across
  the business days that contributed bank (a proportional split is
  available as a policy flag). Promotion moves hours between categories;
  it never creates them, so the week's promoted total is capped both by
  the excess and by the week's total bank.

VARIANTS:
  The exploratory drafts this engine consolidates disagreed on the daily
  standard (8h / 8.5h / 11h), the monthly divisor, and whether weekend
  hours count toward the cap. All of these are RuleSet fields rather than
  constants; presets.go carries the named variants.
*/
package timesheet

import "github.com/shopspring/decimal"

// =============================================================================
// RULE SET - Configuration for one calculation pass
// =============================================================================

// Distribution selects how promoted weekly overtime is spread across the
// business days that banked it.
type Distribution string

const (
	// DistributeEqual splits the promoted amount in equal shares per
	// contributing business day, clamped at each day's bank.
	DistributeEqual Distribution = "equal"

	// DistributeProportional splits it proportionally to each day's
	// banked amount.
	DistributeProportional Distribution = "proportional"
)

// PayPolicy selects how net pay is derived in the payroll step.
type PayPolicy string

const (
	// PayFlat charges absences against the salary and adds overtime pay:
	// net = max(0, salary - absenceDeduction + overtimePay).
	PayFlat PayPolicy = "flat"

	// PayProrated scales the salary by worked vs expected monthly hours,
	// capped at the full salary, then adds overtime pay.
	PayProrated PayPolicy = "prorated"
)

// RuleSet is the complete configuration of one calculation pass.
type RuleSet struct {
	Name string

	// DailyStandard is the contracted workday duration (hours).
	DailyStandard Amount

	// WeeklyCap is the legal weekly hour threshold above which banked
	// overtime is promoted to paid overtime.
	WeeklyCap Amount

	// StandardMonthlyHours is the divisor that prices one hour of salary.
	StandardMonthlyHours Amount

	// WeeklyPaidMultiplier prices promoted weekly overtime (commonly 1.5).
	WeeklyPaidMultiplier decimal.Decimal

	// WeekendMultiplier prices weekend premium hours (commonly 2.0).
	WeekendMultiplier decimal.Decimal

	// Distribution selects the week-close promotion split.
	Distribution Distribution

	// PayPolicy selects the net-pay formula.
	PayPolicy PayPolicy

	// WeekendCountsTowardCap includes weekend hours in the weekly total
	// used for the cap check. Off in the canonical rule set: weekend
	// hours are paid at their own premium regardless of weekly totals.
	WeekendCountsTowardCap bool
}

// Validate rejects configurations that would make a pass divide by zero or
// pay at a negative rate.
func (r RuleSet) Validate() error {
	if !r.DailyStandard.IsPositive() {
		return &ConfigError{Field: "daily_standard", Reason: "must be positive"}
	}
	if !r.WeeklyCap.IsPositive() {
		return &ConfigError{Field: "weekly_cap", Reason: "must be positive"}
	}
	if !r.StandardMonthlyHours.IsPositive() {
		return &ConfigError{Field: "standard_monthly_hours", Reason: "must be positive"}
	}
	if r.WeeklyPaidMultiplier.IsNegative() {
		return &ConfigError{Field: "weekly_paid_multiplier", Reason: "must not be negative"}
	}
	if r.WeekendMultiplier.IsNegative() {
		return &ConfigError{Field: "weekend_multiplier", Reason: "must not be negative"}
	}
	switch r.Distribution {
	case DistributeEqual, DistributeProportional:
	default:
		return &ConfigError{Field: "distribution", Reason: "unknown policy"}
	}
	switch r.PayPolicy {
	case PayFlat, PayProrated:
	default:
		return &ConfigError{Field: "pay_policy", Reason: "unknown policy"}
	}
	return nil
}

// =============================================================================
// WEEK SUMMARY - Outcome of one week's cap check
// =============================================================================

// WeekSummary reports one bucket's totals after the cap check.
type WeekSummary struct {
	Bucket WeekBucket

	// Total is the week's cap-relevant hour total (business hours, plus
	// weekend hours when the rule set counts them).
	Total Amount

	// Banked is the overtime still sitting in the daily bank after
	// promotion.
	Banked Amount

	// Promoted is the amount moved to paid weekly overtime at week close.
	Promoted Amount
}

// =============================================================================
// CLASSIFICATION FOLD
// =============================================================================

// ClassifyMonth walks the day sequence once and splits each day's worked
// hours into pay categories, resolving the weekly cap at each week close.
//
// worked[i] is day i's aggregated hours; failed[i] marks days whose punches
// did not parse. A failed day is classified as Failed and contributes to no
// bucket and no week total.
func ClassifyMonth(days []DayRecord, worked []Amount, failed []bool, rules RuleSet) ([]HourClassification, []WeekSummary) {
	classes := make([]HourClassification, len(days))
	buckets := SplitWeeks(days)
	summaries := make([]WeekSummary, 0, len(buckets))

	for _, bucket := range buckets {
		weekTotal := ZeroHours()

		for _, i := range bucket.Days {
			class := emptyClassification()
			if failed[i] {
				class.Failed = true
				classes[i] = class
				continue
			}

			day := days[i]
			hours := worked[i]

			switch {
			case day.IsBusinessDay():
				weekTotal = weekTotal.Add(hours)
				switch {
				case hours.GreaterThan(rules.DailyStandard):
					class.Normal = rules.DailyStandard
					class.DailyBank = hours.Sub(rules.DailyStandard)
				case hours.LessThan(rules.DailyStandard):
					// Shortfall against the standard. No punches at
					// all makes it a full-day absence rather than a
					// partial clock record.
					class.Normal = hours
					class.Absence = rules.DailyStandard.Sub(hours)
					class.FullDayAbsence = !day.HasAnyPunch()
				default:
					class.Normal = hours
				}
			case hours.IsPositive():
				class.Weekend = hours
				if rules.WeekendCountsTowardCap {
					weekTotal = weekTotal.Add(hours)
				}
			}
			classes[i] = class
		}

		summaries = append(summaries, closeWeek(bucket, weekTotal, classes, rules))
	}

	return classes, summaries
}

// closeWeek applies the weekly cap to one finished bucket, promoting banked
// (and, in the weekend-inclusive variant, weekend) hours to paid weekly
// overtime.
func closeWeek(bucket WeekBucket, weekTotal Amount, classes []HourClassification, rules RuleSet) WeekSummary {
	summary := WeekSummary{Bucket: bucket, Total: weekTotal, Banked: ZeroHours(), Promoted: ZeroHours()}

	totalBank := ZeroHours()
	for _, i := range bucket.BusinessDays {
		totalBank = totalBank.Add(classes[i].DailyBank)
	}

	if !weekTotal.GreaterThan(rules.WeeklyCap) {
		summary.Banked = totalBank
		return summary
	}

	excess := weekTotal.Sub(rules.WeeklyCap)
	fromBank := excess.Min(totalBank)

	var promoted Amount
	switch rules.Distribution {
	case DistributeProportional:
		promoted = promoteProportional(bucket.BusinessDays, classes, fromBank, totalBank)
	default:
		promoted = promoteEqualShare(bucket.BusinessDays, classes, fromBank)
	}
	summary.Promoted = promoted

	// Weekend-inclusive variant: excess beyond the week's bank is absorbed
	// directly, reclassified out of the weekend premium so no hour is
	// counted twice.
	if rules.WeekendCountsTowardCap {
		leftover := excess.Sub(promoted)
		if leftover.IsPositive() {
			summary.Promoted = summary.Promoted.Add(promoteWeekend(bucket.Days, classes, leftover))
		}
	}

	summary.Banked = totalBank.Sub(promoted)
	return summary
}

// promoteEqualShare moves amount from the daily bank to paid weekly
// overtime in equal shares across the business days that contributed bank.
// A share exceeding a day's bank is clamped and the remainder cascades to
// the other contributing days.
func promoteEqualShare(businessDays []int, classes []HourClassification, amount Amount) Amount {
	remaining := amount
	moved := ZeroHours()

	for pass := 0; pass <= len(businessDays) && remaining.IsPositive(); pass++ {
		var active []int
		for _, i := range businessDays {
			if classes[i].DailyBank.IsPositive() {
				active = append(active, i)
			}
		}
		if len(active) == 0 {
			break
		}

		clamped := false
		for n, i := range active {
			share := remaining.Div(decimal.NewFromInt(int64(len(active) - n)))
			give := share.Min(classes[i].DailyBank)
			if give.LessThan(share) {
				clamped = true
			}
			classes[i].DailyBank = classes[i].DailyBank.Sub(give)
			classes[i].WeeklyPaid = classes[i].WeeklyPaid.Add(give)
			remaining = remaining.Sub(give)
			moved = moved.Add(give)
		}
		if !clamped {
			break
		}
	}
	return moved
}

// promoteProportional moves amount from the daily bank proportionally to
// each day's banked hours. The last contributor takes the exact remainder
// so the promoted total conserves.
func promoteProportional(businessDays []int, classes []HourClassification, amount, totalBank Amount) Amount {
	if !totalBank.IsPositive() || !amount.IsPositive() {
		return ZeroHours()
	}

	var contributors []int
	for _, i := range businessDays {
		if classes[i].DailyBank.IsPositive() {
			contributors = append(contributors, i)
		}
	}

	remaining := amount
	for n, i := range contributors {
		var give Amount
		if n == len(contributors)-1 {
			give = remaining
		} else {
			give = amount.Mul(classes[i].DailyBank.Value).Div(totalBank.Value)
			give = give.Min(remaining)
		}
		give = give.Min(classes[i].DailyBank)
		classes[i].DailyBank = classes[i].DailyBank.Sub(give)
		classes[i].WeeklyPaid = classes[i].WeeklyPaid.Add(give)
		remaining = remaining.Sub(give)
	}
	return amount.Sub(remaining)
}

// promoteWeekend reclassifies up to amount from the week's weekend premium
// hours into paid weekly overtime, front to back.
func promoteWeekend(dayIdx []int, classes []HourClassification, amount Amount) Amount {
	remaining := amount
	for _, i := range dayIdx {
		if !remaining.IsPositive() {
			break
		}
		give := remaining.Min(classes[i].Weekend)
		if !give.IsPositive() {
			continue
		}
		classes[i].Weekend = classes[i].Weekend.Sub(give)
		classes[i].WeeklyPaid = classes[i].WeeklyPaid.Add(give)
		remaining = remaining.Sub(give)
	}
	return amount.Sub(remaining)
}
