/*
presets.go - Named rule-set variants

PURPOSE:
  The drafts this engine consolidates carried several mutually inconsistent
  rule constants (8h vs 8.5h vs 11h workdays, flat vs pro-rated pay). Each
  survives here as a named preset; DefaultRules is the canonical set.

AVAILABLE PRESETS:
  DefaultRules:     8h day, 44h cap, 220h month, equal-share promotion,
                    1.5x weekly overtime, 2.0x weekend, flat pay
  ExtendedDayRules: 8.5h day (08:00-12:00 + 13:30-18:00 pattern)
  ShiftDayRules:    11h day for compressed shift rosters, pro-rated pay

CUSTOMIZATION:
  These are starting points. factory.RulesFactory builds arbitrary rule
  sets from a JSON document.
*/
package timesheet

import "github.com/shopspring/decimal"

// DefaultRules returns the canonical rule set: 8h daily standard, 44h
// weekly cap, 220h monthly divisor, equal-share promotion, flat pay.
func DefaultRules() RuleSet {
	return RuleSet{
		Name:                 "default",
		DailyStandard:        Hours(8),
		WeeklyCap:            Hours(44),
		StandardMonthlyHours: Hours(220),
		WeeklyPaidMultiplier: decimal.NewFromFloat(1.5),
		WeekendMultiplier:    decimal.NewFromInt(2),
		Distribution:         DistributeEqual,
		PayPolicy:            PayFlat,
	}
}

// ExtendedDayRules returns the 8.5-hour workday variant.
func ExtendedDayRules() RuleSet {
	r := DefaultRules()
	r.Name = "extended-day"
	r.DailyStandard = Hours(8.5)
	return r
}

// ShiftDayRules returns the 11-hour compressed shift variant with
// pro-rated pay and weekend hours counting toward the weekly cap.
func ShiftDayRules() RuleSet {
	r := DefaultRules()
	r.Name = "shift-day"
	r.DailyStandard = Hours(11)
	r.PayPolicy = PayProrated
	r.WeekendCountsTowardCap = true
	return r
}

// Presets lists all built-in rule sets, canonical first.
func Presets() []RuleSet {
	return []RuleSet{DefaultRules(), ExtendedDayRules(), ShiftDayRules()}
}

// PresetByName returns the named preset, or false when unknown.
func PresetByName(name string) (RuleSet, bool) {
	for _, r := range Presets() {
		if r.Name == name {
			return r, true
		}
	}
	return RuleSet{}, false
}
