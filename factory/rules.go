/*
Package factory provides JSON to Go rule-set conversion.

PURPOSE:
  Converts JSON rule documents into timesheet.RuleSet values. This enables
  rule configuration without code changes - HR can define the workday
  standard, the weekly cap and the pay multipliers in JSON, and the
  factory creates the proper Go struct.

JSON SCHEMA:
  {
    "name": "night-crew",
    "daily_standard_hours": 8,
    "weekly_cap_hours": 44,
    "standard_monthly_hours": 220,
    "weekly_paid_multiplier": 1.5,
    "weekend_multiplier": 2.0,
    "distribution": "equal",
    "pay_policy": "flat",
    "weekend_counts_toward_cap": false
  }

KEY FEATURES:
  - Struct-tag validation before conversion
  - Sensible defaults for the distribution and pay policy
  - Round-trips: a RuleSet converts back to its JSON document

USAGE:
  f := factory.NewRulesFactory()
  rules, err := f.Parse(jsonBytes)

SEE ALSO:
  - timesheet/policy.go: RuleSet definition
  - timesheet/presets.go: Go-based built-in rule sets
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/warp/timesheet-engine/timesheet"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// RulesJSON is the JSON representation of a rule set.
type RulesJSON struct {
	Name                   string  `json:"name" validate:"required"`
	DailyStandardHours     float64 `json:"daily_standard_hours" validate:"gt=0,lte=24"`
	WeeklyCapHours         float64 `json:"weekly_cap_hours" validate:"gt=0,lte=168"`
	StandardMonthlyHours   float64 `json:"standard_monthly_hours" validate:"gt=0"`
	WeeklyPaidMultiplier   float64 `json:"weekly_paid_multiplier" validate:"gte=1"`
	WeekendMultiplier      float64 `json:"weekend_multiplier" validate:"gte=1"`
	Distribution           string  `json:"distribution" validate:"omitempty,oneof=equal proportional"`
	PayPolicy              string  `json:"pay_policy" validate:"omitempty,oneof=flat prorated"`
	WeekendCountsTowardCap bool    `json:"weekend_counts_toward_cap"`
}

// =============================================================================
// RULES FACTORY
// =============================================================================

type RulesFactory struct {
	validate *validator.Validate
}

func NewRulesFactory() *RulesFactory {
	return &RulesFactory{validate: validator.New()}
}

// Parse builds a RuleSet from a JSON document.
func (f *RulesFactory) Parse(data []byte) (timesheet.RuleSet, error) {
	var doc RulesJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return timesheet.RuleSet{}, fmt.Errorf("parse rules: %w", err)
	}
	return f.FromDocument(doc)
}

// FromDocument converts a validated document into a RuleSet.
func (f *RulesFactory) FromDocument(doc RulesJSON) (timesheet.RuleSet, error) {
	if err := f.validate.Struct(doc); err != nil {
		return timesheet.RuleSet{}, fmt.Errorf("validate rules: %w", err)
	}

	// Defaults for the optional policy fields.
	distribution := timesheet.Distribution(doc.Distribution)
	if distribution == "" {
		distribution = timesheet.DistributeEqual
	}
	payPolicy := timesheet.PayPolicy(doc.PayPolicy)
	if payPolicy == "" {
		payPolicy = timesheet.PayFlat
	}

	rules := timesheet.RuleSet{
		Name:                   doc.Name,
		DailyStandard:          timesheet.Hours(doc.DailyStandardHours),
		WeeklyCap:              timesheet.Hours(doc.WeeklyCapHours),
		StandardMonthlyHours:   timesheet.Hours(doc.StandardMonthlyHours),
		WeeklyPaidMultiplier:   decimal.NewFromFloat(doc.WeeklyPaidMultiplier),
		WeekendMultiplier:      decimal.NewFromFloat(doc.WeekendMultiplier),
		Distribution:           distribution,
		PayPolicy:              payPolicy,
		WeekendCountsTowardCap: doc.WeekendCountsTowardCap,
	}
	if err := rules.Validate(); err != nil {
		return timesheet.RuleSet{}, err
	}
	return rules, nil
}

// ToDocument converts a RuleSet back to its JSON document form, for listing
// rule sets over the API.
func ToDocument(rules timesheet.RuleSet) RulesJSON {
	return RulesJSON{
		Name:                   rules.Name,
		DailyStandardHours:     rules.DailyStandard.Float64(),
		WeeklyCapHours:         rules.WeeklyCap.Float64(),
		StandardMonthlyHours:   rules.StandardMonthlyHours.Float64(),
		WeeklyPaidMultiplier:   mustFloat(rules.WeeklyPaidMultiplier),
		WeekendMultiplier:      mustFloat(rules.WeekendMultiplier),
		Distribution:           string(rules.Distribution),
		PayPolicy:              string(rules.PayPolicy),
		WeekendCountsTowardCap: rules.WeekendCountsTowardCap,
	}
}

func mustFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
