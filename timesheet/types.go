/*
Package timesheet implements the monthly timesheet calculation engine.

PURPOSE:
  This package contains the pure computation core for a monthly timesheet:
  given an ordered sequence of day records (date, weekday, up to four clock
  punches) and a monthly salary, it derives worked hours, overtime buckets,
  absences, deductions and net pay.

KEY CONCEPTS IN THIS FILE (types.go):
  - Amount: A quantity with a unit (hours or currency)
  - DayRecord: One calendar day with its clock punches
  - HourClassification: A day's hours split into pay categories
  - PunchSlot: Which of the four punch positions a value occupies

DESIGN PRINCIPLES:
  1. Purity: Every calculation is a function of its inputs; repeated calls
     with the same inputs produce bit-identical results
  2. Precision: Uses decimal.Decimal to avoid floating-point drift
  3. Locality: A malformed day is marked failed and skipped; it never
     aborts the month

USAGE:
  days := timesheet.BuildMonth(2025, time.June)
  days[2].Punches = [4]string{"08:00", "12:00", "13:30", "18:00"}

  calc := timesheet.Calculator{Rules: timesheet.DefaultRules()}
  report, err := calc.Calculate(days, timesheet.Currency(2500))

SEE ALSO:
  - clock.go: "HH:MM" parsing and duration with overnight wrap
  - policy.go: Rule set and the overtime classification fold
  - payroll.go: Currency reconciliation
  - report.go: Report assembly
*/
package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Quantity with unit (hours worked or currency)
// =============================================================================

type Amount struct {
	Value decimal.Decimal
	Unit  Unit
}

type Unit string

const (
	UnitHours    Unit = "hours"
	UnitCurrency Unit = "currency"
)

func NewAmount(value float64, unit Unit) Amount {
	return Amount{Value: decimal.NewFromFloat(value), Unit: unit}
}

// Hours builds an hour amount.
func Hours(value float64) Amount { return NewAmount(value, UnitHours) }

// Currency builds a currency amount.
func Currency(value float64) Amount { return NewAmount(value, UnitCurrency) }

// HoursFromMinutes converts whole minutes to an hour amount rounded to two
// decimal places (half-up on the hundredths digit).
func HoursFromMinutes(minutes int) Amount {
	v := decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60)).Round(2)
	return Amount{Value: v, Unit: UnitHours}
}

func ZeroHours() Amount    { return Amount{Value: decimal.Zero, Unit: UnitHours} }
func ZeroCurrency() Amount { return Amount{Value: decimal.Zero, Unit: UnitCurrency} }

func (a Amount) Zero() Amount                 { return Amount{Value: decimal.Zero, Unit: a.Unit} }
func (a Amount) Add(b Amount) Amount          { return Amount{Value: a.Value.Add(b.Value), Unit: a.Unit} }
func (a Amount) Sub(b Amount) Amount          { return Amount{Value: a.Value.Sub(b.Value), Unit: a.Unit} }
func (a Amount) Mul(s decimal.Decimal) Amount { return Amount{Value: a.Value.Mul(s), Unit: a.Unit} }
func (a Amount) Div(s decimal.Decimal) Amount { return Amount{Value: a.Value.Div(s), Unit: a.Unit} }
func (a Amount) Round(places int32) Amount    { return Amount{Value: a.Value.Round(places), Unit: a.Unit} }
func (a Amount) IsNegative() bool             { return a.Value.IsNegative() }
func (a Amount) IsZero() bool                 { return a.Value.IsZero() }
func (a Amount) IsPositive() bool             { return a.Value.IsPositive() }
func (a Amount) GreaterThan(b Amount) bool    { return a.Value.GreaterThan(b.Value) }
func (a Amount) LessThan(b Amount) bool       { return a.Value.LessThan(b.Value) }
func (a Amount) Min(b Amount) Amount          { if a.LessThan(b) { return a }; return b }
func (a Amount) Max(b Amount) Amount          { if a.GreaterThan(b) { return a }; return b }

// Float64 returns the value for transport layers. Calculation code must stay
// on decimals.
func (a Amount) Float64() float64 {
	f, _ := a.Value.Float64()
	return f
}

// =============================================================================
// PUNCH SLOTS - The four clock positions of a day
// =============================================================================

type PunchSlot int

const (
	PunchMorningIn PunchSlot = iota
	PunchMorningOut
	PunchAfternoonIn
	PunchAfternoonOut
)

func (s PunchSlot) String() string {
	switch s {
	case PunchMorningIn:
		return "morning-in"
	case PunchMorningOut:
		return "morning-out"
	case PunchAfternoonIn:
		return "afternoon-in"
	case PunchAfternoonOut:
		return "afternoon-out"
	default:
		return "unknown"
	}
}

// =============================================================================
// DAY RECORD - One calendar day with its punches
// =============================================================================

// DayRecord is one calendar day of the timesheet. Punches come in
// (in, out) pairs: slots 0/1 are the morning pair, slots 2/3 the afternoon
// pair. An empty string means the punch was not entered; a pair only counts
// when both of its ends are present.
type DayRecord struct {
	Date    time.Time
	Weekday time.Weekday
	Punches [4]string
}

// NewDayRecord builds a validated day record. Every non-empty punch must be
// a well-formed clock value; malformed punches are rejected at ingestion.
func NewDayRecord(date time.Time, punches [4]string) (DayRecord, error) {
	rec := DayRecord{
		Date:    time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Weekday: date.Weekday(),
		Punches: punches,
	}
	if err := rec.ValidatePunches(); err != nil {
		return DayRecord{}, err
	}
	return rec, nil
}

// ValidatePunches checks every entered punch for well-formedness.
func (d DayRecord) ValidatePunches() error {
	for slot, p := range d.Punches {
		if p == "" {
			continue
		}
		if _, err := ParseClock(p); err != nil {
			return &InvalidTimeError{Value: p, Slot: PunchSlot(slot)}
		}
	}
	return nil
}

// PairPresent reports whether both ends of pair 0 (morning) or 1 (afternoon)
// were entered.
func (d DayRecord) PairPresent(pair int) bool {
	return d.Punches[pair*2] != "" && d.Punches[pair*2+1] != ""
}

// HasAnyPunch reports whether any of the four punches was entered. The
// distinction between "no punches at all" and "punches with zero net time"
// drives the full-day-absence classification.
func (d DayRecord) HasAnyPunch() bool {
	for _, p := range d.Punches {
		if p != "" {
			return true
		}
	}
	return false
}

func (d DayRecord) IsWeekend() bool {
	return d.Weekday == time.Saturday || d.Weekday == time.Sunday
}

func (d DayRecord) IsBusinessDay() bool { return !d.IsWeekend() }

// =============================================================================
// HOUR CLASSIFICATION - A day's hours split into pay categories
// =============================================================================

// HourClassification is the derived split of one day's worked hours.
//
// Invariant: Normal + DailyBank + WeeklyPaid + Weekend never exceeds the
// day's raw worked hours; reclassification at week close moves hours between
// DailyBank and WeeklyPaid, it never mints them.
type HourClassification struct {
	// Normal covers hours up to the daily standard on business days.
	Normal Amount

	// DailyBank holds hours beyond the daily standard that stay unpaid
	// pending the weekly cap check.
	DailyBank Amount

	// WeeklyPaid holds hours promoted out of the bank (or out of weekend
	// premium time in the weekend-inclusive variant) once the week total
	// crosses the legal cap.
	WeeklyPaid Amount

	// Weekend covers all hours worked on Saturday or Sunday.
	Weekend Amount

	// Absence is the shortfall against the daily standard on business days.
	Absence Amount

	// FullDayAbsence marks a business day with no punches at all, as
	// opposed to a partial clock record.
	FullDayAbsence bool

	// Failed marks a day whose punches could not be parsed. A failed day
	// contributes nothing to any bucket.
	Failed bool
}

func emptyClassification() HourClassification {
	return HourClassification{
		Normal:     ZeroHours(),
		DailyBank:  ZeroHours(),
		WeeklyPaid: ZeroHours(),
		Weekend:    ZeroHours(),
		Absence:    ZeroHours(),
	}
}

// Classified returns the sum of all pay categories for the day.
func (c HourClassification) Classified() Amount {
	return c.Normal.Add(c.DailyBank).Add(c.WeeklyPaid).Add(c.Weekend)
}
