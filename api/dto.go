/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's decimal-based model from the external API contract: hours
  and money cross the wire as plain numbers, punches as "HH:MM" strings.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Request types carry validator struct tags; handlers validate before
  touching the store or the engine.
*/
package api

import (
	"time"

	"github.com/warp/timesheet-engine/factory"
	"github.com/warp/timesheet-engine/store/memory"
	"github.com/warp/timesheet-engine/timesheet"
)

// =============================================================================
// SHEET TYPES
// =============================================================================

// CreateSheetRequest opens a timesheet for one employee-month.
type CreateSheetRequest struct {
	EmployeeID string  `json:"employee_id" validate:"required"`
	Year       int     `json:"year" validate:"gte=2000,lte=2100"`
	Month      int     `json:"month" validate:"gte=1,lte=12"`
	Salary     float64 `json:"salary" validate:"gte=0"`
}

// PunchRequest sets the four punches of one calendar day. Empty strings
// mean the punch was not entered.
type PunchRequest struct {
	MorningIn    string `json:"morning_in"`
	MorningOut   string `json:"morning_out"`
	AfternoonIn  string `json:"afternoon_in"`
	AfternoonOut string `json:"afternoon_out"`
}

func (p PunchRequest) punches() [4]string {
	return [4]string{p.MorningIn, p.MorningOut, p.AfternoonIn, p.AfternoonOut}
}

// SheetDTO represents a timesheet session in API responses.
type SheetDTO struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	Year       int      `json:"year"`
	Month      int      `json:"month"`
	Salary     float64  `json:"salary"`
	Days       []DayDTO `json:"days,omitempty"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

// DayDTO is one calendar day with its punches.
type DayDTO struct {
	Day     int       `json:"day"`
	Date    string    `json:"date"`
	Weekday string    `json:"weekday"`
	Punches [4]string `json:"punches"`
}

func toSheetDTO(s *memory.Sheet, includeDays bool) SheetDTO {
	dto := SheetDTO{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		Year:       s.Year,
		Month:      int(s.Month),
		Salary:     s.Salary.Float64(),
		CreatedAt:  s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  s.UpdatedAt.Format(time.RFC3339),
	}
	if includeDays {
		dto.Days = make([]DayDTO, len(s.Days))
		for i, d := range s.Days {
			dto.Days[i] = DayDTO{
				Day:     i + 1,
				Date:    d.Date.Format("2006-01-02"),
				Weekday: d.Weekday.String(),
				Punches: d.Punches,
			}
		}
	}
	return dto
}

// =============================================================================
// REPORT TYPES
// =============================================================================

// DayBreakdownDTO is one day's derived values.
type DayBreakdownDTO struct {
	Day            int     `json:"day"`
	Date           string  `json:"date"`
	Weekday        string  `json:"weekday"`
	Worked         float64 `json:"worked"`
	Normal         float64 `json:"normal"`
	DailyBank      float64 `json:"daily_bank"`
	WeeklyPaid     float64 `json:"weekly_paid"`
	Weekend        float64 `json:"weekend"`
	Absence        float64 `json:"absence"`
	FullDayAbsence bool    `json:"full_day_absence,omitempty"`
	Failed         bool    `json:"failed,omitempty"`
}

// WeekSummaryDTO is one week's cap outcome.
type WeekSummaryDTO struct {
	Days     []int   `json:"days"`
	Total    float64 `json:"total"`
	Banked   float64 `json:"banked"`
	Promoted float64 `json:"promoted"`
}

// PayrollSummaryDTO is the month-level reconciliation.
type PayrollSummaryDTO struct {
	Salary           float64 `json:"salary"`
	HourlyRate       float64 `json:"hourly_rate"`
	TotalWorked      float64 `json:"total_worked"`
	TotalBanked      float64 `json:"total_banked"`
	TotalWeeklyPaid  float64 `json:"total_weekly_paid"`
	TotalWeekend     float64 `json:"total_weekend"`
	TotalAbsence     float64 `json:"total_absence"`
	ExpectedHours    float64 `json:"expected_hours"`
	OvertimePay      float64 `json:"overtime_pay"`
	AbsenceDeduction float64 `json:"absence_deduction"`
	NetPay           float64 `json:"net_pay"`
	PayPolicy        string  `json:"pay_policy"`
}

// DayErrorDTO reports a day that failed aggregation.
type DayErrorDTO struct {
	Day     int    `json:"day"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

// ReportDTO is the full calculation snapshot.
type ReportDTO struct {
	SheetID string            `json:"sheet_id"`
	Rules   string            `json:"rules"`
	Days    []DayBreakdownDTO `json:"days"`
	Weeks   []WeekSummaryDTO  `json:"weeks"`
	Summary PayrollSummaryDTO `json:"summary"`
	Errors  []DayErrorDTO     `json:"errors,omitempty"`
}

func toReportDTO(sheetID string, rules timesheet.RuleSet, report *timesheet.MonthlyReport) ReportDTO {
	dto := ReportDTO{
		SheetID: sheetID,
		Rules:   rules.Name,
		Days:    make([]DayBreakdownDTO, len(report.Days)),
		Weeks:   make([]WeekSummaryDTO, len(report.Weeks)),
		Summary: PayrollSummaryDTO{
			Salary:           report.Summary.Salary.Float64(),
			HourlyRate:       report.Summary.HourlyRate.Float64(),
			TotalWorked:      report.Summary.TotalWorked.Round(2).Float64(),
			TotalBanked:      report.Summary.TotalBanked.Round(2).Float64(),
			TotalWeeklyPaid:  report.Summary.TotalWeeklyPaid.Round(2).Float64(),
			TotalWeekend:     report.Summary.TotalWeekend.Round(2).Float64(),
			TotalAbsence:     report.Summary.TotalAbsence.Round(2).Float64(),
			ExpectedHours:    report.Summary.ExpectedHours.Float64(),
			OvertimePay:      report.Summary.OvertimePay.Float64(),
			AbsenceDeduction: report.Summary.AbsenceDeduction.Float64(),
			NetPay:           report.Summary.NetPay.Float64(),
			PayPolicy:        string(report.Summary.PayPolicy),
		},
	}

	for i, d := range report.Days {
		dto.Days[i] = DayBreakdownDTO{
			Day:            i + 1,
			Date:           d.Record.Date.Format("2006-01-02"),
			Weekday:        d.Record.Weekday.String(),
			Worked:         d.Worked.Round(2).Float64(),
			Normal:         d.Class.Normal.Round(2).Float64(),
			DailyBank:      d.Class.DailyBank.Round(2).Float64(),
			WeeklyPaid:     d.Class.WeeklyPaid.Round(2).Float64(),
			Weekend:        d.Class.Weekend.Round(2).Float64(),
			Absence:        d.Class.Absence.Round(2).Float64(),
			FullDayAbsence: d.Class.FullDayAbsence,
			Failed:         d.Class.Failed,
		}
	}
	for i, w := range report.Weeks {
		dto.Weeks[i] = WeekSummaryDTO{
			Days:     weekDays(w),
			Total:    w.Total.Round(2).Float64(),
			Banked:   w.Banked.Round(2).Float64(),
			Promoted: w.Promoted.Round(2).Float64(),
		}
	}
	for _, e := range report.Errors {
		dto.Errors = append(dto.Errors, DayErrorDTO{
			Day:     e.Index + 1,
			Date:    e.Date.Format("2006-01-02"),
			Message: e.Err.Error(),
		})
	}
	return dto
}

func weekDays(w timesheet.WeekSummary) []int {
	out := make([]int, len(w.Bucket.Days))
	for i, d := range w.Bucket.Days {
		out[i] = d + 1
	}
	return out
}

// =============================================================================
// RULES AND SCENARIO TYPES
// =============================================================================

// RulesDTO wraps a rule document with its origin.
type RulesDTO struct {
	Config  factory.RulesJSON `json:"config"`
	BuiltIn bool              `json:"built_in"`
}

// ScenarioDTO describes a loadable demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoadScenarioRequest selects a scenario to load.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id" validate:"required"`
}
