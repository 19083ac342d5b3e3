/*
scenarios_test.go - Unit tests for demo scenarios

PURPOSE:
	Tests that each scenario sets up the expected state:
	- A sheet is created with its calendar
	- Punches land on the intended days
	- The resulting report shows the behavior the scenario demonstrates
*/
package api

import (
	"net/http"
	"testing"
)

func loadScenario(t *testing.T, router http.Handler, id string) SheetDTO {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/scenarios/load", LoadScenarioRequest{ScenarioID: id})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Failed to load scenario %s: status %d, body %s", id, rec.Code, rec.Body.String())
	}
	return decodeBody[SheetDTO](t, rec)
}

func reportFor(t *testing.T, router http.Handler, sheetID, query string) ReportDTO {
	t.Helper()
	rec := doJSON(t, router, http.MethodGet, "/api/sheets/"+sheetID+"/report"+query, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Failed to get report: status %d, body %s", rec.Code, rec.Body.String())
	}
	return decodeBody[ReportDTO](t, rec)
}

func TestListScenarios(t *testing.T) {
	router := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/scenarios", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Failed to list scenarios: status %d", rec.Code)
	}
	list := decodeBody[[]ScenarioDTO](t, rec)
	if len(list) != 4 {
		t.Fatalf("Expected 4 scenarios, got %d", len(list))
	}
	for _, s := range list {
		if s.ID == "" || s.Name == "" || s.Description == "" {
			t.Errorf("Scenario %+v has empty fields", s)
		}
	}
}

func TestScenario_StandardMonth(t *testing.T) {
	// GIVEN: The standard month scenario
	router := setupTestRouter(t)
	sheet := loadScenario(t, router, "standard-month")

	// THEN: Every business day is worked, nothing more
	report := reportFor(t, router, sheet.ID, "")
	if report.Summary.TotalWorked != 168 {
		t.Errorf("Expected 168 worked hours, got %v", report.Summary.TotalWorked)
	}
	if report.Summary.TotalAbsence != 0 {
		t.Errorf("Expected no absences, got %v", report.Summary.TotalAbsence)
	}
	if report.Summary.NetPay != 2500 {
		t.Errorf("Expected net pay 2500, got %v", report.Summary.NetPay)
	}
}

func TestScenario_OvertimeWeek(t *testing.T) {
	// GIVEN: The overtime week scenario
	router := setupTestRouter(t)
	sheet := loadScenario(t, router, "overtime-week")

	// THEN: One hour crosses the weekly cap and becomes paid overtime
	report := reportFor(t, router, sheet.ID, "")
	if report.Summary.TotalWorked != 173 {
		t.Errorf("Expected 173 worked hours, got %v", report.Summary.TotalWorked)
	}
	if report.Summary.TotalWeeklyPaid != 1 {
		t.Errorf("Expected 1h of weekly paid overtime, got %v", report.Summary.TotalWeeklyPaid)
	}
	if report.Summary.TotalBanked != 4 {
		t.Errorf("Expected 4h banked, got %v", report.Summary.TotalBanked)
	}
	// 2500/220 * 1.5 for the promoted hour
	if report.Summary.OvertimePay != 17.05 {
		t.Errorf("Expected overtime pay 17.05, got %v", report.Summary.OvertimePay)
	}
}

func TestScenario_AbsenceHeavy(t *testing.T) {
	// GIVEN: The absence heavy scenario
	router := setupTestRouter(t)
	sheet := loadScenario(t, router, "absence-heavy")

	// THEN: Three full days plus one half day are missing
	report := reportFor(t, router, sheet.ID, "")
	if report.Summary.TotalAbsence != 28 {
		t.Errorf("Expected 28 absence hours, got %v", report.Summary.TotalAbsence)
	}
	if report.Summary.AbsenceDeduction <= 0 {
		t.Errorf("Expected a positive deduction, got %v", report.Summary.AbsenceDeduction)
	}

	// Prorated pay scales by the worked fraction instead of deducting
	prorated := reportFor(t, router, sheet.ID, "?pay=prorated")
	if prorated.Summary.NetPay >= 2500 {
		t.Errorf("Expected prorated pay below salary, got %v", prorated.Summary.NetPay)
	}
	if prorated.Summary.NetPay <= 0 {
		t.Errorf("Expected positive prorated pay, got %v", prorated.Summary.NetPay)
	}
}

func TestScenario_WeekendShift(t *testing.T) {
	// GIVEN: The weekend shift scenario
	router := setupTestRouter(t)
	sheet := loadScenario(t, router, "weekend-shift")

	// THEN: Two Saturday mornings land in the weekend premium bucket
	report := reportFor(t, router, sheet.ID, "")
	if report.Summary.TotalWeekend != 8 {
		t.Errorf("Expected 8 weekend hours, got %v", report.Summary.TotalWeekend)
	}
	if report.Summary.TotalAbsence != 0 {
		t.Errorf("Expected no absences, got %v", report.Summary.TotalAbsence)
	}
}

func TestScenario_UnknownAndReset(t *testing.T) {
	router := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/scenarios/load", LoadScenarioRequest{ScenarioID: "no-such"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown scenario, got %d", rec.Code)
	}

	// GIVEN: Loaded scenarios
	loadScenario(t, router, "standard-month")
	loadScenario(t, router, "overtime-week")

	// WHEN: Resetting
	rec = doJSON(t, router, http.MethodPost, "/api/scenarios/reset", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("Failed to reset: status %d", rec.Code)
	}

	// THEN: No sheets remain
	rec = doJSON(t, router, http.MethodGet, "/api/sheets", nil)
	sheets := decodeBody[[]SheetDTO](t, rec)
	if len(sheets) != 0 {
		t.Errorf("Expected empty store after reset, got %d sheets", len(sheets))
	}
}
