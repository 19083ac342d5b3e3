/*
scenarios.go - Preloaded demo scenarios

PURPOSE:
  Provides ready-made timesheets that exercise the interesting corners of
  the engine: a clean standard month, a week that crosses the weekly cap,
  a month with heavy absences, and weekend shift work. Loading a scenario
  creates a sheet in the store and fills in its punches; the report
  endpoints then work on it like on any hand-entered sheet.

USAGE:
  GET  /api/scenarios          -> list available scenarios
  POST /api/scenarios/load     -> {"scenario_id": "overtime-week"}
  POST /api/scenarios/reset    -> drop all sheets
*/
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/warp/timesheet-engine/store/memory"
	"github.com/warp/timesheet-engine/timesheet"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

type scenario struct {
	ID          string
	Name        string
	Description string
	Load        func(store *memory.Store) (*memory.Sheet, error)
}

// punchDays writes the same four punches into a run of calendar days.
func punchDays(store *memory.Store, id string, days []int, punches [4]string) error {
	for _, day := range days {
		if err := store.SetPunches(id, day, punches); err != nil {
			return err
		}
	}
	return nil
}

// businessDaysOf lists the 1-based business days of a sheet's month.
func businessDaysOf(sheet *memory.Sheet) []int {
	var days []int
	for i, rec := range sheet.Days {
		if rec.IsBusinessDay() {
			days = append(days, i+1)
		}
	}
	return days
}

var scenarios = []scenario{
	{
		ID:          "standard-month",
		Name:        "Standard month",
		Description: "Every business day of June 2025 worked 08:00-12:00, 13:00-17:00. No overtime, no absences.",
		Load: func(store *memory.Store) (*memory.Sheet, error) {
			sheet, err := store.Create("demo-standard", 2025, time.June, timesheet.Currency(2500))
			if err != nil {
				return nil, err
			}
			eight := [4]string{"08:00", "12:00", "13:00", "17:00"}
			if err := punchDays(store, sheet.ID, businessDaysOf(sheet), eight); err != nil {
				return nil, err
			}
			return store.Get(sheet.ID)
		},
	},
	{
		ID:          "overtime-week",
		Name:        "Overtime week",
		Description: "One week of June 2025 at nine hours a day. The weekly total crosses the cap, so part of the banked hours is promoted to paid overtime.",
		Load: func(store *memory.Store) (*memory.Sheet, error) {
			sheet, err := store.Create("demo-overtime", 2025, time.June, timesheet.Currency(2500))
			if err != nil {
				return nil, err
			}
			eight := [4]string{"08:00", "12:00", "13:00", "17:00"}
			nine := [4]string{"08:00", "12:00", "13:00", "18:00"}
			if err := punchDays(store, sheet.ID, businessDaysOf(sheet), eight); err != nil {
				return nil, err
			}
			// June 2-6 is the first full Monday-Friday run.
			if err := punchDays(store, sheet.ID, []int{2, 3, 4, 5, 6}, nine); err != nil {
				return nil, err
			}
			return store.Get(sheet.ID)
		},
	},
	{
		ID:          "absence-heavy",
		Name:        "Absence-heavy month",
		Description: "June 2025 with several missed business days and one half day. Shows absence deductions under flat pay and the prorated alternative.",
		Load: func(store *memory.Store) (*memory.Sheet, error) {
			sheet, err := store.Create("demo-absence", 2025, time.June, timesheet.Currency(2500))
			if err != nil {
				return nil, err
			}
			eight := [4]string{"08:00", "12:00", "13:00", "17:00"}
			morning := [4]string{"08:00", "12:00", "", ""}
			worked := businessDaysOf(sheet)
			// Skip three full days and cut one short.
			skip := map[int]bool{4: true, 12: true, 20: true}
			for _, day := range worked {
				if skip[day] {
					continue
				}
				punches := eight
				if day == 25 {
					punches = morning
				}
				if err := store.SetPunches(sheet.ID, day, punches); err != nil {
					return nil, err
				}
			}
			return store.Get(sheet.ID)
		},
	},
	{
		ID:          "weekend-shift",
		Name:        "Weekend shift work",
		Description: "A standard June 2025 plus two worked Saturdays. Weekend hours are paid at the premium multiplier; pair with the shift-day rule set to see the cap counting weekends.",
		Load: func(store *memory.Store) (*memory.Sheet, error) {
			sheet, err := store.Create("demo-weekend", 2025, time.June, timesheet.Currency(2500))
			if err != nil {
				return nil, err
			}
			eight := [4]string{"08:00", "12:00", "13:00", "17:00"}
			saturday := [4]string{"08:00", "12:00", "", ""}
			if err := punchDays(store, sheet.ID, businessDaysOf(sheet), eight); err != nil {
				return nil, err
			}
			// June 7 and 14 are Saturdays.
			if err := punchDays(store, sheet.ID, []int{7, 14}, saturday); err != nil {
				return nil, err
			}
			return store.Get(sheet.ID)
		},
	},
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	dtos := make([]ScenarioDTO, len(scenarios))
	for i, s := range scenarios {
		dtos[i] = ScenarioDTO{ID: s.ID, Name: s.Name, Description: s.Description}
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scenario request", err)
		return
	}

	for _, s := range scenarios {
		if s.ID != req.ScenarioID {
			continue
		}
		sheet, err := s.Load(h.Store)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
			return
		}
		writeJSON(w, http.StatusCreated, toSheetDTO(sheet, true))
		return
	}
	writeError(w, http.StatusNotFound, "Unknown scenario", nil)
}

func (h *Handler) ResetStore(w http.ResponseWriter, r *http.Request) {
	h.Store.Reset()
	w.WriteHeader(http.StatusNoContent)
}
