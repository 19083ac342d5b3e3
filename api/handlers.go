/*
handlers.go - HTTP API handlers for the timesheet engine

PURPOSE:
  Exposes the timesheet engine via REST. Handles HTTP request/response,
  JSON serialization, and delegates every calculation to the engine.

ENDPOINTS:
  Sheets:
    GET    /api/sheets                List timesheet sessions
    POST   /api/sheets                Open a sheet for an employee-month
    GET    /api/sheets/{id}           Get a sheet with its calendar
    DELETE /api/sheets/{id}           Remove a sheet
    PUT    /api/sheets/{id}/days/{day} Set one day's punches
    DELETE /api/sheets/{id}/days      Bulk-clear all punches
    GET    /api/sheets/{id}/report    Compute the monthly report

  Rules:
    GET    /api/rules                 List rule sets (presets + custom)
    POST   /api/rules                 Register a custom rule set from JSON

  Scenarios:
    GET    /api/scenarios             List demo scenarios
    POST   /api/scenarios/load        Load a demo scenario
    POST   /api/scenarios/reset       Drop all sheets

REPORT SELECTION:
  GET /api/sheets/{id}/report?rules=<name>&pay=<flat|prorated>
  The rules parameter names a preset or a registered custom set; the pay
  parameter overrides the rule set's pay policy for this call.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, malformed punches, invalid rules
  - 404: Unknown sheet, day, rule set or scenario
  - 500: Internal errors
  A report with per-day punch errors is still a 200: the error list is
  part of the report, not a failure of the request.
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/warp/timesheet-engine/factory"
	"github.com/warp/timesheet-engine/store/memory"
	"github.com/warp/timesheet-engine/timesheet"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store        *memory.Store
	RulesFactory *factory.RulesFactory

	validate *validator.Validate

	// Custom rule sets registered at runtime, by name.
	custom map[string]timesheet.RuleSet
}

// NewHandler creates a handler over the given store.
func NewHandler(store *memory.Store) *Handler {
	return &Handler{
		Store:        store,
		RulesFactory: factory.NewRulesFactory(),
		validate:     validator.New(),
		custom:       make(map[string]timesheet.RuleSet),
	}
}

// rulesByName resolves a preset or custom rule set.
func (h *Handler) rulesByName(name string) (timesheet.RuleSet, bool) {
	if name == "" {
		return timesheet.DefaultRules(), true
	}
	if rules, ok := timesheet.PresetByName(name); ok {
		return rules, true
	}
	rules, ok := h.custom[name]
	return rules, ok
}

// =============================================================================
// SHEET HANDLERS
// =============================================================================

func (h *Handler) ListSheets(w http.ResponseWriter, r *http.Request) {
	sheets := h.Store.List()
	dtos := make([]SheetDTO, len(sheets))
	for i, s := range sheets {
		dtos[i] = toSheetDTO(s, false)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateSheet(w http.ResponseWriter, r *http.Request) {
	var req CreateSheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid sheet request", err)
		return
	}

	sheet, err := h.Store.Create(req.EmployeeID, req.Year, time.Month(req.Month), timesheet.Currency(req.Salary))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to create sheet", err)
		return
	}
	writeJSON(w, http.StatusCreated, toSheetDTO(sheet, true))
}

func (h *Handler) GetSheet(w http.ResponseWriter, r *http.Request) {
	sheet, err := h.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Sheet not found", err)
		return
	}
	writeJSON(w, http.StatusOK, toSheetDTO(sheet, true))
}

func (h *Handler) DeleteSheet(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, "Sheet not found", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetPunches(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid day", err)
		return
	}

	var req PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	err = h.Store.SetPunches(chi.URLParam(r, "id"), day, req.punches())
	switch {
	case errors.Is(err, memory.ErrSheetNotFound), errors.Is(err, memory.ErrDayOutOfRange):
		writeError(w, http.StatusNotFound, "Unknown sheet or day", err)
		return
	case errors.Is(err, timesheet.ErrInvalidTimeFormat):
		writeError(w, http.StatusBadRequest, "Malformed punch", err)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to set punches", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ClearPunches(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.ClearPunches(chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, "Sheet not found", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// REPORT HANDLER
// =============================================================================

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	sheet, err := h.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Sheet not found", err)
		return
	}

	rules, ok := h.rulesByName(r.URL.Query().Get("rules"))
	if !ok {
		writeError(w, http.StatusNotFound, "Unknown rule set", nil)
		return
	}
	switch pay := r.URL.Query().Get("pay"); pay {
	case "":
	case string(timesheet.PayFlat):
		rules.PayPolicy = timesheet.PayFlat
	case string(timesheet.PayProrated):
		rules.PayPolicy = timesheet.PayProrated
	default:
		writeError(w, http.StatusBadRequest, "Unknown pay policy", nil)
		return
	}

	calc := timesheet.Calculator{Rules: rules}
	report, err := calc.Calculate(sheet.Days, sheet.Salary)
	if err != nil {
		status := http.StatusInternalServerError
		if timesheet.IsClientError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, status, "Calculation failed", err)
		return
	}

	writeJSON(w, http.StatusOK, toReportDTO(sheet.ID, rules, report))
}

// =============================================================================
// RULES HANDLERS
// =============================================================================

func (h *Handler) ListRules(w http.ResponseWriter, r *http.Request) {
	var dtos []RulesDTO
	for _, preset := range timesheet.Presets() {
		dtos = append(dtos, RulesDTO{Config: factory.ToDocument(preset), BuiltIn: true})
	}
	for _, rules := range h.custom {
		dtos = append(dtos, RulesDTO{Config: factory.ToDocument(rules)})
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateRules(w http.ResponseWriter, r *http.Request) {
	var doc factory.RulesJSON
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rules, err := h.RulesFactory.FromDocument(doc)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid rule set", err)
		return
	}
	if _, taken := timesheet.PresetByName(rules.Name); taken {
		writeError(w, http.StatusConflict, "Name collides with a built-in rule set", nil)
		return
	}

	h.custom[rules.Name] = rules
	writeJSON(w, http.StatusCreated, RulesDTO{Config: factory.ToDocument(rules)})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	resp := errorResponse{Error: msg}
	if err != nil {
		resp.Detail = err.Error()
	}
	writeJSON(w, status, resp)
}
