// Package memory holds timesheet sessions in process memory.
//
// A Sheet is one employee-month of punch inputs: it is created for a
// month/year, mutated only by punch entry, and cleared only in bulk,
// mirroring the lifecycle of the calendar the caller renders. Nothing is
// written to disk; the engine's callers own durability if they want any.
package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/warp/timesheet-engine/timesheet"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrSheetNotFound = fmt.Errorf("sheet not found")
	ErrDayOutOfRange = fmt.Errorf("day out of range")
)

// =============================================================================
// SHEET - One employee-month of punches
// =============================================================================

type Sheet struct {
	ID         string
	EmployeeID string
	Year       int
	Month      time.Month
	Salary     timesheet.Amount
	Days       []timesheet.DayRecord
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (s *Sheet) clone() *Sheet {
	out := *s
	out.Days = make([]timesheet.DayRecord, len(s.Days))
	copy(out.Days, s.Days)
	return &out
}

// =============================================================================
// STORE
// =============================================================================

type Store struct {
	mu     sync.RWMutex
	sheets map[string]*Sheet
	now    func() time.Time
}

func NewStore() *Store {
	return &Store{
		sheets: make(map[string]*Sheet),
		now:    time.Now,
	}
}

// Create opens a new sheet with the empty calendar for the month.
func (st *Store) Create(employeeID string, year int, month time.Month, salary timesheet.Amount) (*Sheet, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("invalid month %d", month)
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	sheet := &Sheet{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		Salary:     salary,
		Days:       timesheet.BuildMonth(year, month),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	st.sheets[sheet.ID] = sheet
	return sheet.clone(), nil
}

// Get returns a copy of the sheet; callers never share the stored slice
// with a calculation pass.
func (st *Store) Get(id string) (*Sheet, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	sheet, ok := st.sheets[id]
	if !ok {
		return nil, ErrSheetNotFound
	}
	return sheet.clone(), nil
}

// List returns all sheets ordered by creation time.
func (st *Store) List() []*Sheet {
	st.mu.RLock()
	defer st.mu.RUnlock()

	out := make([]*Sheet, 0, len(st.sheets))
	for _, s := range st.sheets {
		out = append(out, s.clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// SetPunches records the punches for one calendar day (1-based). Malformed
// punches are rejected at ingestion, before they reach any calculation.
func (st *Store) SetPunches(id string, day int, punches [4]string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	sheet, ok := st.sheets[id]
	if !ok {
		return ErrSheetNotFound
	}
	if day < 1 || day > len(sheet.Days) {
		return ErrDayOutOfRange
	}

	rec, err := timesheet.NewDayRecord(sheet.Days[day-1].Date, punches)
	if err != nil {
		return err
	}
	sheet.Days[day-1] = rec
	sheet.UpdatedAt = st.now()
	return nil
}

// ClearPunches bulk-clears every punch of the sheet. Individual days are
// never deleted.
func (st *Store) ClearPunches(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	sheet, ok := st.sheets[id]
	if !ok {
		return ErrSheetNotFound
	}
	sheet.Days = timesheet.BuildMonth(sheet.Year, sheet.Month)
	sheet.UpdatedAt = st.now()
	return nil
}

// Delete removes a sheet.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sheets[id]; !ok {
		return ErrSheetNotFound
	}
	delete(st.sheets, id)
	return nil
}

// Reset drops every sheet. Used by the demo scenario loaders.
func (st *Store) Reset() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sheets = make(map[string]*Sheet)
}
