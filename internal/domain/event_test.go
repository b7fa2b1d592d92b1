package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventValidate_Valid(t *testing.T) {
	e := &Event{Name: "Expo", LocationID: "loc-1", StartDate: "2026-03-01", EndDate: "2026-03-04"}
	assert.NoError(t, e.Validate())
}

func TestEventValidate_EndBeforeStart(t *testing.T) {
	e := &Event{Name: "Expo", LocationID: "loc-1", StartDate: "2026-03-04", EndDate: "2026-03-01"}
	err := e.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before start")
}

func TestEventValidate_BadDate(t *testing.T) {
	e := &Event{Name: "Expo", LocationID: "loc-1", StartDate: "03/01/2026", EndDate: "2026-03-04"}
	err := e.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestEventValidate_BadStatus(t *testing.T) {
	e := &Event{Name: "Expo", LocationID: "loc-1", StartDate: "2026-03-01", EndDate: "2026-03-01", Status: "done"}
	assert.Error(t, e.Validate())
}

func TestPhaseValidate_EndBeforeStart(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	p := &Phase{Name: "EVENT", StartAt: start, EndAt: start.Add(-time.Hour)}
	assert.Error(t, p.Validate())
	assert.Equal(t, PhaseEvent, p.Kind())
}

func TestAllocationValidate_Negative(t *testing.T) {
	a := &Allocation{Date: "2026-03-01", EffortHours: -1}
	assert.Error(t, a.Validate())
}

func TestDateRange(t *testing.T) {
	keys, err := DateRange("2025-12-30", "2026-01-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-12-30", "2025-12-31", "2026-01-01", "2026-01-02"}, keys)

	_, err = DateRange("2026-01-02", "2026-01-01")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	n, err := DaysBetween("2026-02-27", "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
