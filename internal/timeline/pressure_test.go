package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemainingEffort(t *testing.T) {
	assert.Equal(t, 6.0, RemainingEffort(10, 4))
	assert.Equal(t, 0.0, RemainingEffort(10, 12), "over-allocation clamps to zero")
}

func TestRemainingDays(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		deadline time.Time
		want     int
	}{
		{"exactly one day", now.Add(24 * time.Hour), 1},
		{"partial day rounds up", now.Add(36 * time.Hour), 2},
		{"one minute left", now.Add(time.Minute), 1},
		{"deadline now", now, 0},
		{"past deadline", now.Add(-48 * time.Hour), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemainingDays(now, tt.deadline))
		})
	}
}

func TestDeadlinePressure(t *testing.T) {
	assert.True(t, DeadlinePressure(0.5, 1))
	assert.False(t, DeadlinePressure(0, 5), "no remaining effort")
	assert.False(t, DeadlinePressure(40, 0), "no remaining days")
}

// TestPressure_Invariant_Monotonic checks that allocating more never raises
// remaining effort and that running out of days always clears pressure.
func TestPressure_Invariant_Monotonic(t *testing.T) {
	for estimate := 0.0; estimate <= 20; estimate += 2.5 {
		prev := RemainingEffort(estimate, 0)
		for allocated := 0.0; allocated <= 25; allocated += 0.5 {
			cur := RemainingEffort(estimate, allocated)
			assert.LessOrEqual(t, cur, prev, "estimate %g allocated %g", estimate, allocated)
			assert.False(t, DeadlinePressure(cur, 0), "zero days never yields pressure")
			prev = cur
		}
	}
}

func TestEvaluateTaskPressure(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	deadline := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)

	got, err := EvaluateTaskPressure(TaskLoad{TaskID: "t1", EstimateHours: 20, AllocatedHours: 12, Deadline: &deadline}, now)
	require.NoError(t, err)
	assert.Equal(t, TaskPressure{
		TaskID:               "t1",
		RemainingEffortHours: 8,
		RemainingDays:        4,
		RequiredDailyHours:   2,
		IsUnderPressure:      true,
	}, got)
}

func TestEvaluateTaskPressure_NoDeadline(t *testing.T) {
	got, err := EvaluateTaskPressure(TaskLoad{TaskID: "t1", EstimateHours: 20}, time.Now())
	require.NoError(t, err)
	assert.False(t, got.IsUnderPressure)
	assert.Zero(t, got.RemainingDays)
	assert.Equal(t, 20.0, got.RemainingEffortHours)
}

func TestEvaluateTaskPressure_RejectsNegative(t *testing.T) {
	_, err := EvaluateTaskPressure(TaskLoad{TaskID: "t1", EstimateHours: -1}, time.Now())
	assert.ErrorIs(t, err, ErrNegativeEffort)
	_, err = EvaluateTaskPressure(TaskLoad{TaskID: "t1", EstimateHours: 1, AllocatedHours: -1}, time.Now())
	assert.ErrorIs(t, err, ErrNegativeEffort)
}

func TestEvaluatePressures_Ordering(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	soon := now.AddDate(0, 0, 2)
	later := now.AddDate(0, 0, 9)

	got, err := EvaluatePressures([]TaskLoad{
		{TaskID: "done", EstimateHours: 4, AllocatedHours: 4, Deadline: &soon},
		{TaskID: "later", EstimateHours: 4, Deadline: &later},
		{TaskID: "soon", EstimateHours: 4, Deadline: &soon},
	}, now)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "soon", got[0].TaskID)
	assert.Equal(t, "later", got[1].TaskID)
	assert.Equal(t, "done", got[2].TaskID)
}

func TestAllocatedByTask(t *testing.T) {
	got, err := AllocatedByTask([]Allocation{
		{TaskID: "a", Date: "2026-03-01", EffortHours: 2},
		{TaskID: "b", Date: "2026-03-01", EffortHours: 1},
		{TaskID: "a", Date: "2026-03-02", EffortHours: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"a": 5, "b": 1}, got)
}
