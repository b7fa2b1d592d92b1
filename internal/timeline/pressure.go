package timeline

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// TaskLoad is the input for one task's deadline-pressure evaluation.
type TaskLoad struct {
	TaskID         string
	EstimateHours  float64
	AllocatedHours float64
	Deadline       *time.Time
}

// TaskPressure is the deadline evaluation of one task at a given instant.
type TaskPressure struct {
	TaskID               string  `json:"task_id"`
	RemainingEffortHours float64 `json:"remaining_effort_hours"`
	RemainingDays        int     `json:"remaining_days"`
	// RequiredDailyHours is remaining effort spread over remaining days.
	// It is informational only and does not affect IsUnderPressure.
	RequiredDailyHours float64 `json:"required_daily_hours"`
	IsUnderPressure    bool    `json:"is_under_pressure"`
}

// RemainingEffort returns the estimate not yet covered by allocations, never
// below zero.
func RemainingEffort(estimate, allocated float64) float64 {
	return math.Max(0, estimate-allocated)
}

// RemainingDays returns the whole days left until deadline, rounding partial
// days up and never going below zero.
func RemainingDays(now, deadline time.Time) int {
	days := math.Ceil(float64(deadline.Sub(now)) / float64(24*time.Hour))
	if days <= 0 {
		return 0
	}
	return int(days)
}

// DeadlinePressure reports whether a task still has both work and time left.
// No magnitude threshold is applied to the hours-per-day ratio.
func DeadlinePressure(remainingEffort float64, remainingDays int) bool {
	return remainingDays > 0 && remainingEffort > 0
}

// EvaluateTaskPressure computes remaining effort, remaining days and the
// pressure flag for one task. A task without a deadline has no remaining
// days and is never under pressure.
func EvaluateTaskPressure(load TaskLoad, now time.Time) (TaskPressure, error) {
	record := "task " + load.TaskID
	if load.EstimateHours < 0 || math.IsNaN(load.EstimateHours) {
		return TaskPressure{}, invalid(ErrNegativeEffort, record, "estimate %g", load.EstimateHours)
	}
	if load.AllocatedHours < 0 || math.IsNaN(load.AllocatedHours) {
		return TaskPressure{}, invalid(ErrNegativeEffort, record, "allocated %g", load.AllocatedHours)
	}

	remaining := RemainingEffort(load.EstimateHours, load.AllocatedHours)
	days := 0
	if load.Deadline != nil {
		days = RemainingDays(now, *load.Deadline)
	}

	result := TaskPressure{
		TaskID:               load.TaskID,
		RemainingEffortHours: remaining,
		RemainingDays:        days,
		IsUnderPressure:      DeadlinePressure(remaining, days),
	}
	if days > 0 {
		result.RequiredDailyHours = remaining / float64(days)
	}
	return result, nil
}

// EvaluatePressures evaluates every task and returns results ordered with
// tasks under pressure first, then by remaining days and task ID.
func EvaluatePressures(loads []TaskLoad, now time.Time) ([]TaskPressure, error) {
	out := make([]TaskPressure, 0, len(loads))
	for _, l := range loads {
		p, err := EvaluateTaskPressure(l, now)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsUnderPressure != b.IsUnderPressure {
			return a.IsUnderPressure
		}
		if a.RemainingDays != b.RemainingDays {
			return a.RemainingDays < b.RemainingDays
		}
		return a.TaskID < b.TaskID
	})
	return out, nil
}

// AllocatedByTask sums allocation effort per task ID.
func AllocatedByTask(allocations []Allocation) (map[string]float64, error) {
	byTask := make(map[string][]float64)
	for i, a := range allocations {
		if a.EffortHours < 0 || math.IsNaN(a.EffortHours) {
			return nil, invalid(ErrNegativeEffort, fmt.Sprintf("allocation[%d] task %s", i, a.TaskID),
				"effort %g on %s", a.EffortHours, a.Date)
		}
		byTask[a.TaskID] = append(byTask[a.TaskID], a.EffortHours)
	}
	out := make(map[string]float64, len(byTask))
	for id, vals := range byTask {
		out[id] = sumSorted(vals)
	}
	return out, nil
}
