package domain

import (
	"fmt"
	"time"
)

type WorkCategory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Task struct {
	ID            string     `json:"id"`
	EventID       string     `json:"event_id"`
	CategoryID    *string    `json:"category_id,omitempty"`
	Title         string     `json:"title"`
	EstimateHours float64    `json:"estimate_hours"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (t *Task) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("task title is required")
	}
	if t.EventID == "" {
		return fmt.Errorf("task %q: event is required", t.Title)
	}
	if t.EstimateHours < 0 {
		return fmt.Errorf("task %q: estimate must not be negative (got %g)", t.Title, t.EstimateHours)
	}
	return nil
}

// Allocation books effort hours of a task onto one calendar date.
type Allocation struct {
	ID          string    `json:"id"`
	TaskID      string    `json:"task_id"`
	EventID     string    `json:"event_id"`
	Date        string    `json:"date"`
	EffortHours float64   `json:"effort_hours"`
	CreatedAt   time.Time `json:"created_at"`
}

func (a *Allocation) Validate() error {
	if _, err := ParseDateKey(a.Date); err != nil {
		return fmt.Errorf("allocation date: %w", err)
	}
	if a.EffortHours < 0 {
		return fmt.Errorf("allocation on %s: effort must not be negative (got %g)", a.Date, a.EffortHours)
	}
	return nil
}

// Capacity is the configured working-hour budget of one event on one date.
type Capacity struct {
	EventID       string    `json:"event_id"`
	Date          string    `json:"date"`
	CapacityHours float64   `json:"capacity_hours"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (c *Capacity) Validate() error {
	if _, err := ParseDateKey(c.Date); err != nil {
		return fmt.Errorf("capacity date: %w", err)
	}
	if c.CapacityHours < 0 {
		return fmt.Errorf("capacity on %s: hours must not be negative (got %g)", c.Date, c.CapacityHours)
	}
	return nil
}
