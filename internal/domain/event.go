package domain

import (
	"fmt"
	"time"
)

type Location struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Event struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	LocationID string      `json:"location_id"`
	StartDate  string      `json:"start_date"` // YYYY-MM-DD, first booked day including setup
	EndDate    string      `json:"end_date"`   // YYYY-MM-DD, last booked day including teardown
	Status     EventStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Validate checks the fields every persisted event must satisfy.
func (e *Event) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("event name is required")
	}
	if e.LocationID == "" {
		return fmt.Errorf("event %q: location is required", e.Name)
	}
	start, err := ParseDateKey(e.StartDate)
	if err != nil {
		return fmt.Errorf("event %q start: %w", e.Name, err)
	}
	end, err := ParseDateKey(e.EndDate)
	if err != nil {
		return fmt.Errorf("event %q end: %w", e.Name, err)
	}
	if end.Before(start) {
		return fmt.Errorf("event %q: end date %s is before start date %s", e.Name, e.EndDate, e.StartDate)
	}
	if e.Status != "" && !ValidEventStatuses[string(e.Status)] {
		return fmt.Errorf("event %q: invalid status %q", e.Name, e.Status)
	}
	return nil
}

// IsActive reports whether the event still occupies its location.
func (e *Event) IsActive() bool {
	return e.Status != EventCancelled
}
