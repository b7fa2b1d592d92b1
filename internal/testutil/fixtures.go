package testutil

import (
	"time"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/google/uuid"
)

func NewTestLocation(name string) *domain.Location {
	return &domain.Location{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// Event options
type EventOption func(*domain.Event)

func WithEventStatus(s domain.EventStatus) EventOption {
	return func(e *domain.Event) {
		e.Status = s
	}
}

func WithEventDates(start, end string) EventOption {
	return func(e *domain.Event) {
		e.StartDate = start
		e.EndDate = end
	}
}

// NewTestEvent books a planned event at locationID for 2026-03-01..2026-03-05
// unless options say otherwise.
func NewTestEvent(locationID, name string, opts ...EventOption) *domain.Event {
	now := time.Now().UTC().Truncate(time.Second)
	e := &domain.Event{
		ID:         uuid.New().String(),
		Name:       name,
		LocationID: locationID,
		StartDate:  "2026-03-01",
		EndDate:    "2026-03-05",
		Status:     domain.EventPlanned,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NewTestPhase(eventID, name string, start, end time.Time) *domain.Phase {
	return &domain.Phase{
		ID:        uuid.New().String(),
		EventID:   eventID,
		Name:      name,
		StartAt:   start,
		EndAt:     end,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func NewTestCategory(name string) *domain.WorkCategory {
	return &domain.WorkCategory{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// Task options
type TaskOption func(*domain.Task)

func WithDeadline(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Deadline = &d
	}
}

func WithEstimate(hours float64) TaskOption {
	return func(t *domain.Task) {
		t.EstimateHours = hours
	}
}

func WithCategory(categoryID string) TaskOption {
	return func(t *domain.Task) {
		t.CategoryID = &categoryID
	}
}

func NewTestTask(eventID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC().Truncate(time.Second)
	t := &domain.Task{
		ID:            uuid.New().String(),
		EventID:       eventID,
		Title:         title,
		EstimateHours: 8,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func NewTestAllocation(task *domain.Task, date string, hours float64) *domain.Allocation {
	return &domain.Allocation{
		ID:          uuid.New().String(),
		TaskID:      task.ID,
		EventID:     task.EventID,
		Date:        date,
		EffortHours: hours,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func NewTestCapacity(eventID, date string, hours float64) *domain.Capacity {
	return &domain.Capacity{
		EventID:       eventID,
		Date:          date,
		CapacityHours: hours,
	}
}
