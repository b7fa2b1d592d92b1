package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/stagehand/internal/domain"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

// EventFilter narrows EventRepo.List. Zero values match everything except
// cancelled events.
type EventFilter struct {
	LocationID       string
	From             string // YYYY-MM-DD, events ending before this are skipped
	To               string // YYYY-MM-DD, events starting after this are skipped
	IncludeCancelled bool
}

type LocationRepo interface {
	Create(ctx context.Context, l *domain.Location) error
	GetByID(ctx context.Context, id string) (*domain.Location, error)
	GetByName(ctx context.Context, name string) (*domain.Location, error)
	List(ctx context.Context) ([]*domain.Location, error)
	Delete(ctx context.Context, id string) error
}

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, f EventFilter) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
}

type PhaseRepo interface {
	Create(ctx context.Context, p *domain.Phase) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Phase, error)
	Delete(ctx context.Context, id string) error
}

type CategoryRepo interface {
	Create(ctx context.Context, c *domain.WorkCategory) error
	GetByName(ctx context.Context, name string) (*domain.WorkCategory, error)
	List(ctx context.Context) ([]*domain.WorkCategory, error)
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type AllocationRepo interface {
	Create(ctx context.Context, a *domain.Allocation) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Allocation, error)
	ListByTask(ctx context.Context, taskID string) ([]*domain.Allocation, error)
	Delete(ctx context.Context, id string) error
}

// CapacityRepo stores at most one capacity per (event, date); Upsert
// replaces an existing entry.
type CapacityRepo interface {
	Upsert(ctx context.Context, c *domain.Capacity) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Capacity, error)
	Delete(ctx context.Context, eventID, date string) error
}
