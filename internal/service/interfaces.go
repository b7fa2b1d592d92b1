package service

import (
	"context"

	"github.com/alexanderramin/stagehand/internal/app"
	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/alexanderramin/stagehand/internal/repository"
)

type LocationService interface {
	Create(ctx context.Context, name string) (*domain.Location, error)
	List(ctx context.Context) ([]*domain.Location, error)
	// Resolve accepts an ID or a case-insensitive name.
	Resolve(ctx context.Context, idOrName string) (*domain.Location, error)
	Delete(ctx context.Context, id string) error
}

type EventService interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// Resolve accepts an ID or a unique case-insensitive name.
	Resolve(ctx context.Context, idOrName string) (*domain.Event, error)
	List(ctx context.Context, f repository.EventFilter) ([]*domain.Event, error)
	SetStatus(ctx context.Context, id string, status domain.EventStatus) error
	Delete(ctx context.Context, id string) error
}

type PhaseService interface {
	Add(ctx context.Context, p *domain.Phase) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Phase, error)
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	CreateCategory(ctx context.Context, name string) (*domain.WorkCategory, error)
	ListCategories(ctx context.Context) ([]*domain.WorkCategory, error)
	ResolveCategory(ctx context.Context, name string) (*domain.WorkCategory, error)
	Create(ctx context.Context, t *domain.Task) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Task, error)
	Allocate(ctx context.Context, a *domain.Allocation) error
	ListAllocations(ctx context.Context, eventID string) ([]*domain.Allocation, error)
}

type CapacityService interface {
	Set(ctx context.Context, eventID, date string, hours float64) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Capacity, error)
}

type TimelineService interface {
	app.LocationBoardUseCase
	app.PhasePlanUseCase
	app.WorkloadUseCase
}

type ImportService interface {
	app.ImportWorkspaceUseCase
}
