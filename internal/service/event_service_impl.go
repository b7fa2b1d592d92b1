package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/alexanderramin/stagehand/internal/repository"
	"github.com/google/uuid"
)

type eventService struct {
	events    repository.EventRepo
	locations repository.LocationRepo
	observer  UseCaseObserver
}

func NewEventService(
	events repository.EventRepo,
	locations repository.LocationRepo,
	observers ...UseCaseObserver,
) EventService {
	return &eventService{
		events:    events,
		locations: locations,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *eventService) Create(ctx context.Context, e *domain.Event) (err error) {
	done := startUseCase(ctx, s.observer, "create-event", map[string]any{"event": e.Name})
	defer func() { done(err) }()

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Status == "" {
		e.Status = domain.EventPlanned
	}
	if err = e.Validate(); err != nil {
		return err
	}
	if _, err = s.locations.GetByID(ctx, e.LocationID); err != nil {
		return fmt.Errorf("event %q: %w", e.Name, err)
	}
	return s.events.Create(ctx, e)
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.GetByID(ctx, id)
}

func (s *eventService) Resolve(ctx context.Context, idOrName string) (*domain.Event, error) {
	ev, err := s.events.GetByID(ctx, idOrName)
	if err == nil {
		return ev, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	all, err := s.events.List(ctx, repository.EventFilter{IncludeCancelled: true})
	if err != nil {
		return nil, err
	}
	var matches []*domain.Event
	for _, e := range all {
		if sameName(e.Name, idOrName) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("event %q: %w", idOrName, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("event name %q is ambiguous (%d matches), use the ID", idOrName, len(matches))
	}
}

func (s *eventService) List(ctx context.Context, f repository.EventFilter) ([]*domain.Event, error) {
	return s.events.List(ctx, f)
}

func (s *eventService) SetStatus(ctx context.Context, id string, status domain.EventStatus) (err error) {
	done := startUseCase(ctx, s.observer, "set-event-status", map[string]any{"event_id": id, "status": string(status)})
	defer func() { done(err) }()

	if !domain.ValidEventStatuses[string(status)] {
		return fmt.Errorf("invalid event status %q", status)
	}
	var ev *domain.Event
	if ev, err = s.events.GetByID(ctx, id); err != nil {
		return err
	}
	ev.Status = status
	return s.events.Update(ctx, ev)
}

func (s *eventService) Delete(ctx context.Context, id string) (err error) {
	done := startUseCase(ctx, s.observer, "delete-event", map[string]any{"event_id": id})
	defer func() { done(err) }()

	return s.events.Delete(ctx, id)
}
