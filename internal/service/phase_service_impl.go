package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/alexanderramin/stagehand/internal/repository"
	"github.com/google/uuid"
)

type phaseService struct {
	phases repository.PhaseRepo
	events repository.EventRepo
}

func NewPhaseService(phases repository.PhaseRepo, events repository.EventRepo) PhaseService {
	return &phaseService{phases: phases, events: events}
}

func (s *phaseService) Add(ctx context.Context, p *domain.Phase) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := s.events.GetByID(ctx, p.EventID); err != nil {
		return fmt.Errorf("phase %q: %w", p.Name, err)
	}
	return s.phases.Create(ctx, p)
}

func (s *phaseService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Phase, error) {
	return s.phases.ListByEvent(ctx, eventID)
}

func (s *phaseService) Delete(ctx context.Context, id string) error {
	return s.phases.Delete(ctx, id)
}
