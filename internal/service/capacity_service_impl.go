package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/alexanderramin/stagehand/internal/repository"
)

type capacityService struct {
	capacities repository.CapacityRepo
	events     repository.EventRepo
}

func NewCapacityService(capacities repository.CapacityRepo, events repository.EventRepo) CapacityService {
	return &capacityService{capacities: capacities, events: events}
}

// Set stores the capacity of an event on a date, replacing any earlier value.
func (s *capacityService) Set(ctx context.Context, eventID, date string, hours float64) error {
	c := &domain.Capacity{EventID: eventID, Date: date, CapacityHours: hours}
	if err := c.Validate(); err != nil {
		return err
	}
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return fmt.Errorf("capacity: %w", err)
	}
	return s.capacities.Upsert(ctx, c)
}

func (s *capacityService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Capacity, error) {
	return s.capacities.ListByEvent(ctx, eventID)
}
