package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/alexanderramin/stagehand/internal/repository"
	"github.com/google/uuid"
)

type locationService struct {
	locations repository.LocationRepo
}

func NewLocationService(locations repository.LocationRepo) LocationService {
	return &locationService{locations: locations}
}

func (s *locationService) Create(ctx context.Context, name string) (*domain.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("location name is required")
	}
	if existing, err := s.locations.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("location %q already exists (%s)", existing.Name, existing.ID)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	loc := &domain.Location{ID: uuid.New().String(), Name: name}
	if err := s.locations.Create(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (s *locationService) List(ctx context.Context) ([]*domain.Location, error) {
	return s.locations.List(ctx)
}

func (s *locationService) Resolve(ctx context.Context, idOrName string) (*domain.Location, error) {
	loc, err := s.locations.GetByID(ctx, idOrName)
	if err == nil {
		return loc, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return s.locations.GetByName(ctx, idOrName)
}

func (s *locationService) Delete(ctx context.Context, id string) error {
	if err := s.locations.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting location (events still booked there must be removed first): %w", err)
	}
	return nil
}
