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

type taskService struct {
	tasks       repository.TaskRepo
	categories  repository.CategoryRepo
	allocations repository.AllocationRepo
	events      repository.EventRepo
}

func NewTaskService(
	tasks repository.TaskRepo,
	categories repository.CategoryRepo,
	allocations repository.AllocationRepo,
	events repository.EventRepo,
) TaskService {
	return &taskService{
		tasks:       tasks,
		categories:  categories,
		allocations: allocations,
		events:      events,
	}
}

func (s *taskService) CreateCategory(ctx context.Context, name string) (*domain.WorkCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if _, err := s.categories.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("category %q already exists", name)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	c := &domain.WorkCategory{ID: uuid.New().String(), Name: name}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *taskService) ListCategories(ctx context.Context) ([]*domain.WorkCategory, error) {
	return s.categories.List(ctx)
}

func (s *taskService) ResolveCategory(ctx context.Context, name string) (*domain.WorkCategory, error) {
	return s.categories.GetByName(ctx, name)
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if _, err := s.events.GetByID(ctx, t.EventID); err != nil {
		return fmt.Errorf("task %q: %w", t.Title, err)
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Task, error) {
	return s.tasks.ListByEvent(ctx, eventID)
}

// Allocate books effort for a task. The allocation always belongs to the
// task's event, whatever EventID the caller set.
func (s *taskService) Allocate(ctx context.Context, a *domain.Allocation) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if err := a.Validate(); err != nil {
		return err
	}
	task, err := s.tasks.GetByID(ctx, a.TaskID)
	if err != nil {
		return fmt.Errorf("allocation: %w", err)
	}
	a.EventID = task.EventID
	return s.allocations.Create(ctx, a)
}

func (s *taskService) ListAllocations(ctx context.Context, eventID string) ([]*domain.Allocation, error) {
	return s.allocations.ListByEvent(ctx, eventID)
}
