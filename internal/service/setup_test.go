package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/alexanderramin/stagehand/internal/repository"
	"github.com/alexanderramin/stagehand/internal/testutil"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db          *sql.DB
	repos       TimelineRepos
	categories  repository.CategoryRepo
	locationSvc LocationService
	eventSvc    EventService
	phaseSvc    PhaseService
	taskSvc     TaskService
	capacitySvc CapacityService
}

func setup(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	repos := TimelineRepos{
		Locations:   repository.NewSQLiteLocationRepo(database),
		Events:      repository.NewSQLiteEventRepo(database),
		Phases:      repository.NewSQLitePhaseRepo(database),
		Tasks:       repository.NewSQLiteTaskRepo(database),
		Allocations: repository.NewSQLiteAllocationRepo(database),
		Capacities:  repository.NewSQLiteCapacityRepo(database),
	}
	categories := repository.NewSQLiteCategoryRepo(database)
	return &fixture{
		db:          database,
		repos:       repos,
		categories:  categories,
		locationSvc: NewLocationService(repos.Locations),
		eventSvc:    NewEventService(repos.Events, repos.Locations),
		phaseSvc:    NewPhaseService(repos.Phases, repos.Events),
		taskSvc:     NewTaskService(repos.Tasks, categories, repos.Allocations, repos.Events),
		capacitySvc: NewCapacityService(repos.Capacities, repos.Events),
	}
}

func (f *fixture) location(t *testing.T, name string) *domain.Location {
	t.Helper()
	loc, err := f.locationSvc.Create(context.Background(), name)
	require.NoError(t, err)
	return loc
}

func (f *fixture) event(t *testing.T, locationID, name, start, end string) *domain.Event {
	t.Helper()
	ev := &domain.Event{Name: name, LocationID: locationID, StartDate: start, EndDate: end}
	require.NoError(t, f.eventSvc.Create(context.Background(), ev))
	return ev
}

func (f *fixture) phase(t *testing.T, eventID, name string, start, end time.Time) {
	t.Helper()
	require.NoError(t, f.phaseSvc.Add(context.Background(), &domain.Phase{
		EventID: eventID, Name: name, StartAt: start, EndAt: end,
	}))
}

func (f *fixture) task(t *testing.T, eventID, title string, estimate float64, deadline *time.Time) *domain.Task {
	t.Helper()
	task := &domain.Task{EventID: eventID, Title: title, EstimateHours: estimate, Deadline: deadline}
	require.NoError(t, f.taskSvc.Create(context.Background(), task))
	return task
}

func (f *fixture) allocate(t *testing.T, taskID, date string, hours float64) {
	t.Helper()
	require.NoError(t, f.taskSvc.Allocate(context.Background(), &domain.Allocation{
		TaskID: taskID, Date: date, EffortHours: hours,
	}))
}

func (f *fixture) timeline(opts TimelineOptions, observers ...UseCaseObserver) TimelineService {
	return NewTimelineService(f.repos, opts, observers...)
}
