package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/alexanderramin/stagehand/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationService_CreateAndResolve(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	loc := f.location(t, "  Hall 1 ")
	assert.Equal(t, "Hall 1", loc.Name)
	assert.NotEmpty(t, loc.ID)

	_, err := f.locationSvc.Create(ctx, "hall 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	byName, err := f.locationSvc.Resolve(ctx, "HALL 1")
	require.NoError(t, err)
	assert.Equal(t, loc.ID, byName.ID)

	byID, err := f.locationSvc.Resolve(ctx, loc.ID)
	require.NoError(t, err)
	assert.Equal(t, loc.ID, byID.ID)

	_, err = f.locationSvc.Resolve(ctx, "Hall 9")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLocationService_DeleteInUse(t *testing.T) {
	f := setup(t)
	loc := f.location(t, "Hall 1")
	f.event(t, loc.ID, "Expo", "2026-03-01", "2026-03-02")

	err := f.locationSvc.Delete(context.Background(), loc.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "events still booked")
}

func TestEventService_Create(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	loc := f.location(t, "Hall 1")

	ev := f.event(t, loc.ID, "Expo", "2026-03-01", "2026-03-05")
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, domain.EventPlanned, ev.Status)

	tests := []struct {
		name    string
		event   domain.Event
		wantErr string
	}{
		{"reversed dates", domain.Event{Name: "X", LocationID: loc.ID, StartDate: "2026-03-05", EndDate: "2026-03-01"}, "before start"},
		{"bad date", domain.Event{Name: "X", LocationID: loc.ID, StartDate: "5 March", EndDate: "2026-03-01"}, "YYYY-MM-DD"},
		{"unknown location", domain.Event{Name: "X", LocationID: "nowhere", StartDate: "2026-03-01", EndDate: "2026-03-01"}, "not found"},
		{"missing name", domain.Event{LocationID: loc.ID, StartDate: "2026-03-01", EndDate: "2026-03-01"}, "name is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.event
			err := f.eventSvc.Create(ctx, &e)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEventService_ResolveAmbiguous(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	loc := f.location(t, "Hall 1")
	f.event(t, loc.ID, "Gala", "2026-03-01", "2026-03-01")
	f.event(t, loc.ID, "Gala", "2026-04-01", "2026-04-01")

	_, err := f.eventSvc.Resolve(ctx, "gala")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestEventService_SetStatus(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	loc := f.location(t, "Hall 1")
	ev := f.event(t, loc.ID, "Expo", "2026-03-01", "2026-03-01")

	require.NoError(t, f.eventSvc.SetStatus(ctx, ev.ID, domain.EventConfirmed))
	got, err := f.eventSvc.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EventConfirmed, got.Status)

	assert.Error(t, f.eventSvc.SetStatus(ctx, ev.ID, "postponed"))
}

func TestPhaseService_RejectsReversedPhase(t *testing.T) {
	f := setup(t)
	loc := f.location(t, "Hall 1")
	ev := f.event(t, loc.ID, "Expo", "2026-03-01", "2026-03-02")

	err := f.phaseSvc.Add(context.Background(), &domain.Phase{
		EventID: ev.ID,
		Name:    "EVENT",
		StartAt: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before start")
}

func TestTaskService_AllocateUsesTaskEvent(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	loc := f.location(t, "Hall 1")
	ev := f.event(t, loc.ID, "Expo", "2026-03-01", "2026-03-02")
	task := f.task(t, ev.ID, "Stage", 6, nil)

	a := &domain.Allocation{TaskID: task.ID, EventID: "ignored", Date: "2026-03-01", EffortHours: 2}
	require.NoError(t, f.taskSvc.Allocate(ctx, a))
	assert.Equal(t, ev.ID, a.EventID)

	allocs, err := f.taskSvc.ListAllocations(ctx, ev.ID)
	require.NoError(t, err)
	require.Len(t, allocs, 1)

	err = f.taskSvc.Allocate(ctx, &domain.Allocation{TaskID: task.ID, Date: "2026-03-01", EffortHours: -1})
	assert.Error(t, err)
	err = f.taskSvc.Allocate(ctx, &domain.Allocation{TaskID: "missing", Date: "2026-03-01", EffortHours: 1})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskService_Categories(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	c, err := f.taskSvc.CreateCategory(ctx, "Rigging")
	require.NoError(t, err)
	_, err = f.taskSvc.CreateCategory(ctx, "rigging")
	assert.Error(t, err)

	got, err := f.taskSvc.ResolveCategory(ctx, "RIGGING")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
}

func TestCapacityService_SetReplaces(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	loc := f.location(t, "Hall 1")
	ev := f.event(t, loc.ID, "Expo", "2026-03-01", "2026-03-02")

	require.NoError(t, f.capacitySvc.Set(ctx, ev.ID, "2026-03-01", 8))
	require.NoError(t, f.capacitySvc.Set(ctx, ev.ID, "2026-03-01", 6))
	caps, err := f.capacitySvc.ListByEvent(ctx, ev.ID)
	require.NoError(t, err)
	require.Len(t, caps, 1)
	assert.Equal(t, 6.0, caps[0].CapacityHours)

	assert.Error(t, f.capacitySvc.Set(ctx, ev.ID, "2026-03-01", -1))
	assert.ErrorIs(t, f.capacitySvc.Set(ctx, "missing", "2026-03-01", 1), repository.ErrNotFound)
}
