package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/stagehand/internal/importer"
	"github.com/alexanderramin/stagehand/internal/repository"
	"github.com/alexanderramin/stagehand/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportWorkspace_Fixture(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	svc := NewImportService(testutil.NewTestUoW(f.db))

	result, err := svc.ImportWorkspace(ctx, "testdata/spring_expo.yaml")
	require.NoError(t, err)
	assert.Equal(t, 2, result.LocationCount)
	assert.Equal(t, 1, result.CategoryCount)
	assert.Equal(t, 2, result.EventCount)
	assert.Equal(t, 3, result.PhaseCount)
	assert.Equal(t, 2, result.CapacityCount)
	assert.Equal(t, 1, result.TaskCount)
	assert.Equal(t, 2, result.AllocationCount)
	assert.Zero(t, result.Reused)

	expo, err := f.eventSvc.Resolve(ctx, "spring expo")
	require.NoError(t, err)
	phases, err := f.phaseSvc.ListByEvent(ctx, expo.ID)
	require.NoError(t, err)
	assert.Len(t, phases, 3)

	tasks, err := f.taskSvc.ListByEvent(ctx, expo.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].CategoryID)
}

func TestImportWorkspace_ReusesExistingLocationsByName(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	existing := f.location(t, "Hall 1")
	svc := NewImportService(testutil.NewTestUoW(f.db))

	result, err := svc.ImportWorkspace(ctx, "testdata/spring_expo.yaml")
	require.NoError(t, err)
	assert.Equal(t, 1, result.LocationCount, "only Hall 2 is new")
	assert.Equal(t, 1, result.Reused)

	events, err := f.eventSvc.List(ctx, repository.EventFilter{LocationID: existing.ID})
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestImportWorkspace_ValidationErrorsWriteNothing(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	svc := NewImportService(testutil.NewTestUoW(f.db))

	ws := &importer.WorkspaceFile{
		Locations: []importer.LocationImport{{Ref: "h", Name: "Hall"}},
		Events: []importer.EventImport{
			{Ref: "a", Name: "A", LocationRef: "h", StartDate: "2026-03-05", EndDate: "2026-03-01"},
			{Ref: "b", Name: "", LocationRef: "x", StartDate: "2026-03-01", EndDate: "2026-03-01"},
		},
	}
	_, err := svc.ImportWorkspaceFile(ctx, ws)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (3 errors)")
	assert.Contains(t, err.Error(), "events[1]: name is required")

	locations, err := f.locationSvc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestImportWorkspace_RollsBackOnWriteFailure(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	boom := errors.New("disk full")

	// Fail on the fourth write: two locations, one category, then the first event.
	uow := &testutil.FailOnNthExecUoW{DB: f.db, FailOn: 4, Err: boom}
	svc := NewImportService(uow)

	_, err := svc.ImportWorkspace(ctx, "testdata/spring_expo.yaml")
	require.ErrorIs(t, err, boom)

	locations, err := f.locationSvc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, locations, "locations written before the failure are rolled back")
	categories, err := f.taskSvc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestImportWorkspace_MissingFile(t *testing.T) {
	f := setup(t)
	_, err := NewImportService(testutil.NewTestUoW(f.db)).ImportWorkspace(context.Background(), "testdata/none.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading import file")
}
