package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/stagehand/internal/app"
	"github.com/alexanderramin/stagehand/internal/db"
	"github.com/alexanderramin/stagehand/internal/importer"
	"github.com/alexanderramin/stagehand/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewImportService writes every imported record inside one transaction, so a
// failing file leaves the workspace untouched.
func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportWorkspace(ctx context.Context, filePath string) (*app.ImportResult, error) {
	ws, err := importer.LoadWorkspace(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportWorkspaceFile(ctx, ws)
}

func (s *importService) ImportWorkspaceFile(ctx context.Context, ws *importer.WorkspaceFile) (result *app.ImportResult, err error) {
	fields := map[string]any{}
	done := startUseCase(ctx, s.observer, "import-workspace", fields)
	defer func() { done(err) }()

	if errs := importer.ValidateWorkspace(ws); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, formatValidationErrors(errs)
	}

	var converted *importer.Workspace
	converted, err = importer.Convert(ws)
	if err != nil {
		return nil, fmt.Errorf("converting import file: %w", err)
	}

	result = &app.ImportResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return persistWorkspace(ctx, tx, converted, result)
	})
	if err != nil {
		return nil, err
	}
	fields["events"] = result.EventCount
	fields["tasks"] = result.TaskCount
	return result, nil
}

// persistWorkspace stores a converted workspace through tx-scoped repos.
// Locations and categories whose names already exist are reused and the
// records pointing at them are rewired.
func persistWorkspace(ctx context.Context, tx db.DBTX, ws *importer.Workspace, result *app.ImportResult) error {
	locations := repository.NewSQLiteLocationRepo(tx)
	categories := repository.NewSQLiteCategoryRepo(tx)
	events := repository.NewSQLiteEventRepo(tx)
	phases := repository.NewSQLitePhaseRepo(tx)
	capacities := repository.NewSQLiteCapacityRepo(tx)
	tasks := repository.NewSQLiteTaskRepo(tx)
	allocations := repository.NewSQLiteAllocationRepo(tx)

	locationIDs := make(map[string]string, len(ws.Locations))
	for _, l := range ws.Locations {
		existing, err := locations.GetByName(ctx, l.Name)
		switch {
		case err == nil:
			locationIDs[l.ID] = existing.ID
			result.Reused++
			continue
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}
		if err := locations.Create(ctx, l); err != nil {
			return fmt.Errorf("creating location %q: %w", l.Name, err)
		}
		locationIDs[l.ID] = l.ID
		result.LocationCount++
	}

	categoryIDs := make(map[string]string, len(ws.Categories))
	for _, c := range ws.Categories {
		existing, err := categories.GetByName(ctx, c.Name)
		switch {
		case err == nil:
			categoryIDs[c.ID] = existing.ID
			result.Reused++
			continue
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}
		if err := categories.Create(ctx, c); err != nil {
			return fmt.Errorf("creating category %q: %w", c.Name, err)
		}
		categoryIDs[c.ID] = c.ID
		result.CategoryCount++
	}

	for _, e := range ws.Events {
		e.LocationID = locationIDs[e.LocationID]
		if err := events.Create(ctx, e); err != nil {
			return fmt.Errorf("creating event %q: %w", e.Name, err)
		}
		result.EventCount++
	}
	for _, p := range ws.Phases {
		if err := phases.Create(ctx, p); err != nil {
			return fmt.Errorf("creating phase %q: %w", p.Name, err)
		}
		result.PhaseCount++
	}
	for _, c := range ws.Capacities {
		if err := capacities.Upsert(ctx, c); err != nil {
			return fmt.Errorf("setting capacity for %s: %w", c.Date, err)
		}
		result.CapacityCount++
	}
	for _, t := range ws.Tasks {
		if t.CategoryID != nil {
			id := categoryIDs[*t.CategoryID]
			t.CategoryID = &id
		}
		if err := tasks.Create(ctx, t); err != nil {
			return fmt.Errorf("creating task %q: %w", t.Title, err)
		}
		result.TaskCount++
	}
	for _, a := range ws.Allocations {
		if err := allocations.Create(ctx, a); err != nil {
			return fmt.Errorf("creating allocation on %s: %w", a.Date, err)
		}
		result.AllocationCount++
	}
	return nil
}
