package app

import (
	"context"

	"github.com/alexanderramin/stagehand/internal/importer"
)

type LocationBoardUseCase interface {
	LocationBoard(ctx context.Context, req BoardRequest) (*LocationBoardResponse, error)
}

type PhasePlanUseCase interface {
	PhasePlan(ctx context.Context, eventID string) (*EventPhasePlan, error)
	PhasePlans(ctx context.Context, eventIDs []string) ([]*EventPhasePlan, error)
}

type WorkloadUseCase interface {
	Workload(ctx context.Context, req WorkloadRequest) (*WorkloadResponse, error)
}

type ImportResult struct {
	LocationCount   int
	CategoryCount   int
	EventCount      int
	PhaseCount      int
	TaskCount       int
	AllocationCount int
	CapacityCount   int
	// Reused counts locations and categories that already existed by name.
	Reused int
}

type ImportWorkspaceUseCase interface {
	ImportWorkspace(ctx context.Context, filePath string) (*ImportResult, error)
	ImportWorkspaceFile(ctx context.Context, ws *importer.WorkspaceFile) (*ImportResult, error)
}
