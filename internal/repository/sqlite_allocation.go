package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stagehand/internal/db"
	"github.com/alexanderramin/stagehand/internal/domain"
)

type SQLiteAllocationRepo struct {
	db db.DBTX
}

func NewSQLiteAllocationRepo(conn db.DBTX) *SQLiteAllocationRepo {
	return &SQLiteAllocationRepo{db: conn}
}

const allocationColumns = `id, task_id, event_id, date, effort_hours, created_at`

func (r *SQLiteAllocationRepo) Create(ctx context.Context, a *domain.Allocation) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = nowUTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO allocations (`+allocationColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.TaskID, a.EventID, a.Date, a.EffortHours, formatTimestamp(a.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting allocation: %w", err)
	}
	return nil
}

func (r *SQLiteAllocationRepo) ListByEvent(ctx context.Context, eventID string) ([]*domain.Allocation, error) {
	return r.list(ctx, `event_id = ?`, eventID)
}

func (r *SQLiteAllocationRepo) ListByTask(ctx context.Context, taskID string) ([]*domain.Allocation, error) {
	return r.list(ctx, `task_id = ?`, taskID)
}

func (r *SQLiteAllocationRepo) list(ctx context.Context, where string, arg string) ([]*domain.Allocation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+allocationColumns+` FROM allocations WHERE `+where+` ORDER BY date, task_id, id`, arg)
	if err != nil {
		return nil, fmt.Errorf("listing allocations: %w", err)
	}
	defer rows.Close()

	var out []*domain.Allocation
	for rows.Next() {
		var a domain.Allocation
		var createdAt string
		if err := rows.Scan(&a.ID, &a.TaskID, &a.EventID, &a.Date, &a.EffortHours, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning allocation row: %w", err)
		}
		if a.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating allocations: %w", err)
	}
	return out, nil
}

func (r *SQLiteAllocationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM allocations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting allocation: %w", err)
	}
	return requireAffected(res, "allocation", id)
}
