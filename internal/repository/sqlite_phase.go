package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stagehand/internal/db"
	"github.com/alexanderramin/stagehand/internal/domain"
)

type SQLitePhaseRepo struct {
	db db.DBTX
}

func NewSQLitePhaseRepo(conn db.DBTX) *SQLitePhaseRepo {
	return &SQLitePhaseRepo{db: conn}
}

// Phase instants are stored in UTC; callers convert to the display zone.
func (r *SQLitePhaseRepo) Create(ctx context.Context, p *domain.Phase) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = nowUTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO phases (id, event_id, name, start_at, end_at, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.EventID, p.Name, formatTimestamp(p.StartAt), formatTimestamp(p.EndAt), formatTimestamp(p.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting phase: %w", err)
	}
	return nil
}

// ListByEvent returns phases in insertion order. Chronological ordering is
// the caller's concern.
func (r *SQLitePhaseRepo) ListByEvent(ctx context.Context, eventID string) ([]*domain.Phase, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, event_id, name, start_at, end_at, created_at FROM phases WHERE event_id = ? ORDER BY rowid`,
		eventID)
	if err != nil {
		return nil, fmt.Errorf("listing phases: %w", err)
	}
	defer rows.Close()

	var out []*domain.Phase
	for rows.Next() {
		var p domain.Phase
		var startAt, endAt, createdAt string
		if err := rows.Scan(&p.ID, &p.EventID, &p.Name, &startAt, &endAt, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning phase row: %w", err)
		}
		if p.StartAt, err = parseTimestamp("start_at", startAt); err != nil {
			return nil, err
		}
		if p.EndAt, err = parseTimestamp("end_at", endAt); err != nil {
			return nil, err
		}
		if p.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating phases: %w", err)
	}
	return out, nil
}

func (r *SQLitePhaseRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM phases WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting phase: %w", err)
	}
	return requireAffected(res, "phase", id)
}
