package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/stagehand/internal/db"
	"github.com/alexanderramin/stagehand/internal/domain"
)

type SQLiteEventRepo struct {
	db db.DBTX
}

func NewSQLiteEventRepo(conn db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: conn}
}

const eventColumns = `id, name, location_id, start_date, end_date, status, created_at, updated_at`

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.Event) error {
	now := nowUTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}
	if e.Status == "" {
		e.Status = domain.EventPlanned
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO events (`+eventColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.LocationID, e.StartDate, e.EndDate, string(e.Status),
		formatTimestamp(e.CreatedAt), formatTimestamp(e.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	e, err := scanEvent(row)
	if err != nil {
		return nil, notFound(err, "event", id)
	}
	return e, nil
}

// List returns matching events ordered by start date, end date, name and ID.
// From/To select events whose closed date range intersects the window.
func (r *SQLiteEventRepo) List(ctx context.Context, f EventFilter) ([]*domain.Event, error) {
	var where []string
	var args []any
	if f.LocationID != "" {
		where = append(where, "location_id = ?")
		args = append(args, f.LocationID)
	}
	if f.From != "" {
		where = append(where, "end_date >= ?")
		args = append(args, f.From)
	}
	if f.To != "" {
		where = append(where, "start_date <= ?")
		args = append(args, f.To)
	}
	if !f.IncludeCancelled {
		where = append(where, "status <> 'cancelled'")
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY start_date, end_date, name, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var out []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return out, nil
}

func (r *SQLiteEventRepo) Update(ctx context.Context, e *domain.Event) error {
	e.UpdatedAt = nowUTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET name = ?, location_id = ?, start_date = ?, end_date = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		e.Name, e.LocationID, e.StartDate, e.EndDate, string(e.Status), formatTimestamp(e.UpdatedAt), e.ID)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}
	return requireAffected(res, "event", e.ID)
}

func (r *SQLiteEventRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	return requireAffected(res, "event", id)
}

func scanEvent(s rowScanner) (*domain.Event, error) {
	var e domain.Event
	var status, createdAt, updatedAt string
	if err := s.Scan(&e.ID, &e.Name, &e.LocationID, &e.StartDate, &e.EndDate, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	e.Status = domain.EventStatus(status)

	var err error
	if e.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseTimestamp("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
