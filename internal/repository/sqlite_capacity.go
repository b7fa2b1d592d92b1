package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stagehand/internal/db"
	"github.com/alexanderramin/stagehand/internal/domain"
)

type SQLiteCapacityRepo struct {
	db db.DBTX
}

func NewSQLiteCapacityRepo(conn db.DBTX) *SQLiteCapacityRepo {
	return &SQLiteCapacityRepo{db: conn}
}

func (r *SQLiteCapacityRepo) Upsert(ctx context.Context, c *domain.Capacity) error {
	c.UpdatedAt = nowUTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO capacities (event_id, date, capacity_hours, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(event_id, date) DO UPDATE SET
			capacity_hours = excluded.capacity_hours,
			updated_at = excluded.updated_at`,
		c.EventID, c.Date, c.CapacityHours, formatTimestamp(c.UpdatedAt))
	if err != nil {
		return fmt.Errorf("upserting capacity: %w", err)
	}
	return nil
}

func (r *SQLiteCapacityRepo) ListByEvent(ctx context.Context, eventID string) ([]*domain.Capacity, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT event_id, date, capacity_hours, updated_at FROM capacities WHERE event_id = ? ORDER BY date`, eventID)
	if err != nil {
		return nil, fmt.Errorf("listing capacities: %w", err)
	}
	defer rows.Close()

	var out []*domain.Capacity
	for rows.Next() {
		var c domain.Capacity
		var updatedAt string
		if err := rows.Scan(&c.EventID, &c.Date, &c.CapacityHours, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning capacity row: %w", err)
		}
		if c.UpdatedAt, err = parseTimestamp("updated_at", updatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating capacities: %w", err)
	}
	return out, nil
}

func (r *SQLiteCapacityRepo) Delete(ctx context.Context, eventID, date string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM capacities WHERE event_id = ? AND date = ?`, eventID, date)
	if err != nil {
		return fmt.Errorf("deleting capacity: %w", err)
	}
	return requireAffected(res, "capacity", eventID+"@"+date)
}
