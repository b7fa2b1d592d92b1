package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stagehand/internal/db"
	"github.com/alexanderramin/stagehand/internal/domain"
)

type SQLiteLocationRepo struct {
	db db.DBTX
}

func NewSQLiteLocationRepo(conn db.DBTX) *SQLiteLocationRepo {
	return &SQLiteLocationRepo{db: conn}
}

const locationColumns = `id, name, created_at`

func (r *SQLiteLocationRepo) Create(ctx context.Context, l *domain.Location) error {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = nowUTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO locations (`+locationColumns+`) VALUES (?, ?, ?)`,
		l.ID, l.Name, formatTimestamp(l.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting location: %w", err)
	}
	return nil
}

func (r *SQLiteLocationRepo) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+locationColumns+` FROM locations WHERE id = ?`, id)
	l, err := scanLocation(row)
	if err != nil {
		return nil, notFound(err, "location", id)
	}
	return l, nil
}

// GetByName matches case-insensitively.
func (r *SQLiteLocationRepo) GetByName(ctx context.Context, name string) (*domain.Location, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+locationColumns+` FROM locations WHERE LOWER(name) = LOWER(?)`, name)
	l, err := scanLocation(row)
	if err != nil {
		return nil, notFound(err, "location", name)
	}
	return l, nil
}

func (r *SQLiteLocationRepo) List(ctx context.Context) ([]*domain.Location, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+locationColumns+` FROM locations ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	defer rows.Close()

	var out []*domain.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning location row: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating locations: %w", err)
	}
	return out, nil
}

func (r *SQLiteLocationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting location: %w", err)
	}
	return requireAffected(res, "location", id)
}

func scanLocation(s rowScanner) (*domain.Location, error) {
	var l domain.Location
	var createdAt string
	if err := s.Scan(&l.ID, &l.Name, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if l.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
		return nil, err
	}
	return &l, nil
}
