package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stagehand/internal/db"
	"github.com/alexanderramin/stagehand/internal/domain"
)

type SQLiteCategoryRepo struct {
	db db.DBTX
}

func NewSQLiteCategoryRepo(conn db.DBTX) *SQLiteCategoryRepo {
	return &SQLiteCategoryRepo{db: conn}
}

func (r *SQLiteCategoryRepo) Create(ctx context.Context, c *domain.WorkCategory) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = nowUTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO work_categories (id, name, created_at) VALUES (?, ?, ?)`,
		c.ID, c.Name, formatTimestamp(c.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting category: %w", err)
	}
	return nil
}

func (r *SQLiteCategoryRepo) GetByName(ctx context.Context, name string) (*domain.WorkCategory, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM work_categories WHERE LOWER(name) = LOWER(?)`, name)
	c, err := scanCategory(row)
	if err != nil {
		return nil, notFound(err, "category", name)
	}
	return c, nil
}

func (r *SQLiteCategoryRepo) List(ctx context.Context) ([]*domain.WorkCategory, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at FROM work_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var out []*domain.WorkCategory
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return out, nil
}

func scanCategory(s rowScanner) (*domain.WorkCategory, error) {
	var c domain.WorkCategory
	var createdAt string
	if err := s.Scan(&c.ID, &c.Name, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if c.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
		return nil, err
	}
	return &c, nil
}
