package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Every statement is idempotent, so it runs on
// each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Columns added by ALTER TABLE already exist on re-runs.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS locations (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS events (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		location_id TEXT NOT NULL REFERENCES locations(id) ON DELETE RESTRICT,
		start_date  TEXT NOT NULL,
		end_date    TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL,
		CHECK(end_date >= start_date)
	)`,

	`CREATE TABLE IF NOT EXISTS phases (
		id         TEXT PRIMARY KEY,
		event_id   TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		start_at   TEXT NOT NULL,
		end_at     TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS work_categories (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id             TEXT PRIMARY KEY,
		event_id       TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		category_id    TEXT REFERENCES work_categories(id) ON DELETE SET NULL,
		title          TEXT NOT NULL,
		estimate_hours REAL NOT NULL DEFAULT 0 CHECK(estimate_hours >= 0),
		deadline       TEXT,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS allocations (
		id           TEXT PRIMARY KEY,
		task_id      TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		event_id     TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		date         TEXT NOT NULL,
		effort_hours REAL NOT NULL CHECK(effort_hours >= 0),
		created_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS capacities (
		event_id       TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		date           TEXT NOT NULL,
		capacity_hours REAL NOT NULL CHECK(capacity_hours >= 0),
		updated_at     TEXT NOT NULL,
		PRIMARY KEY (event_id, date)
	)`,

	// Event status arrived after the first schema.
	`ALTER TABLE events ADD COLUMN status TEXT NOT NULL DEFAULT 'planned'
		CHECK(status IN ('planned','confirmed','cancelled'))`,

	`CREATE INDEX IF NOT EXISTS idx_events_location ON events(location_id)`,
	`CREATE INDEX IF NOT EXISTS idx_phases_event ON phases(event_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_event ON tasks(event_id)`,
	`CREATE INDEX IF NOT EXISTS idx_allocations_event_date ON allocations(event_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_allocations_task ON allocations(task_id)`,
}
