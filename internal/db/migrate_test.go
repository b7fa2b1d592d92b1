package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMigratedDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openMigratedDB(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openMigratedDB(t)

	for _, table := range []string{"locations", "events", "phases", "work_categories", "tasks", "allocations", "capacities"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openMigratedDB(t)

	for _, idx := range []string{
		"idx_events_location",
		"idx_phases_event",
		"idx_tasks_event",
		"idx_allocations_event_date",
		"idx_allocations_task",
	} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func seedEvent(t *testing.T, db *sql.DB) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO locations (id, name, created_at) VALUES ('loc', 'Hall 1', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO events (id, name, location_id, start_date, end_date, created_at, updated_at)
		VALUES ('ev', 'Expo', 'loc', '2026-03-01', '2026-03-05', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
}

func TestMigrate_EventStatusDefaultsToPlanned(t *testing.T) {
	db := openMigratedDB(t)
	seedEvent(t, db)

	var status string
	require.NoError(t, db.QueryRow(`SELECT status FROM events WHERE id = 'ev'`).Scan(&status))
	assert.Equal(t, "planned", status)

	_, err := db.Exec(`UPDATE events SET status = 'postponed' WHERE id = 'ev'`)
	assert.Error(t, err, "status check constraint")
}

func TestMigrate_CapacityIsUniquePerEventDate(t *testing.T) {
	db := openMigratedDB(t)
	seedEvent(t, db)

	insert := `INSERT INTO capacities (event_id, date, capacity_hours, updated_at) VALUES ('ev', '2026-03-02', ?, '2026-01-01T00:00:00Z')`
	_, err := db.Exec(insert, 8.0)
	require.NoError(t, err)
	_, err = db.Exec(insert, 4.0)
	assert.Error(t, err)
}

func TestMigrate_DeletingEventCascades(t *testing.T) {
	db := openMigratedDB(t)
	seedEvent(t, db)

	_, err := db.Exec(`INSERT INTO phases (id, event_id, name, start_at, end_at, created_at)
		VALUES ('ph', 'ev', 'EVENT', '2026-03-02T09:00:00Z', '2026-03-04T18:00:00Z', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM events WHERE id = 'ev'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM phases`).Scan(&n))
	assert.Zero(t, n)
}

func TestMigrate_LocationInUseCannotBeDeleted(t *testing.T) {
	db := openMigratedDB(t)
	seedEvent(t, db)

	_, err := db.Exec(`DELETE FROM locations WHERE id = 'loc'`)
	assert.Error(t, err)
}
