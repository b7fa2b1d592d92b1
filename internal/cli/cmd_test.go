package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/alexanderramin/stagehand/internal/app"
	"github.com/alexanderramin/stagehand/internal/config"
	"github.com/alexanderramin/stagehand/internal/db"
	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/alexanderramin/stagehand/internal/repository"
	"github.com/alexanderramin/stagehand/internal/service"
	"github.com/alexanderramin/stagehand/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	locationRepo := repository.NewSQLiteLocationRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)
	phaseRepo := repository.NewSQLitePhaseRepo(database)
	categoryRepo := repository.NewSQLiteCategoryRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	allocationRepo := repository.NewSQLiteAllocationRepo(database)
	capacityRepo := repository.NewSQLiteCapacityRepo(database)

	cfg := config.Default()
	cfg.DBPath = ":memory:"

	return &App{
		Locations:  service.NewLocationService(locationRepo),
		Events:     service.NewEventService(eventRepo, locationRepo),
		Phases:     service.NewPhaseService(phaseRepo, eventRepo),
		Tasks:      service.NewTaskService(taskRepo, categoryRepo, allocationRepo, eventRepo),
		Capacities: service.NewCapacityService(capacityRepo, eventRepo),
		Timeline: service.NewTimelineService(service.TimelineRepos{
			Locations:   locationRepo,
			Events:      eventRepo,
			Phases:      phaseRepo,
			Tasks:       taskRepo,
			Allocations: allocationRepo,
			Capacities:  capacityRepo,
		}, service.TimelineOptions{Workers: 2}),
		Import: service.NewImportService(db.NewSQLiteUnitOfWork(database)),
		Config: cfg,
	}
}

// executeCmd runs the root command with args and captures its output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func mustExec(t *testing.T, app *App, args ...string) string {
	t.Helper()
	out, err := executeCmd(t, app, args...)
	require.NoError(t, err, "stagehand %v\n%s", args, out)
	return out
}

// seedExpo books Expo (1-5 March) and Gala (3 March) at Hall 1.
func seedExpo(t *testing.T, app *App) {
	t.Helper()
	mustExec(t, app, "location", "add", "Hall 1")
	mustExec(t, app, "event", "add", "--name", "Expo", "--location", "hall 1", "--start", "2026-03-01", "--end", "2026-03-05")
	mustExec(t, app, "event", "add", "--name", "Gala", "--location", "Hall 1", "--start", "2026-03-03")
}

func TestLocationCommands(t *testing.T) {
	a := testApp(t)

	out := mustExec(t, a, "location", "add", "Hall 1")
	assert.Contains(t, out, "Created location Hall 1")

	out = mustExec(t, a, "location", "list")
	assert.Contains(t, out, "Hall 1")

	_, err := executeCmd(t, a, "location", "add", "HALL 1")
	assert.ErrorContains(t, err, "already exists")
}

func TestLocationRemove_RefusedWhileBooked(t *testing.T) {
	a := testApp(t)
	seedExpo(t, a)

	_, err := executeCmd(t, a, "location", "remove", "Hall 1")
	assert.ErrorContains(t, err, "events still booked")

	mustExec(t, a, "event", "remove", "Expo")
	mustExec(t, a, "event", "remove", "Gala")
	out := mustExec(t, a, "location", "remove", "Hall 1")
	assert.Contains(t, out, "Removed location Hall 1")
}

func TestEventAdd(t *testing.T) {
	a := testApp(t)
	seedExpo(t, a)

	out := mustExec(t, a, "event", "list")
	assert.Contains(t, out, "Expo")
	assert.Contains(t, out, "2026-03-01 → 2026-03-05")
	assert.Contains(t, out, "Hall 1")

	_, err := executeCmd(t, a, "event", "add", "--name", "X", "--location", "Hall 1", "--start", "2026/03/01")
	assert.ErrorContains(t, err, "YYYY-MM-DD")

	_, err = executeCmd(t, a, "event", "add", "--name", "X", "--start", "2026-03-01")
	assert.ErrorContains(t, err, "--location is required")

	_, err = executeCmd(t, a, "event", "add", "--interactive")
	assert.ErrorContains(t, err, "needs a terminal")
}

func TestEventList_JSON(t *testing.T) {
	a := testApp(t)
	seedExpo(t, a)

	out := mustExec(t, a, "event", "list", "--json", "--from", "2026-03-04")
	var events []domain.Event
	require.NoError(t, json.Unmarshal([]byte(out), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "Expo", events[0].Name)
	assert.Equal(t, domain.EventPlanned, events[0].Status)
}

func TestEventStatus(t *testing.T) {
	a := testApp(t)
	seedExpo(t, a)

	out := mustExec(t, a, "event", "status", "Gala", "cancelled")
	assert.Contains(t, out, "Gala is now")

	out = mustExec(t, a, "event", "list")
	assert.NotContains(t, out, "Gala", "cancelled events are hidden by default")
	out = mustExec(t, a, "event", "list", "--all")
	assert.Contains(t, out, "Gala")

	_, err := executeCmd(t, a, "event", "status", "Expo", "postponed")
	assert.ErrorContains(t, err, "invalid event status")
}

func TestTimelineRowsAndBoard(t *testing.T) {
	a := testApp(t)
	seedExpo(t, a)

	out := mustExec(t, a, "timeline", "rows")
	assert.Contains(t, out, "HALL 1")
	assert.Contains(t, out, "2 row(s), peak 2 concurrent")

	out = mustExec(t, a, "timeline", "board", "--static")
	assert.Contains(t, out, "Expo")
	assert.Contains(t, out, "Mar 2026")

	out = mustExec(t, a, "timeline", "board", "--json")
	var board app.LocationBoardResponse
	require.NoError(t, json.Unmarshal([]byte(out), &board))
	require.Len(t, board.Lanes, 1)
	assert.Equal(t, 2, board.Lanes[0].RowCount)
	assert.Equal(t, "2026-03-01", board.From)
	assert.Equal(t, "2026-03-05", board.To)

	_, err := executeCmd(t, a, "timeline", "rows", "--location", "Hall 9")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTimelinePhases(t *testing.T) {
	a := testApp(t)
	seedExpo(t, a)

	mustExec(t, a, "phase", "add", "--event", "Expo", "--name", "ASSEMBLY",
		"--start", "2026-03-01 08:00", "--end", "2026-03-02 12:00")
	mustExec(t, a, "phase", "add", "--event", "Expo", "--name", "EVENT",
		"--start", "2026-03-02 12:00", "--end", "2026-03-04 18:00")

	out := mustExec(t, a, "phase", "list", "--event", "Expo")
	assert.Contains(t, out, "2026-03-01 08:00")

	out = mustExec(t, a, "timeline", "phases", "Expo")
	assert.Contains(t, out, "ASSEMBLY hands over to EVENT")

	out = mustExec(t, a, "timeline", "phases", "--json")
	var plans []app.EventPhasePlan
	require.NoError(t, json.Unmarshal([]byte(out), &plans))
	require.Len(t, plans, 2, "every active event when none are named")
	assert.Equal(t, "Expo", plans[0].EventName)
	assert.Len(t, plans[0].Transitions, 1)
	assert.Empty(t, plans[1].Phases)

	_, err := executeCmd(t, a, "phase", "add", "--event", "Expo", "--name", "EVENT")
	assert.ErrorContains(t, err, "--start and --end are required")
}

func TestWorkload(t *testing.T) {
	a := testApp(t)
	seedExpo(t, a)

	mustExec(t, a, "category", "add", "Rigging")
	mustExec(t, a, "task", "add", "--event", "Expo", "--title", "Hang truss", "--estimate", "20",
		"--category", "rigging", "--deadline", "2026-03-04 12:00")

	out := mustExec(t, a, "task", "list", "--event", "Expo", "--json")
	var tasks []domain.Task
	require.NoError(t, json.Unmarshal([]byte(out), &tasks))
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].CategoryID)

	mustExec(t, a, "alloc", "add", "--task", tasks[0].ID, "--date", "2026-03-01", "--hours", "10")
	out = mustExec(t, a, "capacity", "set", "--event", "Expo", "--date", "2026-03-01", "--until", "2026-03-03", "--hours", "8")
	assert.Contains(t, out, "Set 8h capacity on 3 day(s)")

	out = mustExec(t, a, "alloc", "list", "--event", "Expo")
	assert.Contains(t, out, "Hang truss")

	out = mustExec(t, a, "workload", "Expo", "--now", "2026-03-01T12:00:00Z")
	assert.Contains(t, out, "OVER")
	assert.Contains(t, out, "Unused capacity: 2026-03-02 (8h), 2026-03-03 (8h)")
	assert.Contains(t, out, "Hang truss")
	assert.Contains(t, out, "PRESSURE")

	out = mustExec(t, a, "workload", "--json", "--now", "2026-03-01T12:00:00Z")
	var resp app.WorkloadResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Events, 2)
	require.Len(t, resp.Pressure, 1)
	assert.Equal(t, 10.0, resp.Pressure[0].RemainingEffortHours)
	assert.Equal(t, 3, resp.Pressure[0].RemainingDays)
	assert.True(t, resp.Pressure[0].IsUnderPressure)
}

func TestImportCommand(t *testing.T) {
	a := testApp(t)

	out := mustExec(t, a, "import", "testdata/spring_expo.yaml")
	assert.Contains(t, out, "IMPORTED")
	assert.Contains(t, out, "Events")

	out = mustExec(t, a, "timeline", "rows")
	assert.Contains(t, out, "Spring Expo")

	_, err := executeCmd(t, a, "import", "testdata/missing.yaml")
	assert.Error(t, err)
}

func TestConfigCommand_JSON(t *testing.T) {
	a := testApp(t)
	out := mustExec(t, a, "config", "--json")

	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, ":memory:", cfg.DBPath)
	assert.Equal(t, 2, cfg.Board.DayWidth)
}
