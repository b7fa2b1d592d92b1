package timeline

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowsByID(assignments []RowAssignment) map[string]int {
	m := make(map[string]int, len(assignments))
	for _, a := range assignments {
		m[a.IntervalID] = a.Row
	}
	return m
}

func TestAssignRows_StaggeredBookings(t *testing.T) {
	intervals := []Interval{
		{ID: "A", GroupKey: "hall-1", StartKey: "2026-01-01", EndKey: "2026-01-03", Label: "A"},
		{ID: "B", GroupKey: "hall-1", StartKey: "2026-01-02", EndKey: "2026-01-04", Label: "B"},
		{ID: "C", GroupKey: "hall-1", StartKey: "2026-01-05", EndKey: "2026-01-06", Label: "C"},
	}

	got, err := AssignRows(intervals)
	require.NoError(t, err)

	rows := rowsByID(got)
	assert.Equal(t, 0, rows["A"])
	assert.Equal(t, 1, rows["B"])
	assert.Equal(t, 0, rows["C"], "C starts after A ends and reuses row 0")
	assert.Equal(t, map[string]int{"hall-1": 2}, RowCounts(got))
}

func TestAssignRows_TouchingEndpointsOverlap(t *testing.T) {
	// Closed ranges: ending on the 3rd and starting on the 3rd share a day.
	intervals := []Interval{
		{ID: "A", GroupKey: "g", StartKey: "2026-01-01", EndKey: "2026-01-03"},
		{ID: "B", GroupKey: "g", StartKey: "2026-01-03", EndKey: "2026-01-04"},
	}
	got, err := AssignRows(intervals)
	require.NoError(t, err)
	rows := rowsByID(got)
	assert.Equal(t, 0, rows["A"])
	assert.Equal(t, 1, rows["B"])
}

func TestAssignRows_GroupsAreIndependent(t *testing.T) {
	intervals := []Interval{
		{ID: "A", GroupKey: "hall-2", StartKey: "2026-01-01", EndKey: "2026-01-10"},
		{ID: "B", GroupKey: "hall-1", StartKey: "2026-01-01", EndKey: "2026-01-10"},
		{ID: "C", GroupKey: "hall-1", StartKey: "2026-01-02", EndKey: "2026-01-03"},
	}
	got, err := AssignRows(intervals)
	require.NoError(t, err)

	rows := rowsByID(got)
	assert.Equal(t, 0, rows["A"])
	assert.Equal(t, 0, rows["B"])
	assert.Equal(t, 1, rows["C"])

	// Output is ordered by group key.
	require.Len(t, got, 3)
	assert.Equal(t, "hall-1", got[0].GroupKey)
	assert.Equal(t, "hall-2", got[2].GroupKey)
}

func TestAssignRows_TiesBrokenByLabelThenID(t *testing.T) {
	intervals := []Interval{
		{ID: "z", GroupKey: "g", StartKey: "2026-01-01", EndKey: "2026-01-02", Label: "Beta"},
		{ID: "y", GroupKey: "g", StartKey: "2026-01-01", EndKey: "2026-01-02", Label: "Alpha"},
		{ID: "x", GroupKey: "g", StartKey: "2026-01-01", EndKey: "2026-01-02", Label: "Alpha"},
	}
	got, err := AssignRows(intervals)
	require.NoError(t, err)
	rows := rowsByID(got)
	assert.Equal(t, 0, rows["x"])
	assert.Equal(t, 1, rows["y"])
	assert.Equal(t, 2, rows["z"])
}

func TestAssignRows_EmptyAndSingle(t *testing.T) {
	got, err := AssignRows(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = AssignRows([]Interval{{ID: "only", GroupKey: "g", StartKey: "2026-01-01", EndKey: "2026-01-01"}})
	require.NoError(t, err)
	assert.Equal(t, []RowAssignment{{IntervalID: "only", GroupKey: "g", Row: 0}}, got)
}

func TestAssignRows_MaximalOverlap(t *testing.T) {
	var intervals []Interval
	for i := 0; i < 6; i++ {
		intervals = append(intervals, Interval{
			ID: fmt.Sprintf("iv-%d", i), GroupKey: "g", StartKey: "2026-02-01", EndKey: "2026-02-28",
		})
	}
	got, err := AssignRows(intervals)
	require.NoError(t, err)
	assert.Equal(t, 6, RowCounts(got)["g"])
}

func TestAssignRows_RejectsReversedInterval(t *testing.T) {
	_, err := AssignRows([]Interval{
		{ID: "ok", GroupKey: "g", StartKey: "2026-01-01", EndKey: "2026-01-02"},
		{ID: "bad", GroupKey: "g", StartKey: "2026-01-05", EndKey: "2026-01-02"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Record, "bad")
}

func TestAssignRows_RejectsMissingKey(t *testing.T) {
	_, err := AssignRows([]Interval{{ID: "x", GroupKey: "g", StartKey: "", EndKey: "2026-01-02"}})
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestAssignRows_DoesNotMutateInput(t *testing.T) {
	intervals := []Interval{
		{ID: "B", GroupKey: "g", StartKey: "2026-01-02", EndKey: "2026-01-04"},
		{ID: "A", GroupKey: "g", StartKey: "2026-01-01", EndKey: "2026-01-03"},
	}
	snapshot := append([]Interval(nil), intervals...)
	_, err := AssignRows(intervals)
	require.NoError(t, err)
	assert.Equal(t, snapshot, intervals)
}

// randomIntervals builds n intervals spread over up to three groups within a
// 30-day window.
func randomIntervals(rng *rand.Rand, n int) []Interval {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]Interval, n)
	for i := range out {
		start := rng.Intn(30)
		length := rng.Intn(6)
		out[i] = Interval{
			ID:       fmt.Sprintf("iv-%02d", i),
			GroupKey: fmt.Sprintf("loc-%d", rng.Intn(3)),
			StartKey: base.AddDate(0, 0, start).Format("2006-01-02"),
			EndKey:   base.AddDate(0, 0, start+length).Format("2006-01-02"),
			Label:    fmt.Sprintf("Event %d", rng.Intn(4)),
		}
	}
	return out
}

// bruteForceMaxOverlap counts, for every day of the window, how many
// intervals of each group cover it.
func bruteForceMaxOverlap(intervals []Interval) map[string]int {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	best := make(map[string]int)
	for day := 0; day < 40; day++ {
		key := base.AddDate(0, 0, day).Format("2006-01-02")
		counts := make(map[string]int)
		for _, iv := range intervals {
			if iv.StartKey <= key && key <= iv.EndKey {
				counts[iv.GroupKey]++
			}
		}
		for g, c := range counts {
			if c > best[g] {
				best[g] = c
			}
		}
	}
	return best
}

// TestAssignRows_Invariants_RowCountIsOptimal property-tests that the number
// of rows per group equals the maximum number of intervals covering one day,
// and that no two intervals on the same row overlap.
func TestAssignRows_Invariants_RowCountIsOptimal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 300; trial++ {
		intervals := randomIntervals(rng, rng.Intn(25)+1)

		got, err := AssignRows(intervals)
		require.NoError(t, err)
		require.Len(t, got, len(intervals), "trial %d: every interval gets a row", trial)

		expected := bruteForceMaxOverlap(intervals)
		assert.Equal(t, expected, RowCounts(got), "trial %d: row count must equal max overlap", trial)

		sweep, err := MaxConcurrent(intervals)
		require.NoError(t, err)
		assert.Equal(t, expected, sweep, "trial %d: sweep must agree with brute force", trial)

		byID := make(map[string]Interval, len(intervals))
		for _, iv := range intervals {
			byID[iv.ID] = iv
		}
		for i := 0; i < len(got); i++ {
			for j := i + 1; j < len(got); j++ {
				a, b := got[i], got[j]
				if a.GroupKey != b.GroupKey || a.Row != b.Row {
					continue
				}
				assert.False(t, byID[a.IntervalID].Overlaps(byID[b.IntervalID]),
					"trial %d: %s and %s share row %d but overlap", trial, a.IntervalID, b.IntervalID, a.Row)
			}
		}
	}
}

// TestAssignRows_Invariant_InputOrderIrrelevant checks that shuffling the
// input never changes any interval's row.
func TestAssignRows_Invariant_InputOrderIrrelevant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		intervals := randomIntervals(rng, rng.Intn(20)+2)
		first, err := AssignRows(intervals)
		require.NoError(t, err)

		shuffled := append([]Interval(nil), intervals...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		second, err := AssignRows(shuffled)
		require.NoError(t, err)

		assert.Equal(t, first, second, "trial %d", trial)
	}
}
