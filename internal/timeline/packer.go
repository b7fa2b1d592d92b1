// Package timeline lays out and evaluates event timelines: row packing of
// concurrent bookings, same-day phase transitions, and daily
// demand/capacity/pressure signals. Every function is a pure transform over
// caller-owned slices and returns freshly allocated results.
package timeline

import (
	"sort"
)

// Interval is a closed date range [StartKey, EndKey] placed within a group.
// Keys compare as strings, so YYYY-MM-DD keys order chronologically.
type Interval struct {
	ID       string `json:"id"`
	GroupKey string `json:"group_key"`
	StartKey string `json:"start_key"`
	EndKey   string `json:"end_key"`
	Label    string `json:"label"`
}

// Overlaps reports whether two closed ranges share at least one key.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.StartKey <= other.EndKey && other.StartKey <= iv.EndKey
}

// RowAssignment places one interval on a zero-based row within its group.
type RowAssignment struct {
	IntervalID string `json:"interval_id"`
	GroupKey   string `json:"group_key"`
	Row        int    `json:"row"`
}

// AssignRows places every interval on the lowest row of its group where it
// overlaps nothing already placed. Groups are packed independently.
//
// Within a group intervals are taken in (StartKey, EndKey, Label, ID) order,
// which makes the result independent of input order. Greedy first-fit in
// start order uses exactly as many rows as the largest set of mutually
// overlapping intervals, see MaxConcurrent.
//
// Results are ordered by group key, then by packing order.
func AssignRows(intervals []Interval) ([]RowAssignment, error) {
	if err := validateIntervals(intervals); err != nil {
		return nil, err
	}

	groups := groupIntervals(intervals)
	out := make([]RowAssignment, 0, len(intervals))
	for _, key := range sortedGroupKeys(groups) {
		out = append(out, packGroup(groups[key])...)
	}
	return out, nil
}

// RowCounts returns the number of rows used per group.
func RowCounts(assignments []RowAssignment) map[string]int {
	counts := make(map[string]int)
	for _, a := range assignments {
		if a.Row+1 > counts[a.GroupKey] {
			counts[a.GroupKey] = a.Row + 1
		}
	}
	return counts
}

// MaxConcurrent returns, per group, the largest number of intervals covering
// any single key. For a valid packing this equals the group's row count.
func MaxConcurrent(intervals []Interval) (map[string]int, error) {
	if err := validateIntervals(intervals); err != nil {
		return nil, err
	}

	type edge struct {
		key   string
		delta int
	}

	result := make(map[string]int)
	for key, group := range groupIntervals(intervals) {
		edges := make([]edge, 0, 2*len(group))
		for _, iv := range group {
			edges = append(edges, edge{iv.StartKey, +1}, edge{iv.EndKey, -1})
		}
		// Ranges are closed: an interval ending on a key still overlaps one
		// starting on it, so openings sort before closings at equal keys.
		sort.Slice(edges, func(i, j int) bool {
			if edges[i].key != edges[j].key {
				return edges[i].key < edges[j].key
			}
			return edges[i].delta > edges[j].delta
		})

		cur, best := 0, 0
		for _, e := range edges {
			cur += e.delta
			if cur > best {
				best = cur
			}
		}
		result[key] = best
	}
	return result, nil
}

func packGroup(group []Interval) []RowAssignment {
	sorted := make([]Interval, len(group))
	copy(sorted, group)
	sortIntervals(sorted)

	// rowEnds[r] is the largest EndKey placed on row r so far.
	var rowEnds []string
	out := make([]RowAssignment, 0, len(sorted))
	for _, iv := range sorted {
		row := -1
		for r, end := range rowEnds {
			if end < iv.StartKey {
				row = r
				break
			}
		}
		if row < 0 {
			row = len(rowEnds)
			rowEnds = append(rowEnds, iv.EndKey)
		} else if iv.EndKey > rowEnds[row] {
			rowEnds[row] = iv.EndKey
		}
		out = append(out, RowAssignment{IntervalID: iv.ID, GroupKey: iv.GroupKey, Row: row})
	}
	return out
}

// sortIntervals orders intervals by start, end, label and finally ID.
func sortIntervals(ivs []Interval) {
	sort.SliceStable(ivs, func(i, j int) bool {
		a, b := ivs[i], ivs[j]
		if a.StartKey != b.StartKey {
			return a.StartKey < b.StartKey
		}
		if a.EndKey != b.EndKey {
			return a.EndKey < b.EndKey
		}
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		return a.ID < b.ID
	})
}

func groupIntervals(intervals []Interval) map[string][]Interval {
	groups := make(map[string][]Interval)
	for _, iv := range intervals {
		groups[iv.GroupKey] = append(groups[iv.GroupKey], iv)
	}
	return groups
}

func sortedGroupKeys(groups map[string][]Interval) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func validateIntervals(intervals []Interval) error {
	for _, iv := range intervals {
		if iv.StartKey == "" || iv.EndKey == "" {
			return invalid(ErrInvalidInterval, "interval "+iv.ID, "start and end keys are required")
		}
		if iv.StartKey > iv.EndKey {
			return invalid(ErrInvalidInterval, "interval "+iv.ID,
				"start %s is after end %s", iv.StartKey, iv.EndKey)
		}
	}
	return nil
}
