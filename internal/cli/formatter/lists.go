package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/stagehand/internal/app"
	"github.com/alexanderramin/stagehand/internal/domain"
)

func FormatLocations(locations []*domain.Location) string {
	rows := make([][]string, 0, len(locations))
	for _, l := range locations {
		rows = append(rows, []string{TruncID(l.ID), l.Name})
	}
	return RenderTable([]string{"ID", "NAME"}, rows)
}

// FormatEvents lists events with their location names; unknown location IDs
// print truncated.
func FormatEvents(events []*domain.Event, locationNames map[string]string) string {
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		loc, ok := locationNames[e.LocationID]
		if !ok {
			loc = TruncID(e.LocationID)
		}
		rows = append(rows, []string{
			TruncID(e.ID),
			e.Name,
			loc,
			DateSpan(e.StartDate, e.EndDate),
			StatusPill(e.Status),
		})
	}
	return RenderTable([]string{"ID", "EVENT", "LOCATION", "DATES", "STATUS"}, rows)
}

// FormatPhases prints phase timestamps in loc.
func FormatPhases(phases []*domain.Phase, loc *time.Location) string {
	const layout = "2006-01-02 15:04"
	rows := make([][]string, 0, len(phases))
	for _, p := range phases {
		rows = append(rows, []string{
			TruncID(p.ID),
			PhaseStyle(p.Kind()).Render(p.Name),
			p.StartAt.In(loc).Format(layout),
			p.EndAt.In(loc).Format(layout),
		})
	}
	return RenderTable([]string{"ID", "PHASE", "START", "END"}, rows)
}

func FormatCategories(categories []*domain.WorkCategory) string {
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{TruncID(c.ID), c.Name})
	}
	return RenderTable([]string{"ID", "CATEGORY"}, rows)
}

func FormatTasks(tasks []*domain.Task, categoryNames map[string]string, now time.Time) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		category := Dim("--")
		if t.CategoryID != nil {
			category = StylePurple.Render(categoryNames[*t.CategoryID])
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			t.Title,
			category,
			FormatHours(t.EstimateHours),
			DeadlineFrom(t.Deadline, now),
		})
	}
	return RenderTable([]string{"ID", "TASK", "CATEGORY", "ESTIMATE", "DEADLINE"}, rows)
}

func FormatAllocations(allocations []*domain.Allocation, taskTitles map[string]string) string {
	rows := make([][]string, 0, len(allocations))
	for _, a := range allocations {
		rows = append(rows, []string{a.Date, taskTitles[a.TaskID], FormatHours(a.EffortHours)})
	}
	return RenderTable([]string{"DATE", "TASK", "EFFORT"}, rows)
}

func FormatCapacities(capacities []*domain.Capacity) string {
	rows := make([][]string, 0, len(capacities))
	for _, c := range capacities {
		rows = append(rows, []string{c.Date, FormatHours(c.CapacityHours)})
	}
	return RenderTable([]string{"DATE", "CAPACITY"}, rows)
}

// FormatImportResult summarises a completed workspace import in a box.
func FormatImportResult(path string, r *app.ImportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", Dim(path))
	lines := []struct {
		label string
		n     int
	}{
		{"Locations", r.LocationCount},
		{"Categories", r.CategoryCount},
		{"Events", r.EventCount},
		{"Phases", r.PhaseCount},
		{"Capacities", r.CapacityCount},
		{"Tasks", r.TaskCount},
		{"Allocations", r.AllocationCount},
	}
	for _, l := range lines {
		fmt.Fprintf(&b, "%-12s %s\n", l.label, Bold(fmt.Sprint(l.n)))
	}
	if r.Reused > 0 {
		fmt.Fprintf(&b, "%s", Dim(fmt.Sprintf("%d existing location(s) or categories reused", r.Reused)))
	}
	return RenderBox("Imported", strings.TrimRight(b.String(), "\n"))
}
