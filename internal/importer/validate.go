package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/stagehand/internal/domain"
)

// ValidateWorkspace checks the whole file before anything is converted and
// returns every problem found, not just the first.
func ValidateWorkspace(ws *WorkspaceFile) []error {
	var errs []error

	locationRefs := make(map[string]bool)
	errs = append(errs, validateNamed("locations", refNames(ws.Locations), locationRefs)...)

	categoryRefs := make(map[string]bool)
	errs = append(errs, validateNamed("categories", categoryNames(ws.Categories), categoryRefs)...)

	eventRefs := make(map[string]bool)
	for i := range ws.Events {
		errs = append(errs, validateEvent(i, &ws.Events[i], locationRefs, eventRefs)...)
	}

	taskRefs := make(map[string]bool)
	for i := range ws.Tasks {
		errs = append(errs, validateTask(i, &ws.Tasks[i], eventRefs, categoryRefs, taskRefs)...)
	}
	return errs
}

type refName struct{ ref, name string }

func refNames(ls []LocationImport) []refName {
	out := make([]refName, len(ls))
	for i, l := range ls {
		out[i] = refName{l.Ref, l.Name}
	}
	return out
}

func categoryNames(cs []CategoryImport) []refName {
	out := make([]refName, len(cs))
	for i, c := range cs {
		out[i] = refName{c.Ref, c.Name}
	}
	return out
}

// validateNamed checks ref/name pairs: both required, refs unique, names
// unique ignoring case.
func validateNamed(section string, items []refName, refs map[string]bool) []error {
	var errs []error
	names := make(map[string]bool)
	for i, it := range items {
		prefix := fmt.Sprintf("%s[%d]", section, i)
		if it.ref == "" {
			errs = append(errs, fmt.Errorf("%s: ref is required", prefix))
		} else if refs[it.ref] {
			errs = append(errs, fmt.Errorf("%s: duplicate ref %q", prefix, it.ref))
		} else {
			refs[it.ref] = true
		}
		if it.name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", prefix))
			continue
		}
		key := strings.ToLower(it.name)
		if names[key] {
			errs = append(errs, fmt.Errorf("%s: duplicate name %q", prefix, it.name))
		}
		names[key] = true
	}
	return errs
}

func validateEvent(i int, e *EventImport, locationRefs, eventRefs map[string]bool) []error {
	var errs []error
	prefix := fmt.Sprintf("events[%d]", i)

	switch {
	case e.Ref == "":
		errs = append(errs, fmt.Errorf("%s: ref is required", prefix))
	case eventRefs[e.Ref]:
		errs = append(errs, fmt.Errorf("%s: duplicate ref %q", prefix, e.Ref))
	default:
		eventRefs[e.Ref] = true
	}
	if e.Name == "" {
		errs = append(errs, fmt.Errorf("%s: name is required", prefix))
	}
	if !locationRefs[e.LocationRef] {
		errs = append(errs, fmt.Errorf("%s: unknown location_ref %q", prefix, e.LocationRef))
	}
	if e.Status != "" && !domain.ValidEventStatuses[e.Status] {
		errs = append(errs, fmt.Errorf("%s: invalid status %q", prefix, e.Status))
	}

	start, startErr := domain.ParseDateKey(e.StartDate)
	if startErr != nil {
		errs = append(errs, fmt.Errorf("%s.start_date: %w", prefix, startErr))
	}
	end, endErr := domain.ParseDateKey(e.EndDate)
	if endErr != nil {
		errs = append(errs, fmt.Errorf("%s.end_date: %w", prefix, endErr))
	}
	if startErr == nil && endErr == nil && end.Before(start) {
		errs = append(errs, fmt.Errorf("%s: end_date %s is before start_date %s", prefix, e.EndDate, e.StartDate))
	}

	for j, p := range e.Phases {
		pp := fmt.Sprintf("%s.phases[%d]", prefix, j)
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", pp))
		}
		ps, psErr := parseInstant(p.Start)
		if psErr != nil {
			errs = append(errs, fmt.Errorf("%s.start: %w", pp, psErr))
		}
		pe, peErr := parseInstant(p.End)
		if peErr != nil {
			errs = append(errs, fmt.Errorf("%s.end: %w", pp, peErr))
		}
		if psErr == nil && peErr == nil && pe.Before(ps) {
			errs = append(errs, fmt.Errorf("%s: end is before start", pp))
		}
	}

	dates := make(map[string]bool)
	for j, c := range e.Capacities {
		cp := fmt.Sprintf("%s.capacities[%d]", prefix, j)
		if _, err := domain.ParseDateKey(c.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: %w", cp, err))
		} else if dates[c.Date] {
			errs = append(errs, fmt.Errorf("%s: duplicate capacity for %s", cp, c.Date))
		}
		dates[c.Date] = true
		if c.Hours < 0 {
			errs = append(errs, fmt.Errorf("%s: hours must not be negative (got %g)", cp, c.Hours))
		}
	}
	return errs
}

func validateTask(i int, t *TaskImport, eventRefs, categoryRefs, taskRefs map[string]bool) []error {
	var errs []error
	prefix := fmt.Sprintf("tasks[%d]", i)

	if t.Ref != "" {
		if taskRefs[t.Ref] {
			errs = append(errs, fmt.Errorf("%s: duplicate ref %q", prefix, t.Ref))
		}
		taskRefs[t.Ref] = true
	}
	if t.Title == "" {
		errs = append(errs, fmt.Errorf("%s: title is required", prefix))
	}
	if !eventRefs[t.EventRef] {
		errs = append(errs, fmt.Errorf("%s: unknown event_ref %q", prefix, t.EventRef))
	}
	if t.CategoryRef != "" && !categoryRefs[t.CategoryRef] {
		errs = append(errs, fmt.Errorf("%s: unknown category_ref %q", prefix, t.CategoryRef))
	}
	if t.EstimateHours < 0 {
		errs = append(errs, fmt.Errorf("%s: estimate_hours must not be negative (got %g)", prefix, t.EstimateHours))
	}
	if t.Deadline != "" {
		if _, err := parseDeadline(t.Deadline); err != nil {
			errs = append(errs, fmt.Errorf("%s.deadline: %w", prefix, err))
		}
	}
	for j, a := range t.Allocations {
		ap := fmt.Sprintf("%s.allocations[%d]", prefix, j)
		if _, err := domain.ParseDateKey(a.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: %w", ap, err))
		}
		if a.Hours < 0 {
			errs = append(errs, fmt.Errorf("%s: hours must not be negative (got %g)", ap, a.Hours))
		}
	}
	return errs
}

func parseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q (expected RFC 3339)", s)
	}
	return t, nil
}

// parseDeadline accepts an RFC 3339 instant or a bare date, which means the
// end of that day in UTC.
func parseDeadline(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	d, err := domain.ParseDateKey(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid deadline %q (expected RFC 3339 or YYYY-MM-DD)", s)
	}
	return d.AddDate(0, 0, 1).Add(-time.Second), nil
}
