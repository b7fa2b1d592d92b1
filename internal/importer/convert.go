package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/google/uuid"
)

// Workspace is a converted import, ready for persistence in dependency
// order: locations and categories, events, phases and capacities, tasks,
// allocations.
type Workspace struct {
	Locations   []*domain.Location
	Categories  []*domain.WorkCategory
	Events      []*domain.Event
	Phases      []*domain.Phase
	Capacities  []*domain.Capacity
	Tasks       []*domain.Task
	Allocations []*domain.Allocation
}

// Convert replaces refs with generated IDs. Call ValidateWorkspace first;
// Convert still reports the first parse failure it meets.
func Convert(ws *WorkspaceFile) (*Workspace, error) {
	now := time.Now().UTC().Truncate(time.Second)
	out := &Workspace{}

	locationIDs := make(map[string]string, len(ws.Locations))
	for _, l := range ws.Locations {
		loc := &domain.Location{ID: uuid.New().String(), Name: l.Name, CreatedAt: now}
		locationIDs[l.Ref] = loc.ID
		out.Locations = append(out.Locations, loc)
	}

	categoryIDs := make(map[string]string, len(ws.Categories))
	for _, c := range ws.Categories {
		cat := &domain.WorkCategory{ID: uuid.New().String(), Name: c.Name, CreatedAt: now}
		categoryIDs[c.Ref] = cat.ID
		out.Categories = append(out.Categories, cat)
	}

	eventIDs := make(map[string]string, len(ws.Events))
	for _, e := range ws.Events {
		locID, ok := locationIDs[e.LocationRef]
		if !ok {
			return nil, fmt.Errorf("event %q: unknown location_ref %q", e.Ref, e.LocationRef)
		}
		status := domain.EventStatus(e.Status)
		if status == "" {
			status = domain.EventPlanned
		}
		ev := &domain.Event{
			ID:         uuid.New().String(),
			Name:       e.Name,
			LocationID: locID,
			StartDate:  e.StartDate,
			EndDate:    e.EndDate,
			Status:     status,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := ev.Validate(); err != nil {
			return nil, err
		}
		eventIDs[e.Ref] = ev.ID
		out.Events = append(out.Events, ev)

		for _, p := range e.Phases {
			start, err := parseInstant(p.Start)
			if err != nil {
				return nil, fmt.Errorf("event %q phase %q: %w", e.Ref, p.Name, err)
			}
			end, err := parseInstant(p.End)
			if err != nil {
				return nil, fmt.Errorf("event %q phase %q: %w", e.Ref, p.Name, err)
			}
			out.Phases = append(out.Phases, &domain.Phase{
				ID:        uuid.New().String(),
				EventID:   ev.ID,
				Name:      p.Name,
				StartAt:   start,
				EndAt:     end,
				CreatedAt: now,
			})
		}
		for _, c := range e.Capacities {
			out.Capacities = append(out.Capacities, &domain.Capacity{
				EventID:       ev.ID,
				Date:          c.Date,
				CapacityHours: c.Hours,
				UpdatedAt:     now,
			})
		}
	}

	for _, t := range ws.Tasks {
		eventID, ok := eventIDs[t.EventRef]
		if !ok {
			return nil, fmt.Errorf("task %q: unknown event_ref %q", t.Title, t.EventRef)
		}
		task := &domain.Task{
			ID:            uuid.New().String(),
			EventID:       eventID,
			Title:         t.Title,
			EstimateHours: t.EstimateHours,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if t.CategoryRef != "" {
			catID := categoryIDs[t.CategoryRef]
			task.CategoryID = &catID
		}
		if t.Deadline != "" {
			d, err := parseDeadline(t.Deadline)
			if err != nil {
				return nil, fmt.Errorf("task %q: %w", t.Title, err)
			}
			task.Deadline = &d
		}
		out.Tasks = append(out.Tasks, task)

		for _, a := range t.Allocations {
			out.Allocations = append(out.Allocations, &domain.Allocation{
				ID:          uuid.New().String(),
				TaskID:      task.ID,
				EventID:     eventID,
				Date:        a.Date,
				EffortHours: a.Hours,
				CreatedAt:   now,
			})
		}
	}
	return out, nil
}
