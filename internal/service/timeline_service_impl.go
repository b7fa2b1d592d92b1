package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/stagehand/internal/app"
	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/alexanderramin/stagehand/internal/repository"
	"github.com/alexanderramin/stagehand/internal/timeline"
	"golang.org/x/sync/errgroup"
)

// TimelineRepos bundles the read-side repositories the timeline needs.
type TimelineRepos struct {
	Locations   repository.LocationRepo
	Events      repository.EventRepo
	Phases      repository.PhaseRepo
	Tasks       repository.TaskRepo
	Allocations repository.AllocationRepo
	Capacities  repository.CapacityRepo
}

// TimelineOptions tune evaluation. Zero values mean UTC, four workers and
// the wall clock.
type TimelineOptions struct {
	Location *time.Location
	Workers  int
	Now      func() time.Time
}

type timelineService struct {
	repos    TimelineRepos
	loc      *time.Location
	workers  int
	now      func() time.Time
	observer UseCaseObserver
}

func NewTimelineService(repos TimelineRepos, opts TimelineOptions, observers ...UseCaseObserver) TimelineService {
	s := &timelineService{
		repos:    repos,
		loc:      opts.Location,
		workers:  opts.Workers,
		now:      opts.Now,
		observer: useCaseObserverOrNoop(observers),
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.workers <= 0 {
		s.workers = 4
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *timelineService) LocationBoard(ctx context.Context, req app.BoardRequest) (resp *app.LocationBoardResponse, err error) {
	fields := map[string]any{"from": req.From, "to": req.To}
	done := startUseCase(ctx, s.observer, "location-board", fields)
	defer func() { done(err) }()

	if err = validateWindow(req.From, req.To); err != nil {
		return nil, err
	}

	events, err := s.repos.Events.List(ctx, repository.EventFilter{From: req.From, To: req.To})
	if err != nil {
		return nil, fmt.Errorf("loading events: %w", err)
	}
	if len(req.LocationIDs) > 0 {
		wanted := make(map[string]bool, len(req.LocationIDs))
		for _, id := range req.LocationIDs {
			wanted[id] = true
		}
		kept := events[:0]
		for _, e := range events {
			if wanted[e.LocationID] {
				kept = append(kept, e)
			}
		}
		events = kept
	}
	fields["events"] = len(events)

	locations, err := s.repos.Locations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading locations: %w", err)
	}
	names := make(map[string]string, len(locations))
	for _, l := range locations {
		names[l.ID] = l.Name
	}

	byID := make(map[string]*domain.Event, len(events))
	intervals := make([]timeline.Interval, len(events))
	for i, e := range events {
		byID[e.ID] = e
		intervals[i] = timeline.Interval{
			ID:       e.ID,
			GroupKey: e.LocationID,
			StartKey: e.StartDate,
			EndKey:   e.EndDate,
			Label:    e.Name,
		}
	}

	assignments, err := timeline.AssignRows(intervals)
	if err != nil {
		return nil, fmt.Errorf("assigning rows: %w", err)
	}
	concurrent, err := timeline.MaxConcurrent(intervals)
	if err != nil {
		return nil, fmt.Errorf("measuring overlap: %w", err)
	}
	rowCounts := timeline.RowCounts(assignments)

	resp = &app.LocationBoardResponse{From: req.From, To: req.To}
	lanes := make(map[string]*app.LocationLane)
	var order []string
	for _, a := range assignments {
		lane, ok := lanes[a.GroupKey]
		if !ok {
			lane = &app.LocationLane{
				LocationID:    a.GroupKey,
				LocationName:  names[a.GroupKey],
				RowCount:      rowCounts[a.GroupKey],
				MaxConcurrent: concurrent[a.GroupKey],
			}
			lanes[a.GroupKey] = lane
			order = append(order, a.GroupKey)
		}
		e := byID[a.IntervalID]
		lane.Events = append(lane.Events, app.EventBar{
			EventID:   e.ID,
			Name:      e.Name,
			StartDate: e.StartDate,
			EndDate:   e.EndDate,
			Status:    string(e.Status),
			Row:       a.Row,
		})
		// An explicit window is kept as asked; bars are clipped when drawn.
		if req.From == "" && (resp.From == "" || e.StartDate < resp.From) {
			resp.From = e.StartDate
		}
		if req.To == "" && (resp.To == "" || e.EndDate > resp.To) {
			resp.To = e.EndDate
		}
	}
	for _, id := range order {
		resp.Lanes = append(resp.Lanes, *lanes[id])
	}
	sort.SliceStable(resp.Lanes, func(i, j int) bool {
		if resp.Lanes[i].LocationName != resp.Lanes[j].LocationName {
			return resp.Lanes[i].LocationName < resp.Lanes[j].LocationName
		}
		return resp.Lanes[i].LocationID < resp.Lanes[j].LocationID
	})
	return resp, nil
}

func validateWindow(from, to string) error {
	for _, k := range []string{from, to} {
		if k == "" {
			continue
		}
		if _, err := domain.ParseDateKey(k); err != nil {
			return err
		}
	}
	if from != "" && to != "" && to < from {
		return fmt.Errorf("window end %s is before start %s", to, from)
	}
	return nil
}

func (s *timelineService) PhasePlan(ctx context.Context, eventID string) (plan *app.EventPhasePlan, err error) {
	done := startUseCase(ctx, s.observer, "phase-plan", map[string]any{"event_id": eventID})
	defer func() { done(err) }()

	return s.phasePlan(ctx, eventID)
}

// PhasePlans resolves several events concurrently, bounded by the worker
// count. Results keep the order of eventIDs.
func (s *timelineService) PhasePlans(ctx context.Context, eventIDs []string) (plans []*app.EventPhasePlan, err error) {
	done := startUseCase(ctx, s.observer, "phase-plans", map[string]any{"events": len(eventIDs), "workers": s.workers})
	defer func() { done(err) }()

	plans = make([]*app.EventPhasePlan, len(eventIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, id := range eventIDs {
		g.Go(func() error {
			p, err := s.phasePlan(gctx, id)
			if err != nil {
				return err
			}
			plans[i] = p
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *timelineService) phasePlan(ctx context.Context, eventID string) (*app.EventPhasePlan, error) {
	ev, err := s.repos.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	stored, err := s.repos.Phases.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("loading phases of %q: %w", ev.Name, err)
	}

	phases := make([]timeline.Phase, len(stored))
	origin := ev.StartDate
	for i, p := range stored {
		phases[i] = timeline.Phase{Name: p.Name, Start: p.StartAt.In(s.loc), End: p.EndAt.In(s.loc)}
		if k := domain.DateKey(phases[i].Start); k < origin {
			origin = k
		}
	}

	resolved, err := timeline.ResolvePhases(ev.Name, phases)
	if err != nil {
		return nil, fmt.Errorf("resolving phases of %q: %w", ev.Name, err)
	}

	out := &app.EventPhasePlan{
		EventID:     ev.ID,
		EventName:   ev.Name,
		Origin:      origin,
		Transitions: resolved.Transitions,
		Collapses:   resolved.Collapses,
	}
	for i, p := range stored {
		span, err := timeline.Geometry(phases[i], resolved.Adjustments[i], origin)
		if err != nil {
			return nil, err
		}
		out.Phases = append(out.Phases, app.PhaseView{
			PhaseID:    p.ID,
			Name:       p.Name,
			StartDate:  domain.DateKey(phases[i].Start),
			EndDate:    domain.DateKey(phases[i].End),
			Adjustment: resolved.Adjustments[i],
			Span:       span,
		})
	}
	return out, nil
}

type eventLoad struct {
	event       *domain.Event
	tasks       []*domain.Task
	allocations []timeline.Allocation
	capacities  []timeline.DailyCapacity
}

func (s *timelineService) Workload(ctx context.Context, req app.WorkloadRequest) (resp *app.WorkloadResponse, err error) {
	fields := map[string]any{"merge": req.Merge}
	done := startUseCase(ctx, s.observer, "workload", fields)
	defer func() { done(err) }()

	now := s.now()
	if req.Now != nil {
		now = *req.Now
	}

	loads, err := s.loadWorkloads(ctx, req.EventIDs)
	if err != nil {
		return nil, err
	}
	fields["events"] = len(loads)

	resp = &app.WorkloadResponse{GeneratedAt: now.UTC()}
	if req.Merge {
		ew, err := mergedWorkload(loads)
		if err != nil {
			return nil, err
		}
		resp.Events = append(resp.Events, ew)
	} else {
		for _, l := range loads {
			ew, err := singleWorkload(l)
			if err != nil {
				return nil, err
			}
			resp.Events = append(resp.Events, ew)
		}
	}

	resp.Pressure, err = taskPressure(loads, now)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// loadWorkloads reads the requested events, or every active event when ids
// is empty. Cancelled events are skipped either way.
func (s *timelineService) loadWorkloads(ctx context.Context, ids []string) ([]eventLoad, error) {
	var events []*domain.Event
	if len(ids) == 0 {
		all, err := s.repos.Events.List(ctx, repository.EventFilter{})
		if err != nil {
			return nil, fmt.Errorf("loading events: %w", err)
		}
		events = all
	} else {
		for _, id := range ids {
			e, err := s.repos.Events.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if e.IsActive() {
				events = append(events, e)
			}
		}
	}

	loads := make([]eventLoad, 0, len(events))
	for _, e := range events {
		allocs, err := s.repos.Allocations.ListByEvent(ctx, e.ID)
		if err != nil {
			return nil, fmt.Errorf("loading allocations of %q: %w", e.Name, err)
		}
		caps, err := s.repos.Capacities.ListByEvent(ctx, e.ID)
		if err != nil {
			return nil, fmt.Errorf("loading capacities of %q: %w", e.Name, err)
		}
		tasks, err := s.repos.Tasks.ListByEvent(ctx, e.ID)
		if err != nil {
			return nil, fmt.Errorf("loading tasks of %q: %w", e.Name, err)
		}
		loads = append(loads, eventLoad{
			event:       e,
			tasks:       tasks,
			allocations: toTimelineAllocations(allocs),
			capacities:  toTimelineCapacities(caps),
		})
	}
	return loads, nil
}

func singleWorkload(l eventLoad) (app.EventWorkload, error) {
	demand, err := timeline.AggregateDailyDemand(l.allocations)
	if err != nil {
		return app.EventWorkload{}, fmt.Errorf("event %q: %w", l.event.Name, err)
	}
	return buildWorkload(l.event.ID, l.event.Name, demand, l.capacities, func() ([]timeline.DailyCapacityComparison, error) {
		return timeline.CompareDailyCapacity(demand, l.capacities)
	})
}

func mergedWorkload(loads []eventLoad) (app.EventWorkload, error) {
	entityLoads := make([]timeline.EntityLoad, len(loads))
	var allocs []timeline.Allocation
	var caps []timeline.DailyCapacity
	for i, l := range loads {
		entityLoads[i] = timeline.EntityLoad{EntityID: l.event.ID, Allocations: l.allocations, Capacities: l.capacities}
		allocs = append(allocs, l.allocations...)
		caps = append(caps, l.capacities...)
	}
	demand, err := timeline.AggregateDailyDemand(allocs)
	if err != nil {
		return app.EventWorkload{}, err
	}
	return buildWorkload("", "", demand, caps, func() ([]timeline.DailyCapacityComparison, error) {
		return timeline.MergeAcrossEntities(entityLoads)
	})
}

func buildWorkload(
	id, name string,
	demand []timeline.DailyDemand,
	caps []timeline.DailyCapacity,
	compare func() ([]timeline.DailyCapacityComparison, error),
) (app.EventWorkload, error) {
	comparison, err := compare()
	if err != nil {
		return app.EventWorkload{}, fmt.Errorf("comparing capacity: %w", err)
	}
	unused, err := timeline.UnusedCapacity(demand, caps)
	if err != nil {
		return app.EventWorkload{}, fmt.Errorf("finding unused capacity: %w", err)
	}
	ew := app.EventWorkload{
		EventID:        id,
		EventName:      name,
		Demand:         demand,
		Comparison:     comparison,
		UnusedCapacity: unused,
	}
	for _, c := range comparison {
		if c.IsOverAllocated {
			ew.OverAllocated++
		}
	}
	return ew, nil
}

func taskPressure(loads []eventLoad, now time.Time) ([]app.TaskPressureView, error) {
	var taskLoads []timeline.TaskLoad
	titles := make(map[string]string)
	for _, l := range loads {
		allocated, err := timeline.AllocatedByTask(l.allocations)
		if err != nil {
			return nil, err
		}
		for _, t := range l.tasks {
			titles[t.ID] = t.Title
			taskLoads = append(taskLoads, timeline.TaskLoad{
				TaskID:         t.ID,
				EstimateHours:  t.EstimateHours,
				AllocatedHours: allocated[t.ID],
				Deadline:       t.Deadline,
			})
		}
	}

	pressures, err := timeline.EvaluatePressures(taskLoads, now)
	if err != nil {
		return nil, err
	}
	out := make([]app.TaskPressureView, len(pressures))
	for i, p := range pressures {
		out[i] = app.TaskPressureView{Title: titles[p.TaskID], TaskPressure: p}
	}
	return out, nil
}
