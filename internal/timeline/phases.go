package timeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/stagehand/internal/domain"
)

// collapseThreshold is the number of single-day phases on one date at which
// all but one of them stop being rendered.
const collapseThreshold = 3

// Phase is one named sub-period of an event. Calendar dates are taken in the
// location carried by Start and End, so callers convert to the event's
// timezone before resolving.
type Phase struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Kind returns the phase's lifecycle kind.
func (p Phase) Kind() domain.PhaseKind {
	return domain.ParsePhaseKind(p.Name)
}

// SingleDay reports whether the phase starts and ends on the same calendar date.
func (p Phase) SingleDay() bool {
	return domain.DateKey(p.Start) == domain.DateKey(p.End)
}

// Transition records two phases that hand over on the same calendar day.
// Indices refer to positions in the slice passed to ResolvePhases.
type Transition struct {
	Date         string `json:"date"`
	EarlierIndex int    `json:"earlier_index"`
	LaterIndex   int    `json:"later_index"`
}

// Collapse records three or more single-day phases on one date, of which only
// VisibleIndex is rendered.
type Collapse struct {
	Date          string `json:"date"`
	MemberIndices []int  `json:"member_indices"`
	VisibleIndex  int    `json:"visible_index"`
}

// PhaseAdjustment describes how one phase is drawn. Trims are counted in
// half-day units: StartTrim advances the left edge and narrows the bar,
// EndTrim narrows the bar only. Source dates are never changed.
type PhaseAdjustment struct {
	Index           int              `json:"index"`
	Name            string           `json:"name"`
	Kind            domain.PhaseKind `json:"kind"`
	SingleDay       bool             `json:"single_day"`
	Hidden          bool             `json:"hidden"`
	CollapseVisible bool             `json:"collapse_visible"`
	InTransition    bool             `json:"in_transition"`
	StartTrim       int              `json:"start_trim"`
	EndTrim         int              `json:"end_trim"`
	Label           string           `json:"label"`
	Abbreviated     bool             `json:"abbreviated"`
}

// PhasePlan is the resolved rendering plan for one event's phases.
// Adjustments are in input order, one per phase.
type PhasePlan struct {
	Adjustments []PhaseAdjustment `json:"adjustments"`
	Transitions []Transition      `json:"transitions"`
	Collapses   []Collapse        `json:"collapses"`
}

// ResolvePhases computes collapses, same-day transitions, trims and labels
// for the phases of one event. entityName feeds the abbreviated label of the
// EVENT phase.
func ResolvePhases(entityName string, phases []Phase) (*PhasePlan, error) {
	for i, p := range phases {
		if p.End.Before(p.Start) {
			return nil, invalid(ErrInvalidPhase, fmt.Sprintf("phase[%d] %q", i, p.Name),
				"end %s is before start %s", p.End.Format(time.RFC3339), p.Start.Format(time.RFC3339))
		}
	}

	order := chronologicalOrder(phases)

	adj := make([]PhaseAdjustment, len(phases))
	for i, p := range phases {
		adj[i] = PhaseAdjustment{
			Index:     i,
			Name:      p.Name,
			Kind:      p.Kind(),
			SingleDay: p.SingleDay(),
		}
	}

	collapses := detectCollapses(phases, order)
	for _, c := range collapses {
		for _, m := range c.MemberIndices {
			if m == c.VisibleIndex {
				adj[m].CollapseVisible = true
			} else {
				adj[m].Hidden = true
			}
		}
	}

	visible := make([]int, 0, len(order))
	for _, i := range order {
		if !adj[i].Hidden {
			visible = append(visible, i)
		}
	}

	transitions := detectTransitions(phases, visible)
	for _, t := range transitions {
		adj[t.EarlierIndex].EndTrim++
		adj[t.EarlierIndex].InTransition = true
		adj[t.LaterIndex].StartTrim++
		adj[t.LaterIndex].InTransition = true
	}

	for i := range adj {
		adj[i].Label, adj[i].Abbreviated = phaseLabel(entityName, phases[i], adj[i])
	}

	return &PhasePlan{
		Adjustments: adj,
		Transitions: transitions,
		Collapses:   collapses,
	}, nil
}

// chronologicalOrder returns input indices sorted by start, ties kept in
// input order.
func chronologicalOrder(phases []Phase) []int {
	order := make([]int, len(phases))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return phases[order[a]].Start.Before(phases[order[b]].Start)
	})
	return order
}

func detectCollapses(phases []Phase, order []int) []Collapse {
	byDate := make(map[string][]int)
	var dates []string
	for _, i := range order {
		if !phases[i].SingleDay() {
			continue
		}
		d := domain.DateKey(phases[i].Start)
		if _, seen := byDate[d]; !seen {
			dates = append(dates, d)
		}
		byDate[d] = append(byDate[d], i)
	}
	sort.Strings(dates)

	var collapses []Collapse
	for _, d := range dates {
		members := byDate[d]
		if len(members) < collapseThreshold {
			continue
		}
		collapses = append(collapses, Collapse{
			Date:          d,
			MemberIndices: append([]int(nil), members...),
			VisibleIndex:  pickVisible(phases, members),
		})
	}
	return collapses
}

// pickVisible keeps the EVENT phase when one is present, otherwise the middle
// member in canonical phase order. Equal kinds are ordered by start, end and
// name so the pick does not depend on input order.
func pickVisible(phases []Phase, members []int) int {
	byKind := append([]int(nil), members...)
	sort.SliceStable(byKind, func(a, b int) bool {
		return phaseLess(phases[byKind[a]], phases[byKind[b]])
	})
	for _, m := range byKind {
		if phases[m].Kind() == domain.PhaseEvent {
			return m
		}
	}
	return byKind[len(byKind)/2]
}

func phaseLess(a, b Phase) bool {
	if ao, bo := a.Kind().Order(), b.Kind().Order(); ao != bo {
		return ao < bo
	}
	if !a.Start.Equal(b.Start) {
		return a.Start.Before(b.Start)
	}
	if !a.End.Equal(b.End) {
		return a.End.Before(b.End)
	}
	return a.Name < b.Name
}

// detectTransitions inspects chronologically adjacent visible phases and
// records a transition wherever one ends on the day the next one starts.
func detectTransitions(phases []Phase, visible []int) []Transition {
	var transitions []Transition
	for k := 0; k+1 < len(visible); k++ {
		a, b := visible[k], visible[k+1]
		day := domain.DateKey(phases[a].End)
		if day != domain.DateKey(phases[b].Start) {
			continue
		}

		earlier, later := a, b
		end, start := phases[a].End, phases[b].Start
		switch {
		case end.Equal(start):
			if phases[b].Kind().Order() < phases[a].Kind().Order() {
				earlier, later = b, a
			}
		case end.After(start):
			earlier, later = b, a
		}
		transitions = append(transitions, Transition{Date: day, EarlierIndex: earlier, LaterIndex: later})
	}
	return transitions
}

func phaseLabel(entityName string, p Phase, adj PhaseAdjustment) (string, bool) {
	if adj.SingleDay && adj.InTransition && !adj.CollapseVisible {
		return abbreviatePhase(entityName, p.Name, adj.Kind), true
	}
	return fullPhaseLabel(entityName, p.Name, adj.Kind), false
}

func fullPhaseLabel(entityName, name string, kind domain.PhaseKind) string {
	switch kind {
	case domain.PhaseUnknown:
		return name
	case domain.PhaseEvent:
		if entityName != "" {
			return entityName
		}
	}
	return kind.DisplayName()
}

func abbreviatePhase(entityName, name string, kind domain.PhaseKind) string {
	switch kind {
	case domain.PhaseEvent:
		if entityName == "" {
			return "E"
		}
		return truncateRunes(entityName, 4)
	case domain.PhaseUnknown:
		return truncateRunes(name, 3)
	default:
		return kind.Code()
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
