package app

import "github.com/alexanderramin/stagehand/internal/timeline"

// PhaseView pairs a stored phase with its resolved display adjustment and
// half-day geometry relative to the event start.
type PhaseView struct {
	PhaseID    string                   `json:"phase_id"`
	Name       string                   `json:"name"`
	StartDate  string                   `json:"start_date"`
	EndDate    string                   `json:"end_date"`
	Adjustment timeline.PhaseAdjustment `json:"adjustment"`
	Span       timeline.Span            `json:"span"`
}

type EventPhasePlan struct {
	EventID     string                `json:"event_id"`
	EventName   string                `json:"event_name"`
	Origin      string                `json:"origin"`
	Phases      []PhaseView           `json:"phases"`
	Transitions []timeline.Transition `json:"transitions"`
	Collapses   []timeline.Collapse   `json:"collapses"`
}
