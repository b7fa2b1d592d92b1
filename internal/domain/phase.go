package domain

import (
	"fmt"
	"time"
)

type Phase struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Name      string    `json:"name"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Kind returns the phase's position in the closed lifecycle set.
func (p *Phase) Kind() PhaseKind {
	return ParsePhaseKind(p.Name)
}

func (p *Phase) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("phase name is required")
	}
	if p.EndAt.Before(p.StartAt) {
		return fmt.Errorf("phase %q: end %s is before start %s",
			p.Name, p.EndAt.Format(time.RFC3339), p.StartAt.Format(time.RFC3339))
	}
	return nil
}
