package timeline

import (
	"fmt"

	"github.com/alexanderramin/stagehand/internal/domain"
)

// Span is a rendered bar measured in half-day units from an origin date.
type Span struct {
	OffsetHalfDays int  `json:"offset_half_days"`
	WidthHalfDays  int  `json:"width_half_days"`
	Hidden         bool `json:"hidden"`
}

// Geometry places a phase on a half-day grid whose column 0 is the start of
// origin (YYYY-MM-DD). An untrimmed phase covers whole days; each start trim
// moves the left edge right by half a day and each trim narrows the bar by
// half a day. Hidden phases get a zero-width hidden span.
func Geometry(p Phase, adj PhaseAdjustment, origin string) (Span, error) {
	if adj.Hidden {
		return Span{Hidden: true}, nil
	}
	startDay, err := domain.DaysBetween(origin, domain.DateKey(p.Start))
	if err != nil {
		return Span{}, invalid(ErrInvalidDate, fmt.Sprintf("origin %q", origin), "%v", err)
	}
	endDay, err := domain.DaysBetween(origin, domain.DateKey(p.End))
	if err != nil {
		return Span{}, invalid(ErrInvalidDate, fmt.Sprintf("origin %q", origin), "%v", err)
	}

	width := (endDay-startDay+1)*2 - adj.StartTrim - adj.EndTrim
	if width < 0 {
		width = 0
	}
	return Span{
		OffsetHalfDays: startDay*2 + adj.StartTrim,
		WidthHalfDays:  width,
	}, nil
}
