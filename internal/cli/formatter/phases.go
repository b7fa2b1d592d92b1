package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/stagehand/internal/app"
	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// PhaseStyle colours a phase by lifecycle kind.
func PhaseStyle(kind domain.PhaseKind) lipgloss.Style {
	switch kind {
	case domain.PhaseAssembly, domain.PhaseDismantle:
		return StyleYellow
	case domain.PhaseMoveIn, domain.PhaseMoveOut:
		return StyleBlue
	case domain.PhaseEvent:
		return StyleGreen
	default:
		return StylePurple
	}
}

// FormatPhasePlan renders an event's phases as a half-day strip followed by a
// table of the resolved labels and adjustments.
func FormatPhasePlan(plan *app.EventPhasePlan, dayWidth int) (string, error) {
	var b strings.Builder
	b.WriteString(Header(plan.EventName) + "\n")
	if len(plan.Phases) == 0 {
		b.WriteString(Dim("No phases.") + "\n")
		return b.String(), nil
	}

	strip, ruler, err := phaseStrip(plan, max(dayWidth/2, 1))
	if err != nil {
		return "", err
	}
	b.WriteString(Dim(ruler) + "\n")
	b.WriteString(strip + "\n\n")

	rows := make([][]string, 0, len(plan.Phases))
	for _, p := range plan.Phases {
		rows = append(rows, []string{
			PhaseStyle(p.Adjustment.Kind).Render(p.Name),
			DateSpan(p.StartDate, p.EndDate),
			p.Adjustment.Label,
			phaseNotes(p),
		})
	}
	b.WriteString(RenderTable([]string{"PHASE", "DATES", "LABEL", "NOTES"}, rows))

	for _, t := range plan.Transitions {
		b.WriteString(Dim(fmt.Sprintf("%s  %s hands over to %s", t.Date,
			plan.Phases[t.EarlierIndex].Name, plan.Phases[t.LaterIndex].Name)) + "\n")
	}
	for _, c := range plan.Collapses {
		b.WriteString(Dim(fmt.Sprintf("%s  %d single-day phases collapsed into %s", c.Date,
			len(c.MemberIndices), plan.Phases[c.VisibleIndex].Name)) + "\n")
	}
	return b.String(), nil
}

func phaseNotes(p app.PhaseView) string {
	var notes []string
	if p.Adjustment.SingleDay {
		notes = append(notes, "single day")
	}
	if p.Adjustment.InTransition {
		notes = append(notes, "transition")
	}
	if p.Adjustment.CollapseVisible {
		notes = append(notes, "collapsed")
	}
	if p.Adjustment.Hidden {
		notes = append(notes, "hidden")
	}
	return Dim(strings.Join(notes, ", "))
}

// phaseStrip draws visible phases at their half-day offsets. Each half day
// is halfWidth columns wide.
func phaseStrip(plan *app.EventPhasePlan, halfWidth int) (string, string, error) {
	visible := make([]app.PhaseView, 0, len(plan.Phases))
	end := 0
	for _, p := range plan.Phases {
		if p.Span.Hidden || p.Span.WidthHalfDays == 0 {
			continue
		}
		visible = append(visible, p)
		end = max(end, p.Span.OffsetHalfDays+p.Span.WidthHalfDays)
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Span.OffsetHalfDays < visible[j].Span.OffsetHalfDays
	})

	var b strings.Builder
	cursor := 0
	for _, p := range visible {
		start := p.Span.OffsetHalfDays * halfWidth
		width := p.Span.WidthHalfDays * halfWidth
		if start < cursor {
			width -= cursor - start
			start = cursor
		}
		if width <= 0 {
			continue
		}
		b.WriteString(strings.Repeat(" ", start-cursor))
		b.WriteString(PhaseStyle(p.Adjustment.Kind).Render(segmentText(p.Adjustment.Label, width)))
		cursor = start + width
	}

	origin, err := domain.ParseDateKey(plan.Origin)
	if err != nil {
		return "", "", fmt.Errorf("phase origin: %w", err)
	}
	days := (end + 1) / 2
	keys := make([]string, days)
	for i := range keys {
		keys[i] = domain.DateKey(origin.AddDate(0, 0, i))
	}
	return b.String(), dayRuler(keys, 2*halfWidth), nil
}

func segmentText(label string, width int) string {
	text := truncate(label, width)
	return text + strings.Repeat("▪", width-len([]rune(text)))
}
