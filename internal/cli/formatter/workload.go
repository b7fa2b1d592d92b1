package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/stagehand/internal/app"
	"github.com/alexanderramin/stagehand/internal/domain"
)

// FormatWorkload renders daily demand against capacity for each evaluated
// event, then the task pressure list.
func FormatWorkload(resp *app.WorkloadResponse) string {
	var b strings.Builder
	for i, w := range resp.Events {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(formatEventWorkload(w))
	}
	if len(resp.Events) == 0 {
		b.WriteString(Dim("No active events to evaluate.") + "\n")
	}

	if len(resp.Pressure) > 0 {
		b.WriteString("\n" + Header("Task pressure") + "\n")
		rows := make([][]string, 0, len(resp.Pressure))
		for _, p := range resp.Pressure {
			days := Dim("--")
			perDay := Dim("--")
			if p.RemainingDays > 0 {
				days = strconv.Itoa(p.RemainingDays)
				perDay = FormatHours(roundHours(p.RequiredDailyHours))
			}
			rows = append(rows, []string{
				p.Title,
				FormatHours(p.RemainingEffortHours),
				days,
				perDay,
				PressurePill(p.TaskPressure),
			})
		}
		b.WriteString(RenderTable([]string{"TASK", "REMAINING", "DAYS LEFT", "PER DAY", "STATUS"}, rows))
	}
	return b.String()
}

func formatEventWorkload(w app.EventWorkload) string {
	var b strings.Builder
	b.WriteString(Header(domain.CoalesceStr(w.EventName, "All selected events")) + "\n")
	if len(w.Comparison) == 0 {
		b.WriteString(Dim("No effort allocated.") + "\n")
	} else {
		rows := make([][]string, 0, len(w.Comparison))
		for _, c := range w.Comparison {
			rows = append(rows, []string{
				c.Date,
				FormatHours(c.DemandHours),
				FormatHours(c.CapacityHours),
				balance(c.CapacityHours - c.DemandHours),
				AllocationPill(c),
			})
		}
		b.WriteString(RenderTable([]string{"DATE", "DEMAND", "CAPACITY", "BALANCE", "STATUS"}, rows))
	}

	if w.OverAllocated > 0 {
		b.WriteString(StyleRed.Render(fmt.Sprintf("%d over-allocated day(s)", w.OverAllocated)) + "\n")
	}
	if len(w.UnusedCapacity) > 0 {
		parts := make([]string, 0, len(w.UnusedCapacity))
		for _, u := range w.UnusedCapacity {
			parts = append(parts, fmt.Sprintf("%s (%s)", u.Date, FormatHours(u.CapacityHours)))
		}
		b.WriteString(Dim("Unused capacity: "+strings.Join(parts, ", ")) + "\n")
	}
	return b.String()
}

func balance(h float64) string {
	s := FormatHours(roundHours(h))
	switch {
	case h < 0:
		return StyleRed.Render(s)
	case h > 0:
		return StyleYellow.Render("+" + s)
	default:
		return StyleGreen.Render(s)
	}
}

func roundHours(h float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(h, 'f', 2, 64), 64)
	return v
}
