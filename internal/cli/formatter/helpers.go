package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/stagehand/internal/timeline"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title == "" {
		return box.Render(content)
	}
	return box.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatHours prints hours without trailing zeros: 8h, 2.5h, 0h.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "h"
}

// DateSpan renders an inclusive date range, collapsing single days.
func DateSpan(start, end string) string {
	if start == end {
		return start
	}
	return start + " → " + end
}

// DeadlineFrom describes a deadline relative to now in the remaining days
// counted by timeline.RemainingDays.
func DeadlineFrom(deadline *time.Time, now time.Time) string {
	if deadline == nil {
		return Dim("--")
	}
	days := timeline.RemainingDays(now, *deadline)
	switch {
	case days == 0:
		return StyleRed.Render("overdue")
	case days == 1:
		return StyleRed.Render("in 1d")
	case days < 7:
		return StyleYellow.Render(fmt.Sprintf("in %dd", days))
	default:
		return StyleFg.Render(deadline.Format("2006-01-02"))
	}
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
