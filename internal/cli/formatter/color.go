package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/alexanderramin/stagehand/internal/timeline"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the bar and pill style for an event status.
func StatusStyle(status domain.EventStatus) lipgloss.Style {
	switch status {
	case domain.EventConfirmed:
		return StyleGreen
	case domain.EventPlanned:
		return StyleBlue
	case domain.EventCancelled:
		return StyleDim
	default:
		return StyleFg
	}
}

// StatusPill returns a colored indicator such as "● Confirmed".
func StatusPill(status domain.EventStatus) string {
	switch status {
	case domain.EventConfirmed:
		return StyleGreen.Render("● Confirmed")
	case domain.EventPlanned:
		return StyleBlue.Render("○ Planned")
	case domain.EventCancelled:
		return StyleDim.Render("✖ Cancelled")
	default:
		return StyleDim.Render(string(status))
	}
}

// AllocationPill labels one day of a capacity comparison.
func AllocationPill(c timeline.DailyCapacityComparison) string {
	switch {
	case c.IsOverAllocated:
		return StyleRed.Render("▲ OVER")
	case c.IsUnderAllocated:
		return StyleYellow.Render("▽ under")
	default:
		return StyleGreen.Render("● full")
	}
}

// PressurePill marks tasks that still need effort before their deadline.
func PressurePill(p timeline.TaskPressure) string {
	switch {
	case p.IsUnderPressure:
		return StyleRed.Render("● PRESSURE")
	case p.RemainingEffortHours == 0:
		return StyleDim.Render("✔ covered")
	default:
		return StyleDim.Render("○ no deadline")
	}
}

// Header renders an upper-cased section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
