package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/stagehand/internal/cli/formatter"
	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// eventInput collects the fields of a new event from flags or the form.
type eventInput struct {
	Name     string
	Location string
	Start    string
	End      string
	Status   string
}

func stagehandHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	return t
}

// eventForm asks for every event field, prefilled from in. Locations are
// offered by ID so duplicate-looking names stay distinct.
func eventForm(in *eventInput, locations []*domain.Location) *huh.Form {
	options := make([]huh.Option[string], 0, len(locations))
	for _, l := range locations {
		options = append(options, huh.NewOption(l.Name, l.ID))
	}
	if in.Start == "" {
		in.Start = domain.DateKey(time.Now())
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Event name").Value(&in.Name).Validate(validateRequired("name")),
			huh.NewSelect[string]().Title("Location").Options(options...).Value(&in.Location),
		),
		huh.NewGroup(
			huh.NewInput().Title("First day (YYYY-MM-DD)").Value(&in.Start).Validate(validateDate),
			huh.NewInput().Title("Last day (YYYY-MM-DD, blank for one day)").Value(&in.End).
				Validate(validateEndDate(&in.Start)),
			huh.NewSelect[string]().Title("Status").Value(&in.Status).Options(
				huh.NewOption("Planned", string(domain.EventPlanned)),
				huh.NewOption("Confirmed", string(domain.EventConfirmed)),
			),
		),
	).WithTheme(stagehandHuhTheme()).WithShowHelp(false)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateDate(s string) error {
	if _, err := domain.ParseDateKey(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateEndDate accepts blank or a date not before *start.
func validateEndDate(start *string) func(string) error {
	return func(s string) error {
		if s == "" {
			return nil
		}
		if err := validateDate(s); err != nil {
			return err
		}
		if s < *start {
			return fmt.Errorf("last day is before the first day")
		}
		return nil
	}
}
