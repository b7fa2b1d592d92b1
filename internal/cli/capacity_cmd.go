package cli

import (
	"fmt"

	"github.com/alexanderramin/stagehand/internal/cli/formatter"
	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/spf13/cobra"
)

func newCapacityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Manage daily working-hour capacity of events",
	}
	cmd.AddCommand(newCapacitySetCmd(app), newCapacityListCmd(app))
	return cmd
}

func newCapacitySetCmd(app *App) *cobra.Command {
	var (
		event    string
		from, to dateFlag
		hours    float64
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set capacity hours for a date or an inclusive date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if from.key == "" {
				return fmt.Errorf("--date is required")
			}
			eventID, err := resolveEventID(ctx, app, event)
			if err != nil {
				return err
			}
			dates, err := domain.DateRange(from.key, domain.CoalesceStr(to.key, from.key))
			if err != nil {
				return err
			}
			for _, d := range dates {
				if err := app.Capacities.Set(ctx, eventID, d, hours); err != nil {
					return err
				}
			}
			return app.done(cmd, dates, "Set %s capacity on %d day(s)", formatter.FormatHours(hours), len(dates))
		},
	}

	cmd.Flags().StringVar(&event, "event", "", "Event ID or name")
	cmd.Flags().Var(&from, "date", "Day (YYYY-MM-DD), or the first day with --until")
	cmd.Flags().Var(&to, "until", "Last day of the range")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Capacity in hours")
	return cmd
}

func newCapacityListCmd(app *App) *cobra.Command {
	var event string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an event's capacities",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eventID, err := resolveEventID(ctx, app, event)
			if err != nil {
				return err
			}
			capacities, err := app.Capacities.ListByEvent(ctx, eventID)
			if err != nil {
				return err
			}
			return app.renderText(cmd, capacities, func() string {
				if len(capacities) == 0 {
					return "No capacities set.\n"
				}
				return formatter.FormatCapacities(capacities)
			})
		},
	}

	cmd.Flags().StringVar(&event, "event", "", "Event ID or name")
	return cmd
}
