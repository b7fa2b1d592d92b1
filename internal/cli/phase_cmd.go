package cli

import (
	"fmt"

	"github.com/alexanderramin/stagehand/internal/cli/formatter"
	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/spf13/cobra"
)

func newPhaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Manage event phases (ASSEMBLY, MOVE_IN, EVENT, MOVE_OUT, DISMANTLE)",
	}
	cmd.AddCommand(
		newPhaseAddCmd(app),
		newPhaseListCmd(app),
		newPhaseRemoveCmd(app),
	)
	return cmd
}

func newPhaseAddCmd(app *App) *cobra.Command {
	var event, name string
	loc, _ := app.Config.Location()
	start := &instantFlag{loc: loc}
	end := &instantFlag{loc: loc}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a phase to an event",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if start.t.IsZero() || end.t.IsZero() {
				return fmt.Errorf("--start and --end are required")
			}
			eventID, err := resolveEventID(ctx, app, event)
			if err != nil {
				return err
			}
			p := &domain.Phase{EventID: eventID, Name: name, StartAt: start.t, EndAt: end.t}
			if err := app.Phases.Add(ctx, p); err != nil {
				return err
			}
			return app.done(cmd, p, "Added %s phase %s", p.Kind().DisplayName(), formatter.TruncID(p.ID))
		},
	}

	cmd.Flags().StringVar(&event, "event", "", "Event ID or name")
	cmd.Flags().StringVar(&name, "name", "", "Phase name, e.g. ASSEMBLY or MOVE_IN")
	cmd.Flags().Var(start, "start", "Phase start (RFC 3339 or YYYY-MM-DD HH:MM in the configured timezone)")
	cmd.Flags().Var(end, "end", "Phase end")
	return cmd
}

func newPhaseListCmd(app *App) *cobra.Command {
	var event string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an event's phases",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eventID, err := resolveEventID(ctx, app, event)
			if err != nil {
				return err
			}
			phases, err := app.Phases.ListByEvent(ctx, eventID)
			if err != nil {
				return err
			}
			loc, err := app.Config.Location()
			if err != nil {
				return err
			}
			return app.renderText(cmd, phases, func() string {
				if len(phases) == 0 {
					return "No phases found.\n"
				}
				return formatter.FormatPhases(phases, loc)
			})
		},
	}

	cmd.Flags().StringVar(&event, "event", "", "Event ID or name")
	return cmd
}

func newPhaseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PHASE_ID",
		Short: "Delete a phase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Phases.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			return app.done(cmd, map[string]string{"id": args[0]}, "Removed phase %s", formatter.TruncID(args[0]))
		},
	}
}
