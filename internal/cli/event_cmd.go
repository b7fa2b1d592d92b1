package cli

import (
	"fmt"

	"github.com/alexanderramin/stagehand/internal/cli/formatter"
	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/alexanderramin/stagehand/internal/repository"
	"github.com/spf13/cobra"
)

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage events booked at locations",
	}
	cmd.AddCommand(
		newEventAddCmd(app),
		newEventListCmd(app),
		newEventStatusCmd(app),
		newEventRemoveCmd(app),
	)
	return cmd
}

func newEventAddCmd(app *App) *cobra.Command {
	var (
		name, location, status string
		start, end             dateFlag
		interactive            bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Book an event at a location",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			in := eventInput{
				Name:     name,
				Location: location,
				Start:    start.key,
				End:      end.key,
				Status:   domain.CoalesceStr(status, string(domain.EventPlanned)),
			}

			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--interactive needs a terminal")
				}
				locations, err := app.Locations.List(ctx)
				if err != nil {
					return err
				}
				if len(locations) == 0 {
					return fmt.Errorf("add a location first: stagehand location add NAME")
				}
				if err := eventForm(&in, locations).Run(); err != nil {
					return err
				}
			}

			if in.Location == "" {
				return fmt.Errorf("--location is required")
			}
			loc, err := app.Locations.Resolve(ctx, in.Location)
			if err != nil {
				return fmt.Errorf("location %q: %w", in.Location, err)
			}
			ev := &domain.Event{
				Name:       in.Name,
				LocationID: loc.ID,
				StartDate:  in.Start,
				EndDate:    domain.CoalesceStr(in.End, in.Start),
				Status:     domain.EventStatus(in.Status),
			}
			if err := app.Events.Create(ctx, ev); err != nil {
				return err
			}
			return app.done(cmd, ev, "Booked %s at %s, %s %s",
				ev.Name, loc.Name, formatter.DateSpan(ev.StartDate, ev.EndDate), formatter.TruncID(ev.ID))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Event name")
	cmd.Flags().StringVar(&location, "location", "", "Location ID or name")
	cmd.Flags().Var(&start, "start", "First booked day (YYYY-MM-DD)")
	cmd.Flags().Var(&end, "end", "Last booked day (YYYY-MM-DD, defaults to --start)")
	cmd.Flags().StringVar(&status, "status", "", "planned, confirmed or cancelled")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in the event with a form")
	return cmd
}

func newEventListCmd(app *App) *cobra.Command {
	var (
		location string
		from, to dateFlag
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			filter := repository.EventFilter{From: from.key, To: to.key, IncludeCancelled: all}
			if location != "" {
				loc, err := app.Locations.Resolve(ctx, location)
				if err != nil {
					return fmt.Errorf("location %q: %w", location, err)
				}
				filter.LocationID = loc.ID
			}
			events, err := app.Events.List(ctx, filter)
			if err != nil {
				return err
			}
			names, err := locationNames(ctx, app)
			if err != nil {
				return err
			}
			return app.renderText(cmd, events, func() string {
				if len(events) == 0 {
					return "No events found.\n"
				}
				return formatter.FormatEvents(events, names)
			})
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "Only events at this location")
	cmd.Flags().Var(&from, "from", "Only events ending on or after this date")
	cmd.Flags().Var(&to, "to", "Only events starting on or before this date")
	cmd.Flags().BoolVar(&all, "all", false, "Include cancelled events")
	return cmd
}

func newEventStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status EVENT STATUS",
		Short: "Set an event's status (planned, confirmed, cancelled)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveEventID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Events.SetStatus(ctx, id, domain.EventStatus(args[1])); err != nil {
				return err
			}
			ev, err := app.Events.GetByID(ctx, id)
			if err != nil {
				return err
			}
			return app.done(cmd, ev, "%s is now %s", ev.Name, formatter.StatusPill(ev.Status))
		},
	}
}

func newEventRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove EVENT",
		Short: "Delete an event with its phases, tasks and capacities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ev, err := app.Events.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Events.Delete(ctx, ev.ID); err != nil {
				return err
			}
			return app.done(cmd, ev, "Removed event %s", ev.Name)
		},
	}
}
