package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/stagehand/internal/app"
	"github.com/alexanderramin/stagehand/internal/cli/formatter"
	"github.com/alexanderramin/stagehand/internal/repository"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "timeline",
		Aliases: []string{"tl"},
		Short:   "Show location boards and phase plans",
	}
	cmd.AddCommand(
		newTimelineRowsCmd(app),
		newTimelineBoardCmd(app),
		newTimelinePhasesCmd(app),
	)
	return cmd
}

// boardFlags are the window and location filters shared by rows and board.
type boardFlags struct {
	from, to  dateFlag
	locations []string
}

func (f *boardFlags) register(cmd *cobra.Command) {
	cmd.Flags().Var(&f.from, "from", "First day of the window")
	cmd.Flags().Var(&f.to, "to", "Last day of the window")
	cmd.Flags().StringSliceVar(&f.locations, "location", nil, "Only these locations (repeatable)")
}

func (f *boardFlags) request(ctx context.Context, a *App) (app.BoardRequest, error) {
	ids, err := resolveLocationIDs(ctx, a, f.locations)
	if err != nil {
		return app.BoardRequest{}, err
	}
	return app.BoardRequest{From: f.from.key, To: f.to.key, LocationIDs: ids}, nil
}

func newTimelineRowsCmd(a *App) *cobra.Command {
	var flags boardFlags

	cmd := &cobra.Command{
		Use:   "rows",
		Short: "List the board row assigned to each event",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request(cmd.Context(), a)
			if err != nil {
				return err
			}
			resp, err := a.Timeline.LocationBoard(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.renderText(cmd, resp, func() string { return formatter.FormatRows(resp) })
		},
	}
	flags.register(cmd)
	return cmd
}

func newTimelineBoardCmd(a *App) *cobra.Command {
	var (
		flags  boardFlags
		static bool
	)

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Draw events per location on a day grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			req, err := flags.request(ctx, a)
			if err != nil {
				return err
			}
			board := a.Config.Board

			if !static && !a.jsonOutput && a.interactive() {
				load := func(ctx context.Context, from, to string) (*app.LocationBoardResponse, error) {
					r := req
					r.From, r.To = from, to
					return a.Timeline.LocationBoard(ctx, r)
				}
				m := newBoardModel(load, req.From, req.To, board.DayWidth, board.MaxDays)
				_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
				return err
			}

			resp, err := a.Timeline.LocationBoard(ctx, req)
			if err != nil {
				return err
			}
			return a.render(cmd, resp, func() (string, error) {
				return formatter.FormatBoard(resp, board.DayWidth, board.MaxDays)
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&static, "static", false, "Print the board instead of opening the viewer")
	return cmd
}

func newTimelinePhasesCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "phases [EVENT...]",
		Short: "Resolve phase transitions and collapses for events (all active events by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ids, err := eventIDsOrActive(ctx, a, args)
			if err != nil {
				return err
			}
			plans, err := a.Timeline.PhasePlans(ctx, ids)
			if err != nil {
				return err
			}
			return a.render(cmd, plans, func() (string, error) {
				if len(plans) == 0 {
					return "No events found.\n", nil
				}
				parts := make([]string, 0, len(plans))
				for _, p := range plans {
					s, err := formatter.FormatPhasePlan(p, a.Config.Board.DayWidth)
					if err != nil {
						return "", err
					}
					parts = append(parts, s)
				}
				return strings.Join(parts, "\n"), nil
			})
		},
	}
}

// eventIDsOrActive resolves the named events, or lists every non-cancelled
// event when none are named.
func eventIDsOrActive(ctx context.Context, a *App, names []string) ([]string, error) {
	if len(names) > 0 {
		return resolveEventIDs(ctx, a, names)
	}
	events, err := a.Events.List(ctx, repository.EventFilter{})
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids, nil
}
