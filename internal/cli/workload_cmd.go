package cli

import (
	"github.com/alexanderramin/stagehand/internal/app"
	"github.com/alexanderramin/stagehand/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWorkloadCmd(a *App) *cobra.Command {
	var merge bool
	loc, _ := a.Config.Location()
	now := &instantFlag{loc: loc}

	cmd := &cobra.Command{
		Use:   "workload [EVENT...]",
		Short: "Compare allocated effort with capacity and flag task pressure",
		Long: `Compare allocated effort with daily capacity for each event (all active
events by default). With --merge the selected events share one capacity pool.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ids, err := eventIDsOrActive(ctx, a, args)
			if err != nil {
				return err
			}
			req := app.WorkloadRequest{EventIDs: ids, Merge: merge}
			if !now.t.IsZero() {
				t := now.t
				req.Now = &t
			}
			resp, err := a.Timeline.Workload(ctx, req)
			if err != nil {
				return err
			}
			return a.renderText(cmd, resp, func() string { return formatter.FormatWorkload(resp) })
		},
	}

	cmd.Flags().BoolVar(&merge, "merge", false, "Evaluate the events as one shared pool")
	cmd.Flags().Var(now, "now", "Evaluate pressure as of this time (default: now)")
	return cmd
}
