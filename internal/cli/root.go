package cli

import (
	"github.com/alexanderramin/stagehand/internal/config"
	"github.com/alexanderramin/stagehand/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all services and settings used by CLI commands.
type App struct {
	Locations  service.LocationService
	Events     service.EventService
	Phases     service.PhaseService
	Tasks      service.TaskService
	Capacities service.CapacityService
	Timeline   service.TimelineService
	Import     service.ImportService

	Config config.Config

	// IsInteractive reports whether stdin is a terminal. Forms and the
	// board viewer only start when it returns true.
	IsInteractive func() bool

	jsonOutput bool
}

// NewRootCmd creates the top-level "stagehand" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "stagehand",
		Short:         "Event timeline planner and workload checker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&app.jsonOutput, "json", false, "Print results as JSON")

	root.AddCommand(
		newLocationCmd(app),
		newEventCmd(app),
		newPhaseCmd(app),
		newCategoryCmd(app),
		newTaskCmd(app),
		newAllocCmd(app),
		newCapacityCmd(app),
		newImportCmd(app),
		newTimelineCmd(app),
		newWorkloadCmd(app),
		newConfigCmd(app),
	)
	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
