package cli

import (
	"github.com/alexanderramin/stagehand/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newLocationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "location",
		Aliases: []string{"loc"},
		Short:   "Manage locations",
	}
	cmd.AddCommand(
		newLocationAddCmd(app),
		newLocationListCmd(app),
		newLocationRemoveCmd(app),
	)
	return cmd
}

func newLocationAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Create a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := app.Locations.Create(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.done(cmd, loc, "Created location %s %s", loc.Name, formatter.TruncID(loc.ID))
		},
	}
}

func newLocationListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			locations, err := app.Locations.List(cmd.Context())
			if err != nil {
				return err
			}
			return app.renderText(cmd, locations, func() string {
				if len(locations) == 0 {
					return "No locations found.\n"
				}
				return formatter.FormatLocations(locations)
			})
		},
	}
}

func newLocationRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove LOCATION",
		Short: "Delete a location with no events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := app.Locations.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := app.Locations.Delete(cmd.Context(), loc.ID); err != nil {
				return err
			}
			return app.done(cmd, loc, "Removed location %s", loc.Name)
		},
	}
}
