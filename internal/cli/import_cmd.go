package cli

import (
	"github.com/alexanderramin/stagehand/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import locations, events, phases, tasks and capacities from YAML or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportWorkspace(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.renderText(cmd, result, func() string {
				return formatter.FormatImportResult(args[0], result) + "\n"
			})
		},
	}
}
