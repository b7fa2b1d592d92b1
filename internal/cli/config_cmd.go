package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, a.Config, func() (string, error) {
				out, err := yaml.Marshal(a.Config)
				return string(out), err
			})
		},
	}
}
