package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// render prints v as indented JSON under --json, otherwise the text built
// by format.
func (a *App) render(cmd *cobra.Command, v any, format func() (string, error)) error {
	if a.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text, err := format()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), text)
	return err
}

// renderText is render for formatters that cannot fail.
func (a *App) renderText(cmd *cobra.Command, v any, format func() string) error {
	return a.render(cmd, v, func() (string, error) { return format(), nil })
}

// done prints a one-line confirmation, or v as JSON.
func (a *App) done(cmd *cobra.Command, v any, msg string, args ...any) error {
	return a.renderText(cmd, v, func() string { return fmt.Sprintf(msg, args...) + "\n" })
}
