package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/addie/internal/config"
	"github.com/spf13/cobra"
)

// outputFormat resolves "auto" to text on a terminal and JSON otherwise.
func outputFormat(app *App, format string) string {
	if format != config.FormatAuto {
		return format
	}
	if app.IsTerminal != nil && app.IsTerminal() {
		return config.FormatText
	}
	return config.FormatJSON
}

func addFormatFlag(cmd *cobra.Command, app *App, p *string) {
	def := app.Config.Format
	if def == "" {
		def = config.FormatAuto
	}
	cmd.Flags().Var(newFormatValue(def, p), "format", "Output format (auto|text|json)")
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
