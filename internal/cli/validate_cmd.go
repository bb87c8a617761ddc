package cli

import (
	"fmt"

	"github.com/alexanderramin/addie/internal/cli/formatter"
	"github.com/alexanderramin/addie/internal/config"
	"github.com/alexanderramin/addie/internal/importer"
	"github.com/spf13/cobra"
)

type validationOutput struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func newValidateCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a course content file without running checks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			schema, err := importer.LoadImportSchema(path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			errs := importer.ValidateImportSchema(schema)

			if outputFormat(app, format) == config.FormatJSON {
				out := validationOutput{File: path, Valid: len(errs) == 0, Errors: []string{}}
				for _, e := range errs {
					out.Errors = append(out.Errors, e.Error())
				}
				if err := writeJSON(cmd, out); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatValidation(path, errs))
			}

			if len(errs) > 0 {
				return fmt.Errorf("%s has %d validation %s", path, len(errs), formatter.Plural(len(errs), "error"))
			}
			return nil
		},
	}

	addFormatFlag(cmd, app, &format)
	return cmd
}
