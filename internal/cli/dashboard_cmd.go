package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/addie/internal/cli/formatter"
	"github.com/alexanderramin/addie/internal/config"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dashboard <project>",
		Short: "Show the latest score of every check for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.QA.Dashboard(context.Background(), args[0])
			if err != nil {
				return err
			}

			if outputFormat(app, format) == config.FormatJSON {
				return writeJSON(cmd, resp)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(resp))
			return nil
		},
	}

	addFormatFlag(cmd, app, &format)
	return cmd
}
