package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/addie/internal/app"
	"github.com/alexanderramin/addie/internal/cli/formatter"
	"github.com/alexanderramin/addie/internal/config"
	"github.com/alexanderramin/addie/internal/domain"
	"github.com/alexanderramin/addie/internal/service"
	"github.com/spf13/cobra"
)

type runAllOutput struct {
	ProjectID string `json:"projectId"`
	*app.RunAllResponse
}

func newCheckCmd(app *App) *cobra.Command {
	var tools toolListValue
	var level domain.CourseLevel
	var format string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Load a course content file and run QA checks on it",
		Long: "Load a course content file (JSON or YAML) and run QA checks on it.\n" +
			"Without --tool every check runs; checks whose content is missing are skipped.\n" +
			"Each run replaces the previous report for that check.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			imported, err := app.Import.ImportContent(ctx, args[0])
			if err != nil {
				return err
			}
			projectID := imported.Project.ID
			format = outputFormat(app, format)

			if len(tools) == 1 {
				return runSingleCheck(ctx, cmd, app, projectID, tools[0], level, format)
			}

			resp, err := app.QA.RunAll(ctx, runAllRequest(projectID, tools, level))
			if err != nil {
				return err
			}

			if format == config.FormatJSON {
				return writeJSON(cmd, runAllOutput{ProjectID: projectID, RunAllResponse: resp})
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatImportResult(imported))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatRunAll(projectID, resp))
			if verbose {
				for _, r := range resp.Reports {
					fmt.Fprintln(out)
					fmt.Fprint(out, formatter.FormatReport(r, formatter.ReportOptions{}))
				}
			}
			return nil
		},
	}

	cmd.Flags().Var(&tools, "tool", "Check to run, repeatable or comma-separated ("+toolKeys()+")")
	cmd.Flags().Var(newCourseLevelValue(app.Config.CourseLevel, &level), "level", "Course level for the Bloom's target (foundational|intermediate|advanced)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every report in full")
	addFormatFlag(cmd, app, &format)

	return cmd
}

func runAllRequest(projectID string, tools []domain.Tool, level domain.CourseLevel) app.RunAllRequest {
	req := app.NewRunAllRequest(projectID)
	req.Tools = tools
	if level != "" {
		req.CourseLevel = level
	}
	return req
}

// runSingleCheck runs one tool. Missing content is an empty state, not an
// error: nothing is written and the previous report stays.
func runSingleCheck(ctx context.Context, cmd *cobra.Command, a *App, projectID string, tool domain.Tool, level domain.CourseLevel, format string) error {
	req := app.NewRunRequest(projectID, tool)
	if level != "" {
		req.CourseLevel = level
	}

	report, err := a.QA.Run(ctx, req)
	if errors.Is(err, service.ErrPreconditionNotMet) {
		if format == config.FormatJSON {
			return writeJSON(cmd, nil)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.StyleYellow.Render("⊘ Skipped"), err)
		return nil
	}
	if err != nil {
		return err
	}

	if format == config.FormatJSON {
		return writeJSON(cmd, report)
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(report, formatter.ReportOptions{}))
	return nil
}
