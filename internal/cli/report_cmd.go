package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/addie/internal/cli/formatter"
	"github.com/alexanderramin/addie/internal/config"
	"github.com/alexanderramin/addie/internal/domain"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show stored reports and resolve findings",
	}

	cmd.AddCommand(
		newReportShowCmd(app),
		newReportResolveCmd(app),
	)

	return cmd
}

func newReportShowCmd(app *App) *cobra.Command {
	var format string
	var open bool

	cmd := &cobra.Command{
		Use:   "show <project> <tool>",
		Short: "Show the latest report of one check",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, err := parseTool(args[1])
			if err != nil {
				return err
			}

			report, err := app.QA.GetReport(context.Background(), args[0], tool)
			if err != nil {
				return err
			}

			if outputFormat(app, format) == config.FormatJSON {
				return writeJSON(cmd, report)
			}
			if report == nil {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNoReport(args[0], tool))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(report, formatter.ReportOptions{HideResolved: open}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "Hide resolved findings")
	addFormatFlag(cmd, app, &format)

	return cmd
}

func newReportResolveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <project> <tool> [finding-id]",
		Short: "Mark a finding as resolved",
		Long: "Mark a finding as resolved. The finding ID may be a unique prefix.\n" +
			"Without an ID, a terminal session picks from the unresolved findings.\n" +
			"Resolutions last until the check runs again.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID := args[0]
			tool, err := parseTool(args[1])
			if err != nil {
				return err
			}

			report, err := app.QA.GetReport(ctx, projectID, tool)
			if err != nil {
				return err
			}
			if report == nil {
				return fmt.Errorf("no %s report for project %s", tool, projectID)
			}

			var findingID string
			if len(args) == 3 {
				findingID = args[2]
			} else {
				findingID, err = pickFindingInteractive(app, report)
				if errors.Is(err, errNoOpenFindings) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.Dim("Nothing to resolve: every finding is resolved."))
					return nil
				}
				if err != nil {
					return err
				}
			}

			finding, err := resolveFinding(report, findingID)
			if err != nil {
				return err
			}
			if finding.Resolved {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.Dim("Already resolved:"), finding.Title)
				return nil
			}

			if err := app.QA.ResolveFinding(ctx, projectID, tool, finding.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				formatter.StyleGreen.Render("✔ Resolved"), formatter.Bold(finding.Title), formatter.TruncID(finding.ID))
			return nil
		},
	}

	return cmd
}

// pickFindingInteractive asks for a finding when no ID was given. Outside a
// terminal the ID is required.
func pickFindingInteractive(app *App, report *domain.QAReport) (string, error) {
	if app.IsTerminal == nil || !app.IsTerminal() {
		return "", errors.New("finding ID is required when not running in a terminal")
	}
	if len(findingOptions(report)) == 0 {
		return "", errNoOpenFindings
	}
	pick := app.PickFinding
	if pick == nil {
		pick = pickFinding
	}
	return pick(report)
}
