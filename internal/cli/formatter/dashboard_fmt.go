package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/addie/internal/app"
)

const dashboardBarWidth = 10

// FormatDashboard renders the per-tool overview of a project.
func FormatDashboard(resp *app.DashboardResponse) string {
	var b strings.Builder
	b.WriteString(Header("QA dashboard: " + resp.ProjectID))
	b.WriteString("\n\n")

	headers := []string{"TOOL", "SCORE", "CRIT", "WARN", "INFO", "OPEN", "LAST RUN"}
	rows := make([][]string, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		if !row.HasReport {
			rows = append(rows, []string{
				Dim(ToolName(row.Tool)),
				RenderCompactBar(0, dashboardBarWidth, true) + " " + Dim("  --"),
				Dim("-"), Dim("-"), Dim("-"), Dim("-"),
				Dim("not run"),
			})
			continue
		}
		lastRun := "--"
		if row.RunAt != nil {
			lastRun = RunTimestamp(*row.RunAt)
		}
		rows = append(rows, []string{
			Bold(ToolName(row.Tool)),
			RenderCompactBar(row.Score, dashboardBarWidth, false) + " " + ScoreColor(row.Score).Render(fmt.Sprintf("%4d", row.Score)),
			countCell(row.Critical, StyleRed.Render),
			countCell(row.Warnings, StyleYellow.Render),
			countCell(row.Info, StyleBlue.Render),
			countCell(row.Unresolved, StyleFg.Render),
			Dim(lastRun),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	if resp.ReportCount == 0 {
		b.WriteString(Dim("No reports yet. Run `addie check <file>` to analyze this project.") + "\n")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		Bold("Overall"),
		Score(resp.OverallScore),
		Dim(fmt.Sprintf("(%d of %d tools reported)", resp.ReportCount, len(resp.Rows))),
	))
	return b.String()
}

func countCell(n int, render func(...string) string) string {
	if n == 0 {
		return Dim("0")
	}
	return render(fmt.Sprintf("%d", n))
}
