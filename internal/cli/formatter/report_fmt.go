package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/addie/internal/app"
	"github.com/alexanderramin/addie/internal/domain"
)

const reportScoreBarWidth = 20

// ReportOptions controls FormatReport.
type ReportOptions struct {
	HideResolved bool
}

// FormatReport renders one tool's report as a boxed score card followed by
// its findings, most severe first within the analyzer's own order.
func FormatReport(r *domain.QAReport, opts ReportOptions) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Project"), Bold(r.ProjectID)))
	b.WriteString(fmt.Sprintf("%s    %s\n", Dim("Score"), RenderScoreBar(r.Score, reportScoreBarWidth)))
	b.WriteString(fmt.Sprintf("%s   %s\n", Dim("Run at"), RunTimestamp(r.RunAt)))
	if r.Summary != "" {
		b.WriteString("\n" + StyleFg.Render(r.Summary))
	}

	var out strings.Builder
	out.WriteString(RenderBox(ToolName(r.Tool), b.String()))
	out.WriteString("\n\n")

	shown := 0
	for _, sev := range []domain.Severity{domain.SeverityCritical, domain.SeverityWarning, domain.SeverityInfo, domain.SeverityPass} {
		for _, f := range r.Findings {
			if f.Severity != sev || (opts.HideResolved && f.Resolved) {
				continue
			}
			out.WriteString(formatFinding(f))
			out.WriteString("\n")
			shown++
		}
	}
	if shown == 0 {
		if len(r.Findings) == 0 {
			out.WriteString(StyleGreen.Render("✔ No issues found.") + "\n\n")
		} else {
			out.WriteString(StyleGreen.Render("✔ All findings resolved.") + "\n\n")
		}
	}

	out.WriteString(FindingCounts(r))
	out.WriteString("\n")
	return out.String()
}

func formatFinding(f domain.QAFinding) string {
	var b strings.Builder
	title := Bold(f.Title)
	if f.Resolved {
		title = Dim(f.Title + " (resolved)")
	}
	b.WriteString(fmt.Sprintf("%s  %s  %s\n", SeverityIndicator(f.Severity), title, TruncID(f.ID)))
	if f.Location != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("at"), StylePurple.Render(f.Location)))
	}
	if f.Description != "" {
		b.WriteString("  " + f.Description + "\n")
	}
	if f.Suggestion != "" {
		b.WriteString("  " + StyleGreen.Render("→ ") + f.Suggestion + "\n")
	}
	return b.String()
}

// FindingCounts renders "2 critical · 1 warning · 0 info · 1 resolved".
func FindingCounts(r *domain.QAReport) string {
	resolved := len(r.Findings) - r.UnresolvedCount()
	parts := []string{
		StyleRed.Render(fmt.Sprintf("%d critical", r.CountBySeverity(domain.SeverityCritical))),
		StyleYellow.Render(fmt.Sprintf("%d %s", r.CountBySeverity(domain.SeverityWarning), Plural(r.CountBySeverity(domain.SeverityWarning), "warning"))),
		StyleBlue.Render(fmt.Sprintf("%d info", r.CountBySeverity(domain.SeverityInfo))),
		Dim(fmt.Sprintf("%d resolved", resolved)),
	}
	return strings.Join(parts, Dim(" · "))
}

// FormatNoReport is the empty state shown before a tool has run.
func FormatNoReport(projectID string, tool domain.Tool) string {
	return fmt.Sprintf("%s\n%s\n",
		Dim(fmt.Sprintf("No %s report for project %s yet.", ToolName(tool), projectID)),
		fmt.Sprintf("Run analysis with: %s", Bold(fmt.Sprintf("addie check <file> --tool %s", tool))),
	)
}

// FormatRunAll summarizes a batch run: one row per written report and a
// line per skipped tool.
func FormatRunAll(projectID string, resp *app.RunAllResponse) string {
	var b strings.Builder
	b.WriteString(Header("QA checks for " + projectID))
	b.WriteString("\n\n")

	if len(resp.Reports) > 0 {
		headers := []string{"TOOL", "SCORE", "CRITICAL", "WARNINGS", "INFO"}
		rows := make([][]string, 0, len(resp.Reports))
		for _, r := range resp.Reports {
			rows = append(rows, []string{
				Bold(ToolName(r.Tool)),
				RenderScoreBar(r.Score, 10),
				fmt.Sprintf("%d", r.CountBySeverity(domain.SeverityCritical)),
				fmt.Sprintf("%d", r.CountBySeverity(domain.SeverityWarning)),
				fmt.Sprintf("%d", r.CountBySeverity(domain.SeverityInfo)),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	} else {
		b.WriteString(Dim("No checks could run.") + "\n")
	}

	if len(resp.Skipped) > 0 {
		b.WriteString("\n")
		for _, s := range resp.Skipped {
			b.WriteString(fmt.Sprintf("%s %s: %s\n", StyleYellow.Render("⊘ Skipped"), ToolName(s.Tool), Dim(s.Reason)))
		}
	}
	return b.String()
}
