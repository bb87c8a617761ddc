package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/addie/internal/cli/formatter"
	"github.com/alexanderramin/addie/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// errNoOpenFindings is returned by a picker when every finding is resolved.
var errNoOpenFindings = errors.New("no unresolved findings")

// addieHuhTheme returns a huh theme matching the formatter palette.
func addieHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// findingOptions lists the unresolved findings of a report as select options
// keyed by finding ID.
func findingOptions(report *domain.QAReport) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(report.Findings))
	for _, f := range report.Findings {
		if f.Resolved {
			continue
		}
		label := fmt.Sprintf("%-8s %s", f.Severity, f.Title)
		if f.Location != "" {
			label += " (" + f.Location + ")"
		}
		options = append(options, huh.NewOption(label, f.ID))
	}
	return options
}

func pickFindingForm(report *domain.QAReport, selected *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Finding to resolve (%s)", report.Tool)).
				Options(findingOptions(report)...).
				Value(selected),
		),
	).WithTheme(addieHuhTheme()).WithShowHelp(false)
}

// pickFinding asks the user to choose one unresolved finding of report.
func pickFinding(report *domain.QAReport) (string, error) {
	if len(findingOptions(report)) == 0 {
		return "", errNoOpenFindings
	}
	var selected string
	if err := pickFindingForm(report, &selected).Run(); err != nil {
		return "", err
	}
	return selected, nil
}
