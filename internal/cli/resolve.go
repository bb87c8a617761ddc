package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/addie/internal/domain"
)

// resolveFinding finds a finding in a report by full ID or unique ID prefix,
// so users can pass the 8-character IDs shown in text output.
func resolveFinding(report *domain.QAReport, input string) (*domain.QAFinding, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("finding ID is required")
	}

	for i := range report.Findings {
		if report.Findings[i].ID == input {
			return &report.Findings[i], nil
		}
	}

	var matches []*domain.QAFinding
	for i := range report.Findings {
		if strings.HasPrefix(report.Findings[i].ID, input) {
			matches = append(matches, &report.Findings[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no finding matching %q in the %s report", input, report.Tool)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
