package qa

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/addie/internal/domain"
	"github.com/google/uuid"
)

var findingNamespace = uuid.MustParse("6f1c1d52-8a43-4c7e-9d0a-4b1f0c2e7a11")

// FindingID derives a stable finding identifier from the report identity and
// the finding's position, so identical runs yield identical IDs.
func FindingID(projectID string, tool domain.Tool, index int) string {
	name := fmt.Sprintf("%s/%s/%d", projectID, tool, index)
	return uuid.NewSHA1(findingNamespace, []byte(name)).String()
}

type findingSet struct {
	tool  domain.Tool
	items []domain.QAFinding
}

func (s *findingSet) add(sev domain.Severity, title, description, location, suggestion string) {
	s.items = append(s.items, domain.QAFinding{
		Tool:        s.tool,
		Severity:    sev,
		Title:       title,
		Description: description,
		Location:    location,
		Suggestion:  suggestion,
	})
}

func (s *findingSet) count(sev domain.Severity) int {
	n := 0
	for _, f := range s.items {
		if f.Severity == sev {
			n++
		}
	}
	return n
}

// counts renders "1 critical, 2 warnings, 0 info".
func (s *findingSet) counts() string {
	return fmt.Sprintf("%d critical, %d %s, %d info",
		s.count(domain.SeverityCritical),
		s.count(domain.SeverityWarning), plural(s.count(domain.SeverityWarning), "warning", "warnings"),
		s.count(domain.SeverityInfo))
}

func (s *findingSet) report(projectID string, out outcome, now time.Time) *domain.QAReport {
	findings := make([]domain.QAFinding, len(s.items))
	for i, f := range s.items {
		f.ID = FindingID(projectID, s.tool, i)
		findings[i] = f
	}
	return &domain.QAReport{
		ProjectID: projectID,
		Tool:      s.tool,
		Score:     domain.ClampScore(out.score),
		Findings:  findings,
		Summary:   out.summary,
		RunAt:     now,
	}
}

// round rounds half away from zero.
func round(x float64) int {
	return int(math.Round(x))
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) * 100 / float64(total)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = fmt.Sprintf("%q", it)
	}
	return strings.Join(quoted, ", ")
}
