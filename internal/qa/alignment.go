package qa

import (
	"fmt"

	"github.com/alexanderramin/addie/internal/domain"
)

// runAlignment checks that every objective is assessed and covered by
// content, and that slide objective references resolve.
func runAlignment(snap Snapshot, _ Config, f *findingSet) outcome {
	objectives := collectObjectives(snap.Outline)
	slides := allSlides(snap.DesignDocs)

	covered := make(map[string]bool)
	for _, s := range slides {
		if s.slide.ObjectiveRef != "" {
			covered[s.slide.ObjectiveRef] = true
		}
	}

	known := make(map[string]bool, len(objectives))
	aligned, withContent := 0, 0
	for _, e := range objectives {
		obj := e.objective
		known[obj.ID] = true
		if obj.AssessmentAligned {
			aligned++
		} else {
			f.add(domain.SeverityWarning,
				"Objective lacks assessment alignment",
				fmt.Sprintf("Objective %q is not measured by any assessment.", obj.Text),
				e.location,
				"Add an assessment item or activity that directly measures this objective.")
		}
		if covered[obj.ID] {
			withContent++
		} else {
			f.add(domain.SeverityWarning,
				"Objective has no content coverage",
				fmt.Sprintf("No design document slide references objective %q.", obj.Text),
				e.location,
				"Create or tag slides that teach this objective.")
		}
	}

	for _, s := range slides {
		ref := s.slide.ObjectiveRef
		if ref == "" || known[ref] {
			continue
		}
		f.add(domain.SeverityInfo,
			"Orphaned content",
			fmt.Sprintf("Slide references objective %q, which does not exist in the course outline.", ref),
			s.location,
			"Link the slide to an existing objective or remove the stale reference.")
	}

	for _, m := range sortedModules(snap.Outline) {
		if domain.IsBlank(m.AssessmentStrategy) {
			f.add(domain.SeverityCritical,
				"Module missing assessment strategy",
				"The module does not describe how learning will be assessed.",
				m.Label(),
				"Describe the assessment strategy (formative checks, summative assessment, rubric).")
		}
	}

	total := len(objectives)
	score := 100
	if total > 0 {
		score = round(float64(aligned) / float64(total) * 100)
	}
	return outcome{
		score: score,
		summary: fmt.Sprintf("%d/%d objectives aligned to assessments, %d with content coverage. Findings: %s.",
			aligned, total, withContent, f.counts()),
	}
}

// RunAlignment runs the alignment analyzer.
func RunAlignment(snap Snapshot, cfg Config) *domain.QAReport {
	a, _ := ForTool(domain.ToolAlignment)
	return a.Run(snap, cfg)
}
