package qa

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/addie/internal/domain"
)

type materialRef struct {
	id       string
	location string
}

// courseMaterialRefs gathers every material reference in the outline, the
// design documents and the needs analysis, in a stable order.
func courseMaterialRefs(snap Snapshot) []materialRef {
	var refs []materialRef
	addAll := func(ids []string, loc string) {
		for _, id := range ids {
			if id = strings.TrimSpace(id); id != "" {
				refs = append(refs, materialRef{id: id, location: loc})
			}
		}
	}
	for _, m := range sortedModules(snap.Outline) {
		addAll(m.MaterialRefs, m.Label())
		for _, o := range m.Objectives {
			addAll(o.MaterialRefs, m.Label())
		}
		for _, l := range sortedLessons(m) {
			loc := m.Label() + " > " + l.Label()
			addAll(l.MaterialRefs, loc)
			for _, o := range l.Objectives {
				addAll(o.MaterialRefs, loc)
			}
		}
	}
	for _, e := range allSlides(snap.DesignDocs) {
		addAll(e.slide.DesignNotes.MaterialRefs, e.location)
	}
	if snap.NeedsAnalysis != nil {
		addAll(snap.NeedsAnalysis.MaterialRefs, "Needs analysis")
	}
	return refs
}

// courseConceptText is the lowercased text that key concepts are matched
// against: course goal, module and lesson titles and descriptions, and
// objective texts.
func courseConceptText(o *domain.CourseOutline) string {
	if o == nil {
		return ""
	}
	parts := []string{o.CourseGoal}
	for _, m := range sortedModules(o) {
		parts = append(parts, m.Title, m.Description)
		for _, obj := range m.Objectives {
			parts = append(parts, obj.Text)
		}
		for _, l := range sortedLessons(m) {
			parts = append(parts, l.Title, l.Description)
			for _, obj := range l.Objectives {
				parts = append(parts, obj.Text)
			}
		}
	}
	return strings.ToLower(strings.Join(parts, "\n"))
}

// ConceptCovered reports whether the concept appears in the course text.
// It is a plain substring match on lowercased text, so "test" is covered by
// "testing" and multi-word concepts must appear verbatim.
func ConceptCovered(concept, lowerCourseText string) bool {
	c := strings.ToLower(strings.TrimSpace(concept))
	return c != "" && strings.Contains(lowerCourseText, c)
}

// SourceMaterialScore weights material usage at 60% and concept coverage at
// 40%. Ratios with a zero denominator count as fully satisfied.
func SourceMaterialScore(used, total, covered, concepts int) int {
	usage, coverage := 1.0, 1.0
	if total > 0 {
		usage = float64(used) / float64(total)
	}
	if concepts > 0 {
		coverage = float64(covered) / float64(concepts)
	}
	return round((usage*0.6 + coverage*0.4) * 100)
}

func runSourceMaterial(snap Snapshot, _ Config, f *findingSet) outcome {
	refs := courseMaterialRefs(snap)
	used := make(map[string]bool, len(refs))
	for _, r := range refs {
		used[r.id] = true
	}
	courseText := courseConceptText(snap.Outline)

	known := make(map[string]bool, len(snap.Materials))
	usedCount, totalConcepts, coveredConcepts := 0, 0, 0
	for _, m := range snap.Materials {
		known[m.ID] = true
		loc := "Material: " + domain.CoalesceStr(m.Name, m.ID)
		isUsed := used[m.ID]
		if isUsed {
			usedCount++
		} else {
			f.add(domain.SeverityWarning,
				"Material not used",
				fmt.Sprintf("%q is linked to the project but no outline item, slide or needs analysis references it.", domain.CoalesceStr(m.Name, m.ID)),
				loc,
				"Reference the material where it supports the content, or unlink it from the project.")
		}
		if m.Analysis == nil {
			if isUsed {
				f.add(domain.SeverityInfo,
					"Material not analyzed",
					"The material is used but has not been analyzed for key concepts.",
					loc,
					"Run the material analysis to extract key concepts and gaps.")
			}
			continue
		}
		for _, concept := range m.Analysis.KeyConcepts {
			if strings.TrimSpace(concept) == "" {
				continue
			}
			totalConcepts++
			if ConceptCovered(concept, courseText) {
				coveredConcepts++
				continue
			}
			f.add(domain.SeverityWarning,
				"Key concept not covered",
				fmt.Sprintf("Key concept %q from this material does not appear in the course goal, titles, descriptions or objectives.", concept),
				loc,
				"Add an objective or lesson that addresses the concept, or confirm it is out of scope.")
		}
		if isUsed && len(m.Analysis.ContentGaps) > 0 {
			f.add(domain.SeverityInfo,
				"Material has content gaps",
				fmt.Sprintf("The material analysis lists gaps: %s.", strings.Join(m.Analysis.ContentGaps, "; ")),
				loc,
				"Supplement the material where the course relies on the missing content.")
		}
	}

	reported := make(map[materialRef]bool)
	for _, r := range refs {
		if known[r.id] || reported[r] {
			continue
		}
		reported[r] = true
		f.add(domain.SeverityInfo,
			"Unknown material reference",
			fmt.Sprintf("Material %q is referenced but not in the project's material library.", r.id),
			r.location,
			"Upload the material or remove the stale reference.")
	}

	if snap.NeedsAnalysis != nil {
		for _, gap := range snap.NeedsAnalysis.MaterialGaps {
			if strings.TrimSpace(gap) == "" || libraryHas(snap.Materials, gap) {
				continue
			}
			f.add(domain.SeverityCritical,
				"Needed material missing",
				fmt.Sprintf("The needs analysis calls for %q, which is not in the material library.", gap),
				"Needs analysis",
				"Source or create the material before development.")
		}
	}

	total := len(snap.Materials)
	return outcome{
		score: SourceMaterialScore(usedCount, total, coveredConcepts, totalConcepts),
		summary: fmt.Sprintf("%d/%d materials used; %d/%d key concepts covered. Findings: %s.",
			usedCount, total, coveredConcepts, totalConcepts, f.counts()),
	}
}

// libraryHas reports whether a material's name contains the gap text or one
// of its tags or its category equals it, case-insensitively.
func libraryHas(materials []domain.Material, gap string) bool {
	g := strings.ToLower(strings.TrimSpace(gap))
	for _, m := range materials {
		if strings.Contains(strings.ToLower(m.Name), g) || strings.EqualFold(m.Category, g) {
			return true
		}
		for _, t := range m.Tags {
			if strings.EqualFold(strings.TrimSpace(t), g) {
				return true
			}
		}
	}
	return false
}

// RunSourceMaterial runs the source-material analyzer.
func RunSourceMaterial(snap Snapshot, cfg Config) *domain.QAReport {
	a, _ := ForTool(domain.ToolSourceMaterial)
	return a.Run(snap, cfg)
}
