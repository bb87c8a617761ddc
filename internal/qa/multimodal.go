package qa

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/addie/internal/domain"
)

type modalitySet map[domain.Modality]bool

func (s modalitySet) sorted() []string {
	var out []string
	for _, m := range domain.Modalities {
		if s[m] {
			out = append(out, string(m))
		}
	}
	return out
}

// moduleModalities unions declared modalities, kinesthetic implied by lesson
// activities, and modalities inferred from the module's slides.
func moduleModalities(m domain.CourseModule, docs []domain.DesignDocument) modalitySet {
	set := make(modalitySet)
	for _, mod := range m.Modalities {
		set[mod] = true
	}
	for _, l := range m.Lessons {
		for _, mod := range l.Modalities {
			set[mod] = true
		}
		if len(l.Activities) > 0 {
			set[domain.ModalityKinesthetic] = true
		}
	}
	for _, s := range moduleSlides(docs, m) {
		lv := s.slide.LearnerView
		if !domain.IsBlank(lv.VisualDescription) {
			set[domain.ModalityVisual] = true
		}
		if !domain.IsBlank(lv.AudioScript) {
			set[domain.ModalityAuditory] = true
		}
		if !domain.IsBlank(lv.BodyText) || len(lv.BulletPoints) > 0 {
			set[domain.ModalityReadWrite] = true
		}
		if !domain.IsBlank(lv.InteractionDescription) {
			set[domain.ModalityKinesthetic] = true
		}
	}
	return set
}

func runMultimodal(snap Snapshot, _ Config, f *findingSet) outcome {
	modules := sortedModules(snap.Outline)
	if len(modules) == 0 {
		f.add(domain.SeverityCritical,
			"No modules",
			"The course outline has no modules, so modality coverage cannot be assessed.",
			"Course",
			"Add modules to the course outline.")
		return outcome{score: 0, summary: "No modules to analyze."}
	}

	coverage := make(map[domain.Modality]int, len(domain.Modalities))
	sum := 0
	for _, m := range modules {
		set := moduleModalities(m, snap.DesignDocs)
		sum += len(set)
		for mod := range set {
			coverage[mod]++
		}

		switch len(set) {
		case 0:
			f.add(domain.SeverityCritical,
				"No learning modalities",
				"The module declares no modalities and none can be inferred from its lessons or slides.",
				m.Label(),
				"Combine visual, auditory, read/write and hands-on elements.")
		case 1:
			f.add(domain.SeverityCritical,
				"Single-modality bias",
				fmt.Sprintf("The module relies only on %s delivery.", set.sorted()[0]),
				m.Label(),
				"Add at least one more modality, such as narration, a diagram or a practice activity.")
		}
		if !set[domain.ModalityKinesthetic] {
			f.add(domain.SeverityWarning,
				"No kinesthetic activities",
				"The module has no hands-on activity or interaction.",
				m.Label(),
				"Add a practice task, simulation or interactive exercise.")
		}
		if !set[domain.ModalityVisual] {
			f.add(domain.SeverityInfo,
				"No visual content",
				"The module has no visual element.",
				m.Label(),
				"Add a diagram, chart or illustration to support the text.")
		}
	}

	for _, mod := range domain.Modalities {
		if coverage[mod] == 0 {
			f.add(domain.SeverityCritical,
				fmt.Sprintf("%s modality has 0%% coverage", titleCase(string(mod))),
				fmt.Sprintf("No module in the course uses the %s modality.", mod),
				"Course",
				fmt.Sprintf("Introduce %s elements in at least one module.", mod))
		}
	}

	avg := float64(sum) / float64(len(modules))
	score := min(100, round(avg/4*100))

	covParts := make([]string, len(domain.Modalities))
	for i, mod := range domain.Modalities {
		covParts[i] = fmt.Sprintf("%s %d/%d", mod, coverage[mod], len(modules))
	}
	return outcome{
		score: score,
		summary: fmt.Sprintf("Average %.1f of 4 modalities per module across %d modules (%s). Findings: %s.",
			avg, len(modules), strings.Join(covParts, ", "), f.counts()),
	}
}

// RunMultimodal runs the VARK multimodal analyzer.
func RunMultimodal(snap Snapshot, cfg Config) *domain.QAReport {
	a, _ := ForTool(domain.ToolMultimodal)
	return a.Run(snap, cfg)
}
