package qa

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/addie/internal/domain"
	"github.com/alexanderramin/addie/internal/textcheck"
)

// Target share of lessons per difficulty band.
const (
	targetComfort  = 0.2
	targetLearning = 0.6
	targetStretch  = 0.2
)

// ZPDDistributionScore is 100 minus 100 times the summed absolute deviation
// of the band fractions from the 20/60/20 target, floored at 0.
func ZPDDistributionScore(comfort, learning, stretch float64) float64 {
	dev := math.Abs(comfort-targetComfort) + math.Abs(learning-targetLearning) + math.Abs(stretch-targetStretch)
	return math.Max(0, 100-100*dev)
}

// ZPDFindingDeduction weighs findings for the difficulty score.
func ZPDFindingDeduction(critical, warning, info int) int {
	return 15*critical + 7*warning + 2*info
}

func runZPD(snap Snapshot, _ Config, f *findingSet) outcome {
	seq := flattenLessons(snap.Outline)
	n := len(seq)
	if n == 0 {
		f.add(domain.SeverityCritical,
			"No lessons",
			"The course outline has no lessons, so difficulty progression cannot be assessed.",
			"Course",
			"Add lesson plans with a difficulty level to each module.")
		return outcome{score: 0, summary: "No lessons to analyze."}
	}

	bands := make(map[domain.ZPDLevel]int)
	firstIdx := map[domain.ZPDLevel]int{}
	for i, e := range seq {
		lvl := e.lesson.ZPDLevel
		bands[lvl]++
		if _, ok := firstIdx[lvl]; !ok {
			firstIdx[lvl] = i
		}
	}
	distinct := len(bands)

	if distinct == 1 {
		f.add(domain.SeverityCritical,
			"No difficulty progression",
			fmt.Sprintf("All %d %s sit at the same difficulty level (%s).", n, plural(n, "lesson", "lessons"), seq[0].lesson.ZPDLevel),
			"Course",
			"Sequence lessons from comfort through learning to stretch challenges.")
	}
	if n > 1 && bands[domain.ZPDStretch] == 0 {
		f.add(domain.SeverityWarning,
			"No stretch lessons",
			"No lesson challenges learners beyond their current ability.",
			"Course",
			"Add at least one stretch lesson near the end of the course.")
	}
	stretchIdx, hasStretch := firstIdx[domain.ZPDStretch]
	learningIdx, hasLearning := firstIdx[domain.ZPDLearning]
	if hasStretch && hasLearning && stretchIdx < learningIdx {
		f.add(domain.SeverityWarning,
			"Stretch before learning",
			fmt.Sprintf("The first stretch lesson (#%d) comes before the first learning-zone lesson (#%d).", stretchIdx+1, learningIdx+1),
			seq[stretchIdx].location,
			"Move stretch lessons after learners have practised in the learning zone.")
	}
	for i := 0; i+1 < n; i++ {
		if seq[i].lesson.ZPDLevel == domain.ZPDComfort && seq[i+1].lesson.ZPDLevel == domain.ZPDStretch {
			f.add(domain.SeverityWarning,
				"Jump without transition",
				fmt.Sprintf("Lesson #%d (comfort) is followed directly by lesson #%d (stretch).", i+1, i+2),
				seq[i].location+" → "+seq[i+1].location,
				"Insert a learning-zone lesson between them.")
		}
	}

	var scaffolded, noFadePlan []string
	for _, e := range seq {
		strategy := lessonScaffolding(snap.DesignDocs, e.lesson.ID)
		if strategy == "" {
			switch e.lesson.ZPDLevel {
			case domain.ZPDStretch:
				f.add(domain.SeverityCritical,
					"Stretch lesson without scaffolding",
					"No slide for this stretch lesson describes a scaffolding strategy.",
					e.location,
					"Provide worked examples, hints or guided practice for the stretch task.")
			case domain.ZPDLearning:
				f.add(domain.SeverityWarning,
					"Learning lesson without scaffolding",
					"No slide for this lesson describes a scaffolding strategy.",
					e.location,
					"Describe the support learners receive in this lesson.")
			}
			continue
		}
		scaffolded = append(scaffolded, e.location)
		if !textcheck.FadeWords.Matches(strategy) {
			noFadePlan = append(noFadePlan, e.location)
		}
	}
	if len(scaffolded) >= 2 && len(noFadePlan) > 0 {
		f.add(domain.SeverityInfo,
			"Scaffolding fade plan not described",
			fmt.Sprintf("Scaffolded lessons without a plan to withdraw support: %s.", strings.Join(noFadePlan, "; ")),
			"Course",
			"State how support is gradually reduced so learners become independent.")
	}

	if n >= 4 && distinct > 1 {
		mid := n / 2
		first, second := seq[:mid], seq[mid:]
		if bandFraction(first, domain.ZPDStretch) > 0.5 || bandFraction(second, domain.ZPDComfort) > 0.5 {
			f.add(domain.SeverityWarning,
				"Inverted difficulty curve",
				"Difficulty is concentrated early and eases off later in the course.",
				"Course",
				"Reorder lessons so challenge increases over the course.")
		}
	}

	comfort := float64(bands[domain.ZPDComfort]) / float64(n)
	learning := float64(bands[domain.ZPDLearning]) / float64(n)
	stretch := float64(bands[domain.ZPDStretch]) / float64(n)
	dist := ZPDDistributionScore(comfort, learning, stretch)
	deduction := ZPDFindingDeduction(f.count(domain.SeverityCritical), f.count(domain.SeverityWarning), f.count(domain.SeverityInfo))
	score := domain.ClampScore(round(dist - float64(deduction)))

	return outcome{
		score: score,
		summary: fmt.Sprintf("%d lessons: %.0f%% comfort, %.0f%% learning, %.0f%% stretch (target 20/60/20); %d scaffolded. Findings: %s.",
			n, comfort*100, learning*100, stretch*100, len(scaffolded), f.counts()),
	}
}

// lessonScaffolding joins the scaffolding strategies of the lesson's slides.
func lessonScaffolding(docs []domain.DesignDocument, lessonID string) string {
	var parts []string
	for _, s := range lessonSlides(docs, lessonID) {
		if st := strings.TrimSpace(s.slide.DesignNotes.ScaffoldingStrategy); st != "" {
			parts = append(parts, st)
		}
	}
	return strings.Join(parts, " ")
}

func bandFraction(seq []lessonEntry, lvl domain.ZPDLevel) float64 {
	if len(seq) == 0 {
		return 0
	}
	n := 0
	for _, e := range seq {
		if e.lesson.ZPDLevel == lvl {
			n++
		}
	}
	return float64(n) / float64(len(seq))
}

// RunZPD runs the difficulty-progression analyzer.
func RunZPD(snap Snapshot, cfg Config) *domain.QAReport {
	a, _ := ForTool(domain.ToolZPD)
	return a.Run(snap, cfg)
}
