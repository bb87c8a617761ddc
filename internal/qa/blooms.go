package qa

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/addie/internal/domain"
)

// BloomTargets is the target share (percent) of objectives per Bloom level
// for each course level. Each row sums to 100.
var BloomTargets = map[domain.CourseLevel]map[domain.BloomLevel]float64{
	domain.LevelFoundational: {
		domain.BloomRemember: 20, domain.BloomUnderstand: 20, domain.BloomApply: 40,
		domain.BloomAnalyze: 10, domain.BloomEvaluate: 5, domain.BloomCreate: 5,
	},
	domain.LevelIntermediate: {
		domain.BloomRemember: 10, domain.BloomUnderstand: 15, domain.BloomApply: 35,
		domain.BloomAnalyze: 20, domain.BloomEvaluate: 10, domain.BloomCreate: 10,
	},
	domain.LevelAdvanced: {
		domain.BloomRemember: 5, domain.BloomUnderstand: 10, domain.BloomApply: 25,
		domain.BloomAnalyze: 25, domain.BloomEvaluate: 20, domain.BloomCreate: 15,
	},
}

// BloomDistributionScore scores how far the actual counts deviate from the
// target percentages: 100 minus half the summed absolute deviation.
func BloomDistributionScore(counts map[domain.BloomLevel]int, target map[domain.BloomLevel]float64) int {
	total := 0
	for _, lvl := range domain.BloomLevels {
		total += counts[lvl]
	}
	deviation := 0.0
	for _, lvl := range domain.BloomLevels {
		deviation += math.Abs(pct(counts[lvl], total) - target[lvl])
	}
	return max(0, round(100-deviation/2))
}

func runBlooms(snap Snapshot, cfg Config, f *findingSet) outcome {
	objectives := collectObjectives(snap.Outline)
	counts := make(map[domain.BloomLevel]int, len(domain.BloomLevels))
	for _, e := range objectives {
		counts[e.objective.BloomLevel]++
	}
	total := len(objectives)

	if total == 0 {
		f.add(domain.SeverityCritical,
			"No learning objectives",
			"The course outline has no module or lesson objectives to classify.",
			"Course",
			"Write measurable learning objectives for each module and lesson.")
		return outcome{score: 0, summary: "No objectives to analyze."}
	}

	lower := counts[domain.BloomRemember] + counts[domain.BloomUnderstand]
	higher := total - lower
	if float64(lower)/float64(total) > 0.60 {
		f.add(domain.SeverityCritical,
			"Overreliance on lower-order thinking",
			fmt.Sprintf("%.0f%% of objectives are at the remember/understand levels.", pct(lower, total)),
			"Course",
			"Rewrite some objectives to ask learners to apply, analyze, evaluate or create.")
	}
	if counts[domain.BloomApply]+counts[domain.BloomAnalyze]+counts[domain.BloomEvaluate]+counts[domain.BloomCreate] == 0 {
		f.add(domain.SeverityCritical,
			"No higher-order objectives",
			"No objective targets apply, analyze, evaluate or create.",
			"Course",
			"Add objectives that require learners to use and judge what they learned.")
	}
	if cfg.CourseLevel == domain.LevelAdvanced && counts[domain.BloomCreate] == 0 {
		f.add(domain.SeverityWarning,
			"No creation-level objectives",
			"Advanced courses should ask learners to produce original work.",
			"Course",
			"Add a capstone or design task with a create-level objective.")
	}
	for _, lvl := range domain.BloomLevels {
		if float64(counts[lvl])/float64(total) > 0.5 {
			f.add(domain.SeverityWarning,
				fmt.Sprintf("%s level dominates", titleCase(string(lvl))),
				fmt.Sprintf("%d of %d objectives (%.0f%%) are at the %s level.", counts[lvl], total, pct(counts[lvl], total), lvl),
				"Course",
				"Spread objectives across more cognitive levels.")
		}
	}

	for _, m := range sortedModules(snap.Outline) {
		var levels []domain.BloomLevel
		for _, o := range m.Objectives {
			levels = append(levels, o.BloomLevel)
		}
		for _, l := range m.Lessons {
			for _, o := range l.Objectives {
				levels = append(levels, o.BloomLevel)
			}
		}
		if len(levels) > 0 && allLowerOrder(levels) {
			f.add(domain.SeverityInfo,
				"Module limited to lower-order objectives",
				"Every objective in this module is at the remember or understand level.",
				m.Label(),
				"Add at least one apply-level objective or practice activity to the module.")
		}
	}
	for _, e := range flattenLessons(snap.Outline) {
		objs := e.lesson.Objectives
		if len(objs) < 2 {
			continue
		}
		levels := make([]domain.BloomLevel, len(objs))
		for i, o := range objs {
			levels[i] = o.BloomLevel
		}
		if allLowerOrder(levels) {
			f.add(domain.SeverityInfo,
				"Lesson limited to lower-order objectives",
				fmt.Sprintf("All %d objectives in this lesson are at the remember or understand level.", len(objs)),
				e.location,
				"Raise one objective to apply or analyze.")
		}
	}

	target, ok := BloomTargets[cfg.CourseLevel]
	if !ok {
		target = BloomTargets[domain.LevelIntermediate]
	}
	score := BloomDistributionScore(counts, target)

	dist := make([]string, len(domain.BloomLevels))
	for i, lvl := range domain.BloomLevels {
		dist[i] = fmt.Sprintf("%s %.0f%%", lvl, pct(counts[lvl], total))
	}
	return outcome{
		score: score,
		summary: fmt.Sprintf("%d objectives (%d higher-order) against the %s target: %s. Findings: %s.",
			total, higher, cfg.CourseLevel, strings.Join(dist, ", "), f.counts()),
	}
}

func allLowerOrder(levels []domain.BloomLevel) bool {
	for _, l := range levels {
		if !l.IsLowerOrder() {
			return false
		}
	}
	return true
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// RunBlooms runs the Bloom's taxonomy analyzer.
func RunBlooms(snap Snapshot, cfg Config) *domain.QAReport {
	a, _ := ForTool(domain.ToolBlooms)
	return a.Run(snap, cfg)
}
