package qa

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/addie/internal/domain"
	"github.com/alexanderramin/addie/internal/textcheck"
)

const (
	criterionPoints      = 20
	branchingDetailChars = 30
	maxFakeFraction      = 0.3
	minCourseMean        = 30
)

// SlideInteractivity is the five-criterion evaluation of one slide.
type SlideInteractivity struct {
	RealDecisions        bool
	BranchingConsequence bool
	ExplanatoryFeedback  bool
	Scaffolding          bool
	TradeOffs            bool
	Fake                 bool
}

// Score awards 20 points per satisfied criterion.
func (si SlideInteractivity) Score() int {
	score := 0
	for _, ok := range []bool{si.RealDecisions, si.BranchingConsequence, si.ExplanatoryFeedback, si.Scaffolding, si.TradeOffs} {
		if ok {
			score += criterionPoints
		}
	}
	return score
}

// EvaluateSlideInteractivity applies the interactivity criteria to one slide.
func EvaluateSlideInteractivity(s *domain.DesignDocSlide) SlideInteractivity {
	interaction := s.LearnerView.InteractionDescription + "\n" + s.DesignNotes.InteractivitySpec
	branching := strings.TrimSpace(s.DesignNotes.BranchingLogic)
	scoring := s.DesignNotes.AssessmentScoring
	combined := strings.Join([]string{
		interaction, branching, scoring, s.DesignNotes.ScaffoldingStrategy, s.LearnerView.BodyText,
	}, "\n")

	decisions := textcheck.DecisionWords.Matches(interaction)
	return SlideInteractivity{
		RealDecisions:        decisions,
		BranchingConsequence: textcheck.ConsequenceWords.Matches(branching) || len([]rune(branching)) > branchingDetailChars,
		ExplanatoryFeedback:  textcheck.JustificationWords.Matches(scoring),
		Scaffolding:          !domain.IsBlank(s.DesignNotes.ScaffoldingStrategy),
		TradeOffs:            textcheck.TradeOffWords.Matches(combined),
		Fake:                 textcheck.NavigationWords.Matches(interaction) && !decisions,
	}
}

func runInteractivity(snap Snapshot, _ Config, f *findingSet) outcome {
	slides := allSlides(snap.DesignDocs)
	if len(slides) == 0 {
		f.add(domain.SeverityCritical,
			"No slides to evaluate",
			"The project's design documents contain no slides.",
			"Design documents",
			"Add slides to the design documents before checking interactivity.")
		return outcome{score: 0, summary: "No slides to analyze."}
	}

	total, fake := 0, 0
	for _, e := range slides {
		s := e.slide
		eval := EvaluateSlideInteractivity(s)
		score := eval.Score()
		total += score

		if eval.Fake {
			fake++
			f.add(domain.SeverityWarning,
				"Possible fake interactivity",
				fmt.Sprintf("The interaction only asks learners to %s; there is no decision to make.",
					strings.Join(textcheck.NavigationWords.Find(s.LearnerView.InteractionDescription+"\n"+s.DesignNotes.InteractivitySpec), "/")),
				e.location,
				"Replace click-to-reveal with a scenario where learners choose and see consequences.")
		}
		switch {
		case score < 20:
			f.add(domain.SeverityCritical,
				"Passive slide",
				fmt.Sprintf("Interactivity score %d/100: %s.", score, missingCriteria(eval)),
				e.location,
				"Add a meaningful decision with consequences and explanatory feedback.")
		case score < 40:
			f.add(domain.SeverityWarning,
				"Low interactivity",
				fmt.Sprintf("Interactivity score %d/100: %s.", score, missingCriteria(eval)),
				e.location,
				"Strengthen the interaction with branching consequences or trade-offs.")
		}
		if !domain.IsBlank(s.DesignNotes.InteractivitySpec) && domain.IsBlank(s.DesignNotes.BranchingLogic) {
			f.add(domain.SeverityInfo,
				"Interaction without branching",
				"An interactivity spec exists but no branching logic is defined.",
				e.location,
				"Describe what happens after each learner choice.")
		}
		scoring := s.DesignNotes.AssessmentScoring
		if textcheck.CorrectnessWords.Matches(scoring) && !textcheck.JustificationWords.Matches(scoring) {
			f.add(domain.SeverityWarning,
				"Right/wrong feedback only",
				"Feedback tells learners whether they are correct without explaining why.",
				e.location,
				"Explain the reasoning behind each correct and incorrect response.")
		}
	}

	mean := float64(total) / float64(len(slides))
	if mean < minCourseMean {
		f.add(domain.SeverityCritical,
			"Course interactivity is low",
			fmt.Sprintf("Average slide interactivity is %.0f/100.", mean),
			"Course",
			"Redesign key slides around decisions, consequences and feedback.")
	}
	if float64(fake)/float64(len(slides)) > maxFakeFraction {
		f.add(domain.SeverityCritical,
			"Widespread fake interactivity",
			fmt.Sprintf("%d of %d slides rely on click-to-reveal navigation.", fake, len(slides)),
			"Course",
			"Convert navigation-only interactions into scenario-based decisions.")
	}

	return outcome{
		score: round(mean),
		summary: fmt.Sprintf("Average interactivity %.0f/100 across %d slides; %d flagged as fake. Findings: %s.",
			mean, len(slides), fake, f.counts()),
	}
}

func missingCriteria(si SlideInteractivity) string {
	var missing []string
	if !si.RealDecisions {
		missing = append(missing, "no real decision")
	}
	if !si.BranchingConsequence {
		missing = append(missing, "no branching consequences")
	}
	if !si.ExplanatoryFeedback {
		missing = append(missing, "no explanatory feedback")
	}
	if !si.Scaffolding {
		missing = append(missing, "no scaffolding")
	}
	if !si.TradeOffs {
		missing = append(missing, "no trade-offs")
	}
	if len(missing) == 0 {
		return "all criteria met"
	}
	return strings.Join(missing, ", ")
}

// RunInteractivity runs the interactivity analyzer.
func RunInteractivity(snap Snapshot, cfg Config) *domain.QAReport {
	a, _ := ForTool(domain.ToolInteractivity)
	return a.Run(snap, cfg)
}
