package qa

import (
	"testing"

	"github.com/alexanderramin/addie/internal/domain"
	"github.com/alexanderramin/addie/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slideSnapshot(slides ...domain.DesignDocSlide) Snapshot {
	return Snapshot{
		ProjectID:  "p1",
		DesignDocs: []domain.DesignDocument{testutil.NewTestDesignDoc("d1", "Storyboard", slides...)},
	}
}

func scenarioSlide(number int) domain.DesignDocSlide {
	return testutil.NewTestSlide(number,
		testutil.WithInteraction("Choose which supplier to use given the budget"),
		testutil.WithDesignNotes(func(n *domain.DesignNotes) {
			n.BranchingLogic = "Each choice leads to a different outcome"
			n.AssessmentScoring = "Explain why the answer is correct"
			n.ScaffoldingStrategy = "Hint after the first attempt"
		}),
	)
}

func TestEvaluateSlideInteractivity_ClickToReveal(t *testing.T) {
	s := testutil.NewTestSlide(1, testutil.WithInteraction("Click next to reveal the answer"))
	eval := EvaluateSlideInteractivity(&s)
	assert.True(t, eval.Fake)
	assert.False(t, eval.RealDecisions)
	assert.Equal(t, 0, eval.Score())
}

func TestEvaluateSlideInteractivity_FullScenario(t *testing.T) {
	s := scenarioSlide(1)
	eval := EvaluateSlideInteractivity(&s)
	assert.Equal(t, SlideInteractivity{
		RealDecisions:        true,
		BranchingConsequence: true,
		ExplanatoryFeedback:  true,
		Scaffolding:          true,
		TradeOffs:            true,
	}, eval)
	assert.Equal(t, 100, eval.Score())
}

func TestEvaluateSlideInteractivity_DetailedBranchingCounts(t *testing.T) {
	s := testutil.NewTestSlide(1, testutil.WithDesignNotes(func(n *domain.DesignNotes) {
		n.BranchingLogic = "Option A goes to slide 7 and option B to slide 9"
	}))
	assert.True(t, EvaluateSlideInteractivity(&s).BranchingConsequence)
}

func TestInteractivity_FakeSlide(t *testing.T) {
	r := RunInteractivity(slideSnapshot(testutil.NewTestSlide(1, testutil.WithInteraction("Click next to reveal the answer"))), testCfg)

	assert.Equal(t, []string{
		"Possible fake interactivity",
		"Passive slide",
		"Course interactivity is low",
		"Widespread fake interactivity",
	}, findingTitles(r))
	assert.Equal(t, "The interaction only asks learners to click/next/reveal; there is no decision to make.", r.Findings[0].Description)
	assert.Equal(t, "Storyboard > Slide 1", r.Findings[0].Location)
	assert.Equal(t, 0, r.Score)
}

func TestInteractivity_ScenarioSlidesScoreHigh(t *testing.T) {
	r := RunInteractivity(slideSnapshot(scenarioSlide(1), scenarioSlide(2)), testCfg)
	assert.Empty(t, r.Findings)
	assert.Equal(t, 100, r.Score)
	assert.Contains(t, r.Summary, "Average interactivity 100/100 across 2 slides; 0 flagged as fake")
}

func TestInteractivity_LowInteractivityWarning(t *testing.T) {
	s := testutil.NewTestSlide(1, testutil.WithDesignNotes(func(n *domain.DesignNotes) {
		n.ScaffoldingStrategy = "Worked example"
	}))
	r := RunInteractivity(slideSnapshot(s), testCfg)
	assert.Equal(t, []string{"Low interactivity", "Course interactivity is low"}, findingTitles(r))
	assert.Equal(t, "Interactivity score 20/100: no real decision, no branching consequences, no explanatory feedback, no trade-offs.", r.Findings[0].Description)
	assert.Equal(t, 20, r.Score)
}

func TestInteractivity_SpecWithoutBranching(t *testing.T) {
	s := scenarioSlide(1)
	s.DesignNotes.InteractivitySpec = "Three supplier cards"
	s.DesignNotes.BranchingLogic = ""
	r := RunInteractivity(slideSnapshot(s), testCfg)
	assert.Equal(t, 1, countTitle(r, "Interaction without branching"))
}

func TestInteractivity_RightWrongFeedbackOnly(t *testing.T) {
	s := scenarioSlide(1)
	s.DesignNotes.AssessmentScoring = "Show correct or incorrect"
	r := RunInteractivity(slideSnapshot(s), testCfg)
	assert.Equal(t, 1, countTitle(r, "Right/wrong feedback only"))
}

func TestInteractivity_NoSlides(t *testing.T) {
	r := RunInteractivity(slideSnapshot(), testCfg)
	require.Len(t, r.Findings, 1)
	assert.Equal(t, "No slides to evaluate", r.Findings[0].Title)
	assert.Equal(t, 0, r.Score)
}
