package qa

import (
	"testing"

	"github.com/alexanderramin/addie/internal/domain"
	"github.com/alexanderramin/addie/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignment_UnalignedUncoveredObjective(t *testing.T) {
	snap := Snapshot{ProjectID: "p1", Outline: testutil.NewTestOutline("p1",
		testutil.NewTestModule("m1", 1,
			testutil.WithModuleTitle("Intro"),
			testutil.WithModuleObjectives(testutil.NewTestObjective("o1", domain.BloomApply)),
		),
	)}

	r := RunAlignment(snap, testCfg)
	require.Len(t, r.Findings, 2)
	assert.Equal(t, []string{"Objective lacks assessment alignment", "Objective has no content coverage"}, findingTitles(r))
	for _, f := range r.Findings {
		assert.Equal(t, domain.SeverityWarning, f.Severity)
		assert.Equal(t, "Module 1: Intro", f.Location)
	}
	assert.Equal(t, 0, r.Score)
}

func TestAlignment_NoObjectivesScores100(t *testing.T) {
	snap := Snapshot{ProjectID: "p1", Outline: testutil.NewTestOutline("p1", testutil.NewTestModule("m1", 1))}
	r := RunAlignment(snap, testCfg)
	assert.Equal(t, 100, r.Score)
	assert.Empty(t, r.Findings)
	assert.Contains(t, r.Summary, "0/0 objectives aligned")
}

func TestAlignment_ScoreIsAlignedShare(t *testing.T) {
	snap := Snapshot{
		ProjectID: "p1",
		Outline: testutil.NewTestOutline("p1",
			testutil.NewTestModule("m1", 1,
				testutil.WithModuleObjectives(testutil.NewTestObjective("o1", domain.BloomApply, testutil.WithAssessmentAligned())),
				testutil.WithLessons(testutil.NewTestLesson("l1", 1, domain.ZPDLearning,
					testutil.WithLessonObjectives(testutil.NewTestObjective("o2", domain.BloomAnalyze)),
				)),
			),
		),
		DesignDocs: []domain.DesignDocument{testutil.NewTestDesignDoc("d1", "Storyboard",
			testutil.NewTestSlide(1, testutil.WithObjectiveRef("o1")),
			testutil.NewTestSlide(2, testutil.WithObjectiveRef("o2")),
		)},
	}

	r := RunAlignment(snap, testCfg)
	assert.Equal(t, 50, r.Score)
	require.Len(t, r.Findings, 1)
	assert.Equal(t, "Objective lacks assessment alignment", r.Findings[0].Title)
	assert.Equal(t, "Module 1: Module m1 > Lesson 1: Lesson l1", r.Findings[0].Location)
	assert.Contains(t, r.Summary, "1/2 objectives aligned to assessments, 2 with content coverage")
}

func TestAlignment_OrphanedSlideReference(t *testing.T) {
	snap := Snapshot{
		ProjectID: "p1",
		Outline:   testutil.NewTestOutline("p1", testutil.NewTestModule("m1", 1)),
		DesignDocs: []domain.DesignDocument{testutil.NewTestDesignDoc("d1", "Storyboard",
			testutil.NewTestSlide(3, testutil.WithSlideTitle("Recap"), testutil.WithObjectiveRef("ghost")),
		)},
	}

	r := RunAlignment(snap, testCfg)
	require.Len(t, r.Findings, 1)
	f := r.Findings[0]
	assert.Equal(t, "Orphaned content", f.Title)
	assert.Equal(t, domain.SeverityInfo, f.Severity)
	assert.Equal(t, "Storyboard > Slide 3: Recap", f.Location)
	assert.Contains(t, f.Description, `"ghost"`)
}

func TestAlignment_ModuleWithoutAssessmentStrategy(t *testing.T) {
	snap := Snapshot{ProjectID: "p1", Outline: testutil.NewTestOutline("p1",
		testutil.NewTestModule("m1", 2, testutil.WithModuleTitle(""), testutil.WithAssessmentStrategy("   ")),
	)}

	r := RunAlignment(snap, testCfg)
	require.Len(t, r.Findings, 1)
	assert.Equal(t, "Module missing assessment strategy", r.Findings[0].Title)
	assert.Equal(t, domain.SeverityCritical, r.Findings[0].Severity)
	assert.Equal(t, "Module 2", r.Findings[0].Location)
}
