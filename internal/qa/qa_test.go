package qa

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/addie/internal/domain"
	"github.com/alexanderramin/addie/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = Config{CourseLevel: domain.LevelIntermediate, Now: testutil.FixedNow}

func findingTitles(r *domain.QAReport) []string {
	out := make([]string, len(r.Findings))
	for i, f := range r.Findings {
		out[i] = f.Title
	}
	return out
}

func countTitle(r *domain.QAReport, title string) int {
	n := 0
	for _, f := range r.Findings {
		if f.Title == title {
			n++
		}
	}
	return n
}

// richSnapshot exercises every analyzer with a mix of good and bad content.
func richSnapshot() Snapshot {
	outline := testutil.NewTestOutline("p1",
		testutil.NewTestModule("m1", 1,
			testutil.WithModuleTitle("Photosynthesis basics"),
			testutil.WithModuleModalities(domain.ModalityVisual),
			testutil.WithModuleMaterials("mat-1"),
			testutil.WithModuleObjectives(
				testutil.NewTestObjective("o1", domain.BloomRemember, testutil.WithAssessmentAligned()),
			),
			testutil.WithLessons(
				testutil.NewTestLesson("l1", 1, domain.ZPDComfort,
					testutil.WithLessonObjectives(testutil.NewTestObjective("o2", domain.BloomApply)),
					testutil.WithActivities("Label a leaf diagram"),
				),
				testutil.NewTestLesson("l2", 2, domain.ZPDStretch),
			),
		),
		testutil.NewTestModule("m2", 2,
			testutil.WithAssessmentStrategy(""),
			testutil.WithLessons(testutil.NewTestLesson("l3", 1, domain.ZPDLearning)),
		),
	)
	doc := testutil.NewTestDesignDoc("d1", "Storyboard",
		testutil.NewTestSlide(2,
			testutil.WithObjectiveRef("ghost"),
			testutil.WithBody("The leaf is shown below. Pick the red cells, i.e. the guard cells."),
			testutil.WithInteraction("Click next to reveal the answer"),
		),
		testutil.NewTestSlide(1,
			testutil.WithObjectiveRef("o1"),
			testutil.WithHeading("Light reactions"),
			testutil.WithAudio("Welcome to the lesson."),
			testutil.WithDesignNotes(func(n *domain.DesignNotes) {
				n.ScaffoldingStrategy = "Worked example first"
				n.AssessmentScoring = "Correct or incorrect"
			}),
		),
	)
	doc.LessonID = "l2"
	return Snapshot{
		ProjectID:  "p1",
		Outline:    outline,
		DesignDocs: []domain.DesignDocument{doc},
		Materials: []domain.Material{
			testutil.NewTestMaterial("mat-1", "Leaf anatomy",
				testutil.WithKeyConcepts("photosynthesis", "stomata"),
				testutil.WithContentGaps("no diagrams")),
			testutil.NewTestMaterial("mat-2", "Unused reader"),
		},
		StyleGuide: &domain.StyleGuide{ProjectID: "p1", Name: "House", Type: domain.StyleGuideCustom, Rules: []domain.StyleRule{
			{ID: "r1", Category: domain.StyleTerminology, Rule: `Use "choose" instead of "pick"`, Severity: domain.RuleWarning},
		}},
		NeedsAnalysis: &domain.NeedsAnalysis{ProjectID: "p1", MaterialGaps: []string{"lab manual"}},
	}
}

func TestAnalyzers_DashboardOrder(t *testing.T) {
	var tools []domain.Tool
	for _, a := range Analyzers() {
		tools = append(tools, a.Tool())
	}
	assert.Equal(t, domain.Tools, tools)
}

func TestForTool(t *testing.T) {
	for _, tool := range domain.Tools {
		a, ok := ForTool(tool)
		require.True(t, ok, tool)
		assert.Equal(t, tool, a.Tool())
	}
	_, ok := ForTool("readability")
	assert.False(t, ok)
}

func TestReady_Preconditions(t *testing.T) {
	empty := Snapshot{ProjectID: "p1"}
	for _, a := range Analyzers() {
		assert.False(t, a.Ready(empty), a.Tool())
	}

	withOutline := Snapshot{ProjectID: "p1", Outline: testutil.NewTestOutline("p1")}
	ready := map[domain.Tool]bool{}
	for _, a := range Analyzers() {
		ready[a.Tool()] = a.Ready(withOutline)
	}
	assert.Equal(t, map[domain.Tool]bool{
		domain.ToolAlignment: true, domain.ToolBlooms: true, domain.ToolMultimodal: true, domain.ToolZPD: true,
		domain.ToolAccessibility: false, domain.ToolInteractivity: false, domain.ToolStyleGuide: false, domain.ToolSourceMaterial: false,
	}, ready)

	rich := richSnapshot()
	for _, a := range Analyzers() {
		assert.True(t, a.Ready(rich), a.Tool())
	}
}

func TestFindingID_StableAndDistinct(t *testing.T) {
	a := FindingID("p1", domain.ToolBlooms, 0)
	assert.Equal(t, a, FindingID("p1", domain.ToolBlooms, 0))
	assert.NotEqual(t, a, FindingID("p1", domain.ToolBlooms, 1))
	assert.NotEqual(t, a, FindingID("p1", domain.ToolZPD, 0))
	assert.NotEqual(t, a, FindingID("p2", domain.ToolBlooms, 0))
}

func TestRun_Deterministic(t *testing.T) {
	for _, a := range Analyzers() {
		t.Run(string(a.Tool()), func(t *testing.T) {
			first := a.Run(richSnapshot(), testCfg)
			second := a.Run(richSnapshot(), testCfg)
			assert.Equal(t, first, second)
		})
	}
}

func TestRun_ReportShape(t *testing.T) {
	for _, a := range Analyzers() {
		t.Run(string(a.Tool()), func(t *testing.T) {
			r := a.Run(richSnapshot(), testCfg)
			assert.Equal(t, "p1", r.ProjectID)
			assert.Equal(t, a.Tool(), r.Tool)
			assert.True(t, testutil.FixedNow.Equal(r.RunAt))
			assert.GreaterOrEqual(t, r.Score, 0)
			assert.LessOrEqual(t, r.Score, 100)
			assert.NotEmpty(t, r.Summary)

			ids := map[string]bool{}
			for i, f := range r.Findings {
				assert.Equal(t, FindingID("p1", a.Tool(), i), f.ID)
				assert.Equal(t, a.Tool(), f.Tool)
				assert.False(t, f.Resolved)
				assert.NotEmpty(t, f.Location)
				assert.NotEmpty(t, f.Suggestion)
				ids[f.ID] = true
			}
			assert.Len(t, ids, len(r.Findings))
		})
	}
}

func TestRun_DoesNotModifySnapshot(t *testing.T) {
	snap := richSnapshot()
	before := richSnapshot()
	for _, a := range Analyzers() {
		a.Run(snap, testCfg)
	}
	assert.Equal(t, before, snap)
}

func TestRun_EmptyContentScoresInBounds(t *testing.T) {
	snap := Snapshot{
		ProjectID:  "p1",
		Outline:    testutil.NewTestOutline("p1"),
		DesignDocs: []domain.DesignDocument{testutil.NewTestDesignDoc("d1", "Empty")},
		Materials:  []domain.Material{},
	}
	for _, a := range Analyzers() {
		r := a.Run(snap, testCfg)
		assert.GreaterOrEqual(t, r.Score, 0, a.Tool())
		assert.LessOrEqual(t, r.Score, 100, a.Tool())
		assert.NotNil(t, r.Findings, a.Tool())
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, domain.LevelIntermediate, cfg.CourseLevel)
	assert.False(t, cfg.Now.IsZero())
}

type stubSource struct {
	outline *domain.CourseOutline
	failOn  string
}

var errSource = errors.New("source unavailable")

func (s stubSource) fail(name string) error {
	if s.failOn == name {
		return errSource
	}
	return nil
}

func (s stubSource) CourseOutline(context.Context, string) (*domain.CourseOutline, error) {
	return s.outline, s.fail("outline")
}

func (s stubSource) DesignDocs(context.Context, string) ([]domain.DesignDocument, error) {
	return nil, s.fail("docs")
}

func (s stubSource) Materials(context.Context, string) ([]domain.Material, error) {
	return nil, s.fail("materials")
}

func (s stubSource) StyleGuide(context.Context, string) (*domain.StyleGuide, error) {
	return nil, s.fail("guide")
}

func (s stubSource) AnalysisReport(context.Context, string) (*domain.NeedsAnalysis, error) {
	return nil, s.fail("analysis")
}

func TestLoadSnapshot(t *testing.T) {
	outline := testutil.NewTestOutline("p1")
	snap, err := LoadSnapshot(context.Background(), stubSource{outline: outline}, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", snap.ProjectID)
	assert.Same(t, outline, snap.Outline)
	assert.Nil(t, snap.DesignDocs)
}

func TestLoadSnapshot_WrapsSourceErrors(t *testing.T) {
	cases := map[string]string{
		"outline":   "reading course outline",
		"docs":      "reading design documents",
		"materials": "reading materials",
		"guide":     "reading style guide",
		"analysis":  "reading needs analysis",
	}
	for failOn, msg := range cases {
		_, err := LoadSnapshot(context.Background(), stubSource{failOn: failOn}, "p1")
		require.ErrorIs(t, err, errSource, failOn)
		assert.Contains(t, err.Error(), msg)
	}
}
