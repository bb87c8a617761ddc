package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/alexanderramin/addie/internal/config"
	"github.com/alexanderramin/addie/internal/domain"
	"github.com/alexanderramin/addie/internal/repository"
	"github.com/alexanderramin/addie/internal/service"
	"github.com/alexanderramin/addie/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const outlineOnlyYAML = `project:
  id: safety-101
  name: Lab Safety
outline:
  course_goal: Learners work safely in the lab.
  modules:
    - id: m1
      title: Hazards
      order: 1
      assessment_strategy: Quiz
      modalities: [visual]
      objectives:
        - id: o1
          text: Identify lab hazards
          bloom_level: remember
      lessons:
        - id: l1
          title: Signs
          order: 1
          zpd_level: comfort
`

const invalidYAML = `project:
  id: safety-101
outline:
  modules:
    - id: m1
      title: Hazards
      order: 1
      lessons:
        - id: l1
          title: Signs
          order: 1
          zpd_level: panic
`

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// testApp wires a full App over an in-memory content store and the given
// report repository. Text output is the default so assertions read plainly.
func testApp(t *testing.T, reports repository.ReportRepo) *App {
	t.Helper()
	content := repository.NewContentStore()
	cfg := config.DefaultConfig()
	cfg.Format = config.FormatText
	return &App{
		QA:     service.NewQAService(content, reports),
		Import: service.NewImportService(content),
		Config: cfg,
	}
}

func writeContentFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

func checkAlignmentJSON(t *testing.T, app *App, file string) domain.QAReport {
	t.Helper()
	out, err := executeCmd(t, app, "check", file, "--tool", "alignment", "--format", "json")
	require.NoError(t, err)
	var report domain.QAReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	return report
}

// --- check ---

func TestCheckCmd_RunsAllReadyChecks(t *testing.T) {
	app := testApp(t, repository.NewMemoryReportRepo())
	file := writeContentFile(t, "course.yaml", outlineOnlyYAML)

	out, err := executeCmd(t, app, "check", file)
	require.NoError(t, err)
	assert.Contains(t, out, "✔ Loaded Lab Safety (safety-101)")
	assert.Contains(t, out, "QA CHECKS FOR SAFETY-101")
	assert.Contains(t, out, "Objective Alignment")
	assert.Contains(t, out, "ZPD Progression")
	assert.Contains(t, out, "⊘ Skipped Interactivity: project has no design documents")
	assert.Contains(t, out, "⊘ Skipped Source Material: project has no materials")
}

func TestCheckCmd_VerbosePrintsReports(t *testing.T) {
	app := testApp(t, repository.NewMemoryReportRepo())
	file := writeContentFile(t, "course.yaml", outlineOnlyYAML)

	out, err := executeCmd(t, app, "check", file, "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "OBJECTIVE ALIGNMENT")
	assert.Contains(t, out, "at Module 1: Hazards")
}

func TestCheckCmd_RunAllJSON(t *testing.T) {
	app := testApp(t, repository.NewMemoryReportRepo())
	file := writeContentFile(t, "course.yaml", outlineOnlyYAML)

	out, err := executeCmd(t, app, "check", file, "--format", "json")
	require.NoError(t, err)

	var got struct {
		ProjectID string            `json:"projectId"`
		Reports   []domain.QAReport `json:"reports"`
		Skipped   []struct {
			Tool   string `json:"tool"`
			Reason string `json:"reason"`
		} `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "safety-101", got.ProjectID)
	require.Len(t, got.Reports, 4)
	assert.Equal(t, domain.ToolAlignment, got.Reports[0].Tool)
	require.Len(t, got.Skipped, 4)
	assert.Equal(t, "accessibility", got.Skipped[0].Tool)
}

func TestCheckCmd_SingleToolJSON(t *testing.T) {
	app := testApp(t, repository.NewMemoryReportRepo())
	file := writeContentFile(t, "course.yaml", outlineOnlyYAML)

	report := checkAlignmentJSON(t, app, file)
	assert.Equal(t, "safety-101", report.ProjectID)
	assert.Equal(t, domain.ToolAlignment, report.Tool)
	assert.Equal(t, 0, report.Score)
	require.Len(t, report.Findings, 2)
	for _, f := range report.Findings {
		assert.NotEmpty(t, f.ID)
		assert.False(t, f.Resolved)
	}
}

func TestCheckCmd_ToolListSubset(t *testing.T) {
	app := testApp(t, repository.NewMemoryReportRepo())
	file := writeContentFile(t, "course.yaml", outlineOnlyYAML)

	out, err := executeCmd(t, app, "check", file, "--tool", "blooms,zpd", "--tool", "zpd")
	require.NoError(t, err)
	assert.Contains(t, out, "Bloom's Taxonomy")
	assert.Contains(t, out, "ZPD Progression")
	assert.NotContains(t, out, "Objective Alignment")
	assert.NotContains(t, out, "Skipped")
}

func TestCheckCmd_PreconditionIsEmptyState(t *testing.T) {
	app := testApp(t, repository.NewMemoryReportRepo())
	file := writeContentFile(t, "course.yaml", outlineOnlyYAML)

	out, err := executeCmd(t, app, "check", file, "--tool", "interactivity")
	require.NoError(t, err)
	assert.Contains(t, out, "⊘ Skipped interactivity: project has no design documents")

	out, err = executeCmd(t, app, "report", "show", "safety-101", "interactivity")
	require.NoError(t, err)
	assert.Contains(t, out, "No Interactivity report for project safety-101 yet.")
}

func TestCheckCmd_FlagErrors(t *testing.T) {
	app := testApp(t, repository.NewMemoryReportRepo())
	file := writeContentFile(t, "course.yaml", outlineOnlyYAML)

	_, err := executeCmd(t, app, "check", file, "--level", "expert")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid argument "expert" for "--level" flag`)

	_, err = executeCmd(t, app, "check", file, "--tool", "spelling")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown tool "spelling"`)

	_, err = executeCmd(t, app, "check", file, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of auto, text, json")
}

func TestCheckCmd_InvalidFileStoresNothing(t *testing.T) {
	app := testApp(t, repository.NewMemoryReportRepo())
	file := writeContentFile(t, "bad.yaml", invalidYAML)

	_, err := executeCmd(t, app, "check", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (2 errors)")

	out, err := executeCmd(t, app, "dashboard", "safety-101")
	require.NoError(t, err)
	assert.Contains(t, out, "No reports yet.")
}

// --- validate ---

func TestValidateCmd(t *testing.T) {
	app := testApp(t, repository.NewMemoryReportRepo())

	good := writeContentFile(t, "course.yaml", outlineOnlyYAML)
	out, err := executeCmd(t, app, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "✔ Valid")

	bad := writeContentFile(t, "bad.yaml", invalidYAML)
	out, err = executeCmd(t, app, "validate", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has 2 validation errors")
	assert.Contains(t, out, "✖ Invalid")
	assert.Contains(t, out, "project.name is required")
}

func TestValidateCmd_JSON(t *testing.T) {
	app := testApp(t, repository.NewMemoryReportRepo())
	bad := writeContentFile(t, "bad.yaml", invalidYAML)

	out, err := executeCmd(t, app, "validate", bad, "--format", "json")
	require.Error(t, err)

	// The error line follows the JSON document.
	var got validationOutput
	require.NoError(t, json.NewDecoder(bytes.NewBufferString(out)).Decode(&got))
	assert.False(t, got.Valid)
	assert.Len(t, got.Errors, 2)
}

func TestValidateCmd_MissingFile(t *testing.T) {
	app := testApp(t, repository.NewMemoryReportRepo())
	_, err := executeCmd(t, app, "validate", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading ")
}

// --- report ---

func TestReportShow(t *testing.T) {
	app := testApp(t, repository.NewMemoryReportRepo())
	file := writeContentFile(t, "course.yaml", outlineOnlyYAML)

	out, err := executeCmd(t, app, "report", "show", "safety-101", "alignment")
	require.NoError(t, err)
	assert.Contains(t, out, "No Objective Alignment report for project safety-101 yet.")

	out, err = executeCmd(t, app, "report", "show", "safety-101", "alignment", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)

	checkAlignmentJSON(t, app, file)
	out, err = executeCmd(t, app, "report", "show", "safety-101", "alignment")
	require.NoError(t, err)
	assert.Contains(t, out, "OBJECTIVE ALIGNMENT")
	assert.Contains(t, out, "0 critical · 2 warnings · 0 info · 0 resolved")

	_, err = executeCmd(t, app, "report", "show", "safety-101", "spelling")
	require.Error(t, err)
}

func TestReportResolve_ByPrefix(t *testing.T) {
	app := testApp(t, repository.NewMemoryReportRepo())
	file := writeContentFile(t, "course.yaml", outlineOnlyYAML)
	report := checkAlignmentJSON(t, app, file)
	target := report.Findings[0]

	out, err := executeCmd(t, app, "report", "resolve", "safety-101", "alignment", target.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "✔ Resolved "+target.Title)

	out, err = executeCmd(t, app, "report", "show", "safety-101", "alignment", "--format", "json")
	require.NoError(t, err)
	var after domain.QAReport
	require.NoError(t, json.Unmarshal([]byte(out), &after))
	assert.True(t, after.Findings[0].Resolved)
	assert.False(t, after.Findings[1].Resolved)

	out, err = executeCmd(t, app, "report", "resolve", "safety-101", "alignment", target.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Already resolved: "+target.Title)

	out, err = executeCmd(t, app, "report", "show", "safety-101", "alignment", "--open")
	require.NoError(t, err)
	assert.NotContains(t, out, target.ID[:8])
	assert.Contains(t, out, report.Findings[1].ID[:8])
}

func TestReportResolve_Errors(t *testing.T) {
	app := testApp(t, repository.NewMemoryReportRepo())
	file := writeContentFile(t, "course.yaml", outlineOnlyYAML)

	_, err := executeCmd(t, app, "report", "resolve", "safety-101", "zpd", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no zpd report for project safety-101")

	checkAlignmentJSON(t, app, file)
	_, err = executeCmd(t, app, "report", "resolve", "safety-101", "alignment", "not-an-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no finding matching "not-an-id" in the alignment report`)
}

func TestReportResolve_NoIDOutsideTerminal(t *testing.T) {
	app := testApp(t, repository.NewMemoryReportRepo())
	file := writeContentFile(t, "course.yaml", outlineOnlyYAML)
	checkAlignmentJSON(t, app, file)

	picked := false
	app.PickFinding = func(*domain.QAReport) (string, error) {
		picked = true
		return "", nil
	}

	_, err := executeCmd(t, app, "report", "resolve", "safety-101", "alignment")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "finding ID is required when not running in a terminal")
	assert.False(t, picked)

	app.IsTerminal = func() bool { return false }
	_, err = executeCmd(t, app, "report", "resolve", "safety-101", "alignment")
	require.Error(t, err)
	assert.False(t, picked)
}

func TestReportResolve_PicksOnTerminal(t *testing.T) {
	app := testApp(t, repository.NewMemoryReportRepo())
	file := writeContentFile(t, "course.yaml", outlineOnlyYAML)
	report := checkAlignmentJSON(t, app, file)
	target := report.Findings[1]

	var offered int
	app.IsTerminal = func() bool { return true }
	app.PickFinding = func(r *domain.QAReport) (string, error) {
		offered = len(findingOptions(r))
		return target.ID, nil
	}

	out, err := executeCmd(t, app, "report", "resolve", "safety-101", "alignment")
	require.NoError(t, err)
	assert.Equal(t, 2, offered)
	assert.Contains(t, out, "✔ Resolved "+target.Title)

	_, err = executeCmd(t, app, "report", "resolve", "safety-101", "alignment", report.Findings[0].ID)
	require.NoError(t, err)

	app.PickFinding = func(*domain.QAReport) (string, error) {
		t.Fatal("picker must not run when nothing is open")
		return "", nil
	}
	out, err = executeCmd(t, app, "report", "resolve", "safety-101", "alignment")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to resolve")
}

func TestReportsPersistAcrossInvocations(t *testing.T) {
	database := testutil.NewTestDB(t)
	reports := repository.NewSQLiteReportRepo(database, testutil.NewTestUoW(database))
	file := writeContentFile(t, "course.yaml", outlineOnlyYAML)

	first := testApp(t, reports)
	report := checkAlignmentJSON(t, first, file)

	// A later process has no content loaded but still sees stored reports.
	second := testApp(t, reports)
	_, err := executeCmd(t, second, "report", "resolve", "safety-101", "alignment", report.Findings[1].ID)
	require.NoError(t, err)

	out, err := executeCmd(t, second, "dashboard", "safety-101")
	require.NoError(t, err)
	assert.Contains(t, out, "Overall 0/100")
	assert.Contains(t, out, "(1 of 8 tools reported)")
}

// --- dashboard ---

func TestDashboardCmd(t *testing.T) {
	app := testApp(t, repository.NewMemoryReportRepo())
	file := writeContentFile(t, "course.yaml", outlineOnlyYAML)

	out, err := executeCmd(t, app, "dashboard", "safety-101")
	require.NoError(t, err)
	assert.Contains(t, out, "No reports yet.")

	_, err = executeCmd(t, app, "check", file)
	require.NoError(t, err)

	out, err = executeCmd(t, app, "dashboard", "safety-101")
	require.NoError(t, err)
	assert.Contains(t, out, "QA DASHBOARD: SAFETY-101")
	assert.Contains(t, out, "not run")
	assert.Contains(t, out, "(4 of 8 tools reported)")

	out, err = executeCmd(t, app, "dashboard", "safety-101", "--format", "json")
	require.NoError(t, err)
	var resp struct {
		ReportCount int `json:"reportCount"`
		Rows        []struct {
			Tool      string `json:"tool"`
			HasReport bool   `json:"hasReport"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 4, resp.ReportCount)
	require.Len(t, resp.Rows, 8)
	assert.Equal(t, "alignment", resp.Rows[0].Tool)
	assert.True(t, resp.Rows[0].HasReport)
	assert.False(t, resp.Rows[7].HasReport)
}
