// Package qa implements the course quality-assurance analyzers. Each
// analyzer is a pure function of a content Snapshot and a Config that
// returns a scored QAReport; anomalies in the content are reported as
// findings, never as errors.
package qa

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/addie/internal/domain"
)

// ContentSource is the read side of the external content editors.
// Accessors return nil (and no error) when the project has no such content.
type ContentSource interface {
	CourseOutline(ctx context.Context, projectID string) (*domain.CourseOutline, error)
	DesignDocs(ctx context.Context, projectID string) ([]domain.DesignDocument, error)
	Materials(ctx context.Context, projectID string) ([]domain.Material, error)
	StyleGuide(ctx context.Context, projectID string) (*domain.StyleGuide, error)
	AnalysisReport(ctx context.Context, projectID string) (*domain.NeedsAnalysis, error)
}

// Snapshot is an immutable view of one project's content. Analyzers never
// modify it.
type Snapshot struct {
	ProjectID     string
	Outline       *domain.CourseOutline
	DesignDocs    []domain.DesignDocument
	Materials     []domain.Material
	StyleGuide    *domain.StyleGuide
	NeedsAnalysis *domain.NeedsAnalysis
}

// LoadSnapshot reads every accessor of src for the project.
func LoadSnapshot(ctx context.Context, src ContentSource, projectID string) (Snapshot, error) {
	snap := Snapshot{ProjectID: projectID}
	var err error
	if snap.Outline, err = src.CourseOutline(ctx, projectID); err != nil {
		return Snapshot{}, fmt.Errorf("reading course outline: %w", err)
	}
	if snap.DesignDocs, err = src.DesignDocs(ctx, projectID); err != nil {
		return Snapshot{}, fmt.Errorf("reading design documents: %w", err)
	}
	if snap.Materials, err = src.Materials(ctx, projectID); err != nil {
		return Snapshot{}, fmt.Errorf("reading materials: %w", err)
	}
	if snap.StyleGuide, err = src.StyleGuide(ctx, projectID); err != nil {
		return Snapshot{}, fmt.Errorf("reading style guide: %w", err)
	}
	if snap.NeedsAnalysis, err = src.AnalysisReport(ctx, projectID); err != nil {
		return Snapshot{}, fmt.Errorf("reading needs analysis: %w", err)
	}
	return snap, nil
}

// Config carries per-run options.
type Config struct {
	// CourseLevel selects the Bloom target distribution. Defaults to intermediate.
	CourseLevel domain.CourseLevel
	// Now stamps the report's RunAt. Defaults to the current UTC time.
	Now time.Time
}

func (c Config) withDefaults() Config {
	if c.CourseLevel == "" {
		c.CourseLevel = domain.LevelIntermediate
	}
	if c.Now.IsZero() {
		c.Now = time.Now().UTC()
	}
	return c
}

// Analyzer is one QA tool.
type Analyzer interface {
	Tool() domain.Tool
	// Ready reports whether the snapshot holds the content the tool needs.
	// When it does not, callers must not run the tool or write a report.
	Ready(snap Snapshot) bool
	Run(snap Snapshot, cfg Config) *domain.QAReport
}

type outcome struct {
	score   int
	summary string
}

type analyzer struct {
	tool  domain.Tool
	ready func(Snapshot) bool
	run   func(Snapshot, Config, *findingSet) outcome
}

func (a analyzer) Tool() domain.Tool { return a.tool }

func (a analyzer) Ready(snap Snapshot) bool { return a.ready(snap) }

func (a analyzer) Run(snap Snapshot, cfg Config) *domain.QAReport {
	cfg = cfg.withDefaults()
	set := &findingSet{tool: a.tool}
	out := a.run(snap, cfg, set)
	return set.report(snap.ProjectID, out, cfg.Now)
}

func hasOutline(s Snapshot) bool    { return s.Outline != nil }
func hasDesignDocs(s Snapshot) bool { return len(s.DesignDocs) > 0 }
func hasMaterials(s Snapshot) bool  { return len(s.Materials) > 0 }

var registry = []Analyzer{
	analyzer{tool: domain.ToolAlignment, ready: hasOutline, run: runAlignment},
	analyzer{tool: domain.ToolBlooms, ready: hasOutline, run: runBlooms},
	analyzer{tool: domain.ToolMultimodal, ready: hasOutline, run: runMultimodal},
	analyzer{tool: domain.ToolZPD, ready: hasOutline, run: runZPD},
	analyzer{tool: domain.ToolAccessibility, ready: hasDesignDocs, run: runAccessibility},
	analyzer{tool: domain.ToolInteractivity, ready: hasDesignDocs, run: runInteractivity},
	analyzer{tool: domain.ToolStyleGuide, ready: hasDesignDocs, run: runStyleGuide},
	analyzer{tool: domain.ToolSourceMaterial, ready: hasMaterials, run: runSourceMaterial},
}

// Analyzers returns every analyzer in dashboard order.
func Analyzers() []Analyzer {
	out := make([]Analyzer, len(registry))
	copy(out, registry)
	return out
}

// ForTool returns the analyzer registered under tool.
func ForTool(tool domain.Tool) (Analyzer, bool) {
	for _, a := range registry {
		if a.Tool() == tool {
			return a, true
		}
	}
	return nil, false
}
