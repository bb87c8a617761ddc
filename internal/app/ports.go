package app

import (
	"context"

	"github.com/alexanderramin/addie/internal/domain"
	"github.com/alexanderramin/addie/internal/importer"
)

type RunQAUseCase interface {
	Run(ctx context.Context, req RunRequest) (*domain.QAReport, error)
	RunAll(ctx context.Context, req RunAllRequest) (*RunAllResponse, error)
}

type ReportUseCase interface {
	GetReport(ctx context.Context, projectID string, tool domain.Tool) (*domain.QAReport, error)
	ResolveFinding(ctx context.Context, projectID string, tool domain.Tool, findingID string) error
}

type DashboardUseCase interface {
	Dashboard(ctx context.Context, projectID string) (*DashboardResponse, error)
}

type ImportResult struct {
	Project          domain.Project
	ModuleCount      int
	LessonCount      int
	ObjectiveCount   int
	DesignDocCount   int
	SlideCount       int
	MaterialCount    int
	HasStyleGuide    bool
	HasNeedsAnalysis bool
}

type ImportContentUseCase interface {
	ImportContent(ctx context.Context, filePath string) (*ImportResult, error)
	ImportContentFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
