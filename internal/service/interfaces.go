package service

import (
	"context"

	"github.com/alexanderramin/addie/internal/app"
	"github.com/alexanderramin/addie/internal/domain"
	"github.com/alexanderramin/addie/internal/importer"
)

type QAService interface {
	Run(ctx context.Context, req app.RunRequest) (*domain.QAReport, error)
	RunAll(ctx context.Context, req app.RunAllRequest) (*app.RunAllResponse, error)
	// GetReport returns nil and no error when the tool has not run yet.
	GetReport(ctx context.Context, projectID string, tool domain.Tool) (*domain.QAReport, error)
	ResolveFinding(ctx context.Context, projectID string, tool domain.Tool, findingID string) error
	Dashboard(ctx context.Context, projectID string) (*app.DashboardResponse, error)
}

type ImportService interface {
	ImportContent(ctx context.Context, filePath string) (*app.ImportResult, error)
	ImportContentFromSchema(ctx context.Context, schema *importer.ImportSchema) (*app.ImportResult, error)
}

var (
	_ app.RunQAUseCase         = QAService(nil)
	_ app.ReportUseCase        = QAService(nil)
	_ app.DashboardUseCase     = QAService(nil)
	_ app.ImportContentUseCase = ImportService(nil)
)
