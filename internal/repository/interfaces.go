package repository

import (
	"context"

	"github.com/alexanderramin/addie/internal/domain"
	"github.com/alexanderramin/addie/internal/qa"
)

// ReportRepo stores the latest QA report per (project, tool).
type ReportRepo interface {
	// Save replaces any existing report for the same project and tool
	// wholesale, discarding earlier findings and their resolutions.
	Save(ctx context.Context, r *domain.QAReport) error
	// Get returns ErrNotFound when no report exists.
	Get(ctx context.Context, projectID string, tool domain.Tool) (*domain.QAReport, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.QAReport, error)
	// ResolveFinding flips a finding's resolved flag. Unknown reports or
	// finding IDs are a no-op.
	ResolveFinding(ctx context.Context, projectID string, tool domain.Tool, findingID string) error
}

// ContentRepo is the project store: the analyzers' read accessors plus the
// write used by content import.
type ContentRepo interface {
	qa.ContentSource
	Put(content domain.ProjectContent) error
	Project(ctx context.Context, projectID string) (*domain.Project, error)
}
