package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/alexanderramin/addie/internal/domain"
)

// MemoryReportRepo keeps reports in process memory. Reports are copied on
// the way in and out, so callers never share state with the store.
type MemoryReportRepo struct {
	mu      sync.RWMutex
	reports map[string]*domain.QAReport
}

func NewMemoryReportRepo() *MemoryReportRepo {
	return &MemoryReportRepo{reports: make(map[string]*domain.QAReport)}
}

func (r *MemoryReportRepo) Save(_ context.Context, report *domain.QAReport) error {
	if report == nil {
		return fmt.Errorf("saving report: nil report")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[reportKey(report.ProjectID, string(report.Tool))] = report.Clone()
	return nil
}

func (r *MemoryReportRepo) Get(_ context.Context, projectID string, tool domain.Tool) (*domain.QAReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	report, ok := r.reports[reportKey(projectID, string(tool))]
	if !ok {
		return nil, fmt.Errorf("%s report for project %s: %w", tool, projectID, ErrNotFound)
	}
	return report.Clone(), nil
}

func (r *MemoryReportRepo) ListByProject(_ context.Context, projectID string) ([]*domain.QAReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.QAReport
	for _, report := range r.reports {
		if report.ProjectID == projectID {
			out = append(out, report.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tool < out[j].Tool })
	return out, nil
}

func (r *MemoryReportRepo) ResolveFinding(_ context.Context, projectID string, tool domain.Tool, findingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if report, ok := r.reports[reportKey(projectID, string(tool))]; ok {
		report.Resolve(findingID)
	}
	return nil
}
