package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/addie/internal/app"
	"github.com/alexanderramin/addie/internal/domain"
	"github.com/alexanderramin/addie/internal/qa"
	"github.com/alexanderramin/addie/internal/repository"
)

type qaService struct {
	content  qa.ContentSource
	reports  repository.ReportRepo
	guard    *runGuard
	observer UseCaseObserver
	now      func() time.Time
}

func NewQAService(
	content qa.ContentSource,
	reports repository.ReportRepo,
	observers ...UseCaseObserver,
) QAService {
	return &qaService{
		content:  content,
		reports:  reports,
		guard:    newRunGuard(),
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *qaService) config(level domain.CourseLevel, now *time.Time) (qa.Config, error) {
	if level != "" && !domain.ValidCourseLevels[string(level)] {
		return qa.Config{}, fmt.Errorf("invalid course level %q", level)
	}
	cfg := qa.Config{CourseLevel: level, Now: s.now()}
	if now != nil {
		cfg.Now = now.UTC()
	}
	return cfg, nil
}

func lookupTool(tool domain.Tool) (qa.Analyzer, error) {
	a, ok := qa.ForTool(tool)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, tool)
	}
	return a, nil
}

func (s *qaService) Run(ctx context.Context, req app.RunRequest) (report *domain.QAReport, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"project": req.ProjectID,
		"tool":    string(req.Tool),
	}
	defer func() {
		if report != nil {
			fields["score"] = report.Score
			fields["findings"] = len(report.Findings)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "qa_run",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	a, err := lookupTool(req.Tool)
	if err != nil {
		return nil, err
	}
	cfg, err := s.config(req.CourseLevel, req.Now)
	if err != nil {
		return nil, err
	}

	done, err := s.guard.begin(req.ProjectID, req.Tool)
	if err != nil {
		return nil, err
	}
	defer done()

	snap, err := qa.LoadSnapshot(ctx, s.content, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return s.runOne(ctx, a, snap, cfg)
}

// runOne runs a ready analyzer and stores its report. An unready analyzer
// writes nothing.
func (s *qaService) runOne(ctx context.Context, a qa.Analyzer, snap qa.Snapshot, cfg qa.Config) (*domain.QAReport, error) {
	if !a.Ready(snap) {
		return nil, fmt.Errorf("%s: %s: %w", a.Tool(), preconditionReason(a.Tool()), ErrPreconditionNotMet)
	}
	report := a.Run(snap, cfg)
	if err := s.reports.Save(ctx, report); err != nil {
		return nil, fmt.Errorf("saving %s report: %w", a.Tool(), err)
	}
	return report, nil
}

func (s *qaService) RunAll(ctx context.Context, req app.RunAllRequest) (resp *app.RunAllResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project": req.ProjectID}
	defer func() {
		if resp != nil {
			fields["reports"] = len(resp.Reports)
			fields["skipped"] = len(resp.Skipped)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "qa_run_all",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	analyzers := qa.Analyzers()
	if len(req.Tools) > 0 {
		analyzers = analyzers[:0]
		for _, tool := range req.Tools {
			a, lookupErr := lookupTool(tool)
			if lookupErr != nil {
				return nil, lookupErr
			}
			analyzers = append(analyzers, a)
		}
	}

	cfg, err := s.config(req.CourseLevel, req.Now)
	if err != nil {
		return nil, err
	}

	// One snapshot for the whole batch so every tool sees the same content.
	snap, err := qa.LoadSnapshot(ctx, s.content, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}

	resp = &app.RunAllResponse{}
	for _, a := range analyzers {
		if !a.Ready(snap) {
			resp.Skipped = append(resp.Skipped, app.SkippedTool{Tool: a.Tool(), Reason: preconditionReason(a.Tool())})
			continue
		}

		done, guardErr := s.guard.begin(req.ProjectID, a.Tool())
		if guardErr != nil {
			return resp, guardErr
		}
		report, runErr := s.runOne(ctx, a, snap, cfg)
		done()
		if runErr != nil {
			return resp, runErr
		}
		resp.Reports = append(resp.Reports, report)
	}
	return resp, nil
}

func (s *qaService) GetReport(ctx context.Context, projectID string, tool domain.Tool) (*domain.QAReport, error) {
	if _, err := lookupTool(tool); err != nil {
		return nil, err
	}
	report, err := s.reports.Get(ctx, projectID, tool)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting %s report: %w", tool, err)
	}
	return report, nil
}

func (s *qaService) ResolveFinding(ctx context.Context, projectID string, tool domain.Tool, findingID string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "qa_resolve_finding",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields: map[string]any{
				"project": projectID,
				"tool":    string(tool),
				"finding": findingID,
			},
		})
	}()

	if _, err := lookupTool(tool); err != nil {
		return err
	}
	if err := s.reports.ResolveFinding(ctx, projectID, tool, findingID); err != nil {
		return fmt.Errorf("resolving finding: %w", err)
	}
	return nil
}

func (s *qaService) Dashboard(ctx context.Context, projectID string) (resp *app.DashboardResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project": projectID}
	defer func() {
		if resp != nil {
			fields["reports"] = resp.ReportCount
			fields["overall_score"] = resp.OverallScore
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "qa_dashboard",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	reports, err := s.reports.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	return BuildDashboard(projectID, reports), nil
}

// BuildDashboard lays out one row per tool in dashboard order.
func BuildDashboard(projectID string, reports []*domain.QAReport) *app.DashboardResponse {
	byTool := make(map[domain.Tool]*domain.QAReport, len(reports))
	for _, r := range reports {
		byTool[r.Tool] = r
	}

	resp := &app.DashboardResponse{ProjectID: projectID}
	total := 0
	for _, tool := range domain.Tools {
		row := app.DashboardRow{Tool: tool}
		if r, ok := byTool[tool]; ok {
			runAt := r.RunAt
			row.HasReport = true
			row.Score = r.Score
			row.Critical = r.CountBySeverity(domain.SeverityCritical)
			row.Warnings = r.CountBySeverity(domain.SeverityWarning)
			row.Info = r.CountBySeverity(domain.SeverityInfo)
			row.Unresolved = r.UnresolvedCount()
			row.Summary = r.Summary
			row.RunAt = &runAt

			total += r.Score
			resp.ReportCount++
		}
		resp.Rows = append(resp.Rows, row)
	}
	if resp.ReportCount > 0 {
		resp.OverallScore = int(math.Round(float64(total) / float64(resp.ReportCount)))
	}
	return resp
}
