package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/addie/internal/db"
	"github.com/alexanderramin/addie/internal/domain"
)

// SQLiteReportRepo implements ReportRepo using a SQLite database.
type SQLiteReportRepo struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLiteReportRepo creates a repo whose writes run in transactions from uow.
func NewSQLiteReportRepo(database *sql.DB, uow db.UnitOfWork) *SQLiteReportRepo {
	return &SQLiteReportRepo{db: database, uow: uow}
}

func (r *SQLiteReportRepo) Save(ctx context.Context, report *domain.QAReport) error {
	if report == nil {
		return fmt.Errorf("saving report: nil report")
	}
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM qa_findings WHERE project_id = ? AND tool = ?`,
			report.ProjectID, string(report.Tool)); err != nil {
			return fmt.Errorf("deleting previous findings: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM qa_reports WHERE project_id = ? AND tool = ?`,
			report.ProjectID, string(report.Tool)); err != nil {
			return fmt.Errorf("deleting previous report: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `INSERT INTO qa_reports (project_id, tool, score, summary, run_at)
			VALUES (?, ?, ?, ?, ?)`,
			report.ProjectID,
			string(report.Tool),
			report.Score,
			report.Summary,
			report.RunAt.UTC().Format(runAtLayout),
		); err != nil {
			return fmt.Errorf("inserting report: %w", err)
		}

		for i, f := range report.Findings {
			if _, err := tx.ExecContext(ctx, `INSERT INTO qa_findings
				(id, project_id, tool, seq, severity, title, description, location, suggestion, resolved)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				f.ID, report.ProjectID, string(report.Tool), i, string(f.Severity),
				f.Title, f.Description, f.Location, f.Suggestion, boolToInt(f.Resolved),
			); err != nil {
				return fmt.Errorf("inserting finding %d: %w", i, err)
			}
		}
		return nil
	})
}

func (r *SQLiteReportRepo) Get(ctx context.Context, projectID string, tool domain.Tool) (*domain.QAReport, error) {
	row := r.db.QueryRowContext(ctx, `SELECT project_id, tool, score, summary, run_at
		FROM qa_reports WHERE project_id = ? AND tool = ?`, projectID, string(tool))

	report, err := scanReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s report for project %s: %w", tool, projectID, ErrNotFound)
		}
		return nil, err
	}
	if err := r.loadFindings(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (r *SQLiteReportRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.QAReport, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT project_id, tool, score, summary, run_at
		FROM qa_reports WHERE project_id = ? ORDER BY tool`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	var reports []*domain.QAReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating reports: %w", err)
	}
	// Close before loading findings: in-memory databases have one connection.
	rows.Close()

	for _, report := range reports {
		if err := r.loadFindings(ctx, report); err != nil {
			return nil, err
		}
	}
	return reports, nil
}

func (r *SQLiteReportRepo) ResolveFinding(ctx context.Context, projectID string, tool domain.Tool, findingID string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE qa_findings SET resolved = 1
		WHERE project_id = ? AND tool = ? AND id = ? AND resolved = 0`,
		projectID, string(tool), findingID)
	if err != nil {
		return fmt.Errorf("resolving finding: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*domain.QAReport, error) {
	var report domain.QAReport
	var tool, runAtStr string
	if err := row.Scan(&report.ProjectID, &tool, &report.Score, &report.Summary, &runAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning report: %w", err)
	}
	report.Tool = domain.Tool(tool)

	runAt, err := time.Parse(runAtLayout, runAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing run_at: %w", err)
	}
	report.RunAt = runAt
	return &report, nil
}

func (r *SQLiteReportRepo) loadFindings(ctx context.Context, report *domain.QAReport) error {
	rows, err := r.db.QueryContext(ctx, `SELECT id, tool, severity, title, description, location, suggestion, resolved
		FROM qa_findings WHERE project_id = ? AND tool = ? ORDER BY seq`,
		report.ProjectID, string(report.Tool))
	if err != nil {
		return fmt.Errorf("listing findings: %w", err)
	}
	defer rows.Close()

	report.Findings = []domain.QAFinding{}
	for rows.Next() {
		var f domain.QAFinding
		var tool, severity string
		var resolved int
		if err := rows.Scan(&f.ID, &tool, &severity, &f.Title, &f.Description, &f.Location, &f.Suggestion, &resolved); err != nil {
			return fmt.Errorf("scanning finding row: %w", err)
		}
		f.Tool = domain.Tool(tool)
		f.Severity = domain.Severity(severity)
		f.Resolved = intToBool(resolved)
		report.Findings = append(report.Findings, f)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating findings: %w", err)
	}
	return nil
}
