package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS qa_reports (
		project_id TEXT NOT NULL,
		tool       TEXT NOT NULL
		           CHECK(tool IN ('alignment','blooms','multimodal','zpd','accessibility','interactivity','style-guide','source-material')),
		score      INTEGER NOT NULL CHECK(score BETWEEN 0 AND 100),
		summary    TEXT NOT NULL DEFAULT '',
		run_at     TEXT NOT NULL,
		PRIMARY KEY (project_id, tool)
	)`,

	`CREATE TABLE IF NOT EXISTS qa_findings (
		id          TEXT NOT NULL,
		project_id  TEXT NOT NULL,
		tool        TEXT NOT NULL,
		seq         INTEGER NOT NULL,
		severity    TEXT NOT NULL
		            CHECK(severity IN ('critical','warning','info','pass')),
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		location    TEXT NOT NULL DEFAULT '',
		suggestion  TEXT NOT NULL DEFAULT '',
		resolved    INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (project_id, tool, id),
		FOREIGN KEY (project_id, tool) REFERENCES qa_reports(project_id, tool) ON DELETE CASCADE
	)`,

	`CREATE INDEX IF NOT EXISTS idx_qa_findings_report ON qa_findings(project_id, tool, seq)`,
	`CREATE INDEX IF NOT EXISTS idx_qa_reports_project ON qa_reports(project_id)`,
}
