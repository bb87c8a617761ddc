package app

import (
	"time"

	"github.com/alexanderramin/addie/internal/domain"
)

// RunRequest asks for one analyzer run over a project's current content.
type RunRequest struct {
	ProjectID   string
	Tool        domain.Tool
	CourseLevel domain.CourseLevel
	Now         *time.Time
}

func NewRunRequest(projectID string, tool domain.Tool) RunRequest {
	return RunRequest{
		ProjectID:   projectID,
		Tool:        tool,
		CourseLevel: domain.LevelIntermediate,
	}
}

// RunAllRequest runs every analyzer. Tools limits the run to a subset; nil
// means all tools.
type RunAllRequest struct {
	ProjectID   string
	Tools       []domain.Tool
	CourseLevel domain.CourseLevel
	Now         *time.Time
}

func NewRunAllRequest(projectID string) RunAllRequest {
	return RunAllRequest{
		ProjectID:   projectID,
		CourseLevel: domain.LevelIntermediate,
	}
}

// SkippedTool names a tool whose content preconditions were not met. No
// report was written for it.
type SkippedTool struct {
	Tool   domain.Tool `json:"tool"`
	Reason string      `json:"reason"`
}

type RunAllResponse struct {
	Reports []*domain.QAReport `json:"reports"`
	Skipped []SkippedTool      `json:"skipped"`
}

// DashboardRow summarizes the latest report of one tool.
type DashboardRow struct {
	Tool       domain.Tool `json:"tool"`
	HasReport  bool        `json:"hasReport"`
	Score      int         `json:"score"`
	Critical   int         `json:"critical"`
	Warnings   int         `json:"warnings"`
	Info       int         `json:"info"`
	Unresolved int         `json:"unresolved"`
	Summary    string      `json:"summary,omitempty"`
	RunAt      *time.Time  `json:"runAt,omitempty"`
}

type DashboardResponse struct {
	ProjectID string         `json:"projectId"`
	Rows      []DashboardRow `json:"rows"`
	// OverallScore is the rounded mean score of tools with a report, 0 when none.
	OverallScore int `json:"overallScore"`
	ReportCount  int `json:"reportCount"`
}
