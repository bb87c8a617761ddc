package domain

import "time"

// QAFinding is one issue reported by an analyzer run. Only ResolveFinding
// mutates it after creation.
type QAFinding struct {
	ID          string   `json:"id"`
	Tool        Tool     `json:"tool"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Suggestion  string   `json:"suggestion"`
	Resolved    bool     `json:"resolved"`
}

// QAReport is the scored result of one analyzer run for one project.
// A new run replaces the previous report for the same (ProjectID, Tool).
type QAReport struct {
	ProjectID string      `json:"projectId"`
	Tool      Tool        `json:"tool"`
	Score     int         `json:"score"`
	Findings  []QAFinding `json:"findings"`
	Summary   string      `json:"summary"`
	RunAt     time.Time   `json:"runAt"`
}

// ClampScore bounds a score to [0,100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// CountBySeverity returns the number of findings with the given severity.
func (r *QAReport) CountBySeverity(sev Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == sev {
			n++
		}
	}
	return n
}

// UnresolvedCount returns the number of findings not yet resolved.
func (r *QAReport) UnresolvedCount() int {
	n := 0
	for _, f := range r.Findings {
		if !f.Resolved {
			n++
		}
	}
	return n
}

// Resolve marks the finding with the given ID as resolved. It reports
// whether the report changed; unknown or already-resolved IDs are no-ops.
func (r *QAReport) Resolve(findingID string) bool {
	for i := range r.Findings {
		if r.Findings[i].ID != findingID {
			continue
		}
		if r.Findings[i].Resolved {
			return false
		}
		r.Findings[i].Resolved = true
		return true
	}
	return false
}

func (r *QAReport) Clone() *QAReport {
	if r == nil {
		return nil
	}
	c := *r
	c.Findings = cloneSlice(r.Findings)
	return &c
}
