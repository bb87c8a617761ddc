package domain

import (
	"fmt"
	"regexp"
)

var projectIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

type Project struct {
	ID          string
	Name        string
	Description string
}

// ValidateID checks that the project ID is non-empty and safe to use as a
// report key: letters, digits, '-' and '_', at most 64 characters.
func (p *Project) ValidateID() error {
	if p.ID == "" {
		return fmt.Errorf("project ID is required")
	}
	if !projectIDPattern.MatchString(p.ID) {
		return fmt.Errorf("project ID %q must be 1-64 letters, digits, '-' or '_'", p.ID)
	}
	return nil
}

// ProjectContent is everything the external editors hold for one project.
// Any part may be absent.
type ProjectContent struct {
	Project       Project
	Outline       *CourseOutline
	DesignDocs    []DesignDocument
	Materials     []Material
	StyleGuide    *StyleGuide
	NeedsAnalysis *NeedsAnalysis
}
