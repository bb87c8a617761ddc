package domain

// MaterialAnalysis is the extracted summary of an uploaded source material.
type MaterialAnalysis struct {
	Summary             string
	KeyConcepts         []string
	SuggestedObjectives []string
	ContentGaps         []string
	GlossaryTerms       []string
	AccessibilityIssues []string
}

type Material struct {
	ID         string
	Name       string
	Type       string
	Category   string
	Tags       []string
	Analysis   *MaterialAnalysis // nil until the material has been analyzed
	ProjectIDs []string
}

// BelongsTo reports whether the material is linked to the project.
func (m *Material) BelongsTo(projectID string) bool {
	for _, id := range m.ProjectIDs {
		if id == projectID {
			return true
		}
	}
	return false
}

func (m *Material) Clone() Material {
	c := *m
	c.Tags = cloneSlice(m.Tags)
	c.ProjectIDs = cloneSlice(m.ProjectIDs)
	if m.Analysis != nil {
		a := *m.Analysis
		a.KeyConcepts = cloneSlice(a.KeyConcepts)
		a.SuggestedObjectives = cloneSlice(a.SuggestedObjectives)
		a.ContentGaps = cloneSlice(a.ContentGaps)
		a.GlossaryTerms = cloneSlice(a.GlossaryTerms)
		a.AccessibilityIssues = cloneSlice(a.AccessibilityIssues)
		c.Analysis = &a
	}
	return c
}

// NeedsAnalysis is the report produced by the analysis wizard in the
// ADDIE analysis phase.
type NeedsAnalysis struct {
	ProjectID    string
	Summary      string
	MaterialRefs []string
	MaterialGaps []string
}

func (n *NeedsAnalysis) Clone() *NeedsAnalysis {
	if n == nil {
		return nil
	}
	c := *n
	c.MaterialRefs = cloneSlice(n.MaterialRefs)
	c.MaterialGaps = cloneSlice(n.MaterialGaps)
	return &c
}
