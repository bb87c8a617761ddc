package domain

import "fmt"

// LearnerView is what the learner sees and hears on a slide.
type LearnerView struct {
	Heading                string
	BodyText               string
	BulletPoints           []string
	VisualDescription      string
	AudioScript            string
	InteractionDescription string
	AccessibilityFeatures  []string
}

// DesignNotes is the developer-facing half of a slide.
type DesignNotes struct {
	BloomLevel          BloomLevel
	InteractivitySpec   string
	BranchingLogic      string
	AssessmentScoring   string
	ScaffoldingStrategy string
	AccessibilityNotes  string
	DevelopmentNotes    string
	Rationale           string
	MaterialRefs        []string
}

type DesignDocSlide struct {
	ID           string
	SlideNumber  int
	Title        string
	ObjectiveRef string // empty when the slide is not tied to an objective
	LearnerView  LearnerView
	DesignNotes  DesignNotes
}

type DesignDocument struct {
	ID        string
	ProjectID string
	ModuleID  string
	LessonID  string
	Title     string
	Slides    []DesignDocSlide
}

// SlideLocation returns "<doc title> > Slide <n>" for finding locations.
func (d *DesignDocument) SlideLocation(s *DesignDocSlide) string {
	loc := fmt.Sprintf("%s > Slide %d", CoalesceStr(d.Title, d.ID), s.SlideNumber)
	if s.Title != "" {
		loc += ": " + s.Title
	}
	return loc
}

// Clone returns a deep copy of the document.
func (d *DesignDocument) Clone() DesignDocument {
	c := *d
	c.Slides = cloneSlice(d.Slides)
	for i := range c.Slides {
		s := &c.Slides[i]
		s.LearnerView.BulletPoints = cloneSlice(s.LearnerView.BulletPoints)
		s.LearnerView.AccessibilityFeatures = cloneSlice(s.LearnerView.AccessibilityFeatures)
		s.DesignNotes.MaterialRefs = cloneSlice(s.DesignNotes.MaterialRefs)
	}
	return c
}
