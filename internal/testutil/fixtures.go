package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/addie/internal/domain"
)

// FixedNow is the clock used by tests that compare reports.
var FixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// Objective options
type ObjectiveOption func(*domain.LearningObjective)

func WithAssessmentAligned() ObjectiveOption {
	return func(o *domain.LearningObjective) {
		o.AssessmentAligned = true
	}
}

func WithObjectiveText(text string) ObjectiveOption {
	return func(o *domain.LearningObjective) {
		o.Text = text
	}
}

func WithObjectiveMaterials(ids ...string) ObjectiveOption {
	return func(o *domain.LearningObjective) {
		o.MaterialRefs = ids
	}
}

func NewTestObjective(id string, level domain.BloomLevel, opts ...ObjectiveOption) domain.LearningObjective {
	o := domain.LearningObjective{
		ID:         id,
		Text:       "Objective " + id,
		BloomLevel: level,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Lesson options
type LessonOption func(*domain.LessonPlan)

func WithLessonTitle(title string) LessonOption {
	return func(l *domain.LessonPlan) {
		l.Title = title
	}
}

func WithLessonDescription(desc string) LessonOption {
	return func(l *domain.LessonPlan) {
		l.Description = desc
	}
}

func WithLessonObjectives(objs ...domain.LearningObjective) LessonOption {
	return func(l *domain.LessonPlan) {
		l.Objectives = objs
	}
}

func WithLessonModalities(ms ...domain.Modality) LessonOption {
	return func(l *domain.LessonPlan) {
		l.Modalities = ms
	}
}

func WithActivities(activities ...string) LessonOption {
	return func(l *domain.LessonPlan) {
		l.Activities = activities
	}
}

func WithLessonMaterials(ids ...string) LessonOption {
	return func(l *domain.LessonPlan) {
		l.MaterialRefs = ids
	}
}

func NewTestLesson(id string, order int, zpd domain.ZPDLevel, opts ...LessonOption) domain.LessonPlan {
	l := domain.LessonPlan{
		ID:       id,
		Title:    "Lesson " + id,
		Order:    order,
		Duration: 30,
		ZPDLevel: zpd,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// Module options
type ModuleOption func(*domain.CourseModule)

func WithModuleTitle(title string) ModuleOption {
	return func(m *domain.CourseModule) {
		m.Title = title
	}
}

func WithModuleObjectives(objs ...domain.LearningObjective) ModuleOption {
	return func(m *domain.CourseModule) {
		m.Objectives = objs
	}
}

func WithLessons(lessons ...domain.LessonPlan) ModuleOption {
	return func(m *domain.CourseModule) {
		m.Lessons = lessons
	}
}

func WithModuleModalities(ms ...domain.Modality) ModuleOption {
	return func(m *domain.CourseModule) {
		m.Modalities = ms
	}
}

func WithAssessmentStrategy(s string) ModuleOption {
	return func(m *domain.CourseModule) {
		m.AssessmentStrategy = s
	}
}

func WithModuleMaterials(ids ...string) ModuleOption {
	return func(m *domain.CourseModule) {
		m.MaterialRefs = ids
	}
}

// NewTestModule returns a module with an assessment strategy so tests only
// see the findings they set up.
func NewTestModule(id string, order int, opts ...ModuleOption) domain.CourseModule {
	m := domain.CourseModule{
		ID:                 id,
		Title:              "Module " + id,
		Order:              order,
		Duration:           60,
		AssessmentStrategy: "End-of-module quiz",
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func NewTestOutline(projectID string, modules ...domain.CourseModule) *domain.CourseOutline {
	return &domain.CourseOutline{
		ProjectID:  projectID,
		CourseGoal: "Learners can complete the course tasks",
		Modules:    modules,
	}
}

// Slide options
type SlideOption func(*domain.DesignDocSlide)

func WithSlideTitle(title string) SlideOption {
	return func(s *domain.DesignDocSlide) {
		s.Title = title
	}
}

func WithObjectiveRef(id string) SlideOption {
	return func(s *domain.DesignDocSlide) {
		s.ObjectiveRef = id
	}
}

func WithHeading(h string) SlideOption {
	return func(s *domain.DesignDocSlide) {
		s.LearnerView.Heading = h
	}
}

func WithBody(text string) SlideOption {
	return func(s *domain.DesignDocSlide) {
		s.LearnerView.BodyText = text
	}
}

func WithBullets(bullets ...string) SlideOption {
	return func(s *domain.DesignDocSlide) {
		s.LearnerView.BulletPoints = bullets
	}
}

func WithVisual(desc string) SlideOption {
	return func(s *domain.DesignDocSlide) {
		s.LearnerView.VisualDescription = desc
	}
}

func WithAudio(script string) SlideOption {
	return func(s *domain.DesignDocSlide) {
		s.LearnerView.AudioScript = script
	}
}

func WithInteraction(desc string) SlideOption {
	return func(s *domain.DesignDocSlide) {
		s.LearnerView.InteractionDescription = desc
	}
}

func WithAccessibilityFeatures(features ...string) SlideOption {
	return func(s *domain.DesignDocSlide) {
		s.LearnerView.AccessibilityFeatures = features
	}
}

func WithDesignNotes(fn func(n *domain.DesignNotes)) SlideOption {
	return func(s *domain.DesignDocSlide) {
		fn(&s.DesignNotes)
	}
}

func WithSlideMaterials(ids ...string) SlideOption {
	return func(s *domain.DesignDocSlide) {
		s.DesignNotes.MaterialRefs = ids
	}
}

func NewTestSlide(number int, opts ...SlideOption) domain.DesignDocSlide {
	s := domain.DesignDocSlide{
		ID:          fmt.Sprintf("slide-%d", number),
		SlideNumber: number,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func NewTestDesignDoc(id, title string, slides ...domain.DesignDocSlide) domain.DesignDocument {
	return domain.DesignDocument{
		ID:     id,
		Title:  title,
		Slides: slides,
	}
}

// Material options
type MaterialOption func(*domain.Material)

func WithTags(tags ...string) MaterialOption {
	return func(m *domain.Material) {
		m.Tags = tags
	}
}

func WithCategory(c string) MaterialOption {
	return func(m *domain.Material) {
		m.Category = c
	}
}

func WithKeyConcepts(concepts ...string) MaterialOption {
	return func(m *domain.Material) {
		if m.Analysis == nil {
			m.Analysis = &domain.MaterialAnalysis{}
		}
		m.Analysis.KeyConcepts = concepts
	}
}

func WithContentGaps(gaps ...string) MaterialOption {
	return func(m *domain.Material) {
		if m.Analysis == nil {
			m.Analysis = &domain.MaterialAnalysis{}
		}
		m.Analysis.ContentGaps = gaps
	}
}

func WithProjects(ids ...string) MaterialOption {
	return func(m *domain.Material) {
		m.ProjectIDs = ids
	}
}

// NewTestMaterial returns an unanalyzed material.
func NewTestMaterial(id, name string, opts ...MaterialOption) domain.Material {
	m := domain.Material{
		ID:   id,
		Name: name,
		Type: "pdf",
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Content options
type ContentOption func(*domain.ProjectContent)

func WithOutline(o *domain.CourseOutline) ContentOption {
	return func(c *domain.ProjectContent) {
		c.Outline = o
	}
}

func WithDesignDocs(docs ...domain.DesignDocument) ContentOption {
	return func(c *domain.ProjectContent) {
		c.DesignDocs = docs
	}
}

func WithMaterials(ms ...domain.Material) ContentOption {
	return func(c *domain.ProjectContent) {
		c.Materials = ms
	}
}

func WithStyleGuide(g *domain.StyleGuide) ContentOption {
	return func(c *domain.ProjectContent) {
		c.StyleGuide = g
	}
}

func WithNeedsAnalysis(na *domain.NeedsAnalysis) ContentOption {
	return func(c *domain.ProjectContent) {
		c.NeedsAnalysis = na
	}
}

// NewTestContent returns project content with only the parts given.
func NewTestContent(projectID string, opts ...ContentOption) domain.ProjectContent {
	c := domain.ProjectContent{
		Project: domain.Project{ID: projectID, Name: "Project " + projectID},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
