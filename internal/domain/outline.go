package domain

import "fmt"

type LearningObjective struct {
	ID                string
	Text              string
	BloomLevel        BloomLevel
	AssessmentAligned bool
	MaterialRefs      []string
}

type LessonPlan struct {
	ID           string
	Title        string
	Description  string
	Order        int
	Duration     int // minutes
	ZPDLevel     ZPDLevel
	Modalities   []Modality
	Activities   []string
	Objectives   []LearningObjective
	MaterialRefs []string
}

// Label returns the human-readable lesson label used in finding locations.
func (l *LessonPlan) Label() string {
	if l.Title == "" {
		return fmt.Sprintf("Lesson %d", l.Order)
	}
	return fmt.Sprintf("Lesson %d: %s", l.Order, l.Title)
}

type CourseModule struct {
	ID                 string
	Title              string
	Description        string
	Order              int
	Duration           int // minutes
	Objectives         []LearningObjective
	Lessons            []LessonPlan
	Modalities         []Modality
	AssessmentStrategy string
	MaterialRefs       []string
}

// Label returns the human-readable module label used in finding locations.
func (m *CourseModule) Label() string {
	if m.Title == "" {
		return fmt.Sprintf("Module %d", m.Order)
	}
	return fmt.Sprintf("Module %d: %s", m.Order, m.Title)
}

type CourseOutline struct {
	ProjectID  string
	CourseGoal string
	Modules    []CourseModule
}

// TotalDuration is the sum of module durations in minutes.
func (o *CourseOutline) TotalDuration() int {
	total := 0
	for _, m := range o.Modules {
		total += m.Duration
	}
	return total
}

// Clone returns a deep copy of the outline.
func (o *CourseOutline) Clone() *CourseOutline {
	if o == nil {
		return nil
	}
	c := *o
	c.Modules = cloneSlice(o.Modules)
	for i := range c.Modules {
		c.Modules[i] = c.Modules[i].clone()
	}
	return &c
}

func (m CourseModule) clone() CourseModule {
	m.Objectives = cloneObjectives(m.Objectives)
	m.Modalities = cloneSlice(m.Modalities)
	m.MaterialRefs = cloneSlice(m.MaterialRefs)
	m.Lessons = cloneSlice(m.Lessons)
	for i := range m.Lessons {
		l := &m.Lessons[i]
		l.Objectives = cloneObjectives(l.Objectives)
		l.Modalities = cloneSlice(l.Modalities)
		l.Activities = cloneSlice(l.Activities)
		l.MaterialRefs = cloneSlice(l.MaterialRefs)
	}
	return m
}

func cloneObjectives(objs []LearningObjective) []LearningObjective {
	if objs == nil {
		return nil
	}
	out := make([]LearningObjective, len(objs))
	for i, o := range objs {
		o.MaterialRefs = cloneSlice(o.MaterialRefs)
		out[i] = o
	}
	return out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
