package qa

import (
	"sort"

	"github.com/alexanderramin/addie/internal/domain"
)

// sortedModules returns the outline's modules ordered by Order. The outline
// itself is left untouched.
func sortedModules(o *domain.CourseOutline) []domain.CourseModule {
	if o == nil {
		return nil
	}
	mods := make([]domain.CourseModule, len(o.Modules))
	copy(mods, o.Modules)
	sort.SliceStable(mods, func(i, j int) bool { return mods[i].Order < mods[j].Order })
	return mods
}

func sortedLessons(m domain.CourseModule) []domain.LessonPlan {
	lessons := make([]domain.LessonPlan, len(m.Lessons))
	copy(lessons, m.Lessons)
	sort.SliceStable(lessons, func(i, j int) bool { return lessons[i].Order < lessons[j].Order })
	return lessons
}

type objectiveEntry struct {
	objective domain.LearningObjective
	module    domain.CourseModule
	lesson    *domain.LessonPlan // nil for module-level objectives
	location  string
}

// collectObjectives walks module-level then lesson-level objectives in
// course order.
func collectObjectives(o *domain.CourseOutline) []objectiveEntry {
	var out []objectiveEntry
	for _, m := range sortedModules(o) {
		for _, obj := range m.Objectives {
			out = append(out, objectiveEntry{objective: obj, module: m, location: m.Label()})
		}
		for _, l := range sortedLessons(m) {
			lesson := l
			for _, obj := range l.Objectives {
				out = append(out, objectiveEntry{
					objective: obj,
					module:    m,
					lesson:    &lesson,
					location:  m.Label() + " > " + l.Label(),
				})
			}
		}
	}
	return out
}

type lessonEntry struct {
	lesson   domain.LessonPlan
	module   domain.CourseModule
	location string
}

// flattenLessons orders lessons by module order, then lesson order.
func flattenLessons(o *domain.CourseOutline) []lessonEntry {
	var out []lessonEntry
	for _, m := range sortedModules(o) {
		for _, l := range sortedLessons(m) {
			out = append(out, lessonEntry{lesson: l, module: m, location: m.Label() + " > " + l.Label()})
		}
	}
	return out
}

type slideEntry struct {
	doc      *domain.DesignDocument
	slide    *domain.DesignDocSlide
	location string
}

// docSlides returns a document's slides ordered by slide number.
func docSlides(doc *domain.DesignDocument) []slideEntry {
	out := make([]slideEntry, 0, len(doc.Slides))
	for i := range doc.Slides {
		s := &doc.Slides[i]
		out = append(out, slideEntry{doc: doc, slide: s, location: doc.SlideLocation(s)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].slide.SlideNumber < out[j].slide.SlideNumber })
	return out
}

func allSlides(docs []domain.DesignDocument) []slideEntry {
	var out []slideEntry
	for i := range docs {
		out = append(out, docSlides(&docs[i])...)
	}
	return out
}

// moduleSlides returns slides of documents attached to the module or to one
// of its lessons.
func moduleSlides(docs []domain.DesignDocument, m domain.CourseModule) []slideEntry {
	lessonIDs := make(map[string]bool, len(m.Lessons))
	for _, l := range m.Lessons {
		lessonIDs[l.ID] = true
	}
	var out []slideEntry
	for i := range docs {
		d := &docs[i]
		if (d.ModuleID != "" && d.ModuleID == m.ID) || (d.LessonID != "" && lessonIDs[d.LessonID]) {
			out = append(out, docSlides(d)...)
		}
	}
	return out
}

func lessonSlides(docs []domain.DesignDocument, lessonID string) []slideEntry {
	var out []slideEntry
	for i := range docs {
		if docs[i].LessonID != "" && docs[i].LessonID == lessonID {
			out = append(out, docSlides(&docs[i])...)
		}
	}
	return out
}

func slideCount(docs []domain.DesignDocument) int {
	n := 0
	for _, d := range docs {
		n += len(d.Slides)
	}
	return n
}
