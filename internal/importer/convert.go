package importer

import (
	"fmt"

	"github.com/alexanderramin/addie/internal/domain"
)

// Convert transforms a validated ImportSchema into project content ready for
// the content store. Call ValidateImportSchema first; Convert assumes the
// schema is valid.
func Convert(schema *ImportSchema) (*domain.ProjectContent, error) {
	project := domain.Project{
		ID:          schema.Project.ID,
		Name:        schema.Project.Name,
		Description: schema.Project.Description,
	}
	if err := project.ValidateID(); err != nil {
		return nil, fmt.Errorf("converting project: %w", err)
	}

	content := &domain.ProjectContent{Project: project}

	if schema.Outline != nil {
		content.Outline = convertOutline(project.ID, schema.Outline)
	}

	for _, d := range schema.DesignDocs {
		content.DesignDocs = append(content.DesignDocs, convertDesignDoc(project.ID, d))
	}

	for _, m := range schema.Materials {
		content.Materials = append(content.Materials, convertMaterial(project.ID, m))
	}

	if g := schema.StyleGuide; g != nil {
		guide := &domain.StyleGuide{
			ProjectID: project.ID,
			Name:      g.Name,
			Type:      domain.StyleGuideType(g.Type),
		}
		for _, r := range g.Rules {
			guide.Rules = append(guide.Rules, domain.StyleRule{
				ID:       r.ID,
				Category: domain.StyleCategory(r.Category),
				Rule:     r.Rule,
				Severity: domain.RuleSeverity(r.Severity),
			})
		}
		content.StyleGuide = guide
	}

	if na := schema.NeedsAnalysis; na != nil {
		content.NeedsAnalysis = &domain.NeedsAnalysis{
			ProjectID:    project.ID,
			Summary:      na.Summary,
			MaterialRefs: na.MaterialRefs,
			MaterialGaps: na.MaterialGaps,
		}
	}

	return content, nil
}

func convertOutline(projectID string, o *OutlineImport) *domain.CourseOutline {
	outline := &domain.CourseOutline{ProjectID: projectID, CourseGoal: o.CourseGoal}
	for _, m := range o.Modules {
		mod := domain.CourseModule{
			ID:                 m.ID,
			Title:              m.Title,
			Description:        m.Description,
			Order:              m.Order,
			Duration:           m.Duration,
			Objectives:         convertObjectives(m.Objectives),
			Modalities:         convertModalities(m.Modalities),
			AssessmentStrategy: m.AssessmentStrategy,
			MaterialRefs:       m.MaterialRefs,
		}
		for _, l := range m.Lessons {
			mod.Lessons = append(mod.Lessons, domain.LessonPlan{
				ID:           l.ID,
				Title:        l.Title,
				Description:  l.Description,
				Order:        l.Order,
				Duration:     l.Duration,
				ZPDLevel:     domain.ZPDLevel(l.ZPDLevel),
				Modalities:   convertModalities(l.Modalities),
				Activities:   l.Activities,
				Objectives:   convertObjectives(l.Objectives),
				MaterialRefs: l.MaterialRefs,
			})
		}
		outline.Modules = append(outline.Modules, mod)
	}
	return outline
}

func convertObjectives(objs []ObjectiveImport) []domain.LearningObjective {
	if len(objs) == 0 {
		return nil
	}
	out := make([]domain.LearningObjective, 0, len(objs))
	for _, o := range objs {
		out = append(out, domain.LearningObjective{
			ID:                o.ID,
			Text:              o.Text,
			BloomLevel:        domain.BloomLevel(o.BloomLevel),
			AssessmentAligned: o.AssessmentAligned,
			MaterialRefs:      o.MaterialRefs,
		})
	}
	return out
}

func convertModalities(ms []string) []domain.Modality {
	if len(ms) == 0 {
		return nil
	}
	out := make([]domain.Modality, 0, len(ms))
	for _, m := range ms {
		out = append(out, domain.Modality(m))
	}
	return out
}

func convertDesignDoc(projectID string, d DesignDocImport) domain.DesignDocument {
	doc := domain.DesignDocument{
		ID:        d.ID,
		ProjectID: projectID,
		ModuleID:  d.ModuleID,
		LessonID:  d.LessonID,
		Title:     d.Title,
	}
	for _, s := range d.Slides {
		lv, dn := s.LearnerView, s.DesignNotes
		doc.Slides = append(doc.Slides, domain.DesignDocSlide{
			ID:           s.ID,
			SlideNumber:  s.SlideNumber,
			Title:        s.Title,
			ObjectiveRef: s.ObjectiveRef,
			LearnerView: domain.LearnerView{
				Heading:                lv.Heading,
				BodyText:               lv.BodyText,
				BulletPoints:           lv.BulletPoints,
				VisualDescription:      lv.VisualDescription,
				AudioScript:            lv.AudioScript,
				InteractionDescription: lv.InteractionDescription,
				AccessibilityFeatures:  lv.AccessibilityFeatures,
			},
			DesignNotes: domain.DesignNotes{
				BloomLevel:          domain.BloomLevel(dn.BloomLevel),
				InteractivitySpec:   dn.InteractivitySpec,
				BranchingLogic:      dn.BranchingLogic,
				AssessmentScoring:   dn.AssessmentScoring,
				ScaffoldingStrategy: dn.ScaffoldingStrategy,
				AccessibilityNotes:  dn.AccessibilityNotes,
				DevelopmentNotes:    dn.DevelopmentNotes,
				Rationale:           dn.Rationale,
				MaterialRefs:        dn.MaterialRefs,
			},
		})
	}
	return doc
}

func convertMaterial(projectID string, m MaterialImport) domain.Material {
	mat := domain.Material{
		ID:         m.ID,
		Name:       m.Name,
		Type:       m.Type,
		Category:   m.Category,
		Tags:       m.Tags,
		ProjectIDs: []string{projectID},
	}
	if a := m.Analysis; a != nil {
		mat.Analysis = &domain.MaterialAnalysis{
			Summary:             a.Summary,
			KeyConcepts:         a.KeyConcepts,
			SuggestedObjectives: a.SuggestedObjectives,
			ContentGaps:         a.ContentGaps,
			GlossaryTerms:       a.GlossaryTerms,
			AccessibilityIssues: a.AccessibilityIssues,
		}
	}
	return mat
}
