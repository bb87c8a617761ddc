package importer

import (
	"fmt"

	"github.com/alexanderramin/addie/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateProject(&schema.Project)...)

	objectiveOwners := make(map[string]string)
	errs = append(errs, validateOutline(schema.Outline, objectiveOwners)...)
	errs = append(errs, validateDesignDocs(schema.DesignDocs)...)
	errs = append(errs, validateMaterials(schema.Materials)...)
	errs = append(errs, validateStyleGuide(schema.StyleGuide)...)

	return errs
}

func validateProject(p *ProjectImport) []error {
	var errs []error

	project := domain.Project{ID: p.ID}
	if err := project.ValidateID(); err != nil {
		errs = append(errs, fmt.Errorf("project.id: %w", err))
	}
	if p.Name == "" {
		errs = append(errs, fmt.Errorf("project.name is required"))
	}

	return errs
}

func validateOutline(o *OutlineImport, objectiveOwners map[string]string) []error {
	if o == nil {
		return nil
	}
	var errs []error

	moduleIDs := make(map[string]bool)
	moduleOrders := make(map[int]string)
	for i, m := range o.Modules {
		prefix := fmt.Sprintf("outline.modules[%d]", i)

		if m.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if moduleIDs[m.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate module id %q", prefix, m.ID))
		} else {
			moduleIDs[m.ID] = true
		}
		if m.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		errs = append(errs, validateOrder(prefix, m.Order, moduleOrders, m.ID)...)
		if m.Duration < 0 {
			errs = append(errs, fmt.Errorf("%s.duration must be >= 0, got %d", prefix, m.Duration))
		}
		errs = append(errs, validateModalities(prefix, m.Modalities)...)
		errs = append(errs, validateObjectives(prefix, m.Objectives, objectiveOwners)...)

		lessonIDs := make(map[string]bool)
		lessonOrders := make(map[int]string)
		for j, l := range m.Lessons {
			lprefix := fmt.Sprintf("%s.lessons[%d]", prefix, j)

			if l.ID == "" {
				errs = append(errs, fmt.Errorf("%s.id is required", lprefix))
			} else if lessonIDs[l.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate lesson id %q", lprefix, l.ID))
			} else {
				lessonIDs[l.ID] = true
			}
			if l.Title == "" {
				errs = append(errs, fmt.Errorf("%s.title is required", lprefix))
			}
			errs = append(errs, validateOrder(lprefix, l.Order, lessonOrders, l.ID)...)
			if l.Duration < 0 {
				errs = append(errs, fmt.Errorf("%s.duration must be >= 0, got %d", lprefix, l.Duration))
			}
			if !domain.ValidZPDLevels[l.ZPDLevel] {
				errs = append(errs, fmt.Errorf("%s.zpd_level: invalid value %q", lprefix, l.ZPDLevel))
			}
			errs = append(errs, validateModalities(lprefix, l.Modalities)...)
			errs = append(errs, validateObjectives(lprefix, l.Objectives, objectiveOwners)...)
		}
	}

	return errs
}

func validateOrder(prefix string, order int, seen map[int]string, id string) []error {
	if order < 1 {
		return []error{fmt.Errorf("%s.order must be >= 1, got %d", prefix, order)}
	}
	if other, ok := seen[order]; ok {
		return []error{fmt.Errorf("%s.order: %d already used by %q", prefix, order, other)}
	}
	seen[order] = id
	return nil
}

func validateModalities(prefix string, modalities []string) []error {
	var errs []error
	for _, m := range modalities {
		if !domain.ValidModalities[m] {
			errs = append(errs, fmt.Errorf("%s.modalities: invalid value %q", prefix, m))
		}
	}
	return errs
}

// validateObjectives records each objective's owner; an objective ID may
// appear under only one module or lesson.
func validateObjectives(prefix string, objs []ObjectiveImport, owners map[string]string) []error {
	var errs []error
	for i, obj := range objs {
		oprefix := fmt.Sprintf("%s.objectives[%d]", prefix, i)

		if obj.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", oprefix))
		} else if owner, ok := owners[obj.ID]; ok {
			errs = append(errs, fmt.Errorf("%s.id: objective %q already defined at %s", oprefix, obj.ID, owner))
		} else {
			owners[obj.ID] = oprefix
		}
		if obj.Text == "" {
			errs = append(errs, fmt.Errorf("%s.text is required", oprefix))
		}
		if !domain.ValidBloomLevels[obj.BloomLevel] {
			errs = append(errs, fmt.Errorf("%s.bloom_level: invalid value %q", oprefix, obj.BloomLevel))
		}
	}
	return errs
}

func validateDesignDocs(docs []DesignDocImport) []error {
	var errs []error

	docIDs := make(map[string]bool)
	for i, d := range docs {
		prefix := fmt.Sprintf("design_docs[%d]", i)

		if d.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if docIDs[d.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate design document id %q", prefix, d.ID))
		} else {
			docIDs[d.ID] = true
		}
		if d.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}

		slideIDs := make(map[string]bool)
		slideNumbers := make(map[int]string)
		for j, s := range d.Slides {
			sprefix := fmt.Sprintf("%s.slides[%d]", prefix, j)

			if s.ID == "" {
				errs = append(errs, fmt.Errorf("%s.id is required", sprefix))
			} else if slideIDs[s.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate slide id %q", sprefix, s.ID))
			} else {
				slideIDs[s.ID] = true
			}
			if s.SlideNumber < 1 {
				errs = append(errs, fmt.Errorf("%s.slide_number must be >= 1, got %d", sprefix, s.SlideNumber))
			} else if other, ok := slideNumbers[s.SlideNumber]; ok {
				errs = append(errs, fmt.Errorf("%s.slide_number: %d already used by %q", sprefix, s.SlideNumber, other))
			} else {
				slideNumbers[s.SlideNumber] = s.ID
			}
			if bl := s.DesignNotes.BloomLevel; bl != "" && !domain.ValidBloomLevels[bl] {
				errs = append(errs, fmt.Errorf("%s.design_notes.bloom_level: invalid value %q", sprefix, bl))
			}
		}
	}

	return errs
}

func validateMaterials(materials []MaterialImport) []error {
	var errs []error

	ids := make(map[string]bool)
	for i, m := range materials {
		prefix := fmt.Sprintf("materials[%d]", i)

		if m.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[m.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate material id %q", prefix, m.ID))
		} else {
			ids[m.ID] = true
		}
		if m.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
	}

	return errs
}

func validateStyleGuide(g *StyleGuideImport) []error {
	if g == nil {
		return nil
	}
	var errs []error

	if !domain.ValidStyleGuideTypes[g.Type] {
		errs = append(errs, fmt.Errorf("style_guide.type: invalid value %q", g.Type))
	}

	ids := make(map[string]bool)
	for i, r := range g.Rules {
		prefix := fmt.Sprintf("style_guide.rules[%d]", i)

		if r.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[r.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate rule id %q", prefix, r.ID))
		} else {
			ids[r.ID] = true
		}
		if r.Rule == "" {
			errs = append(errs, fmt.Errorf("%s.rule is required", prefix))
		}
		if !domain.ValidStyleCategories[r.Category] {
			errs = append(errs, fmt.Errorf("%s.category: invalid value %q", prefix, r.Category))
		}
		if !domain.ValidRuleSeverities[r.Severity] {
			errs = append(errs, fmt.Errorf("%s.severity: invalid value %q", prefix, r.Severity))
		}
	}

	return errs
}
