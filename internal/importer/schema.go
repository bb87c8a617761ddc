package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure of a project content file. The
// same shape is accepted as JSON or YAML.
type ImportSchema struct {
	Project       ProjectImport        `json:"project" yaml:"project"`
	Outline       *OutlineImport       `json:"outline,omitempty" yaml:"outline,omitempty"`
	DesignDocs    []DesignDocImport    `json:"design_docs,omitempty" yaml:"design_docs,omitempty"`
	Materials     []MaterialImport     `json:"materials,omitempty" yaml:"materials,omitempty"`
	StyleGuide    *StyleGuideImport    `json:"style_guide,omitempty" yaml:"style_guide,omitempty"`
	NeedsAnalysis *NeedsAnalysisImport `json:"needs_analysis,omitempty" yaml:"needs_analysis,omitempty"`
}

// ProjectImport defines the project-level fields in the import file.
type ProjectImport struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type OutlineImport struct {
	CourseGoal string         `json:"course_goal,omitempty" yaml:"course_goal,omitempty"`
	Modules    []ModuleImport `json:"modules" yaml:"modules"`
}

type ObjectiveImport struct {
	ID                string   `json:"id" yaml:"id"`
	Text              string   `json:"text" yaml:"text"`
	BloomLevel        string   `json:"bloom_level" yaml:"bloom_level"`
	AssessmentAligned bool     `json:"assessment_aligned,omitempty" yaml:"assessment_aligned,omitempty"`
	MaterialRefs      []string `json:"material_refs,omitempty" yaml:"material_refs,omitempty"`
}

type LessonImport struct {
	ID           string            `json:"id" yaml:"id"`
	Title        string            `json:"title" yaml:"title"`
	Description  string            `json:"description,omitempty" yaml:"description,omitempty"`
	Order        int               `json:"order" yaml:"order"`
	Duration     int               `json:"duration,omitempty" yaml:"duration,omitempty"`
	ZPDLevel     string            `json:"zpd_level" yaml:"zpd_level"`
	Modalities   []string          `json:"modalities,omitempty" yaml:"modalities,omitempty"`
	Activities   []string          `json:"activities,omitempty" yaml:"activities,omitempty"`
	Objectives   []ObjectiveImport `json:"objectives,omitempty" yaml:"objectives,omitempty"`
	MaterialRefs []string          `json:"material_refs,omitempty" yaml:"material_refs,omitempty"`
}

type ModuleImport struct {
	ID                 string            `json:"id" yaml:"id"`
	Title              string            `json:"title" yaml:"title"`
	Description        string            `json:"description,omitempty" yaml:"description,omitempty"`
	Order              int               `json:"order" yaml:"order"`
	Duration           int               `json:"duration,omitempty" yaml:"duration,omitempty"`
	Objectives         []ObjectiveImport `json:"objectives,omitempty" yaml:"objectives,omitempty"`
	Lessons            []LessonImport    `json:"lessons,omitempty" yaml:"lessons,omitempty"`
	Modalities         []string          `json:"modalities,omitempty" yaml:"modalities,omitempty"`
	AssessmentStrategy string            `json:"assessment_strategy,omitempty" yaml:"assessment_strategy,omitempty"`
	MaterialRefs       []string          `json:"material_refs,omitempty" yaml:"material_refs,omitempty"`
}

type DesignDocImport struct {
	ID       string        `json:"id" yaml:"id"`
	ModuleID string        `json:"module_id,omitempty" yaml:"module_id,omitempty"`
	LessonID string        `json:"lesson_id,omitempty" yaml:"lesson_id,omitempty"`
	Title    string        `json:"title" yaml:"title"`
	Slides   []SlideImport `json:"slides" yaml:"slides"`
}

type SlideImport struct {
	ID           string            `json:"id" yaml:"id"`
	SlideNumber  int               `json:"slide_number" yaml:"slide_number"`
	Title        string            `json:"title,omitempty" yaml:"title,omitempty"`
	ObjectiveRef string            `json:"objective_ref,omitempty" yaml:"objective_ref,omitempty"`
	LearnerView  LearnerViewImport `json:"learner_view" yaml:"learner_view"`
	DesignNotes  DesignNotesImport `json:"design_notes" yaml:"design_notes"`
}

type LearnerViewImport struct {
	Heading                string   `json:"heading,omitempty" yaml:"heading,omitempty"`
	BodyText               string   `json:"body_text,omitempty" yaml:"body_text,omitempty"`
	BulletPoints           []string `json:"bullet_points,omitempty" yaml:"bullet_points,omitempty"`
	VisualDescription      string   `json:"visual_description,omitempty" yaml:"visual_description,omitempty"`
	AudioScript            string   `json:"audio_script,omitempty" yaml:"audio_script,omitempty"`
	InteractionDescription string   `json:"interaction_description,omitempty" yaml:"interaction_description,omitempty"`
	AccessibilityFeatures  []string `json:"accessibility_features,omitempty" yaml:"accessibility_features,omitempty"`
}

type DesignNotesImport struct {
	BloomLevel          string   `json:"bloom_level,omitempty" yaml:"bloom_level,omitempty"`
	InteractivitySpec   string   `json:"interactivity_spec,omitempty" yaml:"interactivity_spec,omitempty"`
	BranchingLogic      string   `json:"branching_logic,omitempty" yaml:"branching_logic,omitempty"`
	AssessmentScoring   string   `json:"assessment_scoring,omitempty" yaml:"assessment_scoring,omitempty"`
	ScaffoldingStrategy string   `json:"scaffolding_strategy,omitempty" yaml:"scaffolding_strategy,omitempty"`
	AccessibilityNotes  string   `json:"accessibility_notes,omitempty" yaml:"accessibility_notes,omitempty"`
	DevelopmentNotes    string   `json:"development_notes,omitempty" yaml:"development_notes,omitempty"`
	Rationale           string   `json:"rationale,omitempty" yaml:"rationale,omitempty"`
	MaterialRefs        []string `json:"material_refs,omitempty" yaml:"material_refs,omitempty"`
}

type MaterialImport struct {
	ID       string                  `json:"id" yaml:"id"`
	Name     string                  `json:"name" yaml:"name"`
	Type     string                  `json:"type,omitempty" yaml:"type,omitempty"`
	Category string                  `json:"category,omitempty" yaml:"category,omitempty"`
	Tags     []string                `json:"tags,omitempty" yaml:"tags,omitempty"`
	Analysis *MaterialAnalysisImport `json:"analysis,omitempty" yaml:"analysis,omitempty"`
}

type MaterialAnalysisImport struct {
	Summary             string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	KeyConcepts         []string `json:"key_concepts,omitempty" yaml:"key_concepts,omitempty"`
	SuggestedObjectives []string `json:"suggested_objectives,omitempty" yaml:"suggested_objectives,omitempty"`
	ContentGaps         []string `json:"content_gaps,omitempty" yaml:"content_gaps,omitempty"`
	GlossaryTerms       []string `json:"glossary_terms,omitempty" yaml:"glossary_terms,omitempty"`
	AccessibilityIssues []string `json:"accessibility_issues,omitempty" yaml:"accessibility_issues,omitempty"`
}

type StyleGuideImport struct {
	Name  string            `json:"name" yaml:"name"`
	Type  string            `json:"type" yaml:"type"`
	Rules []StyleRuleImport `json:"rules,omitempty" yaml:"rules,omitempty"`
}

type StyleRuleImport struct {
	ID       string `json:"id" yaml:"id"`
	Category string `json:"category" yaml:"category"`
	Rule     string `json:"rule" yaml:"rule"`
	Severity string `json:"severity" yaml:"severity"`
}

type NeedsAnalysisImport struct {
	Summary      string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	MaterialRefs []string `json:"material_refs,omitempty" yaml:"material_refs,omitempty"`
	MaterialGaps []string `json:"material_gaps,omitempty" yaml:"material_gaps,omitempty"`
}

// LoadImportSchema reads and parses a content file. Files ending in .yaml
// or .yml are parsed as YAML; everything else as JSON.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

func ParseJSON(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}

func ParseYAML(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
