package domain

type BloomLevel string

const (
	BloomRemember   BloomLevel = "remember"
	BloomUnderstand BloomLevel = "understand"
	BloomApply      BloomLevel = "apply"
	BloomAnalyze    BloomLevel = "analyze"
	BloomEvaluate   BloomLevel = "evaluate"
	BloomCreate     BloomLevel = "create"
)

// BloomLevels lists the taxonomy from lowest to highest order.
var BloomLevels = []BloomLevel{
	BloomRemember, BloomUnderstand, BloomApply, BloomAnalyze, BloomEvaluate, BloomCreate,
}

// ValidBloomLevels is the canonical set of accepted Bloom level strings.
var ValidBloomLevels = map[string]bool{
	"remember": true, "understand": true, "apply": true,
	"analyze": true, "evaluate": true, "create": true,
}

// IsLowerOrder reports whether the level sits in the remember/understand band.
func (b BloomLevel) IsLowerOrder() bool {
	return b == BloomRemember || b == BloomUnderstand
}

type ZPDLevel string

const (
	ZPDComfort  ZPDLevel = "comfort"
	ZPDLearning ZPDLevel = "learning"
	ZPDStretch  ZPDLevel = "stretch"
)

var ValidZPDLevels = map[string]bool{
	"comfort": true, "learning": true, "stretch": true,
}

// Modality is a VARK learning modality.
type Modality string

const (
	ModalityVisual      Modality = "visual"
	ModalityAuditory    Modality = "auditory"
	ModalityReadWrite   Modality = "readWrite"
	ModalityKinesthetic Modality = "kinesthetic"
)

// Modalities lists the VARK modalities in canonical order.
var Modalities = []Modality{
	ModalityVisual, ModalityAuditory, ModalityReadWrite, ModalityKinesthetic,
}

var ValidModalities = map[string]bool{
	"visual": true, "auditory": true, "readWrite": true, "kinesthetic": true,
}

type StyleGuideType string

const (
	StyleGuidePDFUpload StyleGuideType = "pdf-upload"
	StyleGuideMicrosoft StyleGuideType = "microsoft"
	StyleGuideCustom    StyleGuideType = "custom"
)

var ValidStyleGuideTypes = map[string]bool{
	"pdf-upload": true, "microsoft": true, "custom": true,
}

type StyleCategory string

const (
	StyleVoice       StyleCategory = "voice"
	StyleTerminology StyleCategory = "terminology"
	StyleFormatting  StyleCategory = "formatting"
	StyleStructure   StyleCategory = "structure"
	StyleTone        StyleCategory = "tone"
)

var ValidStyleCategories = map[string]bool{
	"voice": true, "terminology": true, "formatting": true, "structure": true, "tone": true,
}

// RuleSeverity is the severity a style guide author assigns to a rule.
type RuleSeverity string

const (
	RuleError   RuleSeverity = "error"
	RuleWarning RuleSeverity = "warning"
	RuleInfo    RuleSeverity = "info"
)

var ValidRuleSeverities = map[string]bool{
	"error": true, "warning": true, "info": true,
}

// Severity classifies a QA finding.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
	SeverityPass     Severity = "pass"
)

// FindingSeverity maps a style rule severity onto a finding severity.
func (r RuleSeverity) FindingSeverity() Severity {
	switch r {
	case RuleError:
		return SeverityCritical
	case RuleWarning:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}

// Tool is the key of one QA analyzer.
type Tool string

const (
	ToolAlignment      Tool = "alignment"
	ToolBlooms         Tool = "blooms"
	ToolMultimodal     Tool = "multimodal"
	ToolZPD            Tool = "zpd"
	ToolAccessibility  Tool = "accessibility"
	ToolInteractivity  Tool = "interactivity"
	ToolStyleGuide     Tool = "style-guide"
	ToolSourceMaterial Tool = "source-material"
)

// Tools lists every analyzer key in dashboard order.
var Tools = []Tool{
	ToolAlignment, ToolBlooms, ToolMultimodal, ToolZPD,
	ToolAccessibility, ToolInteractivity, ToolStyleGuide, ToolSourceMaterial,
}

// ParseTool returns the Tool for s and whether it is a known key.
func ParseTool(s string) (Tool, bool) {
	for _, t := range Tools {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// CourseLevel selects the target Bloom distribution.
type CourseLevel string

const (
	LevelFoundational CourseLevel = "foundational"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

var ValidCourseLevels = map[string]bool{
	"foundational": true, "intermediate": true, "advanced": true,
}
