package qa

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/addie/internal/domain"
	"github.com/alexanderramin/addie/internal/textcheck"
)

// WCAGLevel is a WCAG conformance level.
type WCAGLevel string

const (
	WCAGA   WCAGLevel = "A"
	WCAGAA  WCAGLevel = "AA"
	WCAGAAA WCAGLevel = "AAA"
)

// Deduction is the score penalty for one failed check at this level.
func (l WCAGLevel) Deduction() int {
	switch l {
	case WCAGA:
		return 10
	case WCAGAA:
		return 5
	default:
		return 2
	}
}

func (l WCAGLevel) severity() domain.Severity {
	switch l {
	case WCAGA:
		return domain.SeverityCritical
	case WCAGAA:
		return domain.SeverityWarning
	default:
		return domain.SeverityInfo
	}
}

// POUR principles.
const (
	pourPerceivable    = "Perceivable"
	pourOperable       = "Operable"
	pourUnderstandable = "Understandable"
	pourRobust         = "Robust"
)

var pourOrder = []string{pourPerceivable, pourOperable, pourUnderstandable, pourRobust}

// Readability thresholds.
const (
	maxAvgSentenceWords = 25
	longWordChars       = 12
	maxLongWordFraction = 0.15
	briefInteraction    = 20
)

type wcagCheck struct {
	f          *findingSet
	deductions int
	byCategory map[string]int
}

func (c *wcagCheck) fail(category string, level WCAGLevel, title, description, location, suggestion string) {
	c.f.add(level.severity(),
		fmt.Sprintf("%s: %s (Level %s)", category, title, level),
		description, location, suggestion)
	c.deductions += level.Deduction()
	c.byCategory[category]++
}

// AccessibilityBand describes a score for the summary line.
func AccessibilityBand(score int) string {
	switch {
	case score >= 85:
		return "strong"
	case score >= 60:
		return "moderate"
	default:
		return "needs significant improvement"
	}
}

func runAccessibility(snap Snapshot, _ Config, f *findingSet) outcome {
	if slideCount(snap.DesignDocs) == 0 {
		f.add(domain.SeverityCritical,
			"No slides to evaluate",
			"The project's design documents contain no slides.",
			"Design documents",
			"Add slides to the design documents before checking accessibility.")
		return outcome{score: 0, summary: "No slides to analyze."}
	}

	c := &wcagCheck{f: f, byCategory: make(map[string]int)}
	for i := range snap.DesignDocs {
		doc := &snap.DesignDocs[i]
		slides := docSlides(doc)
		for _, s := range slides {
			checkPerceivable(c, s)
			checkOperable(c, s)
			checkUnderstandable(c, s, len(slides) > 1)
		}
		if len(slides) > 0 {
			checkRobust(c, slides[0])
		}
	}

	score := domain.ClampScore(100 - c.deductions)
	parts := make([]string, len(pourOrder))
	for i, cat := range pourOrder {
		parts[i] = fmt.Sprintf("%s %d", cat, c.byCategory[cat])
	}
	return outcome{
		score: score,
		summary: fmt.Sprintf("Accessibility is %s (%d/100). Issues by principle: %s. Findings: %s.",
			AccessibilityBand(score), score, strings.Join(parts, ", "), f.counts()),
	}
}

func a11yNotes(s *domain.DesignDocSlide) string {
	return strings.Join(append([]string{s.DesignNotes.AccessibilityNotes, s.DesignNotes.DevelopmentNotes},
		s.LearnerView.AccessibilityFeatures...), "\n")
}

func learnerText(lv domain.LearnerView) string {
	return strings.Join(append([]string{lv.Heading, lv.BodyText, lv.InteractionDescription}, lv.BulletPoints...), "\n")
}

func isInteractive(s *domain.DesignDocSlide) bool {
	return !domain.IsBlank(s.LearnerView.InteractionDescription) || !domain.IsBlank(s.DesignNotes.InteractivitySpec)
}

func checkPerceivable(c *wcagCheck, e slideEntry) {
	lv, notes := e.slide.LearnerView, a11yNotes(e.slide)

	if textcheck.VisualReferenceWords.Matches(lv.BodyText) &&
		domain.IsBlank(lv.VisualDescription) && !textcheck.AltTextWords.Matches(notes) {
		c.fail(pourPerceivable, WCAGA, "Missing alt text",
			"The body text refers to visual content but the slide has no visual description or alt text.",
			e.location, "Write a text alternative that conveys the purpose of the visual.")
	}
	if !domain.IsBlank(lv.AudioScript) && !textcheck.CaptionWords.Matches(notes) {
		c.fail(pourPerceivable, WCAGA, "Missing captions or transcript",
			"The slide has narration but no caption or transcript is noted.",
			e.location, "Provide synchronized captions and a downloadable transcript.")
	}
	if text := learnerText(lv); textcheck.ColorWords.Matches(text) && !textcheck.NonColorCues.Matches(text+"\n"+notes) {
		c.fail(pourPerceivable, WCAGAA, "Color used as the only cue",
			fmt.Sprintf("The slide refers to color (%s) without a non-color cue.", strings.Join(textcheck.ColorWords.Find(text), ", ")),
			e.location, "Pair color with a label, icon, pattern or text.")
	}
}

func checkOperable(c *wcagCheck, e slideEntry) {
	s, notes := e.slide, a11yNotes(e.slide)
	interactive := isInteractive(s)

	if interactive && !textcheck.KeyboardWords.Matches(notes) {
		c.fail(pourOperable, WCAGAA, "No keyboard access noted",
			"The slide is interactive but its notes do not describe keyboard operation.",
			e.location, "Document the keyboard controls and tab order for the interaction.")
	}
	timed := s.LearnerView.BodyText + "\n" + s.LearnerView.InteractionDescription + "\n" + s.DesignNotes.InteractivitySpec
	if textcheck.TimingWords.Matches(timed) && !textcheck.ExtendWords.Matches(notes) {
		c.fail(pourOperable, WCAGAAA, "Timing cannot be adjusted",
			"The slide uses a time limit without a way to extend, adjust or pause it.",
			e.location, "Let learners pause, extend or turn off the timer.")
	}
	if interactive && !textcheck.FocusWords.Matches(notes) {
		c.fail(pourOperable, WCAGAAA, "No focus indicator noted",
			"The slide is interactive but its notes do not mention a visible focus indicator.",
			e.location, "Specify a visible focus style for every interactive element.")
	}
}

func checkUnderstandable(c *wcagCheck, e slideEntry, multiSlide bool) {
	lv := e.slide.LearnerView

	if avg := textcheck.AverageSentenceLength(lv.BodyText); avg > maxAvgSentenceWords {
		c.fail(pourUnderstandable, WCAGAA, "Long sentences",
			fmt.Sprintf("Average sentence length is %.1f words (limit %d).", avg, maxAvgSentenceWords),
			e.location, "Split long sentences and use plain language.")
	}
	if frac := textcheck.LongWordFraction(lv.BodyText, longWordChars); frac > maxLongWordFraction {
		c.fail(pourUnderstandable, WCAGAAA, "Complex vocabulary",
			fmt.Sprintf("%.0f%% of words are longer than %d characters.", frac*100, longWordChars),
			e.location, "Replace long or technical words with simpler ones, or define them.")
	}
	if desc := strings.TrimSpace(lv.InteractionDescription); desc != "" && len([]rune(desc)) < briefInteraction &&
		!textcheck.InstructWords.Matches(desc) {
		c.fail(pourUnderstandable, WCAGAAA, "Unclear interaction instructions",
			fmt.Sprintf("The interaction description %q does not tell learners what to do.", desc),
			e.location, "Give explicit instructions, for example \"Select the best response\".")
	}
	if multiSlide && domain.IsBlank(lv.Heading) {
		c.fail(pourUnderstandable, WCAGAA, "Missing heading",
			"The slide has no heading, which makes the document hard to navigate.",
			e.location, "Give every slide a descriptive heading.")
	}
}

// checkRobust runs the once-per-document checks against the first slide.
func checkRobust(c *wcagCheck, e slideEntry) {
	notes := e.slide.DesignNotes.DevelopmentNotes + "\n" + e.slide.DesignNotes.AccessibilityNotes
	if !textcheck.SemanticWords.Matches(notes) {
		c.fail(pourRobust, WCAGAAA, "No semantic markup guidance",
			"The development notes do not mention semantic HTML, ARIA roles or landmarks.",
			e.location, "Specify heading structure, landmarks and ARIA roles for developers.")
	}
	if !textcheck.AssistiveWords.Matches(notes) {
		c.fail(pourRobust, WCAGAA, "No assistive technology testing",
			"The notes do not mention screen readers or other assistive technology.",
			e.location, "Plan testing with a screen reader such as NVDA or VoiceOver.")
	}
}

// RunAccessibility runs the POUR/WCAG accessibility analyzer.
func RunAccessibility(snap Snapshot, cfg Config) *domain.QAReport {
	a, _ := ForTool(domain.ToolAccessibility)
	return a.Run(snap, cfg)
}
