package qa

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/addie/internal/domain"
	"github.com/alexanderramin/addie/internal/textcheck"
)

const (
	maxSentenceWords       = 25
	maxParagraphSentences  = 5
	maxCasingFindings      = 5
	styleCriticalDeduction = 8
	styleWarningDeduction  = 4
	styleInfoDeduction     = 2
)

type textField struct {
	name      string
	text      string
	location  string
	heading   bool
	rationale bool
	body      bool
}

// slideTextFields lists the reviewable text of a slide.
func slideTextFields(e slideEntry) []textField {
	lv, dn := e.slide.LearnerView, e.slide.DesignNotes
	fields := []textField{
		{name: "Heading", text: lv.Heading, heading: true},
		{name: "Body text", text: lv.BodyText, body: true},
	}
	for i, b := range lv.BulletPoints {
		fields = append(fields, textField{name: fmt.Sprintf("Bullet %d", i+1), text: b})
	}
	fields = append(fields,
		textField{name: "Rationale", text: dn.Rationale, rationale: true},
		textField{name: "Development notes", text: dn.DevelopmentNotes},
	)
	var out []textField
	for _, f := range fields {
		if domain.IsBlank(f.text) {
			continue
		}
		f.location = e.location + " > " + f.name
		out = append(out, f)
	}
	return out
}

func runStyleGuide(snap Snapshot, _ Config, f *findingSet) outcome {
	slides := allSlides(snap.DesignDocs)
	var fields []textField
	for _, e := range slides {
		fields = append(fields, slideTextFields(e)...)
	}
	if len(fields) == 0 {
		f.add(domain.SeverityCritical,
			"No slide text to review",
			"The project's design documents contain no text.",
			"Design documents",
			"Write slide content before running the style check.")
		return outcome{score: 0, summary: "No text to analyze."}
	}

	var casingTexts []string
	for _, fld := range fields {
		checkFieldStyle(f, fld)
		if !fld.heading {
			casingTexts = append(casingTexts, fld.text)
		}
	}

	groups := textcheck.CasingInconsistencies(casingTexts)
	if len(groups) > maxCasingFindings {
		groups = groups[:maxCasingFindings]
	}
	for _, g := range groups {
		f.add(domain.SeverityWarning,
			"Inconsistent terminology casing",
			fmt.Sprintf("%q appears as %s across %d uses.", g.Word, quoteList(g.Variants), g.Count),
			"Design documents",
			"Pick one capitalization and use it everywhere.")
	}

	guideRules := applyStyleRules(f, snap.StyleGuide, fields)

	deduction := styleCriticalDeduction*f.count(domain.SeverityCritical) +
		styleWarningDeduction*f.count(domain.SeverityWarning) +
		styleInfoDeduction*f.count(domain.SeverityInfo)
	score := max(0, 100-deduction)

	guide := "built-in writing checks"
	if snap.StyleGuide != nil {
		guide = fmt.Sprintf("built-in writing checks and %q (%d rules, %d machine-checkable)",
			domain.CoalesceStr(snap.StyleGuide.Name, string(snap.StyleGuide.Type)), len(snap.StyleGuide.Rules), guideRules)
	}
	return outcome{
		score:   score,
		summary: fmt.Sprintf("Reviewed %d text fields on %d slides against %s. Findings: %s.", len(fields), len(slides), guide, f.counts()),
	}
}

func checkFieldStyle(f *findingSet, fld textField) {
	for _, m := range textcheck.PassiveVoice(fld.text) {
		f.add(domain.SeverityWarning,
			"Passive voice",
			fmt.Sprintf("%q is passive.", m),
			fld.location,
			"Rewrite in active voice so the learner or actor is the subject.")
	}
	for _, s := range textcheck.LongSentences(fld.text, maxSentenceWords) {
		f.add(domain.SeverityWarning,
			"Long sentence",
			fmt.Sprintf("Sentence has %d words (limit %d): %q.", textcheck.WordCount(s), maxSentenceWords, textcheck.Excerpt(s, 60)),
			fld.location,
			"Split the sentence into shorter ones.")
	}
	if fld.body {
		if n := len(textcheck.Sentences(fld.text)); n > maxParagraphSentences {
			f.add(domain.SeverityInfo,
				"Long paragraph",
				fmt.Sprintf("Body text has %d sentences (limit %d).", n, maxParagraphSentences),
				fld.location,
				"Break the text into shorter paragraphs or bullets.")
		}
	}
	for _, a := range textcheck.LatinAbbreviations(fld.text) {
		f.add(domain.SeverityInfo,
			"Latin abbreviation",
			fmt.Sprintf("%q may be unclear to some learners.", a.Text),
			fld.location,
			fmt.Sprintf("Replace %q with %q.", a.Text, a.Replacement))
	}
	if !fld.rationale {
		if pronouns := textcheck.GenderedPronouns(fld.text); len(pronouns) > 0 {
			f.add(domain.SeverityWarning,
				"Gendered language",
				fmt.Sprintf("Uses gendered pronouns: %s.", strings.Join(pronouns, ", ")),
				fld.location,
				"Use \"they\", \"you\" or a role name instead.")
		}
	}
}

// applyStyleRules flags discouraged terms from terminology rules of the form
// `Use "X" instead of "Y"`. It returns how many rules could be applied.
func applyStyleRules(f *findingSet, guide *domain.StyleGuide, fields []textField) int {
	if guide == nil {
		return 0
	}
	applied := 0
	for _, rule := range guide.Rules {
		if rule.Category != domain.StyleTerminology {
			continue
		}
		preferred, discouraged, ok := textcheck.PreferredTerm(rule.Rule)
		if !ok {
			continue
		}
		applied++
		for _, fld := range fields {
			for i := textcheck.CountTerm(fld.text, discouraged); i > 0; i-- {
				f.add(rule.Severity.FindingSeverity(),
					"Style guide terminology",
					fmt.Sprintf("Uses %q; the style guide requires %q.", discouraged, preferred),
					fld.location,
					fmt.Sprintf("Replace %q with %q.", discouraged, preferred))
			}
		}
	}
	return applied
}

// RunStyleGuide runs the style-guide analyzer.
func RunStyleGuide(snap Snapshot, cfg Config) *domain.QAReport {
	a, _ := ForTool(domain.ToolStyleGuide)
	return a.Run(snap, cfg)
}
