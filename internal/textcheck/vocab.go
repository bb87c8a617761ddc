package textcheck

import (
	"regexp"
	"strings"
)

// Vocabulary matches any of a fixed list of words or phrases, case-insensitively
// and on word boundaries.
type Vocabulary struct {
	terms []string
	re    *regexp.Regexp
}

// NewVocabulary builds a whole-word vocabulary.
func NewVocabulary(terms ...string) *Vocabulary {
	return newVocabulary(terms, `\b`)
}

// NewStemVocabulary builds a vocabulary matching words that start with any
// of the given stems ("fad" matches fade, fading, faded).
func NewStemVocabulary(stems ...string) *Vocabulary {
	return newVocabulary(stems, `\w*\b`)
}

func newVocabulary(terms []string, suffix string) *Vocabulary {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return &Vocabulary{
		terms: terms,
		re:    regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)` + suffix),
	}
}

// Matches reports whether text contains any vocabulary term.
func (v *Vocabulary) Matches(text string) bool {
	return v.re.MatchString(text)
}

// MatchesAny reports whether any of texts contains a vocabulary term.
func (v *Vocabulary) MatchesAny(texts ...string) bool {
	for _, t := range texts {
		if v.re.MatchString(t) {
			return true
		}
	}
	return false
}

// Find returns the distinct matched terms in text, lowercased, in order.
func (v *Vocabulary) Find(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range v.re.FindAllString(text, -1) {
		m = strings.ToLower(m)
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

// Terms returns the configured terms.
func (v *Vocabulary) Terms() []string {
	return v.terms
}

// Interactivity vocabularies.
var (
	// Learner makes a real choice.
	DecisionWords = NewVocabulary("choose", "chooses", "choice", "decide", "decides", "decision",
		"solve", "solves", "evaluate", "evaluates", "prioritize", "prioritise", "diagnose",
		"determine", "justify", "recommend", "compare", "weigh", "select the best", "troubleshoot")
	// Passive navigation that only moves the learner along.
	NavigationWords = NewVocabulary("click", "clicks", "next", "reveal", "reveals", "hover",
		"toggle", "flip", "expand", "scroll", "continue", "advance", "open the tab")
	ConsequenceWords = NewVocabulary("consequence", "consequences", "outcome", "outcomes",
		"result", "results", "leads to", "lead to", "impact", "affects", "branch to")
	JustificationWords = NewVocabulary("because", "why", "reason", "reasons", "rationale")
	TradeOffWords      = NewVocabulary("trade-off", "trade-offs", "tradeoff", "tradeoffs",
		"constraint", "constraints", "budget", "limited", "deadline", "cost", "costs",
		"risk", "risks", "competing", "balance")
	CorrectnessWords = NewVocabulary("correct", "incorrect", "right", "wrong")
)

// Scaffolding fade-plan vocabulary.
var FadeWords = NewStemVocabulary("fad", "reduc", "gradual", "withdraw", "releas", "independen")

// Accessibility vocabularies.
var (
	VisualReferenceWords = NewVocabulary("image", "images", "picture", "photo", "photograph",
		"diagram", "chart", "graph", "figure", "illustration", "screenshot", "infographic",
		"map", "shown below", "see below", "pictured")
	AltTextWords   = NewVocabulary("alt text", "alt-text", "alternative text", "text alternative", "image description")
	CaptionWords   = NewVocabulary("caption", "captions", "captioned", "closed captions", "transcript", "transcripts", "subtitle", "subtitles")
	ColorWords     = NewVocabulary("red", "green", "blue", "yellow", "orange", "purple", "color", "colour", "colored", "coloured", "highlighted in")
	NonColorCues   = NewVocabulary("icon", "icons", "label", "labels", "labeled", "labelled", "pattern", "symbol", "symbols", "bold", "underline", "underlined", "shape", "marked with")
	KeyboardWords  = NewVocabulary("keyboard", "tab key", "tab order", "arrow keys", "enter key", "space bar", "spacebar", "shortcut", "shortcuts")
	TimingWords    = NewVocabulary("timer", "timed", "countdown", "time limit", "seconds to")
	ExtendWords    = NewVocabulary("extend", "extension", "adjust", "adjustable", "pause", "turn off", "disable", "no time limit")
	FocusWords     = NewVocabulary("focus", "focus indicator", "focus ring", "visible focus", "outline")
	InstructWords  = NewVocabulary("select", "choose", "drag", "drop", "type", "enter", "click", "press", "tap", "match", "sort", "answer", "complete", "identify")
	SemanticWords  = NewVocabulary("semantic", "aria", "landmark", "landmarks", "role", "roles", "heading structure", "heading levels", "html5")
	AssistiveWords = NewVocabulary("screen reader", "screen readers", "screen-reader", "assistive", "nvda", "jaws", "voiceover", "talkback", "braille")
)
