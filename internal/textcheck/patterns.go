package textcheck

import (
	"regexp"
	"sort"
	"strings"
)

// Passive voice: a form of "to be", an optional progressive "being", an
// optional adverb, then a regular "-ed" participle or one of the common
// irregular participles.
var passivePattern = regexp.MustCompile(`(?i)\b(?:am|is|are|was|were|be|been|being)\s+(?:being\s+)?(?:(?:not|also|often|usually|always|never|then)\s+)?` +
	`([a-z]{2,}ed|given|taken|written|shown|seen|known|chosen|driven|broken|spoken|forgotten|hidden|` +
	`done|made|built|held|kept|led|sent|spent|taught|thought|told|found|brought|bought|paid|sold|heard|understood|won|lost|set|put|read)\b`)

// Words ending in "ed" that are not participles.
var notParticiples = map[string]bool{
	"indeed": true, "need": true, "speed": true, "feed": true, "seed": true,
	"breed": true, "greed": true, "creed": true, "embed": true, "proceed": true,
}

// PassiveVoice returns every passive construction found in text, in order.
func PassiveVoice(text string) []string {
	var out []string
	for _, m := range passivePattern.FindAllStringSubmatch(text, -1) {
		if notParticiples[strings.ToLower(m[1])] {
			continue
		}
		out = append(out, m[0])
	}
	return out
}

var latinPattern = regexp.MustCompile(`(?i)\b(?:e\.g\.?|i\.e\.?|etc\b\.?|et al\b\.?|viz\b\.?)`)

var latinReplacements = map[string]string{
	"e.g":   "for example",
	"i.e":   "that is",
	"etc":   "and so on",
	"et al": "and others",
	"viz":   "namely",
}

// LatinAbbreviation is one Latin abbreviation occurrence and its plain-English
// substitute.
type LatinAbbreviation struct {
	Text        string
	Replacement string
}

// LatinAbbreviations returns every occurrence of e.g., i.e., etc., et al.
// and viz. in text.
func LatinAbbreviations(text string) []LatinAbbreviation {
	var out []LatinAbbreviation
	for _, m := range latinPattern.FindAllString(text, -1) {
		key := strings.TrimSuffix(strings.ToLower(m), ".")
		out = append(out, LatinAbbreviation{Text: m, Replacement: latinReplacements[key]})
	}
	return out
}

var genderedPattern = regexp.MustCompile(`(?i)\b(?:he|she|him|her|his|hers|himself|herself)\b`)

// GenderedPronouns returns the distinct gendered pronouns in text, lowercased,
// in order of first appearance.
func GenderedPronouns(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range genderedPattern.FindAllString(text, -1) {
		p := strings.ToLower(m)
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// CasingGroup is a word seen with more than one capitalization.
type CasingGroup struct {
	Word     string   // lowercase key
	Variants []string // distinct spellings, sorted
	Count    int      // total occurrences across all variants
}

// CasingInconsistencies tallies capitalizations of each word across texts
// and returns the words rendered in two or more ways, most frequent first.
// Sentence-initial words and words shorter than three letters are ignored.
func CasingInconsistencies(texts []string) []CasingGroup {
	variants := make(map[string]map[string]int)
	for _, text := range texts {
		for _, sentence := range Sentences(text) {
			for i, w := range Words(sentence) {
				if i == 0 || len(w) < 3 || !isAlpha(w) {
					continue
				}
				key := strings.ToLower(w)
				if variants[key] == nil {
					variants[key] = make(map[string]int)
				}
				variants[key][w]++
			}
		}
	}

	var groups []CasingGroup
	for key, spellings := range variants {
		if len(spellings) < 2 {
			continue
		}
		g := CasingGroup{Word: key}
		for v, n := range spellings {
			g.Variants = append(g.Variants, v)
			g.Count += n
		}
		sort.Strings(g.Variants)
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Word < groups[j].Word
	})
	return groups
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

var preferredTermRule = regexp.MustCompile(`(?i)use\s+["“']([^"”']+)["”']\s+(?:instead of|rather than|not)\s+["“']([^"”']+)["”']`)

// PreferredTerm parses a terminology rule of the form
// `Use "X" instead of "Y"` and returns X and Y.
func PreferredTerm(rule string) (preferred, discouraged string, ok bool) {
	m := preferredTermRule.FindStringSubmatch(rule)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

// CountTerm counts case-insensitive whole-word occurrences of term in text.
func CountTerm(text, term string) int {
	if strings.TrimSpace(term) == "" {
		return 0
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	return len(re.FindAllStringIndex(text, -1))
}
