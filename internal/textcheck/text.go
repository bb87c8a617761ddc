// Package textcheck holds the pattern- and threshold-based text heuristics
// used by the QA analyzers. Every function is pure and operates on plain
// strings.
package textcheck

import (
	"regexp"
	"strings"
)

var (
	// Dots inside these abbreviations must not end a sentence.
	abbrevDots = regexp.MustCompile(`(?i)\b(?:e\.g|i\.e|et al|viz|vs|dr|mr|mrs|ms)\.`)
	// "etc." ends a sentence only when a capitalized word follows.
	etcDot      = regexp.MustCompile(`\b(?i:etc)\.(\s+[A-Z])?`)
	sentenceEnd = regexp.MustCompile(`[.!?]+(?:\s+|$)|\s*\n+\s*`)
	wordPattern = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9'’-]*`)
)

const maskedDot = "\x00"

// Sentences splits text on terminal punctuation and line breaks. Dots in
// common abbreviations (e.g., i.e.) do not split; "etc." splits only before
// a capitalized word.
func Sentences(text string) []string {
	masked := abbrevDots.ReplaceAllStringFunc(text, maskDots)
	masked = etcDot.ReplaceAllStringFunc(masked, func(m string) string {
		if len(m) > len("etc.") {
			return m
		}
		return maskDots(m)
	})
	var out []string
	for _, part := range sentenceEnd.Split(masked, -1) {
		part = strings.TrimSpace(strings.ReplaceAll(part, maskedDot, "."))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func maskDots(s string) string {
	return strings.ReplaceAll(s, ".", maskedDot)
}

// Words returns the word tokens of text in order.
func Words(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// WordCount returns the number of word tokens in text.
func WordCount(text string) int {
	return len(Words(text))
}

// AverageSentenceLength returns the mean number of words per sentence, or 0
// when text has no sentences.
func AverageSentenceLength(text string) float64 {
	sentences := Sentences(text)
	if len(sentences) == 0 {
		return 0
	}
	total := 0
	for _, s := range sentences {
		total += WordCount(s)
	}
	return float64(total) / float64(len(sentences))
}

// LongWordFraction returns the fraction of words longer than maxLen
// characters, or 0 when text has no words.
func LongWordFraction(text string, maxLen int) float64 {
	words := Words(text)
	if len(words) == 0 {
		return 0
	}
	long := 0
	for _, w := range words {
		if len([]rune(w)) > maxLen {
			long++
		}
	}
	return float64(long) / float64(len(words))
}

// LongSentences returns the sentences of text with more than maxWords words.
func LongSentences(text string, maxWords int) []string {
	var out []string
	for _, s := range Sentences(text) {
		if WordCount(s) > maxWords {
			out = append(out, s)
		}
	}
	return out
}

// Excerpt shortens s to at most n runes, adding an ellipsis when cut.
func Excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n])) + "…"
}
