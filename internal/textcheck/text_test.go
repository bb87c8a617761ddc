package textcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentences_AbbreviationsDoNotSplit(t *testing.T) {
	got := Sentences("See e.g. the chart. Then stop!")
	assert.Equal(t, []string{"See e.g. the chart", "Then stop"}, got)
}

func TestSentences_Etc(t *testing.T) {
	assert.Equal(t,
		[]string{"We list apples, pears etc", "Then we stop", "Next one"},
		Sentences("We list apples, pears etc. Then we stop. Next one"))
	assert.Equal(t,
		[]string{"Bring pens, paper etc. to the lab", "Done"},
		Sentences("Bring pens, paper etc. to the lab. Done"))
	assert.Equal(t, []string{"Pens, paper, etc."}, Sentences("Pens, paper, etc."))
}

func TestSentences_LineBreaksSplit(t *testing.T) {
	got := Sentences("Heading\n\n  Body text here")
	assert.Equal(t, []string{"Heading", "Body text here"}, got)
}

func TestSentences_Empty(t *testing.T) {
	assert.Empty(t, Sentences(""))
	assert.Empty(t, Sentences("   \n  "))
}

func TestWords(t *testing.T) {
	got := Words("It's the learner’s turn-based game, 3rd try.")
	assert.Equal(t, []string{"It's", "the", "learner’s", "turn-based", "game", "3rd", "try"}, got)
	assert.Equal(t, 7, WordCount("It's the learner’s turn-based game, 3rd try."))
}

func TestAverageSentenceLength(t *testing.T) {
	assert.InDelta(t, 3.0, AverageSentenceLength("One two. Three four five six."), 0.001)
	assert.Zero(t, AverageSentenceLength(""))
}

func TestLongWordFraction(t *testing.T) {
	assert.InDelta(t, 0.5, LongWordFraction("cat elephant", 6), 0.001)
	assert.Zero(t, LongWordFraction("", 6))
}

func TestLongSentences(t *testing.T) {
	text := "Short one. This sentence has exactly seven words here."
	assert.Equal(t, []string{"This sentence has exactly seven words here"}, LongSentences(text, 6))
	assert.Empty(t, LongSentences(text, 7))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "a b c", Excerpt("a  b\n c", 10))
	assert.Equal(t, "abcd…", Excerpt("abcdefghij", 4))
	assert.Equal(t, "abc…", Excerpt("abc def", 4))
}
