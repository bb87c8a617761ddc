package textcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVocabulary_WholeWord(t *testing.T) {
	v := NewVocabulary("map", "shown below")
	assert.True(t, v.Matches("See the MAP"))
	assert.True(t, v.Matches("as shown below"))
	assert.False(t, v.Matches("mapping the field"))
	assert.Equal(t, []string{"map", "shown below"}, v.Terms())
}

func TestVocabulary_Find(t *testing.T) {
	got := NavigationWords.Find("Click Next to reveal, then click next")
	assert.Equal(t, []string{"click", "next", "reveal"}, got)
}

func TestVocabulary_MatchesAny(t *testing.T) {
	assert.True(t, VisualReferenceWords.MatchesAny("", "a chart of sales"))
	assert.False(t, VisualReferenceWords.MatchesAny("", "plain text"))
}

func TestStemVocabulary(t *testing.T) {
	assert.True(t, FadeWords.Matches("Support is gradually withdrawn"))
	assert.True(t, FadeWords.Matches("Hints are released later"))
	assert.False(t, FadeWords.Matches("We fix it"))
}

func TestDecisionWords(t *testing.T) {
	assert.True(t, DecisionWords.Matches("Choose the best option for the client"))
	assert.False(t, DecisionWords.Matches("Click next to reveal the answer"))
}
