package textcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassiveVoice(t *testing.T) {
	got := PassiveVoice("The report was written by the team and is often reviewed. It is being checked now.")
	assert.Equal(t, []string{"was written", "is often reviewed", "is being checked"}, got)
}

func TestPassiveVoice_Progressive(t *testing.T) {
	got := PassiveVoice("Slides were being often shown. Being taught twice helps. It is not done.")
	assert.Equal(t, []string{"were being often shown", "Being taught", "is not done"}, got)
}

func TestPassiveVoice_IgnoresFalseParticiples(t *testing.T) {
	assert.Empty(t, PassiveVoice("It is indeed true that learners need practice."))
	assert.Empty(t, PassiveVoice("Learners write the summary."))
}

func TestLatinAbbreviations(t *testing.T) {
	got := LatinAbbreviations("Use i.e. here, i.e. there, and i.e. everywhere.")
	require.Len(t, got, 3)
	for _, m := range got {
		assert.Equal(t, "i.e.", m.Text)
		assert.Equal(t, "that is", m.Replacement)
	}
}

func TestLatinAbbreviations_Replacements(t *testing.T) {
	got := LatinAbbreviations("E.g. tools, charts etc. by Smith et al. viz. the lab")
	require.Len(t, got, 4)
	assert.Equal(t, "for example", got[0].Replacement)
	assert.Equal(t, "and so on", got[1].Replacement)
	assert.Equal(t, "and others", got[2].Replacement)
	assert.Equal(t, "namely", got[3].Replacement)
}

func TestGenderedPronouns(t *testing.T) {
	got := GenderedPronouns("He said his notes were hers. Then he left.")
	assert.Equal(t, []string{"he", "his", "hers"}, got)
	assert.Empty(t, GenderedPronouns("They said their notes were theirs."))
}

func TestCasingInconsistencies(t *testing.T) {
	texts := []string{
		"We use the Dashboard daily.",
		"Open the dashboard now. The dashboard loads.",
	}
	got := CasingInconsistencies(texts)
	require.Len(t, got, 1)
	assert.Equal(t, "dashboard", got[0].Word)
	assert.Equal(t, []string{"Dashboard", "dashboard"}, got[0].Variants)
	assert.Equal(t, 3, got[0].Count)
}

func TestCasingInconsistencies_IgnoresSentenceStart(t *testing.T) {
	got := CasingInconsistencies([]string{"Module one. Review the module."})
	assert.Empty(t, got)
}

func TestPreferredTerm(t *testing.T) {
	preferred, discouraged, ok := PreferredTerm(`Use "sign in" instead of "login"`)
	require.True(t, ok)
	assert.Equal(t, "sign in", preferred)
	assert.Equal(t, "login", discouraged)

	preferred, discouraged, ok = PreferredTerm("Use “learner” rather than “student”.")
	require.True(t, ok)
	assert.Equal(t, "learner", preferred)
	assert.Equal(t, "student", discouraged)

	_, _, ok = PreferredTerm("Prefer short sentences")
	assert.False(t, ok)
}

func TestCountTerm(t *testing.T) {
	text := "Log in, then LOGIN again on the login page. logins"
	assert.Equal(t, 2, CountTerm(text, "login"))
	assert.Equal(t, 1, CountTerm(text, "log in"))
	assert.Zero(t, CountTerm(text, "  "))
}
