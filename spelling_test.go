package corrector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spellingDict() *Trie {
	trie := NewTrie()
	trie.Insert("casa", Entry{Lemma: "casa", Category: CategorySustantivo, Gender: GenderFeminine, Number: NumberSingular, Frequency: 950})
	trie.Insert("caza", Entry{Lemma: "caza", Category: CategorySustantivo, Gender: GenderFeminine, Number: NumberSingular, Frequency: 300})
	trie.Insert("capa", Entry{Lemma: "capa", Category: CategorySustantivo, Gender: GenderFeminine, Number: NumberSingular, Frequency: 100})
	trie.Insert("cosa", Entry{Lemma: "cosa", Category: CategorySustantivo, Gender: GenderFeminine, Number: NumberSingular, Frequency: 50})
	trie.Insert("gato", Entry{Lemma: "gato", Category: CategorySustantivo, Gender: GenderMasculine, Number: NumberSingular, Frequency: 400})
	trie.Insert("sabían", Entry{Lemma: "saber", Category: CategoryVerbo, Frequency: 200})
	return trie
}

type fakeRecognizer struct{ accepted map[string]bool }

func (f fakeRecognizer) IsValidVerbForm(word string) bool { return f.accepted[word] }

func TestIsCorrectExactHit(t *testing.T) {
	s := NewSpellingCorrector(spellingDict())
	assert.True(t, s.IsCorrect("casa"))
	assert.True(t, s.IsCorrect("Casa"), "lookup must be case-insensitive")
	assert.False(t, s.IsCorrect("cassa"))
}

func TestIsCorrectDerivedPlural(t *testing.T) {
	s := NewSpellingCorrector(spellingDict())
	assert.True(t, s.IsCorrect("gatos"), "regular plural of a dictionary noun")
	assert.True(t, s.IsCorrect("casas"))
}

func TestIsCorrectInvariantNounNeverPluralizes(t *testing.T) {
	trie := NewTrie()
	trie.Insert("virus", Entry{Lemma: "virus", Category: CategorySustantivo, Number: NumberInvariant, Frequency: 80})
	trie.Insert("lema", Entry{Lemma: "lema", Category: CategorySustantivo, Extra: "invariable", Frequency: 40})
	s := NewSpellingCorrector(trie)
	assert.False(t, s.IsCorrect("lemas"), "extra-flagged invariant noun must not accept a derived plural")
	assert.True(t, s.IsCorrect("virus"), "the invariant form itself stays correct")
}

func TestIsCorrectCustomDictionary(t *testing.T) {
	custom := NewTrie()
	custom.InsertWord("blockchain")
	s := NewSpellingCorrector(spellingDict()).WithCustomDictionary(custom)
	assert.True(t, s.IsCorrect("blockchain"))
}

func TestIsCorrectProperName(t *testing.T) {
	pn := NewProperNames()
	pn.set["María"] = struct{}{}
	s := NewSpellingCorrector(spellingDict()).WithProperNames(pn)
	assert.True(t, s.IsCorrect("María"))
}

func TestIsCorrectNumericPatterns(t *testing.T) {
	s := NewSpellingCorrector(spellingDict())
	for _, w := range []string{"42", "3,14", "1.234", "99%", "1º"} {
		assert.True(t, s.IsCorrect(w), w)
	}
	assert.False(t, s.IsCorrect("4x4"))
}

func TestIsCorrectConsultsVerbRecognizer(t *testing.T) {
	s := NewSpellingCorrector(spellingDict()).
		WithVerbRecognizer(fakeRecognizer{accepted: map[string]bool{"hablamos": true}})
	assert.True(t, s.IsCorrect("hablamos"))
	assert.False(t, s.IsCorrect("hablaxyz"))
}

func TestSuggestRanking(t *testing.T) {
	s := NewSpellingCorrector(spellingDict())
	got := s.Suggest("cassa")
	require.NotEmpty(t, got)

	// distance first, then frequency
	assert.Equal(t, "casa", got[0].Word)
	require.Len(t, got, 3, "default max_suggestions is 3")
	assert.Equal(t, "caza", got[1].Word, "equal-distance candidates sort by frequency")
}

func TestSuggestLocality(t *testing.T) {
	s := NewSpellingCorrector(spellingDict())
	for _, q := range []string{"cassa", "gati", "sabian"} {
		for _, sug := range s.Suggest(q) {
			assert.LessOrEqual(t, sug.Distance, 2.0, "suggestion %q for %q outside the edit budget", sug.Word, q)
		}
	}
}

func TestSuggestPrefersDiacriticOnlyCorrections(t *testing.T) {
	s := NewSpellingCorrector(spellingDict())
	got := s.Suggest("sabian")
	require.NotEmpty(t, got)
	assert.Equal(t, "sabían", got[0].Word)
	assert.Equal(t, 0.5, got[0].Distance, "a diacritic-only difference counts half an edit")
}

func TestSuggestPreservesLeadingCapital(t *testing.T) {
	s := NewSpellingCorrector(spellingDict())
	got := s.Suggest("Cassa")
	require.NotEmpty(t, got)
	assert.Equal(t, "Casa", got[0].Word)
}

func TestSuggestRespectsMaxSuggestions(t *testing.T) {
	s := NewSpellingCorrector(spellingDict()).WithMaxSuggestions(1)
	got := s.Suggest("cassa")
	require.Len(t, got, 1)
}

func TestSuggestCountsTranspositionAsOneEdit(t *testing.T) {
	trie := NewTrie()
	trie.InsertWord("sol")
	trie.InsertWord("problema")
	s := NewSpellingCorrector(trie)

	// "slo" is one adjacent swap away from "sol": it must survive the
	// short-word budget of 1 rather than costing a delete plus an insert
	got := s.Suggest("slo")
	require.NotEmpty(t, got)
	assert.Equal(t, "sol", got[0].Word)
	assert.Equal(t, 1.0, got[0].Distance)

	got = s.Suggest("probelma")
	require.NotEmpty(t, got)
	assert.Equal(t, "problema", got[0].Word)
	assert.Equal(t, 1.0, got[0].Distance)
}

func TestShortWordsGetTighterBudget(t *testing.T) {
	trie := NewTrie()
	trie.InsertWord("sol")
	s := NewSpellingCorrector(trie)
	// "sal" is 1 edit away: within the short-word budget of 1
	assert.NotEmpty(t, s.Suggest("sal"))
	// "pez" is 3 edits away: out of budget entirely
	assert.Empty(t, s.Suggest("pez"))
}
