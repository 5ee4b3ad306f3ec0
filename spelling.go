package corrector

import (
	"sort"
	"strings"
)

// SpellingSuggestion is a ranked correction candidate.
type SpellingSuggestion struct {
	Word      string
	Distance  float64
	Frequency uint32
}

// accentBase strips a single diacritic for the "diacritic-only
// differences count as half an edit" rule.
var accentBase = map[rune]rune{
	'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ú': 'u', 'ü': 'u',
	'Á': 'A', 'É': 'E', 'Í': 'I', 'Ó': 'O', 'Ú': 'U', 'Ü': 'U',
}

func baseLetter(r rune) rune {
	if b, ok := accentBase[r]; ok {
		return b
	}
	return r
}

func isDiacriticPairOnly(a, b rune) bool {
	return a != b && baseLetter(a) == baseLetter(b)
}

// SearchWithinDistance performs a bounded edit-distance descent of the
// trie: a DP row is carried down each edge and pruned once its minimum
// exceeds maxDistance, so the search touches only nodes within budget
// rather than the whole dictionary. An adjacent transposition counts as
// one edit (restricted Damerau-Levenshtein): the descent carries the
// previous edge's letter and DP row so the transposition term can be
// applied per cell.
func (t *Trie) SearchWithinDistance(word string, maxDistance float64) []SpellingSuggestion {
	target := []rune(strings.ToLower(word))
	columns := len(target) + 1
	firstRow := make([]float64, columns)
	for i := range firstRow {
		firstRow[i] = float64(i)
	}

	var out []SpellingSuggestion
	var descend func(node *trieNode, letter, parentLetter rune, prefix []rune, prevRow, prevPrevRow []float64)
	descend = func(node *trieNode, letter, parentLetter rune, prefix []rune, prevRow, prevPrevRow []float64) {
		currentRow := make([]float64, columns)
		currentRow[0] = prevRow[0] + 1
		for col := 1; col < columns; col++ {
			insertCost := currentRow[col-1] + 1
			deleteCost := prevRow[col] + 1
			var substCost float64
			switch {
			case target[col-1] == letter:
				substCost = prevRow[col-1]
			case isDiacriticPairOnly(target[col-1], letter):
				substCost = prevRow[col-1] + 0.5
			default:
				substCost = prevRow[col-1] + 1
			}
			currentRow[col] = minFloat(insertCost, minFloat(deleteCost, substCost))

			if col > 1 && prevPrevRow != nil &&
				target[col-1] == parentLetter && target[col-2] == letter {
				currentRow[col] = minFloat(currentRow[col], prevPrevRow[col-2]+1)
			}
		}

		rowMin := currentRow[0]
		for _, v := range currentRow {
			if v < rowMin {
				rowMin = v
			}
		}
		if rowMin > maxDistance {
			return
		}

		if node.isWord && currentRow[columns-1] <= maxDistance {
			out = append(out, SpellingSuggestion{
				Word:     string(prefix),
				Distance: currentRow[columns-1],
			})
		}

		for r, child := range node.children {
			descend(child, r, letter, append(append([]rune{}, prefix...), r), currentRow, prevRow)
		}
	}

	for r, child := range t.root.children {
		descend(child, r, 0, []rune{r}, firstRow, nil)
	}

	// attach entries (frequency) now that we know the winning words
	for i := range out {
		if entries := t.Get(out[i].Word); len(entries) > 0 {
			best := entries[0]
			for _, e := range entries[1:] {
				if e.Frequency > best.Frequency {
					best = e
				}
			}
			out[i].Frequency = best.Frequency
		}
	}
	return out
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// VerbFormRecognizer is the subset of verbs.Recognizer the spelling
// engine needs, kept as an interface here so this package does not
// import the verbs package directly (verbs imports this package for
// its Trie, so the reverse import would be a cycle).
type VerbFormRecognizer interface {
	IsValidVerbForm(word string) bool
}

// SpellingCorrector is the spelling-suggestion engine.
type SpellingCorrector struct {
	dictionary     *Trie
	properNames    *ProperNames
	customDict     *Trie
	verbRecognizer VerbFormRecognizer
	language       Language
	maxSuggestions int
	maxEditDistanceShort float64
	maxEditDistanceLong  float64
}

// NewSpellingCorrector builds a spelling engine over dictionary, with
// the default edit-distance budgets (2 for words of length >= 4, 1 for
// shorter words) and a default of 3 suggestions.
func NewSpellingCorrector(dictionary *Trie) *SpellingCorrector {
	return &SpellingCorrector{
		dictionary:           dictionary,
		maxSuggestions:       3,
		maxEditDistanceShort: 1,
		maxEditDistanceLong:  2,
	}
}

func (s *SpellingCorrector) WithProperNames(pn *ProperNames) *SpellingCorrector {
	s.properNames = pn
	return s
}

func (s *SpellingCorrector) WithCustomDictionary(d *Trie) *SpellingCorrector {
	s.customDict = d
	return s
}

func (s *SpellingCorrector) WithVerbRecognizer(r VerbFormRecognizer) *SpellingCorrector {
	s.verbRecognizer = r
	return s
}

func (s *SpellingCorrector) WithMaxSuggestions(n int) *SpellingCorrector {
	s.maxSuggestions = n
	return s
}

// WithMaxEditDistance overrides the long-word edit budget; the
// short-word budget stays at 1. Non-positive values keep the default.
func (s *SpellingCorrector) WithMaxEditDistance(d float64) *SpellingCorrector {
	if d > 0 {
		s.maxEditDistanceLong = d
	}
	return s
}

func (s *SpellingCorrector) WithLanguage(l Language) *SpellingCorrector {
	s.language = l
	return s
}

func (s *SpellingCorrector) maxDistanceFor(word string) float64 {
	if len([]rune(word)) >= 4 {
		return s.maxEditDistanceLong
	}
	return s.maxEditDistanceShort
}

// IsCorrect reports whether word is known: exact trie hit,
// plural-derivation hit, verb-recognizer hit, custom-dictionary hit,
// proper-name hit, elision hit, or a numeric pattern.
func (s *SpellingCorrector) IsCorrect(word string) bool {
	lower := strings.ToLower(word)

	if s.dictionary.Contains(lower) {
		return true
	}
	if s.customDict != nil && s.customDict.Contains(lower) {
		return true
	}
	if s.isCorrectElision(lower) {
		return true
	}
	if s.properNames != nil && s.properNames.Contains(word) {
		return true
	}
	if isNumericPattern(word) {
		return true
	}
	if s.language != nil && s.language.IsKnownAbbreviation(word) {
		return true
	}
	if s.derivePluralHit(lower) {
		return true
	}
	if s.verbRecognizer != nil && s.verbRecognizer.IsValidVerbForm(word) {
		return true
	}
	return false
}

func (s *SpellingCorrector) derivePluralHit(lower string) bool {
	for _, cand := range DepluralizeCandidates(lower) {
		entries := s.dictionary.Get(cand.Singular)
		for _, e := range entries {
			if e.IsInvariant() {
				continue
			}
			return true
		}
		if s.customDict != nil && s.customDict.Contains(cand.Singular) {
			return true
		}
	}
	return false
}

// isCorrectElision: "l'home" is correct if "l'" and "home" are each
// independently known.
func (s *SpellingCorrector) isCorrectElision(lower string) bool {
	for _, apos := range []rune{'\'', '’'} {
		idx := strings.IndexRune(lower, apos)
		if idx < 0 {
			continue
		}
		prefix := lower[:idx+len(string(apos))]
		suffix := lower[idx+len(string(apos)):]
		if suffix == "" {
			continue
		}
		if s.dictionary.Contains(prefix) && (s.dictionary.Contains(suffix) || len(DepluralizeCandidates(suffix)) > 0 && s.dictionary.Get(DepluralizeCandidates(suffix)[0].Singular) != nil) {
			return true
		}
	}
	return false
}

func isNumericPattern(word string) bool {
	if word == "" {
		return false
	}
	digits := 0
	for _, r := range word {
		if r >= '0' && r <= '9' {
			digits++
		} else if r != '.' && r != ',' && r != 'º' && r != 'ª' && r != '%' {
			return false
		}
	}
	return digits > 0
}

// Suggest returns ranked correction candidates for an unknown word.
// Ranking: (distance, -frequency, length-difference, lexicographic).
func (s *SpellingCorrector) Suggest(word string) []SpellingSuggestion {
	lower := strings.ToLower(word)
	if s.dictionary.Contains(lower) {
		return nil
	}

	maxDist := s.maxDistanceFor(lower)

	for _, apos := range []rune{'\'', '’'} {
		idx := strings.IndexRune(lower, apos)
		if idx < 0 {
			continue
		}
		prefix := lower[:idx+len(string(apos))]
		suffix := lower[idx+len(string(apos)):]
		if suffix == "" || !s.dictionary.Contains(prefix) {
			continue
		}
		suggestions := s.dictionary.SearchWithinDistance(suffix, maxDist)
		for i := range suggestions {
			suggestions[i].Word = prefix + suggestions[i].Word
		}
		return s.rankAndTruncate(suggestions, word)
	}

	suggestions := s.dictionary.SearchWithinDistance(lower, maxDist)
	return s.rankAndTruncate(suggestions, word)
}

func (s *SpellingCorrector) rankAndTruncate(suggestions []SpellingSuggestion, original string) []SpellingSuggestion {
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.Frequency != b.Frequency {
			return a.Frequency > b.Frequency
		}
		lenDiffA := absInt(len(a.Word) - len(original))
		lenDiffB := absInt(len(b.Word) - len(original))
		if lenDiffA != lenDiffB {
			return lenDiffA < lenDiffB
		}
		return a.Word < b.Word
	})

	if len(suggestions) > s.maxSuggestions {
		suggestions = suggestions[:s.maxSuggestions]
	}

	// Capitalization preservation: a leading-capitalized misspelling
	// yields leading-capitalized suggestions.
	if isLeadingCapitalized(original) {
		for i := range suggestions {
			suggestions[i].Word = capitalizeLeading(suggestions[i].Word)
		}
	}
	return suggestions
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func isLeadingCapitalized(s string) bool {
	r := []rune(s)
	return len(r) > 0 && strings.ToUpper(string(r[0])) == string(r[0]) && strings.ToLower(string(r[0])) != string(r[0])
}

func capitalizeLeading(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
