package spanish

import "github.com/esgramatica/corrector"

// fossilizedPrepositions replaces a bureaucratic multi-word preposition
// with its plain equivalent, keyed by the lowercased phrase words in
// order. A curated, representative subset.
var fossilizedPrepositions = []struct {
	phrase      []string
	replacement string
}{
	{[]string{"en", "base", "a"}, "con base en"},
	{[]string{"a", "nivel", "de"}, "en el nivel de"},
	{[]string{"de", "acuerdo", "a"}, "de acuerdo con"},
	{[]string{"bajo", "el", "punto", "de", "vista", "de"}, "desde el punto de vista de"},
}

// matchWords returns the indices of n consecutive word tokens starting
// at or after from (skipping whitespace/punctuation between them) whose
// lowercased text equals words, or nil if they don't match.
func matchWords(tokens []corrector.Token, from int, words []string) []int {
	idxs := make([]int, 0, len(words))
	pos := from
	for _, w := range words {
		idx := nextWordIndex(tokens, pos)
		if idx < 0 || lower(tokens[idx].Text) != w {
			return nil
		}
		idxs = append(idxs, idx)
		pos = idx + 1
	}
	return idxs
}

// applyFossilizedPrepositions is phase 23.
func applyFossilizedPrepositions(tokens []corrector.Token) {
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord {
			continue
		}
		for _, fp := range fossilizedPrepositions {
			if lower(tokens[i].Text) != fp.phrase[0] {
				continue
			}
			idxs := matchWords(tokens, i, fp.phrase)
			if idxs == nil {
				continue
			}
			annotateGrammar(tokens, idxs[0], RuleFossilizedPreposition, fp.replacement)
			for _, idx := range idxs[1:] {
				annotateDeletion(tokens, idx, RuleFossilizedPreposition)
			}
			break
		}
	}
}
