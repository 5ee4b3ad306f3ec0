package spanish

import (
	"github.com/esgramatica/corrector"
	"github.com/esgramatica/corrector/verbs"
)

// buildTestDict returns a trie with the given entries, one word per
// call, for use across the phase test files.
func buildTestDict(entries ...corrector.Entry) *corrector.Trie {
	trie := corrector.NewTrie()
	for _, e := range entries {
		trie.Insert(e.Lemma, e)
	}
	return trie
}

func verb(lemma string) corrector.Entry {
	return corrector.Entry{Lemma: lemma, Category: corrector.CategoryVerbo, Frequency: 100}
}

func noun(lemma string, gender corrector.Gender, number corrector.Number) corrector.Entry {
	return corrector.Entry{Lemma: lemma, Category: corrector.CategorySustantivo, Gender: gender, Number: number, Frequency: 100}
}

func tokenize(text string) []corrector.Token {
	return corrector.NewTokenizer().Tokenize(text)
}

func renderedOf(tokens []corrector.Token) []string {
	out := make([]string, len(tokens))
	for i := range tokens {
		out[i] = corrector.Render(tokens[i : i+1])
	}
	return out
}

func grammarAt(tokens []corrector.Token, word string) *corrector.GrammarAnnotation {
	for i := range tokens {
		if tokens[i].Text == word {
			return tokens[i].Grammar
		}
	}
	return nil
}

func newRecognizer(dict *corrector.Trie) corrector.VerbFormRecognizer {
	return verbs.NewRecognizer(dict)
}
