package spanish

import (
	"strings"
	"unicode"

	"github.com/esgramatica/corrector"
)

func capitalizeFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// applyCapitalization is phase 6: at a sentence start (the first word,
// or the first word after ".", "!" or "?"), a lowercase word that
// already carries a grammar replacement has that replacement's first
// letter capitalized. A lowercase sentence-start word with no other
// grammar annotation is not flagged.
func applyCapitalization(tokens []corrector.Token) {
	expectCapital := true
	for i := range tokens {
		t := &tokens[i]
		switch t.Type {
		case corrector.TokenWhitespace:
			continue
		case corrector.TokenPunctuation:
			if t.IsSentenceBoundary() {
				expectCapital = true
			}
			continue
		case corrector.TokenWord, corrector.TokenMixed:
			if expectCapital {
				r := []rune(t.Text)
				if len(r) > 0 && unicode.IsLower(r[0]) {
					corrected := capitalizeFirst(t.Text)
					if t.Grammar != nil {
						t.Grammar.Replacement = capitalizeFirst(t.Grammar.Replacement)
					} else if !strings.EqualFold(corrected, t.Text) {
						annotateGrammar(tokens, i, RuleCapitalization, corrected)
					}
				}
			}
			expectCapital = false
		default:
			expectCapital = false
		}
	}
}
