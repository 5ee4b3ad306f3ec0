package spanish

import "github.com/esgramatica/corrector"

// hasEarlierNegation reports whether "no" appears anywhere earlier in
// the current sentence, the syntactic signal that a following
// "sino"/"si no" is the adversative conjunction ("no es rojo, sino
// azul") rather than the conditional-plus-negation reading.
func hasEarlierNegation(tokens []corrector.Token, before int) bool {
	for j := before - 1; j >= 0; j-- {
		if tokens[j].IsSentenceBoundary() {
			return false
		}
		if tokens[j].Type == corrector.TokenWord && lower(tokens[j].Text) == "no" {
			return true
		}
	}
	return false
}

// applySino is phase 10: sino / si no, adversative conjunction vs
// conditional+negation. The substitutability test is approximated by
// the presence of an earlier negation in the same sentence, the
// condition under which "sino" reads naturally as "but rather".
func applySino(tokens []corrector.Token) {
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord {
			continue
		}
		word := lower(tokens[i].Text)

		if word == "sino" {
			if !hasEarlierNegation(tokens, i) {
				annotateGrammar(tokens, i, RuleSino, "si no")
			}
			continue
		}
		if word == "si" {
			nextIdx := nextWordIndex(tokens, i+1)
			if nextIdx < 0 || lower(tokens[nextIdx].Text) != "no" {
				continue
			}
			if hasEarlierNegation(tokens, i) {
				annotateGrammar(tokens, i, RuleSino, "sino")
				annotateDeletion(tokens, nextIdx, RuleSino)
			}
		}
	}
}
