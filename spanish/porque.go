package spanish

import "github.com/esgramatica/corrector"

// insideOpenQuestion reports whether idx falls inside an unclosed "¿ …
// ?" span of the current clause, scanning back to the nearest sentence
// boundary.
func insideOpenQuestion(tokens []corrector.Token, idx int) bool {
	for j := idx - 1; j >= 0; j-- {
		if tokens[j].IsSentenceBoundary() {
			return false
		}
		if tokens[j].Type == corrector.TokenInvertedQuestion {
			return true
		}
	}
	return false
}

var determinerLikeBeforePorque = map[string]bool{
	"el": true, "un": true, "su": true, "este": true, "ese": true, "aquel": true, "mi": true, "tu": true,
}

// applyPorque is phase 9: porque / por qué / porqué / por que, a
// four-way disambiguation by sentence mood and syntactic role.
func applyPorque(tokens []corrector.Token) {
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord {
			continue
		}
		word := lower(tokens[i].Text)

		switch word {
		case "por":
			nextIdx := nextWordIndex(tokens, i+1)
			if nextIdx < 0 || lower(tokens[nextIdx].Text) != "que" {
				continue
			}
			if insideOpenQuestion(tokens, i) {
				annotateGrammar(tokens, nextIdx, RulePorque, "qué")
			} else {
				annotateGrammar(tokens, i, RulePorque, "porque")
				annotateDeletion(tokens, nextIdx, RulePorque)
			}
		case "porque":
			if insideOpenQuestion(tokens, i) {
				annotateGrammar(tokens, i, RulePorque, "por qué")
			}
		case "porqué":
			prev := prevWordText(tokens, i-1)
			if !determinerLikeBeforePorque[prev] {
				annotateGrammar(tokens, i, RulePorque, "porque")
			}
		}
	}
}
