package spanish

import "github.com/esgramatica/corrector"

// applyPairedPunctuation is phase 7: every "?" needs a matching "¿" and
// every "!" a matching "¡"; a missing opener is inserted at clause
// start (heuristic: previous comma or sentence start).
func applyPairedPunctuation(tokens []corrector.Token) {
	clauseStart := 0
	openQuestion := false
	openExclaim := false

	for i := range tokens {
		t := &tokens[i]
		switch {
		case t.Type == corrector.TokenInvertedQuestion:
			openQuestion = true
		case t.Type == corrector.TokenInvertedExclaim:
			openExclaim = true
		case t.Type == corrector.TokenPunctuation && t.Text == "?":
			if !openQuestion {
				annotateInsertBefore(tokens, clauseStart, RulePairedPunctuation, "¿")
			}
			openQuestion = false
		case t.Type == corrector.TokenPunctuation && t.Text == "!":
			if !openExclaim {
				annotateInsertBefore(tokens, clauseStart, RulePairedPunctuation, "¡")
			}
			openExclaim = false
		case t.Type == corrector.TokenPunctuation && t.Text == ",":
			clauseStart = i + 1
			openQuestion = false
			openExclaim = false
		case t.IsSentenceBoundary():
			clauseStart = i + 1
			openQuestion = false
			openExclaim = false
		}
	}
}
