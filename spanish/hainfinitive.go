package spanish

import (
	"github.com/esgramatica/corrector"
	"github.com/esgramatica/corrector/verbs"
)

// applyHaBeforeInfinitive is phase 24: "ha" (haber) is a homophone of
// the preposition "a", and only the latter licenses a following
// infinitive ("ha comer" should read "a comer"); "ha" followed by a
// participle is the legitimate perfect auxiliary and is left alone.
func applyHaBeforeInfinitive(tokens []corrector.Token) {
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord || lower(tokens[i].Text) != "ha" {
			continue
		}
		nextIdx := nextWordIndex(tokens, i+1)
		if nextIdx < 0 {
			continue
		}
		word := lower(tokens[nextIdx].Text)
		if endsLikeParticiple(word) {
			continue
		}
		if !verbs.IsInfinitive(word) {
			continue
		}
		annotateGrammar(tokens, i, RuleHaBeforeInfinitive, "a")
	}
}
