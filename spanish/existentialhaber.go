package spanish

import "github.com/esgramatica/corrector"

var definiteToIndefinite = map[string]string{"el": "un", "la": "una", "los": "unos", "las": "unas"}

// applyExistentialHaberArticle is phase 17: existential "hay" takes an
// indefinite article, never a definite one ("hay el problema" reads
// wrong; "hay un problema" is the existential construction).
func applyExistentialHaberArticle(tokens []corrector.Token) {
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord || lower(tokens[i].Text) != "hay" {
			continue
		}
		artIdx := nextWordIndex(tokens, i+1)
		if artIdx < 0 {
			continue
		}
		indef, ok := definiteToIndefinite[lower(tokens[artIdx].Text)]
		if !ok {
			continue
		}
		annotateGrammar(tokens, artIdx, RuleExistentialHaberArticle, indef)
	}
}
