package spanish

import "github.com/esgramatica/corrector"

// posteriorGerunds are commonly misused to describe a consequence that
// happened after the main clause's action rather than simultaneously
// with it ("se cayó, provocando el choque" reads naturally only when
// the fall and the crash are near-simultaneous; used for a later event
// it is the posterior-gerund error). A curated, representative subset.
var posteriorGerunds = map[string]bool{
	"provocando": true, "ocasionando": true, "resultando": true,
	"causando": true, "originando": true,
}

// applyPosteriorGerund is phase 25: flags rather than corrects, since
// the fix requires restructuring the sentence, which is out of scope
// for a token-level annotation.
func applyPosteriorGerund(tokens []corrector.Token, verbRecognizer corrector.VerbFormRecognizer) {
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord || !posteriorGerunds[lower(tokens[i].Text)] {
			continue
		}
		foundComma := false
		for j := i - 1; j >= 0; j-- {
			if tokens[j].Type == corrector.TokenWord {
				break
			}
			if tokens[j].Type == corrector.TokenPunctuation && tokens[j].Text == "," {
				foundComma = true
				break
			}
		}
		if !foundComma {
			continue
		}
		verbIdx := prevWordIndex(tokens, i-1)
		if verbIdx < 0 {
			continue
		}
		if _, ok := recognizeVerb(verbRecognizer, tokens[verbIdx].Text); !ok {
			continue
		}
		annotateGrammar(tokens, i, RulePosteriorGerund, "considere si la acción es simultánea o posterior")
	}
}
