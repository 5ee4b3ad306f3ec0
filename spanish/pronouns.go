package spanish

import "github.com/esgramatica/corrector"

// dativeOnlyVerbs never take la/lo/los/las as a clitic: decir, dar and
// similar verbs take an indirect object, so "la dije" (laísmo) and "lo
// dije la verdad" (loísmo) should both read "le dije". A representative
// subset, not a full transitivity lexicon.
var dativeOnlyVerbs = map[string]bool{
	"decir": true, "dar": true, "entregar": true, "mandar": true,
	"enviar": true, "gustar": true, "parecer": true, "molestar": true,
	"preguntar": true, "responder": true, "contestar": true,
}

var cliticToDative = map[string]string{"la": "le", "lo": "le", "las": "les", "los": "les"}

// applyPronounCase is phase 12: laísmo/leísmo/loísmo, detected here via
// clitic-before-dative-only-verb rather than full referent-gender
// tracking.
func applyPronounCase(tokens []corrector.Token, dict *corrector.Trie, verbRecognizer corrector.VerbFormRecognizer) {
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord {
			continue
		}
		dative, isClitic := cliticToDative[lower(tokens[i].Text)]
		if !isClitic {
			continue
		}
		verbIdx := nextWordIndex(tokens, i+1)
		if verbIdx < 0 {
			continue
		}
		lemma := verbLemma(tokens[verbIdx].Text, dict, verbRecognizer)
		if lemma == "" {
			if entries := wordEntries(tokens, dict, verbIdx); len(entries) > 0 {
				if e, ok := firstOfCategory(entries, corrector.CategoryVerbo); ok {
					lemma = e.Lemma
				}
			}
		}
		if !dativeOnlyVerbs[lemma] {
			continue
		}
		annotateGrammar(tokens, i, RuleLaismoLeismoLoismo, dative)
	}
}
