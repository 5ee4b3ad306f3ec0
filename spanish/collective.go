package spanish

import (
	"strings"

	"github.com/esgramatica/corrector"
	"github.com/esgramatica/corrector/verbs"
)

// collectiveNouns take a grammatically singular verb even though they
// denote a plurality ("la gente piensa", not "la gente piensan"). A
// representative subset.
var collectiveNouns = map[string]bool{
	"gente": true, "mayoría": true, "grupo": true, "equipo": true,
	"público": true, "multitud": true, "mitad": true, "resto": true,
}

// applyCollectiveNounAgreement is phase 19.
func applyCollectiveNounAgreement(tokens []corrector.Token, dict *corrector.Trie, verbRecognizer corrector.VerbFormRecognizer) {
	if verbRecognizer == nil {
		return
	}
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord || !collectiveNouns[lower(tokens[i].Text)] {
			continue
		}
		verbIdx := nextWordIndex(tokens, i+1)
		if verbIdx < 0 {
			continue
		}
		res, ok := recognizeVerb(verbRecognizer, tokens[verbIdx].Text)
		if !ok || res.Number == verbs.VerbSingular {
			continue
		}
		slot := verbs.Slot{Tense: res.Tense, Mood: res.Mood, Person: verbs.PersonThird, Number: verbs.VerbSingular}
		corrected, ok := verbs.ConjugateRegular(res.Lemma, slot)
		if !ok || strings.EqualFold(corrected, tokens[verbIdx].Text) {
			continue
		}
		annotateGrammar(tokens, verbIdx, RuleCollectiveNounAgreement, corrected)
	}
}
