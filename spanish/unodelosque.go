package spanish

import (
	"strings"

	"github.com/esgramatica/corrector"
	"github.com/esgramatica/corrector/verbs"
)

// applyUnoDeLosQue is phase 21: "uno de los que" / "una de las que"
// governs a plural, third-person verb in the relative clause it
// introduces ("uno de los que más me gustan", not "... más me gusta"),
// the classic exception to naive nearest-noun agreement.
func applyUnoDeLosQue(tokens []corrector.Token, verbRecognizer corrector.VerbFormRecognizer) {
	if verbRecognizer == nil {
		return
	}
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord {
			continue
		}
		w := lower(tokens[i].Text)
		if w != "uno" && w != "una" {
			continue
		}
		deIdx := nextWordIndex(tokens, i+1)
		if deIdx < 0 || lower(tokens[deIdx].Text) != "de" {
			continue
		}
		artIdx := nextWordIndex(tokens, deIdx+1)
		if artIdx < 0 {
			continue
		}
		art := lower(tokens[artIdx].Text)
		if art != "los" && art != "las" {
			continue
		}
		queIdx := nextWordIndex(tokens, artIdx+1)
		if queIdx < 0 || lower(tokens[queIdx].Text) != "que" {
			continue
		}
		verbIdx := nextVerbAfter(tokens, queIdx+1, nil, verbRecognizer)
		if verbIdx < 0 {
			continue
		}
		res, ok := recognizeVerb(verbRecognizer, tokens[verbIdx].Text)
		if !ok || res.Number == verbs.VerbPlural && res.Person == verbs.PersonThird {
			continue
		}
		slot := verbs.Slot{Tense: res.Tense, Mood: res.Mood, Person: verbs.PersonThird, Number: verbs.VerbPlural}
		corrected, ok := verbs.ConjugateRegular(res.Lemma, slot)
		if !ok || strings.EqualFold(corrected, tokens[verbIdx].Text) {
			continue
		}
		annotateGrammar(tokens, verbIdx, RuleUnoDeLosQue, corrected)
	}
}
