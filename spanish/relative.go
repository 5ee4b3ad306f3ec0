package spanish

import (
	"strings"

	"github.com/esgramatica/corrector"
	"github.com/esgramatica/corrector/verbs"
)

// applyRelativeClauseAgreement is phase 20: a verb in a relative clause
// introduced by "que" agrees in number with its antecedent noun ("los
// libros que compré" vs "los libros que compraste"; here the concern is
// number only: "el niño que juegan" should read "el niño que juega").
func applyRelativeClauseAgreement(tokens []corrector.Token, dict *corrector.Trie, verbRecognizer corrector.VerbFormRecognizer) {
	if verbRecognizer == nil {
		return
	}
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord || lower(tokens[i].Text) != "que" {
			continue
		}
		anteIdx := prevWordIndex(tokens, i-1)
		if anteIdx < 0 {
			continue
		}
		entries := wordEntries(tokens, dict, anteIdx)
		ante, ok := firstOfCategory(entries, corrector.CategorySustantivo)
		if !ok || ante.Number == corrector.NumberNone || ante.Number == corrector.NumberInvariant {
			continue
		}
		verbIdx := nextWordIndex(tokens, i+1)
		if verbIdx < 0 {
			continue
		}
		res, ok := recognizeVerb(verbRecognizer, tokens[verbIdx].Text)
		if !ok {
			continue
		}
		wantNumber := numberFromDict(ante.Number)
		if res.Number == wantNumber {
			continue
		}
		slot := verbs.Slot{Tense: res.Tense, Mood: res.Mood, Person: res.Person, Number: wantNumber}
		corrected, ok := verbs.ConjugateRegular(res.Lemma, slot)
		if !ok || strings.EqualFold(corrected, tokens[verbIdx].Text) {
			continue
		}
		annotateGrammar(tokens, verbIdx, RuleRelativeClauseAgreement, corrected)
	}
}
