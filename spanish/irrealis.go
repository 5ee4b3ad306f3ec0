package spanish

import (
	"github.com/esgramatica/corrector"
	"github.com/esgramatica/corrector/verbs"
)

// applyCounterfactualConditional is phase 18: a "si" clause never takes
// the conditional mood in standard usage ("si tendría dinero" should
// read "si tuviera dinero"); the protasis wants the imperfect
// subjunctive instead.
func applyCounterfactualConditional(tokens []corrector.Token, verbRecognizer corrector.VerbFormRecognizer) {
	if verbRecognizer == nil {
		return
	}
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord || lower(tokens[i].Text) != "si" {
			continue
		}
		verbIdx := nextWordIndex(tokens, i+1)
		if verbIdx < 0 {
			continue
		}
		result, ok := recognizeVerb(verbRecognizer, tokens[verbIdx].Text)
		if !ok || result.Mood != verbs.MoodIndicativo || result.Tense != verbs.TenseCondicional {
			continue
		}
		replacement, ok := verbs.ConjugateImperfectSubjunctive(result.Lemma, result.Person, result.Number)
		if !ok {
			continue
		}
		annotateGrammar(tokens, verbIdx, RuleCounterfactualConditional, replacement)
	}
}
