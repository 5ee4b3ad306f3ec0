package spanish

import (
	"github.com/esgramatica/corrector"
	"github.com/esgramatica/corrector/verbs"
)

// applyInfinitiveAsImperative is phase 26: a bare infinitive used as a
// command ("¡Callar!") is colloquial for the vosotros imperative
// ("¡Callad!").
func applyInfinitiveAsImperative(tokens []corrector.Token, verbRecognizer corrector.VerbFormRecognizer) {
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord || !verbs.IsInfinitive(lower(tokens[i].Text)) {
			continue
		}
		if res, ok := recognizeVerb(verbRecognizer, tokens[i].Text); ok && res.Mood != verbs.MoodInfinitivo {
			continue // a recognized conjugated form, not a bare infinitive
		}
		excIdx := i + 1
		for excIdx < len(tokens) && tokens[excIdx].Type == corrector.TokenWhitespace {
			excIdx++
		}
		if excIdx >= len(tokens) || tokens[excIdx].Type != corrector.TokenPunctuation || tokens[excIdx].Text != "!" {
			continue
		}
		imperative, ok := verbs.ImperativeVosotros(lower(tokens[i].Text))
		if !ok {
			continue
		}
		annotateGrammar(tokens, i, RuleInfinitiveAsImperative, imperative)
	}
}
