package spanish

import "github.com/esgramatica/corrector"

// impersonalHaberPlural corrects the impersonal "haber" of existence
// (hay, había...) mistakenly pluralized to agree with its complement
// ("habían muchas personas" -> "había muchas personas").
var impersonalHaberPlural = map[string]string{
	"habían": "había", "hubieron": "hubo", "habemos": "hay",
	"habrán": "habrá", "habrían": "habría",
}

// applyImpersonalHaber is phase 15. A pluralized impersonal form
// followed by a participle is the legitimate pluperfect/compound-tense
// auxiliary ("habían llegado"), not the existential error, so it is
// left alone.
func applyImpersonalHaber(tokens []corrector.Token, verbRecognizer corrector.VerbFormRecognizer) {
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord {
			continue
		}
		singular, ok := impersonalHaberPlural[lower(tokens[i].Text)]
		if !ok {
			continue
		}
		nextIdx := nextWordIndex(tokens, i+1)
		if nextIdx >= 0 && endsLikeParticiple(tokens[nextIdx].Text) {
			continue
		}
		annotateGrammar(tokens, i, RuleImpersonalHaber, singular)
	}
}
