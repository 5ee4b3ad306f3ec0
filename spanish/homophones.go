package spanish

import "github.com/esgramatica/corrector"

var haberAuxForms = map[string]bool{
	"he": true, "has": true, "ha": true, "hemos": true, "habéis": true, "han": true,
}

func endsLikeParticiple(word string) bool {
	l := lower(word)
	for _, suf := range []string{"ado", "ido", "to", "so", "cho"} {
		if len(l) > len(suf) && l[len(l)-len(suf):] == suf {
			return true
		}
	}
	return false
}

// applyHomophoneConfusables is phase 8: haber/a ver, hecho/echo,
// tubo/tuvo, haya/halla/allá, ha/a, ay/ahí/hay. A representative
// heuristic per pair, not a full syntactic disambiguator.
func applyHomophoneConfusables(tokens []corrector.Token) {
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord {
			continue
		}
		word := lower(tokens[i].Text)
		prev := prevWordText(tokens, i-1)
		next := nextWordText(tokens, i+1)

		switch word {
		case "haber":
			if prev == "vamos" || prev == "voy" || prev == "iban" || prev == "vais" {
				annotateGrammar(tokens, i, RuleHomophoneConfusables, "a ver")
			}
		case "echo":
			if haberAuxForms[prev] {
				annotateGrammar(tokens, i, RuleHomophoneConfusables, "hecho")
			}
		case "hecho":
			if prev == "yo" {
				annotateGrammar(tokens, i, RuleHomophoneConfusables, "echo")
			}
		case "tubo":
			if next == "que" {
				annotateGrammar(tokens, i, RuleHomophoneConfusables, "tuvo")
			}
		case "tuvo":
			if prev == "el" || prev == "un" || prev == "del" {
				annotateGrammar(tokens, i, RuleHomophoneConfusables, "tubo")
			}
		case "halla":
			if prev == "que" {
				annotateGrammar(tokens, i, RuleHomophoneConfusables, "haya")
			}
		case "haya":
			if prev == "se" {
				annotateGrammar(tokens, i, RuleHomophoneConfusables, "halla")
			}
		}
	}
}
