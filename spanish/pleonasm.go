package spanish

import "github.com/esgramatica/corrector"

// redundantAdverbAfterVerb pairs a verb whose meaning already includes a
// direction/place with the adverb redundantly repeating it ("subir
// arriba", "entrar dentro"). A curated, representative subset.
var redundantAdverbAfterVerb = map[string]string{
	"subir": "arriba", "bajar": "abajo", "entrar": "dentro",
	"salir": "fuera", "volver": "atrás",
}

// applyPleonasms is phase 22.
func applyPleonasms(tokens []corrector.Token) {
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord {
			continue
		}
		lemma := lower(tokens[i].Text)

		if adverb, ok := redundantAdverbAfterVerb[lemma]; ok {
			advIdx := nextWordIndex(tokens, i+1)
			if advIdx >= 0 && lower(tokens[advIdx].Text) == adverb {
				annotateDeletion(tokens, advIdx, RulePleonasm)
			}
		}

		if lemma == "lapso" {
			deIdx := nextWordIndex(tokens, i+1)
			if deIdx < 0 || lower(tokens[deIdx].Text) != "de" {
				continue
			}
			tiempoIdx := nextWordIndex(tokens, deIdx+1)
			if tiempoIdx < 0 || lower(tokens[tiempoIdx].Text) != "tiempo" {
				continue
			}
			annotateDeletion(tokens, deIdx, RulePleonasm)
			annotateDeletion(tokens, tiempoIdx, RulePleonasm)
		}
	}
}
