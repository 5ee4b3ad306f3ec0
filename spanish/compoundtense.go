package spanish

import "github.com/esgramatica/corrector"

// irregularParticiples maps a regularized-but-wrong participle spelling
// to the correct irregular one, covering the common irregular
// participles and their prefixed derivatives.
var irregularParticiples = map[string]string{
	"escribido": "escrito", "describido": "descrito", "inscribido": "inscrito",
	"suscribido": "suscrito", "transcribido": "transcrito",
	"rompido": "roto", "freido": "frito", "imprimido": "impreso",
	"proveido": "provisto", "prevido": "previsto", "entrevido": "entrevisto",
	"resolvido": "resuelto", "disolvido": "disuelto",
	"volvido": "vuelto", "devolvido": "devuelto", "envolvido": "envuelto",
	"revolvido": "revuelto",
	"abrido": "abierto", "reabrido": "reabierto",
	"cubrido": "cubierto", "descubrido": "descubierto", "encubrido": "encubierto",
	"recubrido": "recubierto",
	"ponido": "puesto", "componido": "compuesto", "disponido": "dispuesto",
	"exponido": "expuesto", "imponido": "impuesto", "oponido": "opuesto",
	"proponido": "propuesto", "suponido": "supuesto",
	"morido": "muerto", "vido": "visto",
	"decido": "dicho", "contradecido": "contradicho", "predecido": "predicho",
	"hacido": "hecho", "deshacido": "deshecho", "rehacido": "rehecho",
	"satisfacido": "satisfecho",
}

// applyCompoundParticiples is phase 14: after a conjugated haber,
// require the correct participle.
func applyCompoundParticiples(tokens []corrector.Token, verbRecognizer corrector.VerbFormRecognizer) {
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord {
			continue
		}
		if !isHaberAuxiliary(tokens[i].Text, verbRecognizer) {
			continue
		}
		partIdx := nextWordIndex(tokens, i+1)
		if partIdx < 0 {
			continue
		}
		if correct, ok := irregularParticiples[lower(tokens[partIdx].Text)]; ok {
			annotateGrammar(tokens, partIdx, RuleCompoundParticiple, correct)
		}
	}
}

func isHaberAuxiliary(word string, verbRecognizer corrector.VerbFormRecognizer) bool {
	if haberAuxForms[lower(word)] {
		return true
	}
	l := lower(word)
	switch l {
	case "había", "habías", "habíamos", "habíais", "habían", "hube", "hubo", "hubimos", "hubisteis", "hubieron", "habré", "habrás", "habrá", "habremos", "habréis", "habrán":
		return true
	}
	return false
}
