package spanish

import "github.com/esgramatica/corrector"

var greetingOpeners = map[string]bool{
	"hola": true, "buenos": true, "buenas": true, "gracias": true,
	"adiós": true, "oye": true, "perdona": true, "disculpa": true, "chao": true,
}

// applyVocativeCommas is phase 13: greeting/address patterns need a
// comma before the addressed name ("Hola, María", not "Hola María").
func applyVocativeCommas(tokens []corrector.Token, properNames *corrector.ProperNames) {
	if properNames == nil || properNames.IsEmpty() {
		return
	}
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord || !greetingOpeners[lower(tokens[i].Text)] {
			continue
		}
		nameIdx := i + 1
		for nameIdx < len(tokens) && tokens[nameIdx].Type == corrector.TokenWhitespace {
			nameIdx++
		}
		if nameIdx >= len(tokens) || tokens[nameIdx].Type != corrector.TokenWord {
			continue
		}
		// a second common-noun word ("días", "tardes") between the
		// opener and the name is part of the greeting itself, not the
		// addressee; skip over exactly one such word.
		if !properNames.ContainsIgnoreCase(tokens[nameIdx].Text) {
			nameIdx++
			for nameIdx < len(tokens) && tokens[nameIdx].Type == corrector.TokenWhitespace {
				nameIdx++
			}
		}
		if nameIdx >= len(tokens) || tokens[nameIdx].Type != corrector.TokenWord {
			continue
		}
		if !properNames.ContainsIgnoreCase(tokens[nameIdx].Text) {
			continue
		}
		annotateInsertBefore(tokens, nameIdx, RuleVocativeComma, ",")
	}
}
