package spanish

import "github.com/esgramatica/corrector"

var temporalNouns = map[string]bool{
	"años": true, "meses": true, "días": true, "horas": true,
	"semanas": true, "minutos": true, "siglos": true, "segundos": true,
}

// applyImpersonalHacer is phase 16: the impersonal temporal "hacer"
// ("hace tres años") never agrees in number with the quantity that
// follows it ("hacen tres años" is wrong).
func applyImpersonalHacer(tokens []corrector.Token, verbRecognizer corrector.VerbFormRecognizer) {
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord || lower(tokens[i].Text) != "hacen" {
			continue
		}
		quantIdx := nextWordIndex(tokens, i+1)
		if quantIdx < 0 {
			continue
		}
		nounIdx := quantIdx
		if !temporalNouns[lower(tokens[quantIdx].Text)] {
			nounIdx = nextWordIndex(tokens, quantIdx+1)
			if nounIdx < 0 || !temporalNouns[lower(tokens[nounIdx].Text)] {
				continue
			}
		}
		annotateGrammar(tokens, i, RuleImpersonalHacer, "hace")
	}
}
