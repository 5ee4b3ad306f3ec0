package spanish

import (
	"strings"

	"github.com/esgramatica/corrector"
)

// diacriticPair is one entry of the closed accent-homophone table.
// decide inspects the sentence around idx and returns the surface form
// that belongs there, or "" when the context does not confidently
// disambiguate, in which case the token is left unchanged.
type diacriticPair struct {
	plain, accented string
	decide          func(tokens []corrector.Token, verbRecognizer corrector.VerbFormRecognizer, idx int) string
}

func nextWordText(tokens []corrector.Token, from int) string {
	i := nextWordIndex(tokens, from)
	if i < 0 {
		return ""
	}
	return lower(tokens[i].Text)
}

func prevWordText(tokens []corrector.Token, from int) string {
	i := prevWordIndex(tokens, from)
	if i < 0 {
		return ""
	}
	return lower(tokens[i].Text)
}

var prepositions = map[string]bool{
	"a": true, "de": true, "para": true, "por": true, "sin": true, "con": true, "según": true, "entre": true,
}

// diacriticPairs is a representative subset of the closed table (a
// hand-picked slice of the highest-frequency confusable pairs, in the
// texture of the irregular-verb and dequeísmo tables elsewhere in this
// package, rather than an attempt at all ~40 RAE-listed pairs).
var diacriticPairs = []diacriticPair{
	{"tu", "tú", func(tokens []corrector.Token, vr corrector.VerbFormRecognizer, idx int) string {
		next := nextWordText(tokens, idx+1)
		if _, isVerb := recognizeVerb(vr, next); isVerb {
			return "tú"
		}
		return "tu"
	}},
	{"el", "él", func(tokens []corrector.Token, vr corrector.VerbFormRecognizer, idx int) string {
		next := nextWordText(tokens, idx+1)
		if next == "" {
			return "él"
		}
		if _, isVerb := recognizeVerb(vr, next); isVerb {
			return "él"
		}
		return ""
	}},
	{"mi", "mí", func(tokens []corrector.Token, vr corrector.VerbFormRecognizer, idx int) string {
		prev := prevWordText(tokens, idx-1)
		if prepositions[prev] {
			return "mí"
		}
		return "mi"
	}},
	{"se", "sé", func(tokens []corrector.Token, vr corrector.VerbFormRecognizer, idx int) string {
		prev := prevWordText(tokens, idx-1)
		if prev == "yo" {
			return "sé"
		}
		return "se"
	}},
	{"te", "té", func(tokens []corrector.Token, vr corrector.VerbFormRecognizer, idx int) string {
		prev := prevWordText(tokens, idx-1)
		if prev == "el" || prev == "un" || prev == "del" {
			return "té"
		}
		return "te"
	}},
	{"de", "dé", func(tokens []corrector.Token, vr corrector.VerbFormRecognizer, idx int) string {
		next := nextWordText(tokens, idx+1)
		if next == "que" {
			return "dé"
		}
		return "de"
	}},
	{"mas", "más", func(tokens []corrector.Token, vr corrector.VerbFormRecognizer, idx int) string {
		prev := prevWordText(tokens, idx-1)
		if prev == "," {
			return ""
		}
		return "más"
	}},
	{"si", "sí", func(tokens []corrector.Token, vr corrector.VerbFormRecognizer, idx int) string {
		next := nextWordText(tokens, idx+1)
		if next == "" {
			return "sí"
		}
		return ""
	}},
}

// pairsIndex maps every surface form (accented or not) back to its table
// entry, built once.
var pairsIndex = buildPairsIndex()

func buildPairsIndex() map[string]diacriticPair {
	out := map[string]diacriticPair{}
	for _, p := range diacriticPairs {
		out[p.plain] = p
		out[p.accented] = p
	}
	return out
}

// applyDiacriticHomophones is phase 5.
func applyDiacriticHomophones(tokens []corrector.Token, verbRecognizer corrector.VerbFormRecognizer, properNames *corrector.ProperNames) {
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord {
			continue
		}
		lowerText := lower(tokens[i].Text)
		pair, ok := pairsIndex[lowerText]
		if !ok {
			continue
		}
		if properNames != nil && properNames.ContainsIgnoreCase(tokens[i].Text) {
			continue
		}
		correct := pair.decide(tokens, verbRecognizer, i)
		if correct == "" || strings.EqualFold(correct, tokens[i].Text) {
			continue
		}
		annotateGrammar(tokens, i, RuleDiacriticHomophones, correct)
	}
}

