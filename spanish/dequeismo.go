package spanish

import "github.com/esgramatica/corrector"

// dequeismoVerbs take a bare "que" complement; prefixing it with "de"
// is the dequeísmo error ("pienso de que" -> "pienso que"). A curated,
// representative subset of the governing-verb list, not an attempt at
// full coverage.
var dequeismoVerbs = map[string]bool{
	"pensar": true, "decir": true, "creer": true, "opinar": true,
	"sugerir": true, "comentar": true, "suponer": true, "imaginar": true,
	"afirmar": true, "considerar": true,
}

// queismoVerbs require the "de que" complement; dropping the "de" is
// the queísmo error ("me acuerdo que" -> "me acuerdo de que").
var queismoVerbs = map[string]bool{
	"acordarse": true, "alegrarse": true, "arrepentirse": true,
	"enterarse": true, "olvidarse": true, "tratarse": true, "darse": true,
}

// applyDequeismo is phase 11.
func applyDequeismo(tokens []corrector.Token, dict *corrector.Trie, verbRecognizer corrector.VerbFormRecognizer) {
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord {
			continue
		}
		lemma := verbLemma(tokens[i].Text, dict, verbRecognizer)
		if lemma == "" {
			continue
		}

		if dequeismoVerbs[lemma] {
			deIdx := nextWordIndex(tokens, i+1)
			if deIdx >= 0 && lower(tokens[deIdx].Text) == "de" {
				queIdx := nextWordIndex(tokens, deIdx+1)
				if queIdx >= 0 && lower(tokens[queIdx].Text) == "que" {
					annotateDeletion(tokens, deIdx, RuleDequeismo)
				}
			}
		}
		// the queísmo table keys pronominal lemmas ("acordarse"); the
		// recognizer hands back the bare infinitive, so both spellings
		// are checked.
		if queismoVerbs[lemma] || queismoVerbs[lemma+"se"] {
			queIdx := nextWordIndex(tokens, i+1)
			if queIdx >= 0 && lower(tokens[queIdx].Text) == "que" {
				annotateInsertBefore(tokens, queIdx, RuleDequeismo, "de")
			}
		}
	}
}

// verbLemma resolves word to a verb lemma: an exact dictionary hit, an
// exact match against the governing tables (which key infinitives), or
// a recognizer unmake of a conjugated form ("pienso" -> "pensar").
func verbLemma(word string, dict *corrector.Trie, vr corrector.VerbFormRecognizer) string {
	l := lower(word)
	if dict != nil {
		for _, e := range dict.Get(l) {
			if e.Category == corrector.CategoryVerbo {
				return l
			}
		}
	}
	if dequeismoVerbs[l] || queismoVerbs[l] {
		return l
	}
	if res, ok := recognizeVerb(vr, l); ok {
		return res.Lemma
	}
	return ""
}
