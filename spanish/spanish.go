// Package spanish implements the Spanish grammar pipeline: twenty-eight
// fixed-order rule phases that read and annotate a token stream, plus
// the Spanish Language capability surface.
package spanish

import (
	"strings"

	"github.com/esgramatica/corrector"
	"github.com/esgramatica/corrector/verbs"
)

// Spanish is the full-featured language: dictionary configuration, a
// verb recognizer built over the loaded trie, and the entire 28-phase
// grammar pipeline.
type Spanish struct {
	corrector.BaseLanguage
}

// New returns a Spanish language instance.
func New() corrector.Language {
	return Spanish{}
}

func (Spanish) Code() string { return "es" }

func (Spanish) Name() string { return "Español" }

func (Spanish) BuildVerbRecognizer(trie *corrector.Trie) corrector.VerbFormRecognizer {
	return verbs.NewRecognizer(trie)
}

// knownAbbreviations mirrors the Catalan package's table for Spanish;
// deliberately short and representative rather than exhaustive.
var knownAbbreviations = map[string]bool{
	"sr.": true, "sra.": true, "srta.": true, "dr.": true, "dra.": true,
	"ud.": true, "uds.": true, "n.º": true, "núm.": true, "pág.": true,
	"etc.": true, "p.ej.": true, "art.": true, "apdo.": true,
}

func (Spanish) IsKnownAbbreviation(word string) bool {
	// tokens never include the trailing dot, so also try word+"."
	lw := strings.ToLower(word)
	return knownAbbreviations[lw] || knownAbbreviations[lw+"."]
}

// subjectPronouns precede a finite verb often enough that a preceding
// pronoun plus a plausible verb-like ending is worth trusting over
// flagging a form the dictionary and recognizer both missed.
var subjectPronouns = map[string]bool{
	"yo": true, "tú": true, "vos": true, "él": true, "ella": true, "usted": true,
	"nosotros": true, "nosotras": true, "vosotros": true, "vosotras": true,
	"ellos": true, "ellas": true, "ustedes": true,
}

var likelyVerbEndings = []string{"amos", "emos", "imos", "aba", "ía", "aron", "ieron", "ando", "iendo"}

func (Spanish) IsLikelyVerbFormInContext(word string, tokens []corrector.Token, index int) bool {
	lower := strings.ToLower(word)
	hasVerbEnding := false
	for _, e := range likelyVerbEndings {
		if strings.HasSuffix(lower, e) {
			hasVerbEnding = true
			break
		}
	}
	if !hasVerbEnding {
		return false
	}
	for i := index - 1; i >= 0 && i >= index-2; i-- {
		t := tokens[i]
		if t.Type == corrector.TokenWhitespace {
			continue
		}
		if t.Type == corrector.TokenWord && subjectPronouns[strings.ToLower(t.Text)] {
			return true
		}
		break
	}
	return false
}

func (Spanish) ApplyLanguageSpecificCorrections(tokens []corrector.Token, dict *corrector.Trie, properNames *corrector.ProperNames, verbRecognizer corrector.VerbFormRecognizer) {
	ApplySpanishCorrections(tokens, dict, properNames, verbRecognizer)
}

func init() {
	corrector.RegisterLanguage(New, "es", "spanish", "español")
}

// recognizeVerb narrows the boolean-only corrector.VerbFormRecognizer
// interface back down to the concrete verbs.Recognizer so phases that
// need tense/person/number detail (not just validity) can get it. Every
// verb recognizer this package builds is in fact a *verbs.Recognizer, so
// the type assertion always succeeds when vr is non-nil and came from
// BuildVerbRecognizer above.
func recognizeVerb(vr corrector.VerbFormRecognizer, word string) (*verbs.Result, bool) {
	r, ok := vr.(*verbs.Recognizer)
	if !ok || r == nil {
		return nil, false
	}
	return r.Recognize(word)
}
