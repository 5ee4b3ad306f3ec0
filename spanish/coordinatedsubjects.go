package spanish

import (
	"strings"

	"github.com/esgramatica/corrector"
	"github.com/esgramatica/corrector/verbs"
)

// applyCoordinatedSubjects is phase 28: two singular subjects joined by
// "ni...ni" or "tanto...como" together form a plural subject, even
// though each conjunct is singular on its own ("ni Juan ni María
// vienen", not "viene"; "tanto él como ella saben", not "sabe").
func applyCoordinatedSubjects(tokens []corrector.Token, dict *corrector.Trie, verbRecognizer corrector.VerbFormRecognizer) {
	if verbRecognizer == nil {
		return
	}
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord {
			continue
		}
		w := lower(tokens[i].Text)
		if w != "ni" && w != "tanto" {
			continue
		}
		second := "ni"
		if w == "tanto" {
			second = "como"
		}
		found := false
		verbIdx := -1
		for j := i + 1; j < len(tokens); j++ {
			if tokens[j].IsSentenceBoundary() {
				break
			}
			if tokens[j].Type != corrector.TokenWord {
				continue
			}
			if lower(tokens[j].Text) == second {
				found = true
				continue
			}
			if found {
				verbIdx = nextVerbAfter(tokens, j, dict, verbRecognizer)
				break
			}
		}
		if !found || verbIdx < 0 {
			continue
		}
		res, ok := recognizeVerb(verbRecognizer, tokens[verbIdx].Text)
		if !ok || res.Number == verbs.VerbPlural {
			continue
		}
		slot := verbs.Slot{Tense: res.Tense, Mood: res.Mood, Person: verbs.PersonThird, Number: verbs.VerbPlural}
		corrected, ok := verbs.ConjugateRegular(res.Lemma, slot)
		if !ok || strings.EqualFold(corrected, tokens[verbIdx].Text) {
			continue
		}
		annotateGrammar(tokens, verbIdx, RuleCoordinatedSubjects, corrected)
	}
}

// nextVerbAfter scans forward from idx (inclusive) within the current
// sentence for the first word token that recognizes as a verb.
func nextVerbAfter(tokens []corrector.Token, idx int, dict *corrector.Trie, verbRecognizer corrector.VerbFormRecognizer) int {
	for j := idx; j < len(tokens); j++ {
		if tokens[j].IsSentenceBoundary() {
			return -1
		}
		if tokens[j].Type != corrector.TokenWord {
			continue
		}
		if _, ok := recognizeVerb(verbRecognizer, tokens[j].Text); ok {
			return j
		}
	}
	return -1
}
