package spanish

import (
	"strings"

	"github.com/esgramatica/corrector"
	"github.com/esgramatica/corrector/verbs"
)

type personNumber struct {
	person verbs.Person
	number verbs.VerbNumber
}

var subjectPronounFeatures = map[string]personNumber{
	"yo":       {verbs.PersonFirst, verbs.VerbSingular},
	"tú":       {verbs.PersonSecond, verbs.VerbSingular},
	"vos":      {verbs.PersonSecond, verbs.VerbSingular},
	"usted":    {verbs.PersonThird, verbs.VerbSingular},
	"él":       {verbs.PersonThird, verbs.VerbSingular},
	"ella":     {verbs.PersonThird, verbs.VerbSingular},
	"nosotros": {verbs.PersonFirst, verbs.VerbPlural},
	"nosotras": {verbs.PersonFirst, verbs.VerbPlural},
	"vosotros": {verbs.PersonSecond, verbs.VerbPlural},
	"vosotras": {verbs.PersonSecond, verbs.VerbPlural},
	"ustedes":  {verbs.PersonThird, verbs.VerbPlural},
	"ellos":    {verbs.PersonThird, verbs.VerbPlural},
	"ellas":    {verbs.PersonThird, verbs.VerbPlural},
}

func numberFromDict(n corrector.Number) verbs.VerbNumber {
	if n == corrector.NumberPlural {
		return verbs.VerbPlural
	}
	return verbs.VerbSingular
}

// findSubjectBefore looks immediately before a verb token for a subject
// pronoun, or for a determiner+noun span (scanning backward across at
// most one intervening adjective), and returns the expected
// person/number if one is found with confidence.
func findSubjectBefore(tokens []corrector.Token, dict *corrector.Trie, verbIdx int) (personNumber, bool) {
	idx := prevWordIndex(tokens, verbIdx-1)
	if idx < 0 {
		return personNumber{}, false
	}
	if pn, ok := subjectPronounFeatures[lower(tokens[idx].Text)]; ok {
		return pn, true
	}

	entries := wordEntries(tokens, dict, idx)
	if e, ok := firstOfCategory(entries, corrector.CategorySustantivo); ok {
		return personNumber{verbs.PersonThird, numberFromDict(e.Number)}, true
	}
	if _, ok := firstOfCategory(entries, corrector.CategoryAdjetivo); ok {
		idx2 := prevWordIndex(tokens, idx-1)
		if idx2 < 0 {
			return personNumber{}, false
		}
		entries2 := wordEntries(tokens, dict, idx2)
		if e, ok := firstOfCategory(entries2, corrector.CategorySustantivo); ok {
			return personNumber{verbs.PersonThird, numberFromDict(e.Number)}, true
		}
	}
	return personNumber{}, false
}

// applySubjectVerbAgreement is phase 4: "detect subject NP by
// determiner+noun span or pronoun; check verb person/number."
func applySubjectVerbAgreement(tokens []corrector.Token, dict *corrector.Trie, verbRecognizer corrector.VerbFormRecognizer) {
	if verbRecognizer == nil {
		return
	}
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord {
			continue
		}
		res, ok := recognizeVerb(verbRecognizer, tokens[i].Text)
		if !ok || res.Mood == verbs.MoodInfinitivo || res.Mood == verbs.MoodGerundio {
			continue
		}
		subject, ok := findSubjectBefore(tokens, dict, i)
		if !ok {
			continue
		}
		if res.Person == subject.person && res.Number == subject.number {
			continue
		}
		slot := verbs.Slot{Tense: res.Tense, Mood: res.Mood, Person: subject.person, Number: subject.number}
		corrected, ok := verbs.ConjugateRegular(res.Lemma, slot)
		if !ok || strings.EqualFold(corrected, tokens[i].Text) {
			continue
		}
		annotateGrammar(tokens, i, RuleSubjectVerbAgreement, corrected)
	}
}
