package spanish

import (
	"strings"

	"github.com/esgramatica/corrector"
)

// articleForms maps (definite, gender, number) to the correct article
// surface form.
var articleForms = map[bool]map[corrector.Gender]map[corrector.Number]string{
	true: {
		corrector.GenderMasculine: {corrector.NumberSingular: "el", corrector.NumberPlural: "los"},
		corrector.GenderFeminine:  {corrector.NumberSingular: "la", corrector.NumberPlural: "las"},
	},
	false: {
		corrector.GenderMasculine: {corrector.NumberSingular: "un", corrector.NumberPlural: "unos"},
		corrector.GenderFeminine:  {corrector.NumberSingular: "una", corrector.NumberPlural: "unas"},
	},
}

var definiteArticles = map[string]bool{"el": true, "la": true, "los": true, "las": true}
var indefiniteArticles = map[string]bool{"un": true, "una": true, "unos": true, "unas": true}

// applyArticleNounAgreement is phase 1: "for each (article, noun) pair
// separated by ≤1 optional adjective, check gender+number match;
// replace article."
func applyArticleNounAgreement(tokens []corrector.Token, dict *corrector.Trie) {
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord {
			continue
		}
		text := lower(tokens[i].Text)
		definite, isDef := true, definiteArticles[text]
		if !isDef {
			if !indefiniteArticles[text] {
				continue
			}
			definite = false
		}

		nounIdx := findNounSkippingOneAdjective(tokens, dict, i+1)
		if nounIdx < 0 {
			continue
		}
		nounEntries := wordEntries(tokens, dict, nounIdx)
		gender, number, ok := agreementFeatures(nounEntries, corrector.CategorySustantivo)
		if !ok || gender == corrector.GenderNone || gender == corrector.GenderCommon {
			continue
		}
		byGender, ok := articleForms[definite][gender]
		if !ok {
			continue
		}
		correct, ok := byGender[number]
		if !ok || strings.EqualFold(correct, tokens[i].Text) {
			continue
		}
		annotateGrammar(tokens, i, RuleArticleNounAgreement, correct)
	}
}

func findNounSkippingOneAdjective(tokens []corrector.Token, dict *corrector.Trie, from int) int {
	adjectivesSkipped := 0
	for j := from; j < len(tokens); j++ {
		if tokens[j].IsSentenceBoundary() {
			return -1
		}
		if tokens[j].Type == corrector.TokenWhitespace {
			continue
		}
		if tokens[j].Type != corrector.TokenWord {
			return -1
		}
		entries := wordEntries(tokens, dict, j)
		if e, ok := firstOfCategory(entries, corrector.CategorySustantivo); ok {
			_ = e
			return j
		}
		if _, ok := firstOfCategory(entries, corrector.CategoryAdjetivo); ok && adjectivesSkipped == 0 {
			adjectivesSkipped++
			continue
		}
		return -1
	}
	return -1
}

// regularAdjectiveForm derives the surface form of a regular -o/-a
// adjective for a target gender/number, or "" if adj does not follow
// the regular -o/-a/-os/-as pattern. Invariant adjectives never reach
// this point.
func regularAdjectiveForm(adj string, gender corrector.Gender, number corrector.Number) string {
	lower := strings.ToLower(adj)
	var stem string
	switch {
	case strings.HasSuffix(lower, "os"):
		stem = lower[:len(lower)-2]
	case strings.HasSuffix(lower, "as"):
		stem = lower[:len(lower)-2]
	case strings.HasSuffix(lower, "o"), strings.HasSuffix(lower, "a"):
		stem = lower[:len(lower)-1]
	default:
		return ""
	}
	switch {
	case gender == corrector.GenderMasculine && number == corrector.NumberSingular:
		return stem + "o"
	case gender == corrector.GenderMasculine && number == corrector.NumberPlural:
		return stem + "os"
	case gender == corrector.GenderFeminine && number == corrector.NumberSingular:
		return stem + "a"
	case gender == corrector.GenderFeminine && number == corrector.NumberPlural:
		return stem + "as"
	}
	return ""
}

// applyNounAdjectiveAgreement is phase 2, covering the attributive case
// (adjective immediately after the noun, the most common word order).
// Only the adjacent attributive span is handled; the predicative case
// (noun ... ser/estar ... adjective) is not checked by this phase or by
// phase 4.
func applyNounAdjectiveAgreement(tokens []corrector.Token, dict *corrector.Trie) {
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord {
			continue
		}
		entries := wordEntries(tokens, dict, i)
		nounGender, nounNumber, ok := agreementFeatures(entries, corrector.CategorySustantivo)
		if !ok || nounGender == corrector.GenderNone {
			continue
		}
		adjIdx := nextWordIndex(tokens, i+1)
		if adjIdx < 0 {
			continue
		}
		adjEntries := wordEntries(tokens, dict, adjIdx)
		adjEntry, isAdj := firstOfCategory(adjEntries, corrector.CategoryAdjetivo)
		if !isAdj || adjEntry.IsInvariant() {
			continue
		}
		if !gendersDisagree(adjEntry.Gender, nounGender) && !numbersDisagree(adjEntry.Number, nounNumber) {
			continue
		}
		corrected := regularAdjectiveForm(tokens[adjIdx].Text, nounGender, nounNumber)
		if corrected == "" || strings.EqualFold(corrected, tokens[adjIdx].Text) {
			continue
		}
		annotateGrammar(tokens, adjIdx, RuleNounAdjectiveAgreement, corrected)
	}
}

// determinerForms is a small representative table of demonstrative and
// quantifying determiners whose gender/number variants are closed sets,
// the same closed-table shape as articleForms above.
var determinerForms = map[string]map[corrector.Gender]map[corrector.Number]string{
	"este":  {corrector.GenderMasculine: {corrector.NumberSingular: "este", corrector.NumberPlural: "estos"}, corrector.GenderFeminine: {corrector.NumberSingular: "esta", corrector.NumberPlural: "estas"}},
	"ese":   {corrector.GenderMasculine: {corrector.NumberSingular: "ese", corrector.NumberPlural: "esos"}, corrector.GenderFeminine: {corrector.NumberSingular: "esa", corrector.NumberPlural: "esas"}},
	"aquel": {corrector.GenderMasculine: {corrector.NumberSingular: "aquel", corrector.NumberPlural: "aquellos"}, corrector.GenderFeminine: {corrector.NumberSingular: "aquella", corrector.NumberPlural: "aquellas"}},
	"mucho": {corrector.GenderMasculine: {corrector.NumberSingular: "mucho", corrector.NumberPlural: "muchos"}, corrector.GenderFeminine: {corrector.NumberSingular: "mucha", corrector.NumberPlural: "muchas"}},
	"poco":  {corrector.GenderMasculine: {corrector.NumberSingular: "poco", corrector.NumberPlural: "pocos"}, corrector.GenderFeminine: {corrector.NumberSingular: "poca", corrector.NumberPlural: "pocas"}},
	"todo":  {corrector.GenderMasculine: {corrector.NumberSingular: "todo", corrector.NumberPlural: "todos"}, corrector.GenderFeminine: {corrector.NumberSingular: "toda", corrector.NumberPlural: "todas"}},
}

// determinerLemma maps every surface variant back to the table's key.
var determinerLemma = buildDeterminerLemma()

func buildDeterminerLemma() map[string]string {
	out := map[string]string{}
	for base, byGender := range determinerForms {
		for _, byNumber := range byGender {
			for _, surface := range byNumber {
				out[surface] = base
			}
		}
	}
	return out
}

// applyDeterminerNounAgreement is phase 3.
func applyDeterminerNounAgreement(tokens []corrector.Token, dict *corrector.Trie) {
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord {
			continue
		}
		base, known := determinerLemma[lower(tokens[i].Text)]
		if !known {
			continue
		}
		nounIdx := findNounSkippingOneAdjective(tokens, dict, i+1)
		if nounIdx < 0 {
			continue
		}
		nounEntries := wordEntries(tokens, dict, nounIdx)
		gender, number, ok := agreementFeatures(nounEntries, corrector.CategorySustantivo)
		if !ok || gender == corrector.GenderNone || gender == corrector.GenderCommon {
			continue
		}
		byGender, ok := determinerForms[base][gender]
		if !ok {
			continue
		}
		correct, ok := byGender[number]
		if !ok || strings.EqualFold(correct, tokens[i].Text) {
			continue
		}
		annotateGrammar(tokens, i, RuleDeterminerNounAgreement, correct)
	}
}
