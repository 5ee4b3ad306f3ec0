package spanish

import "github.com/esgramatica/corrector"

var commonDeterminerForms = map[corrector.Gender]string{
	corrector.GenderMasculine: "el",
	corrector.GenderFeminine:  "la",
}

// inferNameGender is a crude heuristic, not a real name-gender lexicon:
// names ending in "a" are treated as feminine, everything else
// masculine.
func inferNameGender(name string) corrector.Gender {
	if len(name) == 0 {
		return corrector.GenderNone
	}
	last := []rune(lower(name))
	if last[len(last)-1] == 'a' {
		return corrector.GenderFeminine
	}
	return corrector.GenderMasculine
}

// applyCommonGenderReferent is phase 27: common-gender nouns
// (estudiante, dentista, testigo) take their determiner's gender from
// context; when an explicit proper-name referent immediately follows,
// that name's apparent gender should drive the determiner instead.
func applyCommonGenderReferent(tokens []corrector.Token, dict *corrector.Trie, properNames *corrector.ProperNames) {
	if properNames == nil || properNames.IsEmpty() {
		return
	}
	for i := range tokens {
		if tokens[i].Type != corrector.TokenWord {
			continue
		}
		if w := lower(tokens[i].Text); w != "el" && w != "la" {
			continue
		}
		nounIdx := nextWordIndex(tokens, i+1)
		if nounIdx < 0 {
			continue
		}
		nounEntries := wordEntries(tokens, dict, nounIdx)
		if noun, ok := firstOfCategory(nounEntries, corrector.CategorySustantivo); !ok || noun.Gender != corrector.GenderCommon {
			continue
		}
		nameIdx := nextWordIndex(tokens, nounIdx+1)
		if nameIdx < 0 || !properNames.ContainsIgnoreCase(tokens[nameIdx].Text) {
			continue
		}
		gender := inferNameGender(tokens[nameIdx].Text)
		form, ok := commonDeterminerForms[gender]
		if !ok || lower(tokens[i].Text) == form {
			continue
		}
		annotateGrammar(tokens, i, RuleCommonGenderReferent, form)
	}
}
