package spanish

import (
	"strings"

	"github.com/esgramatica/corrector"
)

// RuleID is a stable identifier for one of the 28 grammar phases,
// exposed in the output and in telemetry.
const (
	RuleArticleNounAgreement = iota + 1
	RuleNounAdjectiveAgreement
	RuleDeterminerNounAgreement
	RuleSubjectVerbAgreement
	RuleDiacriticHomophones
	RuleCapitalization
	RulePairedPunctuation
	RuleHomophoneConfusables
	RulePorque
	RuleSino
	RuleDequeismo
	RuleLaismoLeismoLoismo
	RuleVocativeComma
	RuleCompoundParticiple
	RuleImpersonalHaber
	RuleImpersonalHacer
	RuleExistentialHaberArticle
	RuleCounterfactualConditional
	RuleCollectiveNounAgreement
	RuleRelativeClauseAgreement
	RuleUnoDeLosQue
	RulePleonasm
	RuleFossilizedPreposition
	RuleHaBeforeInfinitive
	RulePosteriorGerund
	RuleInfinitiveAsImperative
	RuleCommonGenderReferent
	RuleCoordinatedSubjects
)

// ApplySpanishCorrections runs the fixed-order 28-phase pipeline over
// tokens. The ordering is load-bearing: agreement runs before homophone
// disambiguation, and the determiner sanity pass runs last.
func ApplySpanishCorrections(tokens []corrector.Token, dict *corrector.Trie, properNames *corrector.ProperNames, verbRecognizer corrector.VerbFormRecognizer) {
	applyArticleNounAgreement(tokens, dict)
	applyNounAdjectiveAgreement(tokens, dict)
	applyDeterminerNounAgreement(tokens, dict)
	applySubjectVerbAgreement(tokens, dict, verbRecognizer)
	applyDiacriticHomophones(tokens, verbRecognizer, properNames)
	applyCapitalization(tokens)
	applyPairedPunctuation(tokens)
	applyHomophoneConfusables(tokens)
	applyPorque(tokens)
	applySino(tokens)
	applyDequeismo(tokens, dict, verbRecognizer)
	applyPronounCase(tokens, dict, verbRecognizer)
	applyVocativeCommas(tokens, properNames)
	applyCompoundParticiples(tokens, verbRecognizer)
	applyImpersonalHaber(tokens, verbRecognizer)
	applyImpersonalHacer(tokens, verbRecognizer)
	applyExistentialHaberArticle(tokens)
	applyCounterfactualConditional(tokens, verbRecognizer)
	applyCollectiveNounAgreement(tokens, dict, verbRecognizer)
	applyRelativeClauseAgreement(tokens, dict, verbRecognizer)
	applyUnoDeLosQue(tokens, verbRecognizer)
	applyPleonasms(tokens)
	applyFossilizedPrepositions(tokens)
	applyHaBeforeInfinitive(tokens)
	applyPosteriorGerund(tokens, verbRecognizer)
	applyInfinitiveAsImperative(tokens, verbRecognizer)
	applyCommonGenderReferent(tokens, dict, properNames)
	applyCoordinatedSubjects(tokens, dict, verbRecognizer)

	clearDeterminerCorrectionsWithFollowingNoun(tokens, dict)
}

// clearDeterminerCorrectionsWithFollowingNoun undoes a determiner
// correction when the determiner already agrees with the noun it
// precedes, a final sanity pass over every phase's determiner-touching
// output.
func clearDeterminerCorrectionsWithFollowingNoun(tokens []corrector.Token, dict *corrector.Trie) {
	for i := range tokens {
		t := &tokens[i]
		if t.Grammar == nil || t.Type != corrector.TokenWord {
			continue
		}
		if strings.EqualFold(t.Grammar.Replacement, t.Text) {
			continue
		}
		entries := wordEntries(tokens, dict, i)
		detInfo, ok := firstOfCategory(entries, corrector.CategoryDeterminante)
		if !ok {
			continue
		}

		var nounInfo corrector.Entry
		found := false
		for j := i + 1; j < len(tokens); j++ {
			if tokens[j].IsSentenceBoundary() {
				break
			}
			if tokens[j].Type != corrector.TokenWord {
				continue
			}
			entries := wordEntries(tokens, dict, j)
			e, any := firstEntry(entries)
			if !any {
				break
			}
			switch e.Category {
			case corrector.CategorySustantivo:
				nounInfo, found = e, true
			case corrector.CategoryAdjetivo, corrector.CategoryDeterminante, corrector.CategoryArticulo:
				continue
			default:
			}
			if found {
				break
			}
			break
		}
		if !found {
			continue
		}
		if detInfo.Gender == corrector.GenderNone || nounInfo.Gender == corrector.GenderNone {
			continue
		}
		if detInfo.Number == corrector.NumberNone || nounInfo.Number == corrector.NumberNone {
			continue
		}
		if detInfo.Gender == nounInfo.Gender && detInfo.Number == nounInfo.Number {
			t.Grammar = nil
		}
	}
}

func firstEntry(entries []corrector.Entry) (corrector.Entry, bool) {
	if len(entries) == 0 {
		return corrector.Entry{}, false
	}
	return entries[0], true
}
