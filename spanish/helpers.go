package spanish

import (
	"strings"

	"github.com/esgramatica/corrector"
)

// wordEntries returns the dictionary entries for tokens[idx], preferring
// an already-cached WordInfo hit over a fresh trie lookup.
func wordEntries(tokens []corrector.Token, dict *corrector.Trie, idx int) []corrector.Entry {
	if idx < 0 || idx >= len(tokens) {
		return nil
	}
	t := &tokens[idx]
	if t.WordInfo != nil {
		return []corrector.Entry{*t.WordInfo}
	}
	if dict == nil {
		return nil
	}
	return dict.Get(strings.ToLower(t.Text))
}

func firstOfCategory(entries []corrector.Entry, cat corrector.WordCategory) (corrector.Entry, bool) {
	for _, e := range entries {
		if e.Category == cat {
			return e, true
		}
	}
	return corrector.Entry{}, false
}

// annotateGrammar attaches a grammar correction if the token has none
// yet; a later phase never overwrites an earlier phase's annotation.
func annotateGrammar(tokens []corrector.Token, idx int, ruleID int, replacement string) {
	if idx < 0 || idx >= len(tokens) {
		return
	}
	t := &tokens[idx]
	if t.Grammar != nil {
		return
	}
	t.Grammar = &corrector.GrammarAnnotation{Replacement: replacement, RuleID: ruleID}
}

// annotateDeletion flags a token as spurious.
func annotateDeletion(tokens []corrector.Token, idx int, ruleID int) {
	if idx < 0 || idx >= len(tokens) {
		return
	}
	t := &tokens[idx]
	if t.Deletion != nil {
		return
	}
	t.Deletion = &corrector.DeletionAnnotation{RuleID: ruleID}
}

func annotateInsertBefore(tokens []corrector.Token, idx int, ruleID int, text string) {
	if idx < 0 || idx >= len(tokens) {
		return
	}
	t := &tokens[idx]
	if t.InsertPre != nil {
		return
	}
	t.InsertPre = &corrector.InsertionAnnotation{Side: corrector.InsertBefore, Text: text, RuleID: ruleID}
}

func nextWordIndex(tokens []corrector.Token, from int) int {
	for i := from; i < len(tokens); i++ {
		if tokens[i].IsSentenceBoundary() {
			return -1
		}
		if tokens[i].Type == corrector.TokenWord {
			return i
		}
	}
	return -1
}

func prevWordIndex(tokens []corrector.Token, from int) int {
	for i := from; i >= 0; i-- {
		if tokens[i].Type == corrector.TokenWord {
			return i
		}
		if tokens[i].IsSentenceBoundary() {
			return -1
		}
	}
	return -1
}

func lower(s string) string { return strings.ToLower(s) }

// agreementFeatures pulls the gender/number pair off the first matching
// entry, used by the determiner/noun/adjective agreement phases (1, 2, 3).
func agreementFeatures(entries []corrector.Entry, cats ...corrector.WordCategory) (corrector.Gender, corrector.Number, bool) {
	for _, cat := range cats {
		if e, ok := firstOfCategory(entries, cat); ok {
			return e.Gender, e.Number, true
		}
	}
	return corrector.GenderNone, corrector.NumberNone, false
}

func gendersDisagree(a, b corrector.Gender) bool {
	if a == corrector.GenderNone || b == corrector.GenderNone || a == corrector.GenderCommon || b == corrector.GenderCommon {
		return false
	}
	return a != b
}

func numbersDisagree(a, b corrector.Number) bool {
	if a == corrector.NumberNone || b == corrector.NumberNone || a == corrector.NumberInvariant || b == corrector.NumberInvariant {
		return false
	}
	return a != b
}
