package verbs

import (
	"strings"

	"github.com/esgramatica/corrector"
)

// Recognizer decides whether a surface form is a valid conjugation of
// some dictionary verb: strip enclitics -> strip prefix -> unmake a
// regular/stem-changing conjugation or match an irregular table entry
// -> validate the resulting infinitive against the dictionary. First
// match wins. Infinitives in the irregular table are accepted without a
// dictionary entry, except when a prefix was stripped.
type Recognizer struct {
	dict *corrector.Trie
}

// NewRecognizer builds a Recognizer over an already-loaded dictionary.
func NewRecognizer(dict *corrector.Trie) *Recognizer {
	return &Recognizer{dict: dict}
}

func (r *Recognizer) dictHasVerb(infinitive string) bool {
	if r.dict == nil {
		return false
	}
	entries := r.dict.Get(infinitive)
	if len(entries) == 0 {
		return false
	}
	for _, e := range entries {
		if e.Category == corrector.CategoryVerbo {
			return true
		}
	}
	return false
}

type encliticBase struct {
	text       string
	enclitics  []string
	accentFlag bool
	reflexive  bool
}

// Recognize runs the cascade against word and returns the resolved
// analysis on success.
func (r *Recognizer) Recognize(word string) (*Result, bool) {
	bases := []encliticBase{{text: word}}
	if host, removed, accentFlag, ok := StripEnclitics(word); ok {
		reflexive := false
		for _, e := range removed {
			if e == "se" {
				reflexive = true
			}
		}
		bases = append(bases, encliticBase{text: host, enclitics: removed, accentFlag: accentFlag, reflexive: reflexive})
	}

	for _, b := range bases {
		if res, ok := r.matchBase(b.text, ""); ok {
			res.Enclitics = b.enclitics
			res.AccentFlag = b.accentFlag
			res.Reflexive = res.Reflexive || b.reflexive
			return res, true
		}
		if prefix, rest, ok := StripPrefix(b.text); ok {
			if res, ok := r.matchBase(rest, prefix); ok {
				res.Enclitics = b.enclitics
				res.AccentFlag = b.accentFlag
				res.Reflexive = res.Reflexive || b.reflexive
				return res, true
			}
		}
	}
	return nil, false
}

// matchBase tries every unmake strategy against text (already stripped
// of enclitics, possibly of a prefix too) and validates the resulting
// infinitive, reconstructed with prefix, against the dictionary.
func (r *Recognizer) matchBase(text, prefix string) (*Result, bool) {
	if text == "" {
		return nil, false
	}

	if IsInfinitive(text) {
		full := ReconstructInfinitive(prefix, text)
		if r.dictHasVerb(full) || IsIrregularInfinitive(full) {
			return &Result{Lemma: full, Mood: MoodInfinitivo, Prefix: prefix}, true
		}
	}
	if IsGerund(text) {
		base := gerundToInfinitive(text)
		full := ReconstructInfinitive(prefix, base)
		if r.dictHasVerb(full) || IsIrregularInfinitive(full) {
			return &Result{Lemma: full, Mood: MoodGerundio, Prefix: prefix}, true
		}
	}

	for _, cand := range TryUnmakeIrregular(text) {
		full := ReconstructInfinitive(prefix, cand.Infinitive)
		if IsIrregularInfinitive(cand.Infinitive) && (r.dictHasVerb(full) || prefix == "") {
			return newResult(full, cand.Slot, prefix), true
		}
	}

	for _, cand := range TryUnmakeStemChanging(text) {
		full := ReconstructInfinitive(prefix, cand.Infinitive)
		if r.dictHasVerb(full) {
			return newResult(full, cand.Slot, prefix), true
		}
	}

	for _, cand := range TryUnmakeRegular(text) {
		full := ReconstructInfinitive(prefix, cand.Infinitive)
		if r.dictHasVerb(full) {
			return newResult(full, cand.Slot, prefix), true
		}
	}

	return nil, false
}

func newResult(infinitive string, slot Slot, prefix string) *Result {
	return &Result{
		Lemma:  infinitive,
		Tense:  slot.Tense,
		Mood:   slot.Mood,
		Person: slot.Person,
		Number: slot.Number,
		Prefix: prefix,
	}
}

func gerundToInfinitive(gerund string) string {
	switch {
	case strings.HasSuffix(gerund, "ando"):
		return gerund[:len(gerund)-4] + "ar"
	case strings.HasSuffix(gerund, "yendo"):
		return gerund[:len(gerund)-5] + "er"
	case strings.HasSuffix(gerund, "iendo"):
		return gerund[:len(gerund)-5] + "er"
	}
	return gerund
}

// IsValidVerbForm satisfies corrector.VerbFormRecognizer.
func (r *Recognizer) IsValidVerbForm(word string) bool {
	_, ok := r.Recognize(word)
	return ok
}
