package verbs

import "strings"

// enclitics is the closed set of pronouns that may attach to the end
// of an imperative, infinitive, or gerund host form.
var enclitics = []string{"me", "te", "se", "lo", "la", "le", "los", "las", "les", "nos", "os"}

// accentedVowels maps a stressed vowel back to its unaccented form, used
// to undo the orthographic accent an enclitic attachment adds to mark
// the stress shift (e.g. "dame" -> no accent needed, but "dímelo" needs
// "di" -> "dí" restored when re-deriving the bare imperative).
var accentedVowels = map[rune]rune{
	'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ú': 'u',
}

func stripAccent(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if base, ok := accentedVowels[r]; ok {
			sb.WriteRune(base)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func hasAccent(s string) bool {
	for _, r := range s {
		if _, ok := accentedVowels[r]; ok {
			return true
		}
	}
	return false
}

// StripEnclitics greedily removes up to two trailing enclitic pronouns
// (longest chain first) and returns the host form
// without its orthographic stress accent (the caller re-derives whether
// the accent was load-bearing), along with the removed pronouns in
// attachment order.
func StripEnclitics(word string) (host string, removed []string, accentFlag bool, ok bool) {
	lower := strings.ToLower(word)

	// try a two-pronoun chain first (longest match wins)
	for _, first := range enclitics {
		for _, second := range enclitics {
			suffix := first + second
			if strings.HasSuffix(lower, suffix) && len(lower) > len(suffix) {
				base := lower[:len(lower)-len(suffix)]
				restored := stripAccent(base)
				return restored, []string{first, second}, hasAccent(base), true
			}
		}
	}

	for _, p := range enclitics {
		if strings.HasSuffix(lower, p) && len(lower) > len(p) {
			base := lower[:len(lower)-len(p)]
			restored := stripAccent(base)
			return restored, []string{p}, hasAccent(base), true
		}
	}

	return "", nil, false, false
}

// IsInfinitive reports whether base plausibly ends an infinitive.
func IsInfinitive(base string) bool {
	_, ok := ClassFromInfinitive(base)
	return ok
}

// IsGerund reports whether base ends in the gerund suffix.
func IsGerund(base string) bool {
	return strings.HasSuffix(base, "ando") || strings.HasSuffix(base, "iendo") || strings.HasSuffix(base, "yendo")
}

// CouldBeImperative reports whether base could plausibly be an
// imperative form (heuristic: the last byte is a, e, i or o; length and
// infinitive/gerund endings are not checked).
func CouldBeImperative(base string) bool {
	if base == "" {
		return false
	}
	last := base[len(base)-1]
	return last == 'a' || last == 'e' || last == 'i' || last == 'o'
}
