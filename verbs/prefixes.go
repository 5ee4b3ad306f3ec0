package verbs

import "strings"

// prefixes is the closed set of 22 recognized verb prefixes: if V is a
// known verb lemma and P one of these, P+V and all its conjugations are
// accepted. Reflexive and pronominal forms are handled via the enclitic
// step, not here.
var prefixes = []string{
	"contra", "sobre", "entre", "desre", "auto",
	"des", "re", "pre", "pro", "con",
	"sub", "sus", "ante", "inter", "super",
	"extra", "trans", "tras", "infra", "ultra",
	"multi", "co",
}

// StripPrefix removes the longest matching recognized prefix from the
// left of word, returning the prefix and the residue. The longest match
// wins so "desre-" is not mistaken for "des-" plus a residue that
// happens to also look like a verb.
func StripPrefix(word string) (prefix, rest string, ok bool) {
	lower := strings.ToLower(word)

	best := ""
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p) && len(lower) > len(p)+1 {
			if len(p) > len(best) {
				best = p
			}
		}
	}
	if best == "" {
		return "", "", false
	}
	return best, lower[len(best):], true
}

// ReconstructInfinitive rebuilds the full prefixed infinitive from a
// stripped prefix and the base verb's infinitive, the inverse of
// StripPrefix.
func ReconstructInfinitive(prefix, baseInfinitive string) string {
	return prefix + baseInfinitive
}
