package corrector

import "strings"

// PluralCandidate is a singular form derived from a plural surface form,
// together with which rule produced it.
type PluralCandidate struct {
	Singular string
	Rule     string
}

var spanishVowels = "aeiouáéíóúü"

func endsInVowel(s string) bool {
	if s == "" {
		return false
	}
	last := []rune(s)
	return strings.ContainsRune(spanishVowels, last[len(last)-1])
}

// DepluralizeCandidates returns the ordered list of singular candidates
// for a plural surface form. Rules are tried in order; callers validate
// each candidate against the dictionary and stop at the first hit.
func DepluralizeCandidates(word string) []PluralCandidate {
	w := strings.ToLower(word)
	var out []PluralCandidate

	add := func(singular, rule string) {
		out = append(out, PluralCandidate{Singular: singular, Rule: rule})
	}

	switch {
	case strings.HasSuffix(w, "ces") && len(w) > 3:
		// luces -> luz (z/c alternation)
		add(w[:len(w)-3]+"z", "ces->z")
	case strings.HasSuffix(w, "iones") && len(w) > 5:
		// naciones -> nación
		add(w[:len(w)-5]+"ión", "iones->ion")
	case strings.HasSuffix(w, "anes") && len(w) > 4:
		add(w[:len(w)-4]+"án", "anes->an")
	case strings.HasSuffix(w, "enes") && len(w) > 4:
		add(w[:len(w)-4]+"én", "enes->en")
	case strings.HasSuffix(w, "eses") && len(w) > 4:
		add(w[:len(w)-4]+"és", "eses->es")
		// "meses" -> "mes": the accent-adding rule covers "franceses" ->
		// "francés" but a bare -es strip is also plausible here
		add(w[:len(w)-2], "es->strip")
	case strings.HasSuffix(w, "ines") && len(w) > 4:
		add(w[:len(w)-4]+"ín", "ines->in")
	case strings.HasSuffix(w, "ones") && !strings.HasSuffix(w, "iones") && len(w) > 4:
		add(w[:len(w)-4]+"ón", "ones->on")
	case strings.HasSuffix(w, "unes") && len(w) > 4:
		add(w[:len(w)-4]+"ún", "unes->un")
	case strings.HasSuffix(w, "íes") && len(w) > len("íes"):
		add(w[:len(w)-len("íes")]+"í", "ies->i")
	case strings.HasSuffix(w, "úes") && len(w) > len("úes"):
		add(w[:len(w)-len("úes")]+"ú", "ues->u")
	case strings.HasSuffix(w, "es") && len(w) > 2 && !endsInVowel(w[:len(w)-2]):
		// meses -> mes
		add(w[:len(w)-2], "es->strip")
	case strings.HasSuffix(w, "s") && len(w) > 1 && endsInVowel(w[:len(w)-1]):
		add(w[:len(w)-1], "s-after-vowel->strip")
	case strings.HasSuffix(w, "s") && len(w) > 1:
		// anglicism fallback: "clubs" -> "club"
		add(w[:len(w)-1], "s-after-consonant->strip")
	}

	return out
}
