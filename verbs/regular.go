package verbs

import (
	"sort"
	"strings"
)

// Slot identifies one cell of a conjugation paradigm.
type Slot struct {
	Tense  Tense
	Mood   Mood
	Person Person
	Number VerbNumber
}

// stemEndings holds paradigm endings that attach to the verb stem
// (infinitive minus its -ar/-er/-ir ending). futuro and condicional
// attach to the whole infinitive instead and are handled separately in
// TryUnmakeRegular. The future subjunctive and the compound tenses are
// not modeled here: compound tenses are a haber+participle construction
// handled by the grammar pipeline's compound-tense phase, not the verb
// recognizer's simple-tense unmake step.
var stemEndings = map[Class]map[Slot]string{
	ClassAr: {
		{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}:  "o",
		{TensePresente, MoodIndicativo, PersonSecond, VerbSingular}: "as",
		{TensePresente, MoodIndicativo, PersonThird, VerbSingular}:  "a",
		{TensePresente, MoodIndicativo, PersonFirst, VerbPlural}:    "amos",
		{TensePresente, MoodIndicativo, PersonSecond, VerbPlural}:   "áis",
		{TensePresente, MoodIndicativo, PersonThird, VerbPlural}:    "an",

		{TensePreterito, MoodIndicativo, PersonFirst, VerbSingular}:  "é",
		{TensePreterito, MoodIndicativo, PersonSecond, VerbSingular}: "aste",
		{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}:  "ó",
		{TensePreterito, MoodIndicativo, PersonFirst, VerbPlural}:    "amos",
		{TensePreterito, MoodIndicativo, PersonSecond, VerbPlural}:   "asteis",
		{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:    "aron",

		{TenseImperfecto, MoodIndicativo, PersonFirst, VerbSingular}:  "aba",
		{TenseImperfecto, MoodIndicativo, PersonSecond, VerbSingular}: "abas",
		{TenseImperfecto, MoodIndicativo, PersonThird, VerbSingular}:  "aba",
		{TenseImperfecto, MoodIndicativo, PersonFirst, VerbPlural}:    "ábamos",
		{TenseImperfecto, MoodIndicativo, PersonSecond, VerbPlural}:   "abais",
		{TenseImperfecto, MoodIndicativo, PersonThird, VerbPlural}:    "aban",

		{TensePresente, MoodSubjuntivo, PersonFirst, VerbSingular}:  "e",
		{TensePresente, MoodSubjuntivo, PersonSecond, VerbSingular}: "es",
		{TensePresente, MoodSubjuntivo, PersonThird, VerbSingular}:  "e",
		{TensePresente, MoodSubjuntivo, PersonFirst, VerbPlural}:    "emos",
		{TensePresente, MoodSubjuntivo, PersonSecond, VerbPlural}:   "éis",
		{TensePresente, MoodSubjuntivo, PersonThird, VerbPlural}:    "en",

		{TensePresente, MoodImperativo, PersonSecond, VerbSingular}: "a",
		{TensePresente, MoodImperativo, PersonThird, VerbSingular}:  "e",
		{TensePresente, MoodImperativo, PersonThird, VerbPlural}:    "en",
	},
	ClassEr: {
		{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}:  "o",
		{TensePresente, MoodIndicativo, PersonSecond, VerbSingular}: "es",
		{TensePresente, MoodIndicativo, PersonThird, VerbSingular}:  "e",
		{TensePresente, MoodIndicativo, PersonFirst, VerbPlural}:    "emos",
		{TensePresente, MoodIndicativo, PersonSecond, VerbPlural}:   "éis",
		{TensePresente, MoodIndicativo, PersonThird, VerbPlural}:    "en",

		{TensePreterito, MoodIndicativo, PersonFirst, VerbSingular}:  "í",
		{TensePreterito, MoodIndicativo, PersonSecond, VerbSingular}: "iste",
		{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}:  "ió",
		{TensePreterito, MoodIndicativo, PersonFirst, VerbPlural}:    "imos",
		{TensePreterito, MoodIndicativo, PersonSecond, VerbPlural}:   "isteis",
		{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:    "ieron",

		{TenseImperfecto, MoodIndicativo, PersonFirst, VerbSingular}:  "ía",
		{TenseImperfecto, MoodIndicativo, PersonSecond, VerbSingular}: "ías",
		{TenseImperfecto, MoodIndicativo, PersonThird, VerbSingular}:  "ía",
		{TenseImperfecto, MoodIndicativo, PersonFirst, VerbPlural}:    "íamos",
		{TenseImperfecto, MoodIndicativo, PersonSecond, VerbPlural}:   "íais",
		{TenseImperfecto, MoodIndicativo, PersonThird, VerbPlural}:    "ían",

		{TensePresente, MoodSubjuntivo, PersonFirst, VerbSingular}:  "a",
		{TensePresente, MoodSubjuntivo, PersonSecond, VerbSingular}: "as",
		{TensePresente, MoodSubjuntivo, PersonThird, VerbSingular}:  "a",
		{TensePresente, MoodSubjuntivo, PersonFirst, VerbPlural}:    "amos",
		{TensePresente, MoodSubjuntivo, PersonSecond, VerbPlural}:   "áis",
		{TensePresente, MoodSubjuntivo, PersonThird, VerbPlural}:    "an",

		{TensePresente, MoodImperativo, PersonSecond, VerbSingular}: "e",
		{TensePresente, MoodImperativo, PersonThird, VerbSingular}:  "a",
		{TensePresente, MoodImperativo, PersonThird, VerbPlural}:    "an",
	},
}

func init() {
	// -ir shares every -er ending except the present indicative first
	// and second plural (imos, ís); clone then patch.
	irTable := make(map[Slot]string, len(stemEndings[ClassEr]))
	for k, v := range stemEndings[ClassEr] {
		irTable[k] = v
	}
	irTable[Slot{TensePresente, MoodIndicativo, PersonFirst, VerbPlural}] = "imos"
	irTable[Slot{TensePresente, MoodIndicativo, PersonSecond, VerbPlural}] = "ís"
	stemEndings[ClassIr] = irTable
}

// infinitiveEndings holds futuro/condicional endings, which attach to
// the whole infinitive rather than the bare stem.
var infinitiveEndings = map[Slot]string{
	{TenseFuturo, MoodIndicativo, PersonFirst, VerbSingular}:  "é",
	{TenseFuturo, MoodIndicativo, PersonSecond, VerbSingular}: "ás",
	{TenseFuturo, MoodIndicativo, PersonThird, VerbSingular}:  "á",
	{TenseFuturo, MoodIndicativo, PersonFirst, VerbPlural}:    "emos",
	{TenseFuturo, MoodIndicativo, PersonSecond, VerbPlural}:   "éis",
	{TenseFuturo, MoodIndicativo, PersonThird, VerbPlural}:    "án",

	{TenseCondicional, MoodIndicativo, PersonFirst, VerbSingular}:  "ía",
	{TenseCondicional, MoodIndicativo, PersonSecond, VerbSingular}: "ías",
	{TenseCondicional, MoodIndicativo, PersonThird, VerbSingular}:  "ía",
	{TenseCondicional, MoodIndicativo, PersonFirst, VerbPlural}:    "íamos",
	{TenseCondicional, MoodIndicativo, PersonSecond, VerbPlural}:   "íais",
	{TenseCondicional, MoodIndicativo, PersonThird, VerbPlural}:    "ían",
}

// ConjugateRegular produces the regular surface form of lemma for slot,
// the inverse of TryUnmakeRegular's stem-ending half. It returns "",
// false for slots not covered by the regular paradigms (e.g. compound
// tenses, which the grammar pipeline builds separately from haber plus
// a participle).
func ConjugateRegular(lemma string, slot Slot) (string, bool) {
	class, ok := ClassFromInfinitive(lemma)
	if !ok {
		return "", false
	}
	stem := lemma[:len(lemma)-2]

	if ending, ok := infinitiveEndings[slot]; ok {
		return lemma + ending, true
	}
	if ending, ok := stemEndings[class][slot]; ok {
		return stem + ending, true
	}
	return "", false
}

// imperfectSubjunctiveEndings holds the standard -ra paradigm, the
// target of the counterfactual "si" + past-subjunctive correction.
// Only the -ra variant is produced; the -se variant is an accepted but
// less common alternative that is not generated.
var imperfectSubjunctiveEndings = map[Class]map[Person]map[VerbNumber]string{
	ClassAr: {
		PersonFirst:  {VerbSingular: "ara", VerbPlural: "áramos"},
		PersonSecond: {VerbSingular: "aras", VerbPlural: "arais"},
		PersonThird:  {VerbSingular: "ara", VerbPlural: "aran"},
	},
}

func init() {
	erIr := map[Person]map[VerbNumber]string{
		PersonFirst:  {VerbSingular: "iera", VerbPlural: "iéramos"},
		PersonSecond: {VerbSingular: "ieras", VerbPlural: "ierais"},
		PersonThird:  {VerbSingular: "iera", VerbPlural: "ieran"},
	}
	imperfectSubjunctiveEndings[ClassEr] = erIr
	imperfectSubjunctiveEndings[ClassIr] = erIr
}

// ConjugateImperfectSubjunctive produces the regular imperfect
// subjunctive form of lemma.
func ConjugateImperfectSubjunctive(lemma string, person Person, number VerbNumber) (string, bool) {
	class, ok := ClassFromInfinitive(lemma)
	if !ok {
		return "", false
	}
	suffix, ok := imperfectSubjunctiveEndings[class][person][number]
	if !ok {
		return "", false
	}
	return lemma[:len(lemma)-2] + suffix, true
}

// ImperativeVosotros produces the regular vosotros-imperative form used
// by the infinitive-as-imperative phase: drop the infinitive's final -r
// and append -d.
func ImperativeVosotros(lemma string) (string, bool) {
	if !IsInfinitive(lemma) || len(lemma) < 3 {
		return "", false
	}
	return lemma[:len(lemma)-1] + "d", true
}

// GerundEnding returns the gerund suffix for a paradigm.
func GerundEnding(c Class) string {
	if c == ClassAr {
		return "ando"
	}
	return "iendo"
}

// ParticipleEnding returns the regular past-participle suffix.
func ParticipleEnding(c Class) string {
	if c == ClassAr {
		return "ado"
	}
	return "ido"
}

// UnmakeResult is what TryUnmakeRegular returns on a match.
type UnmakeResult struct {
	Infinitive string
	Slot       Slot
}

// TryUnmakeRegular proposes, for each of the -ar/-er/-ir paradigms and
// each tense slot, the infinitive whose stem plus that slot's ending
// yields the word. The dictionary check itself is the caller's job
// (TryUnmakeRegular only proposes candidate infinitives; Recognizer
// does the lookup). Candidates come back in a fixed order: indicative
// before subjunctive before imperative, then by tense, person, number.
func TryUnmakeRegular(word string) []UnmakeResult {
	lower := strings.ToLower(word)
	var out []UnmakeResult

	for _, class := range []Class{ClassAr, ClassEr, ClassIr} {
		for slot, ending := range stemEndings[class] {
			if !strings.HasSuffix(lower, ending) {
				continue
			}
			stem := lower[:len(lower)-len(ending)]
			if stem == "" {
				continue
			}
			infinitive := stem + class.Ending()
			out = append(out, UnmakeResult{Infinitive: infinitive, Slot: slot})
		}
	}

	for slot, ending := range infinitiveEndings {
		if !strings.HasSuffix(lower, ending) {
			continue
		}
		infinitive := lower[:len(lower)-len(ending)]
		if infinitive == "" || !IsInfinitive(infinitive) {
			continue
		}
		out = append(out, UnmakeResult{Infinitive: infinitive, Slot: slot})
	}

	if strings.HasSuffix(lower, "ando") {
		stem := lower[:len(lower)-len("ando")]
		out = append(out, UnmakeResult{Infinitive: stem + "ar", Slot: Slot{Tense: -1}})
	}
	if strings.HasSuffix(lower, "iendo") {
		stem := lower[:len(lower)-len("iendo")]
		out = append(out, UnmakeResult{Infinitive: stem + "er", Slot: Slot{Tense: -1}})
		out = append(out, UnmakeResult{Infinitive: stem + "ir", Slot: Slot{Tense: -1}})
	}

	sortUnmakeResults(out)
	return out
}

// sortUnmakeResults puts candidates built from map iteration into a
// fixed order, so the first dictionary-validated match does not vary
// from run to run.
func sortUnmakeResults(out []UnmakeResult) {
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Slot, out[j].Slot
		if a.Mood != b.Mood {
			return a.Mood < b.Mood
		}
		if a.Tense != b.Tense {
			return a.Tense < b.Tense
		}
		if a.Person != b.Person {
			return a.Person < b.Person
		}
		if a.Number != b.Number {
			return a.Number < b.Number
		}
		return out[i].Infinitive < out[j].Infinitive
	})
}
