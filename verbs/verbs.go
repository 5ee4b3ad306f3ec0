// Package verbs implements the Spanish verb recognizer: a deterministic
// cascade that decides whether a surface form is a valid conjugation of
// some dictionary verb lemma, without requiring every conjugated form
// to be listed in the dictionary itself. Each step strips a layer
// (enclitics, then a prefix) and falls back to a more basic match on
// failure.
package verbs

// Tense is the grammatical tense of a recognized verb form.
type Tense int

const (
	TensePresente Tense = iota
	TensePreterito
	TenseImperfecto
	TenseFuturo
	TenseCondicional
)

// Mood is the grammatical mood.
type Mood int

const (
	MoodIndicativo Mood = iota
	MoodSubjuntivo
	MoodImperativo
	MoodInfinitivo // non-finite: word (or its enclitic host) is the bare infinitive itself
	MoodGerundio    // non-finite: word (or its enclitic host) is the bare gerund itself
)

// Person is first/second/third grammatical person.
type Person int

const (
	PersonFirst Person = iota
	PersonSecond
	PersonThird
)

// VerbNumber is singular/plural (kept distinct from the dictionary's
// Number type, which also carries none/invariant values).
type VerbNumber int

const (
	VerbSingular VerbNumber = iota
	VerbPlural
)

// Class is the conjugation paradigm a verb belongs to, from its
// infinitive ending.
type Class int

const (
	ClassAr Class = iota
	ClassEr
	ClassIr
)

// ClassFromInfinitive returns the paradigm for a verb lemma, or false if
// the string does not end in one of the three Spanish infinitive endings.
func ClassFromInfinitive(infinitive string) (Class, bool) {
	n := len(infinitive)
	if n < 2 {
		return 0, false
	}
	switch infinitive[n-2:] {
	case "ar":
		return ClassAr, true
	case "er":
		return ClassEr, true
	case "ir":
		return ClassIr, true
	default:
		return 0, false
	}
}

func (c Class) Ending() string {
	switch c {
	case ClassAr:
		return "ar"
	case ClassEr:
		return "er"
	default:
		return "ir"
	}
}

// Result is what the cascade returns for a recognized form.
type Result struct {
	Lemma      string
	Tense      Tense
	Mood       Mood
	Person     Person
	Number     VerbNumber
	Reflexive  bool
	Prefix     string
	Enclitics  []string
	AccentFlag bool // an orthographic accent was added/removed by enclitic attachment
}
