package verbs

import "strings"

// IrregularVerb is a fully irregular verb whose forms cannot be derived
// mechanically from its infinitive and must be listed explicitly.
type IrregularVerb struct {
	Infinitive       string
	Forms            map[Slot]string
	IrregularGerund  string
	IrregularParticiple string
}

// irregularVerbs lists the fully irregular Spanish verbs, covering
// present indicative and preterite indicative — the two paradigms most
// likely to otherwise be flagged as misspellings, since their stems
// diverge most sharply from the infinitive — plus irregular gerunds and
// participles. Verbs whose only irregularity is the participle carry
// just that field. A form outside this table falls through to the
// recognizer's stem-changing and regular unmake steps.
var irregularVerbs = []IrregularVerb{
	{
		Infinitive: "ser",
		Forms: map[Slot]string{
			{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}:  "soy",
			{TensePresente, MoodIndicativo, PersonSecond, VerbSingular}: "eres",
			{TensePresente, MoodIndicativo, PersonThird, VerbSingular}:  "es",
			{TensePresente, MoodIndicativo, PersonFirst, VerbPlural}:    "somos",
			{TensePresente, MoodIndicativo, PersonSecond, VerbPlural}:   "sois",
			{TensePresente, MoodIndicativo, PersonThird, VerbPlural}:    "son",
			{TensePreterito, MoodIndicativo, PersonFirst, VerbSingular}:  "fui",
			{TensePreterito, MoodIndicativo, PersonSecond, VerbSingular}: "fuiste",
			{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}:  "fue",
			{TensePreterito, MoodIndicativo, PersonFirst, VerbPlural}:    "fuimos",
			{TensePreterito, MoodIndicativo, PersonSecond, VerbPlural}:   "fuisteis",
			{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:    "fueron",
		},
		IrregularGerund:     "siendo",
		IrregularParticiple: "sido",
	},
	{
		Infinitive: "estar",
		Forms: map[Slot]string{
			{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}:  "estoy",
			{TensePresente, MoodIndicativo, PersonSecond, VerbSingular}: "estás",
			{TensePresente, MoodIndicativo, PersonThird, VerbSingular}:  "está",
			{TensePresente, MoodIndicativo, PersonFirst, VerbPlural}:    "estamos",
			{TensePresente, MoodIndicativo, PersonSecond, VerbPlural}:   "estáis",
			{TensePresente, MoodIndicativo, PersonThird, VerbPlural}:    "están",
			{TensePreterito, MoodIndicativo, PersonFirst, VerbSingular}:  "estuve",
			{TensePreterito, MoodIndicativo, PersonSecond, VerbSingular}: "estuviste",
			{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}:  "estuvo",
			{TensePreterito, MoodIndicativo, PersonFirst, VerbPlural}:    "estuvimos",
			{TensePreterito, MoodIndicativo, PersonSecond, VerbPlural}:   "estuvisteis",
			{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:    "estuvieron",
		},
		IrregularGerund: "estando",
	},
	{
		Infinitive: "ir",
		Forms: map[Slot]string{
			{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}:  "voy",
			{TensePresente, MoodIndicativo, PersonSecond, VerbSingular}: "vas",
			{TensePresente, MoodIndicativo, PersonThird, VerbSingular}:  "va",
			{TensePresente, MoodIndicativo, PersonFirst, VerbPlural}:    "vamos",
			{TensePresente, MoodIndicativo, PersonSecond, VerbPlural}:   "vais",
			{TensePresente, MoodIndicativo, PersonThird, VerbPlural}:    "van",
			{TensePreterito, MoodIndicativo, PersonFirst, VerbSingular}:  "fui",
			{TensePreterito, MoodIndicativo, PersonSecond, VerbSingular}: "fuiste",
			{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}:  "fue",
			{TensePreterito, MoodIndicativo, PersonFirst, VerbPlural}:    "fuimos",
			{TensePreterito, MoodIndicativo, PersonSecond, VerbPlural}:   "fuisteis",
			{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:    "fueron",
		},
		IrregularGerund: "yendo",
	},
	{
		Infinitive: "haber",
		Forms: map[Slot]string{
			{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}:  "he",
			{TensePresente, MoodIndicativo, PersonSecond, VerbSingular}: "has",
			{TensePresente, MoodIndicativo, PersonThird, VerbSingular}:  "ha",
			{TensePresente, MoodIndicativo, PersonFirst, VerbPlural}:    "hemos",
			{TensePresente, MoodIndicativo, PersonSecond, VerbPlural}:   "habéis",
			{TensePresente, MoodIndicativo, PersonThird, VerbPlural}:    "han",
			{TensePreterito, MoodIndicativo, PersonFirst, VerbSingular}:  "hube",
			{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}:  "hubo",
			{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:    "hubieron",
		},
		IrregularParticiple: "habido",
	},
	{
		Infinitive: "tener",
		Forms: map[Slot]string{
			{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}:  "tengo",
			{TensePresente, MoodIndicativo, PersonSecond, VerbSingular}: "tienes",
			{TensePresente, MoodIndicativo, PersonThird, VerbSingular}:  "tiene",
			{TensePresente, MoodIndicativo, PersonThird, VerbPlural}:    "tienen",
			{TensePreterito, MoodIndicativo, PersonFirst, VerbSingular}:  "tuve",
			{TensePreterito, MoodIndicativo, PersonSecond, VerbSingular}: "tuviste",
			{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}:  "tuvo",
			{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:    "tuvieron",
		},
	},
	{
		Infinitive: "hacer",
		Forms: map[Slot]string{
			{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}:  "hago",
			{TensePreterito, MoodIndicativo, PersonFirst, VerbSingular}:  "hice",
			{TensePreterito, MoodIndicativo, PersonSecond, VerbSingular}: "hiciste",
			{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}:  "hizo",
			{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:    "hicieron",
		},
		IrregularParticiple: "hecho",
	},
	{
		Infinitive: "poder",
		Forms: map[Slot]string{
			{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}:  "puedo",
			{TensePresente, MoodIndicativo, PersonSecond, VerbSingular}: "puedes",
			{TensePresente, MoodIndicativo, PersonThird, VerbSingular}:  "puede",
			{TensePresente, MoodIndicativo, PersonThird, VerbPlural}:    "pueden",
			{TensePreterito, MoodIndicativo, PersonFirst, VerbSingular}:  "pude",
			{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}:  "pudo",
			{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:    "pudieron",
		},
		IrregularGerund: "pudiendo",
	},
	{
		Infinitive: "poner",
		Forms: map[Slot]string{
			{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}:  "pongo",
			{TensePreterito, MoodIndicativo, PersonFirst, VerbSingular}:  "puse",
			{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}:  "puso",
			{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:    "pusieron",
		},
		IrregularParticiple: "puesto",
	},
	{
		Infinitive: "saber",
		Forms: map[Slot]string{
			{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}:  "sé",
			{TensePreterito, MoodIndicativo, PersonFirst, VerbSingular}:  "supe",
			{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}:  "supo",
			{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:    "supieron",
		},
	},
	{
		Infinitive: "querer",
		Forms: map[Slot]string{
			{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}:  "quiero",
			{TensePresente, MoodIndicativo, PersonSecond, VerbSingular}: "quieres",
			{TensePresente, MoodIndicativo, PersonThird, VerbSingular}:  "quiere",
			{TensePresente, MoodIndicativo, PersonThird, VerbPlural}:    "quieren",
			{TensePreterito, MoodIndicativo, PersonFirst, VerbSingular}:  "quise",
			{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}:  "quiso",
			{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:    "quisieron",
		},
	},
	{
		Infinitive: "venir",
		Forms: map[Slot]string{
			{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}:  "vengo",
			{TensePresente, MoodIndicativo, PersonSecond, VerbSingular}: "vienes",
			{TensePresente, MoodIndicativo, PersonThird, VerbSingular}:  "viene",
			{TensePresente, MoodIndicativo, PersonThird, VerbPlural}:    "vienen",
			{TensePreterito, MoodIndicativo, PersonFirst, VerbSingular}:  "vine",
			{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}:  "vino",
			{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:    "vinieron",
		},
		IrregularGerund: "viniendo",
	},
	{
		Infinitive: "decir",
		Forms: map[Slot]string{
			{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}:  "digo",
			{TensePresente, MoodIndicativo, PersonSecond, VerbSingular}: "dices",
			{TensePresente, MoodIndicativo, PersonThird, VerbSingular}:  "dice",
			{TensePresente, MoodIndicativo, PersonThird, VerbPlural}:    "dicen",
			{TensePreterito, MoodIndicativo, PersonFirst, VerbSingular}:  "dije",
			{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}:  "dijo",
			{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:    "dijeron",
		},
		IrregularGerund:     "diciendo",
		IrregularParticiple: "dicho",
	},
	{
		Infinitive: "dar",
		Forms: map[Slot]string{
			{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}:  "doy",
			{TensePreterito, MoodIndicativo, PersonFirst, VerbSingular}:  "di",
			{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}:  "dio",
			{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:    "dieron",
		},
	},
	{
		Infinitive: "ver",
		Forms: map[Slot]string{
			{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}: "veo",
			{TensePreterito, MoodIndicativo, PersonFirst, VerbSingular}: "vi",
			{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}: "vio",
			{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:   "vieron",
		},
		IrregularParticiple: "visto",
	},
	{
		Infinitive: "salir",
		Forms: map[Slot]string{
			{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}: "salgo",
		},
	},
	{
		Infinitive: "traer",
		Forms: map[Slot]string{
			{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}:  "traigo",
			{TensePreterito, MoodIndicativo, PersonFirst, VerbSingular}:  "traje",
			{TensePreterito, MoodIndicativo, PersonSecond, VerbSingular}: "trajiste",
			{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}:  "trajo",
			{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:    "trajeron",
		},
		IrregularGerund:     "trayendo",
		IrregularParticiple: "traído",
	},
	{
		Infinitive: "caer",
		Forms: map[Slot]string{
			{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}: "caigo",
			{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}: "cayó",
			{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:   "cayeron",
		},
		IrregularGerund:     "cayendo",
		IrregularParticiple: "caído",
	},
	{
		Infinitive: "oír",
		Forms: map[Slot]string{
			{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}:  "oigo",
			{TensePresente, MoodIndicativo, PersonSecond, VerbSingular}: "oyes",
			{TensePresente, MoodIndicativo, PersonThird, VerbSingular}:  "oye",
			{TensePresente, MoodIndicativo, PersonThird, VerbPlural}:    "oyen",
			{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}:  "oyó",
			{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:    "oyeron",
		},
		IrregularGerund:     "oyendo",
		IrregularParticiple: "oído",
	},
	{
		Infinitive: "andar",
		Forms: map[Slot]string{
			{TensePreterito, MoodIndicativo, PersonFirst, VerbSingular}:  "anduve",
			{TensePreterito, MoodIndicativo, PersonSecond, VerbSingular}: "anduviste",
			{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}:  "anduvo",
			{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:    "anduvieron",
		},
	},
	{
		Infinitive: "caber",
		Forms: map[Slot]string{
			{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}: "quepo",
			{TensePreterito, MoodIndicativo, PersonFirst, VerbSingular}: "cupe",
			{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}: "cupo",
			{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:   "cupieron",
		},
	},
	{
		Infinitive: "valer",
		Forms: map[Slot]string{
			{TensePresente, MoodIndicativo, PersonFirst, VerbSingular}: "valgo",
		},
	},
	{
		Infinitive: "conducir",
		Forms: map[Slot]string{
			{TensePreterito, MoodIndicativo, PersonFirst, VerbSingular}:  "conduje",
			{TensePreterito, MoodIndicativo, PersonSecond, VerbSingular}: "condujiste",
			{TensePreterito, MoodIndicativo, PersonThird, VerbSingular}:  "condujo",
			{TensePreterito, MoodIndicativo, PersonThird, VerbPlural}:    "condujeron",
		},
	},
	{Infinitive: "escribir", IrregularParticiple: "escrito"},
	{Infinitive: "romper", IrregularParticiple: "roto"},
	{Infinitive: "abrir", IrregularParticiple: "abierto"},
	{Infinitive: "cubrir", IrregularParticiple: "cubierto"},
	{Infinitive: "descubrir", IrregularParticiple: "descubierto"},
	{Infinitive: "morir", IrregularParticiple: "muerto"},
	{Infinitive: "volver", IrregularParticiple: "vuelto"},
	{Infinitive: "resolver", IrregularParticiple: "resuelto"},
	{Infinitive: "devolver", IrregularParticiple: "devuelto"},
	{Infinitive: "imprimir", IrregularParticiple: "impreso"},
}

// irregularByForm indexes every explicit surface form (and irregular
// gerund/participle) back to its verb, built once at package init so
// TryUnmakeIrregular is O(1) per lookup instead of scanning the table.
var irregularByForm = map[string][]UnmakeResult{}

func init() {
	for _, v := range irregularVerbs {
		for slot, form := range v.Forms {
			irregularByForm[form] = append(irregularByForm[form], UnmakeResult{Infinitive: v.Infinitive, Slot: slot})
		}
		if v.IrregularGerund != "" {
			irregularByForm[v.IrregularGerund] = append(irregularByForm[v.IrregularGerund], UnmakeResult{Infinitive: v.Infinitive, Slot: Slot{Tense: -1}})
		}
		if v.IrregularParticiple != "" {
			irregularByForm[v.IrregularParticiple] = append(irregularByForm[v.IrregularParticiple], UnmakeResult{Infinitive: v.Infinitive, Slot: Slot{Tense: -2}})
		}
	}
}

// TryUnmakeIrregular looks up word against the curated irregular-verb
// table.
func TryUnmakeIrregular(word string) []UnmakeResult {
	return irregularByForm[strings.ToLower(word)]
}

// IsIrregularInfinitive reports whether infinitive names one of the
// verbs in the curated irregular table.
func IsIrregularInfinitive(infinitive string) bool {
	lower := strings.ToLower(infinitive)
	for _, v := range irregularVerbs {
		if v.Infinitive == lower {
			return true
		}
	}
	return false
}
