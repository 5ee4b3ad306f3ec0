package verbs

import "strings"

// StemChangeType names a vowel alternation that a stressed stem syllable
// undergoes in certain slots of an otherwise-regular paradigm.
type StemChangeType int

const (
	ChangeEIE StemChangeType = iota // pensar -> pienso
	ChangeOUE                       // contar -> cuento
	ChangeEI                        // pedir -> pido
	ChangeUUE                       // jugar -> juego
	ChangeCZC                       // conocer -> conozco
)

func (c StemChangeType) alternate() (from, to string) {
	switch c {
	case ChangeEIE:
		return "e", "ie"
	case ChangeOUE:
		return "o", "ue"
	case ChangeEI:
		return "e", "i"
	case ChangeUUE:
		return "u", "ue"
	case ChangeCZC:
		return "c", "zc"
	}
	return "", ""
}

// StemChangingVerb is a verb whose stem alternates in the stressed
// present-tense slots (1st/2nd/3rd singular and 3rd plural) but is
// otherwise a regular -ar/-er/-ir conjugation.
type StemChangingVerb struct {
	Infinitive string
	Change     StemChangeType
}

// stemChangingVerbs covers the common stem-changers for each of the
// five alternation patterns. Data, not code: adding a verb is one line.
var stemChangingVerbs = []StemChangingVerb{
	// e -> ie
	{"pensar", ChangeEIE}, {"cerrar", ChangeEIE}, {"comenzar", ChangeEIE}, {"empezar", ChangeEIE},
	{"despertar", ChangeEIE}, {"sentar", ChangeEIE}, {"calentar", ChangeEIE}, {"gobernar", ChangeEIE},
	{"negar", ChangeEIE}, {"nevar", ChangeEIE}, {"recomendar", ChangeEIE}, {"confesar", ChangeEIE},
	{"apretar", ChangeEIE}, {"atravesar", ChangeEIE}, {"helar", ChangeEIE}, {"merendar", ChangeEIE},
	{"quebrar", ChangeEIE}, {"regar", ChangeEIE}, {"sembrar", ChangeEIE}, {"temblar", ChangeEIE},
	{"tropezar", ChangeEIE}, {"encerrar", ChangeEIE}, {"enterrar", ChangeEIE}, {"manifestar", ChangeEIE},
	{"fregar", ChangeEIE}, {"acertar", ChangeEIE}, {"alentar", ChangeEIE},
	{"entender", ChangeEIE}, {"perder", ChangeEIE}, {"defender", ChangeEIE}, {"encender", ChangeEIE},
	{"descender", ChangeEIE}, {"ascender", ChangeEIE}, {"atender", ChangeEIE}, {"extender", ChangeEIE},
	{"tender", ChangeEIE}, {"verter", ChangeEIE},
	{"sentir", ChangeEIE}, {"mentir", ChangeEIE}, {"preferir", ChangeEIE}, {"referir", ChangeEIE},
	{"herir", ChangeEIE}, {"hervir", ChangeEIE}, {"convertir", ChangeEIE}, {"divertir", ChangeEIE},
	{"advertir", ChangeEIE}, {"invertir", ChangeEIE}, {"sugerir", ChangeEIE}, {"digerir", ChangeEIE},
	{"consentir", ChangeEIE}, {"presentir", ChangeEIE}, {"desmentir", ChangeEIE}, {"arrepentir", ChangeEIE},

	// o -> ue
	{"contar", ChangeOUE}, {"costar", ChangeOUE}, {"encontrar", ChangeOUE}, {"mostrar", ChangeOUE},
	{"demostrar", ChangeOUE}, {"recordar", ChangeOUE}, {"acordar", ChangeOUE}, {"acostar", ChangeOUE},
	{"almorzar", ChangeOUE}, {"apostar", ChangeOUE}, {"colgar", ChangeOUE}, {"descolgar", ChangeOUE},
	{"probar", ChangeOUE}, {"aprobar", ChangeOUE}, {"comprobar", ChangeOUE}, {"rogar", ChangeOUE},
	{"soltar", ChangeOUE}, {"sonar", ChangeOUE}, {"soñar", ChangeOUE}, {"volar", ChangeOUE},
	{"volcar", ChangeOUE}, {"renovar", ChangeOUE}, {"rodar", ChangeOUE}, {"tostar", ChangeOUE},
	{"tronar", ChangeOUE}, {"forzar", ChangeOUE}, {"esforzar", ChangeOUE}, {"reforzar", ChangeOUE},
	{"consolar", ChangeOUE},
	{"volver", ChangeOUE}, {"devolver", ChangeOUE}, {"envolver", ChangeOUE}, {"revolver", ChangeOUE},
	{"resolver", ChangeOUE}, {"mover", ChangeOUE}, {"remover", ChangeOUE}, {"conmover", ChangeOUE},
	{"llover", ChangeOUE}, {"morder", ChangeOUE}, {"doler", ChangeOUE}, {"soler", ChangeOUE},
	{"torcer", ChangeOUE}, {"poder", ChangeOUE},
	{"dormir", ChangeOUE}, {"morir", ChangeOUE},

	// e -> i
	{"pedir", ChangeEI}, {"despedir", ChangeEI}, {"impedir", ChangeEI}, {"medir", ChangeEI},
	{"servir", ChangeEI}, {"repetir", ChangeEI}, {"seguir", ChangeEI}, {"conseguir", ChangeEI},
	{"perseguir", ChangeEI}, {"proseguir", ChangeEI}, {"vestir", ChangeEI}, {"desvestir", ChangeEI},
	{"elegir", ChangeEI}, {"corregir", ChangeEI}, {"regir", ChangeEI}, {"gemir", ChangeEI},
	{"rendir", ChangeEI}, {"teñir", ChangeEI}, {"ceñir", ChangeEI}, {"reñir", ChangeEI},
	{"competir", ChangeEI}, {"derretir", ChangeEI}, {"expedir", ChangeEI},

	// u -> ue
	{"jugar", ChangeUUE},

	// c -> zc
	{"conocer", ChangeCZC}, {"reconocer", ChangeCZC}, {"desconocer", ChangeCZC}, {"parecer", ChangeCZC},
	{"aparecer", ChangeCZC}, {"desaparecer", ChangeCZC}, {"nacer", ChangeCZC}, {"renacer", ChangeCZC},
	{"crecer", ChangeCZC}, {"merecer", ChangeCZC}, {"ofrecer", ChangeCZC}, {"padecer", ChangeCZC},
	{"pertenecer", ChangeCZC}, {"obedecer", ChangeCZC}, {"agradecer", ChangeCZC}, {"establecer", ChangeCZC},
	{"envejecer", ChangeCZC}, {"enriquecer", ChangeCZC}, {"favorecer", ChangeCZC}, {"carecer", ChangeCZC},
	{"permanecer", ChangeCZC}, {"apetecer", ChangeCZC}, {"compadecer", ChangeCZC},
	{"conducir", ChangeCZC}, {"traducir", ChangeCZC}, {"producir", ChangeCZC}, {"reproducir", ChangeCZC},
	{"reducir", ChangeCZC}, {"introducir", ChangeCZC}, {"deducir", ChangeCZC}, {"lucir", ChangeCZC},
}

var stemChangingByInfinitive = map[string]StemChangeType{}

func init() {
	for _, v := range stemChangingVerbs {
		stemChangingByInfinitive[v.Infinitive] = v.Change
	}
}

// stressedPresentSlots are the slots where a stem-changing verb actually
// shows the alternation: the present-tense singulars and the third
// plural, in any mood; the 1st/2nd plural keep the unstressed base vowel.
func isStressedPresentSlot(s Slot) bool {
	if s.Tense != TensePresente {
		return false
	}
	switch s.Person {
	case PersonFirst, PersonSecond:
		return s.Number == VerbSingular
	case PersonThird:
		return true
	}
	return false
}

// TryUnmakeStemChanging attempts to reverse a stem-changing alternation
// and validate the result against the curated table.
// The dictionary check for "is stem+ending a real verb" is left to the
// caller exactly as in TryUnmakeRegular.
func TryUnmakeStemChanging(word string) []UnmakeResult {
	lower := strings.ToLower(word)
	var out []UnmakeResult

	for _, class := range []Class{ClassAr, ClassEr, ClassIr} {
		for slot, ending := range stemEndings[class] {
			if !isStressedPresentSlot(slot) && slot.Mood != MoodSubjuntivo {
				continue
			}
			if !strings.HasSuffix(lower, ending) {
				continue
			}
			stem := lower[:len(lower)-len(ending)]
			for _, ct := range []StemChangeType{ChangeEIE, ChangeOUE, ChangeEI, ChangeUUE, ChangeCZC} {
				from, to := ct.alternate()
				if !strings.Contains(stem, to) {
					continue
				}
				restored := replaceLast(stem, to, from)
				infinitive := restored + class.Ending()
				if got, ok := stemChangingByInfinitive[infinitive]; ok && got == ct {
					out = append(out, UnmakeResult{Infinitive: infinitive, Slot: slot})
				}
			}
		}
	}
	sortUnmakeResults(out)
	return out
}

// replaceLast replaces the last occurrence of old in s with new, since
// the stressed syllable that changes is the one nearest the ending.
func replaceLast(s, old, new string) string {
	idx := strings.LastIndex(s, old)
	if idx < 0 {
		return s
	}
	return s[:idx] + new + s[idx+len(old):]
}
