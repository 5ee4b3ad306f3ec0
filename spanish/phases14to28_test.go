package spanish

import (
	"testing"

	"github.com/esgramatica/corrector"
)

func TestApplyCompoundParticiplesFixesIrregularParticiple(t *testing.T) {
	tokens := tokenize("Ha escribido la carta.")
	vr := newRecognizer(buildTestDict(verb("escribir")))
	applyCompoundParticiples(tokens, vr)
	g := grammarAt(tokens, "escribido")
	if g == nil || g.Replacement != "escrito" {
		t.Fatalf("expected escribido -> escrito, got %+v", g)
	}
}

func TestApplyCompoundParticiplesLeavesRegularParticipleAlone(t *testing.T) {
	tokens := tokenize("Ha hablado conmigo.")
	vr := newRecognizer(buildTestDict(verb("hablar")))
	applyCompoundParticiples(tokens, vr)
	if g := grammarAt(tokens, "hablado"); g != nil {
		t.Fatalf("expected no correction for a regular participle, got %+v", g)
	}
}

func TestApplyImpersonalHaberCorrectsPluralExistential(t *testing.T) {
	tokens := tokenize("Habían muchas personas en la fiesta.")
	applyImpersonalHaber(tokens, nil)
	g := grammarAt(tokens, "Habían")
	if g == nil || g.Replacement != "había" {
		t.Fatalf("expected Habían -> había, got %+v", g)
	}
}

func TestApplyImpersonalHaberLeavesAuxiliaryUseAlone(t *testing.T) {
	tokens := tokenize("Habían llegado temprano.")
	applyImpersonalHaber(tokens, nil)
	if g := grammarAt(tokens, "Habían"); g != nil {
		t.Fatalf("expected no correction before a participle, got %+v", g)
	}
}

func TestApplyImpersonalHacerFixesTemporalAgreement(t *testing.T) {
	tokens := tokenize("Hacen tres años que no lo veo.")
	applyImpersonalHacer(tokens, nil)
	g := grammarAt(tokens, "Hacen")
	if g == nil || g.Replacement != "hace" {
		t.Fatalf("expected Hacen -> hace, got %+v", g)
	}
}

func TestApplyExistentialHaberArticleFixesDefiniteArticle(t *testing.T) {
	tokens := tokenize("Hay el problema con el coche.")
	applyExistentialHaberArticle(tokens)
	g := grammarAt(tokens, "el")
	if g == nil || g.Replacement != "un" {
		t.Fatalf("expected el -> un after hay, got %+v", g)
	}
}

func TestApplyCounterfactualConditionalUsesImperfectSubjunctive(t *testing.T) {
	tokens := tokenize("Si hablaría más despacio, entenderíamos.")
	vr := newRecognizer(buildTestDict(verb("hablar")))
	applyCounterfactualConditional(tokens, vr)
	g := grammarAt(tokens, "hablaría")
	if g == nil || g.Replacement != "hablara" {
		t.Fatalf("expected hablaría -> hablara after si, got %+v", g)
	}
}

func TestApplyCollectiveNounAgreementForcesSingularVerb(t *testing.T) {
	tokens := tokenize("La gente hablan mucho.")
	dict := buildTestDict(verb("hablar"), noun("gente", corrector.GenderFeminine, corrector.NumberSingular))
	vr := newRecognizer(dict)
	applyCollectiveNounAgreement(tokens, dict, vr)
	g := grammarAt(tokens, "hablan")
	if g == nil || g.Replacement != "habla" {
		t.Fatalf("expected hablan -> habla after gente, got %+v", g)
	}
}

func TestApplyRelativeClauseAgreementFixesVerbNumber(t *testing.T) {
	tokens := tokenize("Los libros que compró están aquí.")
	dict := buildTestDict(verb("comprar"), noun("libros", corrector.GenderMasculine, corrector.NumberPlural))
	vr := newRecognizer(dict)
	applyRelativeClauseAgreement(tokens, dict, vr)
	g := grammarAt(tokens, "compró")
	if g == nil {
		t.Fatalf("expected a number correction for compró after a plural antecedent")
	}
}

func TestApplyUnoDeLosQueForcesPluralThirdPerson(t *testing.T) {
	tokens := tokenize("Es uno de los que más me gusta.")
	dict := buildTestDict(verb("gustar"))
	vr := newRecognizer(dict)
	applyUnoDeLosQue(tokens, vr)
	g := grammarAt(tokens, "gusta")
	if g == nil || g.Replacement != "gustan" {
		t.Fatalf("expected gusta -> gustan, got %+v", g)
	}
}

func TestApplyPleonasmsDeletesRedundantAdverb(t *testing.T) {
	tokens := tokenize("Vamos a subir arriba ahora.")
	applyPleonasms(tokens)
	for i := range tokens {
		if tokens[i].Text == "arriba" {
			if tokens[i].Deletion == nil {
				t.Fatalf("expected arriba to be flagged as redundant after subir")
			}
			return
		}
	}
	t.Fatal("arriba token not found")
}

func TestApplyFossilizedPrepositionsReplacesPhrase(t *testing.T) {
	tokens := tokenize("Esto se mide en base a los resultados.")
	applyFossilizedPrepositions(tokens)
	g := grammarAt(tokens, "en")
	if g == nil || g.Replacement != "con base en" {
		t.Fatalf("expected en base a -> con base en, got %+v", g)
	}
	for i := range tokens {
		if tokens[i].Text == "base" || tokens[i].Text == "a" {
			if tokens[i].Deletion == nil {
				t.Errorf("expected %q to be marked for deletion", tokens[i].Text)
			}
		}
	}
}

func TestApplyHaBeforeInfinitiveCorrectsPreposition(t *testing.T) {
	tokens := tokenize("Ha comer nos vamos.")
	applyHaBeforeInfinitive(tokens)
	g := grammarAt(tokens, "Ha")
	if g == nil || g.Replacement != "a" {
		t.Fatalf("expected Ha -> a before an infinitive, got %+v", g)
	}
}

func TestApplyHaBeforeInfinitiveLeavesAuxiliaryAlone(t *testing.T) {
	tokens := tokenize("Ha comido ya.")
	applyHaBeforeInfinitive(tokens)
	if g := grammarAt(tokens, "Ha"); g != nil {
		t.Fatalf("expected no correction before a participle, got %+v", g)
	}
}

func TestApplyInfinitiveAsImperativeSuggestsVosotrosForm(t *testing.T) {
	tokens := tokenize("¡Callar!")
	vr := newRecognizer(buildTestDict(verb("callar")))
	applyInfinitiveAsImperative(tokens, vr)
	g := grammarAt(tokens, "Callar")
	if g == nil || g.Replacement != "callad" {
		t.Fatalf("expected Callar -> callad, got %+v", g)
	}
}

func TestApplyCoordinatedSubjectsForcesPluralVerb(t *testing.T) {
	tokens := tokenize("Ni Juan ni María viene a la fiesta.")
	dict := buildTestDict(verb("venir"))
	vr := newRecognizer(dict)
	applyCoordinatedSubjects(tokens, dict, vr)
	g := grammarAt(tokens, "viene")
	if g == nil {
		t.Fatalf("expected viene to be pluralized after ni...ni")
	}
}
