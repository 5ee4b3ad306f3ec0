package corrector_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	corrector "github.com/esgramatica/corrector"
	"github.com/esgramatica/corrector/catalan"
	"github.com/esgramatica/corrector/spanish"
)

// esEngine builds a Spanish engine over a small in-memory dictionary
// big enough to exercise the pipeline end to end.
func esEngine(t *testing.T) *corrector.Engine {
	t.Helper()
	dict := corrector.NewTrie()
	add := func(lemma string, cat corrector.WordCategory, g corrector.Gender, n corrector.Number, freq uint32) {
		dict.Insert(lemma, corrector.Entry{Lemma: lemma, Category: cat, Gender: g, Number: n, Frequency: freq})
	}

	add("el", corrector.CategoryArticulo, corrector.GenderMasculine, corrector.NumberSingular, 999)
	add("la", corrector.CategoryArticulo, corrector.GenderFeminine, corrector.NumberSingular, 999)
	add("casa", corrector.CategorySustantivo, corrector.GenderFeminine, corrector.NumberSingular, 900)
	add("libro", corrector.CategorySustantivo, corrector.GenderMasculine, corrector.NumberSingular, 700)
	add("carta", corrector.CategorySustantivo, corrector.GenderFeminine, corrector.NumberSingular, 500)
	add("razón", corrector.CategorySustantivo, corrector.GenderFeminine, corrector.NumberSingular, 300)
	add("persona", corrector.CategorySustantivo, corrector.GenderFeminine, corrector.NumberSingular, 800)
	add("muchas", corrector.CategoryDeterminante, corrector.GenderFeminine, corrector.NumberPlural, 400)
	add("a", corrector.CategoryPreposicion, corrector.GenderNone, corrector.NumberNone, 999)
	add("de", corrector.CategoryPreposicion, corrector.GenderNone, corrector.NumberNone, 999)
	add("que", corrector.CategoryConjuncion, corrector.GenderNone, corrector.NumberNone, 999)
	add("y", corrector.CategoryConjuncion, corrector.GenderNone, corrector.NumberNone, 999)
	add("tu", corrector.CategoryDeterminante, corrector.GenderCommon, corrector.NumberSingular, 600)
	add("tú", corrector.CategoryPronombre, corrector.GenderCommon, corrector.NumberSingular, 600)
	add("subir", corrector.CategoryVerbo, corrector.GenderNone, corrector.NumberNone, 500)
	add("bajar", corrector.CategoryVerbo, corrector.GenderNone, corrector.NumberNone, 500)
	add("pensar", corrector.CategoryVerbo, corrector.GenderNone, corrector.NumberNone, 700)
	add("cantar", corrector.CategoryVerbo, corrector.GenderNone, corrector.NumberNone, 400)
	add("haber", corrector.CategoryVerbo, corrector.GenderNone, corrector.NumberNone, 900)
	add("arriba", corrector.CategoryAdverbio, corrector.GenderNone, corrector.NumberNone, 300)
	add("abajo", corrector.CategoryAdverbio, corrector.GenderNone, corrector.NumberNone, 300)
	add("luego", corrector.CategoryAdverbio, corrector.GenderNone, corrector.NumberNone, 300)
	add("bien", corrector.CategoryAdverbio, corrector.GenderNone, corrector.NumberNone, 300)
	add("bonita", corrector.CategoryAdjetivo, corrector.GenderFeminine, corrector.NumberSingular, 200)

	return corrector.NewEngineFromData(spanish.New(), dict, nil, nil, 3)
}

func TestCorrectPleonasms(t *testing.T) {
	e := esEngine(t)
	got := e.Correct("Vamos a subir arriba y luego bajar abajo")
	want := "Vamos a subir ~~arriba~~ y luego bajar ~~abajo~~"
	if got != want {
		t.Errorf("Correct = %q, want %q", got, want)
	}
}

func TestCorrectIrregularParticiple(t *testing.T) {
	e := esEngine(t)
	got := e.Correct("He escribido la carta")
	want := "He escribido [escrito] la carta"
	if got != want {
		t.Errorf("Correct = %q, want %q", got, want)
	}
}

func TestCorrectImpersonalHaber(t *testing.T) {
	e := esEngine(t)
	got := e.Correct("Habían muchas personas")
	want := "Habían [Había] muchas personas"
	if got != want {
		t.Errorf("Correct = %q, want %q", got, want)
	}
}

func TestCorrectDequeismoOnConjugatedVerb(t *testing.T) {
	e := esEngine(t)
	got := e.Correct("Pienso de que tienes razón")
	want := "Pienso ~~de~~ que tienes razón"
	if got != want {
		t.Errorf("Correct = %q, want %q", got, want)
	}
}

func TestCorrectDiacriticHomophone(t *testing.T) {
	e := esEngine(t)
	got := e.Correct("Tu cantas bien")
	want := "Tu [Tú] cantas bien"
	if got != want {
		t.Errorf("Correct = %q, want %q", got, want)
	}
}

func TestCorrectArticleAgreementPreservesCapitalization(t *testing.T) {
	e := esEngine(t)
	got := e.Correct("La libro")
	want := "La [El] libro"
	if got != want {
		t.Errorf("Correct = %q, want %q", got, want)
	}
}

func TestCorrectLeavesValidTextAlone(t *testing.T) {
	e := esEngine(t)
	for _, text := range []string{
		"La casa es bonita",
		"Pienso que tienes razón",
		"",
		"   ",
		"42 %",
	} {
		if got := e.Correct(text); got != text {
			t.Errorf("Correct(%q) = %q, want unchanged", text, got)
		}
	}
}

func TestCorrectDetailedReportsTriggers(t *testing.T) {
	e := esEngine(t)
	out, triggers := e.CorrectDetailed("He escribido la carta")
	if out != "He escribido [escrito] la carta" {
		t.Fatalf("CorrectDetailed output = %q", out)
	}
	if len(triggers) != 1 {
		t.Fatalf("got %d triggers, want 1: %+v", len(triggers), triggers)
	}
	if triggers[0].Kind != "grammar" || triggers[0].RuleID != spanish.RuleCompoundParticiple {
		t.Errorf("trigger = %+v, want grammar rule %d", triggers[0], spanish.RuleCompoundParticiple)
	}
}

func TestCatalanSpellingOnly(t *testing.T) {
	dict := corrector.NewTrie()
	for _, w := range []string{"col·legi", "casa", "l'", "aigua", "el"} {
		dict.Insert(w, corrector.Entry{Lemma: w, Category: corrector.CategorySustantivo, Frequency: 100})
	}
	e := corrector.NewEngineFromData(catalan.New(), dict, nil, nil, 3)

	if got := e.Correct("el col·legi"); got != "el col·legi" {
		t.Errorf("known Catalan words must pass through, got %q", got)
	}
	if got := e.Correct("l'aigua"); got != "l'aigua" {
		t.Errorf("a valid elision must pass through, got %q", got)
	}
	if got := e.Correct("kasa"); got != "kasa |casa|" {
		t.Errorf("Correct(kasa) = %q, want a spelling suggestion", got)
	}
}

func TestMergeCustomWordsReachesSpelling(t *testing.T) {
	e := esEngine(t)
	if got := e.Correct("vasa"); got == "vasa" {
		t.Fatalf("precondition failed: %q should draw a suggestion", got)
	}
	e.MergeCustomWords([]string{"vasa"})
	if got := e.Correct("vasa"); got != "vasa" {
		t.Errorf("after MergeCustomWords, Correct(vasa) = %q, want unchanged", got)
	}
}

func TestGetLanguageUnknownCode(t *testing.T) {
	_, err := corrector.GetLanguage("xx")
	if !errors.Is(err, corrector.ErrUnknownLanguage) {
		t.Fatalf("err = %v, want ErrUnknownLanguage", err)
	}
}

func TestCorrectEntryPointLoadsFromDataDir(t *testing.T) {
	dataDir := t.TempDir()
	esDir := filepath.Join(dataDir, "es")
	if err := os.MkdirAll(esDir, 0o755); err != nil {
		t.Fatal(err)
	}
	dictContent := "casa|sustantivo|f|s|_|900\nla|articulo|f|s|_|999\nel|articulo|m|s|_|999\nlibro|sustantivo|m|s|_|700\n"
	if err := os.WriteFile(filepath.Join(esDir, "dictionary.txt"), []byte(dictContent), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(esDir, "names.txt"), []byte("María\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := corrector.Config{DataDir: dataDir}
	got, err := corrector.Correct("La libro", "es", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got != "La [El] libro" {
		t.Errorf("Correct = %q, want %q", got, "La [El] libro")
	}

	cfg.UseMmap = true
	got, err = corrector.Correct("La libro", "es", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got != "La [El] libro" {
		t.Errorf("mmap-backed Correct = %q, want %q", got, "La [El] libro")
	}
}

func TestCorrectEntryPointErrors(t *testing.T) {
	if _, err := corrector.Correct("hola", "xx", corrector.Config{}); !errors.Is(err, corrector.ErrUnknownLanguage) {
		t.Errorf("unknown language: err = %v", err)
	}
	if _, err := corrector.Correct("hola", "es", corrector.Config{DataDir: t.TempDir()}); !errors.Is(err, corrector.ErrDataMissing) {
		t.Errorf("missing dictionary: err = %v", err)
	}
}
