package catalan

import (
	"testing"

	"github.com/esgramatica/corrector"
)

func TestRegisteredUnderAliases(t *testing.T) {
	for _, code := range []string{"ca", "catalan", "català"} {
		lang, err := corrector.GetLanguage(code)
		if err != nil {
			t.Fatalf("GetLanguage(%q) failed: %v", code, err)
		}
		if lang.Code() != "ca" {
			t.Errorf("Code() = %q, want ca", lang.Code())
		}
	}
}

func TestGrammarCorrectionsAreNoOp(t *testing.T) {
	c := New()
	tokens := []corrector.Token{{Text: "hola", Type: corrector.TokenWord}}
	c.ApplyLanguageSpecificCorrections(tokens, nil, nil, nil)
	if tokens[0].HasAnnotation() {
		t.Errorf("Catalan must never annotate tokens")
	}
}

func TestWordInternalCharsIncludesMiddleDot(t *testing.T) {
	c := New()
	if !c.WordInternalChars()['·'] {
		t.Errorf("expected middle dot to continue a Catalan word token")
	}
}
