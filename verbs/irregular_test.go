package verbs

import "testing"

func TestTryUnmakeIrregularSer(t *testing.T) {
	results := TryUnmakeIrregular("somos")
	if !containsInfinitive(results, "ser") {
		t.Errorf("expected somos to resolve to ser, got %v", results)
	}
}

func TestTryUnmakeIrregularNoMatch(t *testing.T) {
	if results := TryUnmakeIrregular("hablamos"); len(results) != 0 {
		t.Errorf("hablamos is regular, should not appear in the irregular table: %v", results)
	}
}

func TestIsIrregularInfinitive(t *testing.T) {
	if !IsIrregularInfinitive("Ser") {
		t.Errorf("expected case-insensitive match for ser")
	}
	if IsIrregularInfinitive("hablar") {
		t.Errorf("hablar is a regular verb")
	}
}
