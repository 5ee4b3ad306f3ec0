package verbs

import "testing"

func TestTryUnmakeStemChangingEIE(t *testing.T) {
	results := TryUnmakeStemChanging("pienso")
	if !containsInfinitive(results, "pensar") {
		t.Errorf("expected pienso to unmake to pensar, got %v", results)
	}
}

func TestTryUnmakeStemChangingOUE(t *testing.T) {
	results := TryUnmakeStemChanging("cuento")
	if !containsInfinitive(results, "contar") {
		t.Errorf("expected cuento to unmake to contar, got %v", results)
	}
}

func TestTryUnmakeStemChangingUnstressedFormNotFlagged(t *testing.T) {
	// contamos is the regular, unstressed 1st-plural present form and
	// keeps the base vowel; it is not itself a stem-changing alternation.
	if results := TryUnmakeStemChanging("contamos"); len(results) != 0 {
		t.Errorf("contamos should not match the stem-changing cascade: %v", results)
	}
}
