package verbs

import "testing"

func containsInfinitive(results []UnmakeResult, infinitive string) bool {
	for _, r := range results {
		if r.Infinitive == infinitive {
			return true
		}
	}
	return false
}

func TestTryUnmakeRegularPresentAr(t *testing.T) {
	results := TryUnmakeRegular("hablamos")
	if !containsInfinitive(results, "hablar") {
		t.Errorf("expected hablamos to unmake to hablar, got %v", results)
	}
}

func TestTryUnmakeRegularPreteritoEr(t *testing.T) {
	results := TryUnmakeRegular("comió")
	if !containsInfinitive(results, "comer") {
		t.Errorf("expected comió to unmake to comer, got %v", results)
	}
}

func TestTryUnmakeRegularFuturoAttachesToInfinitive(t *testing.T) {
	results := TryUnmakeRegular("hablaremos")
	if !containsInfinitive(results, "hablar") {
		t.Errorf("expected hablaremos to unmake to hablar via futuro, got %v", results)
	}
}

func TestTryUnmakeRegularGerund(t *testing.T) {
	results := TryUnmakeRegular("viviendo")
	if !containsInfinitive(results, "vivir") {
		t.Errorf("expected viviendo to propose vivir among candidates, got %v", results)
	}
}
