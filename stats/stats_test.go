package stats

import "testing"

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordGrammarTriggerAccumulates(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 3; i++ {
		if err := s.RecordGrammarTrigger("es", 11); err != nil {
			t.Fatalf("RecordGrammarTrigger: %v", err)
		}
	}

	rows, err := s.TopRules(10)
	if err != nil {
		t.Fatalf("TopRules: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d: %+v", len(rows), rows)
	}
	if rows[0].Count != 3 || rows[0].RuleID != 11 || rows[0].Language != "es" || rows[0].Kind != "grammar" {
		t.Errorf("unexpected row: %+v", rows[0])
	}
}

func TestTopRulesOrdersByCountDescending(t *testing.T) {
	s := openTestStore(t)

	s.RecordGrammarTrigger("es", 1)
	for i := 0; i < 5; i++ {
		s.RecordGrammarTrigger("es", 2)
	}
	s.RecordSpellingTrigger("ca")

	rows, err := s.TopRules(10)
	if err != nil {
		t.Fatalf("TopRules: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].RuleID != 2 || rows[0].Count != 5 {
		t.Errorf("expected rule 2 (count 5) first, got %+v", rows[0])
	}
}

func TestRecordSpellingTriggerUsesRuleIDZero(t *testing.T) {
	s := openTestStore(t)

	if err := s.RecordSpellingTrigger("ca"); err != nil {
		t.Fatalf("RecordSpellingTrigger: %v", err)
	}

	rows, err := s.TopRules(10)
	if err != nil {
		t.Fatalf("TopRules: %v", err)
	}
	if len(rows) != 1 || rows[0].Kind != "spelling" || rows[0].RuleID != 0 {
		t.Errorf("unexpected row: %+v", rows)
	}
}
