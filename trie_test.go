package corrector

import "testing"

func TestTrieInsertAndLookup(t *testing.T) {
	trie := NewTrie()
	trie.Insert("casa", Entry{Lemma: "casa", Category: CategorySustantivo, Gender: GenderFeminine, Number: NumberSingular, Frequency: 900})

	if !trie.Contains("casa") {
		t.Fatal("Contains(casa) = false after insert")
	}
	if trie.Contains("cas") {
		t.Error("prefix of a stored word must not be a word itself")
	}
	entries := trie.Get("casa")
	if len(entries) != 1 {
		t.Fatalf("Get(casa) returned %d entries, want 1", len(entries))
	}
	if entries[0].Gender != GenderFeminine {
		t.Errorf("Get(casa) gender = %v, want feminine", entries[0].Gender)
	}
}

func TestTrieLookupIsCaseInsensitive(t *testing.T) {
	trie := NewTrie()
	trie.InsertWord("Casa")
	if !trie.Contains("casa") || !trie.Contains("CASA") {
		t.Error("keys must be lower-cased on both insert and lookup")
	}
}

func TestTriePreservesDiacritics(t *testing.T) {
	trie := NewTrie()
	trie.InsertWord("canción")
	if !trie.Contains("canción") {
		t.Fatal("diacritics must be preserved in keys")
	}
	if trie.Contains("cancion") {
		t.Error("the accent-stripped form must not match")
	}
}

func TestTrieMergesDuplicateFeatureTuples(t *testing.T) {
	trie := NewTrie()
	e := Entry{Lemma: "cura", Category: CategorySustantivo, Gender: GenderMasculine, Number: NumberSingular, Frequency: 10}
	trie.Insert("cura", e)
	trie.Insert("cura", e) // same tuple, must not duplicate
	trie.Insert("cura", Entry{Lemma: "cura", Category: CategorySustantivo, Gender: GenderFeminine, Number: NumberSingular, Frequency: 5})

	entries := trie.Get("cura")
	if len(entries) != 2 {
		t.Fatalf("Get(cura) returned %d entries, want 2 (exact duplicate merged, distinct tuple kept)", len(entries))
	}
	if trie.Len() != 1 {
		t.Errorf("Len() = %d, want 1 distinct surface form", trie.Len())
	}
}

func TestTrieWordsWithPrefix(t *testing.T) {
	trie := NewTrie()
	for _, w := range []string{"casa", "casar", "caso", "perro"} {
		trie.InsertWord(w)
	}
	words := trie.WordsWithPrefix("cas")
	if len(words) != 3 {
		t.Fatalf("WordsWithPrefix(cas) = %v, want 3 words", words)
	}
	seen := map[string]bool{}
	for _, w := range words {
		seen[w] = true
	}
	for _, want := range []string{"casa", "casar", "caso"} {
		if !seen[want] {
			t.Errorf("WordsWithPrefix(cas) missing %q", want)
		}
	}
}

func TestTrieAllWordsRoundTrip(t *testing.T) {
	trie := NewTrie()
	trie.Insert("sol", Entry{Lemma: "sol", Category: CategorySustantivo, Gender: GenderMasculine, Number: NumberSingular, Frequency: 7})
	trie.InsertWord("luna")

	all := trie.AllWords()
	if len(all) != 2 {
		t.Fatalf("AllWords() returned %d forms, want 2", len(all))
	}
	if all["sol"][0].Frequency != 7 {
		t.Errorf("AllWords lost the sol entry's frequency")
	}

	merged := DictionaryLoader{}.Merge(trie, NewTrie())
	if merged.Len() != 2 {
		t.Errorf("Merge lost words: Len() = %d, want 2", merged.Len())
	}
}
