package verbs

import (
	"testing"

	"github.com/esgramatica/corrector"
)

func buildTestDict(verbs ...string) *corrector.Trie {
	trie := corrector.NewTrie()
	for _, v := range verbs {
		trie.Insert(v, corrector.Entry{Lemma: v, Category: corrector.CategoryVerbo, Frequency: 100})
	}
	return trie
}

func TestRecognizeRegularConjugation(t *testing.T) {
	r := NewRecognizer(buildTestDict("hablar"))
	res, ok := r.Recognize("hablamos")
	if !ok {
		t.Fatalf("expected hablamos to be recognized")
	}
	if res.Lemma != "hablar" {
		t.Errorf("lemma = %q, want hablar", res.Lemma)
	}
}

func TestRecognizeWithPrefix(t *testing.T) {
	r := NewRecognizer(buildTestDict("rehacer"))
	res, ok := r.Recognize("rehizo")
	if !ok {
		t.Fatalf("expected rehizo to be recognized")
	}
	if res.Lemma != "rehacer" {
		t.Errorf("lemma = %q, want rehacer", res.Lemma)
	}
	if res.Prefix != "re" {
		t.Errorf("prefix = %q, want re", res.Prefix)
	}
}

func TestRecognizeWithEnclitic(t *testing.T) {
	r := NewRecognizer(buildTestDict("dar"))
	res, ok := r.Recognize("dame")
	if !ok {
		t.Fatalf("expected dame to be recognized")
	}
	if res.Lemma != "dar" {
		t.Errorf("lemma = %q, want dar", res.Lemma)
	}
	if len(res.Enclitics) != 1 || res.Enclitics[0] != "me" {
		t.Errorf("enclitics = %v, want [me]", res.Enclitics)
	}
}

func TestRecognizeUnknownWordFails(t *testing.T) {
	r := NewRecognizer(buildTestDict("hablar"))
	if _, ok := r.Recognize("xyzabc"); ok {
		t.Errorf("expected xyzabc to not be recognized")
	}
}

func TestIsValidVerbFormSatisfiesInterface(t *testing.T) {
	r := NewRecognizer(buildTestDict("comer"))
	var _ corrector.VerbFormRecognizer = r
	if !r.IsValidVerbForm("comemos") {
		t.Errorf("expected comemos to be a valid verb form")
	}
}
