package corrector

import "testing"

func tok(text string, typ TokenType) Token {
	return Token{Text: text, Type: typ}
}

func TestRenderPlainTokensVerbatim(t *testing.T) {
	in := "Hola,  mundo…"
	tokens := NewTokenizer().Tokenize(in)
	if got := Render(tokens); got != in {
		t.Errorf("Render without annotations = %q, want input %q", got, in)
	}
}

func TestRenderSpellingNotation(t *testing.T) {
	tokens := []Token{tok("cassa", TokenWord)}
	tokens[0].Spelling = &SpellingAnnotation{Candidates: []string{"casa", "caza"}}
	if got := Render(tokens); got != "cassa |casa,caza|" {
		t.Errorf("Render = %q", got)
	}
}

func TestRenderGrammarNotation(t *testing.T) {
	tokens := []Token{tok("el", TokenWord)}
	tokens[0].Grammar = &GrammarAnnotation{Replacement: "la", RuleID: 1}
	if got := Render(tokens); got != "el [la]" {
		t.Errorf("Render = %q", got)
	}
}

func TestRenderDeletionNotation(t *testing.T) {
	tokens := []Token{tok("arriba", TokenWord)}
	tokens[0].Deletion = &DeletionAnnotation{RuleID: 22}
	if got := Render(tokens); got != "~~arriba~~" {
		t.Errorf("Render = %q", got)
	}
}

func TestRenderInsertions(t *testing.T) {
	tokens := []Token{tok("que", TokenWord)}
	tokens[0].InsertPre = &InsertionAnnotation{Side: InsertBefore, Text: "de", RuleID: 11}
	if got := Render(tokens); got != "[de] que" {
		t.Errorf("insert-before = %q", got)
	}

	tokens = []Token{tok("Hola", TokenWord)}
	tokens[0].InsertPost = &InsertionAnnotation{Side: InsertAfter, Text: ",", RuleID: 13}
	if got := Render(tokens); got != "Hola [,]" {
		t.Errorf("insert-after = %q", got)
	}
}

func TestRenderPreservesCapitalizationPattern(t *testing.T) {
	cases := []struct {
		surface, replacement, want string
	}{
		{"El", "la", "El [La]"},
		{"EL", "la", "EL [LA]"},
		{"el", "la", "el [la]"},
		{"Habían", "había", "Habían [Había]"},
	}
	for _, c := range cases {
		tokens := []Token{tok(c.surface, TokenWord)}
		tokens[0].Grammar = &GrammarAnnotation{Replacement: c.replacement}
		if got := Render(tokens); got != c.want {
			t.Errorf("Render(%q -> %q) = %q, want %q", c.surface, c.replacement, got, c.want)
		}
	}
}

func TestRenderDeletionWinsOverOtherAnnotations(t *testing.T) {
	tokens := []Token{tok("de", TokenWord)}
	tokens[0].Deletion = &DeletionAnnotation{RuleID: 11}
	tokens[0].Spelling = &SpellingAnnotation{Candidates: []string{"dé"}}
	if got := Render(tokens); got != "~~de~~" {
		t.Errorf("Render = %q, want the strikethrough", got)
	}
}
