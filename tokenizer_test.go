package corrector

import "testing"

func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"Hola mundo.",
		"¿Qué tal? ¡Bien!",
		"El número 3,14 y el 6K…",
		"palabra  con   espacios\ty\ntabs",
		"email: alguien@ejemplo.com",
		"canción, güeña, Ñandú",
	}
	tz := NewTokenizer()
	for _, in := range inputs {
		tokens := tz.Tokenize(in)
		if got := Reconstruct(tokens); got != in {
			t.Errorf("round-trip failed:\n in: %q\nout: %q", in, got)
		}
	}
}

func TestTokenizeOffsetsPartitionInput(t *testing.T) {
	in := "¿Vienes mañana? Sí, a las 3."
	tokens := NewTokenizer().Tokenize(in)
	pos := 0
	for i, tok := range tokens {
		if tok.Start != pos {
			t.Fatalf("token %d starts at byte %d, want %d (gap or overlap)", i, tok.Start, pos)
		}
		if in[tok.Start:tok.End] != tok.Text {
			t.Fatalf("token %d text %q does not match its span %q", i, tok.Text, in[tok.Start:tok.End])
		}
		pos = tok.End
	}
	if pos != len(in) {
		t.Fatalf("tokens cover %d bytes, input has %d", pos, len(in))
	}
}

func TestTokenTypes(t *testing.T) {
	tokens := NewTokenizer().Tokenize("¿Hola? ¡Ah! Sí… 42 6K casa.")
	want := map[string]TokenType{
		"¿":    TokenInvertedQuestion,
		"¡":    TokenInvertedExclaim,
		"…":    TokenEllipsis,
		"42":   TokenNumber,
		"6K":   TokenMixed,
		"casa": TokenWord,
		".":    TokenPunctuation,
		"?":    TokenPunctuation,
	}
	for _, tok := range tokens {
		if expected, ok := want[tok.Text]; ok && tok.Type != expected {
			t.Errorf("token %q has type %v, want %v", tok.Text, tok.Type, expected)
		}
	}
}

func TestNumbersKeepLocaleSeparators(t *testing.T) {
	tokens := NewTokenizer().Tokenize("cuesta 1.234,56 euros")
	found := false
	for _, tok := range tokens {
		if tok.Text == "1.234,56" {
			found = true
			if tok.Type != TokenNumber {
				t.Errorf("1.234,56 tokenized as %v, want number", tok.Type)
			}
		}
	}
	if !found {
		t.Error("1.234,56 was split apart")
	}
}

func TestWordInternalCharsExtendWordTokens(t *testing.T) {
	// default tokenizer splits the Catalan geminated l
	tokens := NewTokenizer().Tokenize("col·legi")
	if len(tokens) == 1 {
		t.Fatal("middle dot should split words unless the language opts in")
	}

	tz := NewTokenizer()
	tz.WordInternalChars = map[rune]bool{'·': true}
	tokens = tz.Tokenize("col·legi")
	if len(tokens) != 1 || tokens[0].Text != "col·legi" {
		t.Fatalf("with the middle dot enabled, got %d tokens %v, want one word", len(tokens), tokens)
	}
}

func TestApostropheJoinsElisions(t *testing.T) {
	tokens := NewTokenizer().Tokenize("l'aigua")
	if len(tokens) != 1 {
		t.Fatalf("l'aigua split into %d tokens, want 1", len(tokens))
	}
	if tokens[0].Type != TokenWord {
		t.Errorf("l'aigua type = %v, want word", tokens[0].Type)
	}
}

func TestSentenceBoundaryIndex(t *testing.T) {
	list := NewTokenizer().Tokenize("Uno dos. Tres cuatro")
	ts := NewTokens(list)

	var dotIdx, unoIdx, tresIdx int
	for i, tok := range list {
		switch tok.Text {
		case ".":
			dotIdx = i
		case "Uno":
			unoIdx = i
		case "Tres":
			tresIdx = i
		}
	}
	if !ts.HasSentenceBoundaryBetween(unoIdx, tresIdx) {
		t.Error("expected a boundary between the two sentences")
	}
	if ts.HasSentenceBoundaryBetween(unoIdx, dotIdx) {
		t.Error("the boundary token itself lies outside the strict span")
	}
	if ts.HasSentenceBoundaryBetween(tresIdx, len(list)) {
		t.Error("no boundary after the second sentence")
	}
}
