package corrector

import "testing"

func TestIsUnitLike(t *testing.T) {
	for _, u := range []string{"kWh", "GHz", "km", "KM", "GB", "ms", "rpm"} {
		if !IsUnitLike(u) {
			t.Errorf("IsUnitLike(%q) = false", u)
		}
	}
	for _, w := range []string{"wh", "casa", "", "Mbx"} {
		if IsUnitLike(w) {
			t.Errorf("IsUnitLike(%q) = true, want false", w)
		}
	}
}

func TestUnitAfterNumberSkipsSpelling(t *testing.T) {
	tokens := NewTokenizer().Tokenize("pesa 70 kg exactos")
	for i, tok := range tokens {
		if tok.Text == "kg" {
			if !isUnitAfterNumber(tokens, i) {
				t.Error("kg after a number must be skipped")
			}
		}
		if tok.Text == "exactos" {
			if isUnitAfterNumber(tokens, i) {
				t.Error("an ordinary word after a unit must not be skipped")
			}
		}
	}
}
