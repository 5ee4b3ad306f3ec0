package corrector

import "testing"

func TestDepluralizeCandidates(t *testing.T) {
	cases := []struct {
		plural   string
		singular string
	}{
		{"luces", "luz"},
		{"naciones", "nación"},
		{"alemanes", "alemán"},
		{"franceses", "francés"},
		{"cojines", "cojín"},
		{"leones", "león"},
		{"comunes", "común"},
		{"rubíes", "rubí"},
		{"tabúes", "tabú"},
		{"árboles", "árbol"},
		{"casas", "casa"},
		{"clubs", "club"},
	}
	for _, c := range cases {
		got := DepluralizeCandidates(c.plural)
		if len(got) == 0 {
			t.Errorf("DepluralizeCandidates(%q) returned nothing", c.plural)
			continue
		}
		if got[0].Singular != c.singular {
			t.Errorf("DepluralizeCandidates(%q)[0] = %q, want %q (rule %s)", c.plural, got[0].Singular, c.singular, got[0].Rule)
		}
	}
}

// "meses" matches the accent-adding -eses rule first, but "mes" must
// still appear as a candidate for the dictionary re-query to accept.
func TestDepluralizeMesesOffersBareStrip(t *testing.T) {
	got := DepluralizeCandidates("meses")
	found := false
	for _, c := range got {
		if c.Singular == "mes" {
			found = true
		}
	}
	if !found {
		t.Errorf("DepluralizeCandidates(meses) = %v, want a \"mes\" candidate", got)
	}
}

func TestDepluralizeLeavesNonPluralsAlone(t *testing.T) {
	for _, w := range []string{"luz", "sol", "", "a"} {
		if got := DepluralizeCandidates(w); len(got) != 0 {
			t.Errorf("DepluralizeCandidates(%q) = %v, want none", w, got)
		}
	}
}
