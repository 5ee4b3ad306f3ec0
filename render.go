package corrector

import "strings"

// Render walks the token stream and emits, for each token, either the
// original surface (no annotation) or the surface decorated with the
// correction notation. Insertion annotations emit their text outside
// the token boundary; whitespace tokens are emitted verbatim.
//
// Precedence when a token carries more than one annotation kind:
// Deletion takes the surface (strikethrough) regardless of any spelling/
// grammar annotation also present, then insertions are applied around it.
func Render(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		if t.InsertPre != nil {
			writeInsertion(&sb, t.InsertPre)
		}

		sb.WriteString(renderToken(t))

		if t.InsertPost != nil {
			writeInsertion(&sb, t.InsertPost)
		}
	}
	return sb.String()
}

func renderToken(t Token) string {
	switch {
	case t.Deletion != nil:
		return "~~" + t.Text + "~~"
	case t.Grammar != nil:
		replacement := preserveCapitalization(t.Text, t.Grammar.Replacement)
		return t.Text + " [" + replacement + "]"
	case t.Spelling != nil && len(t.Spelling.Candidates) > 0:
		return t.Text + " |" + strings.Join(t.Spelling.Candidates, ",") + "|"
	default:
		return t.Text
	}
}

func writeInsertion(sb *strings.Builder, ins *InsertionAnnotation) {
	if ins.Side == InsertBefore {
		sb.WriteString("[" + ins.Text + "] ")
	} else {
		sb.WriteString(" [" + ins.Text + "]")
	}
}

// preserveCapitalization applies original's capitalization pattern
// (leading-cap, all-caps, or lower) to replacement.
func preserveCapitalization(original, replacement string) string {
	if original == "" || replacement == "" {
		return replacement
	}
	if isAllCaps(original) {
		return strings.ToUpper(replacement)
	}
	if isLeadingCapitalized(original) {
		return capitalizeLeading(replacement)
	}
	return replacement
}

func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if !(r >= 'A' && r <= 'Z') && !strings.ContainsRune("ÁÉÍÓÚÜÑ", r) {
			if r >= 'a' && r <= 'z' {
				return false
			}
			continue
		}
		hasLetter = true
	}
	return hasLetter
}
