package corrector

import "unicode"

// Tokenizer turns text into a typed token stream preserving exact byte
// offsets.
type Tokenizer struct {
	// WordInternalChars are runes, beyond letters and combining marks,
	// that continue a word token instead of breaking it — the
	// per-language hook (e.g. Catalan's middle dot "·").
	WordInternalChars map[rune]bool
}

// NewTokenizer returns a tokenizer with no language-specific internal
// characters (Spanish needs none beyond letters/combining marks).
func NewTokenizer() *Tokenizer {
	return &Tokenizer{WordInternalChars: map[rune]bool{}}
}

func (tz *Tokenizer) isWordInternal(r rune) bool {
	if r == '\'' || r == '’' {
		return true
	}
	return tz.WordInternalChars[r]
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Mn, r)
}

// Tokenize splits text into tokens, byte-exact and gap-free.
func (tz *Tokenizer) Tokenize(text string) []Token {
	runes := []rune(text)
	// byteOffsets[i] is the byte offset of runes[i]; byteOffsets[len(runes)]
	// is len(text).
	byteOffsets := make([]int, len(runes)+1)
	{
		b := 0
		for i, r := range runes {
			byteOffsets[i] = b
			b += runeLen(r)
		}
		byteOffsets[len(runes)] = b
	}

	var tokens []Token
	n := len(runes)
	i := 0
	for i < n {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			j := i + 1
			for j < n && unicode.IsSpace(runes[j]) {
				j++
			}
			tokens = append(tokens, mkToken(runes, byteOffsets, i, j, TokenWhitespace))
			i = j

		case r == '…':
			tokens = append(tokens, mkToken(runes, byteOffsets, i, i+1, TokenEllipsis))
			i++

		case r == '¿':
			tokens = append(tokens, mkToken(runes, byteOffsets, i, i+1, TokenInvertedQuestion))
			i++

		case r == '¡':
			tokens = append(tokens, mkToken(runes, byteOffsets, i, i+1, TokenInvertedExclaim))
			i++

		case unicode.IsDigit(r):
			j := i + 1
			for j < n {
				if unicode.IsDigit(runes[j]) {
					j++
					continue
				}
				if (runes[j] == '.' || runes[j] == ',') && j+1 < n && unicode.IsDigit(runes[j+1]) {
					j += 2
					continue
				}
				break
			}
			// a digit run immediately followed by letters (no space) is
			// a Mixed token (e.g. "6K", "3D").
			k := j
			mixed := false
			for k < n && (unicode.IsLetter(runes[k]) || isWordInternalOrDigit(runes[k])) {
				mixed = true
				k++
			}
			if mixed {
				tokens = append(tokens, mkToken(runes, byteOffsets, i, k, TokenMixed))
				i = k
			} else {
				tokens = append(tokens, mkToken(runes, byteOffsets, i, j, TokenNumber))
				i = j
			}

		case isWordRune(r):
			j := i + 1
			mixed := false
			for j < n {
				if isWordRune(runes[j]) {
					j++
					continue
				}
				if unicode.IsDigit(runes[j]) {
					mixed = true
					j++
					continue
				}
				if tz.isWordInternal(runes[j]) && j+1 < n && isWordRune(runes[j+1]) {
					j++
					continue
				}
				break
			}
			typ := TokenWord
			if mixed {
				typ = TokenMixed
			}
			tokens = append(tokens, mkToken(runes, byteOffsets, i, j, typ))
			i = j

		default:
			// every other rune (ASCII/Unicode punctuation and symbols)
			// is its own single-rune token.
			tokens = append(tokens, mkToken(runes, byteOffsets, i, i+1, classifyOther(r)))
			i++
		}
	}

	return tokens
}

func isWordInternalOrDigit(r rune) bool {
	return unicode.IsDigit(r)
}

func classifyOther(r rune) TokenType {
	if unicode.IsPunct(r) || unicode.IsSymbol(r) {
		return TokenPunctuation
	}
	return TokenUnknown
}

func mkToken(runes []rune, byteOffsets []int, start, end int, typ TokenType) Token {
	return Token{
		Start: byteOffsets[start],
		End:   byteOffsets[end],
		Text:  string(runes[start:end]),
		Type:  typ,
	}
}

func runeLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}

// Tokens wraps a token slice with a sentence-boundary prefix-sum index,
// for grammar phases that need an O(1) "is there a sentence break
// between these two tokens" query instead of a linear scan.
type Tokens struct {
	List           []Token
	boundaryPrefix []int
}

// NewTokens builds the prefix-sum index over list.
func NewTokens(list []Token) *Tokens {
	prefix := make([]int, len(list)+1)
	for i, t := range list {
		prefix[i+1] = prefix[i]
		if t.IsSentenceBoundary() {
			prefix[i+1]++
		}
	}
	return &Tokens{List: list, boundaryPrefix: prefix}
}

// HasSentenceBoundaryBetween reports whether any sentence-ending token
// lies in the half-open range [i, j) (order-independent: the smaller
// index is included, the larger excluded).
func (ts *Tokens) HasSentenceBoundaryBetween(i, j int) bool {
	if i > j {
		i, j = j, i
	}
	if i < 0 {
		i = 0
	}
	if j > len(ts.List) {
		j = len(ts.List)
	}
	return ts.boundaryPrefix[j]-ts.boundaryPrefix[i] > 0
}

// GetWords returns the indices of every Word/Mixed token.
func (ts *Tokens) GetWords() []int {
	var out []int
	for i, t := range ts.List {
		if t.Type == TokenWord || t.Type == TokenMixed {
			out = append(out, i)
		}
	}
	return out
}

// Reconstruct concatenates token text verbatim, ignoring annotations.
func Reconstruct(tokens []Token) string {
	var sb []byte
	for _, t := range tokens {
		sb = append(sb, t.Text...)
	}
	return string(sb)
}
