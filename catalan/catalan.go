// Package catalan implements the spelling-only Catalan language:
// dictionary lookup and suggestions work as for any other language, but
// every grammar hook is a true no-op.
package catalan

import "github.com/esgramatica/corrector"

// wordInternalChars adds the middle dot used in geminated "l·l" spellings
// (e.g. "col·legi") to the set of runes that continue a Catalan word
// token, alongside the apostrophe used for elision ("l'aigua").
var wordInternalChars = map[rune]bool{
	'·':  true,
	'\'': true,
	'’': true, // curly apostrophe, common in edited Catalan text
}

// Catalan is a dictionary-and-tokenizer-only language: spelling
// suggestions work exactly as for any other language, but no grammar
// pipeline runs over its tokens.
type Catalan struct {
	corrector.BaseLanguage
}

// New returns a Catalan language instance.
func New() corrector.Language {
	return Catalan{}
}

func (Catalan) Code() string { return "ca" }

func (Catalan) Name() string { return "Català" }

func (Catalan) WordInternalChars() map[rune]bool { return wordInternalChars }

// knownAbbreviations is a short, representative list of conventional
// Catalan abbreviations that should never be flagged as misspellings.
var knownAbbreviations = map[string]bool{
	"pàg.": true, "núm.": true, "sr.": true, "sra.": true, "dr.": true,
	"dra.": true, "etc.": true, "p.ex.": true, "av.": true, "c.": true,
}

func (Catalan) IsKnownAbbreviation(word string) bool {
	// tokens never include the trailing dot, so also try word+"."
	return knownAbbreviations[word] || knownAbbreviations[word+"."]
}

func init() {
	corrector.RegisterLanguage(New, "ca", "catalan", "català")
}
