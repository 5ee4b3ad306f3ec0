package corrector

// Config holds the options the host passes to Correct. The CLI
// front-end that parses flags and files into a Config is an external
// collaborator.
type Config struct {
	// CustomDictPath, if set, is merged into the dictionary at load
	// time.
	CustomDictPath string
	// DataDir is the directory holding the language's dictionary/names
	// data files.
	DataDir string
	// MaxSuggestions bounds the spelling engine's suggestion list.
	// Zero means "use the default of 3".
	MaxSuggestions int
	// MaxEditDistance bounds the spelling search. Zero means "use the
	// defaults (2 for length>=4, 1 otherwise)".
	MaxEditDistance int
	// UseMmap memory-maps the main dictionary file instead of reading
	// it through a scanner, avoiding a full copy into the heap for
	// large dictionaries.
	UseMmap bool
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		DataDir:         "data",
		MaxSuggestions:  3,
		MaxEditDistance: 2,
	}
}

func (c Config) maxSuggestionsOrDefault() int {
	if c.MaxSuggestions > 0 {
		return c.MaxSuggestions
	}
	return 3
}
