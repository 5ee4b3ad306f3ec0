package corrector

import (
	"path/filepath"
	"strings"
)

// Engine is the loaded state (fixed after construction except for the
// custom words MergeCustomWords adds) a host keeps
// around across calls: dictionaries, proper names, the resolved
// language, and the spelling engine built over them. Correct is the one
// entry point hosts call.
type Engine struct {
	language       Language
	dictionary     *Trie
	customDict     *Trie
	properNames    *ProperNames
	verbRecognizer VerbFormRecognizer
	spelling       *SpellingCorrector
	config         Config
}

// NewEngine loads a language's data files and builds the engine. An
// unregistered language code is ErrUnknownLanguage; a missing
// dictionary file is ErrDataMissing. A missing names file is not fatal —
// proper-name skip heuristics simply have nothing to consult.
func NewEngine(languageCode string, config Config) (*Engine, error) {
	lang, err := GetLanguage(languageCode)
	if err != nil {
		return nil, err
	}

	if config.DataDir == "" {
		config.DataDir = "data"
	}

	loadDict := DictionaryLoader{}.LoadFromFile
	if config.UseMmap {
		loadDict = DictionaryLoader{}.LoadFromFileMmap
	}
	dict, err := loadDict(filepath.Join(config.DataDir, languageCode, "dictionary.txt"))
	if err != nil {
		return nil, err
	}
	lang.ConfigureDictionary(dict)

	properNames, err := LoadProperNamesFromFile(filepath.Join(config.DataDir, languageCode, "names.txt"))
	if err != nil {
		properNames = NewProperNames()
	}

	var customDict *Trie
	if config.CustomDictPath != "" {
		customDict, err = DictionaryLoader{}.LoadFromFile(config.CustomDictPath)
		if err != nil {
			return nil, err
		}
	}

	verbRecognizer := lang.BuildVerbRecognizer(dict)

	spelling := NewSpellingCorrector(dict).
		WithProperNames(properNames).
		WithCustomDictionary(customDict).
		WithVerbRecognizer(verbRecognizer).
		WithLanguage(lang).
		WithMaxSuggestions(config.maxSuggestionsOrDefault()).
		WithMaxEditDistance(float64(config.MaxEditDistance))

	return &Engine{
		language:       lang,
		dictionary:     dict,
		customDict:     customDict,
		properNames:    properNames,
		verbRecognizer: verbRecognizer,
		spelling:       spelling,
		config:         config,
	}, nil
}

// NewEngineFromData builds an Engine from already-loaded components,
// bypassing file I/O — used by tests and by hosts that load dictionaries
// themselves (e.g. from an embedded asset or a network fetch performed
// before handing control to the core, keeping the core itself free of
// I/O concerns beyond the one documented loader).
func NewEngineFromData(lang Language, dict *Trie, properNames *ProperNames, customDict *Trie, maxSuggestions int) *Engine {
	lang.ConfigureDictionary(dict)
	verbRecognizer := lang.BuildVerbRecognizer(dict)
	if properNames == nil {
		properNames = NewProperNames()
	}
	if maxSuggestions <= 0 {
		maxSuggestions = 3
	}
	spelling := NewSpellingCorrector(dict).
		WithProperNames(properNames).
		WithCustomDictionary(customDict).
		WithVerbRecognizer(verbRecognizer).
		WithLanguage(lang).
		WithMaxSuggestions(maxSuggestions)

	return &Engine{
		language:       lang,
		dictionary:     dict,
		customDict:     customDict,
		properNames:    properNames,
		verbRecognizer: verbRecognizer,
		spelling:       spelling,
	}
}

// MergeCustomWords adds words to the engine's custom dictionary at
// runtime, for hosts that keep custom words in an external store (e.g.
// Redis) rather than the static file NewEngine's CustomDictPath reads at
// startup. If the engine was built with no custom dictionary, one is
// created on first call.
func (e *Engine) MergeCustomWords(words []string) {
	if e.customDict == nil {
		e.customDict = NewTrie()
		e.spelling.WithCustomDictionary(e.customDict)
	}
	for _, w := range words {
		e.customDict.InsertWord(w)
	}
}

// Correct runs the full pipeline: tokenize -> spelling -> grammar ->
// render. It never fails: anything the engine cannot confidently decide
// is passed through unchanged.
func (e *Engine) Correct(text string) string {
	tokens := e.annotate(text)
	return Render(tokens)
}

// annotate runs tokenize -> spelling -> grammar and returns the
// annotated tokens, shared by Correct and CorrectDetailed.
func (e *Engine) annotate(text string) []Token {
	tz := NewTokenizer()
	if wic := e.language.WordInternalChars(); wic != nil {
		tz.WordInternalChars = wic
	}
	tokens := tz.Tokenize(text)

	for i := range tokens {
		t := &tokens[i]
		if t.Type != TokenWord && t.Type != TokenMixed {
			continue
		}
		if shouldSkipSpelling(tokens, i, e.properNames) {
			continue
		}
		if e.spelling.IsCorrect(t.Text) {
			continue
		}
		if e.language.IsLikelyVerbFormInContext(t.Text, tokens, i) {
			continue
		}
		suggestions := e.spelling.Suggest(t.Text)
		if len(suggestions) == 0 {
			continue
		}
		candidates := make([]string, len(suggestions))
		for j, s := range suggestions {
			candidates[j] = s.Word
		}
		t.Spelling = &SpellingAnnotation{Candidates: candidates}
	}

	e.language.ApplyLanguageSpecificCorrections(tokens, e.dictionary, e.properNames, e.verbRecognizer)

	return tokens
}

// RuleTrigger records one annotation a Correct pass attached to a token,
// for hosts that want telemetry on which rules fire (e.g. the stats
// package). Kind is "spelling", "grammar", "deletion", or "insertion";
// RuleID is 0 for spelling (the spelling engine has no per-rule IDs).
type RuleTrigger struct {
	Kind   string
	RuleID int
}

// CorrectDetailed runs the same pipeline as Correct but also returns
// every annotation triggered along the way, for hosts recording
// per-rule telemetry.
func (e *Engine) CorrectDetailed(text string) (string, []RuleTrigger) {
	tokens := e.annotate(text)

	var triggers []RuleTrigger
	for i := range tokens {
		t := &tokens[i]
		if t.Spelling != nil {
			triggers = append(triggers, RuleTrigger{Kind: "spelling"})
		}
		if t.Grammar != nil {
			triggers = append(triggers, RuleTrigger{Kind: "grammar", RuleID: t.Grammar.RuleID})
		}
		if t.Deletion != nil {
			triggers = append(triggers, RuleTrigger{Kind: "deletion", RuleID: t.Deletion.RuleID})
		}
		if t.InsertPre != nil {
			triggers = append(triggers, RuleTrigger{Kind: "insertion", RuleID: t.InsertPre.RuleID})
		}
		if t.InsertPost != nil {
			triggers = append(triggers, RuleTrigger{Kind: "insertion", RuleID: t.InsertPost.RuleID})
		}
	}

	return Render(tokens), triggers
}

// Correct is the package-level convenience entry point:
// correct(text, language_code, config) -> string. It loads a fresh
// Engine each call; hosts correcting
// more than a handful of texts should build an Engine once with NewEngine
// and call Engine.Correct repeatedly instead, since dictionary loading
// dominates a single call's cost.
func Correct(text, languageCode string, config Config) (string, error) {
	engine, err := NewEngine(languageCode, config)
	if err != nil {
		return "", err
	}
	return engine.Correct(text), nil
}

// shouldSkipSpelling implements the correction-call skip heuristics:
// proper names, hyphenated compounds, ALL-CAPS acronyms, URLs/emails,
// slash-separated name/acronym pairs, and numeral+unit pairs are never
// treated as misspellings.
func shouldSkipSpelling(tokens []Token, i int, properNames *ProperNames) bool {
	t := tokens[i]
	word := t.Text

	if properNames != nil && properNames.ContainsIgnoreCase(word) {
		return true
	}
	if isAllCapsAcronym(word) {
		return true
	}
	if strings.Contains(word, "@") {
		return true
	}
	if isPartOfURL(tokens, i) {
		return true
	}
	if isHyphenatedCompoundPart(tokens, i) {
		return true
	}
	if isSlashPairedWithAcronym(tokens, i) {
		return true
	}
	if isUnitAfterNumber(tokens, i) {
		return true
	}
	return false
}

func isAllCapsAcronym(word string) bool {
	r := []rune(word)
	if len(r) < 2 {
		return false
	}
	for _, c := range r {
		if c >= 'a' && c <= 'z' {
			return false
		}
		if !(c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

func isPartOfURL(tokens []Token, idx int) bool {
	lower := strings.ToLower(tokens[idx].Text)
	switch lower {
	case "http", "https", "ftp", "www", "mailto":
		return true
	}
	start := idx - 10
	if start < 0 {
		start = 0
	}
	end := idx + 10
	if end > len(tokens) {
		end = len(tokens)
	}
	for i := start; i < end; i++ {
		tk := tokens[i]
		if tk.Type == TokenPunctuation && tk.Text == ":" && i+2 < len(tokens) &&
			tokens[i+1].Text == "/" && tokens[i+2].Text == "/" {
			return true
		}
		if tk.Type == TokenWord {
			l := strings.ToLower(tk.Text)
			if l == "http" || l == "https" || l == "www" {
				return true
			}
		}
	}
	return false
}

func isHyphenatedCompoundPart(tokens []Token, idx int) bool {
	if idx > 0 && tokens[idx-1].Type == TokenPunctuation && tokens[idx-1].Text == "-" {
		return true
	}
	if idx+1 < len(tokens) && tokens[idx+1].Type == TokenPunctuation && tokens[idx+1].Text == "-" {
		return true
	}
	return false
}

func isSlashPairedWithAcronym(tokens []Token, idx int) bool {
	if idx > 0 && tokens[idx-1].Type == TokenPunctuation && tokens[idx-1].Text == "/" {
		if idx-2 >= 0 && isAllCapsAcronym(tokens[idx-2].Text) {
			return true
		}
	}
	if idx+1 < len(tokens) && tokens[idx+1].Type == TokenPunctuation && tokens[idx+1].Text == "/" {
		if idx+2 < len(tokens) && isAllCapsAcronym(tokens[idx+2].Text) {
			return true
		}
	}
	return false
}

func isUnitAfterNumber(tokens []Token, idx int) bool {
	if !IsUnitLike(tokens[idx].Text) {
		return false
	}
	for i := idx - 1; i >= 0; i-- {
		switch tokens[i].Type {
		case TokenWhitespace:
			continue
		case TokenNumber, TokenMixed:
			return true
		default:
			return false
		}
	}
	return false
}
