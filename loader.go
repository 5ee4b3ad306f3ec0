package corrector

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	mmap "github.com/edsrzf/mmap-go"
)

// DictionaryLoader reads dictionary files in the pipe-delimited
// lemma|category|gender|number|extra|frequency format. Lines degrade
// gracefully from one to six fields; "#" comments and blank lines are
// skipped.
type DictionaryLoader struct{}

// LoadFromFile loads a dictionary file into a fresh Trie.
func (DictionaryLoader) LoadFromFile(path string) (*Trie, error) {
	t := NewTrie()
	if _, err := appendFromReaderPath(t, path); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFromFileMmap is the mmap-backed variant of LoadFromFile for
// large dictionary files: it avoids copying the whole file into the Go
// heap before parsing. No fallback to a regular read is attempted; a
// failed mmap is the same error class as LoadFromFile.
func (DictionaryLoader) LoadFromFileMmap(path string) (*Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataMissing, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataMissing, path, err)
	}
	if info.Size() == 0 {
		return NewTrie(), nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataMissing, path, err)
	}
	defer m.Unmap()

	t := NewTrie()
	for lineNum, line := range strings.Split(string(m), "\n") {
		parseDictionaryLine(t, line, lineNum+1, path)
	}
	return t, nil
}

// LoadSimple loads a one-word-per-line word list, skipping blank lines
// and "#" comments.
func (DictionaryLoader) LoadSimple(path string) (*Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataMissing, path, err)
	}
	defer f.Close()

	t := NewTrie()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		t.InsertWord(word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataMissing, path, err)
	}
	return t, nil
}

// Merge combines several tries into one.
func (DictionaryLoader) Merge(tries ...*Trie) *Trie {
	result := NewTrie()
	for _, t := range tries {
		for word, entries := range t.AllWords() {
			for _, e := range entries {
				result.Insert(word, e)
			}
		}
	}
	return result
}

// AppendFromFile adds entries from a file into an existing trie (used
// for custom-dictionary merging), returning the count of non-blank data
// lines processed.
func (DictionaryLoader) AppendFromFile(t *Trie, path string) (int, error) {
	return appendFromReaderPath(t, path)
}

func appendFromReaderPath(t *Trie, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrDataMissing, path, err)
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if parseDictionaryLine(t, line, lineNum, path) {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("%w: %s: %v", ErrDataMissing, path, err)
	}
	return count, nil
}

// parseDictionaryLine parses one line and inserts it into t. Returns
// true if the line contributed a dictionary entry. Malformed lines are
// logged and skipped, never fatal.
func parseDictionaryLine(t *Trie, line string, lineNum int, path string) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false
	}

	parts := strings.Split(line, "|")
	word := strings.TrimSpace(parts[0])
	if word == "" {
		return false
	}

	field := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}

	entry := Entry{Lemma: word, Frequency: 1}
	if len(parts) >= 2 {
		entry.Category = parseSentinel(field(1), ParseWordCategory)
	}
	if len(parts) >= 3 {
		entry.Gender = parseGenderField(field(2))
	}
	if len(parts) >= 4 {
		entry.Number = parseNumberField(field(3))
	}
	if len(parts) >= 5 {
		entry.Extra = field(4)
		if entry.Extra == "_" {
			entry.Extra = ""
		}
	}
	if len(parts) >= 6 {
		if n, err := strconv.ParseUint(field(5), 10, 32); err == nil {
			entry.Frequency = uint32(n)
		} else if field(5) != "" {
			log.Printf("corrector: %s:%d: malformed frequency %q, defaulting to 1", path, lineNum, field(5))
		}
	}

	t.Insert(word, entry)
	return true
}

func parseSentinel(s string, parse func(string) WordCategory) WordCategory {
	if s == "_" || s == "" {
		return CategoryOtro
	}
	return parse(s)
}

func parseGenderField(s string) Gender {
	if s == "_" || s == "" {
		return GenderNone
	}
	return ParseGender(s)
}

func parseNumberField(s string) Number {
	if s == "_" || s == "" {
		return NumberNone
	}
	return ParseNumber(s)
}
