package corrector

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ProperNames is a case-sensitive set of proper names, loaded from the
// names file (one name per line).
type ProperNames struct {
	set map[string]struct{}
}

// NewProperNames returns an empty name set.
func NewProperNames() *ProperNames {
	return &ProperNames{set: make(map[string]struct{})}
}

// LoadProperNamesFromFile loads one name per line, skipping blanks and
// "#" comments.
func LoadProperNamesFromFile(path string) (*ProperNames, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataMissing, path, err)
	}
	defer f.Close()

	pn := NewProperNames()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		pn.set[name] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataMissing, path, err)
	}
	return pn, nil
}

// Contains reports exact, case-sensitive membership.
func (p *ProperNames) Contains(word string) bool {
	_, ok := p.set[word]
	return ok
}

// ContainsIgnoreCase reports membership regardless of case.
func (p *ProperNames) ContainsIgnoreCase(word string) bool {
	if p.Contains(word) {
		return true
	}
	lower := strings.ToLower(word)
	for name := range p.set {
		if strings.ToLower(name) == lower {
			return true
		}
	}
	return false
}

// IsProperName treats an exact hit, or a capitalized word that is not
// at a sentence start, as a likely proper name even if absent from the
// list (callers pass
// sentenceStart so this file stays a pure set lookup plus the one simple
// capitalization heuristic named in its method).
func (p *ProperNames) IsProperName(word string, sentenceStart bool) bool {
	if p.Contains(word) {
		return true
	}
	if sentenceStart {
		return false
	}
	r := []rune(word)
	return len(r) > 0 && strings.ToUpper(string(r[0])) == string(r[0]) && strings.ToLower(string(r[0])) != string(r[0])
}

// Len returns the number of distinct names stored.
func (p *ProperNames) Len() int {
	return len(p.set)
}

// IsEmpty reports whether no names are loaded.
func (p *ProperNames) IsEmpty() bool {
	return len(p.set) == 0
}
