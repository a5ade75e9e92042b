// Package vocab holds the known-language vocabulary and the gate deciding
// whether a text is predominantly covered by it.
package vocab

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultThreshold is the fraction of known tokens required for a text to be
// treated as primary-language. Callers should stay within [0,1].
const DefaultThreshold = 0.7

// Reference is an immutable set of known-language tokens, built once at
// startup and safe for concurrent reads.
type Reference struct {
	words map[string]struct{}
}

// Load reads a newline-delimited vocabulary file. Tokens are lowercased;
// blank lines and "#" comments are skipped.
func Load(path string) (*Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()

	words := make(map[string]struct{})
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words[strings.ToLower(w)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("vocabulary %s is empty", path)
	}
	return &Reference{words: words}, nil
}

// FromWords builds a Reference directly from a word list.
func FromWords(words []string) *Reference {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Reference{words: set}
}

// Size returns the number of vocabulary entries.
func (r *Reference) Size() int { return len(r.words) }

// Contains reports whether the case-insensitive form of w is in the vocabulary.
func (r *Reference) Contains(w string) bool {
	_, ok := r.words[strings.ToLower(w)]
	return ok
}

// IsPrimary reports whether at least threshold of the whitespace-split tokens
// are known vocabulary words. Zero tokens fails closed (not primary).
func (r *Reference) IsPrimary(text string, threshold float64) bool {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return false
	}
	known := 0
	for _, t := range tokens {
		if r.Contains(t) {
			known++
		}
	}
	return float64(known)/float64(len(tokens)) >= threshold
}
