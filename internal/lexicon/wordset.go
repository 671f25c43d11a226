package lexicon

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// WordSet is a lowercase word membership set.
type WordSet struct {
	words  map[string]struct{}
	loaded bool
}

// EmptySet returns a WordSet with no entries that reports Loaded() false.
func EmptySet() *WordSet {
	return &WordSet{words: make(map[string]struct{})}
}

// NewSet builds a loaded WordSet from words, lowercasing each entry.
func NewSet(words ...string) *WordSet {
	s := &WordSet{words: make(map[string]struct{}, len(words)), loaded: true}
	for _, w := range words {
		s.add(w)
	}
	return s
}

// LoadWordSet reads a word-frequency style CSV with a "word" column
// and keeps the alphabetic entries, lowercased. On error the returned
// set is empty and not loaded.
func LoadWordSet(path string) (*WordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return EmptySet(), fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return EmptySet(), fmt.Errorf("read word list header: %w", err)
	}
	wordIdx := -1
	for i, h := range header {
		if strings.TrimSpace(strings.ToLower(h)) == "word" {
			wordIdx = i
			break
		}
	}
	if wordIdx < 0 {
		return EmptySet(), fmt.Errorf("word list %s: missing \"word\" column", path)
	}

	s := &WordSet{words: make(map[string]struct{}), loaded: true}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return EmptySet(), fmt.Errorf("read word list: %w", err)
		}
		if wordIdx >= len(rec) {
			continue
		}
		word := strings.ToLower(strings.TrimSpace(rec[wordIdx]))
		if word == "" || !isAlpha(word) {
			continue
		}
		s.words[word] = struct{}{}
	}
	return s, nil
}

// LoadStopwords reads a one-word-per-line stopword file. Blank lines
// and lines starting with "#" are skipped. On error the returned set
// is empty and not loaded.
func LoadStopwords(path string) (*WordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return EmptySet(), fmt.Errorf("open stopwords: %w", err)
	}
	defer f.Close()

	s := &WordSet{words: make(map[string]struct{}), loaded: true}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.add(line)
	}
	if err := scanner.Err(); err != nil {
		return EmptySet(), fmt.Errorf("read stopwords: %w", err)
	}
	return s, nil
}

// Contains reports whether word (matched lowercase) is in the set.
func (s *WordSet) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Loaded reports whether the set was populated from a source.
func (s *WordSet) Loaded() bool {
	return s != nil && s.loaded
}

// Len returns the number of entries.
func (s *WordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

func (s *WordSet) add(word string) {
	s.words[strings.ToLower(word)] = struct{}{}
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
