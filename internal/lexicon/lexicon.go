// Package lexicon loads the reference word data the metrics consult:
// a word-to-rating table for concreteness and plain word lists for
// common words and stopwords. Loads fail soft. On any error the
// returned value is usable and empty, and Loaded reports false so a
// caller can tell a resource that failed to load from one that loaded
// empty. The two cases score differently.
package lexicon

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column headers of the concreteness norms table.
const (
	wordColumn   = "Word"
	ratingColumn = "Conc.M"
)

// Store maps lowercase words to numeric ratings.
type Store struct {
	ratings map[string]float64
	loaded  bool
}

// Empty returns a Store with no entries that reports Loaded() false.
func Empty() *Store {
	return &Store{ratings: make(map[string]float64)}
}

// Load reads a ratings table from a CSV file laid out like the
// Brysbaert concreteness norms: a Word column and a Conc.M rating
// column. Words are lowercased; later duplicates overwrite earlier
// ones. Rows with an unparseable rating or a blank word are skipped.
// On error the returned Store is empty and not loaded.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return Empty(), fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return Empty(), fmt.Errorf("read lexicon header: %w", err)
	}
	wordIdx, ratingIdx := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case wordColumn:
			wordIdx = i
		case ratingColumn:
			ratingIdx = i
		}
	}
	if wordIdx < 0 || ratingIdx < 0 {
		return Empty(), fmt.Errorf(
			"lexicon %s: missing %q or %q column", path, wordColumn, ratingColumn,
		)
	}

	s := &Store{ratings: make(map[string]float64), loaded: true}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Empty(), fmt.Errorf("read lexicon: %w", err)
		}
		if wordIdx >= len(rec) || ratingIdx >= len(rec) {
			continue
		}
		word := strings.ToLower(strings.TrimSpace(rec[wordIdx]))
		if word == "" {
			continue
		}
		rating, err := strconv.ParseFloat(strings.TrimSpace(rec[ratingIdx]), 64)
		if err != nil {
			continue
		}
		s.ratings[word] = rating
	}
	return s, nil
}

// Rating returns the rating for word (matched lowercase) and whether
// the word is present.
func (s *Store) Rating(word string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	r, ok := s.ratings[strings.ToLower(word)]
	return r, ok
}

// Loaded reports whether the store was populated from a source.
func (s *Store) Loaded() bool {
	return s != nil && s.loaded
}

// Len returns the number of entries.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ratings)
}
