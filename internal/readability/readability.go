// Package readability estimates how easy a text is to read.
package readability

import (
	"errors"
	"strings"

	"github.com/Sul4v/capstone/internal/textutil"
)

// ErrNoWords is returned when the input has no scoreable words.
var ErrNoWords = errors.New("readability: no words")

// FleschReadingEase computes the classic Flesch score:
//
//	206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)
//
// Typical prose lands between 0 and 100, but the formula is unbounded
// in both directions. Degenerate input returns ErrNoWords.
func FleschReadingEase(text string) (float64, error) {
	words := textutil.Tokenize(text)
	if len(words) == 0 {
		return 0, ErrNoWords
	}
	sentences := textutil.CountSentences(text)
	if sentences < 1 {
		sentences = 1
	}
	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(w)
	}
	return 206.835 -
		1.015*float64(len(words))/float64(sentences) -
		84.6*float64(syllables)/float64(len(words)), nil
}

// CountSyllables estimates the syllables in a single word by counting
// vowel groups, discounting a silent trailing "e" (but not "-le"), and
// flooring at one.
func CountSyllables(word string) int {
	w := strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range w {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if count > 1 && strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
