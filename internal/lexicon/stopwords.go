package lexicon

import (
	_ "embed"
	"strings"
)

//go:embed stopwords_en.txt
var stopwordsEN string

var defaultStopwords = buildDefaultStopwords()

func buildDefaultStopwords() *WordSet {
	s := &WordSet{words: make(map[string]struct{}), loaded: true}
	for _, line := range strings.Split(stopwordsEN, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.add(line)
	}
	return s
}

// DefaultStopwords returns the embedded English stopword list. The
// returned set is shared; callers must not mutate it.
func DefaultStopwords() *WordSet {
	return defaultStopwords
}
