package metrics

import (
	"github.com/Sul4v/capstone/internal/lexicon"
)

// examplePhrases signal that the text is grounding an idea in a
// concrete case.
var examplePhrases = []string{
	"for example",
	"for instance",
	"consider",
	"such as",
	"like",
	"specifically",
	"to illustrate",
	"take",
	"suppose",
	"imagine",
	"think of",
	"here's",
	"this is",
	"that is",
}

var exampleMatchers = compileEach(examplePhrases)

// Concreteness blends the average lexicon rating of the words found in
// the store with a bonus per example phrase:
//
//	(average rating / 5) + 0.1 * example count
//
// The rating term stays in [0, 1] for a 1-5 scale; the example term is
// unbounded. A store that never loaded scores 0 regardless of text, so
// runs without the norms file degrade visibly rather than silently
// shifting scale. Words absent from the store are ignored.
func Concreteness(doc *Document, store *lexicon.Store) float64 {
	tokens := doc.Tokens()
	if len(tokens) == 0 {
		return 0
	}
	if !store.Loaded() {
		return 0
	}

	examples := countEach(exampleMatchers, tokens)

	sum := 0.0
	found := 0
	for _, tok := range tokens {
		if r, ok := store.Rating(tok); ok {
			sum += r
			found++
		}
	}
	avg := 0.0
	if found > 0 {
		avg = sum / float64(found)
	}
	return avg/5.0 + float64(examples)*0.1
}
