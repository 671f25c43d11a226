package metrics

import (
	"github.com/Sul4v/capstone/internal/match"
	"github.com/Sul4v/capstone/internal/textutil"
)

// strictCausalPhrases are explicit causal connectives, including the
// inflected forms of "lead to" and "result in".
var strictCausalPhrases = []string{
	"because",
	"because of",
	"therefore",
	"thus",
	"hence",
	"consequently",
	"as a result",
	"as a consequence",
	"due to",
	"owing to",
	"on account of",
	"thereby",
	"lead to",
	"leads to",
	"leading to",
	"result in",
	"results in",
	"resulting in",
}

// expandedCausalPhrases are looser connectives that often, but not
// always, mark causation.
var expandedCausalPhrases = []string{
	"since",
	"so that",
	"in turn",
}

var (
	strictCausalMatcher   = compileAll(strictCausalPhrases)
	expandedCausalMatcher = compileAll(strictCausalPhrases, expandedCausalPhrases)
)

func causalMatcher(mode CausalMode) *match.Matcher {
	if mode == ModeExpanded {
		return expandedCausalMatcher
	}
	return strictCausalMatcher
}

// CausalDensity counts causal connectives per 100 words.
func CausalDensity(doc *Document, mode CausalMode) float64 {
	tokens := doc.Tokens()
	if len(tokens) == 0 {
		return 0
	}
	hits := causalMatcher(mode).Count(tokens)
	return float64(hits) / float64(len(tokens)) * 100.0
}

// CausalDepth is the density of strict causal connectives, the score
// behind the causal_depth column when no mode is configured.
func CausalDepth(doc *Document) float64 {
	return CausalDensity(doc, ModeStrict)
}

// CausalSentenceRatio is the fraction of sentences containing at least
// one causal connective.
func CausalSentenceRatio(doc *Document, mode CausalMode) float64 {
	sentences := doc.Sentences()
	if len(sentences) == 0 {
		return 0
	}
	m := causalMatcher(mode)
	hits := 0
	for _, s := range sentences {
		if m.Contains(textutil.Tokenize(s)) {
			hits++
		}
	}
	return float64(hits) / float64(len(sentences))
}
