package metrics

// Analogy signal phrases. The four groups are matched through one
// combined matcher; grouping is organizational only.

// directAnalogyPhrases draw an explicit comparison.
var directAnalogyPhrases = []string{
	"is like",
	"is similar to",
	"is analogous to",
	"think of it as",
	"an analogy for this is",
}

// imaginativePromptPhrases ask the reader to construct a scenario.
var imaginativePromptPhrases = []string{
	"imagine that",
	"picture this",
	"suppose you have",
	"consider a scenario",
}

// comparativeStructurePhrases map one structure onto another.
var comparativeStructurePhrases = []string{
	"just as",
	"in the same way that",
	"acts like",
	"functions like",
}

// metaphoricalBridgePhrases assert an identity rather than a likeness.
var metaphoricalBridgePhrases = []string{
	"can be thought of as",
	"serves as a bridge to",
	"it's a blueprint for",
}

var analogyMatcher = compileAll(
	directAnalogyPhrases,
	imaginativePromptPhrases,
	comparativeStructurePhrases,
	metaphoricalBridgePhrases,
)

// AnalogicalReasoning measures analogy signals per 100 words. Matches
// are non-overlapping across all four groups combined.
func AnalogicalReasoning(doc *Document) float64 {
	tokens := doc.Tokens()
	if len(tokens) == 0 {
		return 0
	}
	return float64(analogyMatcher.Count(tokens)) / float64(len(tokens)) * 100.0
}
