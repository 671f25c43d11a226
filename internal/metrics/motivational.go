package metrics

// Phrase tables for the motivational-tone metric. The three categories
// are tallied identically; they exist to keep the tables reviewable.

// curiosityPhrases invite the reader to wonder.
var curiosityPhrases = []string{
	"interestingly",
	"a surprising fact is",
	"have you ever wondered",
	"what if",
	"imagine if",
	"consider this",
	"think about",
	"suppose that",
	"let's explore",
	"here's something fascinating",
	"did you know",
	"it's remarkable that",
	"one intriguing aspect",
	"curiously enough",
	"fascinatingly",
}

// confidencePhrases reassure the reader they can do it.
var confidencePhrases = []string{
	"as you can see",
	"it's a straightforward process",
	"you already have the tools",
	"with a little practice",
	"you'll find that",
	"it becomes clear that",
	"you'll discover",
	"you'll notice",
	"you'll see how",
	"you'll understand",
	"you'll realize",
	"you'll get the hang of",
	"it's simple when",
	"you've got this",
	"you can do this",
	"you're capable of",
	"you have what it takes",
}

// anxietyReducingPhrases lower the stakes.
var anxietyReducingPhrases = []string{
	"don't worry if",
	"this is a common hurdle",
	"it's okay to",
	"no need to panic",
	"take your time",
	"there's no rush",
	"everyone struggles with",
	"it's normal to",
	"don't stress about",
	"relax, you'll get it",
	"be patient with yourself",
	"mistakes are part of learning",
	"it's fine to",
	"don't be afraid to",
	"there's nothing to fear",
	"you're doing great",
	"keep going, you're almost there",
}

var motivationalMatchers = compileEach(
	curiosityPhrases,
	confidencePhrases,
	anxietyReducingPhrases,
)

// MotivationalTone counts motivational phrase occurrences across the
// curiosity, confidence, and anxiety-reducing tables. Each phrase is
// counted independently, so phrases that overlap in the text can each
// score; the count has no upper bound.
func MotivationalTone(doc *Document) int {
	tokens := doc.Tokens()
	if len(tokens) == 0 {
		return 0
	}
	return countEach(motivationalMatchers, tokens)
}
