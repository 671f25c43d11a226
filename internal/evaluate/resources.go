package evaluate

import (
	"fmt"

	"github.com/Sul4v/capstone/internal/config"
	"github.com/Sul4v/capstone/internal/lexicon"
	"github.com/Sul4v/capstone/internal/metrics"
)

// BuildResources loads the word lists named by paths. Loading never fails
// the run: a missing or malformed file produces a warning and the affected
// metric falls back to its degraded form. An empty stopwords path selects
// the embedded default list without a warning.
func BuildResources(paths config.ResourcePaths) (*metrics.Resources, []string) {
	res := metrics.DefaultResources()
	var warnings []string

	if paths.ConcretenessLexicon == "" {
		warnings = append(warnings,
			"concreteness lexicon not configured; concreteness scores will be 0")
	} else {
		store, err := lexicon.Load(paths.ConcretenessLexicon)
		res.Lexicon = store
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("concreteness lexicon: %v", err))
		}
	}

	if paths.CommonWords == "" {
		warnings = append(warnings,
			"common-words list not configured; conceptual scaffolding may over-count jargon")
	} else {
		set, err := lexicon.LoadWordSet(paths.CommonWords)
		res.CommonWords = set
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("common words: %v", err))
		}
	}

	if paths.Stopwords != "" {
		set, err := lexicon.LoadStopwords(paths.Stopwords)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("stopwords: %v; using embedded default", err))
		} else {
			res.Stopwords = set
		}
	}

	return res, warnings
}
