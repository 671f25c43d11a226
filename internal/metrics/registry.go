package metrics

import (
	"sort"
	"strings"
)

var registry = []Definition{
	{
		ID:          "MT001",
		Name:        "motivational-tone",
		Column:      "motivational_tone",
		Description: "Count of curiosity, confidence, and anxiety-reducing phrases.",
		Kind:        KindInteger,
		Compute: func(doc *Document, env *Env) float64 {
			return float64(MotivationalTone(doc))
		},
	},
	{
		ID:          "MT002",
		Name:        "clarity",
		Column:      "clarity_score",
		Description: "Flesch Reading Ease rescaled to the 0-1 range.",
		Kind:        KindFloat,
		Compute: func(doc *Document, env *Env) float64 {
			return Clarity(doc)
		},
	},
	{
		ID:          "MT003",
		Name:        "concreteness",
		Column:      "concreteness_score",
		Description: "Average word concreteness rating plus example-phrase bonus.",
		Kind:        KindFloat,
		Compute: func(doc *Document, env *Env) float64 {
			return Concreteness(doc, env.lexiconStore())
		},
	},
	{
		ID:          "MT004",
		Name:        "causal-depth",
		Column:      "causal_depth",
		Description: "Causal connectives per 100 words.",
		Kind:        KindFloat,
		Compute: func(doc *Document, env *Env) float64 {
			return CausalDensity(doc, env.causalMode())
		},
	},
	{
		ID:          "MT005",
		Name:        "analogical-reasoning",
		Column:      "analogical_reasoning",
		Description: "Analogy signal phrases per 100 words.",
		Kind:        KindFloat,
		Compute: func(doc *Document, env *Env) float64 {
			return AnalogicalReasoning(doc)
		},
	},
	{
		ID:          "MT006",
		Name:        "conceptual-scaffolding",
		Column:      "conceptual_scaffolding",
		Description: "Share of jargon terms explained where they appear.",
		Kind:        KindFloat,
		Compute: func(doc *Document, env *Env) float64 {
			return ConceptualScaffolding(doc, env.commonWords(), env.stopwords())
		},
	},
}

// All returns all metrics sorted by ID. Column creation and scoring
// follow this order.
func All() []Definition {
	defs := append([]Definition(nil), registry...)
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs
}

// Columns returns the score column suffixes in metric order.
func Columns() []string {
	all := All()
	cols := make([]string, len(all))
	for i, def := range all {
		cols[i] = def.Column
	}
	return cols
}

// Lookup searches by metric ID (case-insensitive) or by name.
func Lookup(query string) (Definition, bool) {
	for _, def := range All() {
		if matches(def, query) {
			return def, true
		}
	}
	return Definition{}, false
}

func matches(def Definition, query string) bool {
	q := strings.TrimSpace(query)
	if strings.EqualFold(def.ID, q) {
		return true
	}
	return def.Name == strings.ToLower(q)
}
