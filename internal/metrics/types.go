package metrics

import (
	"fmt"
	"strings"

	"github.com/Sul4v/capstone/internal/lexicon"
)

// ValueKind describes the shape of a metric's value.
type ValueKind string

const (
	// KindInteger marks metrics that produce whole counts.
	KindInteger ValueKind = "integer"
	// KindFloat marks metrics that produce fractional scores.
	KindFloat ValueKind = "float"
)

// CausalMode selects which connective list the causal metrics match.
type CausalMode string

const (
	// ModeStrict matches explicit causal connectives only.
	ModeStrict CausalMode = "strict"
	// ModeExpanded adds looser connectives: "since", "so that", "in turn".
	ModeExpanded CausalMode = "expanded"
)

// ParseCausalMode parses a user-provided causal mode value.
func ParseCausalMode(raw string) (CausalMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(ModeStrict):
		return ModeStrict, nil
	case string(ModeExpanded):
		return ModeExpanded, nil
	default:
		return "", fmt.Errorf("unknown causal mode %q (supported: strict, expanded)", raw)
	}
}

// Resources bundles the read-only reference data the metrics consult.
// A nil field behaves as an empty, unloaded resource; the metrics
// degrade rather than fail.
type Resources struct {
	Lexicon     *lexicon.Store
	CommonWords *lexicon.WordSet
	Stopwords   *lexicon.WordSet
}

// DefaultResources returns resources with no external files loaded:
// an unloaded lexicon, an unloaded common-word set, and the embedded
// stopword list.
func DefaultResources() *Resources {
	return &Resources{
		Lexicon:     lexicon.Empty(),
		CommonWords: lexicon.EmptySet(),
		Stopwords:   lexicon.DefaultStopwords(),
	}
}

// Params holds metric options resolved from configuration.
type Params struct {
	CausalMode CausalMode
}

// Env is the scoring context shared by every metric computation in a
// run: resources plus options. Env is read-only during scoring and
// safe for concurrent use.
type Env struct {
	Resources *Resources
	Params    Params
}

func (e *Env) lexiconStore() *lexicon.Store {
	if e == nil || e.Resources == nil {
		return nil
	}
	return e.Resources.Lexicon
}

func (e *Env) commonWords() *lexicon.WordSet {
	if e == nil || e.Resources == nil {
		return nil
	}
	return e.Resources.CommonWords
}

func (e *Env) stopwords() *lexicon.WordSet {
	if e == nil || e.Resources == nil {
		return nil
	}
	return e.Resources.Stopwords
}

func (e *Env) causalMode() CausalMode {
	if e == nil {
		return ModeStrict
	}
	return e.Params.CausalMode
}

// Definition describes a metric and how to compute it.
type Definition struct {
	ID          string
	Name        string
	Column      string
	Description string
	Kind        ValueKind
	Compute     func(doc *Document, env *Env) float64
}
