package metrics

import (
	"github.com/Sul4v/capstone/internal/match"
)

// compileAll merges phrase groups into one matcher. Matches are
// non-overlapping across the whole set and the longest phrase wins,
// so "because of" never also counts as "because".
func compileAll(groups ...[]string) *match.Matcher {
	var all []string
	for _, group := range groups {
		all = append(all, group...)
	}
	return match.New(all)
}

// compileEach builds one single-phrase matcher per entry. Each phrase
// is then counted independently, so phrases that share words can each
// count against the same stretch of text.
func compileEach(groups ...[]string) []*match.Matcher {
	var out []*match.Matcher
	for _, group := range groups {
		for _, phrase := range group {
			out = append(out, match.New([]string{phrase}))
		}
	}
	return out
}

// countEach sums independent per-phrase counts over tokens.
func countEach(matchers []*match.Matcher, tokens []string) int {
	total := 0
	for _, m := range matchers {
		total += m.Count(tokens)
	}
	return total
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
