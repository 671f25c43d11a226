// Package match implements multi-phrase scanning over word tokens.
// Phrases are compiled once into a token trie; scans are
// case-insensitive (tokens arrive already folded), word-boundary
// exact, and non-overlapping, with the longest phrase winning when
// several start at the same token.
package match

import (
	"strings"

	"github.com/Sul4v/capstone/internal/textutil"
)

type node struct {
	children map[string]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// Matcher scans token streams for a fixed phrase set.
type Matcher struct {
	root *node
	size int
}

// New compiles phrases into a Matcher. Each phrase is tokenized with
// the same rules as document text, so multi-word phrases match across
// any whitespace or punctuation. Blank and duplicate phrases are
// dropped.
func New(phrases []string) *Matcher {
	m := &Matcher{root: newNode()}
	seen := make(map[string]struct{})
	for _, phrase := range phrases {
		tokens := textutil.Tokenize(phrase)
		if len(tokens) == 0 {
			continue
		}
		key := strings.Join(tokens, " ")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		cur := m.root
		for _, tok := range tokens {
			next, ok := cur.children[tok]
			if !ok {
				next = newNode()
				cur.children[tok] = next
			}
			cur = next
		}
		cur.terminal = true
		m.size++
	}
	return m
}

// Len reports how many distinct phrases the matcher holds.
func (m *Matcher) Len() int {
	return m.size
}

// Count returns the number of non-overlapping phrase matches in
// tokens. After a match the scan resumes past the consumed tokens.
func (m *Matcher) Count(tokens []string) int {
	count := 0
	for i := 0; i < len(tokens); {
		if n := m.matchAt(tokens, i); n > 0 {
			count++
			i += n
			continue
		}
		i++
	}
	return count
}

// Contains reports whether tokens holds at least one phrase match.
func (m *Matcher) Contains(tokens []string) bool {
	for i := range tokens {
		if m.matchAt(tokens, i) > 0 {
			return true
		}
	}
	return false
}

// matchAt returns the token length of the longest phrase starting at
// pos, or 0 when no phrase matches there.
func (m *Matcher) matchAt(tokens []string, pos int) int {
	cur := m.root
	best := 0
	for i := pos; i < len(tokens); i++ {
		next, ok := cur.children[tokens[i]]
		if !ok {
			break
		}
		cur = next
		if cur.terminal {
			best = i - pos + 1
		}
	}
	return best
}
