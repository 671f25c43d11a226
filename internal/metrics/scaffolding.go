package metrics

import (
	"sort"
	"strings"

	"github.com/Sul4v/capstone/internal/lexicon"
	"github.com/Sul4v/capstone/internal/textutil"
)

// Candidate jargon words are longer than four letters.
const minJargonLength = 5

// definitionCues mark an inline explanation following a term.
var definitionCues = []string{
	"which means",
	"is defined as",
	"also known as",
	"refers to",
}

// ConceptualScaffolding scores how much of the text's unfamiliar
// vocabulary is explained where it appears. Candidate jargon terms are
// the distinct alphabetic words longer than four letters that appear
// in neither the common-word set nor the stopword set. A term counts
// as explained when some sentence containing it also carries a
// parenthetical mentioning it, or follows it with a definition cue
// before the next period. The score is explained terms over candidate
// terms; text with no candidates scores 1.
func ConceptualScaffolding(doc *Document, common, stop *lexicon.WordSet) float64 {
	terms := jargonTerms(doc, common, stop)
	if len(terms) == 0 {
		return 1.0
	}

	raw := doc.Sentences()
	sentences := make([]string, len(raw))
	for i, s := range raw {
		sentences[i] = textutil.Fold(s)
	}

	defined := 0
	for _, term := range terms {
		if explained(sentences, term) {
			defined++
		}
	}
	return float64(defined) / float64(len(terms))
}

// jargonTerms returns the sorted distinct candidate terms of doc.
func jargonTerms(doc *Document, common, stop *lexicon.WordSet) []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, tok := range doc.Tokens() {
		if len(tok) < minJargonLength || !isAlphaToken(tok) {
			continue
		}
		if common.Contains(tok) || stop.Contains(tok) {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		terms = append(terms, tok)
	}
	sort.Strings(terms)
	return terms
}

// explained reports whether any sentence containing term explains it.
func explained(sentences []string, term string) bool {
	for _, s := range sentences {
		if indexWord(s, term, 0) < 0 {
			continue
		}
		if parentheticalMention(s, term) || cueAfterTerm(s, term) {
			return true
		}
	}
	return false
}

// parentheticalMention reports whether s has a parenthetical whose
// content mentions term as a whole word.
func parentheticalMention(s, term string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '(' {
			continue
		}
		j := strings.IndexByte(s[i+1:], ')')
		if j < 0 {
			return false
		}
		if containsWord(s[i+1:i+1+j], term) {
			return true
		}
		i += 1 + j
	}
	return false
}

// cueAfterTerm reports whether some occurrence of term in s is
// followed by a definition cue with no period in between.
func cueAfterTerm(s, term string) bool {
	for from := 0; ; {
		idx := indexWord(s, term, from)
		if idx < 0 {
			return false
		}
		rest := s[idx+len(term):]
		if cut := strings.IndexByte(rest, '.'); cut >= 0 {
			rest = rest[:cut]
		}
		for _, cue := range definitionCues {
			if containsWord(rest, cue) {
				return true
			}
		}
		from = idx + 1
	}
}

func containsWord(s, term string) bool {
	return indexWord(s, term, 0) >= 0
}

// indexWord returns the byte index of the first occurrence of term in
// s at or after from where both ends fall on word boundaries, or -1.
func indexWord(s, term string, from int) int {
	if term == "" {
		return -1
	}
	for i := from; i <= len(s)-len(term); {
		j := strings.Index(s[i:], term)
		if j < 0 {
			return -1
		}
		idx := i + j
		end := idx + len(term)
		if (idx == 0 || !isWordByte(s[idx-1])) &&
			(end == len(s) || !isWordByte(s[end])) {
			return idx
		}
		i = idx + 1
	}
	return -1
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_'
}

func isAlphaToken(tok string) bool {
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}
