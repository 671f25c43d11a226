// Package textutil normalizes response text for scoring: markdown
// stripping, case folding, word tokenization, and sentence splitting.
// Every metric consumes text through these helpers, so the word and
// sentence heuristics here are the single definition of "word" and
// "sentence" for the whole scorer.
package textutil

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// tokenPattern defines a word token: a run of lowercase letters,
// digits, or underscores in folded text. Apostrophes split tokens, so
// "don't" yields "don" and "t".
var tokenPattern = regexp.MustCompile(`[a-z0-9_]+`)

// quoteFolder maps typographic quotes to their ASCII forms so phrase
// tables written with straight quotes match curly-quoted responses.
var quoteFolder = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

// Fold lowercases s and normalizes typographic quotes.
func Fold(s string) string {
	return strings.ToLower(quoteFolder.Replace(s))
}

// Tokenize returns the folded word tokens of s, in order.
func Tokenize(s string) []string {
	return tokenPattern.FindAllString(Fold(s), -1)
}

// CountWords returns the number of word tokens in s.
func CountWords(s string) int {
	return len(Tokenize(s))
}

// PlainText strips markdown structure from src and returns the
// readable text. Inline markup (emphasis, links, code spans) keeps its
// text content, image alt text is kept, soft line breaks become
// spaces, and block boundaries become newlines. Code block contents
// are kept verbatim; responses quoting code are still scored on what
// the reader sees.
func PlainText(src string) string {
	source := []byte(src)
	reader := text.NewReader(source)
	doc := goldmark.DefaultParser().Parse(reader)

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				b.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					b.WriteByte(' ')
				}
			}
		case *ast.String:
			if entering {
				b.Write(node.Value)
			}
		case *ast.FencedCodeBlock:
			if entering {
				writeBlockLines(&b, source, node.Lines())
			}
		case *ast.CodeBlock:
			if entering {
				writeBlockLines(&b, source, node.Lines())
			}
		default:
			if !entering && n.Type() == ast.TypeBlock {
				b.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func writeBlockLines(b *strings.Builder, source []byte, lines *text.Segments) {
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
}

// SplitSentences splits text on sentence terminators (".", "!", "?")
// followed by whitespace. Runs of terminators stay attached to their
// sentence, and a trailing fragment without a terminator still counts.
// The heuristic is punctuation-only, so abbreviation periods split
// too. Returns nil for blank input.
func SplitSentences(s string) []string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}

	var sentences []string
	start := 0
	i := 0
	for i < len(trimmed) {
		if !isTerminator(trimmed[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(trimmed) && isTerminator(trimmed[j]) {
			j++
		}
		if j < len(trimmed) && isSpace(trimmed[j]) {
			if s := strings.TrimSpace(trimmed[start:j]); s != "" {
				sentences = append(sentences, s)
			}
			for j < len(trimmed) && isSpace(trimmed[j]) {
				j++
			}
			start = j
		}
		i = j
	}
	if start < len(trimmed) {
		if s := strings.TrimSpace(trimmed[start:]); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// CountSentences returns the number of sentences in s.
func CountSentences(s string) int {
	return len(SplitSentences(s))
}

func isTerminator(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
