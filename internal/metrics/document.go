package metrics

import (
	"github.com/Sul4v/capstone/internal/textutil"
)

// Document is the shared metric input for a single response text.
// Derived views are computed lazily and cached, so the six metrics
// tokenize and split each response at most once between them.
// A Document is not safe for concurrent use; score one response per
// goroutine.
type Document struct {
	raw       string
	normalize bool

	plainText      string
	plainTextReady bool

	tokens      []string
	tokensReady bool

	sentences      []string
	sentencesReady bool
}

// NewDocument wraps one response text for scoring. When normalize is
// true, markdown structure is stripped before tokenization.
func NewDocument(raw string, normalize bool) *Document {
	return &Document{
		raw:       raw,
		normalize: normalize,
	}
}

// Raw returns the response text as received.
func (d *Document) Raw() string {
	return d.raw
}

// PlainText returns the scoreable text: the raw response with
// markdown structure stripped when normalization is on.
func (d *Document) PlainText() string {
	if d.plainTextReady {
		return d.plainText
	}

	if d.normalize {
		d.plainText = textutil.PlainText(d.raw)
	} else {
		d.plainText = d.raw
	}
	d.plainTextReady = true
	return d.plainText
}

// Tokens returns the folded word tokens of the scoreable text.
func (d *Document) Tokens() []string {
	if d.tokensReady {
		return d.tokens
	}

	d.tokens = textutil.Tokenize(d.PlainText())
	d.tokensReady = true
	return d.tokens
}

// WordCount returns the number of word tokens.
func (d *Document) WordCount() int {
	return len(d.Tokens())
}

// Sentences returns the sentences of the scoreable text.
func (d *Document) Sentences() []string {
	if d.sentencesReady {
		return d.sentences
	}

	d.sentences = textutil.SplitSentences(d.PlainText())
	d.sentencesReady = true
	return d.sentences
}
