package metrics

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDocument_NormalizeStripsMarkdown(t *testing.T) {
	raw := "See [here](https://example.com) for *details*."

	norm := NewDocument(raw, true)
	want := []string{"see", "here", "for", "details"}
	if diff := cmp.Diff(want, norm.Tokens()); diff != "" {
		t.Errorf("normalized tokens mismatch (-want +got):\n%s", diff)
	}

	plain := NewDocument(raw, false)
	want = []string{"see", "here", "https", "example", "com", "for", "details"}
	if diff := cmp.Diff(want, plain.Tokens()); diff != "" {
		t.Errorf("raw tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument_CachesDerivedViews(t *testing.T) {
	doc := NewDocument("One sentence. Two sentences.", true)

	first := doc.Tokens()
	second := doc.Tokens()
	if &first[0] != &second[0] {
		t.Error("Tokens not cached between calls")
	}

	if got := doc.WordCount(); got != 4 {
		t.Errorf("WordCount = %d, want 4", got)
	}
	if got := len(doc.Sentences()); got != 2 {
		t.Errorf("Sentences = %d, want 2", got)
	}
}

func TestDocument_EmptyText(t *testing.T) {
	doc := NewDocument("", true)
	if doc.WordCount() != 0 {
		t.Errorf("WordCount = %d, want 0", doc.WordCount())
	}
	if doc.Sentences() != nil {
		t.Errorf("Sentences = %v, want nil", doc.Sentences())
	}
}
