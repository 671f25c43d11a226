package textutil_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Sul4v/capstone/internal/textutil"
)

func TestFold_CurlyQuotes(t *testing.T) {
	got := textutil.Fold("It’s “Fine”")
	if got != `it's "fine"` {
		t.Errorf("got %q, want %q", got, `it's "fine"`)
	}
}

func TestTokenize_ApostropheSplits(t *testing.T) {
	got := textutil.Tokenize("Don't worry, you'll see.")
	want := []string{"don", "t", "worry", "you", "ll", "see"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_NumbersAndPunctuation(t *testing.T) {
	got := textutil.Tokenize("The value is 3.14 today!")
	want := []string{"the", "value", "is", "3", "14", "today"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestCountWords(t *testing.T) {
	if got := textutil.CountWords("  hello   world  "); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
	if got := textutil.CountWords(""); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestPlainText_InlineMarkup(t *testing.T) {
	got := textutil.PlainText("Click [**bold link**](https://example.com) *now* `ok`.\n")
	if got != "Click bold link now ok." {
		t.Errorf("got %q, want %q", got, "Click bold link now ok.")
	}
}

func TestPlainText_SoftLineBreak(t *testing.T) {
	got := textutil.PlainText("Hello\nworld.\n")
	if got != "Hello world." {
		t.Errorf("got %q, want %q", got, "Hello world.")
	}
}

func TestPlainText_ImageAlt(t *testing.T) {
	got := textutil.PlainText("See ![alt text](image.png) here.\n")
	if got != "See alt text here." {
		t.Errorf("got %q, want %q", got, "See alt text here.")
	}
}

func TestPlainText_BlocksSeparated(t *testing.T) {
	src := "# Title\n\nFirst paragraph.\n\nSecond paragraph.\n"
	got := textutil.PlainText(src)
	want := "Title\nFirst paragraph.\nSecond paragraph."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPlainText_PlainProseUnchanged(t *testing.T) {
	got := textutil.PlainText("Because of the rain, the ground is wet.")
	if got != "Because of the rain, the ground is wet." {
		t.Errorf("got %q", got)
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "basic",
			in:   "First sentence. Second sentence! Third?",
			want: []string{"First sentence.", "Second sentence!", "Third?"},
		},
		{
			name: "terminator runs stay attached",
			in:   "Wait... what? Yes.",
			want: []string{"Wait...", "what?", "Yes."},
		},
		{
			name: "decimal numbers do not split",
			in:   "The value is 3.14 today. Next.",
			want: []string{"The value is 3.14 today.", "Next."},
		},
		{
			name: "abbreviation periods split",
			in:   "Dr. Smith went home.",
			want: []string{"Dr.", "Smith went home."},
		},
		{
			name: "trailing fragment kept",
			in:   "Complete sentence. trailing bit",
			want: []string{"Complete sentence.", "trailing bit"},
		},
		{
			name: "blank",
			in:   "   ",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textutil.SplitSentences(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("sentences mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCountSentences(t *testing.T) {
	if got := textutil.CountSentences("One. Two. Three."); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}
