package metrics

import (
	"math"
	"testing"
)

func TestAnalogicalReasoning(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "direct analogy",
			// "is like" in 6 words.
			text: "A cell is like a factory.",
			want: 100.0 * 1 / 6,
		},
		{
			name: "comparative structure",
			// "just as" in 8 words.
			text: "Just as rivers carve valleys, habits carve character.",
			want: 100.0 * 1 / 8,
		},
		{
			name: "metaphorical bridge with curly apostrophe",
			// "it's a blueprint for" in 9 words.
			text: "The genome, it’s a blueprint for the cell.",
			want: 100.0 * 1 / 9,
		},
		{
			name: "imaginative prompt",
			// "imagine that" in 7 words.
			text: "Imagine that every atom is a dancer.",
			want: 100.0 * 1 / 7,
		},
		{
			name: "no analogy",
			text: "Paris is the capital of France.",
			want: 0.0,
		},
		{
			name: "empty",
			text: "",
			want: 0.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument(tt.text, true)
			got := AnalogicalReasoning(doc)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AnalogicalReasoning(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAnalogicalReasoning_MultipleSignals(t *testing.T) {
	// "think of it as" and "acts like" in 12 words.
	doc := NewDocument("Think of it as a pump; the tired heart acts like one.", true)
	got := AnalogicalReasoning(doc)
	want := 100.0 * 2 / 12
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}
