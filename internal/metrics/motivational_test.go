package metrics

import "testing"

func TestMotivationalTone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "one phrase per category",
			text: "Have you ever wondered why? Don't worry if it seems hard. You can do this!",
			want: 3,
		},
		{
			name: "no motivational language",
			text: "The mitochondria produces energy for the cell.",
			want: 0,
		},
		{
			name: "empty",
			text: "",
			want: 0,
		},
		{
			name: "same phrase twice",
			text: "What if it rains? And what if it snows?",
			want: 2,
		},
		{
			name: "curly apostrophes match",
			text: "Don’t worry if you’re stuck; you’ve got this.",
			want: 2,
		},
		{
			name: "overlapping phrases each count",
			// "consider this" and "this is a common hurdle" share the
			// word "this"; independent counting scores both.
			text: "Consider this is a common hurdle.",
			want: 2,
		},
		{
			name: "case insensitive",
			text: "TAKE YOUR TIME.",
			want: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument(tt.text, true)
			if got := MotivationalTone(doc); got != tt.want {
				t.Errorf("MotivationalTone(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestMotivationalTone_ViaRegistry(t *testing.T) {
	def, ok := Lookup("motivational-tone")
	if !ok {
		t.Fatal("motivational-tone not registered")
	}
	doc := NewDocument("You can do this.", true)
	if got := def.Compute(doc, &Env{}); got != 1 {
		t.Errorf("Compute = %v, want 1", got)
	}
}
