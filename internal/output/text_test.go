package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Sul4v/capstone/internal/evaluate"
)

func TestTextFormatterFullOutput(t *testing.T) {
	f := &TextFormatter{}
	var buf bytes.Buffer

	report := &evaluate.Report{
		Dataset: "responses.csv",
		Output:  "scored.csv",
		Rows:    2,
		Models:  []string{"claude", "gemini"},
		Columns: []string{
			"claude_motivational_tone", "claude_clarity_score",
			"gemini_motivational_tone", "gemini_clarity_score",
		},
		Means: map[string]float64{
			"claude_motivational_tone": 1,
			"claude_clarity_score":     0.5,
			"gemini_motivational_tone": 0.5,
			"gemini_clarity_score":     0.25,
		},
		Warnings: []string{"something degraded"},
		Duration: 12 * time.Millisecond,
	}

	if err := f.Format(&buf, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "responses.csv: 2 rows, 2 models -> scored.csv (12ms)\n" +
		"warning: something degraded\n" +
		"\n" +
		"metric             claude  gemini\n" +
		"motivational_tone   1.000   0.500\n" +
		"clarity_score       0.500   0.250\n"
	if got := buf.String(); got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextFormatterNoOutputPath(t *testing.T) {
	f := &TextFormatter{}
	var buf bytes.Buffer

	report := &evaluate.Report{
		Dataset: "scored.csv",
		Rows:    3,
		Models:  []string{"claude"},
		Columns: []string{"claude_clarity_score"},
		Means:   map[string]float64{"claude_clarity_score": 0.5},
	}

	if err := f.Format(&buf, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.SplitN(buf.String(), "\n", 2)
	if got, want := lines[0], "scored.csv: 3 rows, 1 models"; got != want {
		t.Errorf("headline = %q, want %q", got, want)
	}
}

func TestTextFormatterNoModels(t *testing.T) {
	f := &TextFormatter{}
	var buf bytes.Buffer

	report := &evaluate.Report{
		Dataset:  "responses.csv",
		Output:   "scored.csv",
		Rows:     0,
		Duration: time.Millisecond,
	}

	if err := f.Format(&buf, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "responses.csv: 0 rows, 0 models -> scored.csv") {
		t.Errorf("unexpected header: %s", out)
	}
	if strings.Contains(out, "metric") {
		t.Errorf("expected no table without models, got:\n%s", out)
	}
}

func TestTextFormatterWideModelName(t *testing.T) {
	f := &TextFormatter{}
	var buf bytes.Buffer

	report := &evaluate.Report{
		Dataset:  "responses.csv",
		Output:   "scored.csv",
		Rows:     1,
		Models:   []string{"claude-sonnet-4"},
		Columns:  []string{"claude-sonnet-4_clarity_score"},
		Means:    map[string]float64{"claude-sonnet-4_clarity_score": 0.75},
		Duration: time.Millisecond,
	}

	if err := f.Format(&buf, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	header := lines[len(lines)-2]
	row := lines[len(lines)-1]
	if len(header) != len(row) {
		t.Errorf("header and row widths differ:\n%q\n%q", header, row)
	}
	if !strings.Contains(row, "0.750") {
		t.Errorf("expected mean 0.750 in row %q", row)
	}
}
