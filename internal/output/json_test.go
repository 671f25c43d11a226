package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/Sul4v/capstone/internal/evaluate"
)

func TestJSONFormatterFieldNamesAndValues(t *testing.T) {
	f := &JSONFormatter{}
	var buf bytes.Buffer

	report := &evaluate.Report{
		Dataset:  "responses.csv",
		Output:   "scored.csv",
		Rows:     2,
		Models:   []string{"claude"},
		Columns:  []string{"claude_clarity_score"},
		Means:    map[string]float64{"claude_clarity_score": 0.5},
		Warnings: []string{"something degraded"},
		Duration: 1500 * time.Millisecond,
	}

	if err := f.Format(&buf, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}

	expectedFields := []string{"dataset", "output", "rows", "models", "columns", "means", "warnings", "duration_ms"}
	for _, field := range expectedFields {
		if _, ok := raw[field]; !ok {
			t.Errorf("missing field %q in JSON output", field)
		}
	}

	if raw["dataset"] != "responses.csv" {
		t.Errorf("dataset: got %v", raw["dataset"])
	}
	// JSON numbers are float64 when unmarshaled into any
	if raw["rows"] != float64(2) {
		t.Errorf("rows: got %v, want 2", raw["rows"])
	}
	if raw["duration_ms"] != float64(1500) {
		t.Errorf("duration_ms: got %v, want 1500", raw["duration_ms"])
	}
	means, ok := raw["means"].(map[string]any)
	if !ok {
		t.Fatalf("means is not an object: %v", raw["means"])
	}
	if means["claude_clarity_score"] != 0.5 {
		t.Errorf("mean: got %v, want 0.5", means["claude_clarity_score"])
	}
}

func TestJSONFormatterOmitsEmptyWarnings(t *testing.T) {
	f := &JSONFormatter{}
	var buf bytes.Buffer

	report := &evaluate.Report{Dataset: "responses.csv", Duration: time.Millisecond}
	if err := f.Format(&buf, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := raw["warnings"]; ok {
		t.Error("empty warnings should be omitted")
	}
}

func TestNewFormatter(t *testing.T) {
	if _, err := New("text"); err != nil {
		t.Errorf("text: unexpected error %v", err)
	}
	if _, err := New(""); err != nil {
		t.Errorf("empty: unexpected error %v", err)
	}
	if _, err := New("json"); err != nil {
		t.Errorf("json: unexpected error %v", err)
	}
	if _, err := New("yaml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
