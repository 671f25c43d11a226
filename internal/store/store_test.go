package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordRunRoundTrips(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	means := map[string]float64{
		"claude_clarity_score": 0.5,
		"claude_causal_depth":  10,
	}
	run := Run{
		Dataset:  "responses.csv",
		Output:   "responses_with_scores.csv",
		Rows:     3,
		Models:   []string{"claude", "gemini"},
		Duration: 1500 * time.Millisecond,
	}

	id, err := s.RecordRun(ctx, run, means)
	if err != nil {
		t.Fatalf("RecordRun returned error: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated run ID")
	}

	runs, err := s.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns returned error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.ID != id {
		t.Errorf("expected ID %s, got %s", id, got.ID)
	}
	if got.Dataset != "responses.csv" || got.Output != "responses_with_scores.csv" {
		t.Errorf("paths not preserved: %q -> %q", got.Dataset, got.Output)
	}
	if got.Rows != 3 {
		t.Errorf("expected 3 rows, got %d", got.Rows)
	}
	if diff := cmp.Diff([]string{"claude", "gemini"}, got.Models); diff != "" {
		t.Errorf("models mismatch (-want +got):\n%s", diff)
	}
	if got.Duration != 1500*time.Millisecond {
		t.Errorf("expected 1.5s duration, got %v", got.Duration)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be filled in")
	}

	gotMeans, err := s.RunMeans(ctx, id)
	if err != nil {
		t.Fatalf("RunMeans returned error: %v", err)
	}
	if diff := cmp.Diff(means, gotMeans); diff != "" {
		t.Errorf("means mismatch (-want +got):\n%s", diff)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	older := Run{ID: "run-old", CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), Dataset: "a.csv"}
	newer := Run{ID: "run-new", CreatedAt: time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC), Dataset: "b.csv"}
	if _, err := s.RecordRun(ctx, older, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordRun(ctx, newer, nil); err != nil {
		t.Fatal(err)
	}

	runs, err := s.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns returned error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != "run-new" || runs[1].ID != "run-old" {
		t.Errorf("expected newest first, got %s then %s", runs[0].ID, runs[1].ID)
	}

	limited, err := s.ListRuns(ctx, 1)
	if err != nil {
		t.Fatalf("ListRuns returned error: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != "run-new" {
		t.Errorf("expected only the newest run, got %v", limited)
	}
}

func TestRecordRunRejectsDuplicateID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	run := Run{ID: "run-1", Dataset: "a.csv"}
	if _, err := s.RecordRun(ctx, run, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordRun(ctx, run, nil); err == nil {
		t.Fatal("expected error for duplicate run ID")
	}
}

func TestRunMeansUnknownRun(t *testing.T) {
	s := openTestStore(t)

	means, err := s.RunMeans(context.Background(), "no-such-run")
	if err != nil {
		t.Fatalf("RunMeans returned error: %v", err)
	}
	if len(means) != 0 {
		t.Errorf("expected no means, got %v", means)
	}
}

func TestOpenBadPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "history.db"))
	if err == nil {
		t.Fatal("expected error for unwritable database path")
	}
}
