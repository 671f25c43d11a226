package dataset_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Sul4v/capstone/internal/dataset"
)

func TestAddColumn_New(t *testing.T) {
	tbl := dataset.New("id", "text")
	tbl.AppendRow([]string{"1", "hello"})
	tbl.AppendRow([]string{"2", "world"})

	col := tbl.AddColumn("score", "0.0")
	if col != 2 {
		t.Errorf("col = %d, want 2", col)
	}
	for r := 0; r < tbl.Len(); r++ {
		if got := tbl.Get(r, col); got != "0.0" {
			t.Errorf("row %d: got %q, want 0.0", r, got)
		}
	}
}

func TestAddColumn_ExistingResets(t *testing.T) {
	tbl := dataset.New("id", "score")
	tbl.AppendRow([]string{"1", "8.5"})

	col := tbl.AddColumn("score", "0.0")
	if col != 1 {
		t.Errorf("col = %d, want the existing index 1", col)
	}
	if got := tbl.Get(0, col); got != "0.0" {
		t.Errorf("got %q, want reset to 0.0", got)
	}
	if len(tbl.Header) != 2 {
		t.Errorf("header = %v, want unchanged width", tbl.Header)
	}
}

func TestAppendRow_PadsAndTruncates(t *testing.T) {
	tbl := dataset.New("a", "b", "c")
	tbl.AppendRow([]string{"1"})
	tbl.AppendRow([]string{"1", "2", "3", "4"})

	if diff := cmp.Diff([]string{"1", "", ""}, tbl.Rows[0]); diff != "" {
		t.Errorf("padded row mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "2", "3"}, tbl.Rows[1]); diff != "" {
		t.Errorf("truncated row mismatch (-want +got):\n%s", diff)
	}
}

func TestColumn(t *testing.T) {
	tbl := dataset.New("id", "claude_response")
	if _, ok := tbl.Column("missing"); ok {
		t.Error("Column(missing) = true, want false")
	}
	col, ok := tbl.Column("claude_response")
	if !ok || col != 1 {
		t.Errorf("Column(claude_response) = %d, %v; want 1, true", col, ok)
	}
}

func TestMeans(t *testing.T) {
	tbl := dataset.New("score", "label")
	tbl.AppendRow([]string{"1.0", "x"})
	tbl.AppendRow([]string{"2.0", "y"})
	tbl.AppendRow([]string{"", "z"})

	means := dataset.Means(tbl, []string{"score", "label", "missing"})

	if got := means["score"]; got != 1.5 {
		t.Errorf("score mean = %v, want 1.5 (blank cells skipped)", got)
	}
	if got := means["label"]; got != 0 {
		t.Errorf("label mean = %v, want 0 for non-numeric column", got)
	}
	if _, ok := means["missing"]; ok {
		t.Error("missing column must not appear in means")
	}
}
