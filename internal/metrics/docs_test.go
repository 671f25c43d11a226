package metrics

import (
	"strings"
	"testing"
)

func TestListDocs_EveryMetricHasAPage(t *testing.T) {
	docs := ListDocs()
	if len(docs) != len(All()) {
		t.Fatalf("len = %d, want %d", len(docs), len(All()))
	}
	for _, d := range docs {
		if d.Content == "" {
			t.Errorf("%s: missing reference page", d.ID)
		}
		if !strings.Contains(d.Content, d.ID) {
			t.Errorf("%s: page does not mention its ID", d.ID)
		}
	}
}

func TestLookupDoc_ByIDAndName(t *testing.T) {
	content, err := LookupDoc("MT004")
	if err != nil {
		t.Fatalf("LookupDoc(MT004): %v", err)
	}
	if !strings.Contains(content, "causal") {
		t.Errorf("expected causal content, got: %s", content)
	}

	content, err = LookupDoc("causal-depth")
	if err != nil {
		t.Fatalf("LookupDoc(causal-depth): %v", err)
	}
	if !strings.Contains(content, "MT004") {
		t.Errorf("expected MT004 content, got: %s", content)
	}
}

func TestLookupDoc_Unknown(t *testing.T) {
	_, err := LookupDoc("MT999")
	if err == nil {
		t.Fatal("expected unknown metric error")
	}
	if !strings.Contains(err.Error(), "unknown metric") {
		t.Errorf("error = %q, want unknown metric", err.Error())
	}
}
