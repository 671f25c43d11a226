package metrics

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed MT*/README.md
var docsFS embed.FS

// DocInfo pairs a metric definition with its embedded reference page.
type DocInfo struct {
	Definition
	Content string
}

// ListDocs returns the reference page for every metric, in metric
// order. A metric without an embedded page is listed with empty
// content.
func ListDocs() []DocInfo {
	all := All()
	docs := make([]DocInfo, 0, len(all))
	for _, def := range all {
		content, _ := readDoc(docsFS, def.ID)
		docs = append(docs, DocInfo{Definition: def, Content: content})
	}
	return docs
}

// LookupDoc finds a metric reference page by ID (e.g. MT004) or name
// (e.g. causal-depth).
func LookupDoc(query string) (string, error) {
	def, ok := Lookup(query)
	if !ok {
		return "", fmt.Errorf("unknown metric %q", query)
	}
	return readDoc(docsFS, def.ID)
}

func readDoc(fsys fs.FS, id string) (string, error) {
	data, err := fs.ReadFile(fsys, id+"/README.md")
	if err != nil {
		return "", fmt.Errorf("no reference page for %s: %w", id, err)
	}
	return string(data), nil
}
