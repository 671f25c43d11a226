package output

import (
	"encoding/json"
	"io"

	"github.com/Sul4v/capstone/internal/evaluate"
)

// JSONFormatter outputs a report as one pretty-printed JSON object.
type JSONFormatter struct{}

type jsonReport struct {
	*evaluate.Report
	DurationMS int64 `json:"duration_ms"`
}

// Format writes the report as indented JSON. Map keys marshal sorted,
// so the output is stable for a given report.
func (f *JSONFormatter) Format(w io.Writer, report *evaluate.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Report:     report,
		DurationMS: report.Duration.Milliseconds(),
	})
}
