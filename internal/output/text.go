package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Sul4v/capstone/internal/evaluate"
)

// TextFormatter renders a report as a summary line, any warnings, and an
// aligned metric-by-model table of column means.
type TextFormatter struct{}

// Format writes the report in human-readable form.
func (f *TextFormatter) Format(w io.Writer, report *evaluate.Report) error {
	// Reports without an output path (summaries of already-scored
	// files) get a shorter headline.
	if report.Output != "" {
		if _, err := fmt.Fprintf(w, "%s: %d rows, %d models -> %s (%s)\n",
			report.Dataset, report.Rows, len(report.Models), report.Output,
			report.Duration.Round(time.Millisecond)); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintf(w, "%s: %d rows, %d models\n",
		report.Dataset, report.Rows, len(report.Models)); err != nil {
		return err
	}
	for _, warning := range report.Warnings {
		if _, err := fmt.Fprintf(w, "warning: %s\n", warning); err != nil {
			return err
		}
	}

	suffixes := metricSuffixes(report)
	if len(suffixes) == 0 {
		return nil
	}

	nameWidth := len("metric")
	for _, s := range suffixes {
		if len(s) > nameWidth {
			nameWidth = len(s)
		}
	}
	modelWidths := make([]int, len(report.Models))
	for i, m := range report.Models {
		modelWidths[i] = len(m)
		if modelWidths[i] < 6 {
			modelWidths[i] = 6
		}
	}

	if _, err := fmt.Fprintf(w, "\n%-*s", nameWidth, "metric"); err != nil {
		return err
	}
	for i, m := range report.Models {
		if _, err := fmt.Fprintf(w, "  %*s", modelWidths[i], m); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for _, suffix := range suffixes {
		if _, err := fmt.Fprintf(w, "%-*s", nameWidth, suffix); err != nil {
			return err
		}
		for i, m := range report.Models {
			if _, err := fmt.Fprintf(w, "  %*.3f", modelWidths[i], report.Means[m+"_"+suffix]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// metricSuffixes recovers the per-metric column suffixes from the first
// model's block of score columns.
func metricSuffixes(report *evaluate.Report) []string {
	if len(report.Models) == 0 {
		return nil
	}
	prefix := report.Models[0] + "_"
	var suffixes []string
	for _, col := range report.Columns {
		if s, ok := strings.CutPrefix(col, prefix); ok {
			suffixes = append(suffixes, s)
		}
	}
	return suffixes
}
