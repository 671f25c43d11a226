package output

import (
	"fmt"
	"io"

	"github.com/Sul4v/capstone/internal/evaluate"
)

// Formatter defines the interface for rendering run reports.
type Formatter interface {
	Format(w io.Writer, report *evaluate.Report) error
}

// New returns the formatter for a --format flag value.
func New(format string) (Formatter, error) {
	switch format {
	case "", "text":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (supported: text, json)", format)
	}
}
