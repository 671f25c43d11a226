package log

import (
	"fmt"
	"io"
)

// Logger writes run diagnostics to W (typically stderr). Infof and
// Warnf always write; Debugf writes only when Verbose is true. A nil
// Logger or a nil W discards everything, so callers never need to
// guard their log calls.
type Logger struct {
	Verbose bool
	W       io.Writer
}

// New returns a Logger writing to w.
func New(w io.Writer, verbose bool) *Logger {
	return &Logger{Verbose: verbose, W: w}
}

// Discard returns a Logger that drops all messages.
func Discard() *Logger {
	return &Logger{}
}

// Infof writes a formatted progress message.
func (l *Logger) Infof(format string, args ...any) {
	l.write(format, args...)
}

// Warnf writes a formatted message with a "warning:" prefix.
func (l *Logger) Warnf(format string, args ...any) {
	l.write("warning: "+format, args...)
}

// Debugf writes a formatted message when Verbose is true.
// It is a no-op otherwise.
func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || !l.Verbose {
		return
	}
	l.write(format, args...)
}

// progressInterval is how many rows pass between progress messages.
const progressInterval = 1000

// Progress reports row-scoring progress. It writes on the first row
// and then once every progressInterval rows; done is zero-based.
func (l *Logger) Progress(done, total int) {
	if done%progressInterval != 0 {
		return
	}
	l.Infof("processing row %d/%d", done+1, total)
}

func (l *Logger) write(format string, args ...any) {
	if l == nil || l.W == nil {
		return
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}
