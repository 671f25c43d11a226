package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Read loads a CSV file into a Table. Parsing is lenient: quoting
// errors fall back to lazy quotes, ragged rows are padded or
// truncated to the header width, and unrecoverable rows are counted
// in Skipped rather than failing the load. Header names are trimmed
// and stripped of stray carriage returns.
func Read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("dataset %s: empty file", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	for i, name := range header {
		header[i] = strings.TrimSpace(strings.ReplaceAll(name, "\r", ""))
	}

	t := New(header...)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			t.Skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset: %w", err)
		}
		t.AppendRow(rec)
	}
	return t, nil
}

// Write saves a Table as CSV, creating parent directories as needed.
func Write(path string, t *Table) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

// ensureParentDir creates the parent directory for path if needed.
func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}
