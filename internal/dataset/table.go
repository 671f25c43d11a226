// Package dataset reads, transforms, and writes the row-oriented CSV
// tables the scorer operates on. Tables are modeled append-only:
// operations add columns or rows but never remove what the input
// carried.
package dataset

// Table is an in-memory CSV table with ordered columns. Cells are
// kept as strings; numeric interpretation happens at the edges.
type Table struct {
	Header []string
	Rows   [][]string

	// Skipped counts input rows dropped during parsing.
	Skipped int

	index map[string]int
}

// New returns an empty table with the given header.
func New(header ...string) *Table {
	t := &Table{Header: append([]string(nil), header...)}
	t.reindex()
	return t
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Header))
	for i, name := range t.Header {
		if _, dup := t.index[name]; !dup {
			t.index[name] = i
		}
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Column returns the index of the named column. Duplicate names
// resolve to the first occurrence.
func (t *Table) Column(name string) (int, bool) {
	if t.index == nil {
		t.reindex()
	}
	i, ok := t.index[name]
	return i, ok
}

// AddColumn ensures a column exists and fills every cell of it with
// fill, returning the column index. An existing column is reset, so
// re-scoring a previously scored table starts from a clean column.
func (t *Table) AddColumn(name, fill string) int {
	if i, ok := t.Column(name); ok {
		for _, row := range t.Rows {
			row[i] = fill
		}
		return i
	}

	t.Header = append(t.Header, name)
	i := len(t.Header) - 1
	t.index[name] = i
	for r, row := range t.Rows {
		for len(row) <= i {
			row = append(row, fill)
		}
		t.Rows[r] = row
	}
	return i
}

// AppendRow adds a row, padding or truncating it to the header width.
func (t *Table) AppendRow(row []string) {
	t.Rows = append(t.Rows, t.fit(row))
}

// Get returns the cell at (row, col).
func (t *Table) Get(row, col int) string {
	return t.Rows[row][col]
}

// Set writes the cell at (row, col).
func (t *Table) Set(row, col int, value string) {
	t.Rows[row][col] = value
}

// fit pads or truncates row to the header width.
func (t *Table) fit(row []string) []string {
	width := len(t.Header)
	if len(row) > width {
		return row[:width]
	}
	for len(row) < width {
		row = append(row, "")
	}
	return row
}
