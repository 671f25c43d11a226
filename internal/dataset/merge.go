package dataset

import (
	"fmt"
)

// Merge left-joins tables into one. The first table contributes all
// of its columns and rows; each later table contributes only the
// columns the result does not already have. Rows align on the key
// column when both sides carry it (first occurrence wins for
// duplicate keys); when either side lacks the key the table falls
// back to positional alignment and must match the base row count.
// Key values missing from a later table leave its cells empty.
func Merge(tables []*Table, key string) (*Table, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("nothing to merge")
	}

	out := New(tables[0].Header...)
	for _, row := range tables[0].Rows {
		out.AppendRow(append([]string(nil), row...))
	}
	baseKey, baseHasKey := out.Column(key)

	for n, t := range tables[1:] {
		fresh := freshColumns(out, t)
		if len(fresh) == 0 {
			continue
		}

		// pick returns the source row aligned with base row r, or nil.
		var pick func(r int) []string
		tKey, tHasKey := t.Column(key)
		if baseHasKey && tHasKey {
			byKey := make(map[string][]string, t.Len())
			for _, row := range t.Rows {
				if _, dup := byKey[row[tKey]]; !dup {
					byKey[row[tKey]] = row
				}
			}
			pick = func(r int) []string {
				return byKey[out.Rows[r][baseKey]]
			}
		} else {
			if t.Len() != out.Len() {
				return nil, fmt.Errorf(
					"merge input %d: no %q column and row count %d does not match %d",
					n+2, key, t.Len(), out.Len(),
				)
			}
			pick = func(r int) []string {
				return t.Rows[r]
			}
		}

		for _, srcCol := range fresh {
			outCol := out.AddColumn(t.Header[srcCol], "")
			for r := range out.Rows {
				if src := pick(r); src != nil && srcCol < len(src) {
					out.Rows[r][outCol] = src[srcCol]
				}
			}
		}
	}
	return out, nil
}

// freshColumns lists the column indexes of t absent from out.
func freshColumns(out, t *Table) []int {
	var fresh []int
	for i, name := range t.Header {
		if _, exists := out.Column(name); !exists {
			fresh = append(fresh, i)
		}
	}
	return fresh
}

// ExtractColumn returns a new single-column table holding the named
// column's cells in row order.
func ExtractColumn(t *Table, name string) (*Table, error) {
	col, ok := t.Column(name)
	if !ok {
		return nil, fmt.Errorf("column %q not found (available: %v)", name, t.Header)
	}

	out := New(name)
	for _, row := range t.Rows {
		out.AppendRow([]string{row[col]})
	}
	return out, nil
}
