package dataset

import (
	"strconv"
	"strings"
)

// Means computes the per-column mean over cells that parse as
// numbers, mirroring a NaN-skipping mean. Columns absent from the
// table are left out of the result; a present column whose cells
// never parse maps to 0.
func Means(t *Table, columns []string) map[string]float64 {
	means := make(map[string]float64, len(columns))
	for _, name := range columns {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		sum := 0.0
		count := 0
		for _, row := range t.Rows {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
			if err != nil {
				continue
			}
			sum += v
			count++
		}
		if count > 0 {
			means[name] = sum / float64(count)
		} else {
			means[name] = 0
		}
	}
	return means
}
