// Package discovery expands dataset arguments into concrete CSV paths.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand resolves command-line dataset arguments. A plain argument must
// name an existing file and passes through as given; an argument with
// glob metacharacters is expanded with doublestar and keeps only .csv
// files. A pattern matching nothing is an error, so a typo cannot turn
// into a silent no-op. Results are deduplicated and sorted.
func Expand(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			result = append(result, path)
		}
	}

	for _, arg := range args {
		if !isPattern(arg) {
			info, err := os.Stat(arg)
			if err != nil {
				return nil, fmt.Errorf("dataset %s: %w", arg, err)
			}
			if info.IsDir() {
				return nil, fmt.Errorf("dataset %s: is a directory", arg)
			}
			add(arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", arg, err)
		}
		found := false
		for _, m := range matches {
			if !strings.EqualFold(filepath.Ext(m), ".csv") {
				continue
			}
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
			add(m)
			found = true
		}
		if !found {
			return nil, fmt.Errorf("pattern %q matched no CSV files", arg)
		}
	}

	sort.Strings(result)
	return result, nil
}

// isPattern reports whether arg contains glob metacharacters.
func isPattern(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}
