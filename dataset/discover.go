// Package dataset orchestrates a dataset run: it discovers and loads
// dataset files, converts each reaction in isolation, writes the
// serialized documents, and aggregates the dataset index. One reaction's
// failure never aborts the batch.
package dataset

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DiscoverPattern matches dataset files under a root directory.
const DiscoverPattern = "**/ord_dataset*.json"

// Discover returns all dataset file paths under root, sorted for a
// stable processing order.
func Discover(root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve dataset root: %w", err)
	}

	matches, err := doublestar.FilepathGlob(filepath.Join(absRoot, DiscoverPattern))
	if err != nil {
		return nil, fmt.Errorf("search datasets under %s: %w", absRoot, err)
	}
	sort.Strings(matches)
	return matches, nil
}
