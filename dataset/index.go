package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// IndexEntry is one successfully processed reaction.
type IndexEntry struct {
	DatasetID  string
	ReactionID string
}

// Index is the ordered dataset_id to reaction_id mapping of a run.
// Append-only for the duration of the run; flushed once at completion.
type Index struct {
	entries []IndexEntry
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{}
}

// Append records one successfully processed reaction.
func (ix *Index) Append(datasetID, reactionID string) {
	ix.entries = append(ix.entries, IndexEntry{DatasetID: datasetID, ReactionID: reactionID})
}

// Merge appends all entries of another index, preserving order.
func (ix *Index) Merge(other *Index) {
	ix.entries = append(ix.entries, other.entries...)
}

// Len returns the number of entries.
func (ix *Index) Len() int { return len(ix.entries) }

// Entries returns the entries in append order.
func (ix *Index) Entries() []IndexEntry { return ix.entries }

// WriteCSV flushes the index to a CSV file with the header
// dataset_id,reaction_id, creating parent directories as needed.
func (ix *Index) WriteCSV(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create index directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create index %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"dataset_id", "reaction_id"}); err != nil {
		return fmt.Errorf("write index header: %w", err)
	}
	for _, e := range ix.entries {
		if err := w.Write([]string{e.DatasetID, e.ReactionID}); err != nil {
			return fmt.Errorf("write index row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush index: %w", err)
	}
	return f.Close()
}
