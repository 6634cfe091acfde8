package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNoDatasetID is returned when a dataset document lacks an identifier.
var ErrNoDatasetID = errors.New("dataset has no dataset_id")

// LoadDataset reads one dataset document from disk. A load failure is
// fatal to the run for that dataset: no reaction of an unreadable dataset
// is ever processed.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	if ds.DatasetID == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoDatasetID, path)
	}
	return &ds, nil
}
