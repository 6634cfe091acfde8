package dataset

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// newDatasetLogger opens a per-dataset log file under the error log
// directory and returns a logger writing to it. The returned closer must
// be released on every exit path of the dataset run, including
// cancellation.
func newDatasetLogger(dir, datasetID string) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	path := filepath.Join(dir, "dataset_"+datasetID+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open dataset log %s: %w", path, err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return logger, f, nil
}
