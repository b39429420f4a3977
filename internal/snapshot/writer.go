package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"acfinder/internal/model"
)

// Writer persists one snapshot per run as
// ac_results_<YYYYMMDD_HHMMSS>.json under Dir. The write is the terminal
// pipeline step, so an I/O error here is allowed to fail the run.
type Writer struct {
	Dir string
}

func (w *Writer) Write(s model.Snapshot) (string, error) {
	filename := fmt.Sprintf("ac_results_%s.json", s.Timestamp.Format("20060102_150405"))
	path := filepath.Join(w.Dir, filename)

	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}
	return path, nil
}

// Read loads a previously written snapshot.
func Read(path string) (model.Snapshot, error) {
	var s model.Snapshot
	b, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	err = json.Unmarshal(b, &s)
	return s, err
}
