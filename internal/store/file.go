package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/papapumpkin/mythoscape/internal/journal"
)

// Load reads the journal at path. A missing file is a new journal, not an
// error.
func Load(path string) (journal.SavedState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return journal.NewState(), nil
		}
		return journal.SavedState{}, fmt.Errorf("reading journal file: %w", err)
	}

	state, err := Unmarshal(data)
	if err != nil {
		return journal.SavedState{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return state, nil
}

// Save writes the journal atomically (write temp + rename), creating the
// parent directory if needed.
func Save(path string, state journal.SavedState) error {
	data, err := Marshal(state)
	if err != nil {
		return fmt.Errorf("marshaling journal: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating journal directory: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing temp journal file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming journal file: %w", err)
	}
	return nil
}
