package task

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// Store owns access to the JSON data file. Callers go through Load and
// Save and never touch file handles directly.
//
// The file is not protected against concurrent invocations: there is no
// locking, and two processes writing at once race (last writer wins).
type Store struct {
	Path   string
	logger *log.Logger
}

// NewStore creates a store for the given data file path.
func NewStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{Path: path, logger: logger}
}

// Load reads the full task collection from the data file.
//
// A missing file loads as an empty list. A file that cannot be parsed
// as a JSON task array is reported as a warning and loads as empty; the
// next Save overwrites it. Tasks carrying an unknown status are kept
// but warned about.
func (s *Store) Load() (List, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return List{}, nil
		}
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var tasks List
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.logger.Warn("data file is not a valid task array, treating as empty",
			"path", s.Path, "err", err)
		return List{}, nil
	}

	for i := range tasks {
		if !tasks[i].Status.Valid() {
			s.logger.Warn("task has an unknown status",
				"id", int(tasks[i].ID), "status", string(tasks[i].Status))
		}
	}

	return tasks, nil
}

// Save serializes the full collection as pretty-printed JSON and
// overwrites the data file. A write failure is returned to the caller,
// which treats it as fatal for the invocation.
func (s *Store) Save(tasks List) error {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal data file: %w", err)
	}

	// Trailing newline
	data = append(data, '\n')

	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}

	return nil
}
