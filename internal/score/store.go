// Package score persists the high score to a JSON file in the user's config
// directory.
package score

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

type record struct {
	HighScore int `json:"high_score"`
}

// FileStore reads and writes the high score at a fixed path. A missing file
// reads as zero, so first runs need no setup.
type FileStore struct {
	path string
}

// NewFileStore places the score file under the user config directory
// (e.g. ~/.config/typefall/highscore.json).
func NewFileStore() (*FileStore, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(base, "typefall")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{path: filepath.Join(dir, "highscore.json")}, nil
}

// NewFileStoreAt uses an explicit file path. The parent directory must exist.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return 0, err
	}
	return r.HighScore, nil
}

func (s *FileStore) Save(best int) error {
	data, err := json.MarshalIndent(record{HighScore: best}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
