package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps one pretty-printed JSON file per slot under a directory.
// It is the default backend: human-readable, diffable, easy to back up.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at 'dir', creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create store directory %q: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(key string, v any) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("cannot read slot %q: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cannot parse slot %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) Save(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal slot %q: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("cannot write slot %q: %w", key, err)
	}
	return nil
}
