package upload

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store writes uploaded payloads into a fixed directory. Files keep the
// client-supplied name; a repeated name overwrites the previous upload.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed and returns a store over it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes data under the given name and returns the relative path that
// gets persisted on the user document.
func (s *Store) Save(name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("save upload %q: %w", name, err)
	}
	return path, nil
}
