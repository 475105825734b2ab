// Package store is the whole-document JSON file abstraction. The entire
// collection is loaded and saved as one unit; there are no partial writes.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Store owns the one authoritative handle to the backing file. It does no
// locking itself; callers serialize each load-mutate-save cycle.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the full document into dst. A missing file is not an error:
// dst is left untouched and the caller sees an empty collection. Malformed
// content is fatal and propagated.
func (s *Store) Load(dst any) error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse %s: %w", s.path, err)
	}
	return nil
}

// Save serializes doc and overwrites the backing file in full. Indentation
// is cosmetic and not part of the contract.
func (s *Store) Save(doc any) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
