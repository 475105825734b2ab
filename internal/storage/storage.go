// Package storage persists attachment bytes on local disk. Files are keyed
// by a generated storage name so concurrent uploads never collide; the
// original filename only lives in the attachment metadata.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Service handles blob reads and writes under one upload directory.
type Service struct {
	dir string
}

// NewService creates the upload directory if needed.
func NewService(dir string) (*Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &Service{dir: dir}, nil
}

func (s *Service) Dir() string {
	return s.dir
}

// Save streams src to disk under a fresh generated name (random token plus
// the original extension) and returns that name. A failed write leaves no
// partial file behind.
func (s *Service) Save(src io.Reader, originalName string) (string, error) {
	name := uuid.NewString() + filepath.Ext(originalName)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create blob %s: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("write blob %s: %w", name, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close blob %s: %w", name, err)
	}
	return name, nil
}

// Path returns the on-disk location for a stored name.
func (s *Service) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Exists reports whether the blob is present on disk.
func (s *Service) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Remove deletes the blob. A blob that is already gone is not an error.
func (s *Service) Remove(name string) error {
	err := os.Remove(s.Path(name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove blob %s: %w", name, err)
	}
	return nil
}
