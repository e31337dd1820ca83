package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore writes uploads into a directory on disk
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes the upload to a new file and returns its name
func (s *LocalStore) Save(ctx context.Context, filename string, r io.Reader, size int64) (string, error) {
	name := objectName(filename)

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return name, nil
}

// Read returns the content of a saved upload
func (s *LocalStore) Read(ctx context.Context, ref string) (string, error) {
	if ref != filepath.Base(ref) {
		return "", fmt.Errorf("invalid transcript reference %q", ref)
	}
	b, err := os.ReadFile(filepath.Join(s.dir, ref))
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(b), nil
}
