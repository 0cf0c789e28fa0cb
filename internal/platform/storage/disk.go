// Package storage provides local-disk persistence for file content.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Disk stores file content under a root directory. Blob names are random
// UUIDs so uploads never collide regardless of the user-supplied file name.
type Disk struct {
	root string
}

// NewDisk creates a Disk store rooted at the given directory.
// The directory is created if it does not exist.
func NewDisk(root string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &Disk{root: root}, nil
}

// Root returns the storage root directory.
func (d *Disk) Root() string {
	return d.root
}

// Save writes data under a fresh UUID name and returns the absolute path.
func (d *Disk) Save(data []byte) (string, error) {
	path := filepath.Join(d.root, uuid.NewString())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	return path, nil
}

// Read returns the content stored at path.
func (d *Disk) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob: %w", err)
	}
	return data, nil
}

// Write stores data at an explicit path, overwriting any previous content.
func (d *Disk) Write(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write blob: %w", err)
	}
	return nil
}

// Exists reports whether a regular file exists at path.
func (d *Disk) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// EnsureDir creates a directory (and parents) if missing. Idempotent.
func (d *Disk) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}
