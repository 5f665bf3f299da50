// Package adapter contains filesystem, document and report adapters for the assetlink CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	m "assetlink.dev/pkg/assetlink/internal/model"
)

// FileAdapter abstracts the filesystem operations the rewrite workflow relies
// on, so the domain logic can be tested without touching the disk.
type FileAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces path with content. Implementations must not leave a
	// truncated file behind when the write fails.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so callers can check existence or
	// keep the permissions of a file they are about to replace.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalFileAdapter is the os-backed FileAdapter.
type LocalFileAdapter struct{}

// NewLocalFileAdapter constructs a LocalFileAdapter instance ready to be
// wired into the workflow.
func NewLocalFileAdapter() *LocalFileAdapter {
	return &LocalFileAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalFileAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - path is the document the user asked to rewrite
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalFileAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WriteFile writes content to a temporary file next to path and renames it
// over path once fully written.
func (a *LocalFileAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	target := string(path)

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		cleanup()

		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		cleanup()
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		cleanup()
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
