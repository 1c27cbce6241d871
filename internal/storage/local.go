package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o750
	filePerm = 0o640
)

// LocalStorage stores directories and files on the local filesystem.
type LocalStorage struct{}

func NewLocalStorage() *LocalStorage {
	return &LocalStorage{}
}

func (s *LocalStorage) EnsureRoot(root string) error {
	err := os.MkdirAll(root, dirPerm)
	if err != nil {
		return fmt.Errorf("%w: create root %s: %w", ErrFilesystem, root, err)
	}
	return nil
}

func (s *LocalStorage) CreateDirectory(path string) error {
	err := os.MkdirAll(filepath.Dir(path), dirPerm)
	if err != nil {
		return fmt.Errorf("%w: create parents of %s: %w", ErrFilesystem, path, err)
	}

	// Leaf is created with Mkdir so an existing directory is reported, not reused
	err = os.Mkdir(path, dirPerm)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}
	if err != nil {
		return fmt.Errorf("%w: create directory %s: %w", ErrFilesystem, path, err)
	}

	return nil
}

// Save writes to a temp file next to path, fsyncs, then renames into place.
// The temp file is removed on any failure.
func (s *LocalStorage) Save(path string, r io.Reader) (int64, error) {
	if s.Exists(path) {
		return 0, fmt.Errorf("%w: %s", ErrExists, path)
	}

	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return 0, fmt.Errorf("%w: create temp file %s: %w", ErrFilesystem, tmpPath, err)
	}

	size, err := io.Copy(f, r)
	if err != nil {
		s.discard(f, tmpPath)
		return 0, fmt.Errorf("%w: write %s: %w", ErrFilesystem, path, err)
	}

	err = f.Sync()
	if err != nil {
		s.discard(f, tmpPath)
		return 0, fmt.Errorf("%w: sync %s: %w", ErrFilesystem, path, err)
	}

	err = f.Close()
	if err != nil {
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("%w: close %s: %w", ErrFilesystem, path, err)
	}

	err = os.Rename(tmpPath, path)
	if err != nil {
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("%w: rename %s: %w", ErrFilesystem, path, err)
	}

	return size, nil
}

func (s *LocalStorage) Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrFilesystem, path, err)
	}
	return f, nil
}

func (s *LocalStorage) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (s *LocalStorage) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: remove %s: %w", ErrFilesystem, path, err)
	}
	return nil
}

func (s *LocalStorage) discard(f *os.File, tmpPath string) {
	closeErr := f.Close()
	if closeErr != nil {
		slog.Warn("failed to close temp file", "error", closeErr, "path", tmpPath)
	}
	_ = os.Remove(tmpPath)
}
