package storage

import (
	"errors"
	"io"
	"os"
)

var (
	// ErrFilesystem is wrapped by every failure to create, write or read on disk.
	ErrFilesystem = errors.New("filesystem error")
	ErrExists     = errors.New("path already exists")
)

// Storage defines the filesystem operations the file store needs.
// All paths are absolute paths produced by the directory resolver.
type Storage interface {
	// EnsureRoot creates the file-store root if it does not exist
	EnsureRoot(root string) error

	// CreateDirectory creates path and any missing parents.
	// Returns ErrExists if path itself already exists.
	CreateDirectory(path string) error

	// Save streams r into a new file at path and returns the bytes written.
	// Returns ErrExists if a file is already present at path.
	Save(path string, r io.Reader) (int64, error)

	// Open opens the file at path for reading
	Open(path string) (*os.File, error)

	// Exists reports whether something exists at path
	Exists(path string) bool

	// Remove deletes a file or an empty directory
	Remove(path string) error
}
