package service

import (
	"errors"

	"github.com/templui/fileserver/internal/repository"
	"github.com/templui/fileserver/internal/storage"
)

var (
	ErrNotFound         = repository.ErrNotFound
	ErrDirectoryExists  = repository.ErrDirectoryExists
	ErrFilesystem       = storage.ErrFilesystem
	ErrCorruptHierarchy = errors.New("corrupt directory hierarchy")
	ErrTooDeep          = errors.New("directory nesting limit reached")
)
