package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/templui/fileserver/internal/model"
	"github.com/templui/fileserver/internal/repository"
	"github.com/templui/fileserver/internal/storage"
	"github.com/templui/fileserver/internal/validation"
)

type FileService struct {
	fileRepo    repository.FileRepository
	directories *DirectoryService
	storage     storage.Storage
	newFileName func(displayName string) string
	now         func() time.Time
}

func NewFileService(fileRepo repository.FileRepository, directories *DirectoryService, storage storage.Storage) *FileService {
	return &FileService{
		fileRepo:    fileRepo,
		directories: directories,
		storage:     storage,
		newFileName: randomFileName,
		now:         time.Now,
	}
}

// Upload stores r in directoryID under a generated name and records it.
// The content is stored as given; callers check it with validation.ValidateFile.
func (s *FileService) Upload(ctx context.Context, directoryID model.DirectoryID, originalName string, r io.Reader) (*model.File, error) {
	displayName := validation.SanitizeDisplayName(originalName)
	fileName := s.newFileName(displayName)

	path, err := s.directories.FileDestination(ctx, directoryID, fileName)
	if err != nil {
		return nil, err
	}

	size, err := s.storage.Save(path, r)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	file := &model.File{
		DirectoryID: directoryID,
		DisplayName: displayName,
		FileName:    fileName,
		FileLength:  size,
		Uploaded:    s.now().UTC(),
	}

	err = s.fileRepo.Create(ctx, file)
	if err != nil {
		// If DB insert fails, try to cleanup the stored file
		delErr := s.storage.Remove(path)
		if delErr != nil {
			slog.Error("failed to delete file during cleanup", "error", delErr, "path", path)
		}
		return nil, fmt.Errorf("failed to create file record: %w", err)
	}

	uploadedBytes.Add(float64(size))
	slog.Info("file uploaded", "file_id", file.ID, "directory_id", directoryID, "size", size)
	return file, nil
}

// Download opens a stored file and records the download time. The caller
// must close the returned file.
func (s *FileService) Download(ctx context.Context, id model.FileID) (*model.File, *os.File, error) {
	file, err := s.fileRepo.ByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	path, err := s.directories.FileDestination(ctx, file.DirectoryID, file.FileName)
	if err != nil {
		return nil, nil, err
	}

	f, err := s.storage.Open(path)
	if err != nil {
		return nil, nil, err
	}

	downloaded := s.now().UTC()
	err = s.fileRepo.MarkDownloaded(ctx, file.ID, downloaded)
	if err != nil {
		closeErr := f.Close()
		if closeErr != nil {
			slog.Error("failed to close file", "error", closeErr, "path", path)
		}
		return nil, nil, fmt.Errorf("failed to record download: %w", err)
	}
	file.LastDownloaded = &downloaded

	downloadsTotal.Inc()
	return file, f, nil
}

// randomFileName returns a collision-resistant on-disk name that keeps the
// lower-cased extension of the display name.
func randomFileName(displayName string) string {
	ext := strings.ToLower(filepath.Ext(displayName))
	return uuid.NewString() + ext
}
