package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/fileserver/internal/model"
)

type FileRepository interface {
	Create(ctx context.Context, file *model.File) error
	ByID(ctx context.Context, id model.FileID) (*model.File, error)
	Files(ctx context.Context, directoryID model.DirectoryID) ([]*model.File, error)
	MarkDownloaded(ctx context.Context, id model.FileID, at time.Time) error
}

type fileRepository struct {
	db *sqlx.DB
}

func NewFileRepository(db *sqlx.DB) FileRepository {
	return &fileRepository{db: db}
}

// Create inserts the file record and sets file.ID to the assigned id.
func (r *fileRepository) Create(ctx context.Context, file *model.File) error {
	query := `INSERT INTO files (directory_id, display_name, file_name, file_length, uploaded, last_downloaded)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	err := r.db.QueryRowxContext(ctx, query,
		file.DirectoryID,
		file.DisplayName,
		file.FileName,
		file.FileLength,
		file.Uploaded,
		file.LastDownloaded,
	).Scan(&file.ID)
	if err != nil {
		return fmt.Errorf("insert file: %w", err)
	}

	return nil
}

func (r *fileRepository) ByID(ctx context.Context, id model.FileID) (*model.File, error) {
	file := &model.File{}
	query := `SELECT id, directory_id, display_name, file_name, file_length, uploaded, last_downloaded
	          FROM files WHERE id = $1`

	err := r.db.GetContext(ctx, file, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrFileNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("select file %d: %w", id, err)
	}

	return file, nil
}

// Files returns the files of a directory, oldest upload first.
func (r *fileRepository) Files(ctx context.Context, directoryID model.DirectoryID) ([]*model.File, error) {
	files := []*model.File{}
	query := `SELECT id, directory_id, display_name, file_name, file_length, uploaded, last_downloaded
	          FROM files WHERE directory_id = $1 ORDER BY uploaded ASC, id ASC`

	err := r.db.SelectContext(ctx, &files, query, directoryID)
	if err != nil {
		return nil, fmt.Errorf("select files of directory %d: %w", directoryID, err)
	}

	return files, nil
}

func (r *fileRepository) MarkDownloaded(ctx context.Context, id model.FileID, at time.Time) error {
	query := `UPDATE files SET last_downloaded = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("update file %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return fmt.Errorf("%w: id %d", ErrFileNotFound, id)
	}

	return nil
}
