package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/fileserver/internal/model"
)

type DirectoryRepository interface {
	Create(ctx context.Context, dir *model.Directory) error
	ByID(ctx context.Context, id model.DirectoryID) (*model.Directory, error)
	Children(ctx context.Context, parentID model.DirectoryID) ([]*model.Directory, error)
}

type directoryRepository struct {
	db *sqlx.DB
}

func NewDirectoryRepository(db *sqlx.DB) DirectoryRepository {
	return &directoryRepository{db: db}
}

// Create inserts the directory and sets dir.ID to the assigned id.
func (r *directoryRepository) Create(ctx context.Context, dir *model.Directory) error {
	query := `INSERT INTO directories (name, parent_id, created_at)
	          VALUES ($1, $2, $3)
	          RETURNING id`

	err := r.db.QueryRowxContext(ctx, query, dir.Name, dir.ParentID, dir.CreatedAt).Scan(&dir.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q under directory %d", ErrDirectoryExists, dir.Name, dir.ParentID)
		}
		return fmt.Errorf("insert directory: %w", err)
	}

	return nil
}

func (r *directoryRepository) ByID(ctx context.Context, id model.DirectoryID) (*model.Directory, error) {
	dir := &model.Directory{}
	query := `SELECT id, name, parent_id, created_at FROM directories WHERE id = $1`

	err := r.db.GetContext(ctx, dir, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrDirectoryNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("select directory %d: %w", id, err)
	}

	return dir, nil
}

func (r *directoryRepository) Children(ctx context.Context, parentID model.DirectoryID) ([]*model.Directory, error) {
	dirs := []*model.Directory{}
	query := `SELECT id, name, parent_id, created_at FROM directories WHERE parent_id = $1 ORDER BY name ASC, id ASC`

	err := r.db.SelectContext(ctx, &dirs, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("select child directories of %d: %w", parentID, err)
	}

	return dirs, nil
}
