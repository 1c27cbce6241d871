package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/fileserver/internal/db"
	"github.com/templui/fileserver/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=busy_timeout(5000)"
	database, err := db.Init("sqlite", conn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))
	return database
}

func TestDirectoryRepository_CreateAndByID(t *testing.T) {
	ctx := context.Background()
	repo := NewDirectoryRepository(newTestDB(t))

	docs := &model.Directory{Name: "Docs", ParentID: model.RootDirectoryID, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, docs))
	assert.Equal(t, model.DirectoryID(1), docs.ID)

	year := &model.Directory{Name: "2024", ParentID: docs.ID, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, year))
	assert.Equal(t, model.DirectoryID(2), year.ID)

	got, err := repo.ByID(ctx, year.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024", got.Name)
	assert.Equal(t, docs.ID, got.ParentID)
	assert.WithinDuration(t, year.CreatedAt, got.CreatedAt, time.Second)
}

func TestDirectoryRepository_ByIDNotFound(t *testing.T) {
	repo := NewDirectoryRepository(newTestDB(t))

	_, err := repo.ByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrDirectoryNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDirectoryRepository_DuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := NewDirectoryRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &model.Directory{Name: "Docs", CreatedAt: time.Now().UTC()}))

	err := repo.Create(ctx, &model.Directory{Name: "Docs", CreatedAt: time.Now().UTC()})
	assert.ErrorIs(t, err, ErrDirectoryExists)

	// Same name under another parent is fine
	assert.NoError(t, repo.Create(ctx, &model.Directory{Name: "Docs", ParentID: 1, CreatedAt: time.Now().UTC()}))
}

func TestDirectoryRepository_Children(t *testing.T) {
	ctx := context.Background()
	repo := NewDirectoryRepository(newTestDB(t))

	for _, name := range []string{"b", "a", "c"} {
		require.NoError(t, repo.Create(ctx, &model.Directory{Name: name, CreatedAt: time.Now().UTC()}))
	}
	require.NoError(t, repo.Create(ctx, &model.Directory{Name: "nested", ParentID: 1, CreatedAt: time.Now().UTC()}))

	children, err := repo.Children(ctx, model.RootDirectoryID)
	require.NoError(t, err)
	require.Len(t, children, 3)
	assert.Equal(t, "a", children[0].Name)
	assert.Equal(t, "b", children[1].Name)
	assert.Equal(t, "c", children[2].Name)

	empty, err := repo.Children(ctx, 3)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestFileRepository_CreateListAndMarkDownloaded(t *testing.T) {
	ctx := context.Background()
	repo := NewFileRepository(newTestDB(t))

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	second := &model.File{DirectoryID: 2, DisplayName: "b.txt", FileName: "b-gen.txt", FileLength: 20, Uploaded: base.Add(time.Hour)}
	first := &model.File{DirectoryID: 2, DisplayName: "a.txt", FileName: "a-gen.txt", FileLength: 10, Uploaded: base}
	other := &model.File{DirectoryID: 0, DisplayName: "root.txt", FileName: "r.txt", FileLength: 1, Uploaded: base}
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, other))
	assert.NotZero(t, first.ID)

	files, err := repo.Files(ctx, 2)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.txt", files[0].DisplayName)
	assert.Equal(t, "b.txt", files[1].DisplayName)
	assert.Nil(t, files[0].LastDownloaded)

	at := base.Add(24 * time.Hour)
	require.NoError(t, repo.MarkDownloaded(ctx, first.ID, at))

	got, err := repo.ByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastDownloaded)
	assert.True(t, got.LastDownloaded.Equal(at))
	assert.Equal(t, "a-gen.txt", got.FileName)
	assert.Equal(t, int64(10), got.FileLength)
}

func TestFileRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewFileRepository(newTestDB(t))

	_, err := repo.ByID(ctx, 5)
	assert.ErrorIs(t, err, ErrFileNotFound)

	err = repo.MarkDownloaded(ctx, 5, time.Now())
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: directories.parent_id, directories.name")))
	assert.False(t, isUniqueViolation(errors.New("disk I/O error")))
}
