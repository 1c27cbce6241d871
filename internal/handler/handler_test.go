package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/fileserver/internal/db"
	"github.com/templui/fileserver/internal/model"
	"github.com/templui/fileserver/internal/repository"
	"github.com/templui/fileserver/internal/service"
	"github.com/templui/fileserver/internal/storage"
)

type fixture struct {
	db          *sqlx.DB
	root        string
	directories *service.DirectoryService
	files       *service.FileService
	dirHandler  *DirectoryHandler
	fileHandler *FileHandler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := t.TempDir()
	database, err := db.Init("sqlite", filepath.Join(dir, "test.db")+"?_pragma=busy_timeout(5000)")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	root := filepath.Join(dir, "files")
	local := storage.NewLocalStorage()
	fileRepo := repository.NewFileRepository(database)
	directories := service.NewDirectoryService(repository.NewDirectoryRepository(database), fileRepo, local, service.PathConfig{
		Root:     root,
		MaxDepth: 16,
	})
	require.NoError(t, directories.EnsureRoot())
	files := service.NewFileService(fileRepo, directories, local)

	return &fixture{
		db:          database,
		root:        root,
		directories: directories,
		files:       files,
		dirHandler:  NewDirectoryHandler(directories),
		fileHandler: NewFileHandler(files, directories, UploadOptions{
			AllowedExtensions: []string{".txt"},
			MaxBytes:          1024,
		}),
	}
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestIndexShowsRelativePath(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	docs, err := f.directories.Create(ctx, "Docs", model.RootDirectoryID)
	require.NoError(t, err)
	year, err := f.directories.Create(ctx, "2024", docs.ID)
	require.NoError(t, err)

	rec := serve(f.dirHandler.Index, httptest.NewRequest(http.MethodGet, "/?directory="+year.ID.String(), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<h1>/Docs/2024</h1>")
	assert.NotContains(t, body, f.root)
	assert.Contains(t, body, fmt.Sprintf(`<a href="/?directory=%s">Up</a>`, docs.ID))

	rec = serve(f.dirHandler.Index, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>/</h1>")
	assert.Contains(t, rec.Body.String(), `<a href="/?directory=1">Docs/</a>`)
}

func TestCreateDirectoryRedirectsToParent(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/new-directory?parent-directory=0", strings.NewReader(url.Values{"name": {"Docs"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := serve(f.dirHandler.CreateDirectory, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.DirExists(t, filepath.Join(f.root, "Docs"))
}

func TestCreateDirectoryRerendersForm(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/new-directory?parent-directory=0", strings.NewReader("name=a%2Fb"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := serve(f.dirHandler.CreateDirectory, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="a/b"`)
	assert.Contains(t, rec.Body.String(), "path separators")
}

func TestCreateDirectoryTooDeep(t *testing.T) {
	f := newFixture(t)

	parentID := model.RootDirectoryID
	for range 16 {
		dir, err := f.directories.Create(context.Background(), "d", parentID)
		require.NoError(t, err)
		parentID = dir.ID
	}

	req := httptest.NewRequest(http.MethodPost, "/new-directory?parent-directory="+parentID.String(), strings.NewReader("name=deeper"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := serve(f.dirHandler.CreateDirectory, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "nested at most 16 levels")
	assert.Contains(t, rec.Body.String(), `value="deeper"`)
}

func TestCreateDirectoryUnknownParent(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/new-directory?parent-directory=8", strings.NewReader("name=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := serve(f.dirHandler.CreateDirectory, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDownloadHeaders(t *testing.T) {
	f := newFixture(t)

	file, err := f.files.Upload(context.Background(), model.RootDirectoryID, "résumé \"final\".txt", strings.NewReader("cv"))
	require.NoError(t, err)

	before := time.Now().UTC().Add(-time.Second)
	rec := serve(f.fileHandler.Download, httptest.NewRequest(http.MethodGet, "/download?fileId="+file.ID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cv", rec.Body.String())
	assert.Equal(t, "attachment; filename*=utf-8''r%C3%A9sum%C3%A9%20%22final%22.txt", rec.Header().Get("Content-Disposition"))

	stored, r, err := f.files.Download(context.Background(), file.ID)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.NotNil(t, stored.LastDownloaded)
	assert.True(t, stored.LastDownloaded.After(before))
}

func TestRenderErrorStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", fmt.Errorf("lookup: %w", service.ErrNotFound), http.StatusNotFound},
		{"corrupt", fmt.Errorf("walk: %w", service.ErrCorruptHierarchy), http.StatusInternalServerError},
		{"filesystem", fmt.Errorf("save: %w", service.ErrFilesystem), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			renderError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tc.err)
			assert.Equal(t, tc.code, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		})
	}
}

func TestDownloadRecordsOnlyServedBytes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	file, err := f.files.Upload(ctx, model.RootDirectoryID, "notes.txt", strings.NewReader("hello"))
	require.NoError(t, err)

	rec := serve(f.fileHandler.Download, httptest.NewRequest(http.MethodHead, "/download?fileId="+file.ID.String(), nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))

	stored, err := repository.NewFileRepository(f.db).ByID(ctx, file.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.LastDownloaded)

	req := httptest.NewRequest(http.MethodGet, "/download?fileId="+file.ID.String(), nil)
	req.Header.Set("If-Modified-Since", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
	rec = serve(f.fileHandler.Download, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", rec.Body.String())
	assert.Empty(t, rec.Header().Get("Last-Modified"))
}
