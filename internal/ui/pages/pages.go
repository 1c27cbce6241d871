package pages

import (
	"context"
	"time"

	"github.com/templui/fileserver/internal/ctxkeys"
	"github.com/templui/fileserver/internal/model"
)

const defaultAppName = "File Store"

// DirectoryView is what the listing page shows for one directory.
type DirectoryView struct {
	ID          model.DirectoryID
	DisplayPath string             // Path relative to the file-store root, "/" for the root
	ParentID    *model.DirectoryID // nil for the root
	Directories []*model.Directory
	Files       []*model.File
}

// NewDirectoryForm holds the state of the new-directory form.
type NewDirectoryForm struct {
	ParentID model.DirectoryID
	Name     string
	Error    string
}

// UploadForm holds the state of the upload form.
type UploadForm struct {
	DirectoryID       model.DirectoryID
	AllowedExtensions []string
	MaxBytes          int64
	Error             string
}

func DirectoryURL(id model.DirectoryID) string {
	if id.IsRoot() {
		return "/"
	}
	return "/?directory=" + id.String()
}

func NewDirectoryURL(parentID model.DirectoryID) string {
	return "/new-directory?parent-directory=" + parentID.String()
}

func UploadURL(id model.DirectoryID) string {
	return "/upload?directory=" + id.String()
}

func DownloadURL(id model.FileID) string {
	return "/download?fileId=" + id.String()
}

func appName(ctx context.Context) string {
	cfg := ctxkeys.Config(ctx)
	if cfg == nil || cfg.AppName == "" {
		return defaultAppName
	}
	return cfg.AppName
}

// isCurrentPage reports whether the request being rendered is for path.
func isCurrentPage(ctx context.Context, path string) bool {
	return ctxkeys.URLPath(ctx) == path
}

func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04 UTC")
}
