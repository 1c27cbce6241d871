package handler

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"time"

	"github.com/templui/fileserver/internal/model"
	"github.com/templui/fileserver/internal/service"
	"github.com/templui/fileserver/internal/ui"
	"github.com/templui/fileserver/internal/ui/pages"
	"github.com/templui/fileserver/internal/validation"
)

// UploadOptions are the limits shown on and enforced by the upload form.
type UploadOptions struct {
	AllowedExtensions []string
	MaxBytes          int64
}

type FileHandler struct {
	files       *service.FileService
	directories *service.DirectoryService
	options     UploadOptions
	constraints validation.FileConstraints
}

func NewFileHandler(files *service.FileService, directories *service.DirectoryService, options UploadOptions) *FileHandler {
	return &FileHandler{
		files:       files,
		directories: directories,
		options:     options,
		constraints: validation.UploadConstraints(options.AllowedExtensions, options.MaxBytes),
	}
}

func (h *FileHandler) UploadPage(w http.ResponseWriter, r *http.Request) {
	directoryID, err := model.ParseDirectoryID(r.URL.Query().Get("directory"))
	if err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}

	_, err = h.directories.ResolvePath(r.Context(), directoryID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	ui.Render(w, r, pages.Upload(h.form(directoryID, "")))
}

func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	directoryID, err := model.ParseDirectoryID(r.URL.Query().Get("directory"))
	if err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if r.MultipartForm != nil {
		defer func() {
			removeErr := r.MultipartForm.RemoveAll()
			if removeErr != nil {
				slog.Warn("failed to remove multipart temp files", "error", removeErr)
			}
		}()
	}
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			ui.RenderStatus(w, r, http.StatusRequestEntityTooLarge, pages.Upload(h.form(directoryID, "The file is too large.")))
			return
		}
		ui.RenderStatus(w, r, http.StatusBadRequest, pages.Upload(h.form(directoryID, "Please choose a file to upload.")))
		return
	}
	defer func() {
		closeErr := file.Close()
		if closeErr != nil {
			slog.Error("failed to close file", "error", closeErr)
		}
	}()

	err = validation.ValidateFile(header, h.constraints)
	if err != nil {
		ui.RenderStatus(w, r, http.StatusBadRequest, pages.Upload(h.form(directoryID, err.Error())))
		return
	}

	_, err = h.files.Upload(r.Context(), directoryID, header.Filename, file)
	if err != nil {
		renderError(w, r, err)
		return
	}

	http.Redirect(w, r, pages.DirectoryURL(directoryID), http.StatusSeeOther)
}

// Download streams a stored file under its display name and records the
// download time. HEAD is refused and no Last-Modified is sent, so every
// recorded download is answered with the bytes.
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	id, err := model.ParseFileID(r.URL.Query().Get("fileId"))
	if err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}

	file, f, err := h.files.Download(r.Context(), id)
	if err != nil {
		renderError(w, r, err)
		return
	}
	defer func() {
		closeErr := f.Close()
		if closeErr != nil {
			slog.Error("failed to close file", "error", closeErr, "file_id", id)
		}
	}()

	contentType := mime.TypeByExtension(filepath.Ext(file.DisplayName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.DisplayName}))

	http.ServeContent(w, r, file.DisplayName, time.Time{}, f)
}

func (h *FileHandler) form(directoryID model.DirectoryID, message string) pages.UploadForm {
	return pages.UploadForm{
		DirectoryID:       directoryID,
		AllowedExtensions: h.options.AllowedExtensions,
		MaxBytes:          h.options.MaxBytes,
		Error:             message,
	}
}
