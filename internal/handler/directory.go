package handler

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/templui/fileserver/internal/model"
	"github.com/templui/fileserver/internal/service"
	"github.com/templui/fileserver/internal/ui"
	"github.com/templui/fileserver/internal/ui/pages"
	"github.com/templui/fileserver/internal/validation"
)

type DirectoryHandler struct {
	directories *service.DirectoryService
}

func NewDirectoryHandler(directories *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directories: directories}
}

// Index lists the directory named by ?directory=, the root when absent.
func (h *DirectoryHandler) Index(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseDirectoryID(r.URL.Query().Get("directory"))
	if err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}

	listing, err := h.directories.Listing(r.Context(), id)
	if err != nil {
		renderError(w, r, err)
		return
	}

	ui.Render(w, r, pages.Index(pages.DirectoryView{
		ID:          listing.DirectoryID,
		DisplayPath: h.displayPath(listing.Path),
		ParentID:    listing.ParentID,
		Directories: listing.Directories,
		Files:       listing.Files,
	}))
}

func (h *DirectoryHandler) NewDirectoryPage(w http.ResponseWriter, r *http.Request) {
	parentID, err := model.ParseDirectoryID(r.URL.Query().Get("parent-directory"))
	if err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}

	_, err = h.directories.ResolvePath(r.Context(), parentID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	ui.Render(w, r, pages.NewDirectory(pages.NewDirectoryForm{ParentID: parentID}))
}

func (h *DirectoryHandler) CreateDirectory(w http.ResponseWriter, r *http.Request) {
	parentID, err := model.ParseDirectoryID(r.URL.Query().Get("parent-directory"))
	if err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}

	name := r.PostFormValue("name")

	_, err = h.directories.Create(r.Context(), name, parentID)
	switch {
	case errors.Is(err, validation.ErrInvalidName), errors.Is(err, service.ErrTooDeep):
		ui.RenderStatus(w, r, http.StatusBadRequest, pages.NewDirectory(pages.NewDirectoryForm{
			ParentID: parentID,
			Name:     name,
			Error:    err.Error(),
		}))
		return
	case errors.Is(err, service.ErrDirectoryExists):
		ui.RenderStatus(w, r, http.StatusConflict, pages.NewDirectory(pages.NewDirectoryForm{
			ParentID: parentID,
			Name:     name,
			Error:    "A directory with this name already exists here.",
		}))
		return
	case err != nil:
		renderError(w, r, err)
		return
	}

	http.Redirect(w, r, pages.DirectoryURL(parentID), http.StatusSeeOther)
}

// displayPath shows a resolved path relative to the file-store root.
func (h *DirectoryHandler) displayPath(path string) string {
	rel, err := filepath.Rel(h.directories.Root(), path)
	if err != nil || rel == "." {
		return "/"
	}
	return "/" + filepath.ToSlash(rel)
}
