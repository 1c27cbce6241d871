package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/templui/fileserver/internal/service"
	"github.com/templui/fileserver/internal/ui"
	"github.com/templui/fileserver/internal/ui/pages"
)

// renderError maps service errors onto status codes and error pages.
// Anything that is not a missing record is logged as a server error.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		ui.RenderStatus(w, r, http.StatusNotFound, pages.Error("Not found", "The requested directory or file does not exist."))
	case errors.Is(err, service.ErrCorruptHierarchy):
		slog.Error("corrupt directory hierarchy", "error", err, "path", r.URL.Path, "query", r.URL.RawQuery)
		ui.RenderStatus(w, r, http.StatusInternalServerError, pages.Error("Server error", "The directory structure is damaged."))
	default:
		slog.Error("request failed", "error", err, "path", r.URL.Path, "query", r.URL.RawQuery)
		ui.RenderStatus(w, r, http.StatusInternalServerError, pages.Error("Server error", "Something went wrong. Please try again."))
	}
}

func renderBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	ui.RenderStatus(w, r, http.StatusBadRequest, pages.Error("Bad request", message))
}
