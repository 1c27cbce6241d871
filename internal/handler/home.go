package handler

import (
	"net/http"

	"github.com/templui/fileserver/internal/ui"
	"github.com/templui/fileserver/internal/ui/pages"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

func (h *HomeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	ui.RenderStatus(w, r, http.StatusNotFound, pages.Error("Not found", "The page you are looking for does not exist."))
}
