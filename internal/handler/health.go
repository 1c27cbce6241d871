package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/templui/fileserver/internal/storage"
)

type HealthHandler struct {
	db      *sqlx.DB
	storage storage.Storage
	root    string
}

func NewHealthHandler(db *sqlx.DB, storage storage.Storage, root string) *HealthHandler {
	return &HealthHandler{db: db, storage: storage, root: root}
}

// Healthz reports whether the database answers and the file-store root exists.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	err := h.db.PingContext(ctx)
	if err != nil {
		slog.Error("health check: database unavailable", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	if !h.storage.Exists(h.root) {
		slog.Error("health check: file store root missing", "root", h.root)
		http.Error(w, "file store unavailable", http.StatusServiceUnavailable)
		return
	}

	_, _ = w.Write([]byte("ok"))
}
