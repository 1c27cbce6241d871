package routes

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/templui/fileserver/internal/app"
	"github.com/templui/fileserver/internal/handler"
	"github.com/templui/fileserver/internal/middleware"
)

// multipartOverhead is room for form fields and part headers on top of the
// largest accepted file.
const multipartOverhead = 1 << 20

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler()
	directories := handler.NewDirectoryHandler(app.DirectoryService)
	files := handler.NewFileHandler(app.FileService, app.DirectoryService, handler.UploadOptions{
		AllowedExtensions: app.Cfg.AllowedExtensions,
		MaxBytes:          app.Cfg.MaxUploadBytes,
	})
	health := handler.NewHealthHandler(app.DB, app.Storage, app.DirectoryService.Root())

	mux := http.NewServeMux()

	// Operations
	mux.HandleFunc("GET /healthz", health.Healthz)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Listing
	mux.HandleFunc("GET /{$}", directories.Index)

	// Directories
	mux.HandleFunc("GET /new-directory", directories.NewDirectoryPage)
	mux.HandleFunc("POST /new-directory", directories.CreateDirectory)

	// Files
	mux.HandleFunc("GET /upload", files.UploadPage)
	mux.HandleFunc("POST /upload", files.Upload)
	mux.HandleFunc("GET /download", files.Download)

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Metrics,
		// Config before CSRF, which reads APP_ENV for the cookie Secure flag
		middleware.Config(app.Cfg),
		// Nonce before SecurityHeaders, which puts it into the CSP
		middleware.NonceMiddleware,
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.RateLimitWrites(app.Cfg.WriteRateLimit, app.Cfg.WriteRateWindow),
		// Body limit before CSRF, which parses the form
		middleware.MaxBodyBytes(app.Cfg.MaxUploadBytes+multipartOverhead),
		middleware.CSRFProtection,
		middleware.WithURLPath,
	)

	return handler
}
