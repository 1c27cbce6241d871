package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// File store
	FileStoreRoot     string        // Absolute path of the root directory
	MaxDirectoryDepth int           // Longest parent chain resolved before the hierarchy is reported corrupt
	PathCacheSize     int           // Resolved-path cache entries, 0 disables the cache
	PathCacheTTL      time.Duration // Resolved-path cache entry lifetime

	// Uploads
	MaxUploadBytes    int64
	AllowedExtensions []string

	// Security
	WriteRateLimit  int           // POST requests per client and window
	WriteRateWindow time.Duration // Rate limit window

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "File Store"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		Port:    envString("PORT", "8090"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/fileserver.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"),

		// File store
		FileStoreRoot:     envPath("FILE_STORE_ROOT"),
		MaxDirectoryDepth: envInt("MAX_DIRECTORY_DEPTH", 64),
		PathCacheSize:     envInt("PATH_CACHE_SIZE", 1024),
		PathCacheTTL:      envDuration("PATH_CACHE_TTL", 10*time.Minute),

		// Uploads
		MaxUploadBytes:    envInt64("MAX_UPLOAD_BYTES", 10<<20), // 10 MiB
		AllowedExtensions: envList("ALLOWED_EXTENSIONS", []string{".txt", ".pdf", ".png"}),

		// Security
		WriteRateLimit:  envInt("WRITE_RATE_LIMIT", 30),
		WriteRateWindow: envDuration("WRITE_RATE_WINDOW", time.Minute),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	return cfg
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envInt64(key string, def int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

// envList reads a comma separated list. Blank items are dropped.
func envList(key string, def []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}

	var items []string
	for _, item := range strings.Split(v, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return def
	}
	return items
}

// envPath reads a required path and makes it absolute.
func envPath(key string) string {
	v := envRequired(key)
	abs, err := filepath.Abs(v)
	if err != nil {
		slog.Error("config invalid path", "key", key, "value", v, "error", err)
		os.Exit(1)
	}
	return abs
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// Connection strings, filesystem paths and the Sentry DSN are excluded.
// Safe to expose in ctx, templates and client-facing contexts.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName: c.AppName,
		AppEnv:  c.AppEnv,
		Port:    c.Port,

		MaxUploadBytes:    c.MaxUploadBytes,
		AllowedExtensions: c.AllowedExtensions,
	}
}
