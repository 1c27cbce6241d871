package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/templui/fileserver/internal/config"
	"github.com/templui/fileserver/internal/db"
	"github.com/templui/fileserver/internal/repository"
	"github.com/templui/fileserver/internal/service"
	"github.com/templui/fileserver/internal/storage"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	Storage          storage.Storage
	DirectoryService *service.DirectoryService
	FileService      *service.FileService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Repositories
	directoryRepository := repository.NewDirectoryRepository(database)
	fileRepository := repository.NewFileRepository(database)

	// Storage
	fileStorage := storage.NewLocalStorage()

	// Services
	directoryService := service.NewDirectoryService(directoryRepository, fileRepository, fileStorage, service.PathConfig{
		Root:      cfg.FileStoreRoot,
		MaxDepth:  cfg.MaxDirectoryDepth,
		CacheSize: cfg.PathCacheSize,
		CacheTTL:  cfg.PathCacheTTL,
	})
	fileService := service.NewFileService(fileRepository, directoryService, fileStorage)

	err = directoryService.EnsureRoot()
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to create file store root: %w", err)
	}

	return &App{
		Cfg:              cfg,
		DB:               database,
		Storage:          fileStorage,
		DirectoryService: directoryService,
		FileService:      fileService,
	}, nil
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
