package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/templui/fileserver/internal/model"
	"github.com/templui/fileserver/internal/repository"
	"github.com/templui/fileserver/internal/storage"
	"github.com/templui/fileserver/internal/validation"
)

const DefaultMaxDepth = 64

// PathConfig configures how directory ids map onto the filesystem.
type PathConfig struct {
	Root      string        // File-store root, the path of RootDirectoryID
	MaxDepth  int           // Longest parent chain walked before giving up
	CacheSize int           // Resolved-path cache entries, 0 disables caching
	CacheTTL  time.Duration // Resolved-path cache entry lifetime
}

// Listing is the content of one directory.
type Listing struct {
	DirectoryID model.DirectoryID
	Path        string
	ParentID    *model.DirectoryID // nil for the root
	Directories []*model.Directory
	Files       []*model.File
}

type DirectoryService struct {
	dirRepo  repository.DirectoryRepository
	fileRepo repository.FileRepository
	storage  storage.Storage
	root     string
	maxDepth int
	cache    *pathCache
	now      func() time.Time
}

func NewDirectoryService(
	dirRepo repository.DirectoryRepository,
	fileRepo repository.FileRepository,
	storage storage.Storage,
	cfg PathConfig,
) *DirectoryService {
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	return &DirectoryService{
		dirRepo:  dirRepo,
		fileRepo: fileRepo,
		storage:  storage,
		root:     cfg.Root,
		maxDepth: maxDepth,
		cache:    newPathCache(cfg.CacheSize, cfg.CacheTTL),
		now:      time.Now,
	}
}

func (s *DirectoryService) Root() string {
	return s.root
}

// EnsureRoot creates the file-store root directory if it is missing.
func (s *DirectoryService) EnsureRoot() error {
	return s.storage.EnsureRoot(s.root)
}

// ResolvePath returns the absolute path of a directory by walking its parent
// chain up to the root. The root itself resolves without a store lookup.
//
// The walk fails with ErrCorruptHierarchy when it revisits a directory, when
// the chain is longer than MaxDepth, or when a stored name is not a single
// path segment.
func (s *DirectoryService) ResolvePath(ctx context.Context, id model.DirectoryID) (string, error) {
	rp, err := s.resolve(ctx, id)
	if err != nil {
		return "", err
	}
	return rp.path, nil
}

func (s *DirectoryService) resolve(ctx context.Context, id model.DirectoryID) (resolvedPath, error) {
	if id.IsRoot() {
		return resolvedPath{path: s.root}, nil
	}

	rp, ok := s.cache.Get(id)
	if ok {
		return rp, nil
	}

	base := resolvedPath{path: s.root}
	names := []string{} // leaf first
	visited := map[model.DirectoryID]bool{}
	current := id

	for {
		if visited[current] {
			return resolvedPath{}, fmt.Errorf("%w: directory %d is its own ancestor", ErrCorruptHierarchy, current)
		}
		if len(names) >= s.maxDepth {
			return resolvedPath{}, s.tooDeep(id)
		}
		visited[current] = true

		dir, err := s.dirRepo.ByID(ctx, current)
		if err != nil {
			return resolvedPath{}, err
		}

		err = validation.ValidatePathSegment(dir.Name)
		if err != nil {
			return resolvedPath{}, fmt.Errorf("%w: directory %d: %w", ErrCorruptHierarchy, dir.ID, err)
		}

		names = append(names, dir.Name)

		if dir.ParentID.IsRoot() {
			break
		}

		parent, ok := s.cache.Get(dir.ParentID)
		if ok {
			// Depth includes the cached ancestor's own depth.
			if parent.depth+len(names) > s.maxDepth {
				return resolvedPath{}, s.tooDeep(id)
			}
			base = parent
			break
		}

		current = dir.ParentID
	}

	resolveDepth.Observe(float64(len(names)))

	slices.Reverse(names)
	rp = resolvedPath{
		path:  filepath.Join(append([]string{base.path}, names...)...),
		depth: base.depth + len(names),
	}

	s.cache.Add(id, rp)
	return rp, nil
}

func (s *DirectoryService) tooDeep(id model.DirectoryID) error {
	return fmt.Errorf("%w: directory %d is nested deeper than %d levels", ErrCorruptHierarchy, id, s.maxDepth)
}

// ParentID returns the stored parent of a directory. RootDirectoryID means
// the parent is the root. The root itself has no record and no parent.
func (s *DirectoryService) ParentID(ctx context.Context, id model.DirectoryID) (model.DirectoryID, error) {
	if id.IsRoot() {
		return 0, fmt.Errorf("%w: the root has no parent", repository.ErrDirectoryNotFound)
	}

	dir, err := s.dirRepo.ByID(ctx, id)
	if err != nil {
		return 0, err
	}

	return dir.ParentID, nil
}

// NewDirectoryPath returns where a directory called name would be created
// under parentID. Nothing is created.
func (s *DirectoryService) NewDirectoryPath(ctx context.Context, name string, parentID model.DirectoryID) (string, error) {
	parentPath, err := s.ResolvePath(ctx, parentID)
	if err != nil {
		return "", err
	}

	return filepath.Join(parentPath, name), nil
}

// FileDestination returns the on-disk path of generatedName inside directoryID.
func (s *DirectoryService) FileDestination(ctx context.Context, directoryID model.DirectoryID, generatedName string) (string, error) {
	dirPath, err := s.ResolvePath(ctx, directoryID)
	if err != nil {
		return "", err
	}

	return filepath.Join(dirPath, generatedName), nil
}

// Create makes the physical directory and then records it. If the record
// cannot be stored the physical directory is removed again. A directory that
// would sit deeper than MaxDepth is refused with ErrTooDeep.
func (s *DirectoryService) Create(ctx context.Context, name string, parentID model.DirectoryID) (*model.Directory, error) {
	name, err := validation.NormalizeDirectoryName(name)
	if err != nil {
		return nil, err
	}

	parent, err := s.resolve(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if parent.depth+1 > s.maxDepth {
		return nil, fmt.Errorf("%w: directories can be nested at most %d levels", ErrTooDeep, s.maxDepth)
	}
	path := filepath.Join(parent.path, name)

	err = s.storage.CreateDirectory(path)
	if errors.Is(err, storage.ErrExists) {
		return nil, fmt.Errorf("%w: %q", ErrDirectoryExists, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dir := &model.Directory{
		Name:      name,
		ParentID:  parentID,
		CreatedAt: s.now().UTC(),
	}

	err = s.dirRepo.Create(ctx, dir)
	if err != nil {
		removeErr := s.storage.Remove(path)
		if removeErr != nil {
			slog.Error("failed to remove directory during cleanup", "error", removeErr, "path", path)
		}
		return nil, fmt.Errorf("failed to create directory record: %w", err)
	}

	s.cache.Add(dir.ID, resolvedPath{path: path, depth: parent.depth + 1})

	slog.Info("directory created", "directory_id", dir.ID, "parent_id", parentID, "path", path)
	return dir, nil
}

// Listing returns the path, parent, subdirectories and files of a directory.
func (s *DirectoryService) Listing(ctx context.Context, id model.DirectoryID) (*Listing, error) {
	path, err := s.ResolvePath(ctx, id)
	if err != nil {
		return nil, err
	}

	listing := &Listing{
		DirectoryID: id,
		Path:        path,
	}

	if !id.IsRoot() {
		parentID, err := s.ParentID(ctx, id)
		if err != nil {
			return nil, err
		}
		listing.ParentID = &parentID
	}

	listing.Directories, err = s.dirRepo.Children(ctx, id)
	if err != nil {
		return nil, err
	}

	listing.Files, err = s.fileRepo.Files(ctx, id)
	if err != nil {
		return nil, err
	}

	return listing, nil
}
