package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/templui/fileserver/internal/model"
	"github.com/templui/fileserver/internal/repository"
)

// memDirectories is an in-memory DirectoryRepository that counts lookups.
type memDirectories struct {
	mu        sync.Mutex
	dirs      map[model.DirectoryID]*model.Directory
	nextID    model.DirectoryID
	lookups   int
	createErr error
}

func newMemDirectories() *memDirectories {
	return &memDirectories{dirs: map[model.DirectoryID]*model.Directory{}, nextID: 1}
}

// put stores a record as-is, bypassing every check. Used to build corrupt
// hierarchies.
func (m *memDirectories) put(id model.DirectoryID, name string, parentID model.DirectoryID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[id] = &model.Directory{ID: id, Name: name, ParentID: parentID}
	if id >= m.nextID {
		m.nextID = id + 1
	}
}

func (m *memDirectories) lookupCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookups
}

func (m *memDirectories) resetLookups() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups = 0
}

func (m *memDirectories) Create(ctx context.Context, dir *model.Directory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	for _, d := range m.dirs {
		if d.ParentID == dir.ParentID && d.Name == dir.Name {
			return fmt.Errorf("%w: %q", repository.ErrDirectoryExists, dir.Name)
		}
	}
	dir.ID = m.nextID
	m.nextID++
	stored := *dir
	m.dirs[dir.ID] = &stored
	return nil
}

func (m *memDirectories) ByID(ctx context.Context, id model.DirectoryID) (*model.Directory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups++
	d, ok := m.dirs[id]
	if !ok {
		return nil, repository.ErrDirectoryNotFound
	}
	copied := *d
	return &copied, nil
}

func (m *memDirectories) Children(ctx context.Context, parentID model.DirectoryID) ([]*model.Directory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var children []*model.Directory
	for _, d := range m.dirs {
		if d.ParentID == parentID && d.ID != parentID {
			copied := *d
			children = append(children, &copied)
		}
	}
	slices.SortFunc(children, func(a, b *model.Directory) int {
		return strings.Compare(a.Name, b.Name)
	})
	return children, nil
}

// memFiles is an in-memory FileRepository.
type memFiles struct {
	mu        sync.Mutex
	files     map[model.FileID]*model.File
	nextID    model.FileID
	createErr error
	markErr   error
}

func newMemFiles() *memFiles {
	return &memFiles{files: map[model.FileID]*model.File{}, nextID: 1}
}

func (m *memFiles) Create(ctx context.Context, file *model.File) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	file.ID = m.nextID
	m.nextID++
	stored := *file
	m.files[file.ID] = &stored
	return nil
}

func (m *memFiles) ByID(ctx context.Context, id model.FileID) (*model.File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[id]
	if !ok {
		return nil, repository.ErrFileNotFound
	}
	copied := *f
	return &copied, nil
}

func (m *memFiles) Files(ctx context.Context, directoryID model.DirectoryID) ([]*model.File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var files []*model.File
	for _, f := range m.files {
		if f.DirectoryID == directoryID {
			copied := *f
			files = append(files, &copied)
		}
	}
	slices.SortFunc(files, func(a, b *model.File) int {
		if c := a.Uploaded.Compare(b.Uploaded); c != 0 {
			return c
		}
		return int(a.ID - b.ID)
	})
	return files, nil
}

func (m *memFiles) MarkDownloaded(ctx context.Context, id model.FileID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.markErr != nil {
		return m.markErr
	}
	f, ok := m.files[id]
	if !ok {
		return repository.ErrFileNotFound
	}
	f.LastDownloaded = &at
	return nil
}

var errInsertFailed = errors.New("insert failed")
