package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_EnsureRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "files")
	s := NewLocalStorage()

	require.NoError(t, s.EnsureRoot(root))
	assert.True(t, s.Exists(root))

	// Idempotent
	require.NoError(t, s.EnsureRoot(root))
}

func TestLocalStorage_CreateDirectory(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStorage()

	path := filepath.Join(root, "Docs", "2024")
	require.NoError(t, s.CreateDirectory(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	err = s.CreateDirectory(path)
	assert.ErrorIs(t, err, ErrExists)
	assert.NotErrorIs(t, err, ErrFilesystem)
}

func TestLocalStorage_CreateDirectoryUnderFile(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStorage()

	blocker := filepath.Join(root, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := s.CreateDirectory(filepath.Join(blocker, "child"))
	assert.ErrorIs(t, err, ErrFilesystem)
}

func TestLocalStorage_SaveAndOpen(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStorage()

	path := filepath.Join(root, "abc123.tmp")
	n, err := s.Save(path, strings.NewReader("hello world"))
	require.NoError(t, err)
	assert.Equal(t, int64(11), n)
	assert.False(t, s.Exists(path+".tmp"))

	f, err := s.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	_, err = s.Save(path, strings.NewReader("again"))
	assert.ErrorIs(t, err, ErrExists)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestLocalStorage_SaveFailureCleansUp(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStorage()

	path := filepath.Join(root, "broken.bin")
	_, err := s.Save(path, failingReader{})
	assert.ErrorIs(t, err, ErrFilesystem)
	assert.False(t, s.Exists(path))
	assert.False(t, s.Exists(path+".tmp"))
}

func TestLocalStorage_SaveMissingDirectory(t *testing.T) {
	s := NewLocalStorage()

	_, err := s.Save(filepath.Join(t.TempDir(), "missing", "f.txt"), strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrFilesystem)
}

func TestLocalStorage_OpenMissing(t *testing.T) {
	s := NewLocalStorage()

	_, err := s.Open(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, ErrFilesystem)
}

func TestLocalStorage_Remove(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStorage()

	path := filepath.Join(root, "dir")
	require.NoError(t, s.CreateDirectory(path))
	require.NoError(t, s.Remove(path))
	assert.False(t, s.Exists(path))

	// Missing path is not an error
	assert.NoError(t, s.Remove(path))
}
