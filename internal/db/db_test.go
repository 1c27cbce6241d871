package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAndMigrate(t *testing.T) {
	conn := filepath.Join(t.TempDir(), "nested", "test.db")

	database, err := Init("sqlite", conn)
	require.NoError(t, err)
	defer func() { _ = Close(database) }()

	require.NoError(t, RunMigrations(database.DB, "sqlite"))

	var tables []string
	err = database.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('directories', 'files') ORDER BY name`)
	require.NoError(t, err)
	assert.Equal(t, []string{"directories", "files"}, tables)

	// Running again is a no-op
	require.NoError(t, RunMigrations(database.DB, "sqlite"))

	require.NoError(t, MigrateDown(database.DB, "sqlite"))
	tables = nil
	err = database.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'files'`)
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestSetupGooseUnknownDriver(t *testing.T) {
	err := setupGoose("mysql")
	assert.Error(t, err)
}

func TestGetDialect(t *testing.T) {
	assert.Equal(t, "sqlite3", getDialect("sqlite"))
	assert.Equal(t, "postgres", getDialect("pgx"))
	assert.Equal(t, "other", getDialect("other"))
}

func TestSqliteDir(t *testing.T) {
	assert.Equal(t, "data", sqliteDir("data/app.db?_pragma=foreign_keys(1)"))
	assert.Equal(t, "/var/lib/fs", sqliteDir("file:/var/lib/fs/app.db"))
	assert.Equal(t, "", sqliteDir(":memory:"))
	assert.Equal(t, "", sqliteDir("file::memory:?cache=shared"))
}
