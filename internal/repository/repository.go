package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrNotFound is wrapped by every "record does not exist" error of this package.
var ErrNotFound = errors.New("record not found")

var (
	ErrDirectoryNotFound = fmt.Errorf("directory %w", ErrNotFound)
	ErrFileNotFound      = fmt.Errorf("file %w", ErrNotFound)
	ErrDirectoryExists   = errors.New("directory already exists")
)

// isUniqueViolation reports whether err is a unique constraint failure from
// either supported driver.
func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return true
		}
		return code == sqlite3.SQLITE_CONSTRAINT && strings.Contains(err.Error(), "UNIQUE")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
