package model

import (
	"fmt"
	"strconv"
	"time"
)

// DirectoryID identifies a directory record. The zero value is the file-store
// root, which is never stored as a record.
type DirectoryID int64

const RootDirectoryID DirectoryID = 0

func (id DirectoryID) IsRoot() bool {
	return id == RootDirectoryID
}

func (id DirectoryID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseDirectoryID parses a query value. An empty value means the root.
func ParseDirectoryID(s string) (DirectoryID, error) {
	if s == "" {
		return RootDirectoryID, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid directory id %q", s)
	}
	return DirectoryID(n), nil
}

type Directory struct {
	ID        DirectoryID `db:"id"`
	Name      string      `db:"name"`
	ParentID  DirectoryID `db:"parent_id"` // RootDirectoryID = direct child of root
	CreatedAt time.Time   `db:"created_at"`
}
