package model

import (
	"fmt"
	"strconv"
	"time"
)

type FileID int64

func (id FileID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func ParseFileID(s string) (FileID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid file id %q", s)
	}
	return FileID(n), nil
}

type File struct {
	ID             FileID      `db:"id"`
	DirectoryID    DirectoryID `db:"directory_id"`
	DisplayName    string      `db:"display_name"` // Name as uploaded, sanitized
	FileName       string      `db:"file_name"`    // Generated on-disk name
	FileLength     int64       `db:"file_length"`
	Uploaded       time.Time   `db:"uploaded"`
	LastDownloaded *time.Time  `db:"last_downloaded"`
}
