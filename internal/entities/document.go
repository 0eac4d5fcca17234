package entities

import (
	"database/sql"
	"time"
)

type Document struct {
	ID        int64          `db:"id"`
	Name      string         `db:"name"`
	FolderID  int64          `db:"folder_id"`
	FileType  string         `db:"file_type"`
	Size      int64          `db:"size"`
	CreatedBy sql.NullString `db:"created_by"`
	CreatedAt time.Time      `db:"created_at"`
}
