package models

import "time"

// MaxDocumentSize is the largest accepted document size in bytes (500 MiB).
const MaxDocumentSize int64 = 524288000

// MinSearchQueryLength is the shortest accepted search query after trimming.
const MinSearchQueryLength = 2

type Document struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	FolderID  int64     `json:"folder_id"`
	FileType  string    `json:"file_type"`
	Size      int64     `json:"size"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateDocument struct {
	Name      string
	FolderID  int64
	FileType  string
	Size      int64
	CreatedBy string
}
