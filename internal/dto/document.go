package dto

import "time"

type CreateDocumentRequest struct {
	Name      string `json:"name"`
	FolderID  int64  `json:"folder_id"`
	FileType  string `json:"file_type"`
	Size      int64  `json:"size"`
	CreatedBy string `json:"created_by,omitempty"`
}

type DocumentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	FolderID  int64     `json:"folder_id"`
	FileType  string    `json:"file_type"`
	Size      int64     `json:"size"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
