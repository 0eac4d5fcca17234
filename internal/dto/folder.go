package dto

import "time"

type CreateFolderRequest struct {
	Name      string `json:"name"`
	CreatedBy string `json:"created_by,omitempty"`
}

type FolderResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type CreatedResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
