package models

import "time"

const (
	// RootFolderID is the distinguished container every document falls back
	// to when no folder is chosen. It always exists, is hidden from listings
	// and is never deletable.
	RootFolderID int64 = 1

	// DefaultCreatedBy is stored when a folder is created without an author.
	DefaultCreatedBy = "Unknown"
)

type Folder struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateFolder struct {
	Name      string
	CreatedBy string
}

// Created is what the create operations return: the generated id and the
// name as actually stored (after normalization).
type Created struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
