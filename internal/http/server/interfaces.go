package server

import (
	"context"
	"documint/internal/models"
)

type FolderService interface {
	ListFolders(ctx context.Context) ([]*models.Folder, error)
	CreateFolder(ctx context.Context, req *models.CreateFolder) (*models.Created, error)
	DeleteFolder(ctx context.Context, id int64) (bool, error)
}

type DocumentService interface {
	ListDocuments(ctx context.Context, folderID *int64) ([]*models.Document, error)
	SearchDocuments(ctx context.Context, query string) ([]*models.Document, error)
	CreateDocument(ctx context.Context, req *models.CreateDocument) (*models.Created, error)
	DeleteDocument(ctx context.Context, id int64) (bool, error)
}
