package documents

import (
	"context"
	"documint/internal/models"
)

const pkg = "documentsHandler/"

type DocumentProvider interface {
	ListDocuments(ctx context.Context, folderID *int64) ([]*models.Document, error)
}

type DocumentSearcher interface {
	SearchDocuments(ctx context.Context, query string) ([]*models.Document, error)
}

type DocumentCreator interface {
	CreateDocument(ctx context.Context, req *models.CreateDocument) (*models.Created, error)
}

type DocumentDeleter interface {
	DeleteDocument(ctx context.Context, id int64) (bool, error)
}
