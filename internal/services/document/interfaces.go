package documentservice

import (
	"context"
	"documint/internal/models"
)

type DocumentRepository interface {
	Documents(ctx context.Context) ([]*models.Document, error)
	DocumentsByFolder(ctx context.Context, folderID int64) ([]*models.Document, error)
	DocumentByID(ctx context.Context, id int64) (*models.Document, error)
	SearchByName(ctx context.Context, query string) ([]*models.Document, error)
	Create(ctx context.Context, doc *models.CreateDocument) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
	CountByFolder(ctx context.Context, folderID int64) (int64, error)
}

// FolderProvider is the slice of the folder service the document service
// needs for its cross-entity existence checks.
type FolderProvider interface {
	FolderExists(ctx context.Context, id int64) (bool, error)
}

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}) error
	Del(ctx context.Context, keys ...string) error
}
