package folderservice

import (
	"context"
	"documint/internal/models"
)

type FolderRepository interface {
	Folders(ctx context.Context) ([]*models.Folder, error)
	FolderByID(ctx context.Context, id int64) (*models.Folder, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, name string, createdBy string) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}) error
	Del(ctx context.Context, keys ...string) error
}
