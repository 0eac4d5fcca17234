package folders

import (
	"context"
	"documint/internal/models"
)

const pkg = "foldersHandler/"

type FolderProvider interface {
	ListFolders(ctx context.Context) ([]*models.Folder, error)
}

type FolderCreator interface {
	CreateFolder(ctx context.Context, req *models.CreateFolder) (*models.Created, error)
}

type FolderDeleter interface {
	DeleteFolder(ctx context.Context, id int64) (bool, error)
}
