package folderrepo

import (
	"context"
	"database/sql"
	"documint/internal/entities"
	"documint/internal/models"
	"documint/internal/repositories/db/queries"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const pkg = "folderRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) Folders(ctx context.Context) ([]*models.Folder, error) {
	op := pkg + "Folders"

	rawFolders := make([]entities.Folder, 0)

	err := r.db.SelectContext(ctx, &rawFolders, queries.SelectAllFolders)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	folders := make([]*models.Folder, 0, len(rawFolders))

	for _, rawFolder := range rawFolders {
		folders = append(folders, &models.Folder{
			ID:        rawFolder.ID,
			Name:      rawFolder.Name,
			CreatedBy: rawFolder.CreatedBy,
			CreatedAt: rawFolder.CreatedAt,
		})
	}

	return folders, nil
}

func (r *repository) FolderByID(ctx context.Context, id int64) (*models.Folder, error) {
	op := pkg + "FolderByID"

	rawFolder := entities.Folder{}

	err := r.db.GetContext(ctx, &rawFolder, queries.SelectFolderByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrFolderNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.Folder{
		ID:        rawFolder.ID,
		Name:      rawFolder.Name,
		CreatedBy: rawFolder.CreatedBy,
		CreatedAt: rawFolder.CreatedAt,
	}, nil
}

func (r *repository) Exists(ctx context.Context, id int64) (bool, error) {
	op := pkg + "Exists"

	var exists bool

	err := r.db.GetContext(ctx, &exists, queries.FolderExists, id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

func (r *repository) Create(ctx context.Context, name string, createdBy string) (int64, error) {
	op := pkg + "Create"

	var id int64

	err := r.db.GetContext(ctx, &id, queries.InsertFolder, name, createdBy)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// Delete removes the folder row; documents under it go with it via the
// ON DELETE CASCADE constraint on documents.folder_id.
func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	op := pkg + "Delete"

	res, err := r.db.ExecContext(ctx, queries.DeleteFolder, id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return affected > 0, nil
}
