package documentrepo

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

const pkg = "documentRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) Documents(ctx context.Context) ([]*models.Document, error) {
	op := pkg + "Documents"

	rawDocs := make([]entities.Document, 0)

	err := r.db.SelectContext(ctx, &rawDocs, queries.SelectAllDocuments)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return toModels(rawDocs), nil
}

func (r *repository) DocumentsByFolder(ctx context.Context, folderID int64) ([]*models.Document, error) {
	op := pkg + "DocumentsByFolder"

	rawDocs := make([]entities.Document, 0)

	err := r.db.SelectContext(ctx, &rawDocs, queries.SelectDocumentsByFolder, folderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return toModels(rawDocs), nil
}

func (r *repository) DocumentByID(ctx context.Context, id int64) (*models.Document, error) {
	op := pkg + "DocumentByID"

	rawDoc := entities.Document{}

	err := r.db.GetContext(ctx, &rawDoc, queries.SelectDocumentByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return toModel(rawDoc), nil
}

func (r *repository) SearchByName(ctx context.Context, query string) ([]*models.Document, error) {
	op := pkg + "SearchByName"

	rawDocs := make([]entities.Document, 0)

	err := r.db.SelectContext(ctx, &rawDocs, queries.SearchDocumentsByName, queries.SearchPattern(query))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return toModels(rawDocs), nil
}

func (r *repository) Create(ctx context.Context, doc *models.CreateDocument) (int64, error) {
	op := pkg + "Create"

	var createdBy any

	if doc.CreatedBy != "" {
		createdBy = doc.CreatedBy
	} else {
		createdBy = nil
	}

	var id int64

	err := r.db.GetContext(ctx, &id, queries.InsertDocument,
		doc.Name, doc.FolderID, doc.FileType, doc.Size, createdBy)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	op := pkg + "Delete"

	res, err := r.db.ExecContext(ctx, queries.DeleteDocument, id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return affected > 0, nil
}

func (r *repository) CountByFolder(ctx context.Context, folderID int64) (int64, error) {
	op := pkg + "CountByFolder"

	var count int64

	err := r.db.GetContext(ctx, &count, queries.CountDocumentsInFolder, folderID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func toModel(raw entities.Document) *models.Document {
	return &models.Document{
		ID:        raw.ID,
		Name:      raw.Name,
		FolderID:  raw.FolderID,
		FileType:  raw.FileType,
		Size:      raw.Size,
		CreatedBy: raw.CreatedBy.String,
		CreatedAt: raw.CreatedAt,
	}
}

func toModels(rawDocs []entities.Document) []*models.Document {
	docs := make([]*models.Document, 0, len(rawDocs))

	for _, rawDoc := range rawDocs {
		docs = append(docs, toModel(rawDoc))
	}

	return docs
}
