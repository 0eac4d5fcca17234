package documentservice

import (
	"context"
	"encoding/json"
	cachelistingrepo "documint/internal/repositories/cache/listing"
	"documint/internal/models"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const pkg = "documentService/"

type DocumentService struct {
	log     *slog.Logger
	docRepo DocumentRepository
	folders FolderProvider
	cache   Cache
}

func New(
	log *slog.Logger,
	docRepo DocumentRepository,
	folders FolderProvider,
	cache Cache,
) *DocumentService {
	return &DocumentService{
		log:     log,
		docRepo: docRepo,
		folders: folders,
		cache:   cache,
	}
}

// ListDocuments returns documents newest first. With a nil folderID it
// returns every document without touching the folder service; with a
// folderID it verifies the folder first and scopes the result to it.
func (ds *DocumentService) ListDocuments(ctx context.Context, folderID *int64) ([]*models.Document, error) {
	op := pkg + "ListDocuments"

	log := ds.log.With(slog.String("op", op))

	if folderID == nil {
		log.Debug("attempting to list all documents")
		return ds.listCached(ctx, log, cachelistingrepo.DocumentsAllKey, func() ([]*models.Document, error) {
			return ds.docRepo.Documents(ctx)
		})
	}

	log.Debug("attempting to list documents by folder", slog.Int64("folder_id", *folderID))

	exists, err := ds.folders.FolderExists(ctx, *folderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if !exists {
		log.Warn("folder not found", slog.Int64("folder_id", *folderID))
		return nil, fmt.Errorf("%s: %w", op, models.ErrFolderNotFound)
	}

	id := *folderID

	return ds.listCached(ctx, log, cachelistingrepo.DocumentsKey(id), func() ([]*models.Document, error) {
		return ds.docRepo.DocumentsByFolder(ctx, id)
	})
}

func (ds *DocumentService) DocumentByID(ctx context.Context, id int64) (*models.Document, error) {
	op := pkg + "DocumentByID"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to get document by id", slog.Int64("doc_id", id))

	doc, err := ds.docRepo.DocumentByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.Int64("doc_id", id))
			return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		log.Error("failed to get document by id", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return doc, nil
}

// SearchDocuments matches the trimmed query as a case-insensitive substring
// of document names. Storage failures are masked behind a fixed message so
// the caller never sees persistence detail.
func (ds *DocumentService) SearchDocuments(ctx context.Context, query string) ([]*models.Document, error) {
	op := pkg + "SearchDocuments"

	log := ds.log.With(slog.String("op", op))

	trimmed := strings.TrimSpace(query)

	if err := validation.Validate(trimmed,
		validation.Required.Error("Search query is required"),
		validation.RuneLength(models.MinSearchQueryLength, 0).Error("Search query must be at least 2 characters"),
	); err != nil {
		log.Warn("invalid search query", slog.String("error", err.Error()))
		return nil, &models.ValidationError{Field: "query", Message: err.Error()}
	}

	log.Debug("attempting to search documents", slog.String("query", trimmed))

	docs, err := ds.docRepo.SearchByName(ctx, trimmed)
	if err != nil {
		log.Error("failed to search documents", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrSearchFailed)
	}

	log.Debug("documents searched successfully", slog.Int("count", len(docs)))

	return docs, nil
}

func (ds *DocumentService) CreateDocument(ctx context.Context, req *models.CreateDocument) (*models.Created, error) {
	op := pkg + "CreateDocument"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to create document", slog.String("name", req.Name), slog.Int64("folder_id", req.FolderID))

	if err := validateCreate(req); err != nil {
		log.Warn("invalid document data", slog.String("error", err.Error()))
		return nil, err
	}

	exists, err := ds.folders.FolderExists(ctx, req.FolderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if !exists {
		log.Warn("folder not found", slog.Int64("folder_id", req.FolderID))
		return nil, fmt.Errorf("%s: %w", op, models.ErrFolderNotFound)
	}

	doc := &models.CreateDocument{
		Name:      strings.TrimSpace(req.Name),
		FolderID:  req.FolderID,
		FileType:  strings.ToLower(strings.TrimSpace(req.FileType)),
		Size:      req.Size,
		CreatedBy: strings.TrimSpace(req.CreatedBy),
	}

	id, err := ds.docRepo.Create(ctx, doc)
	if err != nil {
		log.Error("failed to create document", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	err = ds.cache.Del(ctx,
		cachelistingrepo.DocumentsAllKey,
		cachelistingrepo.DocumentsKey(doc.FolderID))
	if err != nil {
		log.Warn("failed to invalidate listing cache", slog.String("error", err.Error()))
	}

	log.Debug("document created successfully", slog.Int64("doc_id", id), slog.String("name", doc.Name))

	return &models.Created{ID: id, Name: doc.Name}, nil
}

func (ds *DocumentService) DeleteDocument(ctx context.Context, id int64) (bool, error) {
	op := pkg + "DeleteDocument"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to delete document", slog.Int64("doc_id", id))

	doc, err := ds.docRepo.DocumentByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.Int64("doc_id", id))
			return false, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		log.Error("failed to get document by id", slog.String("error", err.Error()))
		return false, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	deleted, err := ds.docRepo.Delete(ctx, id)
	if err != nil {
		log.Error("failed to delete document", slog.String("error", err.Error()))
		return false, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	err = ds.cache.Del(ctx,
		cachelistingrepo.DocumentsAllKey,
		cachelistingrepo.DocumentsKey(doc.FolderID))
	if err != nil {
		log.Warn("failed to invalidate listing cache", slog.String("error", err.Error()))
	}

	log.Debug("document deleted successfully", slog.Int64("doc_id", id))

	return deleted, nil
}

func (ds *DocumentService) CountInFolder(ctx context.Context, folderID int64) (int64, error) {
	op := pkg + "CountInFolder"

	log := ds.log.With(slog.String("op", op))

	exists, err := ds.folders.FolderExists(ctx, folderID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if !exists {
		log.Warn("folder not found", slog.Int64("folder_id", folderID))
		return 0, fmt.Errorf("%s: %w", op, models.ErrFolderNotFound)
	}

	count, err := ds.docRepo.CountByFolder(ctx, folderID)
	if err != nil {
		log.Error("failed to count documents", slog.String("error", err.Error()))
		return 0, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return count, nil
}

func (ds *DocumentService) listCached(ctx context.Context, log *slog.Logger, key string, fetch func() ([]*models.Document, error)) ([]*models.Document, error) {
	docsJSON, err := ds.cache.Get(ctx, key)
	if err == nil && docsJSON != "" {
		docs, err := jsonToDocs(docsJSON)
		if err == nil {
			log.Debug("documents listed from cache", slog.Int("count", len(docs)))
			return docs, nil
		}
		log.Warn("failed to parse cached documents", slog.String("error", err.Error()))
	}

	docs, err := fetch()
	if err != nil {
		log.Error("failed to list documents", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	docsJSON, err = docsToJSON(docs)
	if err != nil {
		log.Error("failed to convert docs to json", slog.String("error", err.Error()))
	} else if err := ds.cache.Set(ctx, key, docsJSON); err != nil {
		log.Warn("failed to set docs in cache", slog.String("error", err.Error()))
	}

	log.Debug("documents listed successfully", slog.Int("count", len(docs)))

	return docs, nil
}

// validateCreate checks fields in a fixed order and stops at the first
// violation, naming the failing field.
func validateCreate(req *models.CreateDocument) error {
	name := strings.TrimSpace(req.Name)

	if err := validation.Validate(name,
		validation.Required.Error("Document name is required and cannot be empty"),
		validation.RuneLength(1, 255).Error("Document name cannot exceed 255 characters"),
	); err != nil {
		return &models.ValidationError{Field: "name", Message: err.Error()}
	}

	if err := validation.Validate(req.FolderID,
		validation.Required.Error("Folder ID is required"),
	); err != nil {
		return &models.ValidationError{Field: "folder_id", Message: err.Error()}
	}

	fileType := strings.TrimSpace(req.FileType)

	if err := validation.Validate(fileType,
		validation.Required.Error("File type is required"),
		validation.RuneLength(1, 50).Error("File type cannot exceed 50 characters"),
	); err != nil {
		return &models.ValidationError{Field: "file_type", Message: err.Error()}
	}

	if err := validation.Validate(req.Size,
		validation.Required.Error("File size must be greater than 0"),
		validation.Min(int64(1)).Error("File size must be greater than 0"),
	); err != nil {
		return &models.ValidationError{Field: "size", Message: err.Error()}
	}

	if err := validation.Validate(req.Size,
		validation.Max(models.MaxDocumentSize).Error("File size cannot exceed 500MB"),
	); err != nil {
		return &models.ValidationError{Field: "size", Message: err.Error()}
	}

	return nil
}

func docsToJSON(docs []*models.Document) (string, error) {
	res, err := json.Marshal(docs)
	if err != nil {
		return "", err
	}

	return string(res), nil
}

func jsonToDocs(s string) ([]*models.Document, error) {
	if len(s) == 0 {
		return nil, errors.New("empty json string")
	}

	var docs []*models.Document

	if err := json.Unmarshal([]byte(s), &docs); err != nil {
		return nil, err
	}

	return docs, nil
}
