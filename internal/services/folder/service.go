package folderservice

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

const pkg = "folderService/"

type FolderService struct {
	log        *slog.Logger
	folderRepo FolderRepository
	cache      Cache
}

func New(
	log *slog.Logger,
	folderRepo FolderRepository,
	cache Cache,
) *FolderService {
	return &FolderService{
		log:        log,
		folderRepo: folderRepo,
		cache:      cache,
	}
}

// ListFolders returns every folder, newest first. The Root folder is
// included; hiding it is the read model's job, not the service's.
func (fs *FolderService) ListFolders(ctx context.Context) ([]*models.Folder, error) {
	op := pkg + "ListFolders"

	log := fs.log.With(slog.String("op", op))

	log.Debug("attempting to list folders")

	foldersJSON, err := fs.cache.Get(ctx, cachelistingrepo.FoldersKey)
	if err == nil && foldersJSON != "" {
		folders, err := jsonToFolders(foldersJSON)
		if err == nil {
			log.Debug("folders listed from cache", slog.Int("count", len(folders)))
			return folders, nil
		}
		log.Warn("failed to parse cached folders", slog.String("error", err.Error()))
	}

	folders, err := fs.folderRepo.Folders(ctx)
	if err != nil {
		log.Error("failed to list folders", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	foldersJSON, err = foldersToJSON(folders)
	if err != nil {
		log.Error("failed to convert folders to json", slog.String("error", err.Error()))
	} else if err := fs.cache.Set(ctx, cachelistingrepo.FoldersKey, foldersJSON); err != nil {
		log.Warn("failed to set folders in cache", slog.String("error", err.Error()))
	}

	log.Debug("folders listed successfully", slog.Int("count", len(folders)))

	return folders, nil
}

func (fs *FolderService) FolderByID(ctx context.Context, id int64) (*models.Folder, error) {
	op := pkg + "FolderByID"

	log := fs.log.With(slog.String("op", op))

	log.Debug("attempting to get folder by id", slog.Int64("folder_id", id))

	folder, err := fs.folderRepo.FolderByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrFolderNotFound) {
			log.Warn("folder not found", slog.Int64("folder_id", id))
			return nil, fmt.Errorf("%s: %w", op, models.ErrFolderNotFound)
		}
		log.Error("failed to get folder by id", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return folder, nil
}

// FolderExists reports whether the folder id references an existing row.
// The document service uses it as a precondition check; it always reads
// storage directly.
func (fs *FolderService) FolderExists(ctx context.Context, id int64) (bool, error) {
	op := pkg + "FolderExists"

	log := fs.log.With(slog.String("op", op))

	exists, err := fs.folderRepo.Exists(ctx, id)
	if err != nil {
		log.Error("failed to check folder existence", slog.Int64("folder_id", id), slog.String("error", err.Error()))
		return false, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return exists, nil
}

func (fs *FolderService) CreateFolder(ctx context.Context, req *models.CreateFolder) (*models.Created, error) {
	op := pkg + "CreateFolder"

	log := fs.log.With(slog.String("op", op))

	log.Debug("attempting to create folder", slog.String("name", req.Name))

	name := strings.TrimSpace(req.Name)

	if err := validation.Validate(name,
		validation.Required.Error("Folder name is required and cannot be empty"),
		validation.RuneLength(1, 255).Error("Folder name cannot exceed 255 characters"),
	); err != nil {
		log.Warn("invalid folder name", slog.String("error", err.Error()))
		return nil, &models.ValidationError{Field: "name", Message: err.Error()}
	}

	createdBy := strings.TrimSpace(req.CreatedBy)
	if createdBy == "" {
		createdBy = models.DefaultCreatedBy
	}

	id, err := fs.folderRepo.Create(ctx, name, createdBy)
	if err != nil {
		log.Error("failed to create folder", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if err := fs.cache.Del(ctx, cachelistingrepo.FoldersKey); err != nil {
		log.Warn("failed to invalidate folders cache", slog.String("error", err.Error()))
	}

	log.Debug("folder created successfully", slog.Int64("folder_id", id), slog.String("name", name))

	return &models.Created{ID: id, Name: name}, nil
}

// DeleteFolder removes a folder and, through the storage-level cascade,
// every document under it. The Root folder is protected regardless of what
// callers send.
func (fs *FolderService) DeleteFolder(ctx context.Context, id int64) (bool, error) {
	op := pkg + "DeleteFolder"

	log := fs.log.With(slog.String("op", op))

	log.Debug("attempting to delete folder", slog.Int64("folder_id", id))

	if id == models.RootFolderID {
		log.Warn("refusing to delete the root folder")
		return false, fmt.Errorf("%s: %w", op, models.ErrRootFolderProtected)
	}

	exists, err := fs.folderRepo.Exists(ctx, id)
	if err != nil {
		log.Error("failed to check folder existence", slog.String("error", err.Error()))
		return false, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if !exists {
		log.Warn("folder not found", slog.Int64("folder_id", id))
		return false, fmt.Errorf("%s: %w", op, models.ErrFolderNotFound)
	}

	deleted, err := fs.folderRepo.Delete(ctx, id)
	if err != nil {
		log.Error("failed to delete folder", slog.String("error", err.Error()))
		return false, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	err = fs.cache.Del(ctx,
		cachelistingrepo.FoldersKey,
		cachelistingrepo.DocumentsAllKey,
		cachelistingrepo.DocumentsKey(id))
	if err != nil {
		log.Warn("failed to invalidate listing cache", slog.String("error", err.Error()))
	}

	log.Debug("folder deleted successfully", slog.Int64("folder_id", id))

	return deleted, nil
}

func foldersToJSON(folders []*models.Folder) (string, error) {
	res, err := json.Marshal(folders)
	if err != nil {
		return "", err
	}

	return string(res), nil
}

func jsonToFolders(s string) ([]*models.Folder, error) {
	if len(s) == 0 {
		return nil, errors.New("empty json string")
	}

	var folders []*models.Folder

	if err := json.Unmarshal([]byte(s), &folders); err != nil {
		return nil, err
	}

	return folders, nil
}
