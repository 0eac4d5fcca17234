package folders

import (
	"context"
	"documint/internal/dto"
	"documint/internal/models"
	errutils "documint/internal/utils/http_errors"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

func Post(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, fc FolderCreator) {
	op := pkg + "Post"

	log = log.With(slog.String("op", op))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}
	defer r.Body.Close()

	var folderRequest dto.CreateFolderRequest

	if err := json.Unmarshal(body, &folderRequest); err != nil {
		log.Warn("failed to unmarshal body", slog.String("error", err.Error()))
		errutils.WriteDomainError(w, models.ErrInvalidRequestBody)
		return
	}

	created, err := fc.CreateFolder(ctx, &models.CreateFolder{
		Name:      folderRequest.Name,
		CreatedBy: folderRequest.CreatedBy,
	})
	if err != nil {
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			log.Warn("failed to create folder", slog.String("error", ve.Message))
		} else {
			log.Error("failed to create folder", slog.String("error", err.Error()))
		}
		errutils.WriteDomainError(w, err)
		return
	}

	response := dto.CreatedResponse{
		ID:      created.ID,
		Name:    created.Name,
		Message: "Folder created successfully",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
