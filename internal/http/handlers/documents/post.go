package documents

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

func Post(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, dc DocumentCreator) {
	op := pkg + "Post"

	log = log.With(slog.String("op", op))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}
	defer r.Body.Close()

	var docRequest dto.CreateDocumentRequest

	if err := json.Unmarshal(body, &docRequest); err != nil {
		log.Warn("failed to unmarshal body", slog.String("error", err.Error()))
		errutils.WriteDomainError(w, models.ErrInvalidRequestBody)
		return
	}

	created, err := dc.CreateDocument(ctx, &models.CreateDocument{
		Name:      docRequest.Name,
		FolderID:  docRequest.FolderID,
		FileType:  docRequest.FileType,
		Size:      docRequest.Size,
		CreatedBy: docRequest.CreatedBy,
	})
	if err != nil {
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			log.Warn("failed to create document", slog.String("field", ve.Field), slog.String("error", ve.Message))
		} else {
			log.Warn("failed to create document", slog.String("error", err.Error()))
		}
		errutils.WriteDomainError(w, err)
		return
	}

	response := dto.CreatedResponse{
		ID:      created.ID,
		Name:    created.Name,
		Message: "Document created successfully",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
