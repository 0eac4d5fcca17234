package documents

import (
	"context"
	"documint/internal/dto"
	"documint/internal/models"
	errutils "documint/internal/utils/http_errors"
	parseutil "documint/internal/utils/parseid"
	"encoding/json"
	"log/slog"
	"net/http"
)

func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, dp DocumentProvider) {
	op := pkg + "Get"

	log = log.With(slog.String("op", op))

	var folderID *int64

	if raw := r.URL.Query().Get("folder_id"); raw != "" {
		id, err := parseutil.ParseID(raw)
		if err != nil {
			log.Warn("invalid folder id", slog.String("raw_id", raw))
			errutils.WriteDomainError(w, models.ErrInvalidFolderID)
			return
		}
		folderID = &id
	}

	rawDocs, err := dp.ListDocuments(ctx, folderID)
	if err != nil {
		log.Warn("failed to list documents", slog.String("error", err.Error()))
		errutils.WriteDomainError(w, err)
		return
	}

	writeDocuments(log, w, rawDocs)
}

func writeDocuments(log *slog.Logger, w http.ResponseWriter, rawDocs []*models.Document) {
	response := make([]dto.DocumentResponse, 0, len(rawDocs))

	for _, doc := range rawDocs {
		response = append(response, dto.DocumentResponse{
			ID:        doc.ID,
			Name:      doc.Name,
			FolderID:  doc.FolderID,
			FileType:  doc.FileType,
			Size:      doc.Size,
			CreatedBy: doc.CreatedBy,
			CreatedAt: doc.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
