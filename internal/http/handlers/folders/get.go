package folders

import (
	"context"
	"documint/internal/dto"
	errutils "documint/internal/utils/http_errors"
	"encoding/json"
	"log/slog"
	"net/http"
)

func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, fp FolderProvider) {
	op := pkg + "Get"

	log = log.With(slog.String("op", op))

	rawFolders, err := fp.ListFolders(ctx)
	if err != nil {
		log.Error("failed to list folders", slog.String("error", err.Error()))
		errutils.WriteDomainError(w, err)
		return
	}

	response := make([]dto.FolderResponse, 0, len(rawFolders))

	for _, folder := range rawFolders {
		response = append(response, dto.FolderResponse{
			ID:        folder.ID,
			Name:      folder.Name,
			CreatedBy: folder.CreatedBy,
			CreatedAt: folder.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
