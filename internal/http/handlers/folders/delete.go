package folders

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

func Delete(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, rawID string, fd FolderDeleter) {
	op := pkg + "Delete"

	log = log.With(slog.String("op", op))

	id, err := parseutil.ParseID(rawID)
	if err != nil {
		log.Warn("invalid folder id", slog.String("raw_id", rawID))
		errutils.WriteDomainError(w, models.ErrInvalidFolderID)
		return
	}

	if _, err := fd.DeleteFolder(ctx, id); err != nil {
		log.Warn("failed to delete folder", slog.String("error", err.Error()))
		errutils.WriteDomainError(w, err)
		return
	}

	response := dto.MessageResponse{Message: "Folder deleted successfully"}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
