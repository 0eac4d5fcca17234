package documents

import (
	"context"
	errutils "documint/internal/utils/http_errors"
	"log/slog"
	"net/http"
)

func Search(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, ds DocumentSearcher) {
	op := pkg + "Search"

	log = log.With(slog.String("op", op))

	query := r.URL.Query().Get("query")

	rawDocs, err := ds.SearchDocuments(ctx, query)
	if err != nil {
		log.Warn("failed to search documents", slog.String("error", err.Error()))
		errutils.WriteDomainError(w, err)
		return
	}

	writeDocuments(log, w, rawDocs)
}
