package meta

import (
	"documint/internal/dto"
	"encoding/json"
	"log/slog"
	"net/http"
)

const pkg = "metaHandler/"

// Get serves the informational root endpoint with the service name, status
// and endpoint map.
func Get(log *slog.Logger, w http.ResponseWriter, r *http.Request) {
	op := pkg + "Get"

	log = log.With(slog.String("op", op))

	response := dto.ServiceInfoResponse{
		Message: "Documents Management API",
		Status:  "Server is running",
		Endpoints: map[string]string{
			"folders":   "/api/folders",
			"documents": "/api/documents",
			"search":    "/api/documents/search",
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
