package utils

import (
	"documint/internal/models"
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

func WriteJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message})
}

// WriteDomainError maps a service error through the models.HTTPError table.
func WriteDomainError(w http.ResponseWriter, err error) {
	status, message := models.HTTPError(err)
	WriteJSONError(w, status, message)
}
