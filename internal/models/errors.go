package models

import (
	"errors"
	"net/http"
)

// Sentinel errors cross the service boundary as-is; their messages are part
// of the HTTP contract, so not-found and protected-entity errors keep the
// exact wording clients were written against.
var (
	ErrFolderNotFound      = errors.New("Folder not found")
	ErrDocumentNotFound    = errors.New("Document not found")
	ErrRootFolderProtected = errors.New("Root folder cannot be deleted")
	ErrSearchFailed        = errors.New("Failed to search documents")
	ErrInvalidFolderID     = errors.New("Invalid folder ID")
	ErrInvalidDocumentID   = errors.New("Invalid document ID")
	ErrInvalidRequestBody  = errors.New("Invalid request body")
	ErrInternal            = errors.New("internal server error")
	ErrMethodNotAllowed    = errors.New("method not allowed")
)

// ValidationError reports a single field constraint violation. Validation
// stops at the first failing field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// HTTPError is the single mapping table from the error taxonomy to a status
// code plus the message exposed to the client. Anything it does not
// recognize is an internal failure and is masked behind a generic message.
func HTTPError(err error) (int, string) {
	var ve *ValidationError

	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Message
	case errors.Is(err, ErrInvalidFolderID):
		return http.StatusBadRequest, ErrInvalidFolderID.Error()
	case errors.Is(err, ErrInvalidDocumentID):
		return http.StatusBadRequest, ErrInvalidDocumentID.Error()
	case errors.Is(err, ErrInvalidRequestBody):
		return http.StatusBadRequest, ErrInvalidRequestBody.Error()
	case errors.Is(err, ErrFolderNotFound):
		return http.StatusNotFound, ErrFolderNotFound.Error()
	case errors.Is(err, ErrDocumentNotFound):
		return http.StatusNotFound, ErrDocumentNotFound.Error()
	case errors.Is(err, ErrRootFolderProtected):
		return http.StatusConflict, ErrRootFolderProtected.Error()
	case errors.Is(err, ErrSearchFailed):
		return http.StatusInternalServerError, ErrSearchFailed.Error()
	default:
		return http.StatusInternalServerError, ErrInternal.Error()
	}
}
