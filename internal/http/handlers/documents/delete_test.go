package documents

import (
	"context"
	"documint/internal/models"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockDocumentDeleter struct{ mock.Mock }

func (m *mockDocumentDeleter) DeleteDocument(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestDelete_Success(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/documents/7", nil)
	ctx := req.Context()

	deleter := new(mockDocumentDeleter)
	deleter.On("DeleteDocument", ctx, int64(7)).Return(true, nil)

	Delete(ctx, slog.Default(), w, req, "7", deleter)

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed map[string]string
	err := json.NewDecoder(resp.Body).Decode(&parsed)
	assert.NoError(t, err)
	assert.Equal(t, "Document deleted successfully", parsed["message"])

	deleter.AssertExpectations(t)
}

func TestDelete_Fail_InvalidID(t *testing.T) {
	for _, rawID := range []string{"abc", "0", "-5", ""} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/documents/x", nil)
		ctx := req.Context()

		deleter := new(mockDocumentDeleter)

		Delete(ctx, slog.Default(), w, req, rawID, deleter)

		resp := w.Result()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var parsed map[string]string
		err := json.NewDecoder(resp.Body).Decode(&parsed)
		assert.NoError(t, err)
		assert.Equal(t, "Invalid document ID", parsed["error"])

		deleter.AssertNotCalled(t, "DeleteDocument", mock.Anything, mock.Anything)
	}
}

func TestDelete_Fail_NotFound(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/documents/99", nil)
	ctx := req.Context()

	deleter := new(mockDocumentDeleter)
	deleter.On("DeleteDocument", ctx, int64(99)).Return(false, models.ErrDocumentNotFound)

	Delete(ctx, slog.Default(), w, req, "99", deleter)

	resp := w.Result()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var parsed map[string]string
	err := json.NewDecoder(resp.Body).Decode(&parsed)
	assert.NoError(t, err)
	assert.Equal(t, "Document not found", parsed["error"])

	deleter.AssertExpectations(t)
}
