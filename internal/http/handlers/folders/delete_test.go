package folders

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

type mockFolderDeleter struct{ mock.Mock }

func (m *mockFolderDeleter) DeleteFolder(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestDelete_Success(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/folders/2", nil)
	ctx := req.Context()

	deleter := new(mockFolderDeleter)
	deleter.On("DeleteFolder", ctx, int64(2)).Return(true, nil)

	Delete(ctx, slog.Default(), w, req, "2", deleter)

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed map[string]string
	err := json.NewDecoder(resp.Body).Decode(&parsed)
	assert.NoError(t, err)
	assert.Equal(t, "Folder deleted successfully", parsed["message"])

	deleter.AssertExpectations(t)
}

func TestDelete_Fail_InvalidID(t *testing.T) {
	for _, rawID := range []string{"abc", "0", "-5", ""} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/folders/x", nil)
		ctx := req.Context()

		deleter := new(mockFolderDeleter)

		Delete(ctx, slog.Default(), w, req, rawID, deleter)

		resp := w.Result()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var parsed map[string]string
		err := json.NewDecoder(resp.Body).Decode(&parsed)
		assert.NoError(t, err)
		assert.Equal(t, "Invalid folder ID", parsed["error"])

		deleter.AssertNotCalled(t, "DeleteFolder", mock.Anything, mock.Anything)
	}
}

func TestDelete_Fail_NotFound(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/folders/99", nil)
	ctx := req.Context()

	deleter := new(mockFolderDeleter)
	deleter.On("DeleteFolder", ctx, int64(99)).Return(false, models.ErrFolderNotFound)

	Delete(ctx, slog.Default(), w, req, "99", deleter)

	resp := w.Result()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var parsed map[string]string
	err := json.NewDecoder(resp.Body).Decode(&parsed)
	assert.NoError(t, err)
	assert.Equal(t, "Folder not found", parsed["error"])

	deleter.AssertExpectations(t)
}

func TestDelete_Fail_RootProtected(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/folders/1", nil)
	ctx := req.Context()

	deleter := new(mockFolderDeleter)
	deleter.On("DeleteFolder", ctx, models.RootFolderID).Return(false, models.ErrRootFolderProtected)

	Delete(ctx, slog.Default(), w, req, "1", deleter)

	resp := w.Result()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var parsed map[string]string
	err := json.NewDecoder(resp.Body).Decode(&parsed)
	assert.NoError(t, err)
	assert.Equal(t, "Root folder cannot be deleted", parsed["error"])

	deleter.AssertExpectations(t)
}
