package folders

import (
	"context"
	"documint/internal/dto"
	"documint/internal/models"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockFolderProvider struct{ mock.Mock }

func (m *mockFolderProvider) ListFolders(ctx context.Context) ([]*models.Folder, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Folder), args.Error(1)
}

func TestGet_Success(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/folders", nil)
	ctx := req.Context()

	folders := []*models.Folder{
		{ID: 2, Name: "Reports", CreatedBy: "Evelyn Blue", CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)},
	}

	provider := new(mockFolderProvider)
	provider.On("ListFolders", ctx).Return(folders, nil)

	Get(ctx, slog.Default(), w, req, provider)

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var parsed []dto.FolderResponse
	err := json.NewDecoder(resp.Body).Decode(&parsed)
	assert.NoError(t, err)
	assert.Len(t, parsed, 1)
	assert.Equal(t, "Reports", parsed[0].Name)
	assert.Equal(t, "Evelyn Blue", parsed[0].CreatedBy)

	provider.AssertExpectations(t)
}

func TestGet_Empty(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/folders", nil)
	ctx := req.Context()

	provider := new(mockFolderProvider)
	provider.On("ListFolders", ctx).Return([]*models.Folder{}, nil)

	Get(ctx, slog.Default(), w, req, provider)

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]\n", w.Body.String())

	provider.AssertExpectations(t)
}

func TestGet_Fail_Internal(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/folders", nil)
	ctx := req.Context()

	provider := new(mockFolderProvider)
	provider.On("ListFolders", ctx).Return(([]*models.Folder)(nil), models.ErrInternal)

	Get(ctx, slog.Default(), w, req, provider)

	resp := w.Result()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var parsed map[string]string
	err := json.NewDecoder(resp.Body).Decode(&parsed)
	assert.NoError(t, err)
	assert.Equal(t, models.ErrInternal.Error(), parsed["error"])

	provider.AssertExpectations(t)
}
