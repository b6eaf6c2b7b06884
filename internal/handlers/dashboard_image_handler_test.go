package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/advisorycontent/backend/internal/apperrors"
	"github.com/advisorycontent/backend/internal/models"
)

// mockDashboardImageService is a mock implementation of DashboardImageService
type mockDashboardImageService struct {
	image  *models.DashboardImage
	images []models.DashboardImage
	err    error
}

func (m *mockDashboardImageService) Create(ctx context.Context, request *models.CreateDashboardImageRequest) (*models.DashboardImage, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.image, nil
}

func (m *mockDashboardImageService) GetAll(ctx context.Context) ([]models.DashboardImage, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.images, nil
}

func (m *mockDashboardImageService) GetByExpertID(ctx context.Context, expertID string) ([]models.DashboardImage, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.images, nil
}

func (m *mockDashboardImageService) Update(ctx context.Context, id string, request *models.UpdateDashboardImageRequest) (*models.DashboardImage, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.image, nil
}

func (m *mockDashboardImageService) Delete(ctx context.Context, id string) (*models.DashboardImage, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.image, nil
}

func setupDashboardImageRouter(svc DashboardImageService) *chi.Mux {
	h := NewDashboardImageHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		h.RegisterRoutes(r)
	})
	return r
}

func TestDashboardImageHandler_Create(t *testing.T) {
	svc := &mockDashboardImageService{
		image: &models.DashboardImage{
			ID:       "64f1a2b3c4d5e6f7a8b9c0d1",
			ExpertID: "expert-1",
			ImageURL: "http://x/y.png",
			Type:     models.ImageTypeBlur,
			Name:     "A",
		},
	}
	router := setupDashboardImageRouter(svc)

	body := `{"expertId":"expert-1","imageurl":"http://x/y.png","type":"blur","name":"A"}`
	req := httptest.NewRequest(http.MethodPost, "/api/ra-dashboard/image", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string                `json:"message"`
		Data    models.DashboardImage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Dashboard image created successfully", resp.Message)
	assert.Equal(t, "expert-1", resp.Data.ExpertID)
}

func TestDashboardImageHandler_GetByExpertID(t *testing.T) {
	t.Run("unknown expert maps to 404", func(t *testing.T) {
		svc := &mockDashboardImageService{err: apperrors.NewNotFound("No images found for this expert.")}
		router := setupDashboardImageRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/ra-dashboard/images/expert-unknown", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "No images found for this expert.", resp.Message)
	})

	t.Run("success", func(t *testing.T) {
		svc := &mockDashboardImageService{
			images: []models.DashboardImage{
				{ID: "64f1a2b3c4d5e6f7a8b9c0d1", ExpertID: "expert-1"},
			},
		}
		router := setupDashboardImageRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/ra-dashboard/images/expert-1", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestDashboardImageHandler_Update(t *testing.T) {
	t.Run("empty field set maps to 400", func(t *testing.T) {
		svc := &mockDashboardImageService{err: apperrors.NewValidation("No fields provided for update.")}
		router := setupDashboardImageRouter(svc)

		req := httptest.NewRequest(http.MethodPatch, "/api/ra-dashboard/image/64f1a2b3c4d5e6f7a8b9c0d1", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "No fields provided for update.", resp.Message)
	})

	t.Run("success returns post-merge record", func(t *testing.T) {
		svc := &mockDashboardImageService{
			image: &models.DashboardImage{
				ID:   "64f1a2b3c4d5e6f7a8b9c0d1",
				Name: "Renamed",
			},
		}
		router := setupDashboardImageRouter(svc)

		req := httptest.NewRequest(http.MethodPatch, "/api/ra-dashboard/image/64f1a2b3c4d5e6f7a8b9c0d1", strings.NewReader(`{"name":"Renamed"}`))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Message string                `json:"message"`
			Data    models.DashboardImage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Dashboard image updated successfully", resp.Message)
		assert.Equal(t, "Renamed", resp.Data.Name)
	})
}
