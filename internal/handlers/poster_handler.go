package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/advisorycontent/backend/internal/models"
)

// AdminPosterService is the interface that wraps methods for admin poster operations
type AdminPosterService interface {
	// Method Create validates the request and creates a new admin poster using configured repository.
	//
	// If some error will occur during data creation, the error will be returned together with "nil" value.
	Create(ctx context.Context, request *models.CreateAdminPosterRequest) (*models.AdminPoster, error)
	// Method GetAll retrieve a list of all admin posters using configured repository.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.AdminPoster, error)
	// Method Update applies a partial update and returns the post-merge record.
	//
	// If some error will occur during data update, the error will be returned together with "nil" value.
	Update(ctx context.Context, id string, request *models.UpdateAdminPosterRequest) (*models.AdminPoster, error)
	// Method Delete deletes an admin poster and returns its prior state.
	//
	// If some error will occur during data deletion, the error will be returned together with "nil" value.
	Delete(ctx context.Context, id string) (*models.AdminPoster, error)
}

// AdminPosterHandler handles HTTP requests for admin posters
type AdminPosterHandler struct {
	BaseHandler
	service AdminPosterService
}

// NewAdminPosterHandler creates a new admin poster handler
func NewAdminPosterHandler(svc AdminPosterService, logger *zap.Logger) *AdminPosterHandler {
	return &AdminPosterHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all admin poster handler routes
// Note: This assumes the router is already scoped to /api
func (h *AdminPosterHandler) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Post("/poster", h.Create)
		r.Get("/posters", h.GetAll)
		r.Patch("/poster/{id}", h.Update)
		r.Delete("/poster/{id}", h.Delete)
	})
}

// Create handles POST /admin/poster
// @Summary Create an admin poster
// @Description Create a new admin poster with two image slots
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.CreateAdminPosterRequest true "Admin poster data"
// @Success 201 {object} map[string]any "Poster created successfully"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/poster [post]
func (h *AdminPosterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAdminPosterRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, err)
		return
	}

	poster, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.Logger.Error("failed to create admin poster", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusCreated, "Poster created successfully", poster)
}

// GetAll handles GET /admin/posters
// @Summary Get all admin posters
// @Description Get a list of all admin posters
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]any "List of admin posters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/posters [get]
func (h *AdminPosterHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	posters, err := h.service.GetAll(r.Context())
	if err != nil {
		h.Logger.Error("failed to get admin posters", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, "Posters fetched successfully", posters)
}

// Update handles PATCH /admin/poster/{id}
// @Summary Update an admin poster
// @Description Update admin poster fields (partial update)
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Admin poster ID"
// @Param request body models.UpdateAdminPosterRequest true "Fields to update"
// @Success 200 {object} map[string]any "Poster updated successfully"
// @Failure 400 {object} map[string]string "Invalid request body or empty field set"
// @Failure 404 {object} map[string]string "Poster not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/poster/{id} [patch]
func (h *AdminPosterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateAdminPosterRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, err)
		return
	}

	poster, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.Logger.Error("failed to update admin poster", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, "Poster updated successfully", poster)
}

// Delete handles DELETE /admin/poster/{id}
// @Summary Delete an admin poster
// @Description Delete an admin poster by ID and return its prior state
// @Tags admin
// @Produce json
// @Param id path string true "Admin poster ID"
// @Success 200 {object} map[string]any "Poster deleted successfully"
// @Failure 404 {object} map[string]string "Poster not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/poster/{id} [delete]
func (h *AdminPosterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	poster, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.Logger.Error("failed to delete admin poster", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, "Poster deleted successfully", poster)
}
