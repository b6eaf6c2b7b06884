package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/advisorycontent/backend/internal/apperrors"
	"github.com/advisorycontent/backend/internal/models"
)

// DashboardImageService is the interface that wraps methods for dashboard image operations
type DashboardImageService interface {
	// Method Create validates the request and creates a new dashboard image using configured repository.
	//
	// If some error will occur during data creation, the error will be returned together with "nil" value.
	Create(ctx context.Context, request *models.CreateDashboardImageRequest) (*models.DashboardImage, error)
	// Method GetAll retrieve a list of all dashboard images using configured repository.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.DashboardImage, error)
	// Method GetByExpertID retrieve dashboard images owned by one expert using configured repository.
	//
	// If the expert owns no images, a NotFoundError is returned.
	GetByExpertID(ctx context.Context, expertID string) ([]models.DashboardImage, error)
	// Method Update applies a partial update and returns the post-merge record.
	//
	// If some error will occur during data update, the error will be returned together with "nil" value.
	Update(ctx context.Context, id string, request *models.UpdateDashboardImageRequest) (*models.DashboardImage, error)
	// Method Delete deletes a dashboard image and returns its prior state.
	//
	// If some error will occur during data deletion, the error will be returned together with "nil" value.
	Delete(ctx context.Context, id string) (*models.DashboardImage, error)
}

// DashboardImageHandler handles HTTP requests for dashboard images
type DashboardImageHandler struct {
	BaseHandler
	service DashboardImageService
}

// NewDashboardImageHandler creates a new dashboard image handler
func NewDashboardImageHandler(svc DashboardImageService, logger *zap.Logger) *DashboardImageHandler {
	return &DashboardImageHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all dashboard image handler routes
// Note: This assumes the router is already scoped to /api
func (h *DashboardImageHandler) RegisterRoutes(r chi.Router) {
	r.Route("/ra-dashboard", func(r chi.Router) {
		r.Post("/image", h.Create)
		r.Get("/images", h.GetAll)
		r.Get("/images/{expertId}", h.GetByExpertID)
		r.Patch("/image/{id}", h.Update)
		r.Delete("/image/{id}", h.Delete)
	})
}

// Create handles POST /ra-dashboard/image
// @Summary Create a dashboard image
// @Description Create a new expert dashboard image
// @Tags ra-dashboard
// @Accept json
// @Produce json
// @Param request body models.CreateDashboardImageRequest true "Dashboard image data"
// @Success 201 {object} map[string]any "Dashboard image created successfully"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ra-dashboard/image [post]
func (h *DashboardImageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDashboardImageRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, err)
		return
	}

	image, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.Logger.Error("failed to create dashboard image", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusCreated, "Dashboard image created successfully", image)
}

// GetAll handles GET /ra-dashboard/images
// @Summary Get all dashboard images
// @Description Get a list of all dashboard images
// @Tags ra-dashboard
// @Produce json
// @Success 200 {object} map[string]any "List of dashboard images"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ra-dashboard/images [get]
func (h *DashboardImageHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.GetAll(r.Context())
	if err != nil {
		h.Logger.Error("failed to get dashboard images", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, "Dashboard images fetched successfully", images)
}

// GetByExpertID handles GET /ra-dashboard/images/{expertId}
// @Summary Get dashboard images by expert
// @Description Get all dashboard images owned by one expert
// @Tags ra-dashboard
// @Produce json
// @Param expertId path string true "Expert ID"
// @Success 200 {object} map[string]any "List of dashboard images"
// @Failure 404 {object} map[string]string "No images found for this expert"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ra-dashboard/images/{expertId} [get]
func (h *DashboardImageHandler) GetByExpertID(w http.ResponseWriter, r *http.Request) {
	expertID := chi.URLParam(r, "expertId")

	images, err := h.service.GetByExpertID(r.Context(), expertID)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			h.Logger.Error("failed to get dashboard images by expert", zap.Error(err))
		}
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, "Dashboard images fetched successfully", images)
}

// Update handles PATCH /ra-dashboard/image/{id}
// @Summary Update a dashboard image
// @Description Update dashboard image fields (partial update)
// @Tags ra-dashboard
// @Accept json
// @Produce json
// @Param id path string true "Dashboard image ID"
// @Param request body models.UpdateDashboardImageRequest true "Fields to update"
// @Success 200 {object} map[string]any "Dashboard image updated successfully"
// @Failure 400 {object} map[string]string "Invalid request body or empty field set"
// @Failure 404 {object} map[string]string "Dashboard image not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ra-dashboard/image/{id} [patch]
func (h *DashboardImageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateDashboardImageRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, err)
		return
	}

	image, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.Logger.Error("failed to update dashboard image", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, "Dashboard image updated successfully", image)
}

// Delete handles DELETE /ra-dashboard/image/{id}
// @Summary Delete a dashboard image
// @Description Delete a dashboard image by ID and return its prior state
// @Tags ra-dashboard
// @Produce json
// @Param id path string true "Dashboard image ID"
// @Success 200 {object} map[string]any "Dashboard image deleted successfully"
// @Failure 404 {object} map[string]string "Dashboard image not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ra-dashboard/image/{id} [delete]
func (h *DashboardImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	image, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.Logger.Error("failed to delete dashboard image", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, "Dashboard image deleted successfully", image)
}
