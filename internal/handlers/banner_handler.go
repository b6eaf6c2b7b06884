package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/advisorycontent/backend/internal/apperrors"
	"github.com/advisorycontent/backend/internal/models"
)

// BannerService is the interface that wraps methods for banner operations
type BannerService interface {
	// Method Create trims and validates the request, then creates a new banner using configured repository.
	//
	// If some error will occur during data creation, the error will be returned together with "nil" value.
	Create(ctx context.Context, request *models.CreateBannerRequest) (*models.Banner, error)
	// Method GetAll retrieve a list of all banners using configured repository.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.Banner, error)
	// Method GetByID retrieve a single banner by its identity using configured repository.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetByID(ctx context.Context, id string) (*models.Banner, error)
	// Method Delete deletes a banner and returns its prior state.
	//
	// If some error will occur during data deletion, the error will be returned together with "nil" value.
	Delete(ctx context.Context, id string) (*models.Banner, error)
}

// BannerHandler handles HTTP requests for banners
type BannerHandler struct {
	BaseHandler
	service BannerService
}

// NewBannerHandler creates a new banner handler
func NewBannerHandler(svc BannerService, logger *zap.Logger) *BannerHandler {
	return &BannerHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all banner handler routes
// Note: This assumes the router is already scoped to /api
func (h *BannerHandler) RegisterRoutes(r chi.Router) {
	r.Route("/banner", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.GetAll)
		r.Get("/{id}", h.GetByID)
		r.Delete("/{id}", h.Delete)
	})
}

// Create handles POST /banner
// @Summary Create a banner
// @Description Create a new site banner
// @Tags banner
// @Accept json
// @Produce json
// @Param request body models.CreateBannerRequest true "Banner data"
// @Success 201 {object} map[string]any "Banner created successfully"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /banner [post]
func (h *BannerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBannerRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, err)
		return
	}

	banner, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.Logger.Error("failed to create banner", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusCreated, "Banner created successfully", banner)
}

// GetAll handles GET /banner
// @Summary Get all banners
// @Description Get a list of all banners
// @Tags banner
// @Produce json
// @Success 200 {object} map[string]any "List of banners"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /banner [get]
func (h *BannerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	banners, err := h.service.GetAll(r.Context())
	if err != nil {
		h.Logger.Error("failed to get banners", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, "Banners fetched successfully", banners)
}

// GetByID handles GET /banner/{id}
// @Summary Get a banner
// @Description Get a single banner by ID
// @Tags banner
// @Produce json
// @Param id path string true "Banner ID (24 hex characters)"
// @Success 200 {object} map[string]any "Banner fetched successfully"
// @Failure 400 {object} map[string]string "Invalid banner ID format"
// @Failure 404 {object} map[string]string "Banner not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /banner/{id} [get]
func (h *BannerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !models.IsValidID(id) {
		h.RespondError(w, apperrors.NewValidation("Invalid banner ID format."))
		return
	}

	banner, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			h.Logger.Error("failed to get banner", zap.Error(err))
		}
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, "Banner fetched successfully", banner)
}

// Delete handles DELETE /banner/{id}
// @Summary Delete a banner
// @Description Delete a banner by ID and return its prior state
// @Tags banner
// @Produce json
// @Param id path string true "Banner ID (24 hex characters)"
// @Success 200 {object} map[string]any "Banner deleted successfully"
// @Failure 400 {object} map[string]string "Invalid banner ID format"
// @Failure 404 {object} map[string]string "Banner not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /banner/{id} [delete]
func (h *BannerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !models.IsValidID(id) {
		h.RespondError(w, apperrors.NewValidation("Invalid banner ID format."))
		return
	}

	banner, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.Logger.Error("failed to delete banner", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, "Banner deleted successfully", banner)
}
