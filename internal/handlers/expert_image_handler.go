package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/advisorycontent/backend/internal/apperrors"
	"github.com/advisorycontent/backend/internal/models"
)

// ExpertImageService is the interface that wraps methods for expert image operations
type ExpertImageService interface {
	// Method Create validates the request, checks image name uniqueness and
	// creates a new expert image using configured repository.
	//
	// A duplicate image name is returned as a ConflictError.
	Create(ctx context.Context, request *models.CreateExpertImageRequest) (*models.ExpertImage, error)
	// Method GetAll retrieve a list of all expert images using configured repository.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.ExpertImage, error)
	// Method GetByExpertID retrieve expert images owned by one expert using configured repository.
	//
	// If the expert owns no images, a NotFoundError is returned.
	GetByExpertID(ctx context.Context, expertID string) ([]models.ExpertImage, error)
	// Method Update applies a partial update and returns the post-merge record.
	//
	// If some error will occur during data update, the error will be returned together with "nil" value.
	Update(ctx context.Context, id string, request *models.UpdateExpertImageRequest) (*models.ExpertImage, error)
	// Method Delete deletes an expert image and returns its prior state.
	//
	// If some error will occur during data deletion, the error will be returned together with "nil" value.
	Delete(ctx context.Context, id string) (*models.ExpertImage, error)
}

// ExpertImageHandler handles HTTP requests for expert images
type ExpertImageHandler struct {
	BaseHandler
	service ExpertImageService
}

// NewExpertImageHandler creates a new expert image handler
func NewExpertImageHandler(svc ExpertImageService, logger *zap.Logger) *ExpertImageHandler {
	return &ExpertImageHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all expert image handler routes
// Note: This assumes the router is already scoped to /api
func (h *ExpertImageHandler) RegisterRoutes(r chi.Router) {
	r.Route("/expert", func(r chi.Router) {
		r.Post("/image", h.Create)
		r.Get("/images", h.GetAll)
		r.Get("/images/{expertId}", h.GetByExpertID)
		r.Patch("/image/{id}", h.Update)
		r.Delete("/image/{id}", h.Delete)
	})
}

// Create handles POST /expert/image
// @Summary Create an expert image
// @Description Create a new expert image with a globally unique image name
// @Tags expert
// @Accept json
// @Produce json
// @Param request body models.CreateExpertImageRequest true "Expert image data"
// @Success 201 {object} map[string]any "Expert image created successfully"
// @Failure 400 {object} map[string]string "Invalid request body or duplicate image name"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /expert/image [post]
func (h *ExpertImageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateExpertImageRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, err)
		return
	}

	image, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.Logger.Error("failed to create expert image", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusCreated, "Expert image created successfully", image)
}

// GetAll handles GET /expert/images
// @Summary Get all expert images
// @Description Get a list of all expert images
// @Tags expert
// @Produce json
// @Success 200 {object} map[string]any "List of expert images"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /expert/images [get]
func (h *ExpertImageHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.GetAll(r.Context())
	if err != nil {
		h.Logger.Error("failed to get expert images", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, "Expert images fetched successfully", images)
}

// GetByExpertID handles GET /expert/images/{expertId}
// @Summary Get expert images by expert
// @Description Get all expert images owned by one expert
// @Tags expert
// @Produce json
// @Param expertId path string true "Expert ID"
// @Success 200 {object} map[string]any "List of expert images"
// @Failure 404 {object} map[string]string "No images found for this expert"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /expert/images/{expertId} [get]
func (h *ExpertImageHandler) GetByExpertID(w http.ResponseWriter, r *http.Request) {
	expertID := chi.URLParam(r, "expertId")

	images, err := h.service.GetByExpertID(r.Context(), expertID)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			h.Logger.Error("failed to get expert images by expert", zap.Error(err))
		}
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, "Expert images fetched successfully", images)
}

// Update handles PATCH /expert/image/{id}
// @Summary Update an expert image
// @Description Update expert image fields (partial update)
// @Tags expert
// @Accept json
// @Produce json
// @Param id path string true "Expert image ID"
// @Param request body models.UpdateExpertImageRequest true "Fields to update"
// @Success 200 {object} map[string]any "Expert image updated successfully"
// @Failure 400 {object} map[string]string "Invalid request body, empty field set or duplicate image name"
// @Failure 404 {object} map[string]string "Expert image not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /expert/image/{id} [patch]
func (h *ExpertImageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateExpertImageRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, err)
		return
	}

	image, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.Logger.Error("failed to update expert image", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, "Expert image updated successfully", image)
}

// Delete handles DELETE /expert/image/{id}
// @Summary Delete an expert image
// @Description Delete an expert image by ID and return its prior state
// @Tags expert
// @Produce json
// @Param id path string true "Expert image ID"
// @Success 200 {object} map[string]any "Expert image deleted successfully"
// @Failure 404 {object} map[string]string "Expert image not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /expert/image/{id} [delete]
func (h *ExpertImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	image, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.Logger.Error("failed to delete expert image", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, "Expert image deleted successfully", image)
}
