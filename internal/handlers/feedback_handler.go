package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/advisorycontent/backend/internal/models"
)

// FeedbackService is the interface that wraps methods for feedback operations
type FeedbackService interface {
	// Method Create validates the request and creates a new feedback record using configured repository.
	//
	// If some error will occur during data creation, the error will be returned together with "nil" value.
	Create(ctx context.Context, request *models.CreateFeedbackRequest) (*models.Feedback, error)
	// Method GetAll retrieve a list of all feedback records using configured repository.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.Feedback, error)
	// Method Delete deletes a feedback record and returns its prior state.
	//
	// If some error will occur during data deletion, the error will be returned together with "nil" value.
	Delete(ctx context.Context, id string) (*models.Feedback, error)
}

// FeedbackHandler handles HTTP requests for user feedback
type FeedbackHandler struct {
	BaseHandler
	service FeedbackService
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(svc FeedbackService, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all feedback handler routes
// Note: This assumes the router is already scoped to /api
func (h *FeedbackHandler) RegisterRoutes(r chi.Router) {
	r.Post("/feedback", h.Create)
	r.Get("/feedbacks", h.GetAll)
	r.Delete("/feedback/{id}", h.Delete)
}

// Create handles POST /feedback
// @Summary Submit feedback
// @Description Create a new user feedback record with a 1..5 star rating
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body models.CreateFeedbackRequest true "Feedback data"
// @Success 201 {object} map[string]any "Feedback created successfully"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /feedback [post]
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFeedbackRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, err)
		return
	}

	feedback, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.Logger.Error("failed to create feedback", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusCreated, "Feedback created successfully", feedback)
}

// GetAll handles GET /feedbacks
// @Summary Get all feedback
// @Description Get a list of all feedback records
// @Tags feedback
// @Produce json
// @Success 200 {object} map[string]any "List of feedback records"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /feedbacks [get]
func (h *FeedbackHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	feedbacks, err := h.service.GetAll(r.Context())
	if err != nil {
		h.Logger.Error("failed to get feedbacks", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, "Feedbacks fetched successfully", feedbacks)
}

// Delete handles DELETE /feedback/{id}
// @Summary Delete feedback
// @Description Delete a feedback record by ID and return its prior state
// @Tags feedback
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 200 {object} map[string]any "Feedback deleted successfully"
// @Failure 404 {object} map[string]string "Feedback not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /feedback/{id} [delete]
func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	feedback, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.Logger.Error("failed to delete feedback", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, "Feedback deleted successfully", feedback)
}
