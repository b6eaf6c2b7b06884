package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/advisorycontent/backend/internal/apperrors"
	"github.com/advisorycontent/backend/internal/models"
)

// MessageTemplateService is the interface that wraps methods for message template operations
type MessageTemplateService interface {
	// Method Create creates a new message template using configured repository.
	// No field is required.
	//
	// If some error will occur during data creation, the error will be returned together with "nil" value.
	Create(ctx context.Context, request *models.CreateMessageTemplateRequest) (*models.MessageTemplate, error)
	// Method GetAll retrieve a list of all message templates using configured repository.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.MessageTemplate, error)
	// Method GetByRaid retrieve message templates carrying the given owner tag.
	//
	// If no template carries the tag, a NotFoundError is returned.
	GetByRaid(ctx context.Context, raid string) ([]models.MessageTemplate, error)
	// Method Update applies a partial update and returns the post-merge record.
	//
	// If some error will occur during data update, the error will be returned together with "nil" value.
	Update(ctx context.Context, id string, request *models.UpdateMessageTemplateRequest) (*models.MessageTemplate, error)
	// Method Delete deletes a message template and returns its prior state.
	//
	// If some error will occur during data deletion, the error will be returned together with "nil" value.
	Delete(ctx context.Context, id string) (*models.MessageTemplate, error)
}

// MessageTemplateHandler handles HTTP requests for message templates
type MessageTemplateHandler struct {
	BaseHandler
	service MessageTemplateService
}

// NewMessageTemplateHandler creates a new message template handler
func NewMessageTemplateHandler(svc MessageTemplateService, logger *zap.Logger) *MessageTemplateHandler {
	return &MessageTemplateHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all message template handler routes.
// Templates are looked up by the owner tag "raid"; a raid is never a valid
// record identity, so GET by raid and PATCH/DELETE by id share the same
// path shape without ambiguity.
// Note: This assumes the router is already scoped to /api
func (h *MessageTemplateHandler) RegisterRoutes(r chi.Router) {
	r.Post("/template", h.Create)
	r.Get("/templates", h.GetAll)
	r.Get("/template/{raid}", h.GetByRaid)
	r.Patch("/template/{id}", h.Update)
	r.Delete("/template/{id}", h.Delete)
}

// Create handles POST /template
// @Summary Create a message template
// @Description Create a new message template; every field is optional
// @Tags template
// @Accept json
// @Produce json
// @Param request body models.CreateMessageTemplateRequest true "Message template data"
// @Success 201 {object} map[string]any "Template created successfully"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /template [post]
func (h *MessageTemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMessageTemplateRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, err)
		return
	}

	template, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.Logger.Error("failed to create message template", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusCreated, "Template created successfully", template)
}

// GetAll handles GET /templates
// @Summary Get all message templates
// @Description Get a list of all message templates
// @Tags template
// @Produce json
// @Success 200 {object} map[string]any "List of message templates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /templates [get]
func (h *MessageTemplateHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	templates, err := h.service.GetAll(r.Context())
	if err != nil {
		h.Logger.Error("failed to get message templates", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, "Templates fetched successfully", templates)
}

// GetByRaid handles GET /template/{raid}
// @Summary Get message templates by raid
// @Description Get all message templates carrying one owner tag
// @Tags template
// @Produce json
// @Param raid path string true "Owner tag"
// @Success 200 {object} map[string]any "List of message templates"
// @Failure 404 {object} map[string]string "No templates found for this raid"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /template/{raid} [get]
func (h *MessageTemplateHandler) GetByRaid(w http.ResponseWriter, r *http.Request) {
	raid := chi.URLParam(r, "raid")

	templates, err := h.service.GetByRaid(r.Context(), raid)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			h.Logger.Error("failed to get message templates by raid", zap.Error(err))
		}
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, "Templates fetched successfully", templates)
}

// Update handles PATCH /template/{id}
// @Summary Update a message template
// @Description Update message template fields (partial update)
// @Tags template
// @Accept json
// @Produce json
// @Param id path string true "Message template ID"
// @Param request body models.UpdateMessageTemplateRequest true "Fields to update"
// @Success 200 {object} map[string]any "Template updated successfully"
// @Failure 400 {object} map[string]string "Invalid request body or empty field set"
// @Failure 404 {object} map[string]string "Template not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /template/{id} [patch]
func (h *MessageTemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateMessageTemplateRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondError(w, err)
		return
	}

	template, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.Logger.Error("failed to update message template", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, "Template updated successfully", template)
}

// Delete handles DELETE /template/{id}
// @Summary Delete a message template
// @Description Delete a message template by ID and return its prior state
// @Tags template
// @Produce json
// @Param id path string true "Message template ID"
// @Success 200 {object} map[string]any "Template deleted successfully"
// @Failure 404 {object} map[string]string "Template not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /template/{id} [delete]
func (h *MessageTemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	template, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.Logger.Error("failed to delete message template", zap.Error(err))
		h.RespondError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, "Template deleted successfully", template)
}
