package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/advisorycontent/backend/internal/apperrors"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// envelope is the uniform success response body
type envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// errorBody is the uniform error response body
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondSuccess sends an enveloped success response
func (h *BaseHandler) RespondSuccess(w http.ResponseWriter, status int, message string, data any) {
	h.RespondJSON(w, status, envelope{Message: message, Data: data})
}

// RespondError translates an operation error to its status code and sends
// the error envelope. Unexpected errors surface a generic message with the
// diagnostic preserved in the "error" field.
func (h *BaseHandler) RespondError(w http.ResponseWriter, err error) {
	h.RespondJSON(w, apperrors.StatusCode(err), errorBody{
		Message: apperrors.Message(err),
		Error:   err.Error(),
	})
}

// DecodeJSON decodes a request body into dst. A malformed body is reported
// as a ValidationError so it maps to 400.
func (h *BaseHandler) DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.NewValidation("Invalid request body.")
	}
	return nil
}
