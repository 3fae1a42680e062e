package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/bizreview/backend/internal/middleware"
	"github.com/bizreview/backend/internal/models"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// RespondMessage sends a {"message": ...} JSON response
func (h *BaseHandler) RespondMessage(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"message": message})
}

// RespondServiceError translates an error returned by a service into an HTTP status.
//
// notFoundMsg replaces the generic message of models.ErrNotFound when it is not empty.
// Errors that are not part of the domain taxonomy are logged and reported as 500.
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		h.RespondError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, models.ErrNotFound):
		if notFoundMsg == "" {
			notFoundMsg = err.Error()
		}
		h.RespondError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, models.ErrForbidden):
		h.RespondError(w, http.StatusForbidden, models.ErrForbidden.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		h.RespondError(w, http.StatusUnauthorized, "Invalid authentication credentials")
	case errors.Is(err, models.ErrUnauthenticated):
		h.RespondError(w, http.StatusUnauthorized, models.ErrUnauthenticated.Error())
	case errors.Is(err, models.ErrUpdateFailed),
		errors.Is(err, models.ErrDeleteFailed),
		errors.Is(err, models.ErrEmailExists):
		h.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		h.Logger.Error("request failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// DecodeJSON decodes the request body into dst and writes a 400 or 413 response on failure.
// The boolean result reports whether decoding succeeded. An empty body decodes as nothing.
func (h *BaseHandler) DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		h.RespondError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return false
	}
	h.RespondError(w, http.StatusBadRequest, "invalid request body")
	return false
}

// decodePayload decodes the request body as a JSON object
func (h *BaseHandler) decodePayload(w http.ResponseWriter, r *http.Request) (models.Payload, bool) {
	payload := models.Payload{}
	if !h.DecodeJSON(w, r, &payload) {
		return nil, false
	}
	if payload == nil {
		payload = models.Payload{}
	}
	return payload, true
}
