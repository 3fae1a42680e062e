package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bizreview/backend/internal/middleware"
	"github.com/bizreview/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PhotoService is the interface that wraps methods for Photos business logic.
type PhotoService interface {
	// Method Create validates the payload and stores a new photo.
	//
	// "identity" must be the author (userId) unless it is an admin, otherwise models.ErrForbidden is returned.
	Create(ctx context.Context, identity models.Identity, payload models.Payload) (models.ID, error)
	// Method GetByID retrieves a photo, models.ErrNotFound when it does not exist.
	GetByID(ctx context.Context, id models.ID) (*models.Photo, error)
	// Method Update changes the url or caption of a photo.
	Update(ctx context.Context, id models.ID, identity models.Identity, payload models.Payload) error
	// Method Delete removes a photo.
	Delete(ctx context.Context, id models.ID, identity models.Identity) error
}

// PhotoHandler handles HTTP requests for photos
type PhotoHandler struct {
	BaseHandler
	service PhotoService
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(svc PhotoService, logger *zap.Logger) *PhotoHandler {
	return &PhotoHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all photo routes. Mutating routes are wrapped with requireAuth.
func (h *PhotoHandler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Route("/photos", func(r chi.Router) {
		r.Get("/{id}", h.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// Create handles POST /photos
// @Summary Add a photo
// @Tags photos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param photo body models.Photo true "Photo"
// @Success 201 {object} map[string]string "Identifier of the created photo"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 403 {object} map[string]string "Not allowed to post as this user"
// @Router /photos [post]
func (h *PhotoHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	id, err := h.service.Create(r.Context(), middleware.IdentityFromContext(r.Context()), payload)
	if err != nil {
		h.RespondServiceError(w, r, err, "")
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]models.ID{"id": id})
}

// GetByID handles GET /photos/{id}
// @Summary Get a photo
// @Tags photos
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {object} models.Photo
// @Failure 404 {object} map[string]string "Photo not found"
// @Router /photos/{id} [get]
func (h *PhotoHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))

	photo, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, r, err, photoNotFound(id))
		return
	}

	h.RespondJSON(w, http.StatusOK, photo)
}

// Update handles PUT /photos/{id}
// @Summary Update a photo
// @Description Updates url and caption. userId and businessId cannot be changed.
// @Tags photos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Photo ID"
// @Param photo body models.Photo true "Fields to update"
// @Success 200 {object} map[string]string "Photo updated"
// @Failure 400 {object} map[string]string "Invalid payload or update failed"
// @Failure 403 {object} map[string]string "Not the author"
// @Failure 404 {object} map[string]string "Photo not found"
// @Router /photos/{id} [put]
func (h *PhotoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))

	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	if err := h.service.Update(r.Context(), id, middleware.IdentityFromContext(r.Context()), payload); err != nil {
		h.RespondServiceError(w, r, err, photoNotFound(id))
		return
	}

	h.RespondMessage(w, http.StatusOK, "Photo updated")
}

// Delete handles DELETE /photos/{id}
// @Summary Delete a photo
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Photo ID"
// @Success 200 {object} map[string]string "Photo deleted"
// @Failure 400 {object} map[string]string "Delete failed"
// @Failure 403 {object} map[string]string "Not the author"
// @Failure 404 {object} map[string]string "Photo not found"
// @Router /photos/{id} [delete]
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))

	if err := h.service.Delete(r.Context(), id, middleware.IdentityFromContext(r.Context())); err != nil {
		h.RespondServiceError(w, r, err, photoNotFound(id))
		return
	}

	h.RespondMessage(w, http.StatusOK, fmt.Sprintf("Photo with id %s has been deleted.", id))
}

func photoNotFound(id models.ID) string {
	return fmt.Sprintf("Photo with id %s does not exist.", id)
}
