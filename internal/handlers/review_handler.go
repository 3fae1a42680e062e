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

// ReviewService is the interface that wraps methods for Reviews business logic.
type ReviewService interface {
	// Method Create validates the payload and stores a new review.
	//
	// "identity" must be the author (userId) unless it is an admin, otherwise models.ErrForbidden is returned.
	Create(ctx context.Context, identity models.Identity, payload models.Payload) (models.ID, error)
	// Method GetByID retrieves a review, models.ErrNotFound when it does not exist.
	GetByID(ctx context.Context, id models.ID) (*models.Review, error)
	// Method Update changes the ratings or text of a review.
	Update(ctx context.Context, id models.ID, identity models.Identity, payload models.Payload) error
	// Method Delete removes a review.
	Delete(ctx context.Context, id models.ID, identity models.Identity) error
}

// ReviewHandler handles HTTP requests for reviews
type ReviewHandler struct {
	BaseHandler
	service ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(svc ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all review routes. Mutating routes are wrapped with requireAuth.
func (h *ReviewHandler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Route("/reviews", func(r chi.Router) {
		r.Get("/{id}", h.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// Create handles POST /reviews
// @Summary Add a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param review body models.Review true "Review"
// @Success 201 {object} map[string]string "Identifier of the created review"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 403 {object} map[string]string "Not allowed to post as this user"
// @Router /reviews [post]
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
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

// GetByID handles GET /reviews/{id}
// @Summary Get a review
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} models.Review
// @Failure 404 {object} map[string]string "Review not found"
// @Router /reviews/{id} [get]
func (h *ReviewHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))

	review, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, r, err, reviewNotFound(id))
		return
	}

	h.RespondJSON(w, http.StatusOK, review)
}

// Update handles PUT /reviews/{id}
// @Summary Update a review
// @Description Updates dollars, stars and review text. userId and businessId cannot be changed.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param review body models.Review true "Fields to update"
// @Success 200 {object} map[string]string "Review updated"
// @Failure 400 {object} map[string]string "Invalid payload or update failed"
// @Failure 403 {object} map[string]string "Not the author"
// @Failure 404 {object} map[string]string "Review not found"
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))

	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	if err := h.service.Update(r.Context(), id, middleware.IdentityFromContext(r.Context()), payload); err != nil {
		h.RespondServiceError(w, r, err, reviewNotFound(id))
		return
	}

	h.RespondMessage(w, http.StatusOK, "Review updated")
}

// Delete handles DELETE /reviews/{id}
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} map[string]string "Review deleted"
// @Failure 400 {object} map[string]string "Delete failed"
// @Failure 403 {object} map[string]string "Not the author"
// @Failure 404 {object} map[string]string "Review not found"
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))

	if err := h.service.Delete(r.Context(), id, middleware.IdentityFromContext(r.Context())); err != nil {
		h.RespondServiceError(w, r, err, reviewNotFound(id))
		return
	}

	h.RespondMessage(w, http.StatusOK, fmt.Sprintf("Review with id %s has been deleted.", id))
}

func reviewNotFound(id models.ID) string {
	return fmt.Sprintf("Review with id %s does not exist.", id)
}
