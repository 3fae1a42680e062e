package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bizreview/backend/internal/middleware"
	"github.com/bizreview/backend/internal/models"
	"github.com/bizreview/backend/internal/pagination"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BusinessService is the interface that wraps methods for Businesses business logic.
type BusinessService interface {
	// Method List retrieves a single page of businesses.
	//
	// "page" parameter is 1-based; values below 1 are treated as 1 and pages past the end are empty.
	List(ctx context.Context, page int) (*models.BusinessList, error)
	// Method Create validates the payload and stores a new business.
	//
	// "identity" must own the business (ownerId) unless it is an admin, otherwise models.ErrForbidden is returned.
	// Invalid payloads are reported as *models.ValidationError.
	Create(ctx context.Context, identity models.Identity, payload models.Payload) (models.ID, error)
	// Method GetByID retrieves a business together with its photos and reviews.
	//
	// If the business does not exist models.ErrNotFound is returned.
	GetByID(ctx context.Context, id models.ID) (*models.BusinessDetails, error)
	// Method Update applies the payload to a stored business.
	//
	// Please reference Create method for more information about identity and error values.
	// models.ErrUpdateFailed is returned when nothing was written.
	Update(ctx context.Context, id models.ID, identity models.Identity, payload models.Payload) error
	// Method Delete removes a business.
	//
	// models.ErrDeleteFailed is returned when nothing was removed.
	Delete(ctx context.Context, id models.ID, identity models.Identity) error
}

// BusinessHandler handles HTTP requests for businesses
type BusinessHandler struct {
	BaseHandler
	service BusinessService
}

// NewBusinessHandler creates a new business handler
func NewBusinessHandler(svc BusinessService, logger *zap.Logger) *BusinessHandler {
	return &BusinessHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all business routes. Mutating routes are wrapped with requireAuth.
func (h *BusinessHandler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Route("/businesses", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// List handles GET /businesses
// @Summary List businesses
// @Description Returns one page of businesses with HATEOAS navigation links. Page size is 10.
// @Tags businesses
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} models.BusinessList
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /businesses [get]
func (h *BusinessHandler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.ParsePage(r.URL.Query().Get("page"))

	list, err := h.service.List(r.Context(), page)
	if err != nil {
		h.RespondServiceError(w, r, err, "")
		return
	}

	h.RespondJSON(w, http.StatusOK, list)
}

// Create handles POST /businesses
// @Summary Create a business
// @Description Creates a business owned by ownerId. Only the owner themself or an admin may create it.
// @Tags businesses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param business body models.Business true "Business"
// @Success 201 {object} map[string]string "Identifier of the created business"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 403 {object} map[string]string "Not allowed to create a business for this owner"
// @Router /businesses [post]
func (h *BusinessHandler) Create(w http.ResponseWriter, r *http.Request) {
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

// GetByID handles GET /businesses/{id}
// @Summary Get a business
// @Description Returns a business together with all its photos and reviews
// @Tags businesses
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} models.BusinessDetails
// @Failure 404 {object} map[string]string "Business not found"
// @Router /businesses/{id} [get]
func (h *BusinessHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))

	business, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, r, err, businessNotFound(id))
		return
	}

	h.RespondJSON(w, http.StatusOK, business)
}

// Update handles PUT /businesses/{id}
// @Summary Update a business
// @Description Updates the fields present in the body. Only an admin may change ownerId.
// @Tags businesses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param business body models.Business true "Fields to update"
// @Success 200 {object} map[string]string "Business updated"
// @Failure 400 {object} map[string]string "Invalid payload or update failed"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Business not found"
// @Router /businesses/{id} [put]
func (h *BusinessHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))

	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	if err := h.service.Update(r.Context(), id, middleware.IdentityFromContext(r.Context()), payload); err != nil {
		h.RespondServiceError(w, r, err, businessNotFound(id))
		return
	}

	h.RespondMessage(w, http.StatusOK, "Business updated")
}

// Delete handles DELETE /businesses/{id}
// @Summary Delete a business
// @Description Deletes a business with its photos and reviews
// @Tags businesses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Success 200 {object} map[string]string "Business deleted"
// @Failure 400 {object} map[string]string "Delete failed"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Business not found"
// @Router /businesses/{id} [delete]
func (h *BusinessHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))

	if err := h.service.Delete(r.Context(), id, middleware.IdentityFromContext(r.Context())); err != nil {
		h.RespondServiceError(w, r, err, businessNotFound(id))
		return
	}

	h.RespondMessage(w, http.StatusOK, "Business deleted")
}

func businessNotFound(id models.ID) string {
	return fmt.Sprintf("Business with id %s does not exist.", id)
}
