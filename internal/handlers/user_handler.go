package handlers

import (
	"context"
	"net/http"

	"github.com/bizreview/backend/internal/middleware"
	"github.com/bizreview/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserService is the interface that wraps methods for user accounts business logic.
type UserService interface {
	// Method CreateUser registers a new account and returns its ID and normalized email.
	//
	// "caller" is the identity of the request; only an admin caller may create an admin account (models.ErrForbidden).
	// A duplicate email is reported as models.ErrEmailExists, missing or malformed fields as *models.ValidationError.
	CreateUser(ctx context.Context, caller models.Identity, payload models.Payload) (*models.CreateUserResponse, error)
	// Method Login verifies credentials and returns a bearer token.
	//
	// An unknown email and a wrong password both return models.ErrInvalidCredentials.
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	// Method GetByID retrieves a user without the password hash.
	//
	// Only the user themself or an admin may read it, otherwise models.ErrForbidden is returned.
	GetByID(ctx context.Context, identity models.Identity, id models.ID) (*models.User, error)
}

// UserBusinessLister is the interface that wraps listing the businesses of a user
type UserBusinessLister interface {
	ListByOwner(ctx context.Context, identity models.Identity, ownerID models.ID) ([]models.Business, error)
}

// UserPhotoLister is the interface that wraps listing the photos of a user
type UserPhotoLister interface {
	ListByUser(ctx context.Context, identity models.Identity, userID models.ID) ([]models.Photo, error)
}

// UserReviewLister is the interface that wraps listing the reviews of a user
type UserReviewLister interface {
	ListByUser(ctx context.Context, identity models.Identity, userID models.ID) ([]models.Review, error)
}

// UserHandler handles HTTP requests for users and the resources they own
type UserHandler struct {
	BaseHandler
	service    UserService
	businesses UserBusinessLister
	photos     UserPhotoLister
	reviews    UserReviewLister
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	svc UserService,
	businesses UserBusinessLister,
	photos UserPhotoLister,
	reviews UserReviewLister,
	logger *zap.Logger,
) *UserHandler {
	return &UserHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
		businesses:  businesses,
		photos:      photos,
		reviews:     reviews,
	}
}

// RegisterRoutes registers all user routes.
//
// Signup is wrapped with optionalAuth so an admin token can create admins, every read requires requireAuth.
func (h *UserHandler) RegisterRoutes(r chi.Router, requireAuth, optionalAuth func(http.Handler) http.Handler) {
	r.Route("/users", func(r chi.Router) {
		r.With(optionalAuth).Post("/", h.Create)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/{id}", h.GetByID)
			r.Get("/{id}/businesses", h.ListBusinesses)
			r.Get("/{id}/photos", h.ListPhotos)
			r.Get("/{id}/reviews", h.ListReviews)
		})
	})
}

// Create handles POST /users
// @Summary Sign up
// @Description Creates a user account. Setting admin=true requires an admin bearer token.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.CreateUserRequest true "User"
// @Success 201 {object} models.CreateUserResponse
// @Failure 400 {object} map[string]string "Missing fields, malformed email or email already registered"
// @Failure 403 {object} map[string]string "Only admins may create admins"
// @Router /users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	resp, err := h.service.CreateUser(r.Context(), middleware.IdentityFromContext(r.Context()), payload)
	if err != nil {
		h.RespondServiceError(w, r, err, "")
		return
	}

	h.RespondJSON(w, http.StatusCreated, resp)
}

// Login handles POST /users/login
// @Summary Log in
// @Description Verifies email and password and returns a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} map[string]string "Email or password missing"
// @Failure 401 {object} map[string]string "Invalid authentication credentials"
// @Router /users/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, r, err, "")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// GetByID handles GET /users/{id}
// @Summary Get a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 403 {object} map[string]string "Not this user and not an admin"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))

	user, err := h.service.GetByID(r.Context(), middleware.IdentityFromContext(r.Context()), id)
	if err != nil {
		h.RespondServiceError(w, r, err, "")
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}

// ListBusinesses handles GET /users/{id}/businesses
// @Summary List businesses owned by a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string][]models.Business
// @Failure 403 {object} map[string]string "Not this user and not an admin"
// @Router /users/{id}/businesses [get]
func (h *UserHandler) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))

	businesses, err := h.businesses.ListByOwner(r.Context(), middleware.IdentityFromContext(r.Context()), id)
	if err != nil {
		h.RespondServiceError(w, r, err, "")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string][]models.Business{"businesses": businesses})
}

// ListPhotos handles GET /users/{id}/photos
// @Summary List photos uploaded by a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string][]models.Photo
// @Failure 403 {object} map[string]string "Not this user and not an admin"
// @Router /users/{id}/photos [get]
func (h *UserHandler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))

	photos, err := h.photos.ListByUser(r.Context(), middleware.IdentityFromContext(r.Context()), id)
	if err != nil {
		h.RespondServiceError(w, r, err, "")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string][]models.Photo{"photos": photos})
}

// ListReviews handles GET /users/{id}/reviews
// @Summary List reviews written by a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string][]models.Review
// @Failure 403 {object} map[string]string "Not this user and not an admin"
// @Router /users/{id}/reviews [get]
func (h *UserHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))

	reviews, err := h.reviews.ListByUser(r.Context(), middleware.IdentityFromContext(r.Context()), id)
	if err != nil {
		h.RespondServiceError(w, r, err, "")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string][]models.Review{"reviews": reviews})
}
