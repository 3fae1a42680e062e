package handlers

import (
	"context"
	"net/http"

	"github.com/bizreview/backend/internal/middleware"
	"github.com/bizreview/backend/internal/models"
)

// mockBusinessService is a mock implementation of BusinessService
type mockBusinessService struct {
	list     *models.BusinessList
	details  *models.BusinessDetails
	owned    []models.Business
	id       models.ID
	err      error
	page     int
	identity models.Identity
	payload  models.Payload
}

func (m *mockBusinessService) List(ctx context.Context, page int) (*models.BusinessList, error) {
	m.page = page
	return m.list, m.err
}

func (m *mockBusinessService) Create(ctx context.Context, identity models.Identity, payload models.Payload) (models.ID, error) {
	m.identity, m.payload = identity, payload
	return m.id, m.err
}

func (m *mockBusinessService) GetByID(ctx context.Context, id models.ID) (*models.BusinessDetails, error) {
	return m.details, m.err
}

func (m *mockBusinessService) Update(ctx context.Context, id models.ID, identity models.Identity, payload models.Payload) error {
	m.identity, m.payload = identity, payload
	return m.err
}

func (m *mockBusinessService) Delete(ctx context.Context, id models.ID, identity models.Identity) error {
	m.identity = identity
	return m.err
}

func (m *mockBusinessService) ListByOwner(ctx context.Context, identity models.Identity, ownerID models.ID) ([]models.Business, error) {
	m.identity = identity
	return m.owned, m.err
}

// mockPhotoService is a mock implementation of PhotoService
type mockPhotoService struct {
	photo    *models.Photo
	photos   []models.Photo
	id       models.ID
	err      error
	identity models.Identity
	payload  models.Payload
}

func (m *mockPhotoService) Create(ctx context.Context, identity models.Identity, payload models.Payload) (models.ID, error) {
	m.identity, m.payload = identity, payload
	return m.id, m.err
}

func (m *mockPhotoService) GetByID(ctx context.Context, id models.ID) (*models.Photo, error) {
	return m.photo, m.err
}

func (m *mockPhotoService) Update(ctx context.Context, id models.ID, identity models.Identity, payload models.Payload) error {
	m.identity, m.payload = identity, payload
	return m.err
}

func (m *mockPhotoService) Delete(ctx context.Context, id models.ID, identity models.Identity) error {
	m.identity = identity
	return m.err
}

func (m *mockPhotoService) ListByUser(ctx context.Context, identity models.Identity, userID models.ID) ([]models.Photo, error) {
	m.identity = identity
	return m.photos, m.err
}

// mockReviewService is a mock implementation of ReviewService
type mockReviewService struct {
	review   *models.Review
	reviews  []models.Review
	id       models.ID
	err      error
	identity models.Identity
}

func (m *mockReviewService) Create(ctx context.Context, identity models.Identity, payload models.Payload) (models.ID, error) {
	m.identity = identity
	return m.id, m.err
}

func (m *mockReviewService) GetByID(ctx context.Context, id models.ID) (*models.Review, error) {
	return m.review, m.err
}

func (m *mockReviewService) Update(ctx context.Context, id models.ID, identity models.Identity, payload models.Payload) error {
	m.identity = identity
	return m.err
}

func (m *mockReviewService) Delete(ctx context.Context, id models.ID, identity models.Identity) error {
	m.identity = identity
	return m.err
}

func (m *mockReviewService) ListByUser(ctx context.Context, identity models.Identity, userID models.ID) ([]models.Review, error) {
	m.identity = identity
	return m.reviews, m.err
}

// mockUserService is a mock implementation of UserService
type mockUserService struct {
	created *models.CreateUserResponse
	login   *models.LoginResponse
	user    *models.User
	err     error
	caller  models.Identity
	req     *models.LoginRequest
}

func (m *mockUserService) CreateUser(ctx context.Context, caller models.Identity, payload models.Payload) (*models.CreateUserResponse, error) {
	m.caller = caller
	return m.created, m.err
}

func (m *mockUserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	m.req = req
	return m.login, m.err
}

func (m *mockUserService) GetByID(ctx context.Context, identity models.Identity, id models.ID) (*models.User, error) {
	m.caller = identity
	return m.user, m.err
}

// fakeAuth authenticates every request as identity, or rejects it with 401 when identity is nil
func fakeAuth(identity *models.Identity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if identity == nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(middleware.WithIdentity(r.Context(), *identity)))
		})
	}
}
