package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bizreview/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type userMocks struct {
	users      *mockUserService
	businesses *mockBusinessService
	photos     *mockPhotoService
	reviews    *mockReviewService
}

func newUserRouter(m userMocks, identity *models.Identity) chi.Router {
	optional := func(next http.Handler) http.Handler {
		if identity == nil {
			return next
		}
		return fakeAuth(identity)(next)
	}

	r := chi.NewRouter()
	NewUserHandler(m.users, m.businesses, m.photos, m.reviews, zap.NewNop()).RegisterRoutes(r, fakeAuth(identity), optional)
	return r
}

func newUserMocks() userMocks {
	return userMocks{
		users:      &mockUserService{},
		businesses: &mockBusinessService{},
		photos:     &mockPhotoService{},
		reviews:    &mockReviewService{},
	}
}

func TestUserHandler_Create(t *testing.T) {
	admin := &models.Identity{UserID: "u-9", IsAdmin: true}

	tests := []struct {
		name           string
		identity       *models.Identity
		err            error
		expectedStatus int
		expectedBody   string
		expectedCaller models.Identity
	}{
		{name: "anonymous signup", expectedStatus: http.StatusCreated, expectedBody: `{"id":"u-1","email":"alice@example.com"}`},
		{name: "admin signup passes identity", identity: admin, expectedStatus: http.StatusCreated, expectedCaller: *admin},
		{name: "admin requested by anonymous", err: models.ErrForbidden, expectedStatus: http.StatusForbidden},
		{name: "duplicate email", err: models.ErrEmailExists, expectedStatus: http.StatusBadRequest, expectedBody: `{"error":"email address already exists"}`},
		{name: "missing fields", err: models.NewValidationError("missing required fields"), expectedStatus: http.StatusBadRequest, expectedBody: `{"error":"missing required fields"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newUserMocks()
			m.users.err = tt.err
			if tt.err == nil {
				m.users.created = &models.CreateUserResponse{ID: "u-1", Email: "alice@example.com"}
			}
			w := httptest.NewRecorder()

			body := `{"name":"Alice","email":"alice@example.com","password":"secret"}`
			newUserRouter(m, tt.identity).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			assert.NotContains(t, w.Body.String(), "password")
			assert.Equal(t, tt.expectedCaller, m.users.caller)
		})
	}
}

func TestUserHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		svc            *mockUserService
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success",
			body:           `{"email":"alice@example.com","password":"secret"}`,
			svc:            &mockUserService{login: &models.LoginResponse{Token: "t", User: models.LoginUser{ID: "u-1", Name: "Alice", Email: "alice@example.com"}}},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"token":"t","user":{"id":"u-1","name":"Alice","email":"alice@example.com"}}`,
		},
		{
			name:           "bad credentials",
			body:           `{"email":"alice@example.com","password":"nope"}`,
			svc:            &mockUserService{err: models.ErrInvalidCredentials},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid authentication credentials"}`,
		},
		{
			name:           "missing fields",
			body:           `{}`,
			svc:            &mockUserService{err: models.NewValidationError("request body requires email and password")},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `email=alice`,
			svc:            &mockUserService{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newUserMocks()
			m.users = tt.svc
			w := httptest.NewRecorder()

			newUserRouter(m, nil).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestUserHandler_GetByID(t *testing.T) {
	self := &models.Identity{UserID: "u-1"}

	t.Run("self", func(t *testing.T) {
		m := newUserMocks()
		m.users.user = &models.User{ID: "u-1", Name: "Alice", Email: "alice@example.com", PasswordHash: "$2a$10$secret"}
		w := httptest.NewRecorder()

		newUserRouter(m, self).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/u-1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"u-1","name":"Alice","email":"alice@example.com","admin":false}`, w.Body.String())
	})

	t.Run("forbidden", func(t *testing.T) {
		m := newUserMocks()
		m.users.err = models.ErrForbidden
		w := httptest.NewRecorder()

		newUserRouter(m, self).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/u-2", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()

		newUserRouter(newUserMocks(), nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/u-1", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUserHandler_Collections(t *testing.T) {
	self := &models.Identity{UserID: "u-1"}

	tests := []struct {
		name           string
		path           string
		setup          func(m userMocks)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "businesses",
			path: "/users/u-1/businesses",
			setup: func(m userMocks) {
				m.businesses.owned = []models.Business{}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"businesses":[]}`,
		},
		{
			name: "photos",
			path: "/users/u-1/photos",
			setup: func(m userMocks) {
				m.photos.photos = []models.Photo{{ID: "p-1", UserID: "u-1", BusinessID: "b-1", URL: "https://x.example/1.jpg"}}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"photos":[{"id":"p-1","userId":"u-1","businessId":"b-1","url":"https://x.example/1.jpg"}]}`,
		},
		{
			name: "reviews",
			path: "/users/u-1/reviews",
			setup: func(m userMocks) {
				m.reviews.reviews = []models.Review{}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"reviews":[]}`,
		},
		{
			name: "reviews of another user",
			path: "/users/u-2/reviews",
			setup: func(m userMocks) {
				m.reviews.err = models.ErrForbidden
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"error":"unauthorized to access the specified resource"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newUserMocks()
			tt.setup(m)
			w := httptest.NewRecorder()

			newUserRouter(m, self).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
