package services

import (
	"context"

	"github.com/bizreview/backend/internal/models"
)

// mockBusinessRepository is a mock implementation of BusinessRepository
type mockBusinessRepository struct {
	business   *models.Business
	businesses []models.Business
	count      int
	rows       int64
	err        error
	countErr   error
	writeErr   error

	created    *models.Business
	updated    *models.Business
	deletedID  models.ID
	listLimit  int
	listOffset int
}

func (m *mockBusinessRepository) Create(ctx context.Context, b *models.Business) error {
	m.created = b
	return m.writeErr
}

func (m *mockBusinessRepository) GetByID(ctx context.Context, id models.ID) (*models.Business, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.business == nil {
		return nil, models.ErrNotFound
	}
	b := *m.business
	return &b, nil
}

func (m *mockBusinessRepository) Count(ctx context.Context) (int, error) {
	return m.count, m.countErr
}

func (m *mockBusinessRepository) List(ctx context.Context, limit, offset int) ([]models.Business, error) {
	m.listLimit, m.listOffset = limit, offset
	if m.err != nil {
		return nil, m.err
	}
	return m.businesses, nil
}

func (m *mockBusinessRepository) ListByOwner(ctx context.Context, ownerID models.ID) ([]models.Business, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.businesses, nil
}

func (m *mockBusinessRepository) Update(ctx context.Context, b *models.Business) (int64, error) {
	m.updated = b
	return m.rows, m.writeErr
}

func (m *mockBusinessRepository) Delete(ctx context.Context, id models.ID) (int64, error) {
	m.deletedID = id
	return m.rows, m.writeErr
}

// mockPhotoRepository is a mock implementation of PhotoRepository
type mockPhotoRepository struct {
	photo    *models.Photo
	photos   []models.Photo
	rows     int64
	err      error
	writeErr error

	created   *models.Photo
	updated   *models.Photo
	deletedID models.ID
}

func (m *mockPhotoRepository) Create(ctx context.Context, p *models.Photo) error {
	m.created = p
	return m.writeErr
}

func (m *mockPhotoRepository) GetByID(ctx context.Context, id models.ID) (*models.Photo, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.photo == nil {
		return nil, models.ErrNotFound
	}
	p := *m.photo
	return &p, nil
}

func (m *mockPhotoRepository) ListByUser(ctx context.Context, userID models.ID) ([]models.Photo, error) {
	return m.photos, m.err
}

func (m *mockPhotoRepository) ListByBusiness(ctx context.Context, businessID models.ID) ([]models.Photo, error) {
	return m.photos, m.err
}

func (m *mockPhotoRepository) Update(ctx context.Context, p *models.Photo) (int64, error) {
	m.updated = p
	return m.rows, m.writeErr
}

func (m *mockPhotoRepository) Delete(ctx context.Context, id models.ID) (int64, error) {
	m.deletedID = id
	return m.rows, m.writeErr
}

// mockReviewRepository is a mock implementation of ReviewRepository
type mockReviewRepository struct {
	review   *models.Review
	reviews  []models.Review
	rows     int64
	err      error
	writeErr error

	created   *models.Review
	updated   *models.Review
	deletedID models.ID
}

func (m *mockReviewRepository) Create(ctx context.Context, rv *models.Review) error {
	m.created = rv
	return m.writeErr
}

func (m *mockReviewRepository) GetByID(ctx context.Context, id models.ID) (*models.Review, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.review == nil {
		return nil, models.ErrNotFound
	}
	rv := *m.review
	return &rv, nil
}

func (m *mockReviewRepository) ListByUser(ctx context.Context, userID models.ID) ([]models.Review, error) {
	return m.reviews, m.err
}

func (m *mockReviewRepository) ListByBusiness(ctx context.Context, businessID models.ID) ([]models.Review, error) {
	return m.reviews, m.err
}

func (m *mockReviewRepository) Update(ctx context.Context, rv *models.Review) (int64, error) {
	m.updated = rv
	return m.rows, m.writeErr
}

func (m *mockReviewRepository) Delete(ctx context.Context, id models.ID) (int64, error) {
	m.deletedID = id
	return m.rows, m.writeErr
}

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	user     *models.User
	exists   bool
	err      error
	writeErr error

	created *models.User
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	m.created = user
	return m.writeErr
}

func (m *mockUserRepository) GetByID(ctx context.Context, id models.ID) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.user == nil || m.user.ID != id {
		return nil, models.ErrNotFound
	}
	u := *m.user
	return &u, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.user == nil || m.user.Email != email {
		return nil, models.ErrNotFound
	}
	u := *m.user
	return &u, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.exists, nil
}

// mockHasher is a mock implementation of PasswordHasher that prefixes plaintext
type mockHasher struct {
	err error
}

func (m *mockHasher) Hash(plaintext string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "hashed:" + plaintext, nil
}

func (m *mockHasher) Verify(plaintext, hash string) bool {
	return hash == "hashed:"+plaintext
}

// mockTokenIssuer is a mock implementation of TokenIssuer
type mockTokenIssuer struct {
	token    string
	err      error
	issuedTo string
}

func (m *mockTokenIssuer) Issue(userID string) (string, error) {
	m.issuedTo = userID
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}
