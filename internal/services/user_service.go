package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bizreview/backend/internal/metrics"
	"github.com/bizreview/backend/internal/models"
	"go.uber.org/zap"
)

// UserRepository is the interface that wraps methods for Users table data access
type UserRepository interface {
	// Method Create inserts a new user row.
	//
	// The password must already be hashed. A duplicate email is reported as models.ErrEmailExists.
	Create(ctx context.Context, user *models.User) error
	// Method GetByID retrieves a user by ID, models.ErrNotFound when it does not exist.
	GetByID(ctx context.Context, id models.ID) (*models.User, error)
	// Method GetByEmail retrieves a user by normalized email, models.ErrNotFound when it does not exist.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Method ExistsByEmail reports whether a user with the given email is registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// PasswordHasher is the interface that wraps password hashing
type PasswordHasher interface {
	// Method Hash returns a salted hash of plaintext.
	Hash(plaintext string) (string, error)
	// Method Verify reports whether plaintext matches hash.
	Verify(plaintext, hash string) bool
}

// TokenIssuer is the interface that wraps bearer token creation
type TokenIssuer interface {
	// Method Issue returns a signed token bound to userID.
	Issue(userID string) (string, error)
}

type userService struct {
	repo   UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
	logger *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(repo UserRepository, hasher PasswordHasher, tokens TokenIssuer, logger *zap.Logger) *userService {
	return &userService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// CreateUser registers a new account.
//
// Only an admin caller may create another admin. The email is trimmed and lower-cased before it is
// checked for uniqueness and stored. The response never carries the password hash.
func (s *userService) CreateUser(ctx context.Context, caller models.Identity, payload models.Payload) (*models.CreateUserResponse, error) {
	req := &models.CreateUserRequest{}
	if err := models.FilterFields(payload, models.UserClientFields).ApplyTo(req); err != nil {
		return nil, err
	}

	if req.Admin && !caller.IsAdmin {
		return nil, models.ErrForbidden
	}

	req.Email = normalizeEmail(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, models.NewValidationError("missing required fields")
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("failed to check email", zap.Error(err))
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, models.ErrEmailExists
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	user := &models.User{
		ID:           newID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Admin:        req.Admin,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrEmailExists) {
			return nil, err
		}
		s.logger.Error("failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	metrics.ResourcesCreatedTotal.WithLabelValues("user").Inc()
	s.logger.Info("user created", zap.String("user_id", user.ID.String()), zap.Bool("admin", user.Admin))
	return &models.CreateUserResponse{ID: user.ID, Email: user.Email}, nil
}

// Login verifies credentials and issues a bearer token.
//
// An unknown email and a wrong password return the same models.ErrInvalidCredentials.
func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, models.NewValidationError("request body requires email and password")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, models.ErrInvalidCredentials
		}
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		s.logger.Error("failed to get user by email", zap.Error(err))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, models.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID.String())
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		s.logger.Error("failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return &models.LoginResponse{
		Token: token,
		User: models.LoginUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

// GetByID returns a user without the password hash. Only the user themself or an admin may read it.
func (s *userService) GetByID(ctx context.Context, identity models.Identity, id models.ID) (*models.User, error) {
	if !identity.CanActAs(id) {
		return nil, models.ErrForbidden
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("failed to get user", zap.Error(err), zap.String("user_id", id.String()))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Identity resolves the identity of an authenticated user.
// A user that no longer exists yields models.ErrUnauthenticated.
func (s *userService) Identity(ctx context.Context, userID models.ID) (models.Identity, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.Identity{}, models.ErrUnauthenticated
		}
		s.logger.Error("failed to resolve identity", zap.Error(err), zap.String("user_id", userID.String()))
		return models.Identity{}, fmt.Errorf("failed to resolve identity: %w", err)
	}
	return models.Identity{UserID: user.ID, IsAdmin: user.Admin}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
