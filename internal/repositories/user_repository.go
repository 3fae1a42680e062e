package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bizreview/backend/internal/models"
)

// userRepository implements UserRepository
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

// Create inserts a new user into the database.
// A duplicate email is reported as models.ErrEmailExists.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, password, admin)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.Email, user.PasswordHash, user.Admin)
	if err != nil {
		if isDuplicateEntry(err) {
			return models.ErrEmailExists
		}
		return fmt.Errorf("failed to create user: %w", translateWriteError(err))
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id models.ID) (*models.User, error) {
	query := `
		SELECT id, name, email, password, admin
		FROM users
		WHERE id = ?
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password, admin
		FROM users
		WHERE email = ?
		LIMIT 1
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

// ExistsByEmail checks if a user exists with the given email
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}

func (r *userRepository) scanOne(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Admin,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
