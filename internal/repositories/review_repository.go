package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bizreview/backend/internal/models"
)

// reviewRepository implements ReviewRepository
type reviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *sql.DB) *reviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create inserts a new review into the database
func (r *reviewRepository) Create(ctx context.Context, rv *models.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, business_id, dollars, stars, review)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, rv.ID, rv.UserID, rv.BusinessID, rv.Dollars, rv.Stars, rv.Review)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", translateWriteError(err))
	}

	return nil
}

// GetByID retrieves a review by ID
func (r *reviewRepository) GetByID(ctx context.Context, id models.ID) (*models.Review, error) {
	query := `
		SELECT id, user_id, business_id, dollars, stars, review
		FROM reviews
		WHERE id = ?
	`

	rv := &models.Review{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rv.ID,
		&rv.UserID,
		&rv.BusinessID,
		&rv.Dollars,
		&rv.Stars,
		&rv.Review,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return rv, nil
}

// ListByUser retrieves all reviews written by a user
func (r *reviewRepository) ListByUser(ctx context.Context, userID models.ID) ([]models.Review, error) {
	query := `
		SELECT id, user_id, business_id, dollars, stars, review
		FROM reviews
		WHERE user_id = ?
		ORDER BY created_at, id
	`

	return r.query(ctx, query, userID)
}

// ListByBusiness retrieves all reviews of a business
func (r *reviewRepository) ListByBusiness(ctx context.Context, businessID models.ID) ([]models.Review, error) {
	query := `
		SELECT id, user_id, business_id, dollars, stars, review
		FROM reviews
		WHERE business_id = ?
		ORDER BY created_at, id
	`

	return r.query(ctx, query, businessID)
}

func (r *reviewRepository) query(ctx context.Context, query string, args ...any) ([]models.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rv models.Review
		err := rows.Scan(
			&rv.ID,
			&rv.UserID,
			&rv.BusinessID,
			&rv.Dollars,
			&rv.Stars,
			&rv.Review,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return reviews, nil
}

// Update writes the mutable fields of a review and returns the number of affected rows
func (r *reviewRepository) Update(ctx context.Context, rv *models.Review) (int64, error) {
	query := `UPDATE reviews SET dollars = ?, stars = ?, review = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, rv.Dollars, rv.Stars, rv.Review, rv.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to update review: %w", translateWriteError(err))
	}

	return result.RowsAffected()
}

// Delete removes a review and returns the number of affected rows
func (r *reviewRepository) Delete(ctx context.Context, id models.ID) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete review: %w", err)
	}

	return result.RowsAffected()
}
