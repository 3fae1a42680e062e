package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bizreview/backend/internal/models"
)

// photoRepository implements PhotoRepository
type photoRepository struct {
	db *sql.DB
}

// NewPhotoRepository creates a new photo repository
func NewPhotoRepository(db *sql.DB) *photoRepository {
	return &photoRepository{
		db: db,
	}
}

// Create inserts a new photo into the database
func (r *photoRepository) Create(ctx context.Context, p *models.Photo) error {
	query := `
		INSERT INTO photos (id, user_id, business_id, url, caption)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, p.ID, p.UserID, p.BusinessID, p.URL, p.Caption)
	if err != nil {
		return fmt.Errorf("failed to create photo: %w", translateWriteError(err))
	}

	return nil
}

// GetByID retrieves a photo by ID
func (r *photoRepository) GetByID(ctx context.Context, id models.ID) (*models.Photo, error) {
	query := `
		SELECT id, user_id, business_id, url, caption
		FROM photos
		WHERE id = ?
	`

	p := &models.Photo{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.UserID, &p.BusinessID, &p.URL, &p.Caption)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}

	return p, nil
}

// ListByUser retrieves all photos uploaded by a user
func (r *photoRepository) ListByUser(ctx context.Context, userID models.ID) ([]models.Photo, error) {
	return r.list(ctx, "user_id", userID)
}

// ListByBusiness retrieves all photos of a business
func (r *photoRepository) ListByBusiness(ctx context.Context, businessID models.ID) ([]models.Photo, error) {
	return r.list(ctx, "business_id", businessID)
}

// list retrieves photos filtered by an equality predicate on column.
// column is always one of the constants above, never client input.
func (r *photoRepository) list(ctx context.Context, column string, value models.ID) ([]models.Photo, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, business_id, url, caption
		FROM photos
		WHERE %s = ?
		ORDER BY created_at, id
	`, column)

	rows, err := r.db.QueryContext(ctx, query, value)
	if err != nil {
		return nil, fmt.Errorf("failed to query photos: %w", err)
	}
	defer rows.Close()

	photos := []models.Photo{}
	for rows.Next() {
		var p models.Photo
		if err := rows.Scan(&p.ID, &p.UserID, &p.BusinessID, &p.URL, &p.Caption); err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		photos = append(photos, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return photos, nil
}

// Update writes the mutable fields of a photo and returns the number of affected rows
func (r *photoRepository) Update(ctx context.Context, p *models.Photo) (int64, error) {
	query := `UPDATE photos SET url = ?, caption = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, p.URL, p.Caption, p.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to update photo: %w", translateWriteError(err))
	}

	return result.RowsAffected()
}

// Delete removes a photo and returns the number of affected rows
func (r *photoRepository) Delete(ctx context.Context, id models.ID) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM photos WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete photo: %w", err)
	}

	return result.RowsAffected()
}
