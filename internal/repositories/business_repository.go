package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bizreview/backend/internal/models"
)

const businessColumns = `id, owner_id, name, address, city, state, zip, phone, category, subcategory, website, email`

// businessRepository implements BusinessRepository
type businessRepository struct {
	db *sql.DB
}

// NewBusinessRepository creates a new business repository
func NewBusinessRepository(db *sql.DB) *businessRepository {
	return &businessRepository{
		db: db,
	}
}

// Create inserts a new business into the database
func (r *businessRepository) Create(ctx context.Context, b *models.Business) error {
	query := `
		INSERT INTO businesses (` + businessColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.OwnerID, b.Name, b.Address, b.City, b.State,
		b.Zip, b.Phone, b.Category, b.Subcategory, b.Website, b.Email,
	)
	if err != nil {
		return fmt.Errorf("failed to create business: %w", translateWriteError(err))
	}

	return nil
}

// GetByID retrieves a business by ID
func (r *businessRepository) GetByID(ctx context.Context, id models.ID) (*models.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = ?`

	b, err := scanBusiness(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	return b, nil
}

// Count returns the total number of businesses
func (r *businessRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM businesses`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count businesses: %w", err)
	}

	return count, nil
}

// List retrieves one page of businesses ordered by creation time
func (r *businessRepository) List(ctx context.Context, limit, offset int) ([]models.Business, error) {
	query := `
		SELECT ` + businessColumns + `
		FROM businesses
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query businesses: %w", err)
	}
	defer rows.Close()

	return collectBusinesses(rows)
}

// ListByOwner retrieves all businesses owned by a user
func (r *businessRepository) ListByOwner(ctx context.Context, ownerID models.ID) ([]models.Business, error) {
	query := `
		SELECT ` + businessColumns + `
		FROM businesses
		WHERE owner_id = ?
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query businesses: %w", err)
	}
	defer rows.Close()

	return collectBusinesses(rows)
}

// Update writes all client fields of a business and returns the number of affected rows
func (r *businessRepository) Update(ctx context.Context, b *models.Business) (int64, error) {
	query := `
		UPDATE businesses
		SET owner_id = ?, name = ?, address = ?, city = ?, state = ?, zip = ?,
		    phone = ?, category = ?, subcategory = ?, website = ?, email = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		b.OwnerID, b.Name, b.Address, b.City, b.State, b.Zip,
		b.Phone, b.Category, b.Subcategory, b.Website, b.Email,
		b.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update business: %w", translateWriteError(err))
	}

	return result.RowsAffected()
}

// Delete removes a business and returns the number of affected rows
func (r *businessRepository) Delete(ctx context.Context, id models.ID) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM businesses WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete business: %w", err)
	}

	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBusiness(row rowScanner) (*models.Business, error) {
	b := &models.Business{}
	err := row.Scan(
		&b.ID,
		&b.OwnerID,
		&b.Name,
		&b.Address,
		&b.City,
		&b.State,
		&b.Zip,
		&b.Phone,
		&b.Category,
		&b.Subcategory,
		&b.Website,
		&b.Email,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func collectBusinesses(rows *sql.Rows) ([]models.Business, error) {
	businesses := []models.Business{}
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business: %w", err)
		}
		businesses = append(businesses, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return businesses, nil
}
