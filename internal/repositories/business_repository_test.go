package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bizreview/backend/internal/models"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var businessRowColumns = []string{
	"id", "owner_id", "name", "address", "city", "state", "zip", "phone", "category", "subcategory", "website", "email",
}

func testBusiness() *models.Business {
	return &models.Business{
		ID:          "b-1",
		OwnerID:     "u-1",
		Name:        "Block 15",
		Address:     "300 SW Jefferson Ave.",
		City:        "Corvallis",
		State:       "OR",
		Zip:         "97333",
		Phone:       "541-758-2077",
		Category:    "Restaurant",
		Subcategory: "Brewpub",
		Website:     "http://block15.com",
	}
}

func businessRow(rows *sqlmock.Rows, b *models.Business) *sqlmock.Rows {
	return rows.AddRow(b.ID, b.OwnerID, b.Name, b.Address, b.City, b.State, b.Zip, b.Phone, b.Category, b.Subcategory, b.Website, b.Email)
}

func TestBusinessRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		validation    bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO businesses`).
					WithArgs("b-1", "u-1", "Block 15", "300 SW Jefferson Ave.", "Corvallis", "OR", "97333",
						"541-758-2077", "Restaurant", "Brewpub", "http://block15.com", "").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "unknown owner",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO businesses`).
					WillReturnError(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"})
			},
			expectedError: true,
			validation:    true,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO businesses`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()
			repo := NewBusinessRepository(db)

			tt.setupMock(mock)

			err := repo.Create(context.Background(), testBusiness())

			if tt.expectedError {
				require.Error(t, err)
				var ve *models.ValidationError
				assert.Equal(t, tt.validation, errors.As(err, &ve))
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBusinessRepository_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()
		repo := NewBusinessRepository(db)

		expected := testBusiness()
		mock.ExpectQuery(`SELECT id, owner_id, .* FROM businesses WHERE id = \?`).
			WithArgs("b-1").
			WillReturnRows(businessRow(sqlmock.NewRows(businessRowColumns), expected))

		b, err := repo.GetByID(context.Background(), "b-1")

		require.NoError(t, err)
		assert.Equal(t, expected, b)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()
		repo := NewBusinessRepository(db)

		mock.ExpectQuery(`SELECT id, owner_id, .* FROM businesses WHERE id = \?`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(businessRowColumns))

		b, err := repo.GetByID(context.Background(), "missing")

		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, b)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBusinessRepository_CountAndList(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewBusinessRepository(db)

	first := testBusiness()
	second := testBusiness()
	second.ID = "b-2"
	second.Name = "Robnett's Hardware"

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM businesses`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT .* FROM businesses\s+ORDER BY created_at, id\s+LIMIT \? OFFSET \?`).
		WithArgs(10, 10).
		WillReturnRows(businessRow(businessRow(sqlmock.NewRows(businessRowColumns), first), second))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, count)

	businesses, err := repo.List(context.Background(), 10, 10)
	require.NoError(t, err)
	require.Len(t, businesses, 2)
	assert.Equal(t, models.ID("b-2"), businesses[1].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRepository_ListByOwner(t *testing.T) {
	t.Run("empty result is an empty slice", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()
		repo := NewBusinessRepository(db)

		mock.ExpectQuery(`SELECT .* FROM businesses\s+WHERE owner_id = \?`).
			WithArgs("u-9").
			WillReturnRows(sqlmock.NewRows(businessRowColumns))

		businesses, err := repo.ListByOwner(context.Background(), "u-9")

		require.NoError(t, err)
		assert.NotNil(t, businesses)
		assert.Empty(t, businesses)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()
		repo := NewBusinessRepository(db)

		mock.ExpectQuery(`SELECT .* FROM businesses\s+WHERE owner_id = \?`).
			WithArgs("u-9").
			WillReturnError(errors.New("database error"))

		businesses, err := repo.ListByOwner(context.Background(), "u-9")

		assert.Error(t, err)
		assert.Nil(t, businesses)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBusinessRepository_UpdateAndDelete(t *testing.T) {
	tests := []struct {
		name         string
		setupMock    func(sqlmock.Sqlmock)
		run          func(r *businessRepository) (int64, error)
		expectedRows int64
		expectError  bool
	}{
		{
			name: "update success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE businesses\s+SET owner_id = \?`).
					WithArgs("u-1", "Block 15", "300 SW Jefferson Ave.", "Corvallis", "OR", "97333",
						"541-758-2077", "Restaurant", "Brewpub", "http://block15.com", "", "b-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			run: func(r *businessRepository) (int64, error) {
				return r.Update(context.Background(), testBusiness())
			},
			expectedRows: 1,
		},
		{
			name: "update affects nothing",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE businesses`).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			run: func(r *businessRepository) (int64, error) {
				return r.Update(context.Background(), testBusiness())
			},
			expectedRows: 0,
		},
		{
			name: "update error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE businesses`).WillReturnError(errors.New("database error"))
			},
			run: func(r *businessRepository) (int64, error) {
				return r.Update(context.Background(), testBusiness())
			},
			expectError: true,
		},
		{
			name: "delete success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM businesses WHERE id = \?`).
					WithArgs("b-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			run: func(r *businessRepository) (int64, error) {
				return r.Delete(context.Background(), "b-1")
			},
			expectedRows: 1,
		},
		{
			name: "delete error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM businesses`).WillReturnError(errors.New("database error"))
			},
			run: func(r *businessRepository) (int64, error) {
				return r.Delete(context.Background(), "b-1")
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()
			repo := NewBusinessRepository(db)

			tt.setupMock(mock)

			rows, err := tt.run(repo)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedRows, rows)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
