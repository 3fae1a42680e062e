package services

import (
	"context"
	"errors"
	"testing"

	"github.com/bizreview/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func storedPhoto() *models.Photo {
	return &models.Photo{ID: "p-1", UserID: "u-1", BusinessID: "b-1", URL: "https://img.example.com/1.jpg", Caption: "front"}
}

func TestPhotoService_Create(t *testing.T) {
	tests := []struct {
		name               string
		identity           models.Identity
		body               string
		writeErr           error
		expectedError      error
		expectedValidation bool
	}{
		{name: "author", identity: owner, body: `{"userId":"u-1","businessId":"b-1","url":"https://img.example.com/1.jpg"}`},
		{name: "admin for another user", identity: admin, body: `{"userId":"u-1","businessId":"b-1","url":"https://img.example.com/1.jpg"}`},
		{name: "other user", identity: stranger, body: `{"userId":"u-1","businessId":"b-1","url":"https://img.example.com/1.jpg"}`, expectedError: models.ErrForbidden},
		{name: "missing url", identity: owner, body: `{"userId":"u-1","businessId":"b-1"}`, expectedValidation: true},
		{name: "malformed url", identity: owner, body: `{"userId":"u-1","businessId":"b-1","url":"not a url"}`, expectedValidation: true},
		{name: "unknown business", identity: owner, body: `{"userId":"u-1","businessId":"b-x","url":"https://img.example.com/1.jpg"}`, writeErr: models.NewValidationError("referenced resource does not exist"), expectedValidation: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubID(t, "p-new")
			repo := &mockPhotoRepository{writeErr: tt.writeErr}
			svc := NewPhotoService(repo, zap.NewNop())

			id, err := svc.Create(context.Background(), tt.identity, payload(t, tt.body))

			switch {
			case tt.expectedValidation:
				var ve *models.ValidationError
				assert.ErrorAs(t, err, &ve)
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, repo.created)
			default:
				require.NoError(t, err)
				assert.Equal(t, models.ID("p-new"), id)
			}
		})
	}
}

func TestPhotoService_GetByID(t *testing.T) {
	svc := NewPhotoService(&mockPhotoRepository{photo: storedPhoto()}, zap.NewNop())

	photo, err := svc.GetByID(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "front", photo.Caption)

	_, err = NewPhotoService(&mockPhotoRepository{}, zap.NewNop()).GetByID(context.Background(), "p-x")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = NewPhotoService(&mockPhotoRepository{err: errors.New("db down")}, zap.NewNop()).GetByID(context.Background(), "p-1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrNotFound)
}

func TestPhotoService_Update(t *testing.T) {
	tests := []struct {
		name               string
		identity           models.Identity
		stored             *models.Photo
		body               string
		rows               int64
		expectedError      error
		expectedValidation bool
	}{
		{name: "caption only", identity: owner, stored: storedPhoto(), body: `{"caption":"back"}`, rows: 1},
		{name: "business change is ignored", identity: owner, stored: storedPhoto(), body: `{"businessId":"b-2","caption":"back"}`, rows: 1},
		{name: "same author is allowed", identity: owner, stored: storedPhoto(), body: `{"userId":"u-1","caption":"back"}`, rows: 1},
		{name: "author change by owner", identity: owner, stored: storedPhoto(), body: `{"userId":"u-2"}`, expectedError: models.ErrForbidden},
		{name: "author change by admin is ignored", identity: admin, stored: storedPhoto(), body: `{"userId":"u-2","caption":"back"}`, rows: 1},
		{name: "other user", identity: stranger, stored: storedPhoto(), body: `{"caption":"back"}`, expectedError: models.ErrForbidden},
		{name: "not found", identity: owner, body: `{"caption":"back"}`, expectedError: models.ErrNotFound},
		{name: "invalid url", identity: owner, stored: storedPhoto(), body: `{"url":"nope"}`, expectedValidation: true},
		{name: "identical caption changes nothing", identity: owner, stored: storedPhoto(), body: `{"caption":"front"}`, rows: 0, expectedError: models.ErrUpdateFailed},
		{name: "no rows affected", identity: owner, stored: storedPhoto(), body: `{"caption":"back"}`, rows: 0, expectedError: models.ErrUpdateFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockPhotoRepository{photo: tt.stored, rows: tt.rows}
			svc := NewPhotoService(repo, zap.NewNop())

			err := svc.Update(context.Background(), "p-1", tt.identity, payload(t, tt.body))

			switch {
			case tt.expectedValidation:
				var ve *models.ValidationError
				assert.ErrorAs(t, err, &ve)
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
			default:
				require.NoError(t, err)
				require.NotNil(t, repo.updated)
				assert.Equal(t, "back", repo.updated.Caption)
				assert.Equal(t, models.ID("u-1"), repo.updated.UserID)
				assert.Equal(t, models.ID("b-1"), repo.updated.BusinessID)
			}
		})
	}
}

func TestPhotoService_Delete(t *testing.T) {
	tests := []struct {
		name          string
		identity      models.Identity
		stored        *models.Photo
		rows          int64
		expectedError error
	}{
		{name: "author", identity: owner, stored: storedPhoto(), rows: 1},
		{name: "admin", identity: admin, stored: storedPhoto(), rows: 1},
		{name: "other user", identity: stranger, stored: storedPhoto(), expectedError: models.ErrForbidden},
		{name: "not found", identity: owner, expectedError: models.ErrNotFound},
		{name: "no rows affected", identity: owner, stored: storedPhoto(), expectedError: models.ErrDeleteFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockPhotoRepository{photo: tt.stored, rows: tt.rows}
			svc := NewPhotoService(repo, zap.NewNop())

			err := svc.Delete(context.Background(), "p-1", tt.identity)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.ID("p-1"), repo.deletedID)
		})
	}
}

func TestPhotoService_ListByUser(t *testing.T) {
	repo := &mockPhotoRepository{photos: []models.Photo{*storedPhoto()}}
	svc := NewPhotoService(repo, zap.NewNop())

	photos, err := svc.ListByUser(context.Background(), owner, "u-1")
	require.NoError(t, err)
	assert.Len(t, photos, 1)

	_, err = svc.ListByUser(context.Background(), stranger, "u-1")
	assert.ErrorIs(t, err, models.ErrForbidden)

	_, err = svc.ListByUser(context.Background(), admin, "u-1")
	assert.NoError(t, err)
}
