package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizreview/backend/internal/metrics"
	"github.com/bizreview/backend/internal/models"
	"go.uber.org/zap"
)

// PhotoRepository is the interface that wraps methods for Photos table data access
type PhotoRepository interface {
	// Method Create inserts a new photo row.
	//
	// A missing user or business row is reported as a *models.ValidationError.
	Create(ctx context.Context, p *models.Photo) error
	// Method GetByID retrieves a photo by its ID, models.ErrNotFound when it does not exist.
	GetByID(ctx context.Context, id models.ID) (*models.Photo, error)
	// Method ListByUser retrieves every photo uploaded by userID.
	ListByUser(ctx context.Context, userID models.ID) ([]models.Photo, error)
	// Method ListByBusiness retrieves every photo of businessID.
	ListByBusiness(ctx context.Context, businessID models.ID) ([]models.Photo, error)
	// Method Update stores the mutable columns (url and caption) and returns the number of changed rows.
	Update(ctx context.Context, p *models.Photo) (int64, error)
	// Method Delete removes the photo and returns the number of deleted rows.
	Delete(ctx context.Context, id models.ID) (int64, error)
}

type photoService struct {
	repo   PhotoRepository
	logger *zap.Logger
}

// NewPhotoService creates a new photo service
func NewPhotoService(repo PhotoRepository, logger *zap.Logger) *photoService {
	return &photoService{
		repo:   repo,
		logger: logger,
	}
}

// ListByUser returns all photos uploaded by userID. Only the user themself or an admin may list them.
func (s *photoService) ListByUser(ctx context.Context, identity models.Identity, userID models.ID) ([]models.Photo, error) {
	if !identity.CanActAs(userID) {
		return nil, models.ErrForbidden
	}

	photos, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list photos by user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}

// Create stores a new photo from the client payload and returns its ID
func (s *photoService) Create(ctx context.Context, identity models.Identity, payload models.Payload) (models.ID, error) {
	filtered := models.FilterFields(payload, models.PhotoClientFields)

	userID, _, err := filtered.ID(models.UserOwnerField)
	if err != nil {
		return "", err
	}
	if !identity.CanActAs(userID) {
		return "", models.ErrForbidden
	}

	photo := &models.Photo{}
	if err := filtered.ApplyTo(photo); err != nil {
		return "", err
	}
	if err := validateStruct(photo); err != nil {
		return "", err
	}

	photo.ID = newID()
	if err := s.repo.Create(ctx, photo); err != nil {
		return "", s.writeError("create", photo.ID, err)
	}
	metrics.ResourcesCreatedTotal.WithLabelValues("photo").Inc()
	return photo.ID, nil
}

// GetByID returns a single photo
func (s *photoService) GetByID(ctx context.Context, id models.ID) (*models.Photo, error) {
	photo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.readError(id, err)
	}
	return photo, nil
}

// Update changes the url or caption of a photo.
//
// The author and the business of a photo never change. A non-admin sending a different userId is rejected.
func (s *photoService) Update(ctx context.Context, id models.ID, identity models.Identity, payload models.Payload) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return s.readError(id, err)
	}
	if !identity.CanActAs(existing.UserID) {
		return models.ErrForbidden
	}
	if err := checkOwnerUnchanged(identity, payload, existing.UserID); err != nil {
		return err
	}

	updated := *existing
	filtered := models.FilterFields(payload, models.PhotoClientFields, models.UserOwnerField, models.BusinessRefField)
	if err := filtered.ApplyTo(&updated); err != nil {
		return err
	}
	if err := validateStruct(&updated); err != nil {
		return err
	}

	rows, err := s.repo.Update(ctx, &updated)
	if err != nil {
		return s.writeError("update", id, err)
	}
	if rows == 0 {
		return models.ErrUpdateFailed
	}
	return nil
}

// Delete removes a photo uploaded by the caller, or any photo when the caller is an admin
func (s *photoService) Delete(ctx context.Context, id models.ID, identity models.Identity) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return s.readError(id, err)
	}
	if !identity.CanActAs(existing.UserID) {
		return models.ErrForbidden
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return s.writeError("delete", id, err)
	}
	if rows == 0 {
		return models.ErrDeleteFailed
	}
	return nil
}

func (s *photoService) readError(id models.ID, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return err
	}
	s.logger.Error("failed to get photo", zap.Error(err), zap.String("photo_id", id.String()))
	return fmt.Errorf("failed to get photo: %w", err)
}

func (s *photoService) writeError(op string, id models.ID, err error) error {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return err
	}
	s.logger.Error("failed to "+op+" photo", zap.Error(err), zap.String("photo_id", id.String()))
	return fmt.Errorf("failed to %s photo: %w", op, err)
}

// checkOwnerUnchanged rejects a non-admin payload that names a different author than owner
func checkOwnerUnchanged(identity models.Identity, payload models.Payload, owner models.ID) error {
	if identity.IsAdmin || !payload.Has(models.UserOwnerField) {
		return nil
	}
	userID, _, err := payload.ID(models.UserOwnerField)
	if err != nil || userID != owner {
		return models.ErrForbidden
	}
	return nil
}
