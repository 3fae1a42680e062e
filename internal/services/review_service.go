package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizreview/backend/internal/metrics"
	"github.com/bizreview/backend/internal/models"
	"go.uber.org/zap"
)

// ReviewRepository is the interface that wraps methods for Reviews table data access
type ReviewRepository interface {
	// Method Create inserts a new review row.
	//
	// A missing user or business row, or a rating outside the stored range, is reported as a *models.ValidationError.
	Create(ctx context.Context, rv *models.Review) error
	// Method GetByID retrieves a review by its ID, models.ErrNotFound when it does not exist.
	GetByID(ctx context.Context, id models.ID) (*models.Review, error)
	// Method ListByUser retrieves every review written by userID.
	ListByUser(ctx context.Context, userID models.ID) ([]models.Review, error)
	// Method ListByBusiness retrieves every review of businessID.
	ListByBusiness(ctx context.Context, businessID models.ID) ([]models.Review, error)
	// Method Update stores the mutable columns (dollars, stars and text) and returns the number of changed rows.
	Update(ctx context.Context, rv *models.Review) (int64, error)
	// Method Delete removes the review and returns the number of deleted rows.
	Delete(ctx context.Context, id models.ID) (int64, error)
}

type reviewService struct {
	repo   ReviewRepository
	logger *zap.Logger
}

// NewReviewService creates a new review service
func NewReviewService(repo ReviewRepository, logger *zap.Logger) *reviewService {
	return &reviewService{
		repo:   repo,
		logger: logger,
	}
}

// ListByUser returns all reviews written by userID. Only the user themself or an admin may list them.
func (s *reviewService) ListByUser(ctx context.Context, identity models.Identity, userID models.ID) ([]models.Review, error) {
	if !identity.CanActAs(userID) {
		return nil, models.ErrForbidden
	}

	reviews, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list reviews by user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// Create stores a new review from the client payload and returns its ID
func (s *reviewService) Create(ctx context.Context, identity models.Identity, payload models.Payload) (models.ID, error) {
	filtered := models.FilterFields(payload, models.ReviewClientFields)

	userID, _, err := filtered.ID(models.UserOwnerField)
	if err != nil {
		return "", err
	}
	if !identity.CanActAs(userID) {
		return "", models.ErrForbidden
	}

	review := &models.Review{}
	if err := filtered.ApplyTo(review); err != nil {
		return "", err
	}
	if err := validateStruct(review); err != nil {
		return "", err
	}

	review.ID = newID()
	if err := s.repo.Create(ctx, review); err != nil {
		return "", s.writeError("create", review.ID, err)
	}
	metrics.ResourcesCreatedTotal.WithLabelValues("review").Inc()
	return review.ID, nil
}

// GetByID returns a single review
func (s *reviewService) GetByID(ctx context.Context, id models.ID) (*models.Review, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.readError(id, err)
	}
	return review, nil
}

// Update changes the ratings or text of a review. The author and the business never change.
func (s *reviewService) Update(ctx context.Context, id models.ID, identity models.Identity, payload models.Payload) error {
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
	filtered := models.FilterFields(payload, models.ReviewClientFields, models.UserOwnerField, models.BusinessRefField)
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

// Delete removes a review written by the caller, or any review when the caller is an admin
func (s *reviewService) Delete(ctx context.Context, id models.ID, identity models.Identity) error {
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

func (s *reviewService) readError(id models.ID, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return err
	}
	s.logger.Error("failed to get review", zap.Error(err), zap.String("review_id", id.String()))
	return fmt.Errorf("failed to get review: %w", err)
}

func (s *reviewService) writeError(op string, id models.ID, err error) error {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return err
	}
	s.logger.Error("failed to "+op+" review", zap.Error(err), zap.String("review_id", id.String()))
	return fmt.Errorf("failed to %s review: %w", op, err)
}
