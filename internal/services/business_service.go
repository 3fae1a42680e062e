package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizreview/backend/internal/metrics"
	"github.com/bizreview/backend/internal/models"
	"github.com/bizreview/backend/internal/pagination"
	"go.uber.org/zap"
)

// BusinessRepository is the interface that wraps methods for Businesses table data access
type BusinessRepository interface {
	// Method Create inserts a new business row.
	//
	// The business ID must already be set. A missing owner row is reported as a *models.ValidationError.
	Create(ctx context.Context, b *models.Business) error
	// Method GetByID retrieves a business by its ID.
	//
	// If no business exists models.ErrNotFound is returned together with "nil" value.
	GetByID(ctx context.Context, id models.ID) (*models.Business, error)
	// Method Count returns the total number of businesses.
	Count(ctx context.Context) (int, error)
	// Method List retrieves a window of businesses in creation order.
	//
	// An empty, non-nil slice is returned when offset is past the last row.
	List(ctx context.Context, limit, offset int) ([]models.Business, error)
	// Method ListByOwner retrieves every business owned by ownerID.
	ListByOwner(ctx context.Context, ownerID models.ID) ([]models.Business, error)
	// Method Update overwrites all stored columns of the business and returns the number of changed rows.
	Update(ctx context.Context, b *models.Business) (int64, error)
	// Method Delete removes the business and returns the number of deleted rows.
	//
	// Photos and reviews of the business are removed by the database cascade.
	Delete(ctx context.Context, id models.ID) (int64, error)
}

// businessesPath is the base path used to render pagination links
const businessesPath = "/businesses"

type businessService struct {
	repo       BusinessRepository
	photoRepo  PhotoRepository
	reviewRepo ReviewRepository
	logger     *zap.Logger
}

// NewBusinessService creates a new business service
func NewBusinessService(repo BusinessRepository, photoRepo PhotoRepository, reviewRepo ReviewRepository, logger *zap.Logger) *businessService {
	return &businessService{
		repo:       repo,
		photoRepo:  photoRepo,
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// List returns a page of businesses together with navigation links
func (s *businessService) List(ctx context.Context, page int) (*models.BusinessList, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("failed to count businesses", zap.Error(err))
		return nil, fmt.Errorf("failed to count businesses: %w", err)
	}

	p := pagination.Paginate(total, page, pagination.DefaultPageSize, businessesPath)

	businesses, err := s.repo.List(ctx, p.Size, p.Offset)
	if err != nil {
		s.logger.Error("failed to list businesses", zap.Error(err), zap.Int("page", p.Number))
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}

	return &models.BusinessList{
		Businesses: businesses,
		PageNumber: p.Number,
		TotalPages: p.LastPage,
		PageSize:   p.Size,
		TotalCount: total,
		Links:      p.Links,
	}, nil
}

// ListByOwner returns all businesses owned by ownerID.
// Only the owner themself or an admin may list them.
func (s *businessService) ListByOwner(ctx context.Context, identity models.Identity, ownerID models.ID) ([]models.Business, error) {
	if !identity.CanActAs(ownerID) {
		return nil, models.ErrForbidden
	}

	businesses, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("failed to list businesses by owner", zap.Error(err), zap.String("owner_id", ownerID.String()))
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	return businesses, nil
}

// Create stores a new business from the client payload and returns its ID
func (s *businessService) Create(ctx context.Context, identity models.Identity, payload models.Payload) (models.ID, error) {
	filtered := models.FilterFields(payload, models.BusinessClientFields)

	ownerID, _, err := filtered.ID(models.BusinessOwnerField)
	if err != nil {
		return "", err
	}
	if !identity.CanActAs(ownerID) {
		return "", models.ErrForbidden
	}

	business := &models.Business{}
	if err := filtered.ApplyTo(business); err != nil {
		return "", err
	}
	if err := validateStruct(business); err != nil {
		return "", err
	}

	business.ID = newID()
	if err := s.repo.Create(ctx, business); err != nil {
		return "", s.writeError("create", business.ID, err)
	}

	metrics.ResourcesCreatedTotal.WithLabelValues("business").Inc()
	s.logger.Info("business created", zap.String("business_id", business.ID.String()), zap.String("owner_id", business.OwnerID.String()))
	return business.ID, nil
}

// GetByID returns a business with its photos and reviews
func (s *businessService) GetByID(ctx context.Context, id models.ID) (*models.BusinessDetails, error) {
	business, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.readError("business", id, err)
	}

	photos, err := s.photoRepo.ListByBusiness(ctx, id)
	if err != nil {
		return nil, s.readError("photos", id, err)
	}

	reviews, err := s.reviewRepo.ListByBusiness(ctx, id)
	if err != nil {
		return nil, s.readError("reviews", id, err)
	}

	return &models.BusinessDetails{
		Business: *business,
		Photos:   photos,
		Reviews:  reviews,
	}, nil
}

// Update applies the allow-listed fields of payload to the stored business.
//
// Only the owner or an admin may update a business, and only an admin may move it to another owner.
func (s *businessService) Update(ctx context.Context, id models.ID, identity models.Identity, payload models.Payload) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return s.readError("business", id, err)
	}
	if !identity.CanActAs(existing.OwnerID) {
		return models.ErrForbidden
	}

	filtered := models.FilterFields(payload, models.BusinessClientFields)
	if !identity.IsAdmin && filtered.Has(models.BusinessOwnerField) {
		newOwner, _, err := filtered.ID(models.BusinessOwnerField)
		if err != nil || newOwner != existing.OwnerID {
			return models.ErrForbidden
		}
	}

	updated := *existing
	if err := filtered.ApplyTo(&updated); err != nil {
		return err
	}
	updated.ID = existing.ID
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

// Delete removes a business owned by the caller, or any business when the caller is an admin
func (s *businessService) Delete(ctx context.Context, id models.ID, identity models.Identity) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return s.readError("business", id, err)
	}
	if !identity.CanActAs(existing.OwnerID) {
		return models.ErrForbidden
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return s.writeError("delete", id, err)
	}
	if rows == 0 {
		return models.ErrDeleteFailed
	}

	s.logger.Info("business deleted", zap.String("business_id", id.String()))
	return nil
}

func (s *businessService) readError(what string, id models.ID, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return err
	}
	s.logger.Error("failed to read "+what, zap.Error(err), zap.String("business_id", id.String()))
	return fmt.Errorf("failed to get %s: %w", what, err)
}

func (s *businessService) writeError(op string, id models.ID, err error) error {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return err
	}
	s.logger.Error("failed to "+op+" business", zap.Error(err), zap.String("business_id", id.String()))
	return fmt.Errorf("failed to %s business: %w", op, err)
}
