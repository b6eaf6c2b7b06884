package services

import (
	"context"
	"fmt"

	"github.com/advisorycontent/backend/internal/apperrors"
	"github.com/advisorycontent/backend/internal/models"
	"github.com/advisorycontent/backend/internal/validation"
)

// DashboardImageRepository is the interface that wraps methods for dashboard image data access
type DashboardImageRepository interface {
	// Method Create inserts a new dashboard image and assigns its identity.
	//
	// If some error will occur during data creation, the error will be returned.
	Create(ctx context.Context, image *models.DashboardImage) error
	// Method GetAll retrieves all dashboard images.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.DashboardImage, error)
	// Method GetByExpertID retrieves all dashboard images owned by the given expert.
	//
	// "expertID" parameter is the owner tag to filter by.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetByExpertID(ctx context.Context, expertID string) ([]models.DashboardImage, error)
	// Method GetByID retrieves a dashboard image by its identity.
	//
	// If no record exists for the identity, a NotFoundError is returned.
	GetByID(ctx context.Context, id string) (*models.DashboardImage, error)
	// Method Update overwrites only the supplied fields of a dashboard image.
	//
	// If some error will occur during data update, the error will be returned.
	Update(ctx context.Context, id string, request *models.UpdateDashboardImageRequest) error
	// Method DeleteByID deletes a dashboard image by its identity.
	//
	// If no record exists for the identity, a NotFoundError is returned.
	DeleteByID(ctx context.Context, id string) error
}

// dashboardImageService implements dashboard image operations
type dashboardImageService struct {
	repo DashboardImageRepository
}

// NewDashboardImageService creates a new dashboard image service
func NewDashboardImageService(repo DashboardImageRepository) *dashboardImageService {
	return &dashboardImageService{
		repo: repo,
	}
}

// Create validates the request and inserts a new dashboard image.
// The persisted record is returned with its identity and timestamps.
func (s *dashboardImageService) Create(ctx context.Context, request *models.CreateDashboardImageRequest) (*models.DashboardImage, error) {
	if err := validation.Struct(request); err != nil {
		return nil, err
	}

	image := &models.DashboardImage{
		ExpertID: request.ExpertID,
		ImageURL: request.ImageURL,
		Type:     models.ImageType(request.Type),
		Name:     request.Name,
	}

	if err := s.repo.Create(ctx, image); err != nil {
		return nil, fmt.Errorf("failed to create dashboard image: %w", err)
	}

	return s.repo.GetByID(ctx, image.ID)
}

// GetAll retrieves all dashboard images. An empty list is a valid result.
func (s *dashboardImageService) GetAll(ctx context.Context) ([]models.DashboardImage, error) {
	return s.repo.GetAll(ctx)
}

// GetByExpertID retrieves dashboard images for one expert.
// Zero matches is a NotFoundError for this per-owner listing.
func (s *dashboardImageService) GetByExpertID(ctx context.Context, expertID string) ([]models.DashboardImage, error) {
	images, err := s.repo.GetByExpertID(ctx, expertID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard images: %w", err)
	}

	if len(images) == 0 {
		return nil, apperrors.NewNotFound("No images found for this expert.")
	}

	return images, nil
}

// Update applies a partial update and returns the post-merge record
func (s *dashboardImageService) Update(ctx context.Context, id string, request *models.UpdateDashboardImageRequest) (*models.DashboardImage, error) {
	if request.IsEmpty() {
		return nil, apperrors.NewValidation("No fields provided for update.")
	}

	if err := validation.Struct(request); err != nil {
		return nil, err
	}

	// Existence check up front so a missing identity is a 404, not a silent no-op
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, request); err != nil {
		return nil, fmt.Errorf("failed to update dashboard image: %w", err)
	}

	return s.repo.GetByID(ctx, id)
}

// Delete removes a dashboard image and returns its prior state
func (s *dashboardImageService) Delete(ctx context.Context, id string) (*models.DashboardImage, error) {
	image, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return nil, err
	}

	return image, nil
}
