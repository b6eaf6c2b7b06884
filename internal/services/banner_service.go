package services

import (
	"context"
	"fmt"

	"github.com/advisorycontent/backend/internal/models"
	"github.com/advisorycontent/backend/internal/validation"
)

// BannerRepository is the interface that wraps methods for banner data access
type BannerRepository interface {
	// Method Create inserts a new banner and assigns its identity.
	//
	// If some error will occur during data creation, the error will be returned.
	Create(ctx context.Context, banner *models.Banner) error
	// Method GetAll retrieves all banners.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.Banner, error)
	// Method GetByID retrieves a banner by its identity.
	//
	// If no record exists for the identity, a NotFoundError is returned.
	GetByID(ctx context.Context, id string) (*models.Banner, error)
	// Method DeleteByID deletes a banner by its identity.
	//
	// If no record exists for the identity, a NotFoundError is returned.
	DeleteByID(ctx context.Context, id string) error
}

// bannerService implements banner operations
type bannerService struct {
	repo BannerRepository
}

// NewBannerService creates a new banner service
func NewBannerService(repo BannerRepository) *bannerService {
	return &bannerService{
		repo: repo,
	}
}

// Create trims and validates the request, then inserts a new banner
func (s *bannerService) Create(ctx context.Context, request *models.CreateBannerRequest) (*models.Banner, error) {
	request.Trim()

	if err := validation.Struct(request); err != nil {
		return nil, err
	}

	banner := &models.Banner{
		Type:     models.BannerType(request.Type),
		ImageURL: request.ImageURL,
		Name:     request.Name,
	}

	if err := s.repo.Create(ctx, banner); err != nil {
		return nil, fmt.Errorf("failed to create banner: %w", err)
	}

	return s.repo.GetByID(ctx, banner.ID)
}

// GetAll retrieves all banners. An empty list is a valid result.
func (s *bannerService) GetAll(ctx context.Context) ([]models.Banner, error) {
	return s.repo.GetAll(ctx)
}

// GetByID retrieves a single banner by its identity
func (s *bannerService) GetByID(ctx context.Context, id string) (*models.Banner, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes a banner and returns its prior state
func (s *bannerService) Delete(ctx context.Context, id string) (*models.Banner, error) {
	banner, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return nil, err
	}

	return banner, nil
}
