package services

import (
	"context"
	"fmt"

	"github.com/advisorycontent/backend/internal/apperrors"
	"github.com/advisorycontent/backend/internal/models"
	"github.com/advisorycontent/backend/internal/validation"
)

// AdminPosterRepository is the interface that wraps methods for admin poster data access
type AdminPosterRepository interface {
	// Method Create inserts a new admin poster and assigns its identity.
	//
	// If some error will occur during data creation, the error will be returned.
	Create(ctx context.Context, poster *models.AdminPoster) error
	// Method GetAll retrieves all admin posters.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.AdminPoster, error)
	// Method GetByID retrieves an admin poster by its identity.
	//
	// If no record exists for the identity, a NotFoundError is returned.
	GetByID(ctx context.Context, id string) (*models.AdminPoster, error)
	// Method Update overwrites only the supplied fields of an admin poster.
	//
	// If some error will occur during data update, the error will be returned.
	Update(ctx context.Context, id string, request *models.UpdateAdminPosterRequest) error
	// Method DeleteByID deletes an admin poster by its identity.
	//
	// If no record exists for the identity, a NotFoundError is returned.
	DeleteByID(ctx context.Context, id string) error
}

// adminPosterService implements admin poster operations
type adminPosterService struct {
	repo AdminPosterRepository
}

// NewAdminPosterService creates a new admin poster service
func NewAdminPosterService(repo AdminPosterRepository) *adminPosterService {
	return &adminPosterService{
		repo: repo,
	}
}

// Create validates the request and inserts a new admin poster
func (s *adminPosterService) Create(ctx context.Context, request *models.CreateAdminPosterRequest) (*models.AdminPoster, error) {
	if err := validation.Struct(request); err != nil {
		return nil, err
	}

	poster := &models.AdminPoster{
		Image1URL: request.Image1URL,
		Image2URL: request.Image2URL,
		Type:      models.PosterType(request.Type),
		Name:      request.Name,
	}

	if err := s.repo.Create(ctx, poster); err != nil {
		return nil, fmt.Errorf("failed to create admin poster: %w", err)
	}

	return s.repo.GetByID(ctx, poster.ID)
}

// GetAll retrieves all admin posters. An empty list is a valid result.
func (s *adminPosterService) GetAll(ctx context.Context) ([]models.AdminPoster, error) {
	return s.repo.GetAll(ctx)
}

// Update applies a partial update and returns the post-merge record
func (s *adminPosterService) Update(ctx context.Context, id string, request *models.UpdateAdminPosterRequest) (*models.AdminPoster, error) {
	if request.IsEmpty() {
		return nil, apperrors.NewValidation("No fields provided for update.")
	}

	if err := validation.Struct(request); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, request); err != nil {
		return nil, fmt.Errorf("failed to update admin poster: %w", err)
	}

	return s.repo.GetByID(ctx, id)
}

// Delete removes an admin poster and returns its prior state
func (s *adminPosterService) Delete(ctx context.Context, id string) (*models.AdminPoster, error) {
	poster, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return nil, err
	}

	return poster, nil
}
