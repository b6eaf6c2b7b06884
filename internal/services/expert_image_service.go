package services

import (
	"context"
	"fmt"

	"github.com/advisorycontent/backend/internal/apperrors"
	"github.com/advisorycontent/backend/internal/models"
	"github.com/advisorycontent/backend/internal/validation"
)

// ExpertImageRepository is the interface that wraps methods for expert image data access
type ExpertImageRepository interface {
	// Method Create inserts a new expert image and assigns its identity.
	//
	// A duplicate image name rejected by the store's unique index is returned as a ConflictError.
	Create(ctx context.Context, image *models.ExpertImage) error
	// Method ExistsByImageName checks if an expert image with the same name exists.
	//
	// If some error will occur during data check, the error will be returned together with "false" value.
	ExistsByImageName(ctx context.Context, imageName string) (bool, error)
	// Method ExistsByImageNameExcluding checks if an expert image other than the
	// given record uses the name.
	//
	// If some error will occur during data check, the error will be returned together with "false" value.
	ExistsByImageNameExcluding(ctx context.Context, imageName, excludeID string) (bool, error)
	// Method GetAll retrieves all expert images.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.ExpertImage, error)
	// Method GetByExpertID retrieves all expert images owned by the given expert.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetByExpertID(ctx context.Context, expertID string) ([]models.ExpertImage, error)
	// Method GetByID retrieves an expert image by its identity.
	//
	// If no record exists for the identity, a NotFoundError is returned.
	GetByID(ctx context.Context, id string) (*models.ExpertImage, error)
	// Method Update overwrites only the supplied fields of an expert image.
	//
	// If some error will occur during data update, the error will be returned.
	Update(ctx context.Context, id string, request *models.UpdateExpertImageRequest) error
	// Method DeleteByID deletes an expert image by its identity.
	//
	// If no record exists for the identity, a NotFoundError is returned.
	DeleteByID(ctx context.Context, id string) error
}

// expertImageService implements expert image operations
type expertImageService struct {
	repo ExpertImageRepository
}

// NewExpertImageService creates a new expert image service
func NewExpertImageService(repo ExpertImageRepository) *expertImageService {
	return &expertImageService{
		repo: repo,
	}
}

// Create validates the request, pre-checks image name uniqueness and inserts
// a new expert image. The pre-check is advisory; the store's unique index is
// the final arbiter under concurrent creates.
func (s *expertImageService) Create(ctx context.Context, request *models.CreateExpertImageRequest) (*models.ExpertImage, error) {
	if err := validation.Struct(request); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByImageName(ctx, request.ImageName)
	if err != nil {
		return nil, fmt.Errorf("failed to check image name existence: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflict(fmt.Sprintf("A record with imageName '%s' already exists.", request.ImageName))
	}

	image := &models.ExpertImage{
		ExpertID:       request.ExpertID,
		ImageName:      request.ImageName,
		WebImageURL:    request.WebImageURL,
		MobileImageURL: request.MobileImageURL,
		Property:       models.ImageProperty(request.Property),
		Subheading:     request.Subheading,
	}

	if err := s.repo.Create(ctx, image); err != nil {
		if apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create expert image: %w", err)
	}

	return s.repo.GetByID(ctx, image.ID)
}

// GetAll retrieves all expert images. An empty list is a valid result.
func (s *expertImageService) GetAll(ctx context.Context) ([]models.ExpertImage, error) {
	return s.repo.GetAll(ctx)
}

// GetByExpertID retrieves expert images for one expert.
// Zero matches is a NotFoundError for this per-owner listing.
func (s *expertImageService) GetByExpertID(ctx context.Context, expertID string) ([]models.ExpertImage, error) {
	images, err := s.repo.GetByExpertID(ctx, expertID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expert images: %w", err)
	}

	if len(images) == 0 {
		return nil, apperrors.NewNotFound("No images found for this expert.")
	}

	return images, nil
}

// Update applies a partial update and returns the post-merge record.
// When imageName changes, uniqueness is re-checked excluding the record itself.
func (s *expertImageService) Update(ctx context.Context, id string, request *models.UpdateExpertImageRequest) (*models.ExpertImage, error) {
	if request.IsEmpty() {
		return nil, apperrors.NewValidation("No fields provided for update.")
	}

	if err := validation.Struct(request); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if request.ImageName != nil {
		exists, err := s.repo.ExistsByImageNameExcluding(ctx, *request.ImageName, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check image name existence: %w", err)
		}
		if exists {
			return nil, apperrors.NewConflict(fmt.Sprintf("A record with imageName '%s' already exists.", *request.ImageName))
		}
	}

	if err := s.repo.Update(ctx, id, request); err != nil {
		if apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update expert image: %w", err)
	}

	return s.repo.GetByID(ctx, id)
}

// Delete removes an expert image and returns its prior state
func (s *expertImageService) Delete(ctx context.Context, id string) (*models.ExpertImage, error) {
	image, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return nil, err
	}

	return image, nil
}
