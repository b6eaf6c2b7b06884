package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisorycontent/backend/internal/apperrors"
	"github.com/advisorycontent/backend/internal/models"
)

// mockExpertImageRepository is a mock implementation of ExpertImageRepository
type mockExpertImageRepository struct {
	images          []models.ExpertImage
	image           *models.ExpertImage
	existsByName    bool
	existsExcluding bool
	err             error
	createErr       error
	updateErr       error
	deleteErr       error
	getByIDErr      error
	createCalled    bool
	updateCalled    bool
}

func (m *mockExpertImageRepository) Create(ctx context.Context, image *models.ExpertImage) error {
	m.createCalled = true
	if m.createErr != nil {
		return m.createErr
	}
	if m.err != nil {
		return m.err
	}
	image.ID = "64f1a2b3c4d5e6f7a8b9c0d1"
	return nil
}

func (m *mockExpertImageRepository) ExistsByImageName(ctx context.Context, imageName string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.existsByName, nil
}

func (m *mockExpertImageRepository) ExistsByImageNameExcluding(ctx context.Context, imageName, excludeID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.existsExcluding, nil
}

func (m *mockExpertImageRepository) GetAll(ctx context.Context) ([]models.ExpertImage, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.images, nil
}

func (m *mockExpertImageRepository) GetByExpertID(ctx context.Context, expertID string) ([]models.ExpertImage, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.images, nil
}

func (m *mockExpertImageRepository) GetByID(ctx context.Context, id string) (*models.ExpertImage, error) {
	if m.getByIDErr != nil {
		return nil, m.getByIDErr
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.image, nil
}

func (m *mockExpertImageRepository) Update(ctx context.Context, id string, request *models.UpdateExpertImageRequest) error {
	m.updateCalled = true
	if m.updateErr != nil {
		return m.updateErr
	}
	return m.err
}

func (m *mockExpertImageRepository) DeleteByID(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	return m.err
}

func TestExpertImageService_Create(t *testing.T) {
	stored := &models.ExpertImage{
		ID:             "64f1a2b3c4d5e6f7a8b9c0d1",
		ExpertID:       "expert-1",
		ImageName:      "hero-banner",
		WebImageURL:    "http://cdn.example.com/web.png",
		MobileImageURL: "http://cdn.example.com/mobile.png",
		Property:       models.ImagePropertyMarketing,
	}
	validRequest := func() *models.CreateExpertImageRequest {
		return &models.CreateExpertImageRequest{
			ExpertID:       "expert-1",
			ImageName:      "hero-banner",
			WebImageURL:    "http://cdn.example.com/web.png",
			MobileImageURL: "http://cdn.example.com/mobile.png",
			Property:       "marketing",
		}
	}

	tests := []struct {
		name               string
		request            *models.CreateExpertImageRequest
		mockRepo           *mockExpertImageRepository
		expectedError      bool
		expectedConflict   bool
		expectedValidation bool
		expectCreateCalled bool
	}{
		{
			name:               "success",
			request:            validRequest(),
			mockRepo:           &mockExpertImageRepository{image: stored},
			expectCreateCalled: true,
		},
		{
			name:             "duplicate image name caught by pre-check",
			request:          validRequest(),
			mockRepo:         &mockExpertImageRepository{existsByName: true},
			expectedError:    true,
			expectedConflict: true,
		},
		{
			// a racing insert slips past the pre-check; the unique index
			// rejection still surfaces as a conflict
			name:    "duplicate image name caught by unique index",
			request: validRequest(),
			mockRepo: &mockExpertImageRepository{
				createErr: apperrors.NewConflict("A record with imageName 'hero-banner' already exists."),
			},
			expectedError:      true,
			expectedConflict:   true,
			expectCreateCalled: true,
		},
		{
			name: "missing image name",
			request: &models.CreateExpertImageRequest{
				ExpertID:       "expert-1",
				WebImageURL:    "http://cdn.example.com/web.png",
				MobileImageURL: "http://cdn.example.com/mobile.png",
				Property:       "marketing",
			},
			mockRepo:           &mockExpertImageRepository{},
			expectedError:      true,
			expectedValidation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewExpertImageService(tt.mockRepo)

			result, err := svc.Create(context.Background(), tt.request)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Equal(t, tt.expectedConflict, apperrors.IsConflict(err))
				assert.Equal(t, tt.expectedValidation, apperrors.IsValidation(err))
				if tt.expectedConflict {
					assert.Contains(t, apperrors.Message(err), "hero-banner")
				}
			} else {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, "hero-banner", result.ImageName)
			}
			assert.Equal(t, tt.expectCreateCalled, tt.mockRepo.createCalled)
		})
	}
}

func TestExpertImageService_Update(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	stored := &models.ExpertImage{
		ID:        "64f1a2b3c4d5e6f7a8b9c0d1",
		ExpertID:  "expert-1",
		ImageName: "hero-banner",
	}

	tests := []struct {
		name               string
		request            *models.UpdateExpertImageRequest
		mockRepo           *mockExpertImageRepository
		expectedError      bool
		expectedConflict   bool
		expectUpdateCalled bool
	}{
		{
			name:               "rename to free name",
			request:            &models.UpdateExpertImageRequest{ImageName: strPtr("new-name")},
			mockRepo:           &mockExpertImageRepository{image: stored},
			expectUpdateCalled: true,
		},
		{
			name:             "rename to taken name",
			request:          &models.UpdateExpertImageRequest{ImageName: strPtr("taken-name")},
			mockRepo:         &mockExpertImageRepository{image: stored, existsExcluding: true},
			expectedError:    true,
			expectedConflict: true,
		},
		{
			// keeping the current name must not conflict with itself
			name:               "keep own name",
			request:            &models.UpdateExpertImageRequest{ImageName: strPtr("hero-banner")},
			mockRepo:           &mockExpertImageRepository{image: stored, existsExcluding: false},
			expectUpdateCalled: true,
		},
		{
			name:          "record not found",
			request:       &models.UpdateExpertImageRequest{ImageName: strPtr("new-name")},
			mockRepo:      &mockExpertImageRepository{getByIDErr: apperrors.NewNotFound("Expert image not found.")},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewExpertImageService(tt.mockRepo)

			result, err := svc.Update(context.Background(), "64f1a2b3c4d5e6f7a8b9c0d1", tt.request)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Equal(t, tt.expectedConflict, apperrors.IsConflict(err))
			} else {
				assert.NoError(t, err)
				require.NotNil(t, result)
			}
			assert.Equal(t, tt.expectUpdateCalled, tt.mockRepo.updateCalled)
		})
	}
}

func TestExpertImageService_GetByExpertID(t *testing.T) {
	t.Run("empty listing is not found", func(t *testing.T) {
		svc := NewExpertImageService(&mockExpertImageRepository{images: []models.ExpertImage{}})

		result, err := svc.GetByExpertID(context.Background(), "expert-unknown")

		assert.Nil(t, result)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("repository error", func(t *testing.T) {
		svc := NewExpertImageService(&mockExpertImageRepository{err: errors.New("database error")})

		result, err := svc.GetByExpertID(context.Background(), "expert-1")

		assert.Nil(t, result)
		assert.Error(t, err)
		assert.False(t, apperrors.IsNotFound(err))
	})
}
