package services

import (
	"context"
	"fmt"

	"github.com/advisorycontent/backend/internal/models"
	"github.com/advisorycontent/backend/internal/validation"
)

// FeedbackRepository is the interface that wraps methods for feedback data access
type FeedbackRepository interface {
	// Method Create inserts a new feedback record and assigns its identity.
	//
	// If some error will occur during data creation, the error will be returned.
	Create(ctx context.Context, feedback *models.Feedback) error
	// Method GetAll retrieves all feedback records.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.Feedback, error)
	// Method GetByID retrieves a feedback record by its identity.
	//
	// If no record exists for the identity, a NotFoundError is returned.
	GetByID(ctx context.Context, id string) (*models.Feedback, error)
	// Method DeleteByID deletes a feedback record by its identity.
	//
	// If no record exists for the identity, a NotFoundError is returned.
	DeleteByID(ctx context.Context, id string) error
}

// feedbackService implements feedback operations
type feedbackService struct {
	repo FeedbackRepository
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(repo FeedbackRepository) *feedbackService {
	return &feedbackService{
		repo: repo,
	}
}

// Create validates the request and inserts a new feedback record.
// Star must be 1..5 and the mobile number exactly 10 digits.
func (s *feedbackService) Create(ctx context.Context, request *models.CreateFeedbackRequest) (*models.Feedback, error) {
	if err := validation.Struct(request); err != nil {
		return nil, err
	}

	feedback := &models.Feedback{
		Star:         request.Star,
		Description:  request.Description,
		UserID:       request.UserID,
		Name:         request.Name,
		MobileNumber: request.MobileNumber,
	}

	if err := s.repo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	return s.repo.GetByID(ctx, feedback.ID)
}

// GetAll retrieves all feedback records. An empty list is a valid result.
func (s *feedbackService) GetAll(ctx context.Context) ([]models.Feedback, error) {
	return s.repo.GetAll(ctx)
}

// Delete removes a feedback record and returns its prior state
func (s *feedbackService) Delete(ctx context.Context, id string) (*models.Feedback, error) {
	feedback, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return nil, err
	}

	return feedback, nil
}
