package services

import (
	"context"
	"fmt"

	"github.com/advisorycontent/backend/internal/apperrors"
	"github.com/advisorycontent/backend/internal/models"
)

// MessageTemplateRepository is the interface that wraps methods for message template data access
type MessageTemplateRepository interface {
	// Method Create inserts a new message template and assigns its identity.
	//
	// If some error will occur during data creation, the error will be returned.
	Create(ctx context.Context, template *models.MessageTemplate) error
	// Method GetAll retrieves all message templates.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.MessageTemplate, error)
	// Method GetByRaid retrieves all message templates carrying the given owner tag.
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetByRaid(ctx context.Context, raid string) ([]models.MessageTemplate, error)
	// Method GetByID retrieves a message template by its identity.
	//
	// If no record exists for the identity, a NotFoundError is returned.
	GetByID(ctx context.Context, id string) (*models.MessageTemplate, error)
	// Method Update overwrites only the supplied fields of a message template.
	//
	// If some error will occur during data update, the error will be returned.
	Update(ctx context.Context, id string, request *models.UpdateMessageTemplateRequest) error
	// Method DeleteByID deletes a message template by its identity.
	//
	// If no record exists for the identity, a NotFoundError is returned.
	DeleteByID(ctx context.Context, id string) error
}

// messageTemplateService implements message template operations.
// Templates enforce no required fields on create.
type messageTemplateService struct {
	repo MessageTemplateRepository
}

// NewMessageTemplateService creates a new message template service
func NewMessageTemplateService(repo MessageTemplateRepository) *messageTemplateService {
	return &messageTemplateService{
		repo: repo,
	}
}

// Create inserts a new message template
func (s *messageTemplateService) Create(ctx context.Context, request *models.CreateMessageTemplateRequest) (*models.MessageTemplate, error) {
	template := &models.MessageTemplate{
		Raid:           request.Raid,
		TemplateName:   request.TemplateName,
		HeadingContent: request.HeadingContent,
		FooterContent:  request.FooterContent,
		Type:           request.Type,
	}

	if err := s.repo.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to create message template: %w", err)
	}

	return s.repo.GetByID(ctx, template.ID)
}

// GetAll retrieves all message templates. An empty list is a valid result.
func (s *messageTemplateService) GetAll(ctx context.Context) ([]models.MessageTemplate, error) {
	return s.repo.GetAll(ctx)
}

// GetByRaid retrieves message templates for one owner tag.
// Zero matches is a NotFoundError for this per-owner listing.
func (s *messageTemplateService) GetByRaid(ctx context.Context, raid string) ([]models.MessageTemplate, error) {
	templates, err := s.repo.GetByRaid(ctx, raid)
	if err != nil {
		return nil, fmt.Errorf("failed to get message templates: %w", err)
	}

	if len(templates) == 0 {
		return nil, apperrors.NewNotFound("No templates found for this raid.")
	}

	return templates, nil
}

// Update applies a partial update and returns the post-merge record
func (s *messageTemplateService) Update(ctx context.Context, id string, request *models.UpdateMessageTemplateRequest) (*models.MessageTemplate, error) {
	if request.IsEmpty() {
		return nil, apperrors.NewValidation("No fields provided for update.")
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, request); err != nil {
		return nil, fmt.Errorf("failed to update message template: %w", err)
	}

	return s.repo.GetByID(ctx, id)
}

// Delete removes a message template and returns its prior state
func (s *messageTemplateService) Delete(ctx context.Context, id string) (*models.MessageTemplate, error) {
	template, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return nil, err
	}

	return template, nil
}
