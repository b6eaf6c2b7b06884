package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/advisorycontent/backend/internal/apperrors"
	"github.com/advisorycontent/backend/internal/models"
)

// messageTemplateRepository implements message template data access
type messageTemplateRepository struct {
	db *sql.DB
}

// NewMessageTemplateRepository creates a new message template repository
func NewMessageTemplateRepository(db *sql.DB) *messageTemplateRepository {
	return &messageTemplateRepository{
		db: db,
	}
}

// Create inserts a new message template and assigns its identity
func (r *messageTemplateRepository) Create(ctx context.Context, template *models.MessageTemplate) error {
	query := `
		INSERT INTO message_templates (id, raid, template_name, heading_content, footer_content, type)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	template.ID = models.NewID()
	_, err := r.db.ExecContext(ctx, query,
		template.ID,
		template.Raid,
		template.TemplateName,
		template.HeadingContent,
		template.FooterContent,
		template.Type,
	)
	if err != nil {
		return fmt.Errorf("failed to create message template: %w", err)
	}

	return nil
}

// GetAll retrieves all message templates
func (r *messageTemplateRepository) GetAll(ctx context.Context) ([]models.MessageTemplate, error) {
	query := `
		SELECT id, raid, template_name, heading_content, footer_content, type, created_at, updated_at
		FROM message_templates
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query message templates: %w", err)
	}
	defer rows.Close()

	return scanMessageTemplates(rows)
}

// GetByRaid retrieves all message templates carrying the given owner tag
func (r *messageTemplateRepository) GetByRaid(ctx context.Context, raid string) ([]models.MessageTemplate, error) {
	query := `
		SELECT id, raid, template_name, heading_content, footer_content, type, created_at, updated_at
		FROM message_templates
		WHERE raid = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, raid)
	if err != nil {
		return nil, fmt.Errorf("failed to query message templates by raid: %w", err)
	}
	defer rows.Close()

	return scanMessageTemplates(rows)
}

// scanMessageTemplates reads all rows from a query over the full column set
func scanMessageTemplates(rows *sql.Rows) ([]models.MessageTemplate, error) {
	var templates []models.MessageTemplate
	for rows.Next() {
		var template models.MessageTemplate
		err := rows.Scan(
			&template.ID,
			&template.Raid,
			&template.TemplateName,
			&template.HeadingContent,
			&template.FooterContent,
			&template.Type,
			&template.CreatedAt,
			&template.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message template: %w", err)
		}
		templates = append(templates, template)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return templates, nil
}

// GetByID retrieves a message template by its identity
func (r *messageTemplateRepository) GetByID(ctx context.Context, id string) (*models.MessageTemplate, error) {
	query := `
		SELECT id, raid, template_name, heading_content, footer_content, type, created_at, updated_at
		FROM message_templates
		WHERE id = ?
		LIMIT 1
	`

	template := &models.MessageTemplate{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&template.ID,
		&template.Raid,
		&template.TemplateName,
		&template.HeadingContent,
		&template.FooterContent,
		&template.Type,
		&template.CreatedAt,
		&template.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFound("Template not found.")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message template by id: %w", err)
	}

	return template, nil
}

// Update overwrites only the supplied fields (partial update)
func (r *messageTemplateRepository) Update(ctx context.Context, id string, request *models.UpdateMessageTemplateRequest) error {
	var setParts []string
	var args []any

	if request.Raid != nil {
		setParts = append(setParts, "raid = ?")
		args = append(args, *request.Raid)
	}
	if request.TemplateName != nil {
		setParts = append(setParts, "template_name = ?")
		args = append(args, *request.TemplateName)
	}
	if request.HeadingContent != nil {
		setParts = append(setParts, "heading_content = ?")
		args = append(args, *request.HeadingContent)
	}
	if request.FooterContent != nil {
		setParts = append(setParts, "footer_content = ?")
		args = append(args, *request.FooterContent)
	}
	if request.Type != nil {
		setParts = append(setParts, "type = ?")
		args = append(args, *request.Type)
	}

	if len(setParts) == 0 {
		return apperrors.NewValidation("No fields provided for update.")
	}

	query := fmt.Sprintf(`
		UPDATE message_templates
		SET %s
		WHERE id = ?
	`, strings.Join(setParts, ", "))

	args = append(args, id)

	_, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update message template: %w", err)
	}

	return nil
}

// DeleteByID deletes a message template by its identity
func (r *messageTemplateRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM message_templates WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete message template: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFound("Template not found.")
	}

	return nil
}
