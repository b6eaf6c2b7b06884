package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/advisorycontent/backend/internal/apperrors"
	"github.com/advisorycontent/backend/internal/models"
)

// feedbackRepository implements feedback data access
type feedbackRepository struct {
	db *sql.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *sql.DB) *feedbackRepository {
	return &feedbackRepository{
		db: db,
	}
}

// Create inserts a new feedback record and assigns its identity
func (r *feedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	query := `
		INSERT INTO feedbacks (id, star, description, user_id, name, mobile_number)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	feedback.ID = models.NewID()
	_, err := r.db.ExecContext(ctx, query,
		feedback.ID,
		feedback.Star,
		feedback.Description,
		feedback.UserID,
		feedback.Name,
		feedback.MobileNumber,
	)
	if err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}

	return nil
}

// GetAll retrieves all feedback records
func (r *feedbackRepository) GetAll(ctx context.Context) ([]models.Feedback, error) {
	query := `
		SELECT id, star, description, user_id, name, mobile_number, created_at, updated_at
		FROM feedbacks
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedbacks: %w", err)
	}
	defer rows.Close()

	var feedbacks []models.Feedback
	for rows.Next() {
		var feedback models.Feedback
		err := rows.Scan(
			&feedback.ID,
			&feedback.Star,
			&feedback.Description,
			&feedback.UserID,
			&feedback.Name,
			&feedback.MobileNumber,
			&feedback.CreatedAt,
			&feedback.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		feedbacks = append(feedbacks, feedback)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return feedbacks, nil
}

// GetByID retrieves a feedback record by its identity
func (r *feedbackRepository) GetByID(ctx context.Context, id string) (*models.Feedback, error) {
	query := `
		SELECT id, star, description, user_id, name, mobile_number, created_at, updated_at
		FROM feedbacks
		WHERE id = ?
		LIMIT 1
	`

	feedback := &models.Feedback{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&feedback.ID,
		&feedback.Star,
		&feedback.Description,
		&feedback.UserID,
		&feedback.Name,
		&feedback.MobileNumber,
		&feedback.CreatedAt,
		&feedback.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFound("Feedback not found.")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback by id: %w", err)
	}

	return feedback, nil
}

// DeleteByID deletes a feedback record by its identity
func (r *feedbackRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM feedbacks WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFound("Feedback not found.")
	}

	return nil
}
