package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/advisorycontent/backend/internal/apperrors"
	"github.com/advisorycontent/backend/internal/models"
)

// dashboardImageRepository implements dashboard image data access
type dashboardImageRepository struct {
	db *sql.DB
}

// NewDashboardImageRepository creates a new dashboard image repository
func NewDashboardImageRepository(db *sql.DB) *dashboardImageRepository {
	return &dashboardImageRepository{
		db: db,
	}
}

// Create inserts a new dashboard image and assigns its identity
func (r *dashboardImageRepository) Create(ctx context.Context, image *models.DashboardImage) error {
	query := `
		INSERT INTO dashboard_images (id, expert_id, image_url, type, name)
		VALUES (?, ?, ?, ?, ?)
	`

	image.ID = models.NewID()
	_, err := r.db.ExecContext(ctx, query,
		image.ID,
		image.ExpertID,
		image.ImageURL,
		image.Type,
		image.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to create dashboard image: %w", err)
	}

	return nil
}

// GetAll retrieves all dashboard images
func (r *dashboardImageRepository) GetAll(ctx context.Context) ([]models.DashboardImage, error) {
	query := `
		SELECT id, expert_id, image_url, type, name, created_at, updated_at
		FROM dashboard_images
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboard images: %w", err)
	}
	defer rows.Close()

	var images []models.DashboardImage
	for rows.Next() {
		var image models.DashboardImage
		err := rows.Scan(
			&image.ID,
			&image.ExpertID,
			&image.ImageURL,
			&image.Type,
			&image.Name,
			&image.CreatedAt,
			&image.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dashboard image: %w", err)
		}
		images = append(images, image)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return images, nil
}

// GetByExpertID retrieves all dashboard images owned by the given expert
func (r *dashboardImageRepository) GetByExpertID(ctx context.Context, expertID string) ([]models.DashboardImage, error) {
	query := `
		SELECT id, expert_id, image_url, type, name, created_at, updated_at
		FROM dashboard_images
		WHERE expert_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, expertID)
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboard images by expert: %w", err)
	}
	defer rows.Close()

	var images []models.DashboardImage
	for rows.Next() {
		var image models.DashboardImage
		err := rows.Scan(
			&image.ID,
			&image.ExpertID,
			&image.ImageURL,
			&image.Type,
			&image.Name,
			&image.CreatedAt,
			&image.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dashboard image: %w", err)
		}
		images = append(images, image)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return images, nil
}

// GetByID retrieves a dashboard image by its identity
func (r *dashboardImageRepository) GetByID(ctx context.Context, id string) (*models.DashboardImage, error) {
	query := `
		SELECT id, expert_id, image_url, type, name, created_at, updated_at
		FROM dashboard_images
		WHERE id = ?
		LIMIT 1
	`

	image := &models.DashboardImage{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&image.ID,
		&image.ExpertID,
		&image.ImageURL,
		&image.Type,
		&image.Name,
		&image.CreatedAt,
		&image.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFound("Dashboard image not found.")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard image by id: %w", err)
	}

	return image, nil
}

// Update overwrites only the supplied fields (partial update)
func (r *dashboardImageRepository) Update(ctx context.Context, id string, request *models.UpdateDashboardImageRequest) error {
	var setParts []string
	var args []any

	if request.ExpertID != nil {
		setParts = append(setParts, "expert_id = ?")
		args = append(args, *request.ExpertID)
	}
	if request.ImageURL != nil {
		setParts = append(setParts, "image_url = ?")
		args = append(args, *request.ImageURL)
	}
	if request.Type != nil {
		setParts = append(setParts, "type = ?")
		args = append(args, *request.Type)
	}
	if request.Name != nil {
		setParts = append(setParts, "name = ?")
		args = append(args, *request.Name)
	}

	if len(setParts) == 0 {
		return apperrors.NewValidation("No fields provided for update.")
	}

	query := fmt.Sprintf(`
		UPDATE dashboard_images
		SET %s
		WHERE id = ?
	`, strings.Join(setParts, ", "))

	args = append(args, id)

	_, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update dashboard image: %w", err)
	}

	return nil
}

// DeleteByID deletes a dashboard image by its identity
func (r *dashboardImageRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM dashboard_images WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete dashboard image: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFound("Dashboard image not found.")
	}

	return nil
}
