package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/advisorycontent/backend/internal/apperrors"
	"github.com/advisorycontent/backend/internal/models"
	"github.com/advisorycontent/backend/internal/sqlerr"
)

// expertImageRepository implements expert image data access.
// The image_name column carries a unique index; the service layer pre-checks
// uniqueness, but the index is the final arbiter under concurrent creates.
type expertImageRepository struct {
	db *sql.DB
}

// NewExpertImageRepository creates a new expert image repository
func NewExpertImageRepository(db *sql.DB) *expertImageRepository {
	return &expertImageRepository{
		db: db,
	}
}

// Create inserts a new expert image and assigns its identity.
// A duplicate image_name rejected by the unique index comes back as a ConflictError.
func (r *expertImageRepository) Create(ctx context.Context, image *models.ExpertImage) error {
	query := `
		INSERT INTO expert_images (id, expert_id, image_name, web_image_url, mobile_image_url, property, subheading)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	image.ID = models.NewID()
	_, err := r.db.ExecContext(ctx, query,
		image.ID,
		image.ExpertID,
		image.ImageName,
		image.WebImageURL,
		image.MobileImageURL,
		image.Property,
		image.Subheading,
	)
	if err != nil {
		if sqlerr.IsDuplicate(err) {
			return sqlerr.ConvertDuplicate(err, "imageName", image.ImageName)
		}
		return fmt.Errorf("failed to create expert image: %w", err)
	}

	return nil
}

// ExistsByImageName checks if an expert image with the given name exists
func (r *expertImageRepository) ExistsByImageName(ctx context.Context, imageName string) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM expert_images WHERE image_name = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, imageName).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check image name existence: %w", err)
	}

	return exists, nil
}

// ExistsByImageNameExcluding checks if an expert image other than the given
// record uses the name. Used on update so a record may keep its own name.
func (r *expertImageRepository) ExistsByImageNameExcluding(ctx context.Context, imageName, excludeID string) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM expert_images WHERE image_name = ? AND id != ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, imageName, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check image name existence: %w", err)
	}

	return exists, nil
}

// GetAll retrieves all expert images
func (r *expertImageRepository) GetAll(ctx context.Context) ([]models.ExpertImage, error) {
	query := `
		SELECT id, expert_id, image_name, web_image_url, mobile_image_url, property, subheading, created_at, updated_at
		FROM expert_images
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query expert images: %w", err)
	}
	defer rows.Close()

	return scanExpertImages(rows)
}

// GetByExpertID retrieves all expert images owned by the given expert
func (r *expertImageRepository) GetByExpertID(ctx context.Context, expertID string) ([]models.ExpertImage, error) {
	query := `
		SELECT id, expert_id, image_name, web_image_url, mobile_image_url, property, subheading, created_at, updated_at
		FROM expert_images
		WHERE expert_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, expertID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expert images by expert: %w", err)
	}
	defer rows.Close()

	return scanExpertImages(rows)
}

// scanExpertImages reads all rows from a query over the full column set
func scanExpertImages(rows *sql.Rows) ([]models.ExpertImage, error) {
	var images []models.ExpertImage
	for rows.Next() {
		var image models.ExpertImage
		err := rows.Scan(
			&image.ID,
			&image.ExpertID,
			&image.ImageName,
			&image.WebImageURL,
			&image.MobileImageURL,
			&image.Property,
			&image.Subheading,
			&image.CreatedAt,
			&image.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expert image: %w", err)
		}
		images = append(images, image)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return images, nil
}

// GetByID retrieves an expert image by its identity
func (r *expertImageRepository) GetByID(ctx context.Context, id string) (*models.ExpertImage, error) {
	query := `
		SELECT id, expert_id, image_name, web_image_url, mobile_image_url, property, subheading, created_at, updated_at
		FROM expert_images
		WHERE id = ?
		LIMIT 1
	`

	image := &models.ExpertImage{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&image.ID,
		&image.ExpertID,
		&image.ImageName,
		&image.WebImageURL,
		&image.MobileImageURL,
		&image.Property,
		&image.Subheading,
		&image.CreatedAt,
		&image.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFound("Expert image not found.")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expert image by id: %w", err)
	}

	return image, nil
}

// Update overwrites only the supplied fields (partial update).
// A duplicate image_name rejected by the unique index comes back as a ConflictError.
func (r *expertImageRepository) Update(ctx context.Context, id string, request *models.UpdateExpertImageRequest) error {
	var setParts []string
	var args []any

	if request.ExpertID != nil {
		setParts = append(setParts, "expert_id = ?")
		args = append(args, *request.ExpertID)
	}
	if request.ImageName != nil {
		setParts = append(setParts, "image_name = ?")
		args = append(args, *request.ImageName)
	}
	if request.WebImageURL != nil {
		setParts = append(setParts, "web_image_url = ?")
		args = append(args, *request.WebImageURL)
	}
	if request.MobileImageURL != nil {
		setParts = append(setParts, "mobile_image_url = ?")
		args = append(args, *request.MobileImageURL)
	}
	if request.Property != nil {
		setParts = append(setParts, "property = ?")
		args = append(args, *request.Property)
	}
	if request.Subheading != nil {
		setParts = append(setParts, "subheading = ?")
		args = append(args, *request.Subheading)
	}

	if len(setParts) == 0 {
		return apperrors.NewValidation("No fields provided for update.")
	}

	query := fmt.Sprintf(`
		UPDATE expert_images
		SET %s
		WHERE id = ?
	`, strings.Join(setParts, ", "))

	args = append(args, id)

	_, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if sqlerr.IsDuplicate(err) && request.ImageName != nil {
			return sqlerr.ConvertDuplicate(err, "imageName", *request.ImageName)
		}
		return fmt.Errorf("failed to update expert image: %w", err)
	}

	return nil
}

// DeleteByID deletes an expert image by its identity
func (r *expertImageRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM expert_images WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete expert image: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFound("Expert image not found.")
	}

	return nil
}
