package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/advisorycontent/backend/internal/apperrors"
	"github.com/advisorycontent/backend/internal/models"
)

// adminPosterRepository implements admin poster data access
type adminPosterRepository struct {
	db *sql.DB
}

// NewAdminPosterRepository creates a new admin poster repository
func NewAdminPosterRepository(db *sql.DB) *adminPosterRepository {
	return &adminPosterRepository{
		db: db,
	}
}

// Create inserts a new admin poster and assigns its identity
func (r *adminPosterRepository) Create(ctx context.Context, poster *models.AdminPoster) error {
	query := `
		INSERT INTO admin_posters (id, image1_url, image2_url, type, name)
		VALUES (?, ?, ?, ?, ?)
	`

	poster.ID = models.NewID()
	_, err := r.db.ExecContext(ctx, query,
		poster.ID,
		poster.Image1URL,
		poster.Image2URL,
		poster.Type,
		poster.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to create admin poster: %w", err)
	}

	return nil
}

// GetAll retrieves all admin posters
func (r *adminPosterRepository) GetAll(ctx context.Context) ([]models.AdminPoster, error) {
	query := `
		SELECT id, image1_url, image2_url, type, name, created_at, updated_at
		FROM admin_posters
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query admin posters: %w", err)
	}
	defer rows.Close()

	var posters []models.AdminPoster
	for rows.Next() {
		var poster models.AdminPoster
		err := rows.Scan(
			&poster.ID,
			&poster.Image1URL,
			&poster.Image2URL,
			&poster.Type,
			&poster.Name,
			&poster.CreatedAt,
			&poster.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan admin poster: %w", err)
		}
		posters = append(posters, poster)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return posters, nil
}

// GetByID retrieves an admin poster by its identity
func (r *adminPosterRepository) GetByID(ctx context.Context, id string) (*models.AdminPoster, error) {
	query := `
		SELECT id, image1_url, image2_url, type, name, created_at, updated_at
		FROM admin_posters
		WHERE id = ?
		LIMIT 1
	`

	poster := &models.AdminPoster{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&poster.ID,
		&poster.Image1URL,
		&poster.Image2URL,
		&poster.Type,
		&poster.Name,
		&poster.CreatedAt,
		&poster.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFound("Poster not found.")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin poster by id: %w", err)
	}

	return poster, nil
}

// Update overwrites only the supplied fields (partial update)
func (r *adminPosterRepository) Update(ctx context.Context, id string, request *models.UpdateAdminPosterRequest) error {
	var setParts []string
	var args []any

	if request.Image1URL != nil {
		setParts = append(setParts, "image1_url = ?")
		args = append(args, *request.Image1URL)
	}
	if request.Image2URL != nil {
		setParts = append(setParts, "image2_url = ?")
		args = append(args, *request.Image2URL)
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
		UPDATE admin_posters
		SET %s
		WHERE id = ?
	`, strings.Join(setParts, ", "))

	args = append(args, id)

	_, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update admin poster: %w", err)
	}

	return nil
}

// DeleteByID deletes an admin poster by its identity
func (r *adminPosterRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM admin_posters WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete admin poster: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFound("Poster not found.")
	}

	return nil
}
