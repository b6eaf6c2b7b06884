package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/advisorycontent/backend/internal/apperrors"
	"github.com/advisorycontent/backend/internal/models"
)

// bannerRepository implements banner data access
type bannerRepository struct {
	db *sql.DB
}

// NewBannerRepository creates a new banner repository
func NewBannerRepository(db *sql.DB) *bannerRepository {
	return &bannerRepository{
		db: db,
	}
}

// Create inserts a new banner and assigns its identity
func (r *bannerRepository) Create(ctx context.Context, banner *models.Banner) error {
	query := `
		INSERT INTO banners (id, type, image_url, name)
		VALUES (?, ?, ?, ?)
	`

	banner.ID = models.NewID()
	_, err := r.db.ExecContext(ctx, query,
		banner.ID,
		banner.Type,
		banner.ImageURL,
		banner.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to create banner: %w", err)
	}

	return nil
}

// GetAll retrieves all banners
func (r *bannerRepository) GetAll(ctx context.Context) ([]models.Banner, error) {
	query := `
		SELECT id, type, image_url, name, created_at, updated_at
		FROM banners
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query banners: %w", err)
	}
	defer rows.Close()

	var banners []models.Banner
	for rows.Next() {
		var banner models.Banner
		err := rows.Scan(
			&banner.ID,
			&banner.Type,
			&banner.ImageURL,
			&banner.Name,
			&banner.CreatedAt,
			&banner.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan banner: %w", err)
		}
		banners = append(banners, banner)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return banners, nil
}

// GetByID retrieves a banner by its identity
func (r *bannerRepository) GetByID(ctx context.Context, id string) (*models.Banner, error) {
	query := `
		SELECT id, type, image_url, name, created_at, updated_at
		FROM banners
		WHERE id = ?
		LIMIT 1
	`

	banner := &models.Banner{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&banner.ID,
		&banner.Type,
		&banner.ImageURL,
		&banner.Name,
		&banner.CreatedAt,
		&banner.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFound("Banner not found.")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get banner by id: %w", err)
	}

	return banner, nil
}

// DeleteByID deletes a banner by its identity
func (r *bannerRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM banners WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete banner: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFound("Banner not found.")
	}

	return nil
}
