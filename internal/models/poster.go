package models

import "time"

// AdminPoster represents an admin poster record with two image slots
type AdminPoster struct {
	ID        string     `json:"id" db:"id"`
	Image1URL string     `json:"image1url" db:"image1_url"`
	Image2URL string     `json:"image2url" db:"image2_url"`
	Type      PosterType `json:"type" db:"type"`
	Name      string     `json:"name" db:"name"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// PosterType represents valid poster slots
type PosterType string

const (
	PosterType1 PosterType = "1"
	PosterType2 PosterType = "2"
	PosterType3 PosterType = "3"
)

// CreateAdminPosterRequest is the payload for creating an admin poster
type CreateAdminPosterRequest struct {
	Image1URL string `json:"image1url" validate:"required"`
	Image2URL string `json:"image2url" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=1 2 3"`
	Name      string `json:"name" validate:"required"`
}

// UpdateAdminPosterRequest is the payload for a partial admin poster update
type UpdateAdminPosterRequest struct {
	Image1URL *string `json:"image1url" validate:"omitempty,min=1"`
	Image2URL *string `json:"image2url" validate:"omitempty,min=1"`
	Type      *string `json:"type" validate:"omitempty,oneof=1 2 3"`
	Name      *string `json:"name" validate:"omitempty,min=1"`
}

// IsEmpty reports whether the update carries no fields at all
func (r *UpdateAdminPosterRequest) IsEmpty() bool {
	return r.Image1URL == nil && r.Image2URL == nil && r.Type == nil && r.Name == nil
}
