package models

import "time"

// DashboardImage represents an expert dashboard image record
type DashboardImage struct {
	ID        string    `json:"id" db:"id"`
	ExpertID  string    `json:"expertId" db:"expert_id"`
	ImageURL  string    `json:"imageurl" db:"image_url"`
	Type      ImageType `json:"type" db:"type"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// ImageType represents valid dashboard image types
type ImageType string

const (
	ImageTypeBlur      ImageType = "blur"
	ImageTypeMarketing ImageType = "marketing"
	ImageTypePremium   ImageType = "premium"
)

// CreateDashboardImageRequest is the payload for creating a dashboard image
type CreateDashboardImageRequest struct {
	ExpertID string `json:"expertId" validate:"required"`
	ImageURL string `json:"imageurl" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=blur marketing premium"`
	Name     string `json:"name" validate:"required"`
}

// UpdateDashboardImageRequest is the payload for a partial dashboard image update.
// Only non-nil fields are written; the rest keep their stored values.
type UpdateDashboardImageRequest struct {
	ExpertID *string `json:"expertId" validate:"omitempty,min=1"`
	ImageURL *string `json:"imageurl" validate:"omitempty,min=1"`
	Type     *string `json:"type" validate:"omitempty,oneof=blur marketing premium"`
	Name     *string `json:"name" validate:"omitempty,min=1"`
}

// IsEmpty reports whether the update carries no fields at all
func (r *UpdateDashboardImageRequest) IsEmpty() bool {
	return r.ExpertID == nil && r.ImageURL == nil && r.Type == nil && r.Name == nil
}
