package models

import "time"

// ExpertImage represents an expert image record with separate web and
// mobile renditions. ImageName is globally unique across all records.
type ExpertImage struct {
	ID             string        `json:"id" db:"id"`
	ExpertID       string        `json:"expertId" db:"expert_id"`
	ImageName      string        `json:"imageName" db:"image_name"`
	WebImageURL    string        `json:"webImageUrl" db:"web_image_url"`
	MobileImageURL string        `json:"mobileImageUrl" db:"mobile_image_url"`
	Property       ImageProperty `json:"property" db:"property"`
	Subheading     bool          `json:"subheading" db:"subheading"`
	CreatedAt      time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time     `json:"updatedAt" db:"updated_at"`
}

// ImageProperty represents valid expert image properties
type ImageProperty string

const (
	ImagePropertyBlur      ImageProperty = "blur"
	ImagePropertyMarketing ImageProperty = "marketing"
	ImagePropertyPremium   ImageProperty = "premium"
)

// CreateExpertImageRequest is the payload for creating an expert image.
// Subheading defaults to false when omitted.
type CreateExpertImageRequest struct {
	ExpertID       string `json:"expertId" validate:"required"`
	ImageName      string `json:"imageName" validate:"required"`
	WebImageURL    string `json:"webImageUrl" validate:"required"`
	MobileImageURL string `json:"mobileImageUrl" validate:"required"`
	Property       string `json:"property" validate:"required,oneof=blur marketing premium"`
	Subheading     bool   `json:"subheading"`
}

// UpdateExpertImageRequest is the payload for a partial expert image update
type UpdateExpertImageRequest struct {
	ExpertID       *string `json:"expertId" validate:"omitempty,min=1"`
	ImageName      *string `json:"imageName" validate:"omitempty,min=1"`
	WebImageURL    *string `json:"webImageUrl" validate:"omitempty,min=1"`
	MobileImageURL *string `json:"mobileImageUrl" validate:"omitempty,min=1"`
	Property       *string `json:"property" validate:"omitempty,oneof=blur marketing premium"`
	Subheading     *bool   `json:"subheading"`
}

// IsEmpty reports whether the update carries no fields at all
func (r *UpdateExpertImageRequest) IsEmpty() bool {
	return r.ExpertID == nil && r.ImageName == nil && r.WebImageURL == nil &&
		r.MobileImageURL == nil && r.Property == nil && r.Subheading == nil
}
