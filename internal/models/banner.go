package models

import (
	"strings"
	"time"
)

// Banner represents a site banner record
type Banner struct {
	ID        string     `json:"id" db:"id"`
	Type      BannerType `json:"type" db:"type"`
	ImageURL  string     `json:"imageurl" db:"image_url"`
	Name      string     `json:"name" db:"name"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// BannerType represents valid banner placements
type BannerType string

const (
	BannerTypeHome    BannerType = "home"
	BannerTypeWebinar BannerType = "webinar"
	BannerTypeCourse  BannerType = "course"
)

// CreateBannerRequest is the payload for creating a banner
type CreateBannerRequest struct {
	Type     string `json:"type" validate:"required,oneof=home webinar course"`
	ImageURL string `json:"imageurl" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// Trim strips surrounding whitespace from every field before validation
func (r *CreateBannerRequest) Trim() {
	r.Type = strings.TrimSpace(r.Type)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
	r.Name = strings.TrimSpace(r.Name)
}
