package models

import "time"

// Feedback represents a user feedback record
type Feedback struct {
	ID           string    `json:"id" db:"id"`
	Star         int       `json:"star" db:"star"`
	Description  string    `json:"description" db:"description"`
	UserID       string    `json:"userId" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	MobileNumber string    `json:"mobileNumber" db:"mobile_number"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateFeedbackRequest is the payload for submitting feedback
type CreateFeedbackRequest struct {
	Star         int    `json:"star" validate:"required,min=1,max=5"`
	Description  string `json:"description" validate:"required"`
	UserID       string `json:"userId" validate:"required"`
	Name         string `json:"name" validate:"required"`
	MobileNumber string `json:"mobileNumber" validate:"required,len=10,numeric"`
}
