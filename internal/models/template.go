package models

import "time"

// MessageTemplate represents a message template record, looked up by the
// owner tag "raid". No field is required on create.
type MessageTemplate struct {
	ID             string    `json:"id" db:"id"`
	Raid           string    `json:"raid" db:"raid"`
	TemplateName   string    `json:"templatename" db:"template_name"`
	HeadingContent string    `json:"headingcontent" db:"heading_content"`
	FooterContent  string    `json:"footercontent" db:"footer_content"`
	Type           string    `json:"type" db:"type"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateMessageTemplateRequest is the payload for creating a message template
type CreateMessageTemplateRequest struct {
	Raid           string `json:"raid"`
	TemplateName   string `json:"templatename"`
	HeadingContent string `json:"headingcontent"`
	FooterContent  string `json:"footercontent"`
	Type           string `json:"type"`
}

// UpdateMessageTemplateRequest is the payload for a partial template update
type UpdateMessageTemplateRequest struct {
	Raid           *string `json:"raid"`
	TemplateName   *string `json:"templatename"`
	HeadingContent *string `json:"headingcontent"`
	FooterContent  *string `json:"footercontent"`
	Type           *string `json:"type"`
}

// IsEmpty reports whether the update carries no fields at all
func (r *UpdateMessageTemplateRequest) IsEmpty() bool {
	return r.Raid == nil && r.TemplateName == nil && r.HeadingContent == nil &&
		r.FooterContent == nil && r.Type == nil
}
