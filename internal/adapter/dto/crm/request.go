package crm

import "time"

// CaptureResponseRequest represents an incoming NPS survey answer
type CaptureResponseRequest struct {
	Score       int        `json:"score" validate:"min=0,max=10"`
	Comment     *string    `json:"comment,omitempty" validate:"omitempty,max=2000"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

// CreateLeadRequest represents a new opportunity from the capture form
type CreateLeadRequest struct {
	Title         string  `json:"title" validate:"required,min=1,max=255"`
	ContactName   string  `json:"contact_name,omitempty" validate:"omitempty,max=255"`
	ContactEmail  string  `json:"contact_email,omitempty" validate:"omitempty,email"`
	MonetaryValue float64 `json:"monetary_value" validate:"min=0"`
}

// UpdateLeadRequest represents a Kanban status move or value edit
type UpdateLeadRequest struct {
	Title         *string  `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Status        *string  `json:"status,omitempty" validate:"omitempty,oneof=new contacted negotiation won lost"`
	MonetaryValue *float64 `json:"monetary_value,omitempty" validate:"omitempty,min=0"`
}

// ListLeadsRequest represents query parameters for listing leads
type ListLeadsRequest struct {
	Status   *string `query:"status" validate:"omitempty,oneof=new contacted negotiation won lost"`
	Page     int     `query:"page" validate:"omitempty,min=1"`
	PageSize int     `query:"page_size" validate:"omitempty,min=1,max=100"`
}
