package crm

import (
	"time"

	"github.com/google/uuid"
)

// ResponseView is the API shape of a satisfaction response
type ResponseView struct {
	ID          uuid.UUID  `json:"id"`
	Score       int        `json:"score"`
	Class       string     `json:"class"`
	Comment     *string    `json:"comment,omitempty"`
	RespondedAt time.Time  `json:"responded_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

// LeadView is the API shape of an opportunity
type LeadView struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	ContactName   string    `json:"contact_name,omitempty"`
	ContactEmail  string    `json:"contact_email,omitempty"`
	MonetaryValue float64   `json:"monetary_value"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
