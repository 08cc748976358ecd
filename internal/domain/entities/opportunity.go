package entities

import (
	"time"

	"github.com/google/uuid"
)

// OpportunityStatus is the Kanban column a lead currently sits in.
type OpportunityStatus string

const (
	OpportunityStatusNew         OpportunityStatus = "new"
	OpportunityStatusContacted   OpportunityStatus = "contacted"
	OpportunityStatusNegotiation OpportunityStatus = "negotiation"
	OpportunityStatusWon         OpportunityStatus = "won"
	OpportunityStatusLost        OpportunityStatus = "lost"
)

// Opportunity is a sales lead with an estimated monetary value. It is
// mutated by the CRM workflow (status moves, value edits); the scoring
// engine only ever reads it.
type Opportunity struct {
	ID            uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID      uuid.UUID         `json:"tenant_id" gorm:"type:uuid;not null;index"`
	Title         string            `json:"title" gorm:"type:varchar(255);not null"`
	ContactName   string            `json:"contact_name,omitempty" gorm:"type:varchar(255)"`
	ContactEmail  string            `json:"contact_email,omitempty" gorm:"type:varchar(255)"`
	MonetaryValue float64           `json:"monetary_value" gorm:"not null;default:0"`
	Status        OpportunityStatus `json:"status" gorm:"type:varchar(20);not null;default:'new'"`
	CreatedAt     time.Time         `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Opportunity
func (Opportunity) TableName() string {
	return "opportunities"
}

// NewOpportunity creates a new Opportunity entity
func NewOpportunity(tenantID uuid.UUID, title string, value float64) *Opportunity {
	return &Opportunity{
		ID:            uuid.New(),
		TenantID:      tenantID,
		Title:         title,
		MonetaryValue: value,
		Status:        OpportunityStatusNew,
	}
}

// IsValidStatus reports whether s is one of the known Kanban statuses.
func IsValidStatus(s OpportunityStatus) bool {
	switch s {
	case OpportunityStatusNew, OpportunityStatusContacted,
		OpportunityStatusNegotiation, OpportunityStatusWon, OpportunityStatusLost:
		return true
	}
	return false
}
