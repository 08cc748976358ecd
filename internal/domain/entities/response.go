package entities

import (
	"time"

	"github.com/google/uuid"
)

// ResponseClass is the NPS classification of a satisfaction response.
type ResponseClass string

const (
	ResponseClassPromoter  ResponseClass = "promoter"
	ResponseClassPassive   ResponseClass = "passive"
	ResponseClassDetractor ResponseClass = "detractor"
)

// NPS score boundaries (0-10 scale).
const (
	MinSatisfactionScore = 0
	MaxSatisfactionScore = 10
	PromoterThreshold    = 9
	DetractorThreshold   = 6
)

// SatisfactionResponse is one NPS survey answer for a tenant. Responses are
// immutable once captured; the only later mutation is marking a detractor
// follow-up as resolved.
type SatisfactionResponse struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID    uuid.UUID  `json:"tenant_id" gorm:"type:uuid;not null;index"`
	Score       int        `json:"score" gorm:"not null"`
	Comment     *string    `json:"comment,omitempty" gorm:"type:text"`
	RespondedAt time.Time  `json:"responded_at" gorm:"not null;index"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for SatisfactionResponse
func (SatisfactionResponse) TableName() string {
	return "satisfaction_responses"
}

// NewSatisfactionResponse creates a new SatisfactionResponse entity
func NewSatisfactionResponse(tenantID uuid.UUID, score int, comment *string, respondedAt time.Time) *SatisfactionResponse {
	return &SatisfactionResponse{
		ID:          uuid.New(),
		TenantID:    tenantID,
		Score:       score,
		Comment:     comment,
		RespondedAt: respondedAt,
	}
}

// Classify maps the raw score to its NPS class: >=9 promoter, 7-8 passive,
// <=6 detractor.
func (r *SatisfactionResponse) Classify() ResponseClass {
	switch {
	case r.Score >= PromoterThreshold:
		return ResponseClassPromoter
	case r.Score > DetractorThreshold:
		return ResponseClassPassive
	default:
		return ResponseClassDetractor
	}
}

// IsValidScore reports whether the score is inside the 0-10 survey scale.
func (r *SatisfactionResponse) IsValidScore() bool {
	return r.Score >= MinSatisfactionScore && r.Score <= MaxSatisfactionScore
}

// IsUnresolvedDetractor reports whether this response still needs a
// follow-up from the tenant.
func (r *SatisfactionResponse) IsUnresolvedDetractor() bool {
	return r.Classify() == ResponseClassDetractor && r.ResolvedAt == nil
}

// Resolve marks the detractor follow-up as handled at the given time.
func (r *SatisfactionResponse) Resolve(at time.Time) {
	r.ResolvedAt = &at
}
