package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Trend classifies how the overall score moved against the previous
// snapshot for the same tenant.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// TrendThreshold is the minimum absolute overall-score change before a
// snapshot counts as improving or declining rather than stable.
const TrendThreshold = 5

// SnapshotDetails captures the raw facts that went into a diagnostic run,
// stored alongside the scores so a result stays auditable.
type SnapshotDetails struct {
	NPSRawScore          int      `json:"nps_raw_score"`
	Promoters            int      `json:"promoters"`
	Passives             int      `json:"passives"`
	Detractors           int      `json:"detractors"`
	TotalResponses       int      `json:"total_responses"`
	PositiveRatio        float64  `json:"positive_ratio"`
	UnresolvedDetractors int      `json:"unresolved_detractors"`
	PlaceIDPresent       bool     `json:"place_id_present"`
	MissingFields        []string `json:"missing_fields,omitempty"`
}

// DiagnosticSnapshot is one immutable diagnostic result for a tenant. The
// table is an append-only log; trend is derived by comparing the two most
// recent rows ordered by created_at, never by updating old rows.
type DiagnosticSnapshot struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID         uuid.UUID      `json:"tenant_id" gorm:"type:uuid;not null;index"`
	ReputationScore  int            `json:"reputation_score" gorm:"not null"`
	InformationScore int            `json:"information_score" gorm:"not null"`
	EngagementScore  int            `json:"engagement_score" gorm:"not null"`
	OverallScore     int            `json:"overall_score" gorm:"not null"`
	Trend            Trend          `json:"trend" gorm:"type:varchar(20);not null;default:'stable'"`
	Details          datatypes.JSON `json:"details,omitempty" gorm:"type:jsonb"`
	Recommendations  datatypes.JSON `json:"recommendations,omitempty" gorm:"type:jsonb"`
	CreatedAt        time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName specifies the table name for DiagnosticSnapshot
func (DiagnosticSnapshot) TableName() string {
	return "diagnostic_snapshots"
}

// NewDiagnosticSnapshot creates a new DiagnosticSnapshot entity
func NewDiagnosticSnapshot(tenantID uuid.UUID) *DiagnosticSnapshot {
	return &DiagnosticSnapshot{
		ID:       uuid.New(),
		TenantID: tenantID,
		Trend:    TrendStable,
	}
}

// ClassifyTrend compares an overall score to the previous snapshot's.
// Previous may be nil (first ever run), which is stable by convention.
func ClassifyTrend(overall int, previous *DiagnosticSnapshot) Trend {
	if previous == nil {
		return TrendStable
	}
	diff := overall - previous.OverallScore
	switch {
	case diff > TrendThreshold:
		return TrendImproving
	case diff < -TrendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}
