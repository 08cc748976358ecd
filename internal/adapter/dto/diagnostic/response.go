package diagnostic

import (
	"time"

	"github.com/google/uuid"

	"github.com/salespulse/salespulse-backend/internal/domain/entities"
)

// RecommendationView is the API shape of one recommendation
type RecommendationView struct {
	ID          uuid.UUID `json:"id"`
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Impact      string    `json:"impact"`
}

// SnapshotView is the API shape of a diagnostic snapshot
type SnapshotView struct {
	ID               uuid.UUID                 `json:"id"`
	ReputationScore  int                       `json:"reputation_score"`
	InformationScore int                       `json:"information_score"`
	EngagementScore  int                       `json:"engagement_score"`
	OverallScore     int                       `json:"overall_score"`
	Trend            string                    `json:"trend"`
	Details          *entities.SnapshotDetails `json:"details,omitempty"`
	Recommendations  []RecommendationView      `json:"recommendations"`
	CreatedAt        time.Time                 `json:"created_at"`
}

// HistoryView is a trimmed snapshot row for the history list
type HistoryView struct {
	ID           uuid.UUID `json:"id"`
	OverallScore int       `json:"overall_score"`
	Trend        string    `json:"trend"`
	CreatedAt    time.Time `json:"created_at"`
}
