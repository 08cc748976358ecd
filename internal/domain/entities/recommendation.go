package entities

import "github.com/google/uuid"

// RecommendationPriority constants, ordered high before medium before low.
type RecommendationPriority string

const (
	RecommendationPriorityHigh   RecommendationPriority = "high"
	RecommendationPriorityMedium RecommendationPriority = "medium"
	RecommendationPriorityLow    RecommendationPriority = "low"
)

// RecommendationCategory constants, one per diagnostic dimension.
type RecommendationCategory string

const (
	RecommendationCategoryReputation  RecommendationCategory = "reputation"
	RecommendationCategoryInformation RecommendationCategory = "information"
	RecommendationCategoryEngagement  RecommendationCategory = "engagement"
)

// Recommendation is one actionable item emitted by a diagnostic run. It is
// ephemeral: every run recomputes the full list from scratch, nothing is
// diffed against earlier runs. Persisted only as part of the snapshot's
// jsonb payload.
type Recommendation struct {
	ID          uuid.UUID              `json:"id"`
	Priority    RecommendationPriority `json:"priority"`
	Category    RecommendationCategory `json:"category"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Impact      string                 `json:"impact"`
}

// PriorityRank maps a priority to its sort rank, lowest rank first.
func PriorityRank(p RecommendationPriority) int {
	switch p {
	case RecommendationPriorityHigh:
		return 0
	case RecommendationPriorityMedium:
		return 1
	default:
		return 2
	}
}
