// Package recommend turns a diagnostic snapshot plus raw tenant facts into
// a prioritized, capped list of actionable recommendations. Rules are an
// ordered, data-driven table so new rules are additive configuration and
// the cap/sort behavior is tested once against the table, not per rule.
package recommend

import "github.com/salespulse/salespulse-backend/internal/domain/entities"

// MaxRecommendations caps the list returned by a single run.
const MaxRecommendations = 5

// Facts provides everything a rule may inspect: the latest composite
// dimension scores and the raw facts behind them.
type Facts struct {
	ReputationScore  int
	InformationScore int
	EngagementScore  int

	// PlaceIDPresent is whether the tenant configured a Google place id.
	PlaceIDPresent bool

	// UnresolvedDetractorCount is the number of detractor responses still
	// waiting for a follow-up.
	UnresolvedDetractorCount int

	// MissingFields lists profile fields absent from the information
	// dimension, for description text.
	MissingFields []string
}

// Rule evaluates the facts and produces zero or one recommendation.
// Returning nil means the rule did not fire.
type Rule func(f Facts) *entities.Recommendation
