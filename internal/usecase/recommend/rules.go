package recommend

import (
	"fmt"
	"strings"

	"github.com/salespulse/salespulse-backend/internal/domain/entities"
)

// Score thresholds the rule table fires on.
const (
	lowReputationThreshold  = 70
	incompleteInfoThreshold = 80
	criticalInfoThreshold   = 60
	lowEngagementThreshold  = 50
)

// LowReputation fires when the remapped reputation score signals too many
// detractors relative to promoters.
func LowReputation(f Facts) *entities.Recommendation {
	if f.ReputationScore >= lowReputationThreshold {
		return nil
	}
	return &entities.Recommendation{
		Priority: entities.RecommendationPriorityHigh,
		Category: entities.RecommendationCategoryReputation,
		Title:    "Convert detractors into promoters",
		Description: fmt.Sprintf(
			"Your reputation score is %d. Reach out to unhappy customers, understand their complaints, "+
				"and close the loop before they churn or leave public negative reviews.",
			f.ReputationScore,
		),
		Impact: "Raising NPS directly lifts the reputation dimension of your health score.",
	}
}

// IncompleteProfile fires when the information dimension is below 80,
// escalating to high priority below 60.
func IncompleteProfile(f Facts) *entities.Recommendation {
	if f.InformationScore >= incompleteInfoThreshold {
		return nil
	}
	priority := entities.RecommendationPriorityMedium
	if f.InformationScore < criticalInfoThreshold {
		priority = entities.RecommendationPriorityHigh
	}
	desc := fmt.Sprintf("Your business information is %d%% complete.", f.InformationScore)
	if len(f.MissingFields) > 0 {
		desc += fmt.Sprintf(" Missing: %s.", strings.Join(f.MissingFields, ", "))
	}
	return &entities.Recommendation{
		Priority:    priority,
		Category:    entities.RecommendationCategoryInformation,
		Title:       "Complete your business profile",
		Description: desc,
		Impact:      "Complete profiles make your business easier to find and contact.",
	}
}

// MissingPlaceID fires when no Google place identifier is configured.
// Independent of IncompleteProfile; both may appear in the same run.
func MissingPlaceID(f Facts) *entities.Recommendation {
	if f.PlaceIDPresent {
		return nil
	}
	return &entities.Recommendation{
		Priority: entities.RecommendationPriorityHigh,
		Category: entities.RecommendationCategoryInformation,
		Title:    "Configure your Google place identifier",
		Description: "Without a Google place id, review monitoring and local search presence cannot be tracked. " +
			"Link your Google Business Profile in the settings screen.",
		Impact: "Enables review tracking and improves local discoverability.",
	}
}

// LowEngagement fires when survey volume is too thin to trust the scores.
func LowEngagement(f Facts) *entities.Recommendation {
	if f.EngagementScore >= lowEngagementThreshold {
		return nil
	}
	return &entities.Recommendation{
		Priority: entities.RecommendationPriorityMedium,
		Category: entities.RecommendationCategoryEngagement,
		Title:    "Increase survey volume",
		Description: fmt.Sprintf(
			"Your engagement score is %d. Send NPS campaigns to more customers "+
				"so your health scores rest on a representative sample.",
			f.EngagementScore,
		),
		Impact: "More responses make every other score more trustworthy.",
	}
}

// UnresolvedDetractors fires while any detractor response lacks a
// follow-up, with the count interpolated into the description.
func UnresolvedDetractors(f Facts) *entities.Recommendation {
	if f.UnresolvedDetractorCount <= 0 {
		return nil
	}
	noun := "customers"
	if f.UnresolvedDetractorCount == 1 {
		noun = "customer"
	}
	return &entities.Recommendation{
		Priority: entities.RecommendationPriorityHigh,
		Category: entities.RecommendationCategoryReputation,
		Title:    "Follow up with unhappy customers",
		Description: fmt.Sprintf(
			"%d detractor %s still awaiting a follow-up. Contact them, resolve the complaint, "+
				"and mark the response as resolved.",
			f.UnresolvedDetractorCount, noun,
		),
		Impact: "A fast follow-up is the cheapest way to recover a detractor.",
	}
}
