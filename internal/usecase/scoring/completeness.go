package scoring

import (
	"fmt"

	"github.com/salespulse/salespulse-backend/internal/domain/entities"
)

// WeightEntry assigns completeness points to one profile field.
type WeightEntry struct {
	Field  string
	Points int
}

// WeightTable is an ordered list of field weights. Tables are validated at
// construction: weights must sum to at most 100, so Completeness never has
// to re-check the invariant per call.
type WeightTable struct {
	entries []WeightEntry
}

// NewWeightTable builds a weight table, rejecting tables whose points sum
// above 100 or carry non-positive weights.
func NewWeightTable(entries []WeightEntry) (WeightTable, error) {
	sum := 0
	for _, e := range entries {
		if e.Points <= 0 {
			return WeightTable{}, fmt.Errorf("weight for %q must be positive, got %d", e.Field, e.Points)
		}
		sum += e.Points
	}
	if sum > 100 {
		return WeightTable{}, fmt.Errorf("weight table sums to %d, must be <= 100", sum)
	}
	return WeightTable{entries: entries}, nil
}

// MustWeightTable is NewWeightTable for package-level preset tables.
func MustWeightTable(entries []WeightEntry) WeightTable {
	t, err := NewWeightTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// OnboardingWeights scores the business-profile onboarding widget,
// including low-weight social handles.
var OnboardingWeights = MustWeightTable([]WeightEntry{
	{entities.FieldCompanyName, 10},
	{entities.FieldDescription, 15},
	{entities.FieldTargetAudience, 15},
	{entities.FieldDifferentiators, 10},
	{entities.FieldPainPoints, 10},
	{entities.FieldGooglePlaceID, 15},
	{entities.FieldInstagram, 5},
	{entities.FieldFacebook, 5},
})

// InformationWeights scores the "information" dimension of the digital
// diagnostic: five contact-surface fields at 20 points each.
var InformationWeights = MustWeightTable([]WeightEntry{
	{entities.FieldCompanyName, 20},
	{entities.FieldEmail, 20},
	{entities.FieldPhone, 20},
	{entities.FieldWebsite, 20},
	{entities.FieldGooglePlaceID, 20},
})

// Completeness sums the weights of the fields present on the profile,
// capped at 100. Presence rules live on the entity; content quality never
// affects the score.
func Completeness(profile *entities.BusinessProfile, table WeightTable) int {
	if profile == nil {
		return 0
	}
	sum := 0
	for _, e := range table.entries {
		if profile.HasField(e.Field) {
			sum += e.Points
		}
	}
	if sum > 100 {
		return 100
	}
	return sum
}

// MissingFields lists the table's fields the profile has not filled in,
// in table order. Used by diagnostic details and recommendations.
func MissingFields(profile *entities.BusinessProfile, table WeightTable) []string {
	var missing []string
	for _, e := range table.entries {
		if profile == nil || !profile.HasField(e.Field) {
			missing = append(missing, e.Field)
		}
	}
	return missing
}
