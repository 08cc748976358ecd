package recommend

import (
	"sort"

	"github.com/salespulse/salespulse-backend/internal/domain/entities"
)

// Engine runs the registered rules against a set of facts and collects the
// resulting recommendations.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with the built-in rule table in its fixed
// evaluation order. The order matters: it is the tiebreaker between
// recommendations of equal priority.
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			LowReputation,
			IncompleteProfile,
			MissingPlaceID,
			LowEngagement,
			UnresolvedDetractors,
		},
	}
}

// Run evaluates every rule independently, sorts the hits by priority with
// rule order as the stable tiebreaker, and truncates to the cap. Multiple
// recommendations of the same category may co-occur; there is no category
// dedup. Zero rules firing yields an empty list, not an error.
func (e *Engine) Run(facts Facts) []entities.Recommendation {
	out := make([]entities.Recommendation, 0, len(e.rules))
	for _, rule := range e.rules {
		if rec := rule(facts); rec != nil {
			out = append(out, *rec)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return entities.PriorityRank(out[i].Priority) < entities.PriorityRank(out[j].Priority)
	})

	if len(out) > MaxRecommendations {
		out = out[:MaxRecommendations]
	}
	return out
}
