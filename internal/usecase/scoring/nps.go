// Package scoring holds the pure business-health calculations: NPS,
// profile completeness, engagement, and the composite diagnostic score.
// Nothing in this package touches a clock, id generator, or store; every
// function is deterministic over its arguments.
package scoring

import (
	"math"

	"github.com/salespulse/salespulse-backend/internal/domain/entities"
)

// NPSResult is the Net Promoter Score with its promoter/passive/detractor
// partition. Score is on the standard [-100, 100] scale.
type NPSResult struct {
	Score      int `json:"score"`
	Promoters  int `json:"promoters"`
	Passives   int `json:"passives"`
	Detractors int `json:"detractors"`
	Total      int `json:"total"`
}

// NPS computes the Net Promoter Score over a set of responses in a single
// pass. An empty set yields a zero result, a documented floor rather than
// an error. Responses with a score outside the 0-10 scale are skipped
// per-record so one bad historical row never aborts a scoring run.
func NPS(responses []*entities.SatisfactionResponse) NPSResult {
	var result NPSResult
	for _, r := range responses {
		if !r.IsValidScore() {
			continue
		}
		result.Total++
		switch r.Classify() {
		case entities.ResponseClassPromoter:
			result.Promoters++
		case entities.ResponseClassDetractor:
			result.Detractors++
		default:
			result.Passives++
		}
	}
	if result.Total == 0 {
		return result
	}
	result.Score = round(float64(result.Promoters-result.Detractors) / float64(result.Total) * 100)
	return result
}

// ReputationFromNPS remaps a raw [-100, 100] NPS score onto the [0, 100]
// axis used by the composite diagnostic. This coexists on purpose with the
// raw score: correlation charts floor the raw value at zero instead, and
// the two conventions must not be collapsed into one.
func ReputationFromNPS(raw int) int {
	return clamp(round(float64(raw+100)/2), 0, 100)
}

func round(v float64) int {
	return int(math.Round(v))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
