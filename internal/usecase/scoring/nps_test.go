package scoring

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/salespulse/salespulse-backend/internal/domain/entities"
)

func responsesFromScores(scores ...int) []*entities.SatisfactionResponse {
	tenantID := uuid.New()
	out := make([]*entities.SatisfactionResponse, 0, len(scores))
	for _, s := range scores {
		r := entities.NewSatisfactionResponse(tenantID, s, nil, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
		out = append(out, r)
	}
	return out
}

func TestNPS_EmptySetIsZeroFloor(t *testing.T) {
	result := NPS(nil)
	if result.Score != 0 || result.Total != 0 {
		t.Errorf("empty set: got score=%d total=%d, want zeros", result.Score, result.Total)
	}
	if result.Promoters != 0 || result.Passives != 0 || result.Detractors != 0 {
		t.Errorf("empty set: got counts %d/%d/%d, want zeros",
			result.Promoters, result.Passives, result.Detractors)
	}
}

func TestNPS_ConcreteScenario(t *testing.T) {
	// [9,9,10,3,7] => total 5, promoters 3, detractors 1, passives 1,
	// score round((3-1)/5*100) = 40.
	result := NPS(responsesFromScores(9, 9, 10, 3, 7))
	if result.Total != 5 {
		t.Fatalf("total = %d, want 5", result.Total)
	}
	if result.Promoters != 3 || result.Detractors != 1 || result.Passives != 1 {
		t.Errorf("partition = %d/%d/%d, want 3/1/1",
			result.Promoters, result.Passives, result.Detractors)
	}
	if result.Score != 40 {
		t.Errorf("score = %d, want 40", result.Score)
	}
}

func TestNPS_PartitionSumsToTotal(t *testing.T) {
	cases := [][]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		{10, 10, 10},
		{0, 0},
		{7, 8, 7, 8},
		{6, 9},
	}
	for _, scores := range cases {
		result := NPS(responsesFromScores(scores...))
		if got := result.Promoters + result.Passives + result.Detractors; got != result.Total {
			t.Errorf("scores %v: partition sums to %d, total is %d", scores, got, result.Total)
		}
	}
}

func TestNPS_ScoreStaysInRange(t *testing.T) {
	allPromoters := NPS(responsesFromScores(9, 10, 9, 10))
	if allPromoters.Score != 100 {
		t.Errorf("all promoters: score = %d, want 100", allPromoters.Score)
	}
	allDetractors := NPS(responsesFromScores(0, 3, 6))
	if allDetractors.Score != -100 {
		t.Errorf("all detractors: score = %d, want -100", allDetractors.Score)
	}
}

func TestNPS_SkipsOutOfRangeScores(t *testing.T) {
	responses := responsesFromScores(9, 9)
	bad := entities.NewSatisfactionResponse(uuid.New(), 42, nil, time.Now())
	responses = append(responses, bad)

	result := NPS(responses)
	if result.Total != 2 {
		t.Errorf("total = %d, want 2 (out-of-range row skipped)", result.Total)
	}
	if result.Score != 100 {
		t.Errorf("score = %d, want 100", result.Score)
	}
}

func TestReputationFromNPS(t *testing.T) {
	cases := []struct {
		raw  int
		want int
	}{
		{-100, 0},
		{0, 50},
		{40, 70},
		{100, 100},
		{-33, 34}, // round(33.5) rounds half away from zero
	}
	for _, tc := range cases {
		if got := ReputationFromNPS(tc.raw); got != tc.want {
			t.Errorf("ReputationFromNPS(%d) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}
