package recommend

import (
	"testing"

	"github.com/salespulse/salespulse-backend/internal/domain/entities"
)

func healthyFacts() Facts {
	return Facts{
		ReputationScore:  90,
		InformationScore: 100,
		EngagementScore:  80,
		PlaceIDPresent:   true,
	}
}

func TestEngineRun_HealthyTenantGetsNothing(t *testing.T) {
	engine := NewEngine()
	recs := engine.Run(healthyFacts())
	if len(recs) != 0 {
		t.Errorf("healthy facts produced %d recommendations, want 0", len(recs))
	}
}

func TestEngineRun_AllRulesFireCappedAtFive(t *testing.T) {
	engine := NewEngine()
	recs := engine.Run(Facts{
		ReputationScore:          30,
		InformationScore:         40,
		EngagementScore:          10,
		PlaceIDPresent:           false,
		UnresolvedDetractorCount: 4,
	})
	if len(recs) > MaxRecommendations {
		t.Fatalf("got %d recommendations, cap is %d", len(recs), MaxRecommendations)
	}
	if len(recs) != 5 {
		t.Errorf("all five rules should fire, got %d", len(recs))
	}
}

func TestEngineRun_PrioritiesNonIncreasing(t *testing.T) {
	engine := NewEngine()
	recs := engine.Run(Facts{
		ReputationScore:          65,
		InformationScore:         75, // medium priority
		EngagementScore:          20, // medium priority
		PlaceIDPresent:           false,
		UnresolvedDetractorCount: 1,
	})
	for i := 1; i < len(recs); i++ {
		if entities.PriorityRank(recs[i].Priority) < entities.PriorityRank(recs[i-1].Priority) {
			t.Errorf("priority order broken at %d: %s after %s",
				i, recs[i].Priority, recs[i-1].Priority)
		}
	}
}

func TestEngineRun_StableTiebreakByRuleOrder(t *testing.T) {
	engine := NewEngine()
	// Two high-priority reputation hits: LowReputation (rule 1) must come
	// before UnresolvedDetractors (rule 5).
	recs := engine.Run(Facts{
		ReputationScore:          50,
		InformationScore:         100,
		EngagementScore:          80,
		PlaceIDPresent:           true,
		UnresolvedDetractorCount: 2,
	})
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	if recs[0].Title != "Convert detractors into promoters" {
		t.Errorf("first recommendation = %q, rule order tiebreak violated", recs[0].Title)
	}
	if recs[1].Title != "Follow up with unhappy customers" {
		t.Errorf("second recommendation = %q", recs[1].Title)
	}
}

func TestEngineRun_SameCategoryMayCoOccur(t *testing.T) {
	engine := NewEngine()
	recs := engine.Run(Facts{
		ReputationScore:          50,
		InformationScore:         100,
		EngagementScore:          80,
		PlaceIDPresent:           true,
		UnresolvedDetractorCount: 1,
	})
	reputation := 0
	for _, r := range recs {
		if r.Category == entities.RecommendationCategoryReputation {
			reputation++
		}
	}
	if reputation != 2 {
		t.Errorf("got %d reputation recommendations, want 2 (no category dedup)", reputation)
	}
}
