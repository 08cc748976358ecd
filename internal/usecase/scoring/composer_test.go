package scoring

import (
	"testing"

	"github.com/salespulse/salespulse-backend/internal/domain/entities"
)

func TestCompose_ConcreteScenario(t *testing.T) {
	// Raw NPS 40 => reputation round((40+100)/2) = 70;
	// overall round((70+25+60)/3) = round(51.67) = 52.
	c := Compose(NPSResult{Score: 40}, 25, 60)
	if c.ReputationScore != 70 {
		t.Errorf("reputation = %d, want 70", c.ReputationScore)
	}
	if c.OverallScore != 52 {
		t.Errorf("overall = %d, want 52", c.OverallScore)
	}
}

func TestCompose_ScoresStayInRange(t *testing.T) {
	cases := []struct {
		nps         int
		information int
		engagement  int
	}{
		{-100, 0, 0},
		{100, 100, 100},
		{0, 0, 0},
		{-100, 150, -10}, // out-of-range inputs are clamped, not propagated
	}
	for _, tc := range cases {
		c := Compose(NPSResult{Score: tc.nps}, tc.information, tc.engagement)
		for name, v := range map[string]int{
			"reputation":  c.ReputationScore,
			"information": c.InformationScore,
			"engagement":  c.EngagementScore,
			"overall":     c.OverallScore,
		} {
			if v < 0 || v > 100 {
				t.Errorf("inputs %+v: %s score %d out of [0,100]", tc, name, v)
			}
		}
	}
}

func TestCompose_AllZeroIsValidNotMissing(t *testing.T) {
	c := Compose(NPSResult{Score: -100}, 0, 0)
	if c.OverallScore != 0 {
		t.Errorf("overall = %d, want 0", c.OverallScore)
	}
}

func TestCompose_Deterministic(t *testing.T) {
	a := Compose(NPSResult{Score: 40, Promoters: 3, Detractors: 1, Passives: 1, Total: 5}, 25, 60)
	b := Compose(NPSResult{Score: 40, Promoters: 3, Detractors: 1, Passives: 1, Total: 5}, 25, 60)
	if a != b {
		t.Errorf("identical inputs produced different composites: %+v vs %+v", a, b)
	}
}

func TestClassifyTrend(t *testing.T) {
	prev := &entities.DiagnosticSnapshot{OverallScore: 80}
	cases := []struct {
		overall  int
		previous *entities.DiagnosticSnapshot
		want     entities.Trend
	}{
		{90, prev, entities.TrendImproving}, // +10 > 5
		{76, prev, entities.TrendStable},    // -4 within threshold
		{70, prev, entities.TrendDeclining}, // -10 < -5
		{85, prev, entities.TrendStable},    // +5 is not > 5
		{75, prev, entities.TrendStable},    // -5 is not < -5
		{50, nil, entities.TrendStable},     // no prior snapshot
	}
	for _, tc := range cases {
		if got := entities.ClassifyTrend(tc.overall, tc.previous); got != tc.want {
			t.Errorf("ClassifyTrend(%d, prev=%v) = %s, want %s", tc.overall, tc.previous != nil, got, tc.want)
		}
	}
}
