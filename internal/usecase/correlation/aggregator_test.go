package correlation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/salespulse/salespulse-backend/internal/domain/entities"
)

func lead(value float64, at time.Time) *entities.Opportunity {
	o := entities.NewOpportunity(uuid.New(), "lead", value)
	o.CreatedAt = at
	return o
}

func response(score int, at time.Time) *entities.SatisfactionResponse {
	return entities.NewSatisfactionResponse(uuid.New(), score, nil, at)
}

func TestAggregate_BucketingRoundTrip(t *testing.T) {
	leads := []*entities.Opportunity{
		lead(1000, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
	}
	responses := []*entities.SatisfactionResponse{
		response(10, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)),
	}

	points := Aggregate(leads, responses, 3)
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	p := points[0]
	if p.PeriodKey != "2024-03" {
		t.Errorf("period key = %q, want 2024-03", p.PeriodKey)
	}
	if p.DealValue != 1000 {
		t.Errorf("deal value = %v, want 1000", p.DealValue)
	}
	if p.NPSScore != 100 {
		t.Errorf("nps = %d, want 100", p.NPSScore)
	}
	if p.Label != "Mar 24" {
		t.Errorf("label = %q, want Mar 24", p.Label)
	}
}

func TestAggregate_LonelyBucketsStillAppear(t *testing.T) {
	leads := []*entities.Opportunity{
		lead(500, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
	}
	responses := []*entities.SatisfactionResponse{
		response(9, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)),
	}

	points := Aggregate(leads, responses, 3)
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].PeriodKey != "2024-01" || points[0].NPSScore != 0 || points[0].DealValue != 500 {
		t.Errorf("lead-only bucket wrong: %+v", points[0])
	}
	if points[1].PeriodKey != "2024-02" || points[1].DealValue != 0 || points[1].NPSScore != 100 {
		t.Errorf("response-only bucket wrong: %+v", points[1])
	}
}

func TestAggregate_ReturnsLastNAscending(t *testing.T) {
	var leads []*entities.Opportunity
	for month := 1; month <= 6; month++ {
		leads = append(leads, lead(float64(month*100), time.Date(2024, time.Month(month), 1, 0, 0, 0, 0, time.UTC)))
	}

	points := Aggregate(leads, nil, 3)
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}
	want := []string{"2024-04", "2024-05", "2024-06"}
	for i, key := range want {
		if points[i].PeriodKey != key {
			t.Errorf("points[%d].PeriodKey = %q, want %q", i, points[i].PeriodKey, key)
		}
	}
}

func TestAggregate_NegativeNPSFlooredForDisplay(t *testing.T) {
	responses := []*entities.SatisfactionResponse{
		response(2, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		response(3, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)),
	}
	points := Aggregate(nil, responses, 3)
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	if points[0].NPSScore != 0 {
		t.Errorf("nps = %d, want 0 (raw -100 floored for charting)", points[0].NPSScore)
	}
}

func TestAggregate_SkipsZeroTimestamps(t *testing.T) {
	leads := []*entities.Opportunity{
		lead(100, time.Time{}), // malformed historical row
		lead(200, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)),
	}
	points := Aggregate(leads, nil, 3)
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	if points[0].DealValue != 200 {
		t.Errorf("deal value = %v, want 200 (zero-timestamp lead skipped)", points[0].DealValue)
	}
}

func TestAggregate_DefaultPeriodsWhenNonPositive(t *testing.T) {
	var leads []*entities.Opportunity
	for month := 1; month <= 5; month++ {
		leads = append(leads, lead(100, time.Date(2024, time.Month(month), 1, 0, 0, 0, 0, time.UTC)))
	}
	points := Aggregate(leads, nil, 0)
	if len(points) != DefaultPeriods {
		t.Errorf("got %d points, want default %d", len(points), DefaultPeriods)
	}
}
