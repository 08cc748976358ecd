package scoring

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/salespulse/salespulse-backend/internal/domain/entities"
)

func TestCompleteness_ConcreteScenario(t *testing.T) {
	// Company name plus a 60-char description against the onboarding
	// table earns exactly 10 + 15 = 25.
	profile := entities.NewBusinessProfile(uuid.New())
	profile.CompanyName = "Acme Barbershop"
	profile.Description = strings.Repeat("x", 60)

	if got := Completeness(profile, OnboardingWeights); got != 25 {
		t.Errorf("completeness = %d, want 25", got)
	}
}

func TestCompleteness_ShortLongFormFieldsEarnNothing(t *testing.T) {
	profile := entities.NewBusinessProfile(uuid.New())
	profile.Description = strings.Repeat("x", 49)    // below 50-char minimum
	profile.TargetAudience = strings.Repeat("y", 29) // below 30-char minimum

	if got := Completeness(profile, OnboardingWeights); got != 0 {
		t.Errorf("completeness = %d, want 0 for below-minimum long-form fields", got)
	}

	profile.Description = strings.Repeat("x", 50)
	profile.TargetAudience = strings.Repeat("y", 30)
	if got := Completeness(profile, OnboardingWeights); got != 30 {
		t.Errorf("completeness = %d, want 30 once minimums are met", got)
	}
}

func TestCompleteness_LongFormMinimumsCountRunesNotBytes(t *testing.T) {
	profile := entities.NewBusinessProfile(uuid.New())

	// 49 accented characters span 98 bytes; the 50-character minimum must
	// still reject them.
	profile.Description = strings.Repeat("ã", 49)
	if got := Completeness(profile, OnboardingWeights); got != 0 {
		t.Errorf("completeness = %d, want 0 for 49-character accented description", got)
	}

	profile.Description = strings.Repeat("ã", 50)
	if got := Completeness(profile, OnboardingWeights); got != 15 {
		t.Errorf("completeness = %d, want 15 once 50 characters are reached", got)
	}
}

func TestCompleteness_FullProfileCapsAt100(t *testing.T) {
	profile := fullProfile()
	if got := Completeness(profile, OnboardingWeights); got != 85 {
		t.Errorf("onboarding completeness = %d, want 85 (table sums to 85)", got)
	}
	if got := Completeness(profile, InformationWeights); got != 100 {
		t.Errorf("information completeness = %d, want 100", got)
	}
}

func TestCompleteness_MonotonicAsFieldsFillIn(t *testing.T) {
	profile := entities.NewBusinessProfile(uuid.New())
	prev := Completeness(profile, InformationWeights)

	fill := []func(){
		func() { profile.CompanyName = "Acme" },
		func() { profile.Email = "hi@acme.test" },
		func() { profile.Phone = "+5511999990000" },
		func() { profile.Website = "https://acme.test" },
		func() { profile.GooglePlaceID = "ChIJplaceid" },
	}
	for i, f := range fill {
		f()
		got := Completeness(profile, InformationWeights)
		if got < prev {
			t.Fatalf("step %d: score dropped from %d to %d after adding a field", i, prev, got)
		}
		prev = got
	}
	if prev != 100 {
		t.Errorf("final score = %d, want 100", prev)
	}
}

func TestCompleteness_NilProfileIsZero(t *testing.T) {
	if got := Completeness(nil, OnboardingWeights); got != 0 {
		t.Errorf("nil profile: completeness = %d, want 0", got)
	}
}

func TestNewWeightTable_RejectsOverweightTables(t *testing.T) {
	_, err := NewWeightTable([]WeightEntry{
		{entities.FieldCompanyName, 60},
		{entities.FieldEmail, 50},
	})
	if err == nil {
		t.Fatal("expected error for table summing to 110")
	}
}

func TestNewWeightTable_RejectsNonPositiveWeights(t *testing.T) {
	_, err := NewWeightTable([]WeightEntry{{entities.FieldCompanyName, 0}})
	if err == nil {
		t.Fatal("expected error for zero weight")
	}
}

func TestMissingFields(t *testing.T) {
	profile := entities.NewBusinessProfile(uuid.New())
	profile.CompanyName = "Acme"

	missing := MissingFields(profile, InformationWeights)
	want := []string{
		entities.FieldEmail,
		entities.FieldPhone,
		entities.FieldWebsite,
		entities.FieldGooglePlaceID,
	}
	if len(missing) != len(want) {
		t.Fatalf("missing = %v, want %v", missing, want)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Errorf("missing[%d] = %q, want %q", i, missing[i], want[i])
		}
	}
}

func fullProfile() *entities.BusinessProfile {
	p := entities.NewBusinessProfile(uuid.New())
	p.CompanyName = "Acme Barbershop"
	p.Description = strings.Repeat("barbershop in downtown ", 4)
	p.TargetAudience = "young professionals in the city center"
	p.Differentiators = "open late, walk-ins welcome"
	p.PainPoints = "no-shows"
	p.GooglePlaceID = "ChIJplaceid"
	p.Instagram = "@acme"
	p.Facebook = "acme"
	p.Website = "https://acme.test"
	p.Email = "hi@acme.test"
	p.Phone = "+5511999990000"
	return p
}
