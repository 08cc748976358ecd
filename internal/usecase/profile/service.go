// Package profile manages the tenant's business profile and the
// onboarding completeness score derived from it.
package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/salespulse/salespulse-backend/internal/domain/entities"
	"github.com/salespulse/salespulse-backend/internal/domain/repositories"
	"github.com/salespulse/salespulse-backend/internal/usecase/scoring"
)

// Service handles profile reads, updates, and onboarding scoring
type Service struct {
	profileRepo repositories.ProfileRepository
}

// NewService creates a new profile service
func NewService(profileRepo repositories.ProfileRepository) *Service {
	return &Service{profileRepo: profileRepo}
}

// Get returns the tenant's profile, or an empty one if none was saved yet
// so the onboarding widget always has something to render.
func (s *Service) Get(ctx context.Context, tenantID uuid.UUID) (*entities.BusinessProfile, error) {
	profile, err := s.profileRepo.FindByTenant(ctx, tenantID)
	if errors.Is(err, entities.ErrProfileNotFound) {
		return entities.NewBusinessProfile(tenantID), nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateInput carries the full set of editable profile fields. The update
// is a whole-document replace, mirroring the onboarding form submit.
type UpdateInput struct {
	CompanyName     string
	Description     string
	TargetAudience  string
	Differentiators string
	PainPoints      string
	GooglePlaceID   string
	Instagram       string
	Facebook        string
	Website         string
	Email           string
	Phone           string
}

// Update upserts the tenant's profile
func (s *Service) Update(ctx context.Context, tenantID uuid.UUID, input UpdateInput) (*entities.BusinessProfile, error) {
	profile, err := s.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	profile.CompanyName = input.CompanyName
	profile.Description = input.Description
	profile.TargetAudience = input.TargetAudience
	profile.Differentiators = input.Differentiators
	profile.PainPoints = input.PainPoints
	profile.GooglePlaceID = input.GooglePlaceID
	profile.Instagram = input.Instagram
	profile.Facebook = input.Facebook
	profile.Website = input.Website
	profile.Email = input.Email
	profile.Phone = input.Phone

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// CompletenessResult is the onboarding score with its gaps.
type CompletenessResult struct {
	Score         int      `json:"score"`
	MissingFields []string `json:"missing_fields"`
}

// OnboardingCompleteness scores the profile against the onboarding weight
// table (social handles included at low weight).
func (s *Service) OnboardingCompleteness(ctx context.Context, tenantID uuid.UUID) (*CompletenessResult, error) {
	profile, err := s.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return &CompletenessResult{
		Score:         scoring.Completeness(profile, scoring.OnboardingWeights),
		MissingFields: scoring.MissingFields(profile, scoring.OnboardingWeights),
	}, nil
}
