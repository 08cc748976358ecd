// Package crm handles the transactional records the scoring engine later
// reads: satisfaction responses from NPS campaigns and opportunities from
// the Kanban workflow.
package crm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/salespulse/salespulse-backend/internal/domain/entities"
	"github.com/salespulse/salespulse-backend/internal/domain/repositories"
)

// Invalidator lets crm writes drop stale dashboard aggregates without
// depending on the dashboard package.
type Invalidator interface {
	Invalidate(ctx context.Context, tenantID uuid.UUID)
}

// Service handles response capture and lead workflow
type Service struct {
	responseRepo    repositories.ResponseRepository
	opportunityRepo repositories.OpportunityRepository
	invalidator     Invalidator
	logger          *zap.Logger
}

// NewService creates a new crm service
func NewService(
	responseRepo repositories.ResponseRepository,
	opportunityRepo repositories.OpportunityRepository,
	invalidator Invalidator,
	logger *zap.Logger,
) *Service {
	return &Service{
		responseRepo:    responseRepo,
		opportunityRepo: opportunityRepo,
		invalidator:     invalidator,
		logger:          logger,
	}
}

// CaptureResponseInput represents a new NPS survey answer
type CaptureResponseInput struct {
	Score       int
	Comment     *string
	RespondedAt *time.Time
}

// CaptureResponse validates and stores one survey answer. Out-of-range
// scores are rejected at this boundary so the engine never sees them.
func (s *Service) CaptureResponse(ctx context.Context, tenantID uuid.UUID, input CaptureResponseInput) (*entities.SatisfactionResponse, error) {
	if input.Score < entities.MinSatisfactionScore || input.Score > entities.MaxSatisfactionScore {
		return nil, entities.ErrInvalidScore
	}

	respondedAt := time.Now().UTC()
	if input.RespondedAt != nil {
		respondedAt = input.RespondedAt.UTC()
	}

	response := entities.NewSatisfactionResponse(tenantID, input.Score, input.Comment, respondedAt)
	if err := s.responseRepo.Create(ctx, response); err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, tenantID)
	return response, nil
}

// ResolveResponse marks a detractor follow-up as handled
func (s *Service) ResolveResponse(ctx context.Context, tenantID, responseID uuid.UUID) (*entities.SatisfactionResponse, error) {
	response, err := s.responseRepo.FindByID(ctx, tenantID, responseID)
	if err != nil {
		return nil, err
	}
	if response.Classify() != entities.ResponseClassDetractor {
		return nil, entities.ErrResponseNotDetractor
	}
	if response.ResolvedAt != nil {
		return response, nil
	}
	return s.responseRepo.MarkResolved(ctx, tenantID, responseID)
}

// ListResponses returns the tenant's responses ordered by responded_at
func (s *Service) ListResponses(ctx context.Context, tenantID uuid.UUID) ([]*entities.SatisfactionResponse, error) {
	return s.responseRepo.ListByTenant(ctx, tenantID)
}

// CreateLeadInput represents a new sales opportunity
type CreateLeadInput struct {
	Title         string
	ContactName   string
	ContactEmail  string
	MonetaryValue float64
}

// CreateLead validates and stores a new opportunity
func (s *Service) CreateLead(ctx context.Context, tenantID uuid.UUID, input CreateLeadInput) (*entities.Opportunity, error) {
	if input.MonetaryValue < 0 {
		return nil, entities.ErrInvalidValue
	}

	lead := entities.NewOpportunity(tenantID, input.Title, input.MonetaryValue)
	lead.ContactName = input.ContactName
	lead.ContactEmail = input.ContactEmail
	if err := s.opportunityRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, tenantID)
	return lead, nil
}

// UpdateLeadInput carries the mutable lead fields
type UpdateLeadInput struct {
	Status        *entities.OpportunityStatus
	MonetaryValue *float64
	Title         *string
}

// UpdateLead applies status moves and value edits
func (s *Service) UpdateLead(ctx context.Context, tenantID, leadID uuid.UUID, input UpdateLeadInput) (*entities.Opportunity, error) {
	lead, err := s.opportunityRepo.FindByID(ctx, tenantID, leadID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !entities.IsValidStatus(*input.Status) {
			return nil, entities.ErrInvalidOppStatus
		}
		lead.Status = *input.Status
	}
	if input.MonetaryValue != nil {
		if *input.MonetaryValue < 0 {
			return nil, entities.ErrInvalidValue
		}
		lead.MonetaryValue = *input.MonetaryValue
	}
	if input.Title != nil && *input.Title != "" {
		lead.Title = *input.Title
	}

	if err := s.opportunityRepo.Update(ctx, lead); err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, tenantID)
	return lead, nil
}

// ListLeads returns the tenant's opportunities, newest first
func (s *Service) ListLeads(ctx context.Context, tenantID uuid.UUID, filters repositories.OpportunityFilters) ([]*entities.Opportunity, error) {
	return s.opportunityRepo.ListByTenant(ctx, tenantID, filters)
}
