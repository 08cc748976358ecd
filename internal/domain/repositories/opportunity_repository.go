package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/salespulse/salespulse-backend/internal/domain/entities"
)

// OpportunityFilters narrows ListByTenant results
type OpportunityFilters struct {
	Status *entities.OpportunityStatus
	Limit  int
	Offset int
}

// OpportunityRepository defines the interface for lead data access
type OpportunityRepository interface {
	// Create stores a new opportunity
	Create(ctx context.Context, opp *entities.Opportunity) error

	// FindByID finds an opportunity by ID within a tenant
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entities.Opportunity, error)

	// ListByTenant returns opportunities for a tenant, newest first
	ListByTenant(ctx context.Context, tenantID uuid.UUID, filters OpportunityFilters) ([]*entities.Opportunity, error)

	// Update persists status and value changes
	Update(ctx context.Context, opp *entities.Opportunity) error
}
