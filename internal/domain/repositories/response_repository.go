package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/salespulse/salespulse-backend/internal/domain/entities"
)

// ResponseRepository defines the interface for satisfaction response data access
type ResponseRepository interface {
	// Create stores a new satisfaction response
	Create(ctx context.Context, response *entities.SatisfactionResponse) error

	// FindByID finds a response by ID within a tenant
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entities.SatisfactionResponse, error)

	// ListByTenant returns all responses for a tenant ordered by responded_at
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entities.SatisfactionResponse, error)

	// MarkResolved records the detractor follow-up timestamp
	MarkResolved(ctx context.Context, tenantID, id uuid.UUID) (*entities.SatisfactionResponse, error)
}
