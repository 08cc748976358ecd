package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/salespulse/salespulse-backend/internal/domain/entities"
)

// ProfileRepository defines the interface for business profile data access
type ProfileRepository interface {
	// FindByTenant returns the tenant's profile
	FindByTenant(ctx context.Context, tenantID uuid.UUID) (*entities.BusinessProfile, error)

	// Upsert creates or replaces the tenant's profile
	Upsert(ctx context.Context, profile *entities.BusinessProfile) error
}
