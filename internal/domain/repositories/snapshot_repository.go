package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/salespulse/salespulse-backend/internal/domain/entities"
)

// SnapshotRepository defines the interface for the append-only diagnostic
// snapshot log. Snapshots are never updated or deleted.
type SnapshotRepository interface {
	// Append stores a new snapshot
	Append(ctx context.Context, snapshot *entities.DiagnosticSnapshot) error

	// FindLatest returns the most recent snapshot for a tenant, or
	// entities.ErrSnapshotNotFound when the tenant has none
	FindLatest(ctx context.Context, tenantID uuid.UUID) (*entities.DiagnosticSnapshot, error)

	// ListByTenant returns snapshots for a tenant, newest first
	ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entities.DiagnosticSnapshot, error)
}
