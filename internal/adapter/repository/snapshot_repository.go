package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/salespulse/salespulse-backend/errors"
	"github.com/salespulse/salespulse-backend/internal/domain/entities"
)

// SnapshotRepository implements the append-only snapshot log using GORM.
// Rows are only ever inserted; the "latest snapshot" ordering under
// concurrent writers is serialized by the database's created_at ordering.
type SnapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{
		db: db,
	}
}

// Append stores a new snapshot
func (r *SnapshotRepository) Append(ctx context.Context, snapshot *entities.DiagnosticSnapshot) error {
	if err := r.db.WithContext(ctx).Create(snapshot).Error; err != nil {
		return apperrors.ErrDBWriteFailed(fmt.Errorf("failed to append snapshot: %w", err))
	}
	return nil
}

// FindLatest returns the most recent snapshot for a tenant
func (r *SnapshotRepository) FindLatest(ctx context.Context, tenantID uuid.UUID) (*entities.DiagnosticSnapshot, error) {
	var snapshot entities.DiagnosticSnapshot
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrSnapshotNotFound
		}
		return nil, apperrors.ErrDBQueryFailed(fmt.Errorf("failed to find latest snapshot: %w", err))
	}
	return &snapshot, nil
}

// ListByTenant returns snapshots for a tenant, newest first
func (r *SnapshotRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entities.DiagnosticSnapshot, error) {
	var snapshots []*entities.DiagnosticSnapshot
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&snapshots).Error; err != nil {
		return nil, apperrors.ErrDBQueryFailed(fmt.Errorf("failed to list snapshots: %w", err))
	}
	return snapshots, nil
}
