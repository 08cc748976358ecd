package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/salespulse/salespulse-backend/errors"
	"github.com/salespulse/salespulse-backend/internal/domain/entities"
)

// ProfileRepository implements the profile repository interface using GORM
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

// FindByTenant returns the tenant's profile
func (r *ProfileRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) (*entities.BusinessProfile, error) {
	var profile entities.BusinessProfile
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrProfileNotFound
		}
		return nil, apperrors.ErrDBQueryFailed(fmt.Errorf("failed to find profile: %w", err))
	}
	return &profile, nil
}

// Upsert creates or replaces the tenant's profile keyed by tenant_id
func (r *ProfileRepository) Upsert(ctx context.Context, profile *entities.BusinessProfile) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tenant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"company_name", "description", "target_audience",
				"differentiators", "pain_points", "google_place_id",
				"instagram", "facebook", "website", "email", "phone",
				"updated_at",
			}),
		}).
		Create(profile).Error; err != nil {
		return apperrors.ErrDBWriteFailed(fmt.Errorf("failed to upsert profile: %w", err))
	}
	return nil
}
