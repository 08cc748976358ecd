package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/salespulse/salespulse-backend/errors"
	"github.com/salespulse/salespulse-backend/internal/domain/entities"
	"github.com/salespulse/salespulse-backend/internal/domain/repositories"
)

// OpportunityRepository implements the opportunity repository interface using GORM
type OpportunityRepository struct {
	db *gorm.DB
}

// NewOpportunityRepository creates a new opportunity repository
func NewOpportunityRepository(db *gorm.DB) *OpportunityRepository {
	return &OpportunityRepository{
		db: db,
	}
}

// Create stores a new opportunity
func (r *OpportunityRepository) Create(ctx context.Context, opp *entities.Opportunity) error {
	if err := r.db.WithContext(ctx).Create(opp).Error; err != nil {
		return apperrors.ErrDBWriteFailed(fmt.Errorf("failed to create opportunity: %w", err))
	}
	return nil
}

// FindByID finds an opportunity by ID within a tenant
func (r *OpportunityRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entities.Opportunity, error) {
	var opp entities.Opportunity
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&opp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrOpportunityNotFound
		}
		return nil, apperrors.ErrDBQueryFailed(fmt.Errorf("failed to find opportunity by ID: %w", err))
	}
	return &opp, nil
}

// ListByTenant returns opportunities for a tenant, newest first
func (r *OpportunityRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID, filters repositories.OpportunityFilters) ([]*entities.Opportunity, error) {
	query := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID)

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit).Offset(filters.Offset)
	}

	var opps []*entities.Opportunity
	if err := query.Order("created_at DESC").Find(&opps).Error; err != nil {
		return nil, apperrors.ErrDBQueryFailed(fmt.Errorf("failed to list opportunities: %w", err))
	}
	return opps, nil
}

// Update persists status and value changes
func (r *OpportunityRepository) Update(ctx context.Context, opp *entities.Opportunity) error {
	if err := r.db.WithContext(ctx).Save(opp).Error; err != nil {
		return apperrors.ErrDBWriteFailed(fmt.Errorf("failed to update opportunity: %w", err))
	}
	return nil
}
