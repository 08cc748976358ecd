package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/salespulse/salespulse-backend/errors"
	"github.com/salespulse/salespulse-backend/internal/domain/entities"
)

// ResponseRepository implements the response repository interface using GORM
type ResponseRepository struct {
	db *gorm.DB
}

// NewResponseRepository creates a new response repository
func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{
		db: db,
	}
}

// Create stores a new satisfaction response
func (r *ResponseRepository) Create(ctx context.Context, response *entities.SatisfactionResponse) error {
	if err := r.db.WithContext(ctx).Create(response).Error; err != nil {
		return apperrors.ErrDBWriteFailed(fmt.Errorf("failed to create response: %w", err))
	}
	return nil
}

// FindByID finds a response by ID within a tenant
func (r *ResponseRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entities.SatisfactionResponse, error) {
	var response entities.SatisfactionResponse
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&response).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrResponseNotFound
		}
		return nil, apperrors.ErrDBQueryFailed(fmt.Errorf("failed to find response by ID: %w", err))
	}
	return &response, nil
}

// ListByTenant returns all responses for a tenant ordered by responded_at
func (r *ResponseRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entities.SatisfactionResponse, error) {
	var responses []*entities.SatisfactionResponse
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("responded_at ASC").
		Find(&responses).Error; err != nil {
		return nil, apperrors.ErrDBQueryFailed(fmt.Errorf("failed to list responses: %w", err))
	}
	return responses, nil
}

// MarkResolved records the detractor follow-up timestamp
func (r *ResponseRepository) MarkResolved(ctx context.Context, tenantID, id uuid.UUID) (*entities.SatisfactionResponse, error) {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&entities.SatisfactionResponse{}).
		Where("tenant_id = ? AND id = ? AND resolved_at IS NULL", tenantID, id).
		Update("resolved_at", now)
	if result.Error != nil {
		return nil, apperrors.ErrDBWriteFailed(fmt.Errorf("failed to mark response resolved: %w", result.Error))
	}
	if result.RowsAffected == 0 {
		return nil, entities.ErrResponseNotFound
	}
	return r.FindByID(ctx, tenantID, id)
}
