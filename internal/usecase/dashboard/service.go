// Package dashboard serves the value-delivered report: the monthly
// deal-value / NPS correlation series, cached read-through so button-mash
// refreshes do not re-scan the tenant's history.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/salespulse/salespulse-backend/internal/domain/entities"
	"github.com/salespulse/salespulse-backend/internal/domain/repositories"
	"github.com/salespulse/salespulse-backend/internal/infrastructure/cache"
	"github.com/salespulse/salespulse-backend/internal/usecase/correlation"
)

// correlationTTL bounds how stale a cached series may get.
const correlationTTL = 5 * time.Minute

// Service computes dashboard aggregates
type Service struct {
	opportunityRepo repositories.OpportunityRepository
	responseRepo    repositories.ResponseRepository
	store           cache.Store
	logger          *zap.Logger
}

// NewService creates a new dashboard service
func NewService(
	opportunityRepo repositories.OpportunityRepository,
	responseRepo repositories.ResponseRepository,
	store cache.Store,
	logger *zap.Logger,
) *Service {
	return &Service{
		opportunityRepo: opportunityRepo,
		responseRepo:    responseRepo,
		store:           store,
		logger:          logger,
	}
}

// Correlation returns the last n months of joined deal value and NPS.
// Only the default-period series the dashboard renders is cached;
// non-default windows are computed fresh.
func (s *Service) Correlation(ctx context.Context, tenantID uuid.UUID, periods int) ([]entities.CorrelationPoint, error) {
	if periods <= 0 {
		periods = correlation.DefaultPeriods
	}

	cacheable := periods == correlation.DefaultPeriods
	key := correlationKey(tenantID)

	if cacheable {
		var cached []entities.CorrelationPoint
		hit, err := s.store.Get(ctx, key, &cached)
		if err != nil {
			// Cache trouble degrades to a recompute, never to a failed report.
			s.logger.Warn("dashboard.cache.get_failed", zap.Error(err))
		} else if hit {
			return cached, nil
		}
	}

	leads, err := s.opportunityRepo.ListByTenant(ctx, tenantID, repositories.OpportunityFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}
	responses, err := s.responseRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}

	points := correlation.Aggregate(leads, responses, periods)

	if cacheable {
		if err := s.store.Set(ctx, key, points, correlationTTL); err != nil {
			s.logger.Warn("dashboard.cache.set_failed", zap.Error(err))
		}
	}
	return points, nil
}

// Invalidate drops the tenant's cached series after a lead or response
// write.
func (s *Service) Invalidate(ctx context.Context, tenantID uuid.UUID) {
	if err := s.store.Delete(ctx, correlationKey(tenantID)); err != nil {
		s.logger.Warn("dashboard.cache.invalidate_failed",
			zap.String("tenant_id", tenantID.String()),
			zap.Error(err),
		)
	}
}

func correlationKey(tenantID uuid.UUID) string {
	return "dashboard:correlation:" + tenantID.String()
}
