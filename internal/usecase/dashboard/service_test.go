package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/salespulse/salespulse-backend/internal/domain/entities"
	"github.com/salespulse/salespulse-backend/internal/domain/repositories"
	"github.com/salespulse/salespulse-backend/internal/infrastructure/cache"
)

type fakeOpportunityRepo struct {
	leads []*entities.Opportunity
}

func (f *fakeOpportunityRepo) Create(ctx context.Context, o *entities.Opportunity) error {
	f.leads = append(f.leads, o)
	return nil
}

func (f *fakeOpportunityRepo) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entities.Opportunity, error) {
	return nil, entities.ErrOpportunityNotFound
}

func (f *fakeOpportunityRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, filters repositories.OpportunityFilters) ([]*entities.Opportunity, error) {
	out := make([]*entities.Opportunity, 0)
	for _, o := range f.leads {
		if o.TenantID == tenantID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOpportunityRepo) Update(ctx context.Context, o *entities.Opportunity) error {
	return nil
}

type fakeResponseRepo struct {
	responses []*entities.SatisfactionResponse
}

func (f *fakeResponseRepo) Create(ctx context.Context, r *entities.SatisfactionResponse) error {
	f.responses = append(f.responses, r)
	return nil
}

func (f *fakeResponseRepo) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entities.SatisfactionResponse, error) {
	return nil, entities.ErrResponseNotFound
}

func (f *fakeResponseRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entities.SatisfactionResponse, error) {
	out := make([]*entities.SatisfactionResponse, 0)
	for _, r := range f.responses {
		if r.TenantID == tenantID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResponseRepo) MarkResolved(ctx context.Context, tenantID, id uuid.UUID) (*entities.SatisfactionResponse, error) {
	return nil, entities.ErrResponseNotFound
}

func seedMonth(leads *fakeOpportunityRepo, responses *fakeResponseRepo, tenantID uuid.UUID, month time.Month, value float64, score int) {
	at := time.Date(2024, month, 10, 0, 0, 0, 0, time.UTC)
	lead := entities.NewOpportunity(tenantID, "deal", value)
	lead.CreatedAt = at
	leads.leads = append(leads.leads, lead)
	responses.responses = append(responses.responses,
		entities.NewSatisfactionResponse(tenantID, score, nil, at))
}

func TestCorrelation_CachesDefaultPeriodSeries(t *testing.T) {
	tenantID := uuid.New()
	leads := &fakeOpportunityRepo{}
	responses := &fakeResponseRepo{}
	seedMonth(leads, responses, tenantID, time.March, 1000, 10)

	svc := NewService(leads, responses, cache.NewMemoryStore(), zap.NewNop())

	first, err := svc.Correlation(context.Background(), tenantID, 0)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1000.0, first[0].DealValue)

	// New data is invisible until the cached series expires or is
	// invalidated.
	seedMonth(leads, responses, tenantID, time.April, 500, 9)

	cached, err := svc.Correlation(context.Background(), tenantID, 0)
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	svc.Invalidate(context.Background(), tenantID)

	fresh, err := svc.Correlation(context.Background(), tenantID, 0)
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}

func TestCorrelation_NonDefaultWindowBypassesCache(t *testing.T) {
	tenantID := uuid.New()
	leads := &fakeOpportunityRepo{}
	responses := &fakeResponseRepo{}
	seedMonth(leads, responses, tenantID, time.January, 100, 8)

	svc := NewService(leads, responses, cache.NewMemoryStore(), zap.NewNop())

	_, err := svc.Correlation(context.Background(), tenantID, 12)
	require.NoError(t, err)

	// A 12-month window never populated the cache, so the default window
	// still computes from the repositories.
	seedMonth(leads, responses, tenantID, time.February, 200, 9)

	points, err := svc.Correlation(context.Background(), tenantID, 12)
	require.NoError(t, err)
	assert.Len(t, points, 2)
}

func TestCorrelation_TenantsAreIsolated(t *testing.T) {
	tenantA := uuid.New()
	tenantB := uuid.New()
	leads := &fakeOpportunityRepo{}
	responses := &fakeResponseRepo{}
	seedMonth(leads, responses, tenantA, time.March, 1000, 10)

	svc := NewService(leads, responses, cache.NewMemoryStore(), zap.NewNop())

	pointsA, err := svc.Correlation(context.Background(), tenantA, 0)
	require.NoError(t, err)
	assert.Len(t, pointsA, 1)

	pointsB, err := svc.Correlation(context.Background(), tenantB, 0)
	require.NoError(t, err)
	assert.Empty(t, pointsB)
}
