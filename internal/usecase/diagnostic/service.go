// Package diagnostic orchestrates the fetch-then-score pipeline: it pulls
// the tenant's collections from the repositories, runs the pure scoring
// functions, and appends the resulting snapshot. Recomputation only ever
// happens through an explicit Run call; there is no scheduler.
package diagnostic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/salespulse/salespulse-backend/internal/domain/entities"
	"github.com/salespulse/salespulse-backend/internal/domain/repositories"
	"github.com/salespulse/salespulse-backend/internal/usecase/recommend"
	"github.com/salespulse/salespulse-backend/internal/usecase/scoring"
)

// Service runs on-demand diagnostics for a tenant
type Service struct {
	responseRepo repositories.ResponseRepository
	profileRepo  repositories.ProfileRepository
	snapshotRepo repositories.SnapshotRepository
	engine       *recommend.Engine
	logger       *zap.Logger
}

// NewService creates a new diagnostic service
func NewService(
	responseRepo repositories.ResponseRepository,
	profileRepo repositories.ProfileRepository,
	snapshotRepo repositories.SnapshotRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		responseRepo: responseRepo,
		profileRepo:  profileRepo,
		snapshotRepo: snapshotRepo,
		engine:       recommend.NewEngine(),
		logger:       logger,
	}
}

// Result is one completed diagnostic run.
type Result struct {
	Snapshot        *entities.DiagnosticSnapshot
	Recommendations []entities.Recommendation
}

// Run executes a full diagnostic for the tenant and appends the snapshot
// to the tenant's log. Running twice in a row with unchanged data yields
// two snapshots with identical scores; idempotence is over the computation,
// not the append.
func (s *Service) Run(ctx context.Context, tenantID uuid.UUID) (*Result, error) {
	responses, err := s.responseRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}

	profile, err := s.profileRepo.FindByTenant(ctx, tenantID)
	if err != nil && !errors.Is(err, entities.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	previous, err := s.snapshotRepo.FindLatest(ctx, tenantID)
	if err != nil && !errors.Is(err, entities.ErrSnapshotNotFound) {
		return nil, fmt.Errorf("failed to load previous snapshot: %w", err)
	}

	nps := scoring.NPS(responses)
	information := scoring.Completeness(profile, scoring.InformationWeights)
	engagement := scoring.Engagement(nps.Total, nps.Promoters)
	composite := scoring.Compose(nps, information, engagement)

	details := buildDetails(nps, profile, responses)
	facts := recommend.Facts{
		ReputationScore:          composite.ReputationScore,
		InformationScore:         composite.InformationScore,
		EngagementScore:          composite.EngagementScore,
		PlaceIDPresent:           details.PlaceIDPresent,
		UnresolvedDetractorCount: details.UnresolvedDetractors,
		MissingFields:            details.MissingFields,
	}
	recommendations := s.engine.Run(facts)
	for i := range recommendations {
		recommendations[i].ID = uuid.New()
	}

	snapshot := entities.NewDiagnosticSnapshot(tenantID)
	snapshot.ReputationScore = composite.ReputationScore
	snapshot.InformationScore = composite.InformationScore
	snapshot.EngagementScore = composite.EngagementScore
	snapshot.OverallScore = composite.OverallScore
	snapshot.Trend = entities.ClassifyTrend(composite.OverallScore, previous)

	if snapshot.Details, err = marshalJSON(details); err != nil {
		return nil, fmt.Errorf("failed to encode details: %w", err)
	}
	if snapshot.Recommendations, err = marshalJSON(recommendations); err != nil {
		return nil, fmt.Errorf("failed to encode recommendations: %w", err)
	}

	if err := s.snapshotRepo.Append(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to append snapshot: %w", err)
	}

	s.logger.Info("diagnostic.run",
		zap.String("tenant_id", tenantID.String()),
		zap.Int("overall_score", snapshot.OverallScore),
		zap.String("trend", string(snapshot.Trend)),
		zap.Int("recommendations", len(recommendations)),
	)

	return &Result{Snapshot: snapshot, Recommendations: recommendations}, nil
}

// Latest returns the most recent snapshot with its stored recommendations
// decoded.
func (s *Service) Latest(ctx context.Context, tenantID uuid.UUID) (*Result, error) {
	snapshot, err := s.snapshotRepo.FindLatest(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var recommendations []entities.Recommendation
	if len(snapshot.Recommendations) > 0 {
		if err := json.Unmarshal(snapshot.Recommendations, &recommendations); err != nil {
			return nil, fmt.Errorf("failed to decode stored recommendations: %w", err)
		}
	}
	return &Result{Snapshot: snapshot, Recommendations: recommendations}, nil
}

// History returns the tenant's snapshot log, newest first.
func (s *Service) History(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entities.DiagnosticSnapshot, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.snapshotRepo.ListByTenant(ctx, tenantID, limit, offset)
}

func buildDetails(nps scoring.NPSResult, profile *entities.BusinessProfile, responses []*entities.SatisfactionResponse) entities.SnapshotDetails {
	unresolved := 0
	for _, r := range responses {
		if r.IsUnresolvedDetractor() {
			unresolved++
		}
	}
	positiveRatio := 0.0
	if nps.Total > 0 {
		positiveRatio = float64(nps.Promoters) / float64(nps.Total)
	}
	return entities.SnapshotDetails{
		NPSRawScore:          nps.Score,
		Promoters:            nps.Promoters,
		Passives:             nps.Passives,
		Detractors:           nps.Detractors,
		TotalResponses:       nps.Total,
		PositiveRatio:        positiveRatio,
		UnresolvedDetractors: unresolved,
		PlaceIDPresent:       profile != nil && profile.HasGooglePlaceID(),
		MissingFields:        scoring.MissingFields(profile, scoring.InformationWeights),
	}
}

func marshalJSON(v interface{}) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
