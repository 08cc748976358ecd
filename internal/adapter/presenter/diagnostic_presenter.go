package presenter

import (
	"encoding/json"

	dto "github.com/salespulse/salespulse-backend/internal/adapter/dto/diagnostic"
	"github.com/salespulse/salespulse-backend/internal/domain/entities"
)

// ToSnapshotView converts a DiagnosticSnapshot entity plus its
// recommendations to the API shape
func ToSnapshotView(s *entities.DiagnosticSnapshot, recommendations []entities.Recommendation) *dto.SnapshotView {
	if s == nil {
		return nil
	}

	var details *entities.SnapshotDetails
	if len(s.Details) > 0 {
		var d entities.SnapshotDetails
		if err := json.Unmarshal(s.Details, &d); err == nil {
			details = &d
		}
	}

	views := make([]dto.RecommendationView, 0, len(recommendations))
	for _, r := range recommendations {
		views = append(views, dto.RecommendationView{
			ID:          r.ID,
			Priority:    string(r.Priority),
			Category:    string(r.Category),
			Title:       r.Title,
			Description: r.Description,
			Impact:      r.Impact,
		})
	}

	return &dto.SnapshotView{
		ID:               s.ID,
		ReputationScore:  s.ReputationScore,
		InformationScore: s.InformationScore,
		EngagementScore:  s.EngagementScore,
		OverallScore:     s.OverallScore,
		Trend:            string(s.Trend),
		Details:          details,
		Recommendations:  views,
		CreatedAt:        s.CreatedAt,
	}
}

// ToHistoryViews converts a snapshot list to trimmed history rows
func ToHistoryViews(snapshots []*entities.DiagnosticSnapshot) []dto.HistoryView {
	views := make([]dto.HistoryView, 0, len(snapshots))
	for _, s := range snapshots {
		views = append(views, dto.HistoryView{
			ID:           s.ID,
			OverallScore: s.OverallScore,
			Trend:        string(s.Trend),
			CreatedAt:    s.CreatedAt,
		})
	}
	return views
}
