package dashboard

import "github.com/salespulse/salespulse-backend/internal/domain/entities"

// CorrelationResponse wraps the chart series with its window size
type CorrelationResponse struct {
	Periods int                         `json:"periods"`
	Points  []entities.CorrelationPoint `json:"points"`
}
