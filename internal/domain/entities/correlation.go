package entities

// CorrelationPoint joins one calendar month's aggregate deal value with
// that month's NPS score, for trend charting. PeriodKey is "YYYY-MM";
// Label is a display-only short month name and never used for sorting or
// joining.
type CorrelationPoint struct {
	PeriodKey string  `json:"period_key"`
	Label     string  `json:"label"`
	DealValue float64 `json:"deal_value"`
	NPSScore  int     `json:"nps_score"`
}
