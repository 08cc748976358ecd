package scoring

// Composite is the three diagnostic dimensions plus their unweighted mean,
// all on [0, 100]. It carries no id or timestamp; the persistence layer
// assigns those when the snapshot is appended.
type Composite struct {
	ReputationScore  int `json:"reputation_score"`
	InformationScore int `json:"information_score"`
	EngagementScore  int `json:"engagement_score"`
	OverallScore     int `json:"overall_score"`
}

// Compose combines the NPS result with the information and engagement
// scores into one composite. No dimension is skipped when its inputs are
// all zero: zero is a meaningful score, not missing data.
func Compose(nps NPSResult, informationScore, engagementScore int) Composite {
	reputation := ReputationFromNPS(nps.Score)
	information := clamp(informationScore, 0, 100)
	engagement := clamp(engagementScore, 0, 100)
	return Composite{
		ReputationScore:  reputation,
		InformationScore: information,
		EngagementScore:  engagement,
		OverallScore:     round(float64(reputation+information+engagement) / 3),
	}
}
