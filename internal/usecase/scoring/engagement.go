package scoring

// engagementPointsPerResponse is the slope of the engagement ramp: each
// response is worth 5 points, saturating at 20 responses.
const engagementPointsPerResponse = 5

// Engagement derives an engagement score from survey volume. The ramp is a
// deliberately simple proxy, not a statistically normalized response rate.
//
// positiveCount is accepted for forward compatibility with recommendation
// generation but does not currently alter the score.
func Engagement(responseCount, positiveCount int) int {
	_ = positiveCount
	if responseCount <= 0 {
		return 0
	}
	rate := responseCount * engagementPointsPerResponse
	if rate > 100 {
		return 100
	}
	return rate
}
