// Package correlation buckets heterogeneous time-stamped records into
// calendar-month groups and joins aggregate deal value with the month's
// NPS score for trend charting.
package correlation

import (
	"fmt"
	"sort"
	"time"

	"github.com/salespulse/salespulse-backend/internal/domain/entities"
	"github.com/salespulse/salespulse-backend/internal/usecase/scoring"
)

// DefaultPeriods is how many trailing months the dashboard chart shows.
const DefaultPeriods = 3

type bucket struct {
	dealValue float64
	responses []*entities.SatisfactionResponse
}

// Aggregate buckets leads by created_at and responses by responded_at into
// "YYYY-MM" periods, then returns the last n periods ascending. Records
// with a zero timestamp are skipped per-record; malformed historical data
// must never abort the whole report.
//
// A month appears as long as it has either leads or responses. Months with
// leads but no responses carry an NPS of 0; months with responses but no
// leads carry a deal value of 0. The NPS shown is the raw score floored at
// zero, a deliberately lossy display convention distinct from the raw
// score the diagnostic uses.
func Aggregate(leads []*entities.Opportunity, responses []*entities.SatisfactionResponse, n int) []entities.CorrelationPoint {
	if n <= 0 {
		n = DefaultPeriods
	}

	buckets := make(map[string]*bucket)
	get := func(key string) *bucket {
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		return b
	}

	for _, lead := range leads {
		key, ok := periodKey(lead.CreatedAt)
		if !ok {
			continue
		}
		get(key).dealValue += lead.MonetaryValue
	}
	for _, r := range responses {
		key, ok := periodKey(r.RespondedAt)
		if !ok {
			continue
		}
		b := get(key)
		b.responses = append(b.responses, r)
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if len(keys) > n {
		keys = keys[len(keys)-n:]
	}

	points := make([]entities.CorrelationPoint, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		nps := scoring.NPS(b.responses).Score
		if nps < 0 {
			nps = 0
		}
		points = append(points, entities.CorrelationPoint{
			PeriodKey: key,
			Label:     periodLabel(key),
			DealValue: b.dealValue,
			NPSScore:  nps,
		})
	}
	return points
}

// periodKey renders a timestamp as "YYYY-MM" in UTC. Zero timestamps are
// treated as unparsable and reported not-ok.
func periodKey(t time.Time) (string, bool) {
	if t.IsZero() {
		return "", false
	}
	t = t.UTC()
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month())), true
}

// periodLabel turns "2024-03" into "Mar 24". Display only; sorting and
// joining always use the key.
func periodLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("Jan 06")
}
