package dashboard

import (
	"fmt"
	"time"
)

// MetricComparison is one metric's before/after values across two snapshots.
type MetricComparison struct {
	Metric   string
	Before   float64
	After    float64
	Change   float64
	Improved bool
}

// SnapshotComparison is the §4.5 comparison of two snapshots: how long
// elapsed between them and how each tracked metric moved.
type SnapshotComparison struct {
	Before       Snapshot
	After        Snapshot
	Duration     time.Duration
	DurationText string
	Metrics      []MetricComparison
}

type comparedMetric struct {
	name           string
	value          func(Snapshot) float64
	higherIsBetter bool
}

var comparedMetrics = []comparedMetric{
	{"maturityLevel", func(s Snapshot) float64 { return float64(s.MaturityLevel) }, true},
	{"overallCompletionRate", func(s Snapshot) float64 { return s.OverallCompletionRate }, true},
	{"unsatisfiedCriteria", func(s Snapshot) float64 { return float64(s.UnsatisfiedCriteria) }, false},
	{"recommendationTotal", func(s Snapshot) float64 { return float64(s.RecommendationTotal) }, false},
	{"recommendationCritical", func(s Snapshot) float64 { return float64(s.RecommendationCritical) }, false},
}

// CompareSnapshots compares two snapshots, before and after. duration
// always equals after.Timestamp - before.Timestamp, regardless of which
// snapshot was stored first — the caller is responsible for ordering.
func CompareSnapshots(before, after Snapshot) SnapshotComparison {
	duration := after.Timestamp.Sub(before.Timestamp)

	metrics := make([]MetricComparison, 0, len(comparedMetrics))
	for _, m := range comparedMetrics {
		b, a := m.value(before), m.value(after)
		change := a - b
		improved := change > 0
		if !m.higherIsBetter {
			improved = change < 0
		}
		if change == 0 {
			improved = false
		}
		metrics = append(metrics, MetricComparison{Metric: m.name, Before: b, After: a, Change: change, Improved: improved})
	}

	return SnapshotComparison{
		Before:       before,
		After:        after,
		Duration:     duration,
		DurationText: humanDuration(duration),
		Metrics:      metrics,
	}
}

// humanDuration renders a duration as "<days>, <hours>" for display,
// collapsing to just hours when under a day.
func humanDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	if days == 0 {
		return fmt.Sprintf("%d hour(s)", hours)
	}
	return fmt.Sprintf("%d day(s), %d hour(s)", days, hours)
}
