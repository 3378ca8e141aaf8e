package compare

import (
	"quality-trends/src/config"
	"quality-trends/src/model"
)

// ApplyPolicy drops deltas whose difference does not pass the metric's
// significance policy. The input slice is not modified.
func ApplyPolicy(deltas []model.MetricDelta, policy config.MetricPolicy) []model.MetricDelta {
	kept := make([]model.MetricDelta, 0, len(deltas))
	for _, d := range deltas {
		if policy.Significant(d.Difference) {
			kept = append(kept, d)
		}
	}
	return kept
}

// Compare runs the full pipeline for one metric: match both periods,
// apply the significance policy and sort ascending by difference.
func Compare(periodA, periodB []model.MetricRecord, policy config.MetricPolicy) model.ComparisonResult {
	deltas := ApplyPolicy(Match(periodA, periodB, policy.Name), policy)
	SortByDifference(deltas)
	return model.ComparisonResult{Metric: policy.Name, Deltas: deltas}
}
