package compare

import (
	"sort"
	"strings"

	"quality-trends/src/model"
	"quality-trends/src/util"
)

// Match intersects the identity keys of two period record sets and emits
// one MetricDelta per key present in both with a non-null value for the
// metric. Difference = after - before, unrounded. The returned order is
// whatever map iteration yields; use SortByDifference for deterministic
// output.
func Match(periodA, periodB []model.MetricRecord, metric string) []model.MetricDelta {
	before := index(periodA)
	after := index(periodB)

	var deltas []model.MetricDelta
	for key, recA := range before {
		recB, ok := after[key]
		if !ok {
			continue
		}

		valA := recA.Value(metric)
		valB := recB.Value(metric)
		if valA == nil || valB == nil {
			continue
		}

		repo, branch, _ := strings.Cut(key, keySeparator)
		deltas = append(deltas, model.MetricDelta{
			Repository: repo,
			Branch:     branch,
			CleanName:  util.CleanRepoName(repo),
			Metric:     metric,
			Before:     *valA,
			After:      *valB,
			Difference: *valB - *valA,
		})
	}
	return deltas
}

// SortByDifference orders deltas ascending by difference, so the biggest
// improvements come first. Ties break on repository then branch to keep
// runs reproducible.
func SortByDifference(deltas []model.MetricDelta) {
	sort.Slice(deltas, func(i, j int) bool {
		if deltas[i].Difference != deltas[j].Difference {
			return deltas[i].Difference < deltas[j].Difference
		}
		if deltas[i].Repository != deltas[j].Repository {
			return deltas[i].Repository < deltas[j].Repository
		}
		return deltas[i].Branch < deltas[j].Branch
	})
}
