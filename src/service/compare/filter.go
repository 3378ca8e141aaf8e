package compare

import (
	"strings"

	"quality-trends/src/model"
)

// FilterBranches keeps the records whose branch name contains any of the
// given substrings, compared case-insensitively. Records missing a
// repository or branch are dropped first. The filter is idempotent:
// applying it twice with the same patterns changes nothing.
func FilterBranches(records []model.MetricRecord, patterns []string) []model.MetricRecord {
	lowered := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			lowered = append(lowered, p)
		}
	}

	var kept []model.MetricRecord
	for _, r := range records {
		if _, err := IdentityKey(r); err != nil {
			continue
		}
		branch := strings.ToLower(r.Branch)
		for _, p := range lowered {
			if strings.Contains(branch, p) {
				kept = append(kept, r)
				break
			}
		}
	}
	return kept
}
