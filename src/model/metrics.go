package model

// MetricRecord is one row of a period's metric export: a repository/branch
// pair with its measured metric values. A nil value means the export had no
// measurement for that metric.
type MetricRecord struct {
	Repository string              `json:"repository"`
	Branch     string              `json:"branch"`
	Values     map[string]*float64 `json:"values"`
}

// Value returns the record's value for a metric, or nil when missing.
func (r MetricRecord) Value(metric string) *float64 {
	return r.Values[metric]
}

// MetricDelta is the signed change of one metric for one repository/branch
// between two reporting periods. Difference = After - Before, so a negative
// difference means the metric went down (an improvement for count-style
// metrics).
type MetricDelta struct {
	Repository string  `json:"repository"`
	Branch     string  `json:"branch"`
	CleanName  string  `json:"clean_name"`
	Metric     string  `json:"metric"`
	Before     float64 `json:"before"`
	After      float64 `json:"after"`
	Difference float64 `json:"difference"`
}

// Improved reports whether the delta is an improvement.
func (d MetricDelta) Improved() bool {
	return d.Difference < 0
}

// DisplayName is the chart label: clean name plus branch.
func (d MetricDelta) DisplayName() string {
	return d.CleanName + " (" + d.Branch + ")"
}

// ComparisonResult holds the significance-filtered deltas for one metric,
// sorted by difference ascending (most improved first).
type ComparisonResult struct {
	Metric string        `json:"metric"`
	Deltas []MetricDelta `json:"deltas"`
}

// Empty reports whether no significant changes were found.
func (r ComparisonResult) Empty() bool {
	return len(r.Deltas) == 0
}

// TopImprovements returns up to n deltas with the largest improvement
// (most negative difference first). Deltas are assumed sorted ascending.
func (r ComparisonResult) TopImprovements(n int) []MetricDelta {
	var top []MetricDelta
	for _, d := range r.Deltas {
		if !d.Improved() {
			break
		}
		top = append(top, d)
		if len(top) == n {
			break
		}
	}
	return top
}
