package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quality-trends/src/config"
	"quality-trends/src/model"
)

func TestApplyPolicyThreshold(t *testing.T) {
	policy := config.MetricPolicy{Name: "Code Smell", MinAbsDifference: 20}

	tests := []struct {
		name       string
		difference float64
		kept       bool
	}{
		{name: "below threshold", difference: 19, kept: false},
		{name: "exactly at threshold", difference: 20, kept: true},
		{name: "negative below threshold", difference: -19, kept: false},
		{name: "negative at threshold", difference: -20, kept: true},
		{name: "well above threshold", difference: 250, kept: true},
		{name: "zero", difference: 0, kept: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deltas := []model.MetricDelta{{Metric: "Code Smell", Difference: tt.difference}}
			kept := ApplyPolicy(deltas, policy)
			if tt.kept {
				assert.Len(t, kept, 1)
			} else {
				assert.Empty(t, kept)
			}
		})
	}
}

func TestApplyPolicyNonZeroRule(t *testing.T) {
	// Metrics without a threshold keep any non-zero change.
	policy := config.MetricPolicy{Name: "Duplications"}

	deltas := []model.MetricDelta{
		{Metric: "Duplications", Difference: 0},
		{Metric: "Duplications", Difference: 0.05},
		{Metric: "Duplications", Difference: -0.4},
	}

	kept := ApplyPolicy(deltas, policy)
	require.Len(t, kept, 2)
	assert.Equal(t, 0.05, kept[0].Difference)
	assert.Equal(t, -0.4, kept[1].Difference)
}

func TestApplyPolicyAlternateThreshold(t *testing.T) {
	// The threshold is configuration, not a constant; 50 was used in the past.
	policy := config.MetricPolicy{Name: "Code Smell", MinAbsDifference: 50}

	deltas := []model.MetricDelta{
		{Metric: "Code Smell", Difference: -30},
		{Metric: "Code Smell", Difference: -50},
	}

	kept := ApplyPolicy(deltas, policy)
	require.Len(t, kept, 1)
	assert.Equal(t, float64(-50), kept[0].Difference)
}

func TestCompareEndToEnd(t *testing.T) {
	periodA := []model.MetricRecord{
		record("l3-angular-delta", "stg", map[string]*float64{"Code Smell": value(300)}),
	}
	periodB := []model.MetricRecord{
		record("l3-angular-delta", "stg", map[string]*float64{"Code Smell": value(270)}),
	}

	result := Compare(periodA, periodB, config.MetricPolicy{Name: "Code Smell", MinAbsDifference: 20})

	require.Len(t, result.Deltas, 1)
	delta := result.Deltas[0]
	assert.Equal(t, float64(300), delta.Before)
	assert.Equal(t, float64(270), delta.After)
	assert.Equal(t, float64(-30), delta.Difference)
	assert.True(t, delta.Improved())
}

func TestCompareSortsMostImprovedFirst(t *testing.T) {
	periodA := []model.MetricRecord{
		record("a", "stg", map[string]*float64{"Security Hotspot": value(100)}),
		record("b", "stg", map[string]*float64{"Security Hotspot": value(100)}),
		record("c", "stg", map[string]*float64{"Security Hotspot": value(100)}),
	}
	periodB := []model.MetricRecord{
		record("a", "stg", map[string]*float64{"Security Hotspot": value(95)}),
		record("b", "stg", map[string]*float64{"Security Hotspot": value(20)}),
		record("c", "stg", map[string]*float64{"Security Hotspot": value(130)}),
	}

	result := Compare(periodA, periodB, config.MetricPolicy{Name: "Security Hotspot"})

	require.Len(t, result.Deltas, 3)
	assert.Equal(t, "b", result.Deltas[0].Repository)
	assert.Equal(t, "a", result.Deltas[1].Repository)
	assert.Equal(t, "c", result.Deltas[2].Repository)

	top := result.TopImprovements(5)
	require.Len(t, top, 2)
	assert.Equal(t, "b", top[0].Repository)
}
