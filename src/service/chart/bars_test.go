package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quality-trends/src/model"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func sampleResult() model.ComparisonResult {
	return model.ComparisonResult{
		Metric: "Code Smell",
		Deltas: []model.MetricDelta{
			{Repository: "l3-angular-delta", Branch: "stg", CleanName: "angular-delta", Difference: -30},
			{Repository: "l3-net-vorwerk", Branch: "stage", CleanName: "net-vorwerk", Difference: 25},
		},
	}
}

func TestMetricBars(t *testing.T) {
	r := NewRenderer(800, 600)

	png, err := r.MetricBars(sampleResult())
	require.NoError(t, err)
	require.NotNil(t, png)
	assert.Equal(t, pngHeader, png[:4])
}

func TestMetricBarsEmptyResult(t *testing.T) {
	r := NewRenderer(800, 600)

	png, err := r.MetricBars(model.ComparisonResult{Metric: "Code Smell"})
	require.NoError(t, err)
	assert.Nil(t, png)
}

func TestTopImprovements(t *testing.T) {
	r := NewRenderer(800, 600)

	specs := []TopImprovementsSpec{
		{Result: sampleResult(), TopN: 3},
		{Result: model.ComparisonResult{Metric: "Duplications"}, TopN: 2},
	}

	png, err := r.TopImprovements(specs, "Top Code Quality Improvements")
	require.NoError(t, err)
	require.NotNil(t, png)
	assert.Equal(t, pngHeader, png[:4])
}

func TestTopImprovementsNothingImproved(t *testing.T) {
	r := NewRenderer(800, 600)

	regressionsOnly := model.ComparisonResult{
		Metric: "Code Smell",
		Deltas: []model.MetricDelta{{Repository: "a", Branch: "stg", Difference: 40}},
	}
	png, err := r.TopImprovements([]TopImprovementsSpec{{Result: regressionsOnly, TopN: 3}}, "t")
	require.NoError(t, err)
	assert.Nil(t, png)
}

func TestBarWidthBounds(t *testing.T) {
	assert.Equal(t, 60, barWidth(1000, 2))
	assert.Equal(t, 10, barWidth(1000, 100))
	assert.Equal(t, 1, barWidth(1000, 0))
}
