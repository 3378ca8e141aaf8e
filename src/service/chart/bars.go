package chart

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"quality-trends/src/model"
)

var (
	improvementFill = drawing.ColorFromHex("2ecc71")
	regressionFill  = drawing.ColorFromHex("e74c3c")
)

// Renderer produces PNG charts for comparison results
type Renderer struct {
	width  int
	height int
}

// NewRenderer creates a chart renderer with the given canvas size
func NewRenderer(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

// MetricBars renders one bar per delta, bar height |difference|, green for
// improvements and red for regressions. Deltas are drawn in the order
// given. Returns nil for an empty result so callers can skip embedding.
func (r *Renderer) MetricBars(result model.ComparisonResult) ([]byte, error) {
	if result.Empty() {
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(result.Deltas))
	for _, d := range result.Deltas {
		fill := regressionFill
		if d.Improved() {
			fill = improvementFill
		}
		bars = append(bars, chart.Value{
			Label: d.DisplayName(),
			Value: abs(d.Difference),
			Style: chart.Style{FillColor: fill, StrokeColor: fill},
		})
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("%s Difference", result.Metric),
		Width:    r.width,
		Height:   r.height,
		BarWidth: barWidth(r.width, len(bars)),
		Bars:     bars,
		XAxis:    chart.Style{TextRotationDegrees: 45},
		YAxis:    chart.YAxis{Range: yRange(bars)},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering %s chart: %w", result.Metric, err)
	}
	return buf.Bytes(), nil
}

// yRange anchors bar charts at zero. An explicit range also avoids the
// renderer's zero-delta error when every bar has the same value.
func yRange(bars []chart.Value) *chart.ContinuousRange {
	var max float64
	for _, b := range bars {
		if b.Value > max {
			max = b.Value
		}
	}
	if max <= 0 {
		max = 1
	}
	return &chart.ContinuousRange{Min: 0, Max: max * 1.1}
}

func barWidth(canvasWidth, bars int) int {
	if bars == 0 {
		return 1
	}
	w := canvasWidth / (2 * bars)
	if w < 10 {
		w = 10
	}
	if w > 60 {
		w = 60
	}
	return w
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
