package chart

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"quality-trends/src/model"
)

// One fill color per metric slot, cycling when there are more metrics than
// colors. Matches the palette of the hand-made recognition charts.
var topPalette = []drawing.Color{
	drawing.ColorFromHex("4caf50"),
	drawing.ColorFromHex("2196f3"),
	drawing.ColorFromHex("ff9800"),
	drawing.ColorFromHex("9b59b6"),
}

// TopImprovementsSpec selects how many improvements to show per metric.
type TopImprovementsSpec struct {
	Result model.ComparisonResult
	TopN   int
}

// TopImprovements renders the combined recognition chart: for each metric,
// its top improvements as bars of the improvement magnitude, labelled
// "<clean name> (<branch>)". Metrics with no improvements contribute no
// bars. Returns nil when nothing improved anywhere.
func (r *Renderer) TopImprovements(specs []TopImprovementsSpec, title string) ([]byte, error) {
	var bars []chart.Value
	for i, s := range specs {
		fill := topPalette[i%len(topPalette)]
		for _, d := range s.Result.TopImprovements(s.TopN) {
			bars = append(bars, chart.Value{
				Label: d.DisplayName(),
				Value: abs(d.Difference),
				Style: chart.Style{FillColor: fill, StrokeColor: fill},
			})
		}
	}
	if len(bars) == 0 {
		return nil, nil
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    r.width,
		Height:   r.height,
		BarWidth: barWidth(r.width, len(bars)),
		Bars:     bars,
		XAxis:    chart.Style{TextRotationDegrees: 45},
		YAxis:    chart.YAxis{Range: yRange(bars)},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering top improvements chart: %w", err)
	}
	return buf.Bytes(), nil
}
