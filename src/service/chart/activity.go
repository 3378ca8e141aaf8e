package chart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"quality-trends/src/service/dashboard"
)

// DailyLines renders the daily activity line chart: issues created, issues
// closed and comments per day. Needs at least two days of data; otherwise
// returns nil.
func (r *Renderer) DailyLines(daily []dashboard.DailyActivity) ([]byte, error) {
	if len(daily) < 2 {
		return nil, nil
	}

	dates := make([]time.Time, len(daily))
	created := make([]float64, len(daily))
	closed := make([]float64, len(daily))
	comments := make([]float64, len(daily))
	for i, d := range daily {
		dates[i] = d.Date
		created[i] = float64(d.IssuesCreated)
		closed[i] = float64(d.IssuesClosed)
		comments[i] = d.Comments
	}

	var maxY float64 = 1
	for i := range daily {
		for _, v := range []float64{created[i], closed[i], comments[i]} {
			if v > maxY {
				maxY = v
			}
		}
	}

	graph := chart.Chart{
		Title:  "Daily Activity",
		Width:  r.width,
		Height: r.height,
		XAxis:  chart.XAxis{ValueFormatter: chart.TimeDateValueFormatter},
		YAxis:  chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: maxY * 1.1}},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Issues Created",
				XValues: dates,
				YValues: created,
				Style:   chart.Style{StrokeColor: drawing.ColorBlue},
			},
			chart.TimeSeries{
				Name:    "Issues Closed",
				XValues: dates,
				YValues: closed,
				Style:   chart.Style{StrokeColor: drawing.ColorGreen},
			},
			chart.TimeSeries{
				Name:    "Comments",
				XValues: dates,
				YValues: comments,
				Style:   chart.Style{StrokeColor: drawing.ColorFromHex("ff8c00")},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering daily activity chart: %w", err)
	}
	return buf.Bytes(), nil
}

// UserBars renders one bar per user with their total activity (assigned +
// closed + comments). DevOps team members are highlighted.
func (r *Renderer) UserBars(users []dashboard.UserActivity) ([]byte, error) {
	if len(users) == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(users))
	for _, u := range users {
		fill := drawing.ColorFromHex("3182bd")
		if u.IsDevOps {
			fill = drawing.ColorFromHex("31a354")
		}
		bars = append(bars, chart.Value{
			Label: u.User,
			Value: float64(u.Total()),
			Style: chart.Style{FillColor: fill, StrokeColor: fill},
		})
	}

	graph := chart.BarChart{
		Title:    "Activity by User",
		Width:    r.width,
		Height:   r.height,
		BarWidth: barWidth(r.width, len(bars)),
		Bars:     bars,
		XAxis:    chart.Style{TextRotationDegrees: 45},
		YAxis:    chart.YAxis{Range: yRange(bars)},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering user activity chart: %w", err)
	}
	return buf.Bytes(), nil
}
