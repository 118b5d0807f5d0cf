package view

import (
	"bytes"
	"html/template"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/orchids/cinesearch/internal/domain"
)

const chartDateFormat = "02/01/2006"

// UsersByDayChart renders the new-users-per-day series as an inline SVG line
// chart. Each dashboard render produces a fresh chart; nothing is kept
// between loads. Fewer than two points cannot span an axis, so the fragment
// is empty and only the tables show.
func UsersByDayChart(series []domain.DayCount) template.HTML {
	if len(series) < 2 {
		return ""
	}

	xValues := make([]time.Time, 0, len(series))
	yValues := make([]float64, 0, len(series))
	for _, point := range series {
		xValues = append(xValues, point.Date.Time)
		yValues = append(yValues, float64(point.Count))
	}

	lineColor := drawing.ColorFromHex("6366f1")
	graph := chart.Chart{
		Width:  720,
		Height: 280,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat(chartDateFormat),
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: "Nouveaux utilisateurs",
				Style: chart.Style{
					StrokeColor: lineColor,
					FillColor:   lineColor.WithAlpha(26),
				},
				XValues: xValues,
				YValues: yValues,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}

// SearchesByDayChart renders the searches-per-day series as an inline SVG
// bar chart.
func SearchesByDayChart(series []domain.DayCount) template.HTML {
	if len(series) == 0 {
		return ""
	}

	bars := make([]chart.Value, 0, len(series))
	barColor := drawing.ColorFromHex("8b5cf6")
	for _, point := range series {
		bars = append(bars, chart.Value{
			Value: float64(point.Count),
			Label: point.Date.Format(chartDateFormat),
			Style: chart.Style{
				StrokeColor: barColor,
				FillColor:   barColor.WithAlpha(153),
			},
		})
	}

	graph := chart.BarChart{
		Width:    720,
		Height:   280,
		BarWidth: 28,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}
