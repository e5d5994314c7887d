// Package charts renders aggregate counts as PNG bar charts.
package charts

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/yigit/stit/internal/pkg/analytics"
)

// ErrNoData is returned when there is nothing to plot
var ErrNoData = errors.New("no data to chart")

const (
	minWidth    = 480
	barSlot     = 90
	chartHeight = 400
	maxTicks    = 10
)

// BarChartPNG draws counts as a vertical bar chart and returns the encoded PNG.
func BarChartPNG(title string, counts []analytics.Count) ([]byte, error) {
	if len(counts) == 0 {
		return nil, ErrNoData
	}

	bars := make([]chart.Value, 0, len(counts))
	for _, c := range counts {
		bars = append(bars, chart.Value{Label: c.Label, Value: float64(c.Count)})
	}

	max := analytics.MaxCount(counts)
	if max < 1 {
		max = 1
	}

	width := barSlot*len(counts) + 120
	if width < minWidth {
		width = minWidth
	}

	graph := chart.BarChart{
		Title:      title,
		Width:      width,
		Height:     chartHeight,
		BarWidth:   50,
		BarSpacing: 40,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(max)},
			Ticks: integerTicks(max),
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %q chart: %w", title, err)
	}
	return buf.Bytes(), nil
}

// integerTicks returns whole-number ticks from 0 to max
func integerTicks(max int) []chart.Tick {
	step := (max + maxTicks - 1) / maxTicks
	if step < 1 {
		step = 1
	}
	var ticks []chart.Tick
	for v := 0; v <= max; v += step {
		ticks = append(ticks, chart.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}
	if ticks[len(ticks)-1].Value != float64(max) {
		ticks = append(ticks, chart.Tick{Value: float64(max), Label: strconv.Itoa(max)})
	}
	return ticks
}

// DataURL embeds png bytes as a base64 data URL usable in an img src attribute
func DataURL(png []byte) template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}
