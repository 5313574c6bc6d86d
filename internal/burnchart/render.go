// Package burnchart draws the remaining-height curve of a burn window.
package burnchart

import (
	"fmt"
	"io"
	"strings"
	"time"

	"ember_sculpt/internal/models"
	"ember_sculpt/internal/solver"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 400
	MaxWidth      = 2000
	MaxHeight     = 1200

	samples = 120
)

var fallbackLine = drawing.ColorFromHex("ED5108")

// Size clamps a requested image size; non-positive values take defaults.
func Size(w, h int) (int, int) {
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return min(w, MaxWidth), min(h, MaxHeight)
}

// RenderPNG writes the burn curve of st with a marker at the playhead.
func RenderPNG(w io.Writer, st models.BurnState, width, height int) error {
	width, height = Size(width, height)

	xs, ys := solver.BurnCurve(st.BurnConfig, samples)
	if len(xs) == 1 {
		// go-chart needs a non-empty x range
		xs = append(xs, xs[0].Add(time.Second))
		ys = append(ys, ys[0])
	}

	line := lineColor(st.FlameColor)
	now := []time.Time{st.CurrentTime, st.CurrentTime.Add(time.Millisecond)}
	h := solver.CandleHeight(st)

	ch := chart.Chart{
		Title:      fmt.Sprintf("Remaining height (%s burned)", solver.FormatDuration(solver.Elapsed(st))),
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "time", ValueFormatter: chart.TimeHourValueFormatter},
		YAxis: chart.YAxis{
			Name:  "inches",
			Range: &chart.ContinuousRange{Min: 0, Max: max(st.InitialHeight, 0.01)},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "height",
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: line, StrokeWidth: 2},
			},
			chart.TimeSeries{
				Name:    "now",
				XValues: now,
				YValues: []float64{h, h},
				Style:   chart.Style{StrokeWidth: 0, DotWidth: 5, DotColor: line.WithAlpha(200)},
			},
		},
	}
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render burn chart: %w", err)
	}
	return nil
}

func lineColor(hex string) drawing.Color {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 && len(hex) != 3 {
		return fallbackLine
	}
	return drawing.ColorFromHex(hex)
}
