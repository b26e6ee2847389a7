package chart

import (
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RenderOptions sizes the exported image.
type RenderOptions struct {
	Width  int
	Height int
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Width: 800, Height: 400}
}

// RenderPNG writes the chart as a PNG image with a dashed reference line at the threshold.
func RenderPNG(w io.Writer, c Chart, opts RenderOptions) error {
	if len(c.Bars) == 0 {
		return fmt.Errorf("%w: no bars", ErrInvalidInput)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts = DefaultRenderOptions()
	}

	bars := make([]gochart.Value, len(c.Bars))
	for i, b := range c.Bars {
		col := drawing.ColorFromHex(Color(b.Status))
		bars[i] = gochart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: gochart.Style{FillColor: col, StrokeColor: col, StrokeWidth: 1},
		}
	}

	yMax := c.MaxValue() * 1.2
	bc := gochart.BarChart{
		Title:      c.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		BarWidth:   opts.Width / (len(bars) * 2),
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis: gochart.YAxis{
			Name:  c.YLabel,
			Range: &gochart.ContinuousRange{Min: 0, Max: yMax},
		},
		Bars: bars,
	}
	if c.Threshold > 0 {
		bc.Elements = append(bc.Elements, thresholdLine(c.Threshold, yMax))
	}

	if err := bc.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}
	return nil
}

// thresholdLine strokes a dashed red horizontal line at value across the canvas.
// BarChart does not draw YAxis grid lines.
func thresholdLine(value, yMax float64) gochart.Renderable {
	return func(r gochart.Renderer, canvasBox gochart.Box, _ gochart.Style) {
		yr := gochart.ContinuousRange{Min: 0, Max: yMax, Domain: canvasBox.Height()}
		y := canvasBox.Bottom - yr.Translate(value)

		r.ResetStyle()
		r.SetStrokeColor(drawing.ColorFromHex(ColorDanger))
		r.SetStrokeWidth(2)
		r.SetStrokeDashArray([]float64{8, 6})
		r.MoveTo(canvasBox.Left, y)
		r.LineTo(canvasBox.Right, y)
		r.Stroke()
		r.ResetStyle()
	}
}
