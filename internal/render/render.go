// Package render draws learning-rate schedule charts with go-chart.
package render

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/curvelab/lrplot/internal/schedule"
)

// Rendering samples at most this many points per curve; denser step counts
// are strided down, which is visually indistinguishable at chart resolution.
const maxPlotPoints = 1000

// palette follows the source tool's ordering, cool to hot. Curves beyond
// its length cycle.
var palette = []drawing.Color{
	{R: 0x80, G: 0x00, B: 0x80, A: 255}, // purple
	{R: 0x00, G: 0x00, B: 0xff, A: 255}, // blue
	{R: 0x00, G: 0xff, B: 0xff, A: 255}, // cyan
	{R: 0x40, G: 0xe0, B: 0xd0, A: 255}, // turquoise
	{R: 0x90, G: 0xee, B: 0x90, A: 255}, // light green
	{R: 0xee, G: 0xe8, B: 0xaa, A: 255}, // pale goldenrod
	{R: 0xf4, G: 0xa4, B: 0x60, A: 255}, // sandy brown
	{R: 0xff, G: 0x7f, B: 0x50, A: 255}, // coral
	{R: 0xff, G: 0x45, B: 0x00, A: 255}, // orange red
	{R: 0xff, G: 0x00, B: 0x00, A: 255}, // red
}

// Write renders one chart containing every curve and writes the encoded
// image to w.
func Write(w io.Writer, cfg schedule.Config, curves []schedule.Curve, opts Options) error {
	opts = opts.withDefaults()
	if len(curves) == 0 {
		return fmt.Errorf("%w: no curves to draw", ErrInvalidOptions)
	}
	if opts.Scale != ScaleNone && cfg.FinalLR <= 0 {
		return fmt.Errorf("%w: log scale requires a positive final learning rate", ErrInvalidOptions)
	}

	series := make([]chart.Series, 0, len(curves))
	for i, cv := range curves {
		xs, ys := samplePoints(cv.Rates)
		series = append(series, chart.ContinuousSeries{
			Name:    "power=" + schedule.FormatPower(cv.Power),
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: 2.0,
				StrokeColor: palette[i%len(palette)],
			},
		})
	}

	ch := chart.Chart{
		Title:  fmt.Sprintf("Polynomial Learning Rate Decay (%s scale, warmup %d)", opts.Scale, cfg.Warmup),
		Width:  12 * opts.DPI,
		Height: 8 * opts.DPI,
		DPI:    float64(opts.DPI),
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "Training Steps",
			Range:          &chart.ContinuousRange{Min: 0, Max: float64(cfg.Steps)},
			Ticks:          xTicks(cfg.Steps),
			GridMajorStyle: gridStyle(),
		},
		YAxis:  yAxis(cfg, opts),
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	provider := chart.PNG
	if opts.Format == FormatSVG {
		provider = chart.SVG
	}
	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func yAxis(cfg schedule.Config, opts Options) chart.YAxis {
	axis := chart.YAxis{
		Name:           "Learning Rate",
		GridMajorStyle: gridStyle(),
	}
	if opts.Scale == ScaleNone {
		axis.Range = &chart.ContinuousRange{
			Min: cfg.FinalLR * 0.95,
			Max: cfg.InitialLR * 1.05,
		}
		axis.Ticks = linearTicks(cfg.FinalLR, cfg.InitialLR, opts.Notation)
		return axis
	}

	lo := cfg.FinalLR * 0.8
	hi := cfg.InitialLR * 1.2
	if opts.Scale == ScaleWide {
		// Wide pads the visible span a decade on each side.
		lo /= 10
		hi *= 10
	}
	axis.Range = &chart.LogarithmicRange{Min: lo, Max: hi}
	axis.Ticks = logTicks(lo, hi, opts.Scale)
	return axis
}

func gridStyle() chart.Style {
	return chart.Style{
		StrokeColor:     drawing.Color{R: 0xc8, G: 0xc8, B: 0xc8, A: 255},
		StrokeWidth:     1.0,
		StrokeDashArray: []float64{4.0, 2.0},
	}
}

func samplePoints(rates []float64) (xs, ys []float64) {
	stride := 1
	if len(rates) > maxPlotPoints {
		stride = (len(rates) + maxPlotPoints - 1) / maxPlotPoints
	}
	for i := 0; i < len(rates); i += stride {
		xs = append(xs, float64(i))
		ys = append(ys, rates[i])
	}
	if last := len(rates) - 1; last >= 0 && xs[len(xs)-1] != float64(last) {
		xs = append(xs, float64(last))
		ys = append(ys, rates[last])
	}
	if len(xs) == 1 {
		// go-chart cannot scale a single-point domain.
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}
	return xs, ys
}
