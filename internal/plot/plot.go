// Package plot renders sampled sine and cosine curves with gonum/plot.
package plot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/yildizm/TaylorSum/internal/angle"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Formats lists the supported output formats
var Formats = []string{"png", "svg", "pdf"}

var (
	sinColor    = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	cosColor    = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	markerColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

// Options controls the rendered image
type Options struct {
	Title  string
	Width  float64 // inches
	Height float64 // inches
}

// DefaultOptions returns an 8x3 inch canvas
func DefaultOptions() Options {
	return Options{
		Title:  "Taylor series: sin and cos",
		Width:  8,
		Height: 3,
	}
}

// Render builds the plot: both curves over [-2π, 2π), gridlines at multiples
// of π, and the highlighted angle drawn as a point on the sine curve joined
// to the axis and labelled in whole degrees.
func Render(curve angle.Curve, opts Options) (*gplot.Plot, error) {
	if len(curve.Samples) == 0 {
		return nil, fmt.Errorf("curve has no samples")
	}

	p := gplot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "angle (rad)"
	p.Y.Label.Text = "value"
	p.X.Min, p.X.Max = angle.WindowStart, angle.WindowEnd
	p.Y.Min, p.Y.Max = -1.2, 1.2
	p.X.Tick.Marker = piTicks()
	p.Add(plotter.NewGrid())

	sinXYs := make(plotter.XYs, len(curve.Samples))
	cosXYs := make(plotter.XYs, len(curve.Samples))
	for i, s := range curve.Samples {
		sinXYs[i] = plotter.XY{X: s.Angle, Y: s.Sin}
		cosXYs[i] = plotter.XY{X: s.Angle, Y: s.Cos}
	}

	sinLine, err := plotter.NewLine(sinXYs)
	if err != nil {
		return nil, fmt.Errorf("failed to build sine line: %w", err)
	}
	sinLine.LineStyle.Color = sinColor
	sinLine.LineStyle.Width = vg.Points(1.5)

	cosLine, err := plotter.NewLine(cosXYs)
	if err != nil {
		return nil, fmt.Errorf("failed to build cosine line: %w", err)
	}
	cosLine.LineStyle.Color = cosColor
	cosLine.LineStyle.Width = vg.Points(1.5)

	p.Add(sinLine, cosLine)
	p.Legend.Add("sin", sinLine)
	p.Legend.Add("cos", cosLine)
	p.Legend.Top = true

	if err := addMarker(p, curve.Marker); err != nil {
		return nil, err
	}
	return p, nil
}

func addMarker(p *gplot.Plot, m angle.Marker) error {
	stem, err := plotter.NewLine(plotter.XYs{{X: m.Wrapped, Y: 0}, {X: m.Wrapped, Y: m.Sin}})
	if err != nil {
		return fmt.Errorf("failed to build marker line: %w", err)
	}
	stem.LineStyle.Color = markerColor
	stem.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}

	point, err := plotter.NewScatter(plotter.XYs{{X: m.Wrapped, Y: m.Sin}})
	if err != nil {
		return fmt.Errorf("failed to build marker point: %w", err)
	}
	point.GlyphStyle.Color = markerColor
	point.GlyphStyle.Radius = vg.Points(3)
	point.GlyphStyle.Shape = draw.CircleGlyph{}

	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: m.Wrapped, Y: m.Sin}},
		Labels: []string{fmt.Sprintf("%d°", m.Degrees)},
	})
	if err != nil {
		return fmt.Errorf("failed to build marker label: %w", err)
	}
	label.Offset = vg.Point{X: vg.Points(4), Y: vg.Points(4)}

	p.Add(stem, point, label)
	p.Legend.Add(fmt.Sprintf("x = %d°", m.Degrees), point)
	return nil
}

// piTicks labels every multiple of π in the window and adds unlabelled
// minor ticks at the half multiples
func piTicks() gplot.ConstantTicks {
	labels := map[int]string{-2: "-2π", -1: "-π", 0: "0", 1: "π", 2: "2π"}

	var ticks []gplot.Tick
	for half := -4; half <= 4; half++ {
		value := float64(half) * math.Pi / 2
		if half%2 == 0 {
			ticks = append(ticks, gplot.Tick{Value: value, Label: labels[half/2]})
		} else {
			ticks = append(ticks, gplot.Tick{Value: value})
		}
	}
	return gplot.ConstantTicks(ticks)
}

// FormatFromPath returns the image format implied by the file extension
func FormatFromPath(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, format := range Formats {
		if ext == format {
			return format, nil
		}
	}
	return "", fmt.Errorf("unsupported image format %q (must be one of: %s)", ext, strings.Join(Formats, ", "))
}

// Save renders the curve to path; the extension selects the format
func Save(curve angle.Curve, opts Options, path string) error {
	if _, err := FormatFromPath(path); err != nil {
		return err
	}
	p, err := Render(curve, opts)
	if err != nil {
		return err
	}
	if err := p.Save(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

// WriteTo renders the curve in format to w
func WriteTo(w io.Writer, curve angle.Curve, opts Options, format string) (int64, error) {
	p, err := Render(curve, opts)
	if err != nil {
		return 0, err
	}
	wt, err := p.WriterTo(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, format)
	if err != nil {
		return 0, fmt.Errorf("failed to encode plot: %w", err)
	}
	return wt.WriteTo(w)
}
