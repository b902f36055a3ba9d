package angle

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// WindowStart is the left edge of the plotting window
	WindowStart = -2 * math.Pi

	// WindowEnd is the (exclusive) right edge of the plotting window
	WindowEnd = 2 * math.Pi

	// DefaultDensity is the default number of samples per unit of curve width
	DefaultDensity = 5.0

	// DefaultWidth is the default curve width in abstract units
	DefaultWidth = 600.0

	// MaxSamples bounds the number of samples a sampler produces
	MaxSamples = 1_000_000

	// MaxLabelDegrees bounds the marker's degree label
	MaxLabelDegrees = math.MaxInt32

	minSamples = 2
)

// Sample is one point of the sine/cosine polyline
type Sample struct {
	Position float64 `json:"position"`
	Angle    float64 `json:"angle"`
	Sin      float64 `json:"sin"`
	Cos      float64 `json:"cos"`
}

// Marker places a highlighted angle on the plotting window
type Marker struct {
	Raw      float64 `json:"raw"`
	Wrapped  float64 `json:"wrapped"`
	Position float64 `json:"position"`
	Sin      float64 `json:"sin"`
	Cos      float64 `json:"cos"`
	Degrees  int     `json:"degrees"`
}

// Curve is a sampled window plus the highlighted angle
type Curve struct {
	Samples []Sample `json:"samples"`
	Marker  Marker   `json:"marker"`
	Width   float64  `json:"width"`
}

// Sampler generates evenly spaced samples across [-2π, 2π)
type Sampler struct {
	Density float64
	Width   float64
}

// NewSampler returns a sampler, replacing non-positive values with defaults
func NewSampler(density, width float64) Sampler {
	if density <= 0 || math.IsNaN(density) {
		density = DefaultDensity
	}
	if width <= 0 || math.IsNaN(width) {
		width = DefaultWidth
	}
	return Sampler{Density: density, Width: width}
}

// ValidateSampling reports whether density and width give a usable sample count
func ValidateSampling(density, width float64) error {
	if math.IsNaN(density) || math.IsInf(density, 0) || density <= 0 {
		return fmt.Errorf("density must be a finite number greater than 0")
	}
	if math.IsNaN(width) || math.IsInf(width, 0) || width <= 0 {
		return fmt.Errorf("width must be a finite number greater than 0")
	}
	if density*width > MaxSamples {
		return fmt.Errorf("density × width must not exceed %d samples, got %g", MaxSamples, density*width)
	}
	return nil
}

// Count returns the number of samples the sampler produces, clamped to
// [2, MaxSamples]
func (s Sampler) Count() int {
	p := math.Round(s.Density * s.Width)
	switch {
	case math.IsNaN(p) || p < minSamples:
		return minSamples
	case p > MaxSamples:
		return MaxSamples
	}
	return int(p)
}

// Position maps an angle inside the window to [0, Width)
func (s Sampler) Position(t float64) float64 {
	return (t - WindowStart) / (WindowEnd - WindowStart) * s.Width
}

// Sample returns Count() points ordered by angle
func (s Sampler) Sample() []Sample {
	n := s.Count()
	// Span includes the right edge, which the window excludes
	angles := floats.Span(make([]float64, n+1), WindowStart, WindowEnd)[:n]

	samples := make([]Sample, n)
	for i, t := range angles {
		samples[i] = Sample{
			Position: s.Position(t),
			Angle:    t,
			Sin:      math.Sin(t),
			Cos:      math.Cos(t),
		}
	}
	return samples
}

// Highlight places x on the window
func (s Sampler) Highlight(x float64) Marker {
	w := Wrap(x)
	return Marker{
		Raw:      x,
		Wrapped:  w,
		Position: s.Position(w),
		Sin:      math.Sin(w),
		Cos:      math.Cos(w),
		Degrees:  degreeLabel(x),
	}
}

// degreeLabel rounds x in degrees to a whole number, saturating at
// ±MaxLabelDegrees
func degreeLabel(x float64) int {
	d := math.Round(ToDegrees(x))
	switch {
	case math.IsNaN(d):
		return 0
	case d > MaxLabelDegrees:
		return MaxLabelDegrees
	case d < -MaxLabelDegrees:
		return -MaxLabelDegrees
	}
	return int(d)
}

// Curve samples the window and highlights x
func (s Sampler) Curve(x float64) Curve {
	return Curve{
		Samples: s.Sample(),
		Marker:  s.Highlight(x),
		Width:   s.Width,
	}
}
