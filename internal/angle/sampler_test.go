package angle

import (
	"math"
	"testing"
)

func TestNewSamplerDefaults(t *testing.T) {
	s := NewSampler(0, -1)
	if s.Density != DefaultDensity || s.Width != DefaultWidth {
		t.Errorf("NewSampler(0, -1) = %+v, want defaults", s)
	}
	if s.Count() != 3000 {
		t.Errorf("default Count() = %d, want 3000", s.Count())
	}
}

func TestSamplerCountMinimum(t *testing.T) {
	s := Sampler{Density: 0.001, Width: 1}
	if s.Count() != minSamples {
		t.Errorf("Count() = %d, want %d", s.Count(), minSamples)
	}
	if len(s.Sample()) != minSamples {
		t.Errorf("Sample() returned %d points", len(s.Sample()))
	}
}

func TestSamplerCountBounds(t *testing.T) {
	tests := []struct {
		name    string
		sampler Sampler
		want    int
	}{
		{"defaults", NewSampler(DefaultDensity, DefaultWidth), 3000},
		{"rounds", Sampler{Density: 1.5, Width: 3}, 5},
		{"zero value", Sampler{}, minSamples},
		{"at limit", Sampler{Density: 1, Width: MaxSamples}, MaxSamples},
		{"huge product", NewSampler(1e8, 1e8), MaxSamples},
		{"infinite density", Sampler{Density: math.Inf(1), Width: 10}, MaxSamples},
		{"nan width", Sampler{Density: 1, Width: math.NaN()}, minSamples},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sampler.Count(); got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}

	if n := len(NewSampler(1e8, 1e8).Sample()); n != MaxSamples {
		t.Errorf("Sample() returned %d points, want %d", n, MaxSamples)
	}
}

func TestValidateSampling(t *testing.T) {
	tests := []struct {
		name           string
		density, width float64
		wantErr        bool
	}{
		{"defaults", DefaultDensity, DefaultWidth, false},
		{"at limit", 1000, 1000, false},
		{"over limit", 1e8, 1e8, true},
		{"zero density", 0, 10, true},
		{"negative width", 1, -5, true},
		{"infinite density", math.Inf(1), 10, true},
		{"nan width", 1, math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSampling(tt.density, tt.width)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSampling(%v, %v) error = %v, wantErr %v", tt.density, tt.width, err, tt.wantErr)
			}
		})
	}
}

func TestSample(t *testing.T) {
	s := NewSampler(2, 100)
	samples := s.Sample()

	if len(samples) != 200 {
		t.Fatalf("expected 200 samples, got %d", len(samples))
	}
	if samples[0].Angle != WindowStart {
		t.Errorf("first angle = %v, want %v", samples[0].Angle, WindowStart)
	}
	if samples[0].Position != 0 {
		t.Errorf("first position = %v, want 0", samples[0].Position)
	}

	step := (WindowEnd - WindowStart) / 200
	for i, sample := range samples {
		if sample.Angle >= WindowEnd {
			t.Fatalf("sample %d angle %v reaches the excluded right edge", i, sample.Angle)
		}
		if sample.Position < 0 || sample.Position >= s.Width {
			t.Errorf("sample %d position %v outside [0, %v)", i, sample.Position, s.Width)
		}
		if math.Abs(sample.Angle-(WindowStart+float64(i)*step)) > 1e-12 {
			t.Errorf("sample %d angle %v not evenly spaced", i, sample.Angle)
		}
		if sample.Sin != math.Sin(sample.Angle) || sample.Cos != math.Cos(sample.Angle) {
			t.Errorf("sample %d values do not match its angle", i)
		}
		if i > 0 && sample.Position <= samples[i-1].Position {
			t.Errorf("sample %d is out of order", i)
		}
	}
}

func TestHighlight(t *testing.T) {
	s := NewSampler(1, 400)

	m := s.Highlight(5 * math.Pi)
	if math.Abs(m.Wrapped-math.Pi) > 1e-12 {
		t.Errorf("Wrapped = %v, want π", m.Wrapped)
	}
	if math.Abs(m.Position-300) > 1e-9 {
		t.Errorf("Position = %v, want 300", m.Position)
	}
	if m.Degrees != 900 {
		t.Errorf("Degrees = %d, want 900", m.Degrees)
	}

	zero := s.Highlight(0)
	if zero.Position != 200 || zero.Sin != 0 || zero.Cos != 1 {
		t.Errorf("Highlight(0) = %+v", zero)
	}
}

func TestHighlightLabelSaturates(t *testing.T) {
	s := NewSampler(1, 100)

	tests := []struct {
		name string
		x    float64
		want int
	}{
		{"rounds up", FromDegrees(44.6), 45},
		{"rounds negative", FromDegrees(-30.4), -30},
		{"huge", FromDegrees(1e300), MaxLabelDegrees},
		{"huge negative", -1e300, -MaxLabelDegrees},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := s.Highlight(tt.x)
			if m.Degrees != tt.want {
				t.Errorf("Degrees = %d, want %d", m.Degrees, tt.want)
			}
			if m.Wrapped < WindowStart || m.Wrapped >= WindowEnd {
				t.Errorf("Wrapped = %v outside the window", m.Wrapped)
			}
		})
	}
}

func TestCurve(t *testing.T) {
	s := NewSampler(1, 50)
	c := s.Curve(FromDegrees(45))

	if len(c.Samples) != 50 || c.Width != 50 {
		t.Errorf("Curve has %d samples and width %v", len(c.Samples), c.Width)
	}
	if c.Marker.Degrees != 45 {
		t.Errorf("marker degrees = %d, want 45", c.Marker.Degrees)
	}
}
