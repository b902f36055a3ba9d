package angle

import (
	"errors"
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    float64
		wantErr bool
	}{
		{"integer", "45", 45, false},
		{"negative decimal", "-12.5", -12.5, false},
		{"exponent", "1e2", 100, false},
		{"surrounding whitespace", "  90 ", 90, false},
		{"letters", "abc", 0, true},
		{"empty", "", 0, true},
		{"blank", "   ", 0, true},
		{"trailing garbage", "45deg", 0, true},
		{"nan", "NaN", 0, true},
		{"infinity", "inf", 0, true},
		{"overflow", "1e400", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %v", tt.text, got)
				}
				if !errors.Is(err, ErrInvalidAngle) {
					t.Errorf("Parse(%q) error %v should match ErrInvalidAngle", tt.text, err)
				}
				var inputErr *InputError
				if !errors.As(err, &inputErr) || inputErr.Text != tt.text {
					t.Errorf("Parse(%q) should return *InputError carrying the text, got %v", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestInputRadians(t *testing.T) {
	rad, err := Input{Text: "180", Mode: Degrees}.Radians()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(rad-math.Pi) > 1e-15 {
		t.Errorf("180° = %v rad, want π", rad)
	}

	rad, err = Input{Text: "1.5", Mode: Radians}.Radians()
	if err != nil || rad != 1.5 {
		t.Errorf("radian mode should pass through, got %v, %v", rad, err)
	}

	if _, err := (Input{Text: "abc", Mode: Radians}).Radians(); !errors.Is(err, ErrInvalidAngle) {
		t.Errorf("expected ErrInvalidAngle, got %v", err)
	}
}

func TestDegreeRoundTrip(t *testing.T) {
	for _, deg := range []float64{45, -30, 0, 90, 360, 1234.5} {
		back := ToDegrees(ToRadians(deg, Degrees))
		if math.Abs(back-deg) > 1e-9 {
			t.Errorf("round trip of %v° gave %v", deg, back)
		}
	}
}

func TestModeStrings(t *testing.T) {
	if Degrees.String() != "degrees" || Radians.String() != "radians" {
		t.Errorf("unexpected mode names %q %q", Degrees, Radians)
	}
	if Degrees.Unit() != "°" || Radians.Unit() != "rad" {
		t.Errorf("unexpected units %q %q", Degrees.Unit(), Radians.Unit())
	}
	if ModeFromRadianFlag(true) != Radians || ModeFromRadianFlag(false) != Degrees {
		t.Error("ModeFromRadianFlag mapping is wrong")
	}
}

func TestWrap(t *testing.T) {
	inWindow := func(v float64) bool { return v >= -2*math.Pi && v < 2*math.Pi }

	five := Wrap(5 * math.Pi)
	if !inWindow(five) {
		t.Fatalf("Wrap(5π) = %v, outside window", five)
	}
	if math.Abs(five-Wrap(math.Pi)) > 1e-12 {
		t.Errorf("Wrap(5π) = %v, want Wrap(π) = %v", five, Wrap(math.Pi))
	}
	if math.Abs(Wrap(math.Pi)-math.Pi) > 1e-12 {
		t.Errorf("Wrap(π) = %v, want π", Wrap(math.Pi))
	}

	tests := []float64{0, 1, -1, 2 * math.Pi, -2 * math.Pi, 7, -7, -5 * math.Pi, 100, -100, 1e6, -1e6}
	for _, x := range tests {
		got := Wrap(x)
		if !inWindow(got) {
			t.Errorf("Wrap(%v) = %v, outside [-2π, 2π)", x, got)
		}
		if math.Abs(math.Sin(got)-math.Sin(x)) > 1e-6 || math.Abs(math.Cos(got)-math.Cos(x)) > 1e-6 {
			t.Errorf("Wrap(%v) = %v changed the angle's direction", x, got)
		}
	}

	if got := Wrap(2 * math.Pi); math.Abs(got+2*math.Pi) > 1e-12 {
		t.Errorf("Wrap(2π) = %v, want -2π", got)
	}
}
