package components

import (
	"math"
	"strings"
	"testing"
)

func TestAgreementMeterDigits(t *testing.T) {
	tests := []struct {
		name      string
		deviation float64
		want      float64
	}{
		{"exact", 0, FullAgreement},
		{"six digits", 1e-6, 6},
		{"beyond full", 1e-20, FullAgreement},
		{"no agreement", 50, 0},
		{"negative", -1e-3, 3},
		{"infinite", math.Inf(1), 0},
		{"nan", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAgreementMeter(15)
			m.SetDeviation(tt.deviation)
			if got := m.Digits(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Digits() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAgreementMeterRender(t *testing.T) {
	m := NewAgreementMeter(15)
	m.Plain = true
	m.Label = "agreement"
	m.SetDeviation(1e-5)

	got := m.Render()
	want := "agreement [" + strings.Repeat("█", 5) + strings.Repeat("░", 10) + "] 5.0 digits"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	m.SetDeviation(0)
	if !strings.Contains(m.Render(), strings.Repeat("█", 15)+"]") {
		t.Errorf("full agreement should fill the bar: %q", m.Render())
	}
}
