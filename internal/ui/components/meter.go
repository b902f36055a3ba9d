package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FullAgreement is the number of matching decimal digits drawn as a full bar
const FullAgreement = 15

// AgreementMeter draws how many decimal digits the series shares with the
// reference values
type AgreementMeter struct {
	Width int
	Label string
	Plain bool

	deviation float64
}

// NewAgreementMeter creates a meter of width cells
func NewAgreementMeter(width int) *AgreementMeter {
	return &AgreementMeter{Width: width}
}

// SetDeviation sets the largest absolute deviation being displayed
func (m *AgreementMeter) SetDeviation(d float64) {
	m.deviation = d
}

// Digits returns the matching decimal digits, clamped to [0, FullAgreement].
// A deviation of exactly zero counts as full agreement.
func (m *AgreementMeter) Digits() float64 {
	d := math.Abs(m.deviation)
	switch {
	case math.IsNaN(d) || math.IsInf(d, 0):
		return 0
	case d == 0:
		return FullAgreement
	}
	return math.Max(0, math.Min(FullAgreement, -math.Log10(d)))
}

// Render renders the meter
func (m *AgreementMeter) Render() string {
	digits := m.Digits()
	filledWidth := int(math.Round(float64(m.Width) * digits / FullAgreement))
	if filledWidth > m.Width {
		filledWidth = m.Width
	}

	filled := strings.Repeat("█", filledWidth)
	empty := strings.Repeat("░", m.Width-filledWidth)
	if !m.Plain {
		// Define styles locally to avoid import cycle
		filled = lipgloss.NewStyle().Foreground(m.color(digits)).Bold(true).Render(filled)
		empty = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).Render(empty)
	}

	result := fmt.Sprintf("[%s%s] %.1f digits", filled, empty, digits)
	if m.Label != "" {
		result = m.Label + " " + result
	}
	return result
}

// color grades the bar green, amber or red by agreement
func (m *AgreementMeter) color(digits float64) lipgloss.Color {
	switch {
	case digits >= 10:
		return lipgloss.Color("#10B981")
	case digits >= 5:
		return lipgloss.Color("#F59E0B")
	}
	return lipgloss.Color("#EF4444")
}
