package formatter

import (
	"encoding/json"

	"github.com/yildizm/TaylorSum/internal/angle"
)

// CurveCSV writes one "sample" row per curve sample and, when withMarker is
// set, a final "marker" row for the highlighted angle
func CurveCSV(curve angle.Curve, withMarker bool) ([]byte, error) {
	records := make([][]string, 0, len(curve.Samples)+2)
	records = append(records, []string{"kind", "position", "angle", "sin", "cos"})

	for _, s := range curve.Samples {
		records = append(records, []string{"sample", csvFloat(s.Position), csvFloat(s.Angle), csvFloat(s.Sin), csvFloat(s.Cos)})
	}
	if withMarker {
		m := curve.Marker
		records = append(records, []string{"marker", csvFloat(m.Position), csvFloat(m.Wrapped), csvFloat(m.Sin), csvFloat(m.Cos)})
	}

	return writeCSV(records)
}

// CurveOutput is the JSON form of a sampled curve
type CurveOutput struct {
	Width   float64      `json:"width"`
	Count   int          `json:"count"`
	Samples []CurvePoint `json:"samples"`
	Marker  *MarkerPoint `json:"marker,omitempty"`
}

// CurvePoint is one sample of the curve
type CurvePoint struct {
	Position Float `json:"position"`
	Angle    Float `json:"angle"`
	Sin      Float `json:"sin"`
	Cos      Float `json:"cos"`
}

// MarkerPoint is the highlighted angle on the curve
type MarkerPoint struct {
	Raw      Float `json:"raw"`
	Wrapped  Float `json:"wrapped"`
	Position Float `json:"position"`
	Sin      Float `json:"sin"`
	Cos      Float `json:"cos"`
	Degrees  int   `json:"degrees"`
}

// CurveJSON encodes the curve and, when withMarker is set, its marker
func CurveJSON(curve angle.Curve, withMarker bool) ([]byte, error) {
	output := CurveOutput{
		Width:   curve.Width,
		Count:   len(curve.Samples),
		Samples: make([]CurvePoint, 0, len(curve.Samples)),
	}
	for _, s := range curve.Samples {
		output.Samples = append(output.Samples, CurvePoint{
			Position: Float(s.Position),
			Angle:    Float(s.Angle),
			Sin:      Float(s.Sin),
			Cos:      Float(s.Cos),
		})
	}
	if withMarker {
		m := curve.Marker
		output.Marker = &MarkerPoint{
			Raw:      Float(m.Raw),
			Wrapped:  Float(m.Wrapped),
			Position: Float(m.Position),
			Sin:      Float(m.Sin),
			Cos:      Float(m.Cos),
			Degrees:  m.Degrees,
		}
	}
	return json.MarshalIndent(output, "", "  ")
}
