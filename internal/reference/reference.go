// Package reference compares series approximations with the math package.
package reference

import (
	"math"

	"github.com/yildizm/TaylorSum/internal/series"
	"gonum.org/v1/gonum/floats"
)

// Comparison pairs series values with reference values and their deviation
type Comparison struct {
	Radians   float64       `json:"radians"`
	Terms     int           `json:"terms"`
	Series    series.Values `json:"series"`
	Reference series.Values `json:"reference"`
	Diff      series.Values `json:"diff"`
}

// Reference returns math.Sin, math.Cos and math.Tan of x
func Reference(x float64) series.Values {
	return series.Values{
		Sin: math.Sin(x),
		Cos: math.Cos(x),
		Tan: math.Tan(x),
	}
}

// Compare computes reference values for x and the absolute difference from approx
func Compare(x float64, approx series.Values) Comparison {
	ref := Reference(x)
	return Comparison{
		Radians:   x,
		Series:    approx,
		Reference: ref,
		Diff: series.Values{
			Sin: math.Abs(approx.Sin - ref.Sin),
			Cos: math.Abs(approx.Cos - ref.Cos),
			Tan: math.Abs(approx.Tan - ref.Tan),
		},
	}
}

// Evaluate runs the series evaluator for x and compares the result
func Evaluate(x float64, terms int) Comparison {
	terms = series.ClampTerms(terms)
	c := Compare(x, series.Evaluate(x, terms))
	c.Terms = terms
	return c
}

// MaxDiff returns the largest finite deviation, or 0 when every deviation is
// non-finite.
func (c Comparison) MaxDiff() float64 {
	finite := make([]float64, 0, 3)
	for _, d := range []float64{c.Diff.Sin, c.Diff.Cos, c.Diff.Tan} {
		if !math.IsInf(d, 0) && !math.IsNaN(d) {
			finite = append(finite, d)
		}
	}
	if len(finite) == 0 {
		return 0
	}
	return floats.Max(finite)
}

// Guarded reports whether the series tangent hit the singularity guard
func (c Comparison) Guarded() bool {
	return math.IsInf(c.Series.Tan, 0)
}
