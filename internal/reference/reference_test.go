package reference

import (
	"math"
	"testing"

	"github.com/yildizm/TaylorSum/internal/series"
)

func TestCompare(t *testing.T) {
	approx := series.Values{Sin: 0.5, Cos: 0.8, Tan: 0.6}
	x := 0.5

	c := Compare(x, approx)

	if c.Series != approx {
		t.Errorf("Series = %+v, want %+v", c.Series, approx)
	}
	if c.Reference.Sin != math.Sin(x) || c.Reference.Cos != math.Cos(x) || c.Reference.Tan != math.Tan(x) {
		t.Errorf("Reference = %+v does not match math package", c.Reference)
	}
	if c.Diff.Sin != math.Abs(0.5-math.Sin(x)) {
		t.Errorf("Diff.Sin = %v", c.Diff.Sin)
	}
	if c.Diff.Cos != math.Abs(0.8-math.Cos(x)) {
		t.Errorf("Diff.Cos = %v", c.Diff.Cos)
	}
	if c.Diff.Tan != math.Abs(0.6-math.Tan(x)) {
		t.Errorf("Diff.Tan = %v", c.Diff.Tan)
	}
}

func TestEvaluateQuarterPi(t *testing.T) {
	c := Evaluate(math.Pi/4, 10)

	if c.Terms != 10 {
		t.Errorf("Terms = %d, want 10", c.Terms)
	}
	for name, d := range map[string]float64{"sin": c.Diff.Sin, "cos": c.Diff.Cos, "tan": c.Diff.Tan} {
		if d > 1e-9 {
			t.Errorf("%s deviation %g exceeds 1e-9", name, d)
		}
	}
	if c.Guarded() {
		t.Error("tan(π/4) should not be guarded")
	}
}

func TestEvaluateHalfPi(t *testing.T) {
	c := Evaluate(math.Pi/2, 15)

	if math.Abs(c.Series.Cos) > 1e-10 {
		t.Errorf("series cos(π/2) = %g, want within 1e-10 of 0", c.Series.Cos)
	}
	if !c.Guarded() || !math.IsInf(c.Series.Tan, 1) {
		t.Errorf("series tan(π/2) = %v, want +Inf", c.Series.Tan)
	}
	if !math.IsInf(c.Diff.Tan, 1) {
		t.Errorf("tan deviation = %v, want +Inf", c.Diff.Tan)
	}
	if got := c.MaxDiff(); math.IsInf(got, 0) || got > 1e-9 {
		t.Errorf("MaxDiff should ignore the infinite tan deviation, got %v", got)
	}
}

func TestEvaluateClampsTerms(t *testing.T) {
	if c := Evaluate(1, 0); c.Terms != series.MinTerms {
		t.Errorf("Terms = %d, want %d", c.Terms, series.MinTerms)
	}
	if c := Evaluate(1, 99); c.Terms != series.MaxTerms {
		t.Errorf("Terms = %d, want %d", c.Terms, series.MaxTerms)
	}
}

func TestNonFiniteInputPropagates(t *testing.T) {
	c := Evaluate(math.NaN(), 5)
	if !math.IsNaN(c.Reference.Sin) || !math.IsNaN(c.Diff.Sin) {
		t.Errorf("NaN input should propagate, got %+v", c)
	}
	if c.MaxDiff() != 0 {
		t.Errorf("MaxDiff with no finite deviation = %v, want 0", c.MaxDiff())
	}
}
