package series

import (
	"fmt"
	"math"
)

const (
	// MinTerms is the smallest usable term count
	MinTerms = 1

	// MaxTerms bounds the term count so the largest factorial argument
	// (2*MaxTerms-1 = 99) stays finite in float64
	MaxTerms = 50

	// DefaultTerms is the term count used when none is configured
	DefaultTerms = 10

	// TanGuard is the |cos| threshold below which tangent is reported as ±Inf
	TanGuard = 1e-10
)

// Values holds one sine/cosine/tangent triple
type Values struct {
	Sin float64 `json:"sin" yaml:"sin"`
	Cos float64 `json:"cos" yaml:"cos"`
	Tan float64 `json:"tan" yaml:"tan"`
}

// Term is one row of a term-by-term breakdown
type Term struct {
	Index      int     `json:"n"`
	SinPower   int     `json:"sin_power"`
	CosPower   int     `json:"cos_power"`
	SinTerm    float64 `json:"sin_term"`
	CosTerm    float64 `json:"cos_term"`
	PartialSin float64 `json:"partial_sin"`
	PartialCos float64 `json:"partial_cos"`
}

// ClampTerms forces a term count into [MinTerms, MaxTerms]
func ClampTerms(terms int) int {
	if terms < MinTerms {
		return MinTerms
	}
	if terms > MaxTerms {
		return MaxTerms
	}
	return terms
}

// ValidateTerms reports whether terms is inside the supported range
func ValidateTerms(terms int) error {
	if terms < MinTerms || terms > MaxTerms {
		return fmt.Errorf("term count must be between %d and %d, got %d", MinTerms, MaxTerms, terms)
	}
	return nil
}

// sign returns (-1)^n
func sign(n int) float64 {
	if n%2 == 0 {
		return 1
	}
	return -1
}

// term returns (-1)^n * x^power / power!
func term(x float64, n, power int) float64 {
	return sign(n) * math.Pow(x, float64(power)) / FactorialFloat(uint(power))
}

// Sin approximates sin(x) with the first terms of its Maclaurin series:
//
//	sin(x) = x - x³/3! + x⁵/5! - ...
func Sin(x float64, terms int) float64 {
	terms = ClampTerms(terms)
	sum := 0.0
	for n := 0; n < terms; n++ {
		sum += term(x, n, 2*n+1)
	}
	return sum
}

// Cos approximates cos(x) with the first terms of its Maclaurin series:
//
//	cos(x) = 1 - x²/2! + x⁴/4! - ...
func Cos(x float64, terms int) float64 {
	terms = ClampTerms(terms)
	sum := 0.0
	for n := 0; n < terms; n++ {
		sum += term(x, n, 2*n)
	}
	return sum
}

// Tan derives tan(x) from the series sine and cosine
func Tan(x float64, terms int) float64 {
	return tanOf(Sin(x, terms), Cos(x, terms))
}

// tanOf divides sin by cos unless cos is within TanGuard of zero, in which
// case the singularity is reported with the sign of sin.
func tanOf(sin, cos float64) float64 {
	if math.Abs(cos) < TanGuard {
		if sin >= 0 {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	return sin / cos
}

// Evaluate computes all three series values for x
func Evaluate(x float64, terms int) Values {
	s := Sin(x, terms)
	c := Cos(x, terms)
	return Values{Sin: s, Cos: c, Tan: tanOf(s, c)}
}

// Trace returns the per-term contributions and running partial sums used by
// Sin and Cos. The last row's partial sums equal Sin(x, terms) and Cos(x, terms).
func Trace(x float64, terms int) []Term {
	terms = ClampTerms(terms)
	rows := make([]Term, 0, terms)

	partialSin, partialCos := 0.0, 0.0
	for n := 0; n < terms; n++ {
		sinPower, cosPower := 2*n+1, 2*n
		sinTerm := term(x, n, sinPower)
		cosTerm := term(x, n, cosPower)
		partialSin += sinTerm
		partialCos += cosTerm

		rows = append(rows, Term{
			Index:      n,
			SinPower:   sinPower,
			CosPower:   cosPower,
			SinTerm:    sinTerm,
			CosTerm:    cosTerm,
			PartialSin: partialSin,
			PartialCos: partialCos,
		})
	}
	return rows
}
