package formatter

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/yildizm/TaylorSum/internal/emoji"
	"github.com/yildizm/TaylorSum/internal/reference"
)

// functionRow is one line of a series-versus-reference table
type functionRow struct {
	Name      string
	EmojiKey  string
	Series    float64
	Reference float64
	Diff      float64
}

// functionRows flattens a comparison into sin, cos, tan rows
func functionRows(c *reference.Comparison) []functionRow {
	return []functionRow{
		{Name: "sin", EmojiKey: "sin", Series: c.Series.Sin, Reference: c.Reference.Sin, Diff: c.Diff.Sin},
		{Name: "cos", EmojiKey: "cos", Series: c.Series.Cos, Reference: c.Reference.Cos, Diff: c.Diff.Cos},
		{Name: "tan", EmojiKey: "tan", Series: c.Series.Tan, Reference: c.Reference.Tan, Diff: c.Diff.Tan},
	}
}

// FormatValue prints v with a fixed number of decimals; infinities keep their sign
func FormatValue(v float64, precision int) string {
	switch {
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// FormatDiff prints a deviation in scientific notation
func FormatDiff(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return FormatValue(v, 0)
	}
	return strconv.FormatFloat(v, 'e', 3, 64)
}

// FormatSigned prints a series term with an explicit sign
func FormatSigned(v float64, precision int) string {
	return fmt.Sprintf("%+.*g", precision, v)
}

// formatNumber formats counts with thousands separators
func formatNumber(n int) string {
	return humanize.Comma(int64(n))
}

// agreement maps the largest deviation to [0, 1] by matching decimal digits,
// 15 digits or more being full agreement
func agreement(maxDiff float64) float64 {
	if maxDiff <= 0 {
		return 1
	}
	digits := -math.Log10(maxDiff)
	switch {
	case digits <= 0:
		return 0
	case digits >= 15:
		return 1
	}
	return digits / 15
}

// getFunctionEmoji returns the emoji for a row of the comparison table
func getFunctionEmoji(row functionRow) string {
	if math.IsInf(row.Series, 0) {
		return emoji.GetEmoji("infinity")
	}
	return emoji.GetEmoji(row.EmojiKey)
}

// AboutText explains the computation shown in reports and the TUI help
const AboutText = `The Taylor series of sine and cosine around 0 are

    sin(x) = Σ (-1)^n x^(2n+1) / (2n+1)!
    cos(x) = Σ (-1)^n x^(2n)   / (2n)!

Truncating after N terms gives an approximation that improves as N grows;
near 0 a handful of terms suffice, far from 0 many more are needed.
tan(x) is the quotient of the two sums and is reported as ±Inf when the
cosine sum is closer to 0 than 1e-10.`
