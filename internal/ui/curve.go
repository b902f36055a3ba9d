package ui

import (
	"math"
	"strings"

	"github.com/yildizm/TaylorSum/internal/angle"
)

const (
	sineRune   = '•'
	cosineRune = '·'
	markerRune = '◆'
)

// curveGrid plots sin and cos samples on a cols x rows character grid. The
// middle row is the zero axis and the middle column is angle 0.
func curveGrid(c angle.Curve, cols, rows int) [][]rune {
	if cols < 2 || rows < 3 || c.Width <= 0 {
		return nil
	}

	grid := make([][]rune, rows)
	axisRow := (rows - 1) / 2
	axisCol := column(c.Width/2, c.Width, cols)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", cols))
		grid[r][axisCol] = '│'
	}
	for col := range grid[axisRow] {
		grid[axisRow][col] = '─'
	}
	grid[axisRow][axisCol] = '┼'

	for _, s := range c.Samples {
		col := column(s.Position, c.Width, cols)
		grid[row(s.Cos, rows)][col] = cosineRune
	}
	for _, s := range c.Samples {
		col := column(s.Position, c.Width, cols)
		grid[row(s.Sin, rows)][col] = sineRune
	}

	grid[row(c.Marker.Sin, rows)][column(c.Marker.Position, c.Width, cols)] = markerRune
	return grid
}

// column maps a curve position in [0, width) to a grid column
func column(position, width float64, cols int) int {
	col := int(position / width * float64(cols))
	switch {
	case col < 0:
		return 0
	case col >= cols:
		return cols - 1
	}
	return col
}

// row maps a value in [-1, 1] to a grid row, +1 being the top row
func row(v float64, rows int) int {
	r := int(math.Round((1 - v) / 2 * float64(rows-1)))
	switch {
	case r < 0:
		return 0
	case r >= rows:
		return rows - 1
	}
	return r
}

// renderCurve draws the grid, coloring each curve with styles
func renderCurve(c angle.Curve, cols, rows int, styles *Styles) string {
	grid := curveGrid(c, cols, rows)
	if grid == nil {
		return ""
	}

	var b strings.Builder
	for _, line := range grid {
		for _, r := range line {
			switch r {
			case sineRune:
				b.WriteString(render(styles.Sine, string(r)))
			case cosineRune:
				b.WriteString(render(styles.Cosine, string(r)))
			case markerRune:
				b.WriteString(render(styles.Marker, string(r)))
			default:
				b.WriteRune(r)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
