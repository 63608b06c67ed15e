package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	easing "github.com/tphakala/go-easing"
)

// renderTable prints one "t value" row per sample.
func renderTable(w io.Writer, values []float64, duration float64) {
	last := float64(len(values) - 1)
	for i, v := range values {
		t := duration * float64(i) / last
		fmt.Fprintf(w, "%10.*f  %12.*f\n", valuePrecision, t, valuePrecision, v)
	}
}

// renderSummary prints the extent and how far the curve leaves [from, to].
func renderSummary(w io.Writer, values []float64, from, to float64) {
	minVal, maxVal := easing.Extent(values)
	lo, hi := math.Min(from, to), math.Max(from, to)

	fmt.Fprintf(w, "Min: %.*f  Max: %.*f\n", valuePrecision, minVal, valuePrecision, maxVal)
	if maxVal > hi {
		fmt.Fprintf(w, "Overshoot: %.*f above %g\n", valuePrecision, maxVal-hi, hi)
	}
	if minVal < lo {
		fmt.Fprintf(w, "Undershoot: %.*f below %g\n", valuePrecision, lo-minVal, lo)
	}
}

// renderPlot draws values as a width x height ASCII chart, highest values on top.
func renderPlot(w io.Writer, values []float64, width, height int) {
	grid := plotGrid(values, width, height)
	minVal, maxVal := easing.Extent(values)
	for r, row := range grid {
		label := ""
		switch r {
		case 0:
			label = fmt.Sprintf("%.3f", maxVal)
		case len(grid) - 1:
			label = fmt.Sprintf("%.3f", minVal)
		}
		fmt.Fprintf(w, "%8s |%s\n", label, strings.TrimRight(string(row), string(plotBlank)))
	}
}

// plotGrid rasterizes values into rows of runes. Columns pick the nearest
// sample; a flat curve is drawn on the middle row.
func plotGrid(values []float64, width, height int) [][]rune {
	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(string(plotBlank), width))
	}
	if len(values) == 0 || width == 0 || height == 0 {
		return grid
	}

	minVal, maxVal := easing.Extent(values)
	span := maxVal - minVal
	for col := range width {
		idx := 0
		if width > 1 {
			idx = int(math.Round(float64(col) * float64(len(values)-1) / float64(width-1)))
		}
		row := height / midRowDivisor
		if span > 0 {
			level := (values[idx] - minVal) / span
			row = height - 1 - int(math.Round(level*float64(height-1)))
		}
		if row < 0 || row >= height {
			continue // NaN or Inf
		}
		grid[row][col] = plotMark
	}
	return grid
}
