// Package render draws donut charts, the legend and the full panel with the
// go-chart raster renderer.
package render

import "math"

// PointsPerInch is the typographic point density.
const PointsPerInch = 72.0

// PointsToPixels converts a length in points to pixels at the given DPI.
func PointsToPixels(pt, dpi float64) float64 {
	return pt * dpi / PointsPerInch
}

// InchesToPixels converts a length in inches to whole pixels at the given DPI.
func InchesToPixels(in, dpi float64) int {
	return int(math.Round(in * dpi))
}
