package ufo

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Point is one outline point of the pixel element contour, in 26.6
// fixed-point font units. Type follows the UFO point types: "curve" for
// on-curve points ending a cubic segment, "line" for straight connections,
// "offcurve" for control points.
type Point struct {
	X, Y fixed.Int26_6
	Type string
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// Float returns a fixed-point coordinate as font units.
func Float(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// ElementContour computes the outline of the pixel element glyph: a
// rounded rectangle centered on the pixel cell, sized by the ESIZ axis,
// rounded by ROND, and stretched horizontally into neighboring cells by
// BLED. Corners are cubic Bézier arcs using the standard circle
// approximation (tangent length 4/3·tan(π/8) of the radius).
func ElementContour(loc Location, upeY, upeX float64) []Point {
	unit := loc.Value("ESIZ") * upeY / 2
	radius := loc.Value("ROND") * unit
	tangent := radius * (4.0 / 3.0) * math.Tan(math.Pi/8)

	maxX := unit + loc.Value("BLED")*(upeX-unit)
	maxY := unit
	minX := maxX - radius
	minY := maxY - radius
	tangentX := minX + tangent
	tangentY := minY + tangent

	// (y, x) pairs, clockwise from the right edge
	coords := []struct {
		y, x float64
		typ  string
	}{
		{minY, maxX, "curve"},
		{-minY, maxX, "line"},
		{-tangentY, maxX, "offcurve"},
		{-maxY, tangentX, "offcurve"},
		{-maxY, minX, "curve"},
		{-maxY, -minX, "line"},
		{-maxY, -tangentX, "offcurve"},
		{-tangentY, -maxX, "offcurve"},
		{-minY, -maxX, "curve"},
		{minY, -maxX, "line"},
		{tangentY, -maxX, "offcurve"},
		{maxY, -tangentX, "offcurve"},
		{maxY, -minX, "curve"},
		{maxY, minX, "line"},
		{maxY, tangentX, "offcurve"},
		{tangentY, maxX, "offcurve"},
	}
	points := make([]Point, len(coords))
	for i, c := range coords {
		points[i] = Point{X: toFixed(c.x), Y: toFixed(c.y), Type: c.typ}
	}
	return points
}
