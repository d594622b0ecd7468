package domain

import "github.com/paulmach/orb"

// Represents a renderable plot boundary in geographic coordinates.
// The ring is closed (first and last vertex equal, length >= 4) and the
// centroid is the coordinate-wise mean of the ring's distinct vertices.
// A PlotPolygon is derived output and never mutated after assembly.
type PlotPolygon struct {
	Ring     orb.Ring
	Centroid orb.Point
}

// Number of distinct vertices, excluding the closing repeat.
func (p PlotPolygon) VertexCount() int {
	if len(p.Ring) == 0 {
		return 0
	}
	return len(p.Ring) - 1
}

// Represents the full result of locating a plot: the certificate record the
// boundary was extracted from, plus the transformed polygon.
type PlotLocation struct {
	Certificate Certificate
	Polygon     PlotPolygon
}
