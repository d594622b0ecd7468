package services

import (
	"fmt"

	"github.com/normgirm/addisland-locator/internal/domain"
	"github.com/paulmach/orb"
)

// AssemblePolygon turns a sequence of geographic points into a closed,
// centroid-bearing plot polygon.
//
// If the ring is not already closed, a copy of the first vertex is appended;
// assembling an already-closed ring is a no-op on its length. The centroid
// is the coordinate-wise mean over the open ring (the closing duplicate is
// excluded so the first vertex is not double-weighted). It always lies
// within the ring's bounding box, though it is not a true area centroid.
func AssemblePolygon(points []orb.Point) (domain.PlotPolygon, error) {
	closed := len(points) > 1 && points[0] == points[len(points)-1]

	distinct := len(points)
	if closed {
		distinct--
	}

	// A repeated vertex anywhere in the sequence must not count toward the
	// minimum: [A,B,A,B] holds four positions but only two locations.
	unique := make(map[orb.Point]struct{}, distinct)
	for _, p := range points {
		unique[p] = struct{}{}
	}
	if len(unique) < 3 {
		return domain.PlotPolygon{}, fmt.Errorf(
			"assemble polygon: need at least 3 distinct vertices, got %d: %w",
			len(unique), ErrMalformedInput,
		)
	}

	ring := make(orb.Ring, len(points), len(points)+1)
	copy(ring, points)
	if !closed {
		ring = append(ring, ring[0])
	}

	var sumLon, sumLat float64
	for _, p := range ring[:distinct] {
		sumLon += p.Lon()
		sumLat += p.Lat()
	}

	centroid := orb.Point{sumLon / float64(distinct), sumLat / float64(distinct)}

	return domain.PlotPolygon{Ring: ring, Centroid: centroid}, nil
}
