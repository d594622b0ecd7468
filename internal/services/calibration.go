package services

import (
	"fmt"
	"math"

	"github.com/normgirm/addisland-locator/internal/domain"
	"github.com/normgirm/addisland-locator/internal/ports"
)

// Tolerance on the barycentric weights for the inside-hull test, so points
// sitting numerically on a hull edge are not rejected over rounding.
const hullEpsilon = 1e-9

// CalibrationSurface is a piecewise-linear correction field over the
// (easting, northing) plane, fitted from three control points with known
// required corrections. It interpolates the easting and northing corrections
// independently over the triangle the control points span.
//
// The surface is immutable after construction and safe for concurrent reads;
// build it once at startup and share it across transform calls.
type CalibrationSurface struct {
	points [3]domain.ControlPoint

	// Cached barycentric denominator for the control triangle.
	denom float64
}

// NewCalibrationSurface fits the correction field from the deployed control
// set. The set must hold exactly three pairwise-distinct, non-collinear
// points; anything else cannot span a 2-D interpolation surface.
func NewCalibrationSurface(points []domain.ControlPoint) (*CalibrationSurface, error) {
	if len(points) != 3 {
		return nil, fmt.Errorf("new calibration surface: need exactly 3 control points, got %d", len(points))
	}

	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if points[i].Easting == points[j].Easting && points[i].Northing == points[j].Northing {
				return nil, fmt.Errorf(
					"new calibration surface: control points %d and %d share location (%.4f, %.4f)",
					i, j, points[i].Easting, points[i].Northing,
				)
			}
		}
	}

	a, b, c := points[0], points[1], points[2]
	denom := (b.Northing-c.Northing)*(a.Easting-c.Easting) +
		(c.Easting-b.Easting)*(a.Northing-c.Northing)
	if denom == 0 {
		return nil, fmt.Errorf("new calibration surface: control points are collinear")
	}

	s := &CalibrationSurface{denom: denom}
	copy(s.points[:], points)
	return s, nil
}

// NewCalibrationSurfaceFromSource loads the deployed control-point table and
// fits the surface in one step.
func NewCalibrationSurfaceFromSource(src ports.ControlPointSource) (*CalibrationSurface, error) {
	points, err := src.ControlPoints()
	if err != nil {
		return nil, fmt.Errorf("new calibration surface: %w", err)
	}
	return NewCalibrationSurface(points)
}

// CorrectionAt evaluates the fitted field at (easting, northing) and returns
// the interpolated (Δeasting, Δnorthing).
//
// The field is only defined inside the convex hull of the control points.
// Queries outside the hull are rejected with ErrCalibrationOutOfRange rather
// than clamped or extrapolated: a plane fitted to three points degrades fast
// away from them, and a silently shifted boundary is worse than a refusal.
func (s *CalibrationSurface) CorrectionAt(easting, northing float64) (float64, float64, error) {
	a, b, c := s.points[0], s.points[1], s.points[2]

	// Barycentric coordinates of the query point in the control triangle.
	wa := ((b.Northing-c.Northing)*(easting-c.Easting) +
		(c.Easting-b.Easting)*(northing-c.Northing)) / s.denom
	wb := ((c.Northing-a.Northing)*(easting-c.Easting) +
		(a.Easting-c.Easting)*(northing-c.Northing)) / s.denom
	wc := 1 - wa - wb

	if wa < -hullEpsilon || wb < -hullEpsilon || wc < -hullEpsilon {
		return 0, 0, fmt.Errorf(
			"correction at (%.4f, %.4f): %w", easting, northing, ErrCalibrationOutOfRange,
		)
	}

	de := wa*a.EastingCorrection + wb*b.EastingCorrection + wc*c.EastingCorrection
	dn := wa*a.NorthingCorrection + wb*b.NorthingCorrection + wc*c.NorthingCorrection

	if math.IsNaN(de) || math.IsNaN(dn) {
		return 0, 0, fmt.Errorf(
			"correction at (%.4f, %.4f): non-finite interpolant: %w",
			easting, northing, ErrCalibrationOutOfRange,
		)
	}

	return de, dn, nil
}
