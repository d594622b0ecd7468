package services

import (
	"fmt"
	"math"

	utm "github.com/im7mortal/UTM"
	"github.com/normgirm/addisland-locator/internal/domain"
	"github.com/paulmach/orb"
)

// Transform converts a batch of raw survey points into geographic
// coordinates for the given UTM zone, applying the calibration correction
// first.
//
// The correction is evaluated once at the batch's mean (easting, northing)
// and added uniformly to every point. Correcting per point would track the
// surface more closely but also any local noise in the calibration data;
// the whole-batch policy keeps a plot's shape rigid under correction.
//
// Output has the same length and index order as the input. Any failure
// aborts the whole batch; there is no partial result.
func Transform(
	points []domain.SurveyPoint,
	surface *CalibrationSurface,
	zone int,
) ([]orb.Point, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("transform: empty survey point list: %w", ErrMalformedInput)
	}

	var sumE, sumN float64
	for i, p := range points {
		if !isFinite(p.Easting) || !isFinite(p.Northing) {
			return nil, fmt.Errorf(
				"transform: non-finite survey point at index %d: %w", i, ErrMalformedInput,
			)
		}
		sumE += p.Easting
		sumN += p.Northing
	}

	meanE := sumE / float64(len(points))
	meanN := sumN / float64(len(points))

	de, dn, err := surface.CorrectionAt(meanE, meanN)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}

	out := make([]orb.Point, len(points))
	for i, p := range points {
		lat, lon, err := utm.ToLatLon(p.Easting+de, p.Northing+dn, zone, "", true)
		if err != nil {
			return nil, fmt.Errorf(
				"transform: convert point %d (zone %d): %w: %v", i, zone, ErrProjectionFailure, err,
			)
		}
		if !isFinite(lat) || !isFinite(lon) {
			return nil, fmt.Errorf(
				"transform: non-finite conversion result at index %d: %w", i, ErrProjectionFailure,
			)
		}
		out[i] = orb.Point{lon, lat}
	}

	return out, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
