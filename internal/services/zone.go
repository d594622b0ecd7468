package services

import (
	"fmt"
	"math"

	utm "github.com/im7mortal/UTM"
	"github.com/normgirm/addisland-locator/internal/domain"
)

// UTM zone covering the deployment region's survey grid, used whenever no
// reference point is supplied.
const DefaultZone = 37

// ResolveZone decides which UTM zone a batch of survey points belongs to.
//
// With a reference geographic point (a fixed, well-known landmark near the
// plots), the point is forward-projected and its native zone returned.
// Without one, the fixed deployment default applies. The result is
// deterministic across calls for the same input.
func ResolveZone(ref *domain.GeoPoint) (int, error) {
	if ref == nil {
		return DefaultZone, nil
	}

	if math.IsNaN(ref.Lat) || math.IsNaN(ref.Lon) ||
		math.IsInf(ref.Lat, 0) || math.IsInf(ref.Lon, 0) {
		return 0, fmt.Errorf("resolve zone: non-finite reference point: %w", ErrMalformedInput)
	}

	_, _, zone, _, err := utm.FromLatLon(ref.Lat, ref.Lon, ref.Lat >= 0)
	if err != nil {
		return 0, fmt.Errorf("resolve zone: project reference (%.4f, %.4f): %w: %v",
			ref.Lat, ref.Lon, ErrProjectionFailure, err)
	}

	return zone, nil
}
