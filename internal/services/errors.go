package services

import "errors"

// Typed pipeline failures. The transform is atomic: any of these aborts the
// whole call and no partial geometry is returned. The API layer maps each to
// a distinct HTTP status, so callers can tell an out-of-range calibration
// query apart from bad input or a projection fault.
var (
	// The calibration query point falls outside the convex hull of the
	// control points, where the correction field is not defined.
	ErrCalibrationOutOfRange = errors.New("calibration query outside control-point hull")

	// The survey point list is empty or contains non-finite values.
	ErrMalformedInput = errors.New("malformed survey input")

	// The underlying coordinate conversion rejected its input or produced
	// non-finite output.
	ErrProjectionFailure = errors.New("projection failure")
)
