package domain

// Immutable geographic coordinates (latitude, longitude) in WGS84 degrees.
type GeoPoint struct {
	Lat float64
	Lon float64
}

// A raw surveyed position on the projected grid, in meters.
// Ordering within a plot boundary is meaningful (it defines ring winding).
type SurveyPoint struct {
	Easting  float64
	Northing float64
}

// A calibration reference location together with the correction the survey
// grid requires there. The control-point set is read-only deployment
// configuration shared by every transform call.
type ControlPoint struct {
	Easting            float64 `json:"easting"`
	Northing           float64 `json:"northing"`
	EastingCorrection  float64 `json:"easting_correction"`
	NorthingCorrection float64 `json:"northing_correction"`
}
