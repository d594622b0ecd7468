package domain

// Represents a land-title certificate as published by the registry.
// Metadata fields default to empty strings when absent from the source
// document; only the surveyed boundary is required for locating a plot.
type Certificate struct {
	DeedNumber    string
	PossessorName string
	DateIssued    string
	Boundary      []SurveyPoint
	PDFExportURL  string
}

// Report whether the certificate carries a usable surveyed boundary
// (at least three vertices).
func (c Certificate) HasBoundary() bool {
	return len(c.Boundary) >= 3
}
