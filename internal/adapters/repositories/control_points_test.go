package repositories

import (
	"os"
	"path/filepath"
	"testing"
)

func writeControlFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "control_points.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write control file: %v", err)
	}
	return path
}

func TestControlPointsLoadsValidTable(t *testing.T) {
	path := writeControlFile(t, `[
		{"easting": 477504.6975, "northing": 980922.813, "easting_correction": 90.6484, "northing_correction": 204.2779},
		{"easting": 482977.07875, "northing": 992734.94275, "easting_correction": 92.6484, "northing_correction": 210.2779},
		{"easting": 487741.8536, "northing": 993586.1784, "easting_correction": 94.6484, "northing_correction": 208.2779}
	]`)

	points, err := NewFileControlPointSource(path).ControlPoints()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(points) != 3 {
		t.Fatalf("point count = %d, want 3", len(points))
	}
	if points[1].EastingCorrection != 92.6484 {
		t.Fatalf("point 1 easting correction = %v", points[1].EastingCorrection)
	}
}

func TestControlPointsRejectsShortTable(t *testing.T) {
	path := writeControlFile(t, `[
		{"easting": 1, "northing": 2, "easting_correction": 0, "northing_correction": 0}
	]`)

	if _, err := NewFileControlPointSource(path).ControlPoints(); err == nil {
		t.Fatal("expected error for table with fewer than 3 points")
	}
}

func TestControlPointsRejectsOversizedTable(t *testing.T) {
	// The surface fits exactly three points; a larger table must fail at
	// load time, not at fit time.
	path := writeControlFile(t, `[
		{"easting": 0, "northing": 0, "easting_correction": 0, "northing_correction": 0},
		{"easting": 1000, "northing": 0, "easting_correction": 1, "northing_correction": 1},
		{"easting": 0, "northing": 1000, "easting_correction": 2, "northing_correction": 2},
		{"easting": 1000, "northing": 1000, "easting_correction": 3, "northing_correction": 3}
	]`)

	if _, err := NewFileControlPointSource(path).ControlPoints(); err == nil {
		t.Fatal("expected error for table with more than 3 points")
	}
}

func TestControlPointsRejectsDuplicateLocations(t *testing.T) {
	path := writeControlFile(t, `[
		{"easting": 1, "northing": 2, "easting_correction": 0, "northing_correction": 0},
		{"easting": 1, "northing": 2, "easting_correction": 1, "northing_correction": 1},
		{"easting": 5, "northing": 9, "easting_correction": 2, "northing_correction": 2}
	]`)

	if _, err := NewFileControlPointSource(path).ControlPoints(); err == nil {
		t.Fatal("expected error for duplicate control locations")
	}
}

func TestControlPointsRejectsCollinearTable(t *testing.T) {
	path := writeControlFile(t, `[
		{"easting": 0, "northing": 0, "easting_correction": 0, "northing_correction": 0},
		{"easting": 1000, "northing": 1000, "easting_correction": 1, "northing_correction": 1},
		{"easting": 2000, "northing": 2000, "easting_correction": 2, "northing_correction": 2}
	]`)

	if _, err := NewFileControlPointSource(path).ControlPoints(); err == nil {
		t.Fatal("expected error for collinear control points")
	}
}

func TestControlPointsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	if _, err := NewFileControlPointSource(path).ControlPoints(); err == nil {
		t.Fatal("expected error for missing file")
	}
}
