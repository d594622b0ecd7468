package repositories

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/normgirm/addisland-locator/internal/domain"
)

// FileControlPointSource loads the deployed calibration table from a JSON
// file. The calibration region is configuration, not code: swapping the file
// re-targets the whole pipeline without touching transform logic.
type FileControlPointSource struct {
	Path string
}

func NewFileControlPointSource(path string) *FileControlPointSource {
	return &FileControlPointSource{Path: path}
}

// ControlPoints reads and validates the control-point table.
func (f *FileControlPointSource) ControlPoints() ([]domain.ControlPoint, error) {
	bytes, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("control points: read %q: %w", f.Path, err)
	}

	var points []domain.ControlPoint
	if err := json.Unmarshal(bytes, &points); err != nil {
		return nil, fmt.Errorf("control points: parse json: %w", err)
	}

	if err := validateControlPoints(points); err != nil {
		return nil, fmt.Errorf("control points: %q: %w", f.Path, err)
	}

	return points, nil
}

// validateControlPoints enforces the fit preconditions: the deployed table
// is a fixed set of exactly three points, no two sharing a location, not
// all collinear. Matching the surface's own contract here means a bad table
// fails at load time with a message naming the file, not later at fit time.
func validateControlPoints(points []domain.ControlPoint) error {
	if len(points) != 3 {
		return fmt.Errorf("need exactly 3 control points, got %d", len(points))
	}

	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if points[i].Easting == points[j].Easting && points[i].Northing == points[j].Northing {
				return fmt.Errorf(
					"control points %d and %d share location (%.4f, %.4f)",
					i, j, points[i].Easting, points[i].Northing,
				)
			}
		}
	}

	// All cross products zero means every point sits on one line.
	a := points[0]
	for _, p := range points[1:] {
		cross := (p.Easting-a.Easting)*(points[1].Northing-a.Northing) -
			(p.Northing-a.Northing)*(points[1].Easting-a.Easting)
		if cross != 0 {
			return nil
		}
	}

	return fmt.Errorf("control points are collinear")
}
