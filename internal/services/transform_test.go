package services

import (
	"errors"
	"math"
	"testing"

	"github.com/normgirm/addisland-locator/internal/domain"
)

func samplePlot() []domain.SurveyPoint {
	return []domain.SurveyPoint{
		{Easting: 482000, Northing: 990500},
		{Easting: 482500, Northing: 990800},
		{Easting: 482200, Northing: 991000},
		{Easting: 482000, Northing: 990500},
	}
}

func TestTransformPreservesLengthAndOrder(t *testing.T) {
	s := testSurface(t)

	geo, err := Transform(samplePlot(), s, DefaultZone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(geo) != 4 {
		t.Fatalf("output length = %d, want 4", len(geo))
	}

	// Input repeats its first vertex at the end; a uniform correction must
	// keep the repeated vertices identical in the output.
	if geo[0] != geo[3] {
		t.Fatalf("repeated input vertices diverged: %v vs %v", geo[0], geo[3])
	}
	if geo[0] == geo[1] || geo[1] == geo[2] {
		t.Fatal("distinct input vertices collapsed")
	}

	for i, p := range geo {
		if p.Lat() < 8.9 || p.Lat() > 9.1 {
			t.Fatalf("point %d latitude %v outside expected band", i, p.Lat())
		}
		if p.Lon() < 38.6 || p.Lon() > 38.9 {
			t.Fatalf("point %d longitude %v outside expected band", i, p.Lon())
		}
	}
}

func TestTransformRejectsEmptyBatch(t *testing.T) {
	s := testSurface(t)

	_, err := Transform(nil, s, DefaultZone)
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestTransformRejectsNonFinitePoints(t *testing.T) {
	s := testSurface(t)

	points := samplePlot()
	points[2].Northing = math.NaN()

	_, err := Transform(points, s, DefaultZone)
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestTransformFailsWhenBatchCentroidOutsideHull(t *testing.T) {
	s := testSurface(t)

	points := []domain.SurveyPoint{
		{Easting: 400000, Northing: 900000},
		{Easting: 400500, Northing: 900500},
		{Easting: 400200, Northing: 901000},
	}

	_, err := Transform(points, s, DefaultZone)
	if !errors.Is(err, ErrCalibrationOutOfRange) {
		t.Fatalf("expected ErrCalibrationOutOfRange, got %v", err)
	}
}
