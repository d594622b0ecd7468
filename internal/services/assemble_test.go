package services

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
)

func TestAssembleClosesOpenRing(t *testing.T) {
	points := []orb.Point{
		{38.70, 9.00},
		{38.71, 9.00},
		{38.71, 9.01},
	}

	polygon, err := AssemblePolygon(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(polygon.Ring) != 4 {
		t.Fatalf("ring length = %d, want 4", len(polygon.Ring))
	}
	if !polygon.Ring.Closed() {
		t.Fatal("assembled ring is not closed")
	}
	if polygon.Ring[0] != polygon.Ring[3] {
		t.Fatal("closing vertex differs from first vertex")
	}
}

func TestAssembleIsIdempotentOnClosedRings(t *testing.T) {
	points := []orb.Point{
		{38.70, 9.00},
		{38.71, 9.00},
		{38.71, 9.01},
	}

	first, err := AssemblePolygon(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := AssemblePolygon(first.Ring)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(second.Ring) != len(first.Ring) {
		t.Fatalf("re-assembly changed ring length: %d -> %d", len(first.Ring), len(second.Ring))
	}
	if second.Centroid != first.Centroid {
		t.Fatalf("re-assembly changed centroid: %v -> %v", first.Centroid, second.Centroid)
	}
}

func TestAssembleCentroidWithinBound(t *testing.T) {
	points := []orb.Point{
		{38.70, 9.00},
		{38.74, 9.00},
		{38.72, 9.03},
		{38.69, 9.02},
	}

	polygon, err := AssemblePolygon(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bound := polygon.Ring.Bound()
	if !bound.Contains(polygon.Centroid) {
		t.Fatalf("centroid %v outside ring bound %v", polygon.Centroid, bound)
	}
}

func TestAssembleExcludesClosingVertexFromCentroid(t *testing.T) {
	// Closed square: the mean over distinct vertices is the center; a
	// double-weighted first vertex would drag it toward (0, 0).
	points := []orb.Point{
		{0, 0},
		{2, 0},
		{2, 2},
		{0, 2},
		{0, 0},
	}

	polygon, err := AssemblePolygon(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := orb.Point{1, 1}
	if polygon.Centroid != want {
		t.Fatalf("centroid = %v, want %v", polygon.Centroid, want)
	}
}

func TestAssembleRejectsDegenerateInput(t *testing.T) {
	_, err := AssemblePolygon([]orb.Point{{38.70, 9.00}, {38.71, 9.00}})
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}

	// Closed 2-vertex "ring": two distinct vertices plus repeat.
	_, err = AssemblePolygon([]orb.Point{{38.70, 9.00}, {38.71, 9.00}, {38.70, 9.00}})
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}

	// Alternating repeats: four positions but only two locations.
	a := orb.Point{38.70, 9.00}
	b := orb.Point{38.71, 9.00}
	_, err = AssemblePolygon([]orb.Point{a, b, a, b})
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput for 2 unique locations, got %v", err)
	}
}
