package services

import (
	"errors"
	"math"
	"testing"

	"github.com/normgirm/addisland-locator/internal/domain"
)

func TestResolveZoneDefaultIsDeterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		zone, err := ResolveZone(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if zone != DefaultZone {
			t.Fatalf("zone = %d, want %d", zone, DefaultZone)
		}
	}
}

func TestResolveZoneFromReference(t *testing.T) {
	// Meskel Square; its native zone matches the deployment default.
	zone, err := ResolveZone(&domain.GeoPoint{Lat: 9.0108, Lon: 38.7613})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if zone != 37 {
		t.Fatalf("zone = %d, want 37", zone)
	}
}

func TestResolveZoneRejectsNonFiniteReference(t *testing.T) {
	_, err := ResolveZone(&domain.GeoPoint{Lat: math.NaN(), Lon: 38.7613})
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}
