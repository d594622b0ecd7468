package domain

import "testing"

func TestCertificateHasBoundary(t *testing.T) {
	c := Certificate{DeedNumber: "AA-1"}
	if c.HasBoundary() {
		t.Fatal("certificate without boundary reported as usable")
	}

	c.Boundary = []SurveyPoint{
		{Easting: 482000, Northing: 990500},
		{Easting: 482500, Northing: 990800},
	}
	if c.HasBoundary() {
		t.Fatal("two vertices cannot describe a plot boundary")
	}

	c.Boundary = append(c.Boundary, SurveyPoint{Easting: 482200, Northing: 991000})
	if !c.HasBoundary() {
		t.Fatal("three vertices should be a usable boundary")
	}
}
