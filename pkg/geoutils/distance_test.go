package geoutils_test

import (
	"math"
	"testing"

	"github.com/maxeffectus/route-planner-sub001/pkg/geoutils"
)

func TestDistance_IdenticalPoints(t *testing.T) {
	if d := geoutils.Distance(48.8584, 2.2945, 48.8584, 2.2945); d != 0 {
		t.Errorf("expected 0 for identical points, got %f", d)
	}
}

func TestDistance_Symmetric(t *testing.T) {
	ab := geoutils.Distance(48.8584, 2.2945, 48.8606, 2.3376)
	ba := geoutils.Distance(48.8606, 2.3376, 48.8584, 2.2945)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("distance not symmetric: %f vs %f", ab, ba)
	}
}

func TestDistance_OneDegreeLatitude(t *testing.T) {
	// One degree of latitude is about 111 km anywhere on the sphere.
	d := geoutils.Distance(10.0, 20.0, 11.0, 20.0)
	if d < 110_000 || d > 112_500 {
		t.Errorf("one degree of latitude should be ~111km, got %f m", d)
	}
}

func TestDistance_KnownPair(t *testing.T) {
	// Eiffel Tower to Louvre, roughly 3.2 km on foot maps.
	d := geoutils.Distance(48.8584, 2.2945, 48.8606, 2.3376)
	if d < 3000 || d > 3400 {
		t.Errorf("Eiffel-Louvre distance out of range: %f m", d)
	}
}

func TestDistance_NeverNegative(t *testing.T) {
	d := geoutils.Distance(-33.8688, 151.2093, 40.7128, -74.0060)
	if d <= 0 {
		t.Errorf("expected positive distance for Sydney-NYC, got %f", d)
	}
}
