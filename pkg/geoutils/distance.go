package geoutils

import (
	"github.com/umahmood/haversine"
)

// Distance returns the great-circle distance in meters between two
// lat/lng points on a spherical Earth. Symmetric, never negative.
func Distance(aLat, aLng, bLat, bLng float64) float64 {
	if aLat == bLat && aLng == bLng {
		return 0
	}
	_, km := haversine.Distance(
		haversine.Coord{Lat: aLat, Lon: aLng},
		haversine.Coord{Lat: bLat, Lon: bLng},
	)
	return km * 1000
}
