package route_models

import "encoding/json"

// GeoPoint is an immutable WGS84 coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CandidatePOI is the read-only shape the planning pipeline consumes from
// the POI feed. Identity is ID; lookups always compare it as a string to
// tolerate numeric ids from upstream sources.
type CandidatePOI struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Location           GeoPoint `json:"location"`
	InterestCategories []string `json:"interest_categories"`
	Description        string   `json:"description,omitempty"`
	Website            string   `json:"website,omitempty"`
	WikipediaRef       string   `json:"wikipedia_ref,omitempty"`
}

// TimeWindow is the daily sightseeing window in whole hours.
// EndHour > StartHour is a caller invariant; a non-positive span
// budgets to zero POIs.
type TimeWindow struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

func (w TimeWindow) Hours() int { return w.EndHour - w.StartHour }

type TravelPace string

const (
	PaceLow    TravelPace = "LOW"
	PaceMedium TravelPace = "MEDIUM"
	PaceHigh   TravelPace = "HIGH"
)

type TransportProfile string

const (
	ProfileFoot TransportProfile = "foot"
	ProfileBike TransportProfile = "bike"
	ProfileCar  TransportProfile = "car"
)

type MobilityType string

const (
	MobilityNone         MobilityType = "NONE"
	MobilityWheelchair   MobilityType = "WHEELCHAIR"
	MobilityStroller     MobilityType = "STROLLER"
	MobilityLowEndurance MobilityType = "LOW_ENDURANCE"
)

// RouteOptions carries everything the route provider needs beyond
// start and finish. AvoidStairs is part of the public contract even
// though the integrated free routing tier cannot honor it yet.
type RouteOptions struct {
	Profile     TransportProfile
	AvoidStairs bool
	Waypoints   []CandidatePOI
}

// LineString is GeoJSON-compatible geometry; coordinates are [lng, lat]
// pairs exactly as the routing provider returns them.
type LineString struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// StitchedRoute is the final output of the route provider. Instructions
// are passed through from the provider untouched, in segment order.
type StitchedRoute struct {
	Geometry       LineString        `json:"geometry"`
	DistanceMeters float64           `json:"distance_meters"`
	DurationMs     float64           `json:"duration_ms"`
	Instructions   []json.RawMessage `json:"instructions"`
	Waypoints      []GeoPoint        `json:"waypoints"`
}
