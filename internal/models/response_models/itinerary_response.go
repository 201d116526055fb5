package response_models

import (
	"encoding/json"
)

type ItineraryStop struct {
	Position  int     `json:"position"`
	PoiID     string  `json:"poi_id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ItineraryResponse struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	TransportProfile string            `json:"transport_profile"`
	AvoidStairs      bool              `json:"avoid_stairs"`
	DistanceMeters   float64           `json:"distance_meters"`
	DurationMs       float64           `json:"duration_ms"`
	// EstimatedVisitHours covers time spent at the stops themselves,
	// on the looser per-visit table, for display alongside the travel
	// duration.
	EstimatedVisitHours float64         `json:"estimated_visit_hours"`
	Geometry            json.RawMessage `json:"geometry"`
	Instructions        json.RawMessage `json:"instructions,omitempty"`
	Stops               []ItineraryStop `json:"stops"`
}

type ItinerarySummary struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	DistanceMeters float64 `json:"distance_meters"`
	DurationMs     float64 `json:"duration_ms"`
	StopCount      int     `json:"stop_count"`
	CreatedAt      int64   `json:"created_at"`
}
