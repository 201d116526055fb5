package request_models

// PlanItineraryRequest drives one planning action: select POIs around
// the start point, order them, and build a stitched route from start
// to finish. Finish is optional; when omitted the route loops back to
// the start.
type PlanItineraryRequest struct {
	Title         string   `json:"title"`
	StartName     string   `json:"start_name"`
	StartLat      float64  `json:"start_lat" binding:"required"`
	StartLng      float64  `json:"start_lng" binding:"required"`
	FinishName    string   `json:"finish_name"`
	FinishLat     *float64 `json:"finish_lat"`
	FinishLng     *float64 `json:"finish_lng"`
	TransportMode string   `json:"transport_mode"`
	RadiusMeters  float64  `json:"radius_meters"`
}
