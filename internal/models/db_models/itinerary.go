package db_models

import (
	"github.com/google/uuid"
)

// Itinerary is a planned, stitched route saved for an account.
// Geometry holds the GeoJSON LineString exactly as the route provider
// returned it.
type Itinerary struct {
	BaseModel
	AccountID        uuid.UUID `gorm:"index"`
	Title            string
	TransportProfile string
	AvoidStairs      bool
	DistanceMeters   float64
	DurationMs       float64
	Geometry         string `gorm:"type:jsonb"`
	Instructions     string `gorm:"type:jsonb"`

	Stops []ItineraryStop `gorm:"constraint:OnDelete:CASCADE"`
}

// ItineraryStop is one visited POI in final visiting order.
type ItineraryStop struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"index"`
	Position    int
	PoiID       string
	Name        string
	Latitude    float64
	Longitude   float64
}
