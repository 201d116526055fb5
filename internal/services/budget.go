package services

import (
	"math"

	"github.com/maxeffectus/route-planner-sub001/internal/models/route_models"
)

// Hours-per-POI divisors for count budgeting. A separate, looser
// per-visit table below feeds the displayed total visit duration; the
// two tables are intentionally different.
var poiBudgetDivisor = map[route_models.TravelPace]float64{
	route_models.PaceLow:    3.5,
	route_models.PaceMedium: 3.0,
	route_models.PaceHigh:   2.5,
}

var poiVisitHours = map[route_models.TravelPace]float64{
	route_models.PaceLow:    2.5,
	route_models.PaceMedium: 2.0,
	route_models.PaceHigh:   1.5,
}

// RecommendedPOICount derives how many POIs fit the sightseeing window
// at the given pace. Unknown pace values budget as MEDIUM; a
// non-positive window yields 0.
func RecommendedPOICount(window route_models.TimeWindow, pace route_models.TravelPace) int {
	hours := window.Hours()
	if hours <= 0 {
		return 0
	}

	divisor, ok := poiBudgetDivisor[pace]
	if !ok {
		divisor = poiBudgetDivisor[route_models.PaceMedium]
	}

	return int(math.Floor(float64(hours) / divisor))
}

// EstimatedVisitHours is the display-only total time spent at stops.
func EstimatedVisitHours(stopCount int, pace route_models.TravelPace) float64 {
	if stopCount <= 0 {
		return 0
	}
	perVisit, ok := poiVisitHours[pace]
	if !ok {
		perVisit = poiVisitHours[route_models.PaceMedium]
	}
	return float64(stopCount) * perVisit
}
