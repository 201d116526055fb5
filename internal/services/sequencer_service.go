package services

import (
	"github.com/maxeffectus/route-planner-sub001/internal/models/route_models"
	"github.com/maxeffectus/route-planner-sub001/pkg/geoutils"
)

type WaypointSequencerInterface interface {
	Sequence(start route_models.CandidatePOI, finish *route_models.CandidatePOI, waypoints []route_models.CandidatePOI) []route_models.CandidatePOI
}

func NewWaypointSequencer() WaypointSequencerInterface {
	return &waypointSequencer{}
}

type waypointSequencer struct{}

// Sequence orders the waypoints by repeatedly hopping to the nearest
// unvisited one, starting from start. The result is a permutation of
// the input; the input slice is left untouched.
//
// finish is accepted for interface symmetry but does not influence the
// ordering: the greedy walk can end far from it. That matches the
// observed product behavior and stays until product says otherwise.
func (s *waypointSequencer) Sequence(start route_models.CandidatePOI, finish *route_models.CandidatePOI, waypoints []route_models.CandidatePOI) []route_models.CandidatePOI {
	_ = finish

	if len(waypoints) == 0 {
		return []route_models.CandidatePOI{}
	}

	pool := make([]route_models.CandidatePOI, len(waypoints))
	copy(pool, waypoints)

	ordered := make([]route_models.CandidatePOI, 0, len(pool))
	current := start.Location

	for len(pool) > 0 {
		nearest := 0
		nearestDist := geoutils.Distance(current.Lat, current.Lng, pool[0].Location.Lat, pool[0].Location.Lng)
		for i := 1; i < len(pool); i++ {
			d := geoutils.Distance(current.Lat, current.Lng, pool[i].Location.Lat, pool[i].Location.Lng)
			if d < nearestDist {
				nearest = i
				nearestDist = d
			}
		}

		next := pool[nearest]
		pool = append(pool[:nearest], pool[nearest+1:]...)
		ordered = append(ordered, next)
		current = next.Location
	}

	return ordered
}
