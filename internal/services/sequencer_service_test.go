package services

import (
	"testing"

	"github.com/maxeffectus/route-planner-sub001/internal/models/route_models"
)

func poiAt(id string, lat, lng float64) route_models.CandidatePOI {
	return route_models.CandidatePOI{
		ID:       id,
		Name:     "poi-" + id,
		Location: route_models.GeoPoint{Lat: lat, Lng: lng},
	}
}

func TestSequence_Empty(t *testing.T) {
	s := NewWaypointSequencer()
	got := s.Sequence(poiAt("start", 0, 0), nil, nil)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d items", len(got))
	}
}

func TestSequence_Single(t *testing.T) {
	s := NewWaypointSequencer()
	got := s.Sequence(poiAt("start", 0, 0), nil, []route_models.CandidatePOI{poiAt("a", 1, 1)})
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected [a], got %v", got)
	}
}

func TestSequence_CollinearOrdersByProximity(t *testing.T) {
	// Waypoints on a line east of the start: the greedy walk must visit
	// them west to east regardless of input order.
	s := NewWaypointSequencer()
	waypoints := []route_models.CandidatePOI{
		poiAt("far", 0, 3),
		poiAt("near", 0, 1),
		poiAt("mid", 0, 2),
	}

	got := s.Sequence(poiAt("start", 0, 0), nil, waypoints)

	wantOrder := []string{"near", "mid", "far"}
	for i, want := range wantOrder {
		if got[i].ID != want {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestSequence_IsPermutation(t *testing.T) {
	s := NewWaypointSequencer()
	waypoints := []route_models.CandidatePOI{
		poiAt("a", 48.85, 2.29),
		poiAt("b", 48.86, 2.33),
		poiAt("c", 48.84, 2.32),
		poiAt("d", 48.87, 2.35),
		poiAt("e", 48.85, 2.34),
	}

	got := s.Sequence(poiAt("start", 48.853, 2.349), nil, waypoints)

	if len(got) != len(waypoints) {
		t.Fatalf("expected %d waypoints, got %d", len(waypoints), len(got))
	}
	seen := make(map[string]int)
	for _, w := range got {
		seen[w.ID]++
	}
	for _, w := range waypoints {
		if seen[w.ID] != 1 {
			t.Errorf("waypoint %s appears %d times in output", w.ID, seen[w.ID])
		}
	}
}

func TestSequence_DoesNotMutateInput(t *testing.T) {
	s := NewWaypointSequencer()
	waypoints := []route_models.CandidatePOI{
		poiAt("far", 0, 3),
		poiAt("near", 0, 1),
		poiAt("mid", 0, 2),
	}
	original := make([]route_models.CandidatePOI, len(waypoints))
	copy(original, waypoints)

	s.Sequence(poiAt("start", 0, 0), nil, waypoints)

	for i := range original {
		if waypoints[i].ID != original[i].ID {
			t.Fatalf("input slice mutated at %d: got %s, want %s", i, waypoints[i].ID, original[i].ID)
		}
	}
}

func TestSequence_FinishDoesNotInfluenceOrder(t *testing.T) {
	s := NewWaypointSequencer()
	waypoints := []route_models.CandidatePOI{
		poiAt("near", 0, 1),
		poiAt("far", 0, 3),
	}

	finish := poiAt("finish", 0, 0)
	withFinish := s.Sequence(poiAt("start", 0, 0), &finish, waypoints)
	without := s.Sequence(poiAt("start", 0, 0), nil, waypoints)

	if len(withFinish) != len(without) {
		t.Fatalf("lengths differ: %d vs %d", len(withFinish), len(without))
	}
	for i := range without {
		if withFinish[i].ID != without[i].ID {
			t.Errorf("finish changed ordering at %d: %s vs %s", i, withFinish[i].ID, without[i].ID)
		}
	}
}
