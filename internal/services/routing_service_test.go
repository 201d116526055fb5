package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/maxeffectus/route-planner-sub001/internal/models/route_models"
	"github.com/maxeffectus/route-planner-sub001/pkg/utils"
)

func geoPoints(n int) []route_models.GeoPoint {
	points := make([]route_models.GeoPoint, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, route_models.GeoPoint{Lat: float64(i), Lng: float64(i)})
	}
	return points
}

func TestChunkPoints(t *testing.T) {
	tests := []struct {
		points int
		want   [][2]int // start index, length per chunk
	}{
		{2, [][2]int{{0, 2}}},
		{5, [][2]int{{0, 5}}},
		{6, [][2]int{{0, 5}, {4, 2}}},
		{9, [][2]int{{0, 5}, {4, 5}}},
		{13, [][2]int{{0, 5}, {4, 5}, {8, 5}}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d points", tt.points), func(t *testing.T) {
			chunks := chunkPoints(geoPoints(tt.points))
			if len(chunks) != len(tt.want) {
				t.Fatalf("got %d chunks, want %d", len(chunks), len(tt.want))
			}
			for i, chunk := range chunks {
				if len(chunk) != tt.want[i][1] {
					t.Errorf("chunk %d has %d points, want %d", i, len(chunk), tt.want[i][1])
				}
				if chunk[0].Lat != float64(tt.want[i][0]) {
					t.Errorf("chunk %d starts at %v, want index %d", i, chunk[0], tt.want[i][0])
				}
			}
			// Adjacent chunks share exactly their boundary point.
			for i := 1; i < len(chunks); i++ {
				prev := chunks[i-1]
				if prev[len(prev)-1] != chunks[i][0] {
					t.Errorf("chunk %d does not start at chunk %d's last point", i, i-1)
				}
			}
		})
	}
}

// segmentResponse builds a provider payload with len(pts) synthetic
// coordinates and one instruction per leg.
func segmentResponse(nPoints int) string {
	coords := ""
	for i := 0; i < nPoints; i++ {
		if i > 0 {
			coords += ","
		}
		coords += fmt.Sprintf("[%d.0,%d.0]", i, i)
	}
	instructions := ""
	for i := 0; i < nPoints-1; i++ {
		if i > 0 {
			instructions += ","
		}
		instructions += fmt.Sprintf(`{"text":"leg %d","distance":100}`, i)
	}
	return fmt.Sprintf(`{"paths":[{"distance":1500,"time":75000,"points":{"type":"LineString","coordinates":[%s]},"instructions":[%s]}]}`, coords, instructions)
}

func routeServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *GraphHopperClient) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, NewGraphHopperClient("test-key", server.URL)
}

func TestBuildRoute_SingleSegment(t *testing.T) {
	var requests int32
	_, client := routeServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		pts := r.URL.Query()["point"]
		if len(pts) != 4 {
			t.Errorf("expected 4 point params, got %d", len(pts))
		}
		if r.URL.Query().Get("points_encoded") != "false" {
			t.Errorf("points_encoded must be false")
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key")
		}
		fmt.Fprint(w, segmentResponse(6))
	})

	start := poiAt("start", 0, 0)
	finish := poiAt("finish", 3, 3)
	route, err := client.BuildRoute(context.Background(), start, finish, route_models.RouteOptions{
		Profile:   route_models.ProfileFoot,
		Waypoints: []route_models.CandidatePOI{poiAt("a", 1, 1), poiAt("b", 2, 2)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n := atomic.LoadInt32(&requests); n != 1 {
		t.Errorf("expected 1 request, got %d", n)
	}
	if route.DistanceMeters != 1500 {
		t.Errorf("distance = %f, want 1500", route.DistanceMeters)
	}
	if route.DurationMs != 75000 {
		t.Errorf("duration = %f, want 75000", route.DurationMs)
	}
	if len(route.Geometry.Coordinates) != 6 {
		t.Errorf("got %d coordinates, want 6", len(route.Geometry.Coordinates))
	}
	if route.Geometry.Type != "LineString" {
		t.Errorf("geometry type = %q", route.Geometry.Type)
	}
	if len(route.Waypoints) != 4 {
		t.Errorf("got %d waypoints, want 4", len(route.Waypoints))
	}
}

func TestBuildRoute_TwoSegmentsStitched(t *testing.T) {
	var requests int32
	_, client := routeServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		pts := r.URL.Query()["point"]
		fmt.Fprint(w, segmentResponse(len(pts)))
	})

	// start + 6 waypoints + finish = 8 points -> chunks of 5 and 4.
	waypoints := make([]route_models.CandidatePOI, 6)
	for i := range waypoints {
		waypoints[i] = poiAt(fmt.Sprintf("w%d", i), float64(i+1), float64(i+1))
	}
	route, err := client.BuildRoute(context.Background(), poiAt("start", 0, 0), poiAt("finish", 7, 7), route_models.RouteOptions{
		Profile:   route_models.ProfileFoot,
		Waypoints: waypoints,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n := atomic.LoadInt32(&requests); n != 2 {
		t.Fatalf("expected 2 requests, got %d", n)
	}
	if route.DistanceMeters != 3000 {
		t.Errorf("distance = %f, want 3000 (sum of segments)", route.DistanceMeters)
	}
	if route.DurationMs != 150000 {
		t.Errorf("duration = %f, want 150000 (sum of segments)", route.DurationMs)
	}
	// 5 coords from the first segment, 4 from the second minus the
	// shared boundary vertex.
	if len(route.Geometry.Coordinates) != 8 {
		t.Errorf("got %d coordinates, want 8", len(route.Geometry.Coordinates))
	}
	// 4 + 3 instructions, concatenated in order.
	if len(route.Instructions) != 7 {
		t.Errorf("got %d instructions, want 7", len(route.Instructions))
	}
}

func TestBuildRoute_DistinctSegmentValuesSummed(t *testing.T) {
	// Segments are identified by their first point, not arrival order:
	// the fan-out is concurrent.
	_, client := routeServer(t, func(w http.ResponseWriter, r *http.Request) {
		pts := r.URL.Query()["point"]
		distance, duration := 1000, 60000
		if len(pts) > 0 && pts[0] != "0.000000,0.000000" {
			distance, duration = 2000, 90000
		}
		fmt.Fprintf(w, `{"paths":[{"distance":%d,"time":%d,"points":{"type":"LineString","coordinates":[[0.0,0.0],[1.0,1.0]]},"instructions":[{"text":"go"}]}]}`, distance, duration)
	})

	waypoints := make([]route_models.CandidatePOI, 6)
	for i := range waypoints {
		waypoints[i] = poiAt(fmt.Sprintf("w%d", i), float64(i+1), float64(i+1))
	}
	route, err := client.BuildRoute(context.Background(), poiAt("start", 0, 0), poiAt("finish", 7, 7), route_models.RouteOptions{
		Waypoints: waypoints,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if route.DistanceMeters != 3000 {
		t.Errorf("distance = %f, want 3000", route.DistanceMeters)
	}
	if route.DurationMs != 150000 {
		t.Errorf("duration = %f, want 150000", route.DurationMs)
	}
}

func TestBuildRoute_RateLimited(t *testing.T) {
	_, client := routeServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"message":"API limit reached"}`)
	})

	_, err := client.BuildRoute(context.Background(), poiAt("s", 0, 0), poiAt("f", 1, 1), route_models.RouteOptions{})
	if !errors.Is(err, utils.ErrRateLimitExceeded) {
		t.Fatalf("got %v, want ErrRateLimitExceeded", err)
	}
}

func TestBuildRoute_RateLimitMessageInBody(t *testing.T) {
	_, client := routeServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"message":"daily rate limit exceeded for this key","paths":[]}`)
	})

	_, err := client.BuildRoute(context.Background(), poiAt("s", 0, 0), poiAt("f", 1, 1), route_models.RouteOptions{})
	if !errors.Is(err, utils.ErrRateLimitExceeded) {
		t.Fatalf("got %v, want ErrRateLimitExceeded", err)
	}
}

func TestBuildRoute_NoRouteFound(t *testing.T) {
	_, client := routeServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"paths":[]}`)
	})

	_, err := client.BuildRoute(context.Background(), poiAt("s", 0, 0), poiAt("f", 1, 1), route_models.RouteOptions{})
	if !errors.Is(err, utils.ErrNoRouteFound) {
		t.Fatalf("got %v, want ErrNoRouteFound", err)
	}
}

func TestBuildRoute_SegmentFailureFailsWholeRoute(t *testing.T) {
	var requests int32
	_, client := routeServer(t, func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&requests, 1)
		if n == 2 {
			fmt.Fprint(w, `{"paths":[]}`)
			return
		}
		pts := r.URL.Query()["point"]
		fmt.Fprint(w, segmentResponse(len(pts)))
	})

	waypoints := make([]route_models.CandidatePOI, 6)
	for i := range waypoints {
		waypoints[i] = poiAt(fmt.Sprintf("w%d", i), float64(i+1), float64(i+1))
	}
	_, err := client.BuildRoute(context.Background(), poiAt("start", 0, 0), poiAt("finish", 7, 7), route_models.RouteOptions{
		Waypoints: waypoints,
	})
	if !errors.Is(err, utils.ErrNoRouteFound) {
		t.Fatalf("got %v, want ErrNoRouteFound passed through", err)
	}
}

func TestBuildRoute_DefaultProfileIsFoot(t *testing.T) {
	_, client := routeServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("profile"); got != "foot" {
			t.Errorf("profile = %q, want foot", got)
		}
		fmt.Fprint(w, segmentResponse(2))
	})

	_, err := client.BuildRoute(context.Background(), poiAt("s", 0, 0), poiAt("f", 1, 1), route_models.RouteOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
