package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/maxeffectus/route-planner-sub001/internal/models/route_models"
	"github.com/maxeffectus/route-planner-sub001/pkg/utils"
)

// The free routing tier rejects requests with more than 5 points, so
// longer point lists are split into overlapping chunks and stitched.
const maxPointsPerRequest = 5

const providerErrPrefix = "graphhopper: "

type RouteProviderInterface interface {
	BuildRoute(ctx context.Context, start, finish route_models.CandidatePOI, opts route_models.RouteOptions) (*route_models.StitchedRoute, error)
}

type GraphHopperClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewGraphHopperClient(apiKey, baseURL string) *GraphHopperClient {
	if baseURL == "" {
		baseURL = "https://graphhopper.com/api/1"
	}
	return &GraphHopperClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// routeSegment is one provider response, combined and discarded.
type routeSegment struct {
	Distance     float64
	Time         float64
	Coordinates  [][]float64
	Instructions []json.RawMessage
}

// BuildRoute routes start -> waypoints -> finish in the given order.
// When the point list exceeds the per-request cap it is split into
// chunks that share one boundary point, the chunk requests run
// concurrently, and the results are recombined in original chunk order
// so callers cannot tell single- from multi-segment routes apart.
func (c *GraphHopperClient) BuildRoute(ctx context.Context, start, finish route_models.CandidatePOI, opts route_models.RouteOptions) (*route_models.StitchedRoute, error) {
	if opts.AvoidStairs {
		// Stair avoidance needs the provider's flexible routing mode,
		// which the integrated free tier does not include. The flag is
		// kept in the contract so callers survive a tier upgrade.
		log.Printf("avoid_stairs requested; not supported on the current routing tier, routing without it")
	}

	profile := opts.Profile
	if profile == "" {
		profile = route_models.ProfileFoot
	}

	points := make([]route_models.GeoPoint, 0, len(opts.Waypoints)+2)
	points = append(points, start.Location)
	for _, w := range opts.Waypoints {
		points = append(points, w.Location)
	}
	points = append(points, finish.Location)

	chunks := chunkPoints(points)

	segments := make([]*routeSegment, len(chunks))
	if len(chunks) == 1 {
		seg, err := c.buildRouteSegment(ctx, chunks[0], profile)
		if err != nil {
			return nil, wrapProviderErr(err)
		}
		segments[0] = seg
	} else {
		g, gctx := errgroup.WithContext(ctx)
		for i, chunk := range chunks {
			g.Go(func() error {
				seg, err := c.buildRouteSegment(gctx, chunk, profile)
				if err != nil {
					return err
				}
				segments[i] = seg
				return nil
			})
		}
		// All segments must be in before stitching: recombination is
		// in original chunk order, independent of completion order.
		if err := g.Wait(); err != nil {
			return nil, wrapProviderErr(err)
		}
	}

	route := &route_models.StitchedRoute{
		Geometry:  route_models.LineString{Type: "LineString"},
		Waypoints: points,
	}
	for i, seg := range segments {
		route.DistanceMeters += seg.Distance
		route.DurationMs += seg.Time
		route.Instructions = append(route.Instructions, seg.Instructions...)

		coords := seg.Coordinates
		if i > 0 && len(coords) > 0 {
			// Drop the shared boundary point so the seam has no
			// duplicate vertex.
			coords = coords[1:]
		}
		route.Geometry.Coordinates = append(route.Geometry.Coordinates, coords...)
	}

	return route, nil
}

// chunkPoints splits the point list into runs of at most
// maxPointsPerRequest, where every chunk after the first starts at the
// last point of the previous one. Each adjacent pair of original
// points is therefore routed by exactly one chunk.
func chunkPoints(points []route_models.GeoPoint) [][]route_models.GeoPoint {
	if len(points) <= maxPointsPerRequest {
		return [][]route_models.GeoPoint{points}
	}

	var chunks [][]route_models.GeoPoint
	for start := 0; start < len(points)-1; start += maxPointsPerRequest - 1 {
		end := start + maxPointsPerRequest
		if end > len(points) {
			end = len(points)
		}
		chunks = append(chunks, points[start:end])
		if end == len(points) {
			break
		}
	}
	return chunks
}

func (c *GraphHopperClient) buildRouteSegment(ctx context.Context, points []route_models.GeoPoint, profile route_models.TransportProfile) (*routeSegment, error) {
	u, err := url.Parse(c.baseURL + "/route")
	if err != nil {
		return nil, fmt.Errorf("bad base url: %w", err)
	}

	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("profile", string(profile))
	q.Set("points_encoded", "false")
	q.Set("instructions", "true")
	q.Set("locale", "en")
	for _, p := range points {
		q.Add("point", fmt.Sprintf("%f,%f", p.Lat, p.Lng))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("routing http error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("routing read error: %w", err)
	}

	if resp.StatusCode/100 != 2 {
		detail := errorDetail(body, resp.Status)
		if resp.StatusCode == http.StatusTooManyRequests || isRateLimitMessage(detail) {
			return nil, fmt.Errorf("%w: %s", utils.ErrRateLimitExceeded, detail)
		}
		return nil, fmt.Errorf("routing request failed: %s", detail)
	}

	var payload struct {
		Message string `json:"message"`
		Paths   []struct {
			Distance float64 `json:"distance"`
			Time     float64 `json:"time"`
			Points   struct {
				Type        string      `json:"type"`
				Coordinates [][]float64 `json:"coordinates"`
			} `json:"points"`
			Instructions []json.RawMessage `json:"instructions"`
		} `json:"paths"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("routing decode error: %w", err)
	}

	if payload.Message != "" {
		if isRateLimitMessage(payload.Message) {
			return nil, fmt.Errorf("%w: %s", utils.ErrRateLimitExceeded, payload.Message)
		}
		return nil, fmt.Errorf("routing provider error: %s", payload.Message)
	}
	if len(payload.Paths) == 0 {
		return nil, utils.ErrNoRouteFound
	}

	path := payload.Paths[0]
	return &routeSegment{
		Distance:     path.Distance,
		Time:         path.Time,
		Coordinates:  path.Points.Coordinates,
		Instructions: path.Instructions,
	}, nil
}

// errorDetail pulls the provider's message field out of an error body,
// falling back to the raw body or the HTTP status line.
func errorDetail(body []byte, status string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
		return trimmed
	}
	return status
}

func isRateLimitMessage(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "api limit") ||
		strings.Contains(lower, "rate limit") ||
		strings.Contains(lower, "limit exceeded") ||
		strings.Contains(lower, "too many requests")
}

// wrapProviderErr keeps already-typed errors intact and gives
// everything else the provider prefix, preserving the cause.
func wrapProviderErr(err error) error {
	if err == nil {
		return nil
	}
	if strings.HasPrefix(err.Error(), providerErrPrefix) {
		return err
	}
	return fmt.Errorf(providerErrPrefix+"%w", err)
}
