package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/maxeffectus/route-planner-sub001/internal/models/db_models"
	"github.com/maxeffectus/route-planner-sub001/internal/models/request_models"
	"github.com/maxeffectus/route-planner-sub001/internal/models/response_models"
	"github.com/maxeffectus/route-planner-sub001/internal/models/route_models"
	"github.com/maxeffectus/route-planner-sub001/internal/repositories"
	"github.com/maxeffectus/route-planner-sub001/pkg/utils"
)

type PlannerServiceInterface interface {
	// PlanItinerary runs the full pipeline for one account: candidate
	// lookup, AI selection, nearest-neighbor ordering, route building,
	// and persistence. The saved itinerary is returned in full.
	PlanItinerary(ctx context.Context, accountID string, req request_models.PlanItineraryRequest) (*response_models.ItineraryResponse, error)
}

type PlannerService struct {
	profiles    repositories.ProfileRepository
	itineraries repositories.ItineraryRepository
	pois        POIServiceInterface
	selector    POISelectorInterface
	sequencer   WaypointSequencerInterface
	router      RouteProviderInterface
}

func NewPlannerService(
	profiles repositories.ProfileRepository,
	itineraries repositories.ItineraryRepository,
	pois POIServiceInterface,
	selector POISelectorInterface,
	sequencer WaypointSequencerInterface,
	router RouteProviderInterface,
) PlannerServiceInterface {
	return &PlannerService{
		profiles:    profiles,
		itineraries: itineraries,
		pois:        pois,
		selector:    selector,
		sequencer:   sequencer,
		router:      router,
	}
}

func (s *PlannerService) PlanItinerary(ctx context.Context, accountID string, req request_models.PlanItineraryRequest) (*response_models.ItineraryResponse, error) {
	accID, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	profile, err := s.profiles.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	weights := profile.InterestWeightMap()

	candidates, err := s.pois.CandidatesForProfile(ctx, req.StartLat, req.StartLng, req.RadiusMeters, weights)
	if err != nil {
		return nil, err
	}

	window := route_models.TimeWindow{StartHour: profile.StartHour, EndHour: profile.EndHour}
	pace := route_models.TravelPace(profile.Pace)

	selectedIDs, err := s.selector.Select(ctx, candidates, window, pace, weights)
	if err != nil {
		return nil, err
	}

	waypoints, err := s.pois.CandidatesByIDs(ctx, selectedIDs)
	if err != nil {
		return nil, err
	}

	start := route_models.CandidatePOI{
		ID:       "start",
		Name:     startName(req.StartName),
		Location: route_models.GeoPoint{Lat: req.StartLat, Lng: req.StartLng},
	}
	finish := finishPoint(req, start)

	ordered := s.sequencer.Sequence(start, &finish, waypoints)

	transport := resolveTransportProfile(req.TransportMode, route_models.MobilityType(profile.MobilityType))

	route, err := s.router.BuildRoute(ctx, start, finish, route_models.RouteOptions{
		Profile:     transport,
		AvoidStairs: profile.AvoidStairs,
		Waypoints:   ordered,
	})
	if err != nil {
		return nil, err
	}

	itinerary, err := buildItineraryRecord(accID, req, transport, profile.AvoidStairs, ordered, route)
	if err != nil {
		return nil, err
	}
	if err := s.itineraries.Insert(ctx, itinerary); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return toItineraryResponse(itinerary, pace), nil
}

func startName(name string) string {
	if name == "" {
		return "Start"
	}
	return name
}

// finishPoint resolves the optional finish; omitted coordinates loop
// the route back to the start.
func finishPoint(req request_models.PlanItineraryRequest, start route_models.CandidatePOI) route_models.CandidatePOI {
	if req.FinishLat == nil || req.FinishLng == nil {
		return start
	}
	name := req.FinishName
	if name == "" {
		name = "Finish"
	}
	return route_models.CandidatePOI{
		ID:       "finish",
		Name:     name,
		Location: route_models.GeoPoint{Lat: *req.FinishLat, Lng: *req.FinishLng},
	}
}

// resolveTransportProfile maps the requested mode to a routing profile.
// Mobility constraints win: anything other than NONE forces foot, since
// the other profiles make no sense for wheelchair, stroller, or low
// endurance travel.
func resolveTransportProfile(mode string, mobility route_models.MobilityType) route_models.TransportProfile {
	switch mobility {
	case route_models.MobilityWheelchair, route_models.MobilityStroller, route_models.MobilityLowEndurance:
		return route_models.ProfileFoot
	}

	switch route_models.TransportProfile(mode) {
	case route_models.ProfileBike:
		return route_models.ProfileBike
	case route_models.ProfileCar:
		return route_models.ProfileCar
	default:
		return route_models.ProfileFoot
	}
}

func buildItineraryRecord(
	accountID uuid.UUID,
	req request_models.PlanItineraryRequest,
	transport route_models.TransportProfile,
	avoidStairs bool,
	ordered []route_models.CandidatePOI,
	route *route_models.StitchedRoute,
) (*db_models.Itinerary, error) {
	geometry, err := json.Marshal(route.Geometry)
	if err != nil {
		return nil, fmt.Errorf("marshal geometry: %w", err)
	}
	instructions, err := json.Marshal(route.Instructions)
	if err != nil {
		return nil, fmt.Errorf("marshal instructions: %w", err)
	}

	title := req.Title
	if title == "" {
		title = fmt.Sprintf("Day trip from %s", startName(req.StartName))
	}

	itinerary := &db_models.Itinerary{
		AccountID:        accountID,
		Title:            title,
		TransportProfile: string(transport),
		AvoidStairs:      avoidStairs,
		DistanceMeters:   route.DistanceMeters,
		DurationMs:       route.DurationMs,
		Geometry:         string(geometry),
		Instructions:     string(instructions),
	}
	for i, stop := range ordered {
		itinerary.Stops = append(itinerary.Stops, db_models.ItineraryStop{
			Position:  i,
			PoiID:     stop.ID,
			Name:      stop.Name,
			Latitude:  stop.Location.Lat,
			Longitude: stop.Location.Lng,
		})
	}
	return itinerary, nil
}

func toItineraryResponse(itinerary *db_models.Itinerary, pace route_models.TravelPace) *response_models.ItineraryResponse {
	stops := make([]response_models.ItineraryStop, 0, len(itinerary.Stops))
	for _, stop := range itinerary.Stops {
		stops = append(stops, response_models.ItineraryStop{
			Position:  stop.Position,
			PoiID:     stop.PoiID,
			Name:      stop.Name,
			Latitude:  stop.Latitude,
			Longitude: stop.Longitude,
		})
	}

	return &response_models.ItineraryResponse{
		ID:                  itinerary.ID.String(),
		Title:               itinerary.Title,
		TransportProfile:    itinerary.TransportProfile,
		AvoidStairs:         itinerary.AvoidStairs,
		DistanceMeters:      itinerary.DistanceMeters,
		DurationMs:          itinerary.DurationMs,
		EstimatedVisitHours: EstimatedVisitHours(len(stops), pace),
		Geometry:            json.RawMessage(itinerary.Geometry),
		Instructions:        json.RawMessage(itinerary.Instructions),
		Stops:               stops,
	}
}
