package services

import (
	"context"
	"fmt"

	"github.com/maxeffectus/route-planner-sub001/internal/models/response_models"
	"github.com/maxeffectus/route-planner-sub001/internal/models/route_models"
	"github.com/maxeffectus/route-planner-sub001/internal/repositories"
	"github.com/maxeffectus/route-planner-sub001/pkg/utils"
)

type ItineraryServiceInterface interface {
	GetItinerary(ctx context.Context, accountID, itineraryID string) (*response_models.ItineraryResponse, error)
	ListItineraries(ctx context.Context, accountID string, page, pageSize int) ([]response_models.ItinerarySummary, error)
}

type ItineraryService struct {
	itineraries repositories.ItineraryRepository
	profiles    repositories.ProfileRepository
}

func NewItineraryService(itineraries repositories.ItineraryRepository, profiles repositories.ProfileRepository) ItineraryServiceInterface {
	return &ItineraryService{itineraries: itineraries, profiles: profiles}
}

// GetItinerary returns a saved itinerary. Other accounts' itineraries
// read as not found rather than forbidden.
func (s *ItineraryService) GetItinerary(ctx context.Context, accountID, itineraryID string) (*response_models.ItineraryResponse, error) {
	itinerary, err := s.itineraries.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if itinerary == nil || itinerary.AccountID.String() != accountID {
		return nil, utils.ErrItineraryNotFound
	}

	pace := route_models.PaceMedium
	if profile, err := s.profiles.FindByAccountID(ctx, accountID); err == nil && profile != nil {
		pace = route_models.TravelPace(profile.Pace)
	}

	return toItineraryResponse(itinerary, pace), nil
}

func (s *ItineraryService) ListItineraries(ctx context.Context, accountID string, page, pageSize int) ([]response_models.ItinerarySummary, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	itineraries, err := s.itineraries.ListByAccountID(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	summaries := make([]response_models.ItinerarySummary, 0, len(itineraries))
	for _, itinerary := range itineraries {
		summaries = append(summaries, response_models.ItinerarySummary{
			ID:             itinerary.ID.String(),
			Title:          itinerary.Title,
			DistanceMeters: itinerary.DistanceMeters,
			DurationMs:     itinerary.DurationMs,
			StopCount:      len(itinerary.Stops),
			CreatedAt:      itinerary.CreatedAt,
		})
	}
	return summaries, nil
}
