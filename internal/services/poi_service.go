package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/lib/pq"

	"github.com/maxeffectus/route-planner-sub001/internal/models/db_models"
	"github.com/maxeffectus/route-planner-sub001/internal/models/request_models"
	"github.com/maxeffectus/route-planner-sub001/internal/models/response_models"
	"github.com/maxeffectus/route-planner-sub001/internal/models/route_models"
	"github.com/maxeffectus/route-planner-sub001/internal/repositories"
	"github.com/maxeffectus/route-planner-sub001/pkg/utils"
)

type POIServiceInterface interface {
	CreatePOI(ctx context.Context, req request_models.CreatePoiRequest) (*response_models.POI, error)
	ListPOIs(ctx context.Context, page, pageSize int) ([]response_models.POI, error)
	// CandidatesForProfile returns planning candidates near the given
	// point, relevance-ranked against the profile interests when
	// embeddings are available, nearest-first otherwise.
	CandidatesForProfile(ctx context.Context, lat, lng, radiusMeters float64, interestWeights map[string]float64) ([]route_models.CandidatePOI, error)
	CandidatesByIDs(ctx context.Context, ids []string) ([]route_models.CandidatePOI, error)
}

type POIService struct {
	pois      repositories.POIRepository
	relevance repositories.POIRelevanceRepository
	embedder  utils.EmbeddingClientInterface
}

func NewPOIService(
	pois repositories.POIRepository,
	relevance repositories.POIRelevanceRepository,
	embedder utils.EmbeddingClientInterface,
) POIServiceInterface {
	return &POIService{pois: pois, relevance: relevance, embedder: embedder}
}

func (s *POIService) CreatePOI(ctx context.Context, req request_models.CreatePoiRequest) (*response_models.POI, error) {
	poi := &db_models.POI{
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Categories:   pq.StringArray(req.Categories),
		Description:  req.Description,
		Website:      req.Website,
		WikipediaRef: req.WikipediaRef,
	}
	if err := s.pois.Insert(ctx, poi); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	// Embedding is best effort: a missing vector only degrades
	// candidate ranking to nearest-first.
	if s.embedder != nil {
		vec, err := s.embedder.GetEmbedding(ctx, embeddingText(poi))
		if err != nil {
			log.Printf("Failed to embed poi %s: %v", poi.ID, err)
		} else if err := s.relevance.Upsert(db_models.POIEmbedding{PoiID: poi.ID.String(), Embedding: vec}); err != nil {
			log.Printf("Failed to store embedding for poi %s: %v", poi.ID, err)
		}
	}

	resp := toPOIResponse(*poi)
	return &resp, nil
}

func (s *POIService) ListPOIs(ctx context.Context, page, pageSize int) ([]response_models.POI, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	pois, err := s.pois.List(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.POI, 0, len(pois))
	for _, poi := range pois {
		out = append(out, toPOIResponse(poi))
	}
	return out, nil
}

func (s *POIService) CandidatesForProfile(ctx context.Context, lat, lng, radiusMeters float64, interestWeights map[string]float64) ([]route_models.CandidatePOI, error) {
	if radiusMeters <= 0 {
		radiusMeters = 5000
	}

	nearby, err := s.pois.ListNear(ctx, lat, lng, radiusMeters, MaxSelectionCandidates)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if len(nearby) == 0 {
		return []route_models.CandidatePOI{}, nil
	}

	ordered := s.rankByInterests(ctx, nearby, interestWeights)

	candidates := make([]route_models.CandidatePOI, 0, len(ordered))
	for _, poi := range ordered {
		candidates = append(candidates, toCandidate(poi))
	}
	return candidates, nil
}

// rankByInterests reorders the nearby set by vector similarity to the
// interest text. Any failure keeps the nearest-first order.
func (s *POIService) rankByInterests(ctx context.Context, nearby []db_models.POI, interestWeights map[string]float64) []db_models.POI {
	if s.embedder == nil || len(interestWeights) == 0 {
		return nearby
	}

	interests := weightedInterests(interestWeights)
	if len(interests) == 0 {
		return nearby
	}

	vec, err := s.embedder.GetEmbedding(ctx, strings.Join(interests, ", "))
	if err != nil {
		log.Printf("Interest embedding failed, keeping proximity order: %v", err)
		return nearby
	}

	rankedIDs, err := s.relevance.RankByVector(vec, len(nearby))
	if err != nil {
		log.Printf("Relevance ranking failed, keeping proximity order: %v", err)
		return nearby
	}

	byID := make(map[string]db_models.POI, len(nearby))
	for _, poi := range nearby {
		byID[poi.ID.String()] = poi
	}

	// Ranked ids first, then whatever the ranking did not cover, still
	// nearest-first.
	ordered := make([]db_models.POI, 0, len(nearby))
	taken := make(map[string]bool, len(nearby))
	for _, id := range rankedIDs {
		if poi, ok := byID[id]; ok && !taken[id] {
			ordered = append(ordered, poi)
			taken[id] = true
		}
	}
	for _, poi := range nearby {
		if !taken[poi.ID.String()] {
			ordered = append(ordered, poi)
		}
	}
	return ordered
}

func (s *POIService) CandidatesByIDs(ctx context.Context, ids []string) ([]route_models.CandidatePOI, error) {
	pois, err := s.pois.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	byID := make(map[string]db_models.POI, len(pois))
	for _, poi := range pois {
		byID[poi.ID.String()] = poi
	}

	// Preserve the requested order; the ids come out of the selector
	// in visiting order.
	candidates := make([]route_models.CandidatePOI, 0, len(ids))
	for _, id := range ids {
		poi, ok := byID[id]
		if !ok {
			return nil, utils.ErrPOINotFound
		}
		candidates = append(candidates, toCandidate(poi))
	}
	return candidates, nil
}

func embeddingText(poi *db_models.POI) string {
	parts := []string{poi.Name}
	if len(poi.Categories) > 0 {
		parts = append(parts, strings.Join(poi.Categories, ", "))
	}
	if poi.Description != "" {
		parts = append(parts, poi.Description)
	}
	return strings.Join(parts, ". ")
}

func toCandidate(poi db_models.POI) route_models.CandidatePOI {
	return route_models.CandidatePOI{
		ID:                 poi.ID.String(),
		Name:               poi.Name,
		Location:           route_models.GeoPoint{Lat: poi.Latitude, Lng: poi.Longitude},
		InterestCategories: poi.Categories,
		Description:        poi.Description,
		Website:            poi.Website,
		WikipediaRef:       poi.WikipediaRef,
	}
}

func toPOIResponse(poi db_models.POI) response_models.POI {
	return response_models.POI{
		ID:           poi.ID.String(),
		Name:         poi.Name,
		Latitude:     poi.Latitude,
		Longitude:    poi.Longitude,
		Categories:   poi.Categories,
		Description:  poi.Description,
		Website:      poi.Website,
		WikipediaRef: poi.WikipediaRef,
	}
}
