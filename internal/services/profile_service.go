package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/maxeffectus/route-planner-sub001/internal/models/db_models"
	"github.com/maxeffectus/route-planner-sub001/internal/models/request_models"
	"github.com/maxeffectus/route-planner-sub001/internal/models/response_models"
	"github.com/maxeffectus/route-planner-sub001/internal/repositories"
	"github.com/maxeffectus/route-planner-sub001/pkg/utils"
)

type ProfileServiceInterface interface {
	UpsertProfile(ctx context.Context, accountID string, req request_models.UpsertProfileRequest) error
	GetProfile(ctx context.Context, accountID string) (*response_models.ProfileResponse, error)
}

type ProfileService struct {
	profiles repositories.ProfileRepository
}

func NewProfileService(profiles repositories.ProfileRepository) ProfileServiceInterface {
	return &ProfileService{profiles: profiles}
}

func (s *ProfileService) UpsertProfile(ctx context.Context, accountID string, req request_models.UpsertProfileRequest) error {
	accID, err := uuid.Parse(accountID)
	if err != nil {
		return utils.ErrInvalidInput
	}
	if req.EndHour <= req.StartHour {
		return utils.ErrInvalidInput
	}

	// The weight map is stored as parallel arrays; sort for a stable
	// column layout.
	interests := make([]string, 0, len(req.InterestWeights))
	for name := range req.InterestWeights {
		interests = append(interests, name)
	}
	sort.Strings(interests)
	weights := make([]float64, 0, len(interests))
	for _, name := range interests {
		weights = append(weights, req.InterestWeights[name])
	}

	profile := &db_models.TravelerProfile{
		AccountID:       accID,
		MobilityType:    req.MobilityType,
		AvoidStairs:     req.AvoidStairs,
		Pace:            req.Pace,
		StartHour:       req.StartHour,
		EndHour:         req.EndHour,
		Interests:       pq.StringArray(interests),
		InterestWeights: pq.Float64Array(weights),
	}
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *ProfileService) GetProfile(ctx context.Context, accountID string) (*response_models.ProfileResponse, error) {
	profile, err := s.profiles.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	return &response_models.ProfileResponse{
		MobilityType:    profile.MobilityType,
		AvoidStairs:     profile.AvoidStairs,
		Pace:            profile.Pace,
		StartHour:       profile.StartHour,
		EndHour:         profile.EndHour,
		InterestWeights: profile.InterestWeightMap(),
	}, nil
}
