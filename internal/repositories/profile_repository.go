package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/maxeffectus/route-planner-sub001/internal/models/db_models"
)

type ProfileRepository interface {
	FindByAccountID(ctx context.Context, accountID string) (*db_models.TravelerProfile, error)
	Upsert(ctx context.Context, profile *db_models.TravelerProfile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByAccountID(ctx context.Context, accountID string) (*db_models.TravelerProfile, error) {
	var profile db_models.TravelerProfile
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Upsert(ctx context.Context, profile *db_models.TravelerProfile) error {
	existing, err := r.FindByAccountID(ctx, profile.AccountID.String())
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.WithContext(ctx).Create(profile).Error
	}

	existing.MobilityType = profile.MobilityType
	existing.AvoidStairs = profile.AvoidStairs
	existing.Pace = profile.Pace
	existing.StartHour = profile.StartHour
	existing.EndHour = profile.EndHour
	existing.Interests = profile.Interests
	existing.InterestWeights = profile.InterestWeights
	return r.db.WithContext(ctx).Save(existing).Error
}
