package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/maxeffectus/route-planner-sub001/internal/models/db_models"
)

type ItineraryRepository interface {
	Insert(ctx context.Context, itinerary *db_models.Itinerary) error
	GetByID(ctx context.Context, id string) (*db_models.Itinerary, error)
	ListByAccountID(ctx context.Context, accountID string, page, pageSize int) ([]db_models.Itinerary, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Insert(ctx context.Context, itinerary *db_models.Itinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *itineraryRepository) GetByID(ctx context.Context, id string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("id = ?", id).
		First(&itinerary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) ListByAccountID(ctx context.Context, accountID string, page, pageSize int) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	err := r.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&itineraries).Error
	return itineraries, err
}
