package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/maxeffectus/route-planner-sub001/internal/models/db_models"
)

type POIRepository interface {
	GetByID(ctx context.Context, id string) (*db_models.POI, error)
	ListByIDs(ctx context.Context, ids []string) ([]db_models.POI, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.POI, error)
	// ListNear returns POIs within radiusMeters of the given point,
	// nearest first. The radius filter runs on a squared-degree
	// approximation, which is fine at city scale.
	ListNear(ctx context.Context, lat, lng, radiusMeters float64, limit int) ([]db_models.POI, error)
	Insert(ctx context.Context, poi *db_models.POI) error
}

type poiRepository struct {
	db *gorm.DB
}

func NewPOIRepository(db *gorm.DB) POIRepository {
	return &poiRepository{db: db}
}

func (r *poiRepository) GetByID(ctx context.Context, id string) (*db_models.POI, error) {
	var poi db_models.POI
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&poi).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &poi, nil
}

func (r *poiRepository) ListByIDs(ctx context.Context, ids []string) ([]db_models.POI, error) {
	var pois []db_models.POI
	if len(ids) == 0 {
		return pois, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&pois).Error
	return pois, err
}

func (r *poiRepository) List(ctx context.Context, page, pageSize int) ([]db_models.POI, error) {
	var pois []db_models.POI
	err := r.db.WithContext(ctx).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Order("name").
		Find(&pois).Error
	return pois, err
}

func (r *poiRepository) ListNear(ctx context.Context, lat, lng, radiusMeters float64, limit int) ([]db_models.POI, error) {
	// ~111km per degree of latitude; longitude is not corrected for
	// latitude here, so the radius is slightly generous east-west.
	radiusDeg := radiusMeters / 111_000.0

	query := `
        SELECT *
        FROM pois
        WHERE deleted_at IS NULL
          AND (latitude - @lat) * (latitude - @lat) + (longitude - @lng) * (longitude - @lng) <= @r2
        ORDER BY (latitude - @lat) * (latitude - @lat) + (longitude - @lng) * (longitude - @lng)
        LIMIT @limit
    `

	var pois []db_models.POI
	err := r.db.WithContext(ctx).Raw(query, map[string]interface{}{
		"lat":   lat,
		"lng":   lng,
		"r2":    radiusDeg * radiusDeg,
		"limit": limit,
	}).Scan(&pois).Error
	return pois, err
}

func (r *poiRepository) Insert(ctx context.Context, poi *db_models.POI) error {
	return r.db.WithContext(ctx).Create(poi).Error
}
