package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/maxeffectus/route-planner-sub001/internal/models/db_models"
)

type POIRelevanceRepository interface {
	// RankByVector returns POI ids ordered by cosine similarity to the
	// query vector, best first.
	RankByVector(vector pgvector.Vector, limit int) ([]string, error)
	Upsert(embedding db_models.POIEmbedding) error
}

type poiRelevanceRepository struct {
	db *gorm.DB
}

func NewPOIRelevanceRepository(db *gorm.DB) POIRelevanceRepository {
	return &poiRelevanceRepository{db: db}
}

func (r *poiRelevanceRepository) RankByVector(vector pgvector.Vector, limit int) ([]string, error) {
	var results []db_models.POIEmbedding

	query := `
        SELECT poi_id
        FROM poi_embeddings
        ORDER BY embedding <=> $1
        LIMIT $2
    `

	if err := r.db.Raw(query, vector.String(), limit).Scan(&results).Error; err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(results))
	for _, row := range results {
		ids = append(ids, row.PoiID)
	}
	return ids, nil
}

func (r *poiRelevanceRepository) Upsert(embedding db_models.POIEmbedding) error {
	return r.db.Save(&embedding).Error
}
