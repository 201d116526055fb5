package db_models

import (
	"github.com/pgvector/pgvector-go"
)

// POIEmbedding stores the interest-text vector used to pre-rank
// candidates by relevance before the selection cap is applied.
type POIEmbedding struct {
	PoiID     string          `gorm:"primaryKey"`
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
}

func (POIEmbedding) TableName() string { return "poi_embeddings" }
