package db_models

import (
	"github.com/lib/pq"
)

// POI is one catalog row of the upstream point-of-interest feed.
type POI struct {
	BaseModel
	Name         string
	Latitude     float64
	Longitude    float64
	Categories   pq.StringArray `gorm:"type:text[]"`
	Description  string
	Website      string
	WikipediaRef string
}
