package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TravelerProfile holds the accessibility and preference answers
// collected during onboarding. Interests and InterestWeights are
// parallel arrays; a weight of 0 means the category is ignored.
type TravelerProfile struct {
	BaseModel
	AccountID       uuid.UUID `gorm:"uniqueIndex"`
	MobilityType    string
	AvoidStairs     bool
	Pace            string
	StartHour       int
	EndHour         int
	Interests       pq.StringArray  `gorm:"type:text[]"`
	InterestWeights pq.Float64Array `gorm:"type:float8[]"`
}

// InterestWeightMap zips the parallel arrays; entries without a weight
// default to 1.
func (p *TravelerProfile) InterestWeightMap() map[string]float64 {
	weights := make(map[string]float64, len(p.Interests))
	for i, interest := range p.Interests {
		w := 1.0
		if i < len(p.InterestWeights) {
			w = p.InterestWeights[i]
		}
		weights[interest] = w
	}
	return weights
}
