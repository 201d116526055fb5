package request_models

type UpsertProfileRequest struct {
	MobilityType    string             `json:"mobility_type" binding:"required"`
	AvoidStairs     bool               `json:"avoid_stairs"`
	Pace            string             `json:"pace" binding:"required"`
	StartHour       int                `json:"start_hour" binding:"min=0,max=23"`
	EndHour         int                `json:"end_hour" binding:"min=0,max=23"`
	InterestWeights map[string]float64 `json:"interest_weights"`
}
