package response_models

type LoginResponse struct {
	Token string `json:"token"`
}

type ProfileResponse struct {
	MobilityType    string             `json:"mobility_type"`
	AvoidStairs     bool               `json:"avoid_stairs"`
	Pace            string             `json:"pace"`
	StartHour       int                `json:"start_hour"`
	EndHour         int                `json:"end_hour"`
	InterestWeights map[string]float64 `json:"interest_weights"`
}
