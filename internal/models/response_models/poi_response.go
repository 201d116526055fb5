package response_models

type POI struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Categories   []string `json:"categories"`
	Description  string   `json:"description,omitempty"`
	Website      string   `json:"website,omitempty"`
	WikipediaRef string   `json:"wikipedia_ref,omitempty"`
}
