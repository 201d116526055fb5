package request_models

type CreatePoiRequest struct {
	Name         string   `json:"name" binding:"required"`
	Latitude     float64  `json:"latitude" binding:"required"`
	Longitude    float64  `json:"longitude" binding:"required"`
	Categories   []string `json:"categories" binding:"required"`
	Description  string   `json:"description"`
	Website      string   `json:"website"`
	WikipediaRef string   `json:"wikipedia_ref"`
}
