package dto

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"mongo"`
	Cache    string `json:"cache,omitempty" example:"up"`
}
