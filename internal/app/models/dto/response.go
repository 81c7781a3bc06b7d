package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message" example:"student deleted"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
